package lower

import "strings"

// mangle produces the deterministic name a load variable gets for the
// extraction of path (e.g. "src") out of layout (e.g. "eth"): "eth.src"
// becomes "eth_src".  The mapping is injective on distinct (layout, path)
// pairs because '.' is the only separator the surface language's field
// paths ever contain and it is replaced by a character ('_') that field
// paths cannot themselves contain, so no two distinct dotted paths collide
// after substitution; it is stable across runs because it is a pure
// function of its inputs; and it is a legal identifier because layout and
// field names are already restricted to identifier characters.
func mangle(layout, path string) string {
	return layout + "_" + strings.ReplaceAll(path, ".", "_")
}

// mangleAlias produces the load-variable name for the alias half of a
// rebind: extract eth.src as saddr binds two names, "eth_src" (the true
// field) and "saddr" (the alias) -- the alias keeps its surface name since
// it is already guaranteed unique by the name binder.
func mangleAlias(alias string) string {
	return alias
}
