package pipeline

import (
	"fmt"
	"io/ioutil"

	"github.com/pelletier/go-toml"

	"flowpathc/report"
)

// FieldMapping is the stable, integer field-mapping table the pipeline
// checker is contractually responsible for producing: one id per
// (layout, field-path) pair, shared between the compiled program and the
// runtime's bound-field environment.
type FieldMapping struct {
	ids map[string]int
}

// tomlFieldMapping is the on-disk shape of a field-mapping file: a flat list
// of layout/path/id triples, mirroring how the surface module's own project
// file is loaded.
type tomlFieldMapping struct {
	Fields []tomlFieldEntry `toml:"field"`
}

type tomlFieldEntry struct {
	Layout string `toml:"layout"`
	Path   string `toml:"path"`
	ID     int    `toml:"id"`
}

// NewFieldMapping returns an empty mapping.  Entries are usually added by
// LoadFieldMapping or, in tests, by Set.
func NewFieldMapping() *FieldMapping {
	return &FieldMapping{ids: make(map[string]int)}
}

// LoadFieldMapping reads a TOML-encoded field-mapping file at path.
func LoadFieldMapping(path string) (*FieldMapping, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading field mapping file: %w", err)
	}

	var tfm tomlFieldMapping
	if err := toml.Unmarshal(buf, &tfm); err != nil {
		return nil, fmt.Errorf("parsing field mapping file: %w", err)
	}

	fm := NewFieldMapping()
	for _, e := range tfm.Fields {
		fm.Set(e.Layout, e.Path, e.ID)
	}
	return fm, nil
}

// Set records the id assigned to layout.path.  Exposed for tests and for
// programmatic (non-TOML) field-mapping construction.
func (fm *FieldMapping) Set(layout, path string, id int) {
	fm.ids[key(layout, path)] = id
}

// IDFor returns the integer id the pipeline checker assigned to the
// extraction of layout.path.  It raises UnextractedField if no such
// extraction was mapped -- this is the condition spec.md's error handling
// design calls out by name.
func (fm *FieldMapping) IDFor(span *report.TextSpan, layout, path string) int {
	id, ok := fm.ids[key(layout, path)]
	if !ok {
		report.UnextractedField(span, layout+"."+path)
	}
	return id
}

// Len returns the number of field-mapping entries loaded.
func (fm *FieldMapping) Len() int {
	return len(fm.ids)
}

func key(layout, path string) string {
	return layout + "." + path
}
