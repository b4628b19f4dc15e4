package lower

import (
	"flowpathc/ast"
	"flowpathc/builtin"
)

// lowerGlobalDecl lowers a top-level module member.  Decode, Port, and
// Table have bespoke translations; every other kind was already declared by
// the module's declare-all pre-pass and passes through unchanged.
func (l *Lowerer) lowerGlobalDecl(d ast.Decl) ast.Decl {
	switch v := d.(type) {
	case *ast.DecodeDecl:
		return l.lowerDecode(v)
	case *ast.PortDecl:
		return l.lowerPort(v)
	case *ast.TableDecl:
		return v
	default:
		return d
	}
}

// lowerInnerDecl handles a declaration reached through a Declaration-stmt
// (i.e. a local, non-Extracts/Rebind declaration).  The default behavior is
// to declare it into the current scope and return it unchanged.
func (l *Lowerer) lowerInnerDecl(d ast.Decl) ast.Decl {
	l.declare(d)
	return d
}

// lowerDecode pushes a scope owned by the decoder, binds the implicit
// __context parameter, lowers the body, and fills in the Function stub
// created eagerly by Lower so mutually-recursive decode targets resolve.
func (l *Lowerer) lowerDecode(dd *ast.DecodeDecl) ast.Decl {
	fn := l.decodeFuncs[dd]

	// Deferred ahead of the scope release, so it runs once the decoder scope
	// has been popped and re-exposes fn in the enclosing module scope.
	defer l.redeclare(fn)

	release := l.pushScope(fn)
	defer release()

	ctxParam := ast.NewParameterDecl(dd.Span(), l.ctxSym, decoderType.Params[0])
	l.declare(ctxParam)

	prevDecoder := l.curDecoder
	l.curDecoder = fn
	body := l.lowerBlockStmtOrWrap(dd.Body)
	l.curDecoder = prevDecoder

	fn.Params = []*ast.ParameterDecl{ctxParam}
	fn.Body = body

	if dd.IsStart {
		l.entry = fn
	}

	return fn
}

// lowerBlockStmtOrWrap lowers a decoder/case body that is expected to be a
// Block; a bare non-Block body (permitted by the surface grammar for a
// single-statement decoder) is wrapped in one.
func (l *Lowerer) lowerBlockStmtOrWrap(body ast.Stmt) *ast.BlockStmt {
	if b, ok := body.(*ast.BlockStmt); ok {
		return l.lowerBlockStmt(b)
	}
	return ast.NewBlockStmt(spanOf(body), l.lowerStmt(body))
}

// lowerPort synthesizes a Variable decl initialized by fp_get_port() in
// place of the surface Port declaration.
func (l *Lowerer) lowerPort(pd *ast.PortDecl) ast.Decl {
	call := l.elaborator.Elaborate(l.catalog.Call(builtin.GetPort))
	v := ast.NewVariableDecl(pd.Span(), pd.Sym(), pd.DeclType(), call)
	l.redeclare(v)
	return v
}
