package ast

import (
	"fmt"
	"strings"
)

// Repr renders a node as a compact textual form.  It exists for tests and
// diagnostics: two structurally-equal trees produce identical Repr output,
// which is what the lowering test suite diffs against.
func Repr(n Node) string {
	switch v := n.(type) {
	case Decl:
		return reprDecl(v)
	case Stmt:
		return reprStmt(v)
	case Expr:
		return reprExpr(v)
	default:
		return fmt.Sprintf("<%T>", n)
	}
}

func symName(d Decl) string {
	if d == nil || d.Sym() == nil {
		return "_"
	}
	return d.Sym().Name
}

func reprDecl(d Decl) string {
	switch v := d.(type) {
	case *VariableDecl:
		return fmt.Sprintf("var %s = %s", symName(v), reprExpr(v.Init))
	case *FunctionDecl:
		params := make([]string, len(v.Params))
		for i, p := range v.Params {
			params[i] = symName(p)
		}
		prefix := ""
		if IsForeign(v) {
			prefix = "foreign "
		}
		if v.Body == nil {
			return fmt.Sprintf("%sdef %s(%s)", prefix, symName(v), strings.Join(params, ", "))
		}
		return fmt.Sprintf("%sdef %s(%s) %s", prefix, symName(v), strings.Join(params, ", "), reprStmt(v.Body))
	case *ParameterDecl:
		return symName(v)
	case *RecordDecl:
		names := make([]string, len(v.Fields))
		for i, f := range v.Fields {
			names[i] = symName(f)
		}
		return fmt.Sprintf("record %s {%s}", symName(v), strings.Join(names, ", "))
	case *FieldDecl:
		return symName(v)
	case *ModuleDecl:
		parts := make([]string, len(v.Decls))
		for i, sub := range v.Decls {
			parts[i] = reprDecl(sub)
		}
		return strings.Join(parts, "\n")
	case *LayoutDecl:
		names := make([]string, len(v.Fields))
		for i, f := range v.Fields {
			names[i] = symName(f)
		}
		return fmt.Sprintf("layout %s {%s}", symName(v), strings.Join(names, ", "))
	case *DecodeDecl:
		start := ""
		if v.IsStart {
			start = " start"
		}
		return fmt.Sprintf("decode%s %s(%s) %s", start, symName(v), symName(v.Header), reprStmt(v.Body))
	case *TableDecl:
		flows := make([]string, len(v.Body))
		for i, f := range v.Body {
			flows[i] = reprDecl(f)
		}
		return fmt.Sprintf("table %s #%d %s {%s}", symName(v), v.Number, v.Kind, strings.Join(flows, "; "))
	case *FlowDecl:
		keys := make([]string, len(v.Keys))
		for i, k := range v.Keys {
			keys[i] = reprExpr(k)
		}
		return fmt.Sprintf("flow[%d](%s) %s", v.Priority, strings.Join(keys, ", "), reprStmt(v.Instructions))
	case *ExtractsDecl:
		return fmt.Sprintf("extract %s", reprExpr(v.Field))
	case *RebindDecl:
		return fmt.Sprintf("extract %s as %s", reprExpr(v.Field1), reprExpr(v.Field2))
	case *PortDecl:
		return fmt.Sprintf("port %s", symName(v))
	default:
		return fmt.Sprintf("<decl %T>", d)
	}
}

func reprStmt(s Stmt) string {
	switch v := s.(type) {
	case nil:
		return "{}"
	case *EmptyStmt:
		return "{}"
	case *BlockStmt:
		parts := make([]string, len(v.Stmts))
		for i, sub := range v.Stmts {
			parts[i] = reprStmt(sub)
		}
		if len(parts) == 0 {
			return "{  }"
		}
		return "{ " + strings.Join(parts, " ") + " }"
	case *IfStmt:
		return fmt.Sprintf("if %s %s", reprExpr(v.Cond), reprStmt(v.Then))
	case *IfElseStmt:
		return fmt.Sprintf("if %s %s else %s", reprExpr(v.Cond), reprStmt(v.Then), reprStmt(v.Else))
	case *MatchStmt:
		cases := make([]string, len(v.Cases))
		for i, c := range v.Cases {
			cases[i] = reprStmt(c)
		}
		return fmt.Sprintf("match %s { %s }", reprExpr(v.Cond), strings.Join(cases, " "))
	case *CaseStmt:
		return fmt.Sprintf("case %s: %s", reprExpr(v.Label), reprStmt(v.Body))
	case *WhileStmt:
		return fmt.Sprintf("while %s %s", reprExpr(v.Cond), reprStmt(v.Body))
	case *ExprStmt:
		return reprExpr(v.X) + ";"
	case *DeclStmt:
		return reprDecl(v.D) + ";"
	case *DecodeStmt:
		return fmt.Sprintf("decode %s;", symName(v.Target))
	case *GotoStmt:
		return fmt.Sprintf("goto %s;", symName(v.Target))
	default:
		return fmt.Sprintf("<stmt %T>", s)
	}
}

func reprExpr(e Expr) string {
	switch v := e.(type) {
	case nil:
		return "<nil>"
	case *IntLit:
		return fmt.Sprintf("%d", v.Value)
	case *BoolLit:
		return fmt.Sprintf("%t", v.Value)
	case *Ident:
		return v.Sym.Name
	case *BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", reprExpr(v.Lhs), v.Op, reprExpr(v.Rhs))
	case *CallExpr:
		args := make([]string, len(v.Args))
		for i, a := range v.Args {
			args[i] = reprExpr(a)
		}
		return fmt.Sprintf("%s(%s)", reprExpr(v.Callee), strings.Join(args, ", "))
	case *FieldNameExpr:
		return v.Path
	default:
		return fmt.Sprintf("<expr %T>", e)
	}
}
