package typecheck

import "github.com/velalang/velac/internal/ast"

// xtypeOf reads back the XType string a node already carries. Every node
// kind that can appear as an Id's XSymbol, or as the operand of a rule that
// needs to inspect an already-typed sibling's type, is listed here. This is
// a type switch rather than reflection, matching the rest of this AST's
// "one exhaustive switch per concern" convention (ast.Walk uses Fields()
// instead because it only needs to recurse, not read a specific field).
func xtypeOf(n ast.Node) (string, bool) {
	switch v := n.(type) {
	case *ast.TypeBase:
		return v.XType, true
	case *ast.TypePtr:
		return v.XType, true
	case *ast.TypeSlice:
		return v.XType, true
	case *ast.TypeArray:
		return v.XType, true
	case *ast.TypeFun:
		return v.XType, true
	case *ast.TypeSum:
		return v.XType, true
	case *ast.DefRec:
		return v.XType, true
	case *ast.DefEnum:
		return v.XType, true
	case *ast.DefType:
		return v.XType, true
	case *ast.DefGlobal:
		return v.XType, true
	case *ast.DefConst:
		return v.XType, true
	case *ast.DefVar:
		return v.XType, true
	case *ast.FunParam:
		return v.XType, true
	case *ast.RecField:
		return v.XType, true
	case *ast.EnumVal:
		return v.XType, true
	case *ast.DefFun:
		return v.XType, true
	case *ast.StmtFor:
		return v.XType, true
	case *ast.Id:
		return v.XType, true
	case *ast.ExprCall:
		return v.XType, true
	case *ast.ExprField:
		return v.XType, true
	case *ast.ExprOffsetof:
		return v.XType, true
	case *ast.ExprIndex:
		return v.XType, true
	case *ast.ExprDeref:
		return v.XType, true
	case *ast.ExprAddrOf:
		return v.XType, true
	case *ast.ExprAs:
		return v.XType, true
	case *ast.ExprBitCast:
		return v.XType, true
	case *ast.ExprUnsafeCast:
		return v.XType, true
	case *ast.ExprAsNot:
		return v.XType, true
	case *ast.ExprIs:
		return v.XType, true
	case *ast.ExprLen:
		return v.XType, true
	case *ast.ExprSizeof:
		return v.XType, true
	case *ast.ExprTryAs:
		return v.XType, true
	case *ast.ExprSrcLoc:
		return v.XType, true
	case *ast.ExprStringify:
		return v.XType, true
	case *ast.ExprParen:
		return v.XType, true
	case *ast.ExprUnwrap:
		return v.XType, true
	case *ast.ExprChop:
		return v.XType, true
	case *ast.ExprRange:
		return v.XType, true
	case *ast.Expr1:
		return v.XType, true
	case *ast.Expr2:
		return v.XType, true
	case *ast.Expr3:
		return v.XType, true
	case *ast.ValBool:
		return v.XType, true
	case *ast.ValVoid:
		return v.XType, true
	case *ast.ValUndef:
		return v.XType, true
	case *ast.ValNum:
		return v.XType, true
	case *ast.ValString:
		return v.XType, true
	case *ast.ValArrayString:
		return v.XType, true
	case *ast.IndexVal:
		return v.XType, true
	case *ast.ValArray:
		return v.XType, true
	case *ast.FieldVal:
		return v.XType, true
	case *ast.ValRec:
		return v.XType, true
	default:
		return "", false
	}
}
