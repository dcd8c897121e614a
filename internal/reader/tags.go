package reader

import "github.com/velalang/velac/internal/ast"

// tagToKind maps a node's surface-syntax tag — the first atom inside its
// parens — to the Kind it constructs. Operator tags (+, ==, !, += ...) are
// handled separately via the UnaryOp/BinaryOp/CompoundAssign shorthand
// tables before this map is even consulted (§4.1). A tag absent from both
// is treated as a macro invocation.
var tagToKind = map[string]ast.Kind{
	"mod":      ast.KindDefMod,
	"modparam": ast.KindModParam,
	"import":   ast.KindImport,
	"param":    ast.KindFunParam,
	"fun":      ast.KindDefFun,
	"macro":    ast.KindDefMacro,
	"global":   ast.KindDefGlobal,
	"const":    ast.KindDefConst,
	"recfield": ast.KindRecField,
	"rec":      ast.KindDefRec,
	"entry":    ast.KindEnumVal,
	"enum":     ast.KindDefEnum,
	"type":     ast.KindDefType,
	"static_assert": ast.KindStmtStaticAssert,
	"comment":  ast.KindComment,

	"ptr":   ast.KindTypePtr,
	"slice": ast.KindTypeSlice,
	"array": ast.KindTypeArray,
	"sig":   ast.KindTypeFun,
	"sum":   ast.KindTypeSum,

	"arrayval":    ast.KindValArray,
	"idx":         ast.KindIndexVal,
	"recval":      ast.KindValRec,
	"fval":        ast.KindFieldVal,
	"arraystring": ast.KindValArrayString,

	"call":       ast.KindExprCall,
	".":          ast.KindExprField,
	"offsetof":   ast.KindExprOffsetof,
	"at":         ast.KindExprIndex,
	"^":          ast.KindExprDeref,
	"&":          ast.KindExprAddrOf,
	"as":         ast.KindExprAs,
	"bitcast":    ast.KindExprBitCast,
	"unsafecast": ast.KindExprUnsafeCast,
	"asnot":      ast.KindExprAsNot,
	"is":         ast.KindExprIs,
	"len":        ast.KindExprLen,
	"sizeof":     ast.KindExprSizeof,
	"tryas":      ast.KindExprTryAs,
	"srcloc":     ast.KindExprSrcLoc,
	"stringify":  ast.KindExprStringify,
	"paren":      ast.KindExprParen,
	"unwrap":     ast.KindExprUnwrap,
	"chop":       ast.KindExprChop,
	"range":      ast.KindExprRange,
	"?":          ast.KindExpr3,

	"splice": ast.KindMacroListArg,

	"let":      ast.KindDefVar,
	"return":   ast.KindStmtReturn,
	"if":       ast.KindStmtIf,
	"=":        ast.KindStmtAssignment,
	"expr":     ast.KindStmtExpr,
	"block":    ast.KindStmtBlock,
	"break":    ast.KindStmtBreak,
	"continue": ast.KindStmtContinue,
	"for":      ast.KindStmtFor,
}

func init() {
	ast.OptionalFields["initial"] = func(pos ast.SourcePos) ast.Node { return ast.New(ast.KindValUndef, pos) }
	ast.OptionalFields["default"] = func(pos ast.SourcePos) ast.Node { return nil }
	ast.OptionalFields["value"] = func(pos ast.SourcePos) ast.Node { return &ast.TypeAuto{} }
}
