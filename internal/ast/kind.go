package ast

// Kind tags every concrete node type in the closed AST variant set.
type Kind int

const (
	KindInvalid Kind = iota

	// top level
	KindDefMod
	KindImport
	KindDefFun
	KindDefMacro
	KindDefGlobal
	KindDefRec
	KindDefEnum
	KindDefType
	KindDefConst
	KindStmtStaticAssert
	KindComment
	KindModParam

	// types
	KindTypeAuto
	KindTypeBase
	KindTypePtr
	KindTypeSlice
	KindTypeArray
	KindTypeFun
	KindTypeSum

	// sub-declarations
	KindRecField
	KindEnumVal
	KindFunParam

	// values
	KindValBool
	KindValVoid
	KindValUndef
	KindValNum
	KindValString
	KindValArray
	KindValArrayString
	KindValRec
	KindFieldVal
	KindIndexVal

	// expressions
	KindId
	KindExprCall
	KindExprField
	KindExprOffsetof
	KindExprIndex
	KindExprDeref
	KindExprAddrOf
	KindExprAs
	KindExprBitCast
	KindExprUnsafeCast
	KindExprAsNot
	KindExprIs
	KindExprLen
	KindExprSizeof
	KindExprTryAs
	KindExprSrcLoc
	KindExprStringify
	KindExprParen
	KindExprUnwrap
	KindExprChop
	KindExprRange
	KindExpr1
	KindExpr2
	KindExpr3

	// macro
	KindMacroInvoke
	KindMacroId
	KindEphemeralList
	KindMacroListArg

	// statements
	KindDefVar
	KindStmtReturn
	KindStmtIf
	KindStmtAssignment
	KindStmtCompoundAssignment
	KindStmtExpr
	KindStmtBlock
	KindStmtBreak
	KindStmtContinue
	KindStmtFor
)

var kindNames = map[Kind]string{
	KindDefMod: "DefMod", KindImport: "Import", KindDefFun: "DefFun",
	KindDefMacro: "DefMacro", KindDefGlobal: "DefGlobal", KindDefRec: "DefRec",
	KindDefEnum: "DefEnum", KindDefType: "DefType", KindDefConst: "DefConst",
	KindStmtStaticAssert: "StmtStaticAssert", KindComment: "Comment",
	KindModParam: "ModParam",
	KindTypeAuto: "TypeAuto", KindTypeBase: "TypeBase", KindTypePtr: "TypePtr",
	KindTypeSlice: "TypeSlice", KindTypeArray: "TypeArray", KindTypeFun: "TypeFun",
	KindTypeSum: "TypeSum",
	KindRecField: "RecField", KindEnumVal: "EnumVal", KindFunParam: "FunParam",
	KindValBool: "ValBool", KindValVoid: "ValVoid", KindValUndef: "ValUndef",
	KindValNum: "ValNum", KindValString: "ValString", KindValArray: "ValArray",
	KindValArrayString: "ValArrayString", KindValRec: "ValRec",
	KindFieldVal: "FieldVal", KindIndexVal: "IndexVal",
	KindId: "Id", KindExprCall: "ExprCall", KindExprField: "ExprField",
	KindExprOffsetof: "ExprOffsetof", KindExprIndex: "ExprIndex",
	KindExprDeref: "ExprDeref", KindExprAddrOf: "ExprAddrOf", KindExprAs: "ExprAs",
	KindExprBitCast: "ExprBitCast", KindExprUnsafeCast: "ExprUnsafeCast",
	KindExprAsNot: "ExprAsNot", KindExprIs: "ExprIs", KindExprLen: "ExprLen",
	KindExprSizeof: "ExprSizeof", KindExprTryAs: "ExprTryAs",
	KindExprSrcLoc: "ExprSrcLoc", KindExprStringify: "ExprStringify",
	KindExprParen: "ExprParen", KindExprUnwrap: "ExprUnwrap",
	KindExprChop: "ExprChop", KindExprRange: "ExprRange",
	KindExpr1: "Expr1", KindExpr2: "Expr2", KindExpr3: "Expr3",
	KindMacroInvoke: "MacroInvoke", KindMacroId: "MacroId",
	KindEphemeralList: "EphemeralList", KindMacroListArg: "MacroListArg",
	KindDefVar: "DefVar", KindStmtReturn: "StmtReturn", KindStmtIf: "StmtIf",
	KindStmtAssignment: "StmtAssignment",
	KindStmtCompoundAssignment: "StmtCompoundAssignment",
	KindStmtExpr: "StmtExpr", KindStmtBlock: "StmtBlock",
	KindStmtBreak: "StmtBreak", KindStmtContinue: "StmtContinue",
	KindStmtFor: "StmtFor",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "Unknown"
}
