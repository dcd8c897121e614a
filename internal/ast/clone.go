package ast

import "fmt"

// CloneRegistry maps a Kind to a fresh zero-valued instance constructor.
// Populated by an init() in this file for every concrete node; used by
// Clone and, later, by the reader's per-Kind assembly step.
var CloneRegistry = map[Kind]func() Node{}

func register(k Kind, ctor func() Node) { CloneRegistry[k] = ctor }

func init() {
	register(KindDefMod, func() Node { return &DefMod{} })
	register(KindModParam, func() Node { return &ModParam{} })
	register(KindImport, func() Node { return &Import{} })
	register(KindFunParam, func() Node { return &FunParam{} })
	register(KindDefFun, func() Node { return &DefFun{} })
	register(KindDefMacro, func() Node { return &DefMacro{} })
	register(KindDefGlobal, func() Node { return &DefGlobal{} })
	register(KindDefConst, func() Node { return &DefConst{} })
	register(KindRecField, func() Node { return &RecField{} })
	register(KindDefRec, func() Node { return &DefRec{} })
	register(KindEnumVal, func() Node { return &EnumVal{} })
	register(KindDefEnum, func() Node { return &DefEnum{} })
	register(KindDefType, func() Node { return &DefType{} })
	register(KindStmtStaticAssert, func() Node { return &StmtStaticAssert{} })
	register(KindComment, func() Node { return &Comment{} })

	register(KindTypeAuto, func() Node { return &TypeAuto{} })
	register(KindTypeBase, func() Node { return &TypeBase{} })
	register(KindTypePtr, func() Node { return &TypePtr{} })
	register(KindTypeSlice, func() Node { return &TypeSlice{} })
	register(KindTypeArray, func() Node { return &TypeArray{} })
	register(KindTypeFun, func() Node { return &TypeFun{} })
	register(KindTypeSum, func() Node { return &TypeSum{} })

	register(KindValBool, func() Node { return &ValBool{} })
	register(KindValVoid, func() Node { return &ValVoid{} })
	register(KindValUndef, func() Node { return &ValUndef{} })
	register(KindValNum, func() Node { return &ValNum{} })
	register(KindValString, func() Node { return &ValString{} })
	register(KindValArrayString, func() Node { return &ValArrayString{} })
	register(KindIndexVal, func() Node { return &IndexVal{} })
	register(KindValArray, func() Node { return &ValArray{} })
	register(KindFieldVal, func() Node { return &FieldVal{} })
	register(KindValRec, func() Node { return &ValRec{} })

	register(KindId, func() Node { return &Id{} })
	register(KindExprCall, func() Node { return &ExprCall{} })
	register(KindExprField, func() Node { return &ExprField{} })
	register(KindExprOffsetof, func() Node { return &ExprOffsetof{} })
	register(KindExprIndex, func() Node { return &ExprIndex{} })
	register(KindExprDeref, func() Node { return &ExprDeref{} })
	register(KindExprAddrOf, func() Node { return &ExprAddrOf{} })
	register(KindExprAs, func() Node { return &ExprAs{} })
	register(KindExprBitCast, func() Node { return &ExprBitCast{} })
	register(KindExprUnsafeCast, func() Node { return &ExprUnsafeCast{} })
	register(KindExprAsNot, func() Node { return &ExprAsNot{} })
	register(KindExprIs, func() Node { return &ExprIs{} })
	register(KindExprLen, func() Node { return &ExprLen{} })
	register(KindExprSizeof, func() Node { return &ExprSizeof{} })
	register(KindExprTryAs, func() Node { return &ExprTryAs{} })
	register(KindExprSrcLoc, func() Node { return &ExprSrcLoc{} })
	register(KindExprStringify, func() Node { return &ExprStringify{} })
	register(KindExprParen, func() Node { return &ExprParen{} })
	register(KindExprUnwrap, func() Node { return &ExprUnwrap{} })
	register(KindExprChop, func() Node { return &ExprChop{} })
	register(KindExprRange, func() Node { return &ExprRange{} })
	register(KindExpr1, func() Node { return &Expr1{} })
	register(KindExpr2, func() Node { return &Expr2{} })
	register(KindExpr3, func() Node { return &Expr3{} })

	register(KindMacroInvoke, func() Node { return &MacroInvoke{} })
	register(KindMacroId, func() Node { return &MacroId{} })
	register(KindEphemeralList, func() Node { return &EphemeralList{} })
	register(KindMacroListArg, func() Node { return &MacroListArg{} })

	register(KindDefVar, func() Node { return &DefVar{} })
	register(KindStmtReturn, func() Node { return &StmtReturn{} })
	register(KindStmtIf, func() Node { return &StmtIf{} })
	register(KindStmtAssignment, func() Node { return &StmtAssignment{} })
	register(KindStmtCompoundAssignment, func() Node { return &StmtCompoundAssignment{} })
	register(KindStmtExpr, func() Node { return &StmtExpr{} })
	register(KindStmtBlock, func() Node { return &StmtBlock{} })
	register(KindStmtBreak, func() Node { return &StmtBreak{} })
	register(KindStmtContinue, func() Node { return &StmtContinue{} })
	register(KindStmtFor, func() Node { return &StmtFor{} })
}

// New returns a fresh zero-valued node of the given kind, its Pos set.
// Used by the reader to materialize nodes and by Clone to build copies.
func New(k Kind, pos SourcePos) Node {
	ctor, ok := CloneRegistry[k]
	if !ok {
		panic(fmt.Sprintf("ast: no constructor registered for kind %v", k))
	}
	n := ctor()
	if p, ok := n.(interface{ setPos(SourcePos) }); ok {
		p.setPos(pos)
	}
	return n
}

// Clone deep-copies a node tree, generating no new annotations: scalar
// fields and list/child shapes are copied, but XType/XSymbol/etc. are left
// at their zero value since a clone is always re-resolved and re-typed
// (used by internal/modpool to specialize a generic module template per
// distinct argument tuple, §4.2).
func Clone(n Node) Node {
	if n == nil {
		return nil
	}
	fresh := New(n.NodeKind(), n.Pos())
	srcFields := n.Fields()
	dstFields := fresh.Fields()
	for i, sf := range srcFields {
		df := dstFields[i]
		switch sf.Kind {
		case FieldFlag:
			*df.FlagSlot = *sf.FlagSlot
		case FieldStr:
			*df.StrSlot = *sf.StrSlot
		case FieldInt:
			*df.IntSlot = *sf.IntSlot
		case FieldStrList:
			cp := make([]string, len(*sf.StrListSlot))
			copy(cp, *sf.StrListSlot)
			*df.StrListSlot = cp
		case FieldNode:
			*df.NodeSlot = Clone(*sf.NodeSlot)
		case FieldList:
			src := *sf.ListSlot
			cp := make([]Node, len(src))
			for j, child := range src {
				cp[j] = Clone(child)
			}
			*df.ListSlot = cp
		case FieldKindEnum:
			df.EnumSet(sf.EnumGet())
		}
	}
	return fresh
}
