package typecheck

import (
	"github.com/velalang/velac/internal/ast"
	verrors "github.com/velalang/velac/internal/errors"
	"github.com/velalang/velac/internal/typecorpus"
)

// typeIndexVal types one ValArray element: its value under the currently
// pushed (element) target, and — if present — its explicit index under
// uint (§4.7 ValArray rule).
func (c *Checker) typeIndexVal(node *ast.IndexVal) (*typecorpus.Entry, error) {
	if node.Index != nil {
		c.pushTarget(c.Corpus.InsertBase(ast.UINT))
		_, err := c.typeExpr(node.Index)
		c.popTarget()
		if err != nil {
			return nil, err
		}
	}
	value, err := c.typeExpr(node.Value)
	if err != nil {
		return nil, err
	}
	node.XType = value.Name
	return value, nil
}

func (c *Checker) typeValArray(node *ast.ValArray) (*typecorpus.Entry, error) {
	elem, err := c.typeType(node.Type)
	if err != nil {
		return nil, err
	}
	c.pushTarget(elem)
	for _, v := range node.Values {
		if _, err := c.typeExpr(v); err != nil {
			c.popTarget()
			return nil, err
		}
	}
	c.popTarget()

	c.pushTarget(c.Corpus.InsertBase(ast.UINT))
	_, err = c.typeExpr(node.Size)
	c.popTarget()
	if err != nil {
		return nil, err
	}
	dim, err := c.computeArrayLength(node.Size)
	if err != nil {
		return nil, err
	}
	e := c.Corpus.InsertArray(dim, elem)
	node.XType = e.Name
	return e, nil
}

// typeValRec types a record literal, advancing a field cursor across its
// Values: an explicitly-named FieldVal jumps the cursor to that field's
// index, a positional one (Field == "") consumes the next declared field
// (§4.7 ValRec rule).
func (c *Checker) typeValRec(node *ast.ValRec) (*typecorpus.Entry, error) {
	rec, err := c.typeType(node.Type)
	if err != nil {
		return nil, err
	}
	if rec.Kind != typecorpus.KindRec {
		return nil, typeErr(verrors.TYP001, node, "record literal type is not a record: "+rec.Name)
	}

	cursor := 0
	for _, v := range node.Values {
		fv := v.(*ast.FieldVal)
		var field *ast.RecField
		if fv.Field != "" {
			f, idx, err := c.Corpus.LookupRecField(rec, fv.Field)
			if err != nil {
				return nil, err
			}
			field, cursor = f, idx
		} else {
			if cursor >= len(rec.RecNode.Fields) {
				return nil, typeErr(verrors.TYP003, fv, "too many values for record "+rec.Name)
			}
			field = rec.RecNode.Fields[cursor].(*ast.RecField)
		}

		fieldEntry, ok := c.Corpus.Lookup(field.XType)
		if !ok {
			return nil, typeErr(verrors.TYP008, fv, "field "+field.Name+" has no resolved type")
		}
		c.pushTarget(fieldEntry)
		_, err := c.typeExpr(fv.Value)
		c.popTarget()
		if err != nil {
			return nil, err
		}
		fv.XField = field
		fv.XType = field.XType
		cursor++
	}

	node.XType = rec.Name
	return rec, nil
}
