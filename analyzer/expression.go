package analyzer

import (
	"strings"

	"github.com/jvanstraten/libcqasm/ast"
	"github.com/jvanstraten/libcqasm/diagnostics"
	"github.com/jvanstraten/libcqasm/ir"
	"github.com/jvanstraten/libcqasm/mapping"
	"github.com/jvanstraten/libcqasm/overload"
	"github.com/jvanstraten/libcqasm/primitives"
)

// locatable is satisfied by every concrete ir.Value, via tree.Base's
// promoted SetLocation; it lets evaluateExpression stamp the originating
// AST node's location without ir exporting a type switch of its own.
type locatable interface {
	SetLocation(diagnostics.Location)
}

// evaluateExpression is analyze_expression (§4.5.1): it dispatches on node
// kind, then always returns a fresh value whose location is copied from
// the originating AST node, per §4.5.1's closing sentence. Every returned
// error is already a *diagnostics.Error carrying expr's location (or a
// more specific nested one, first-location-wins).
func (st *state) evaluateExpression(scope *mapping.Scope, expr ast.Expression) (ir.Value, error) {
	v, err := st.evalExpressionRaw(scope, expr)
	if err != nil {
		return nil, diagnose(err, expr.Location())
	}
	fresh, err := ir.Promote(v, v.Type())
	if err != nil {
		// Unreachable: promote(v, type_of(v)) never fails (§8.1).
		return nil, diagnose(err, expr.Location())
	}
	if ls, ok := fresh.(locatable); ok {
		ls.SetLocation(expr.Location())
	}
	return fresh, nil
}

func (st *state) evalExpressionRaw(scope *mapping.Scope, expr ast.Expression) (ir.Value, error) {
	switch n := expr.(type) {
	case *ast.IntegerLiteral:
		return &ir.ConstInt{Value: n.Value}, nil
	case *ast.FloatLiteral:
		return &ir.ConstReal{Value: n.Value}, nil
	case *ast.StringLiteral:
		return &ir.ConstString{Value: n.Value}, nil
	case *ast.JsonLiteral:
		return &ir.ConstJson{Value: n.Value}, nil
	case *ast.Identifier:
		v, ok := scope.Lookup(strings.ToLower(n.Name))
		if !ok {
			return nil, &overload.NameResolutionFailure{Name: n.Name}
		}
		return v, nil
	case *ast.Index:
		return st.evalIndex(scope, n)
	case *ast.FunctionCall:
		args, err := st.evalExpressionList(scope, n.Arguments.Get())
		if err != nil {
			return nil, err
		}
		return st.a.Functions.Call(n.Name.Get().Name, args)
	case *ast.Negate:
		arg, err := st.evaluateExpression(scope, n.Expr.Get())
		if err != nil {
			return nil, err
		}
		return st.a.Functions.Call("operator-", []ir.Value{arg})
	case *ast.Power:
		return st.evalBinary(scope, "operator**", &n.BinaryExpr)
	case *ast.Multiply:
		return st.evalBinary(scope, "operator*", &n.BinaryExpr)
	case *ast.Divide:
		return st.evalBinary(scope, "operator/", &n.BinaryExpr)
	case *ast.Add:
		return st.evalBinary(scope, "operator+", &n.BinaryExpr)
	case *ast.Subtract:
		return st.evalBinary(scope, "operator-", &n.BinaryExpr)
	case *ast.MatrixLiteral1:
		return st.evalMatrixLiteral(scope, [][]ast.Expression{n.Pairs.Get().Items.Items()}, n.Location())
	case *ast.MatrixLiteral2:
		return st.evalMatrixLiteral(scope, matrixRows(n), n.Location())
	case *ast.ErroneousExpression:
		return nil, diagnostics.New(diagnostics.KindParseError, "cannot evaluate an erroneous expression")
	default:
		return nil, diagnostics.New(diagnostics.KindParseError, "unsupported expression node %T", expr)
	}
}

func matrixRows(n *ast.MatrixLiteral2) [][]ast.Expression {
	rows := n.Rows.Items()
	out := make([][]ast.Expression, len(rows))
	for i, r := range rows {
		out[i] = r.Items.Items()
	}
	return out
}

func (st *state) evalExpressionList(scope *mapping.Scope, list *ast.ExpressionList) ([]ir.Value, error) {
	items := list.Items.Items()
	out := make([]ir.Value, len(items))
	for i, e := range items {
		v, err := st.evaluateExpression(scope, e)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (st *state) evalBinary(scope *mapping.Scope, opName string, b *ast.BinaryExpr) (ir.Value, error) {
	lhs, err := st.evaluateExpression(scope, b.Lhs.Get())
	if err != nil {
		return nil, err
	}
	rhs, err := st.evaluateExpression(scope, b.Rhs.Get())
	if err != nil {
		return nil, err
	}
	return st.a.Functions.Call(opName, []ir.Value{lhs, rhs})
}

// evalIndex is Index{expr, indices} (§4.5.1): the base must evaluate to a
// QubitRefs or BitRefs, and the index list is resolved relative to the
// register's *current* index list, applying indirection (index i of the
// result refers to index-list entry i, not qubit i).
func (st *state) evalIndex(scope *mapping.Scope, n *ast.Index) (ir.Value, error) {
	base, err := st.evaluateExpression(scope, n.Expr.Get())
	if err != nil {
		return nil, err
	}
	switch b := base.(type) {
	case *ir.QubitRefs:
		positions, err := st.resolveIndexList(scope, n.Indices.Get(), b.Index.Len())
		if err != nil {
			return nil, err
		}
		out := &ir.QubitRefs{}
		for _, p := range positions {
			out.Index.Append(&ir.ConstInt{Value: b.Index.At(p).Value}, -1)
		}
		return out, nil
	case *ir.BitRefs:
		positions, err := st.resolveIndexList(scope, n.Indices.Get(), b.Index.Len())
		if err != nil {
			return nil, err
		}
		out := &ir.BitRefs{}
		for _, p := range positions {
			out.Index.Append(&ir.ConstInt{Value: b.Index.At(p).Value}, -1)
		}
		return out, nil
	default:
		return nil, diagnostics.New(diagnostics.KindParseError,
			"a value of type %s cannot be indexed", base.Type().String())
	}
}

// resolveIndexList is §4.5.2: it resolves each entry to zero-based
// positions into a register of size n, bounds-checking as it goes.
// Duplicates are permitted at this layer.
func (st *state) resolveIndexList(scope *mapping.Scope, list *ast.IndexList, n int) ([]int, error) {
	var out []int
	for _, entry := range list.Items.Items() {
		switch e := entry.(type) {
		case *ast.IndexItem:
			v, err := st.evalIndexValue(scope, e.Index.Get())
			if err != nil {
				return nil, err
			}
			if v < 0 || v >= int64(n) {
				return nil, diagnostics.New(diagnostics.KindIndexOutOfRange,
					"index %d out of range (size %d)", v, n).WithLocation(e.Location())
			}
			out = append(out, int(v))
		case *ast.IndexRange:
			first, err := st.evalIndexValue(scope, e.First.Get())
			if err != nil {
				return nil, err
			}
			last, err := st.evalIndexValue(scope, e.Last.Get())
			if err != nil {
				return nil, err
			}
			if first < 0 || last >= int64(n) || first > last {
				return nil, diagnostics.New(diagnostics.KindRangeMalformed,
					"index range %d:%d is malformed for size %d", first, last, n).WithLocation(e.Location())
			}
			for i := first; i <= last; i++ {
				out = append(out, int(i))
			}
		}
	}
	return out, nil
}

func (st *state) evalIndexValue(scope *mapping.Scope, expr ast.Expression) (int64, error) {
	v, err := st.evaluateExpression(scope, expr)
	if err != nil {
		return 0, err
	}
	ci, ok := v.(*ir.ConstInt)
	if !ok {
		switch v.Type().Kind() {
		case ir.RealKind, ir.ComplexKind:
			return 0, diagnostics.New(diagnostics.KindIndexNotInteger,
				"index must be an integer, got %s", v.Type().String()).WithLocation(expr.Location())
		default:
			return 0, diagnostics.New(diagnostics.KindIndexNotConstant,
				"index must be a constant integer, got %s", v.Type().String()).WithLocation(expr.Location())
		}
	}
	return ci.Value, nil
}

// evalMatrixLiteral is the MatrixLiteral1/MatrixLiteral2 arm of §4.5.1: it
// evaluates every cell, then attempts ConstRealMatrix before falling back
// to ConstComplexMatrix.
func (st *state) evalMatrixLiteral(scope *mapping.Scope, rows [][]ast.Expression, loc diagnostics.Location) (ir.Value, error) {
	cells := make([][]ir.Value, len(rows))
	for i, row := range rows {
		cells[i] = make([]ir.Value, len(row))
		for j, e := range row {
			v, err := st.evaluateExpression(scope, e)
			if err != nil {
				return nil, err
			}
			cells[i][j] = v
		}
	}
	if real, ok := tryBuildRealMatrix(cells); ok {
		return &ir.ConstRealMatrix{Value: real}, nil
	}
	if cplx, ok := tryBuildComplexMatrix(cells); ok {
		return &ir.ConstComplexMatrix{Value: cplx}, nil
	}
	return nil, diagnostics.New(diagnostics.KindInvalidMatrixLiteral,
		"only constant real or complex matrices are supported").WithLocation(loc)
}

func tryBuildRealMatrix(cells [][]ir.Value) (*primitives.Matrix[float64], bool) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, false
	}
	cols := len(cells[0])
	rows := make([][]float64, len(cells))
	for i, row := range cells {
		if len(row) != cols {
			return nil, false
		}
		rows[i] = make([]float64, cols)
		for j, v := range row {
			promoted, err := ir.Promote(v, ir.Real(false))
			if err != nil {
				return nil, false
			}
			cr, ok := promoted.(*ir.ConstReal)
			if !ok {
				return nil, false
			}
			rows[i][j] = cr.Value
		}
	}
	m, err := primitives.NewMatrixFromRows(rows)
	if err != nil {
		return nil, false
	}
	return m, true
}

func tryBuildComplexMatrix(cells [][]ir.Value) (*primitives.Matrix[complex128], bool) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, false
	}
	cols := len(cells[0])
	rows := make([][]complex128, len(cells))
	for i, row := range cells {
		if len(row) != cols {
			return nil, false
		}
		rows[i] = make([]complex128, cols)
		for j, v := range row {
			promoted, err := ir.Promote(v, ir.Complex(false))
			if err != nil {
				return nil, false
			}
			cc, ok := promoted.(*ir.ConstComplex)
			if !ok {
				return nil, false
			}
			rows[i][j] = cc.Value
		}
	}
	m, err := primitives.NewMatrixFromRows(rows)
	if err != nil {
		return nil, false
	}
	return m, true
}
