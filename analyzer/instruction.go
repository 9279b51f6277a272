package analyzer

import (
	"golang.org/x/exp/slices"

	"github.com/jvanstraten/libcqasm/ast"
	"github.com/jvanstraten/libcqasm/diagnostics"
	"github.com/jvanstraten/libcqasm/ir"
	"github.com/jvanstraten/libcqasm/mapping"
	"github.com/jvanstraten/libcqasm/tree"
)

// resolveInstruction is §4.5.3. A nil, nil return means the instruction was
// statically eliminated by a false condition (step 4): the caller must not
// treat that as a failure.
func (st *state) resolveInstruction(scope *mapping.Scope, instr *ast.Instruction, notFirstInBundle bool) (*ir.Instruction, error) {
	args, err := st.evalExpressionList(scope, instr.Operands.Get())
	if err != nil {
		return nil, err
	}

	it, promoted, err := st.a.Instructions.Resolve(instr.Name.Get().Name, args)
	if err != nil {
		return nil, diagnose(err, instr.Location())
	}

	if !it.AllowReusedQubits {
		if dup, ok := firstReusedQubit(promoted); ok {
			return nil, diagnostics.New(diagnostics.KindQubitsNotUnique,
				"qubit %d is referenced more than once by %q", dup, it.Name).WithLocation(instr.Location())
		}
	}

	condition := ir.Value(&ir.ConstBool{Value: true})
	if cexpr, ok := instr.Condition.GetOk(); ok {
		if !it.AllowConditional {
			return nil, diagnostics.New(diagnostics.KindConditionalExecutionNotSupported,
				"instruction %q does not support conditional execution", it.Name).WithLocation(instr.Location())
		}
		cval, err := st.evaluateExpression(scope, cexpr)
		if err != nil {
			return nil, err
		}
		promotedCond, err := ir.Promote(cval, ir.Bool(false))
		if err != nil {
			return nil, diagnose(err, cexpr.Location())
		}
		if cb, ok := promotedCond.(*ir.ConstBool); ok && !cb.Value {
			return nil, nil
		}
		condition = promotedCond
	}

	if notFirstInBundle && !it.AllowParallel {
		return nil, diagnostics.New(diagnostics.KindNotParallelizable,
			"instruction %q cannot be parallelized in a bundle", it.Name).WithLocation(instr.Location())
	}

	anns, err := st.lowerAnnotations(scope, instr.Annotations)
	if err != nil {
		return nil, err
	}

	out := &ir.Instruction{Type: it, Name: it.Name}
	out.Condition.Set(condition)
	for _, v := range promoted {
		out.Operands.Append(v, -1)
	}
	out.Annotations = anns
	out.SetLocation(instr.Location())
	return out, nil
}

// firstReusedQubit reports the first qubit index referenced more than once
// across args, scanning in operand order so the reported index matches the
// order a reader sees in source.
func firstReusedQubit(args []ir.Value) (int64, bool) {
	var seen []int64
	for _, v := range args {
		qr, ok := v.(*ir.QubitRefs)
		if !ok {
			continue
		}
		for _, idx := range qr.Index.Items() {
			if slices.Contains(seen, idx.Value) {
				return idx.Value, true
			}
			seen = append(seen, idx.Value)
		}
	}
	return 0, false
}

// lowerAnnotations is §4.5.4.
func (st *state) lowerAnnotations(scope *mapping.Scope, anns tree.Any[*ast.AnnotationData]) (tree.Any[*ir.AnnotationData], error) {
	var out tree.Any[*ir.AnnotationData]
	for _, a := range anns.Items() {
		operands, err := st.lowerOperands(scope, a.Operands)
		if err != nil {
			return out, err
		}
		lowered := &ir.AnnotationData{
			Interface: a.Interface.Get().Name,
			Operation: a.Operation.Get().Name,
		}
		for _, v := range operands {
			lowered.Operands.Append(v, -1)
		}
		lowered.SetLocation(a.Location())
		out.Append(lowered, -1)
	}
	return out, nil
}

func (st *state) lowerOperands(scope *mapping.Scope, operands tree.Maybe[*ast.ExpressionList]) ([]ir.Value, error) {
	list, ok := operands.GetOk()
	if !ok {
		return nil, nil
	}
	return st.evalExpressionList(scope, list)
}
