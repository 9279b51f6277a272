package analyzer

import (
	"strings"
	"testing"

	"github.com/jvanstraten/libcqasm/diagnostics"
	"github.com/jvanstraten/libcqasm/ir"
	"github.com/jvanstraten/libcqasm/parser"
)

func TestAnalyzeMinimalProgram(t *testing.T) {
	root, errs := parser.Parse("t.cq", "version 1.0\nqubits 1\nh q[0]\n")
	if !errs.Empty() {
		t.Fatalf("parse errors: %v", errs.Strings())
	}
	a := New(Options{})
	if err := a.Instructions.Register("h", "q", false, true, false, nil); err != nil {
		t.Fatal(err)
	}
	prog, list := a.Analyze(root)
	if !list.Empty() {
		t.Fatalf("analyze errors: %v", list.Strings())
	}
	if prog.Subcircuits.Len() != 1 {
		t.Fatalf("subcircuit count = %d, want 1", prog.Subcircuits.Len())
	}
	sc := prog.Subcircuits.At(0)
	if sc.Bundles.Len() != 1 {
		t.Fatalf("bundle count = %d, want 1", sc.Bundles.Len())
	}
	bundle := sc.Bundles.At(0)
	if bundle.Items.Len() != 1 {
		t.Fatalf("instruction count = %d, want 1", bundle.Items.Len())
	}
	instr := bundle.Items.At(0)
	qr, ok := instr.Operands.At(0).(*ir.QubitRefs)
	if !ok || qr.Index.Len() != 1 || qr.Index.At(0).Value != 0 {
		t.Errorf("operand = %v, want QubitRefs[0]", instr.Operands.At(0))
	}
	cond, ok := instr.Condition.Get().(*ir.ConstBool)
	if !ok || !cond.Value {
		t.Errorf("condition = %v, want ConstBool(true)", instr.Condition.Get())
	}
}

func TestAnalyzeOutOfRangeIndex(t *testing.T) {
	root, errs := parser.Parse("t.cq", "version 1.0\nqubits 2\nh q[5]\n")
	if !errs.Empty() {
		t.Fatalf("parse errors: %v", errs.Strings())
	}
	a := New(Options{})
	if err := a.Instructions.Register("h", "q", false, true, false, nil); err != nil {
		t.Fatal(err)
	}
	prog, list := a.Analyze(root)
	if list.Empty() {
		t.Fatalf("expected exactly one error, got none")
	}
	errors := list.Errors()
	if len(errors) != 1 {
		t.Fatalf("error count = %d, want 1", len(errors))
	}
	de, ok := errors[0].(*diagnostics.Error)
	if !ok || de.Kind != diagnostics.KindIndexOutOfRange {
		t.Fatalf("error = %v, want KindIndexOutOfRange", errors[0])
	}
	if got := errors[0].Error(); !strings.Contains(got, "index 5 out of range (size 2)") {
		t.Errorf("message = %q, want to mention %q", got, "index 5 out of range (size 2)")
	}
	sc := prog.Subcircuits.At(0)
	if sc.Bundles.Len() != 0 {
		t.Fatalf("bundle count = %d, want 0", sc.Bundles.Len())
	}
}

func TestAnalyzeConditionalElimination(t *testing.T) {
	root, errs := parser.Parse("t.cq", "version 1.0\nqubits 1\nc-x false, q[0]\n")
	if !errs.Empty() {
		t.Fatalf("parse errors: %v", errs.Strings())
	}
	a := New(Options{Globals: map[string]ir.Value{"false": &ir.ConstBool{Value: false}}})
	if err := a.Instructions.Register("x", "q", true, true, false, nil); err != nil {
		t.Fatal(err)
	}
	prog, list := a.Analyze(root)
	if !list.Empty() {
		t.Fatalf("analyze errors: %v", list.Strings())
	}
	sc := prog.Subcircuits.At(0)
	if sc.Bundles.Len() != 0 {
		t.Fatalf("bundle count = %d, want 0", sc.Bundles.Len())
	}
}

func TestAnalyzeParallelBundleQubitReuse(t *testing.T) {
	root, errs := parser.Parse("t.cq", "version 1.0\nqubits 2\n{ cnot q[0], q[0] }\n")
	if !errs.Empty() {
		t.Fatalf("parse errors: %v", errs.Strings())
	}
	a := New(Options{})
	if err := a.Instructions.Register("cnot", "qq", false, true, false, nil); err != nil {
		t.Fatal(err)
	}
	_, list := a.Analyze(root)
	errors := list.Errors()
	if len(errors) != 1 {
		t.Fatalf("error count = %d, want 1: %v", len(errors), list.Strings())
	}
	de, ok := errors[0].(*diagnostics.Error)
	if !ok || de.Kind != diagnostics.KindQubitsNotUnique {
		t.Fatalf("error = %v, want KindQubitsNotUnique", errors[0])
	}
}

func TestAnalyzeMatrixPromotionWidensIntToComplex(t *testing.T) {
	root, errs := parser.Parse("t.cq", "version 1.0\nqubits 1\nu q[0], [[1,0; 0,1]]\n")
	if !errs.Empty() {
		t.Fatalf("parse errors: %v", errs.Strings())
	}
	a := New(Options{})
	if err := a.Instructions.Register("u", "qu", false, true, false, nil); err != nil {
		t.Fatal(err)
	}
	prog, list := a.Analyze(root)
	if !list.Empty() {
		t.Fatalf("analyze errors: %v", list.Strings())
	}
	instr := prog.Subcircuits.At(0).Bundles.At(0).Items.At(0)
	cm, ok := instr.Operands.At(1).(*ir.ConstComplexMatrix)
	if !ok {
		t.Fatalf("matrix operand = %T, want *ir.ConstComplexMatrix", instr.Operands.At(1))
	}
	want := [][]complex128{{complex(1, 0), 0}, {0, complex(1, 0)}}
	for r := 1; r <= 2; r++ {
		for c := 1; c <= 2; c++ {
			if cm.Value.At(r, c) != want[r-1][c-1] {
				t.Errorf("matrix[%d,%d] = %v, want %v", r, c, cm.Value.At(r, c), want[r-1][c-1])
			}
		}
	}
}

func TestAnalyzeOverloadOrdering(t *testing.T) {
	a := New(Options{})
	a.Functions.Register("foo", []ir.Type{ir.Int(false)}, func(args []ir.Value) (ir.Value, error) {
		return &ir.ConstInt{Value: args[0].(*ir.ConstInt).Value}, nil
	})
	a.Functions.Register("foo", []ir.Type{ir.Real(false)}, func(args []ir.Value) (ir.Value, error) {
		return &ir.ConstReal{Value: args[0].(*ir.ConstReal).Value}, nil
	})
	result, err := a.Functions.Call("foo", []ir.Value{&ir.ConstInt{Value: 3}})
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := result.(*ir.ConstInt); !ok {
		t.Errorf("result = %T, want *ir.ConstInt", result)
	}
}

func TestAnalyzeNumQubitsZeroIsError(t *testing.T) {
	root, errs := parser.Parse("t.cq", "version 1.0\nqubits 0\nh q[0]\n")
	if !errs.Empty() {
		t.Fatalf("parse errors: %v", errs.Strings())
	}
	a := New(Options{})
	a.Instructions.Register("h", "q", false, true, false, nil)
	prog, list := a.Analyze(root)
	if list.Empty() {
		t.Fatalf("expected an error for qubits 0")
	}
	if prog.NumQubits != 0 {
		t.Errorf("num qubits = %d, want 0 fallback", prog.NumQubits)
	}
}

func TestAnalyzeUndefinedInstructionIsNameResolutionFailure(t *testing.T) {
	root, errs := parser.Parse("t.cq", "version 1.0\nqubits 1\nbogus q[0]\n")
	if !errs.Empty() {
		t.Fatalf("parse errors: %v", errs.Strings())
	}
	a := New(Options{})
	_, list := a.Analyze(root)
	errors := list.Errors()
	if len(errors) != 1 {
		t.Fatalf("error count = %d, want 1", len(errors))
	}
	de, ok := errors[0].(*diagnostics.Error)
	if !ok || de.Kind != diagnostics.KindNameResolutionFailure {
		t.Fatalf("error = %v, want KindNameResolutionFailure", errors[0])
	}
}

func TestAnalyzeDefaultSubcircuitIsImplicit(t *testing.T) {
	root, errs := parser.Parse("t.cq", "version 1.0\nqubits 1\nh q[0]\nh q[0]\n")
	if !errs.Empty() {
		t.Fatalf("parse errors: %v", errs.Strings())
	}
	a := New(Options{})
	a.Instructions.Register("h", "q", false, true, false, nil)
	prog, list := a.Analyze(root)
	if !list.Empty() {
		t.Fatalf("analyze errors: %v", list.Strings())
	}
	if prog.Subcircuits.Len() != 1 {
		t.Fatalf("subcircuit count = %d, want 1 (implicit default)", prog.Subcircuits.Len())
	}
	if prog.Subcircuits.At(0).Bundles.Len() != 2 {
		t.Fatalf("bundle count = %d, want 2", prog.Subcircuits.At(0).Bundles.Len())
	}
}

func TestAnalyzeMappingAliasesAreCaseInsensitive(t *testing.T) {
	root, errs := parser.Parse("t.cq", "version 1.0\nqubits 1\nmap q[0], MyQubit\nh myqubit\n")
	if !errs.Empty() {
		t.Fatalf("parse errors: %v", errs.Strings())
	}
	a := New(Options{})
	a.Instructions.Register("h", "q", false, true, false, nil)
	_, list := a.Analyze(root)
	if !list.Empty() {
		t.Fatalf("analyze errors: %v", list.Strings())
	}
}

func TestAnalyzeConditionalWithoutAllowConditionalFails(t *testing.T) {
	root, errs := parser.Parse("t.cq", "version 1.0\nqubits 1\nc-x false, q[0]\n")
	if !errs.Empty() {
		t.Fatalf("parse errors: %v", errs.Strings())
	}
	a := New(Options{Globals: map[string]ir.Value{"false": &ir.ConstBool{Value: false}}})
	a.Instructions.Register("x", "q", false, true, false, nil)
	_, list := a.Analyze(root)
	errors := list.Errors()
	if len(errors) != 1 {
		t.Fatalf("error count = %d, want 1", len(errors))
	}
	de, ok := errors[0].(*diagnostics.Error)
	if !ok || de.Kind != diagnostics.KindConditionalExecutionNotSupported {
		t.Fatalf("error = %v, want KindConditionalExecutionNotSupported", errors[0])
	}
}

func TestAnalyzeErrorModelDeclIsResolved(t *testing.T) {
	root, errs := parser.Parse("t.cq", "version 1.0\nqubits 1\nerror_model depolarizing(0.1)\nh q[0]\n")
	if !errs.Empty() {
		t.Fatalf("parse errors: %v", errs.Strings())
	}
	a := New(Options{})
	a.Instructions.Register("h", "q", false, true, false, nil)
	if err := a.ErrorModels.Register("depolarizing", "r", nil); err != nil {
		t.Fatal(err)
	}
	prog, list := a.Analyze(root)
	if !list.Empty() {
		t.Fatalf("analyze errors: %v", list.Strings())
	}
	if prog.ErrorModel.IsEmpty() {
		t.Fatalf("expected an error model to be resolved")
	}
	if prog.ErrorModel.Get().Name != "depolarizing" {
		t.Errorf("error model name = %q, want depolarizing", prog.ErrorModel.Get().Name)
	}
}

func TestAnalyzeDuplicateErrorModelIsRejected(t *testing.T) {
	src := "version 1.0\nqubits 1\nerror_model depolarizing(0.1)\nerror_model depolarizing(0.2)\nh q[0]\n"
	root, errs := parser.Parse("t.cq", src)
	if !errs.Empty() {
		t.Fatalf("parse errors: %v", errs.Strings())
	}
	a := New(Options{})
	a.Instructions.Register("h", "q", false, true, false, nil)
	a.ErrorModels.Register("depolarizing", "r", nil)
	_, list := a.Analyze(root)
	errors := list.Errors()
	if len(errors) != 1 {
		t.Fatalf("error count = %d, want 1", len(errors))
	}
	de, ok := errors[0].(*diagnostics.Error)
	if !ok || de.Kind != diagnostics.KindDuplicateErrorModel {
		t.Fatalf("error = %v, want KindDuplicateErrorModel", errors[0])
	}
}

func TestAnalyzeOperatorLoweringUsesSyntheticNames(t *testing.T) {
	root, errs := parser.Parse("t.cq", "version 1.0\nqubits 1\nmap 1+2, total\nh q[0]\n")
	if !errs.Empty() {
		t.Fatalf("parse errors: %v", errs.Strings())
	}
	a := New(Options{})
	a.Instructions.Register("h", "q", false, true, false, nil)
	a.Functions.Register("operator+", []ir.Type{ir.Int(false), ir.Int(false)}, func(args []ir.Value) (ir.Value, error) {
		return &ir.ConstInt{Value: args[0].(*ir.ConstInt).Value + args[1].(*ir.ConstInt).Value}, nil
	})
	_, list := a.Analyze(root)
	if !list.Empty() {
		t.Fatalf("analyze errors: %v", list.Strings())
	}
}

func TestAnalyzeVersionExceedingMaxIsRejected(t *testing.T) {
	root, errs := parser.Parse("t.cq", "version 2.0\nqubits 1\nh q[0]\n")
	if !errs.Empty() {
		t.Fatalf("parse errors: %v", errs.Strings())
	}
	a := New(Options{MaxVersion: []int{1, 0}})
	a.Instructions.Register("h", "q", false, true, false, nil)
	_, list := a.Analyze(root)
	errors := list.Errors()
	if len(errors) != 1 {
		t.Fatalf("error count = %d, want 1", len(errors))
	}
	de, ok := errors[0].(*diagnostics.Error)
	if !ok || de.Kind != diagnostics.KindVersionUnsupported {
		t.Fatalf("error = %v, want KindVersionUnsupported", errors[0])
	}
}
