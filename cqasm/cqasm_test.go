package cqasm_test

import (
	"testing"

	"github.com/jvanstraten/libcqasm/cqasm"
	"github.com/jvanstraten/libcqasm/ir"
)

func TestLibraryAnalyzeEndToEnd(t *testing.T) {
	lib := cqasm.New(cqasm.Options{})
	if err := lib.RegisterInstruction("h", "q", false, true, false, nil); err != nil {
		t.Fatal(err)
	}
	prog, list := lib.Analyze("t.cq", "version 1.0\nqubits 1\nh q[0]\n")
	if !list.Empty() {
		t.Fatalf("unexpected diagnostics: %v", list.Strings())
	}
	if prog.Subcircuits.Len() != 1 {
		t.Fatalf("subcircuit count = %d, want 1", prog.Subcircuits.Len())
	}
}

func TestLibraryAnalyzeReportsSyntaxErrors(t *testing.T) {
	lib := cqasm.New(cqasm.Options{})
	prog, list := lib.Analyze("t.cq", "this is not cqasm {{{\n")
	if prog == nil {
		t.Fatalf("Analyze() returned a nil Program, want a partially filled one")
	}
	if list.Empty() {
		t.Fatalf("expected at least one diagnostic for malformed source")
	}
}

func TestLibraryRegisterFunctionIsUsableByOperators(t *testing.T) {
	lib := cqasm.New(cqasm.Options{})
	lib.RegisterFunction("operator+", []ir.Type{ir.Int(false), ir.Int(false)}, func(args []ir.Value) (ir.Value, error) {
		return &ir.ConstInt{Value: args[0].(*ir.ConstInt).Value + args[1].(*ir.ConstInt).Value}, nil
	})
	lib.RegisterInstruction("h", "q", false, true, false, nil)
	_, list := lib.Analyze("t.cq", "version 1.0\nqubits 1\nmap 1+2, total\nh q[0]\n")
	if !list.Empty() {
		t.Fatalf("unexpected diagnostics: %v", list.Strings())
	}
}

func TestLibraryRegisterErrorModel(t *testing.T) {
	lib := cqasm.New(cqasm.Options{})
	lib.RegisterInstruction("h", "q", false, true, false, nil)
	if err := lib.RegisterErrorModel("depolarizing", "r", nil); err != nil {
		t.Fatal(err)
	}
	prog, list := lib.Analyze("t.cq", "version 1.0\nqubits 1\nerror_model depolarizing(0.1)\nh q[0]\n")
	if !list.Empty() {
		t.Fatalf("unexpected diagnostics: %v", list.Strings())
	}
	if prog.ErrorModel.IsEmpty() {
		t.Fatalf("expected an error model to be resolved")
	}
}

func TestLibraryGlobalsArePassedThrough(t *testing.T) {
	lib := cqasm.New(cqasm.Options{Globals: map[string]ir.Value{"false": &ir.ConstBool{Value: false}}})
	lib.RegisterInstruction("x", "q", true, true, false, nil)
	prog, list := lib.Analyze("t.cq", "version 1.0\nqubits 1\nc-x false, q[0]\n")
	if !list.Empty() {
		t.Fatalf("unexpected diagnostics: %v", list.Strings())
	}
	if prog.Subcircuits.At(0).Bundles.Len() != 0 {
		t.Fatalf("bundle count = %d, want 0 (conditional eliminated)", prog.Subcircuits.At(0).Bundles.Len())
	}
}
