package overload

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jvanstraten/libcqasm/ir"
)

func TestFirstApplicableOverloadWins(t *testing.T) {
	ft := NewFunctionTable()
	ft.Register("foo", []ir.Type{ir.Int(false)}, func(args []ir.Value) (ir.Value, error) {
		return &ir.ConstInt{Value: args[0].(*ir.ConstInt).Value}, nil
	})
	ft.Register("foo", []ir.Type{ir.Real(false)}, func(args []ir.Value) (ir.Value, error) {
		return &ir.ConstReal{Value: args[0].(*ir.ConstReal).Value}, nil
	})

	result, err := ft.Call("foo", []ir.Value{&ir.ConstInt{Value: 3}})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if _, ok := result.(*ir.ConstInt); !ok {
		t.Errorf("Call(foo, 3) selected a %T overload, want *ir.ConstInt (the Int overload, registered first)", result)
	}
}

func TestRegisteringSameOverloadTwiceKeepsFirst(t *testing.T) {
	ft := NewFunctionTable()
	ft.Register("id", []ir.Type{ir.Int(false)}, func(args []ir.Value) (ir.Value, error) {
		return &ir.ConstInt{Value: 1}, nil
	})
	ft.Register("id", []ir.Type{ir.Int(false)}, func(args []ir.Value) (ir.Value, error) {
		return &ir.ConstInt{Value: 2}, nil
	})
	result, err := ft.Call("id", []ir.Value{&ir.ConstInt{Value: 0}})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	if result.(*ir.ConstInt).Value != 1 {
		t.Errorf("Call(id, 0) = %v, want the first-registered overload's result (1)", result.(*ir.ConstInt).Value)
	}
}

func TestCaseInsensitiveLookup(t *testing.T) {
	ft := NewFunctionTable()
	ft.Register("Foo", []ir.Type{ir.Int(false)}, func(args []ir.Value) (ir.Value, error) {
		return args[0], nil
	})
	if _, err := ft.Call("FOO", []ir.Value{&ir.ConstInt{Value: 1}}); err != nil {
		t.Errorf("Call(FOO, ...): %v", err)
	}
}

func TestNameResolutionFailure(t *testing.T) {
	ft := NewFunctionTable()
	_, err := ft.Call("missing", nil)
	if _, ok := err.(*NameResolutionFailure); !ok {
		t.Errorf("Call(missing) error = %T, want *NameResolutionFailure", err)
	}
}

func TestOverloadResolutionFailureCarriesCandidates(t *testing.T) {
	it := NewInstructionTable()
	if err := it.Register("cnot", "qq", false, true, false, nil); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, _, err := it.Resolve("cnot", []ir.Value{ir.NewQubitRefs(0)})
	orf, ok := err.(*OverloadResolutionFailure)
	if !ok {
		t.Fatalf("Resolve error = %T, want *OverloadResolutionFailure", err)
	}
	want := []string{"cnot(qubit, qubit)"}
	if diff := cmp.Diff(want, orf.Candidates); diff != "" {
		t.Errorf("Candidates mismatch (-want +got):\n%s", diff)
	}
}

func TestParseShorthandUnitaryDimension(t *testing.T) {
	types, err := ParseShorthand("qqu")
	if err != nil {
		t.Fatalf("ParseShorthand: %v", err)
	}
	cm, ok := types[2].(*ir.ComplexMatrixType)
	if !ok {
		t.Fatalf("types[2] = %T, want *ir.ComplexMatrixType", types[2])
	}
	if cm.NumRows != 4 || cm.NumCols != 4 {
		t.Errorf("unitary dims = (%d,%d), want (4,4) for 2 qubit params", cm.NumRows, cm.NumCols)
	}
}

func TestParseShorthandAssignable(t *testing.T) {
	types, err := ParseShorthand("qB")
	if err != nil {
		t.Fatalf("ParseShorthand: %v", err)
	}
	if types[1].Assignable() != true {
		t.Errorf("uppercase B should produce an assignable bool parameter")
	}
	if types[0].Assignable() {
		t.Errorf("qubit parameter should report Assignable() = false")
	}
}
