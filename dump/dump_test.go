package dump_test

import (
	"strings"
	"testing"

	"github.com/jvanstraten/libcqasm/ast"
	"github.com/jvanstraten/libcqasm/diagnostics"
	"github.com/jvanstraten/libcqasm/dump"
	"github.com/jvanstraten/libcqasm/ir"
	"github.com/jvanstraten/libcqasm/primitives"
)

func TestDumpQubitRefs(t *testing.T) {
	qr := ir.NewQubitRefs(0, 1)
	got := dump.Dump(qr)
	want := "QubitRefs(\n" +
		"    Index: [\n" +
		"        ConstInt(\n" +
		"            Value: 0\n" +
		"        )\n" +
		"        ConstInt(\n" +
		"            Value: 1\n" +
		"        )\n" +
		"    ]\n" +
		")"
	if got != want {
		t.Errorf("Dump() =\n%s\nwant:\n%s", got, want)
	}
}

func TestDumpEmptyQubitRefsRendersMissingIndex(t *testing.T) {
	qr := &ir.QubitRefs{}
	got := dump.Dump(qr)
	want := "QubitRefs(\n" +
		"    Index: !MISSING\n" +
		")"
	if got != want {
		t.Errorf("Dump() =\n%s\nwant:\n%s", got, want)
	}
}

func TestDumpInstructionShowsLocationAndEmptyAnnotations(t *testing.T) {
	instr := &ir.Instruction{Name: "h"}
	instr.Condition.Set(&ir.ConstBool{Value: true})
	instr.Operands.Append(ir.Value(&ir.ConstInt{Value: 0}), -1)
	instr.SetLocation(diagnostics.Single("t.cq", 3, 1))

	got := dump.Dump(instr)
	want := "Instruction( # t.cq:3:1\n" +
		"    Type: nil\n" +
		"    Name: \"h\"\n" +
		"    Condition: ConstBool(\n" +
		"        Value: true\n" +
		"    )\n" +
		"    Operands: [\n" +
		"        ConstInt(\n" +
		"            Value: 0\n" +
		"        )\n" +
		"    ]\n" +
		"    Annotations: []\n" +
		")"
	if got != want {
		t.Errorf("Dump() =\n%s\nwant:\n%s", got, want)
	}
}

func TestDumpUnsetOneRendersMissingAndMarksIncomplete(t *testing.T) {
	n := &ast.Negate{}
	got := dump.Dump(n)
	if !strings.HasPrefix(got, "!Negate(") {
		t.Errorf("Dump() = %q, want a leading \"!Negate(\" for an unset Expr", got)
	}
	if !strings.Contains(got, "Expr: !MISSING") {
		t.Errorf("Dump() =\n%s\nwant a line \"Expr: !MISSING\"", got)
	}
}

func TestDumpProgramWithoutErrorModelRendersDash(t *testing.T) {
	p := &ir.Program{NumQubits: 1}
	got := dump.Dump(p)
	if !strings.Contains(got, "ErrorModel: -") {
		t.Errorf("Dump() =\n%s\nwant a line \"ErrorModel: -\"", got)
	}
}

func TestDumpMatrixLiteralShowsMatrixValue(t *testing.T) {
	mat, err := primitives.NewMatrixFromRows([][]float64{{1, 0}, {0, 1}})
	if err != nil {
		t.Fatal(err)
	}
	m := &ir.ConstRealMatrix{Value: mat}
	got := dump.Dump(m)
	if !strings.Contains(got, "Value: [[1,0; 0,1]]") {
		t.Errorf("Dump() =\n%s\nwant a line containing \"Value: [[1,0; 0,1]]\"", got)
	}
}
