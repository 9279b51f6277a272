// Package analyzer implements the pipeline (§4.5) that turns a syntactic
// tree into a semantic Program: resolving names against a mapping scope and
// callables against host-populated overload tables, and accumulating
// diagnostics rather than aborting on the first failure. Grounded on the
// teacher's build/builder.go (a multi-pass pipeline that always returns a
// partial result alongside its error list) and on
// original_source/src/cqasm-analyzer.cpp for the exact step sequence.
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

// Options configures an Analyzer beyond the callable tables it resolves
// against.
type Options struct {
	// MaxVersion, when non-empty, rejects any source whose version header
	// compares greater under primitives.Version.Compare (§C.1 of
	// SPEC_FULL.md). The zero value (nil) means "no ceiling".
	MaxVersion primitives.Version

	// Globals pre-populates the mapping scope with host-registered constant
	// identifiers (§8.4 scenario 3's "host-registered boolean false
	// identifier") before the default q/b registers are installed, so a
	// global can be shadowed by, but never shadows, q or b.
	Globals map[string]ir.Value
}

// Analyzer runs the pipeline against a syntactic tree. Tables are read
// during resolution; per §5, do not mutate them concurrently with a call to
// Analyze on the same Analyzer.
type Analyzer struct {
	Functions    *overload.FunctionTable
	Instructions *overload.InstructionTable
	ErrorModels  *overload.ErrorModelTable
	Options      Options
}

// New returns an Analyzer with empty, host-populated-on-demand tables.
func New(opts Options) *Analyzer {
	return &Analyzer{
		Functions:    overload.NewFunctionTable(),
		Instructions: overload.NewInstructionTable(),
		ErrorModels:  overload.NewErrorModelTable(),
		Options:      opts,
	}
}

// state carries the mutable context threaded through a single Analyze call.
type state struct {
	a                 *Analyzer
	scope             *mapping.Scope
	list              *diagnostics.List
	program           *ir.Program
	currentSubcircuit *ir.Subcircuit
}

// Analyze runs the full pipeline over root. It always returns a (possibly
// partially filled) semantic Program alongside the accumulated diagnostics
// (§7: "the analyzer returns a possibly partially filled semantic program
// in all cases").
func (a *Analyzer) Analyze(root ast.Root) (*ir.Program, *diagnostics.List) {
	list := &diagnostics.List{}
	prog, ok := root.(*ast.Program)
	if !ok {
		list.Append(diagnostics.New(diagnostics.KindParseError, "no complete program to analyze"))
		return &ir.Program{}, list
	}

	st := &state{a: a, scope: mapping.New(), list: list, program: &ir.Program{}}
	st.program.SetLocation(prog.Location())

	for name, v := range a.Options.Globals {
		st.scope.Define(name, v)
	}

	st.analyzeVersion(prog.Version.Get())
	numQubits := st.analyzeNumQubits(prog.NumQubits.Get())
	st.program.NumQubits = numQubits
	st.scope.InstallDefaultRegisters(numQubits, prog.NumQubits.Get().Location())

	for _, stmt := range prog.Statements.Get().Items.Items() {
		st.analyzeStatement(stmt)
	}

	return st.program, list
}

// analyzeVersion is Step A: copy the version sequence, recording but not
// aborting on a negative component, and rejecting a version that exceeds
// the host-declared ceiling.
func (st *state) analyzeVersion(v *ast.Version) {
	seq := append(primitives.Version{}, v.Items...)
	for _, c := range seq {
		if c < 0 {
			st.list.Append(diagnostics.New(diagnostics.KindParseError,
				"version component %d is negative", c).WithLocation(v.Location()))
		}
	}
	if max := st.a.Options.MaxVersion; len(max) > 0 && seq.Compare(max) > 0 {
		st.list.Append(diagnostics.New(diagnostics.KindVersionUnsupported,
			"source version %s exceeds maximum supported version %s", seq.String(), max.String()).
			WithLocation(v.Location()))
	}
	st.program.Version = seq
}

// analyzeNumQubits is Step B: evaluate the num_qubits expression under an
// empty scope, require a positive ConstInt, falling back to 0 on failure.
func (st *state) analyzeNumQubits(expr ast.Expression) int64 {
	v, err := st.evaluateExpression(mapping.New(), expr)
	if err == nil {
		v, err = ir.Promote(v, ir.Int(false))
	}
	if err == nil {
		if ci, ok := v.(*ir.ConstInt); ok && ci.Value >= 1 {
			return ci.Value
		}
		err = diagnostics.New(diagnostics.KindNumQubitsError, "qubit count must be a positive integer constant")
	}
	st.list.Append(diagnose(err, expr.Location()))
	return 0
}

// analyzeStatement is Step D's dispatch.
func (st *state) analyzeStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.Mapping:
		st.analyzeMapping(s)
	case *ast.Subcircuit:
		st.analyzeSubcircuitHeader(s)
	case *ast.Bundle:
		st.analyzeBundle(s)
	case *ast.ErrorModelDecl:
		st.analyzeErrorModelDecl(s)
	case *ast.ErroneousStatement:
		// The parser already recorded the underlying failure.
	default:
		st.list.Append(diagnostics.New(diagnostics.KindParseError,
			"unsupported statement node %T", stmt).WithLocation(stmt.Location()))
	}
}

func (st *state) analyzeMapping(s *ast.Mapping) {
	v, err := st.evaluateExpression(st.scope, s.Expr.Get())
	if err != nil {
		st.list.Append(diagnose(err, s.Location()))
		return
	}
	st.scope.Define(strings.ToLower(s.Alias.Get().Name), v)
}

func (st *state) analyzeSubcircuitHeader(s *ast.Subcircuit) {
	iterations := int64(1)
	if expr, ok := s.Iterations.GetOk(); ok {
		v, err := st.evaluateExpression(st.scope, expr)
		if err == nil {
			v, err = ir.Promote(v, ir.Int(false))
		}
		if err == nil {
			if ci, ok := v.(*ir.ConstInt); ok && ci.Value > 0 {
				iterations = ci.Value
			} else {
				err = diagnostics.New(diagnostics.KindParseError,
					"subcircuit iteration count must be a positive integer constant")
			}
		}
		if err != nil {
			st.list.Append(diagnose(err, s.Location()))
			return
		}
	}
	sc := &ir.Subcircuit{Name: s.Name.Get().Name, Iterations: iterations}
	sc.SetLocation(s.Location())
	st.program.Subcircuits.Append(sc, -1)
	st.currentSubcircuit = sc
}

// ensureSubcircuit opens a default anonymous subcircuit the first time a
// bundle appears before any `.label` header (§4.5 Step D).
func (st *state) ensureSubcircuit(loc diagnostics.Location) *ir.Subcircuit {
	if st.currentSubcircuit != nil {
		return st.currentSubcircuit
	}
	sc := &ir.Subcircuit{Name: "", Iterations: 1}
	sc.SetLocation(loc)
	st.program.Subcircuits.Append(sc, -1)
	st.currentSubcircuit = sc
	return sc
}

func (st *state) analyzeBundle(s *ast.Bundle) {
	sc := st.ensureSubcircuit(s.Location())
	bundle := &ir.Bundle{}
	for _, instrAst := range s.Items.Items() {
		result, err := st.resolveInstruction(st.scope, instrAst, bundle.Items.Len() > 0)
		if err != nil {
			st.list.Append(diagnose(err, instrAst.Location()))
			continue
		}
		if result == nil {
			continue // statically eliminated by its condition (§4.5.3 step 4)
		}
		bundle.Items.Append(result, -1)
	}
	anns, err := st.lowerAnnotations(st.scope, s.Annotations)
	if err != nil {
		st.list.Append(diagnose(err, s.Location()))
	} else {
		bundle.Annotations = anns
	}
	if bundle.Items.Len() == 0 {
		return
	}
	bundle.SetLocation(s.Location())
	sc.Bundles.Append(bundle, -1)
}

func (st *state) analyzeErrorModelDecl(s *ast.ErrorModelDecl) {
	if !st.program.ErrorModel.IsEmpty() {
		st.list.Append(diagnostics.New(diagnostics.KindDuplicateErrorModel,
			"only one error_model declaration is permitted per program").WithLocation(s.Location()))
		return
	}
	args, err := st.evalExpressionList(st.scope, s.Operands.Get())
	if err != nil {
		st.list.Append(diagnose(err, s.Location()))
		return
	}
	em, promoted, err := st.a.ErrorModels.Resolve(s.Name.Get().Name, args)
	if err != nil {
		st.list.Append(diagnose(err, s.Location()))
		return
	}
	out := &ir.ErrorModel{Type: em, Name: em.Name}
	for _, v := range promoted {
		out.Operands.Append(v, -1)
	}
	out.SetLocation(s.Location())
	st.program.ErrorModel.Set(out)
}

// diagnose attaches loc to err, wrapping bare overload-resolution failures
// (which carry no location of their own) into a *diagnostics.Error first.
func diagnose(err error, loc diagnostics.Location) *diagnostics.Error {
	switch e := err.(type) {
	case *diagnostics.Error:
		return e.WithLocation(loc)
	case *overload.NameResolutionFailure:
		return diagnostics.Wrap(diagnostics.KindNameResolutionFailure, e).WithLocation(loc)
	case *overload.OverloadResolutionFailure:
		return diagnostics.Wrap(diagnostics.KindOverloadResolutionFailure, e).WithLocation(loc)
	default:
		return diagnostics.Wrap(diagnostics.KindParseError, err).WithLocation(loc)
	}
}
