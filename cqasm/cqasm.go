// Package cqasm is the public library surface (§6.2): a host registers its
// instruction, error-model, and function set against a Library, then calls
// Analyze to turn cQASM 1.x source text into a semantic Program plus an
// accumulated diagnostics list. It is a thin façade over parser+analyzer,
// grounded on the teacher's own top-level package shape (a single entry
// point — gx.Run/gx.Build in the teacher — wrapping the lexer/parser/
// builder chain the way this package wraps lexer/parser/analyzer).
package cqasm

import (
	"github.com/jvanstraten/libcqasm/analyzer"
	"github.com/jvanstraten/libcqasm/diagnostics"
	"github.com/jvanstraten/libcqasm/ir"
	"github.com/jvanstraten/libcqasm/overload"
	"github.com/jvanstraten/libcqasm/parser"
	"github.com/jvanstraten/libcqasm/primitives"
)

// Options configures a Library; it mirrors analyzer.Options so host code
// never needs to import the analyzer package directly.
type Options struct {
	// MaxVersion rejects source declaring a version beyond it. The zero
	// value means "no ceiling".
	MaxVersion primitives.Version

	// Globals pre-populates the mapping scope with host-defined constant
	// identifiers, visible before the default q/b registers.
	Globals map[string]ir.Value
}

// Library is a registered instruction/error-model/function set, ready to
// analyze any number of source texts. It is safe for concurrent Analyze
// calls once registration is complete; registration itself is not
// concurrency-safe (§5: "do not mutate [tables] concurrently with a call to
// Analyze").
type Library struct {
	a *analyzer.Analyzer
}

// New returns an empty Library; call the Register* methods to populate its
// callable tables before calling Analyze.
func New(opts Options) *Library {
	return &Library{a: analyzer.New(analyzer.Options{
		MaxVersion: opts.MaxVersion,
		Globals:    opts.Globals,
	})}
}

// RegisterInstruction adds an instruction (gate) overload (§6.2): name,
// a parameter-type shorthand (§4.4), the three host-declared behavior
// flags, and opaque host annotations retrievable from the resulting
// semantic tree's Instruction.Type.
func (l *Library) RegisterInstruction(name, shorthand string, allowConditional, allowParallel, allowReusedQubits bool, hostAnnotations any) error {
	return l.a.Instructions.Register(name, shorthand, allowConditional, allowParallel, allowReusedQubits, hostAnnotations)
}

// RegisterErrorModel adds an error-model overload (§6.2).
func (l *Library) RegisterErrorModel(name, shorthand string, hostAnnotations any) error {
	return l.a.ErrorModels.Register(name, shorthand, hostAnnotations)
}

// RegisterFunction adds a constant-expression function or operator overload
// (§6.2). impl is invoked with arguments already promoted to paramTypes.
func (l *Library) RegisterFunction(name string, paramTypes []ir.Type, impl func(args []ir.Value) (ir.Value, error)) {
	l.a.Functions.Register(name, paramTypes, overload.FunctionImpl(impl))
}

// Analyze parses and analyzes source, returning the resulting semantic
// Program (always non-nil, per §7's "a possibly partially filled semantic
// program in all cases") alongside every diagnostic raised during either
// phase, parser diagnostics first, in discovery order (§6.3).
func (l *Library) Analyze(filename, source string) (*ir.Program, *diagnostics.List) {
	root, list := parser.Parse(filename, source)
	prog, analyzeList := l.a.Analyze(root)
	for _, e := range analyzeList.Errors() {
		list.Append(e)
	}
	return prog, list
}
