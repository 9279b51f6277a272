// Command cqasmdump is a demonstration host for the cqasm library: it
// registers a small instruction/function/error-model set, analyzes a file
// given on the command line, and prints either the resulting diagnostics or
// the dumped semantic tree. Grounded on the teacher's tools/gxflag.go-style
// small flag-based CLI wrapping a library entry point: standard `flag`
// package only, no subcommand framework.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jvanstraten/libcqasm/cqasm"
	"github.com/jvanstraten/libcqasm/dump"
	"github.com/jvanstraten/libcqasm/ir"
	"github.com/jvanstraten/libcqasm/primitives"
)

var maxVersion = flag.String("max_version", "", "reject source declaring a version beyond this one (e.g. \"1.0\"); empty means no ceiling")

func registerDemoLibrary(lib *cqasm.Library) {
	mustRegisterInstruction(lib, "h", "q", false, true, false)
	mustRegisterInstruction(lib, "x", "q", true, true, false)
	mustRegisterInstruction(lib, "y", "q", true, true, false)
	mustRegisterInstruction(lib, "z", "q", true, true, false)
	mustRegisterInstruction(lib, "cnot", "qq", true, true, false)
	mustRegisterInstruction(lib, "measure", "q", false, true, false)

	if err := lib.RegisterErrorModel("depolarizing", "r", nil); err != nil {
		panic(err)
	}

	lib.RegisterFunction("operator+", []ir.Type{ir.Int(false), ir.Int(false)}, func(args []ir.Value) (ir.Value, error) {
		return &ir.ConstInt{Value: args[0].(*ir.ConstInt).Value + args[1].(*ir.ConstInt).Value}, nil
	})
	lib.RegisterFunction("operator-", []ir.Type{ir.Int(false), ir.Int(false)}, func(args []ir.Value) (ir.Value, error) {
		return &ir.ConstInt{Value: args[0].(*ir.ConstInt).Value - args[1].(*ir.ConstInt).Value}, nil
	})
	lib.RegisterFunction("operator*", []ir.Type{ir.Int(false), ir.Int(false)}, func(args []ir.Value) (ir.Value, error) {
		return &ir.ConstInt{Value: args[0].(*ir.ConstInt).Value * args[1].(*ir.ConstInt).Value}, nil
	})
}

func mustRegisterInstruction(lib *cqasm.Library, name, shorthand string, allowConditional, allowParallel, allowReusedQubits bool) {
	if err := lib.RegisterInstruction(name, shorthand, allowConditional, allowParallel, allowReusedQubits, nil); err != nil {
		panic(err)
	}
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <file.cq>\n", os.Args[0])
		os.Exit(2)
	}
	filename := flag.Arg(0)
	source, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	opts := cqasm.Options{}
	if *maxVersion != "" {
		v, err := primitives.ParseVersion(*maxVersion)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid -max_version: %v\n", err)
			os.Exit(2)
		}
		opts.MaxVersion = v
	}

	lib := cqasm.New(opts)
	registerDemoLibrary(lib)

	prog, diags := lib.Analyze(filename, string(source))
	for _, s := range diags.Strings() {
		fmt.Fprintln(os.Stderr, s)
	}
	if !diags.Empty() {
		os.Exit(1)
	}
	fmt.Println(dump.Dump(prog))
}
