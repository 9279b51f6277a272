package overload

import "github.com/jvanstraten/libcqasm/ir"

// InstructionType is the tag registered for an instruction overload
// (§4.4): a name, its parameter types, the three host-declared behavior
// flags, and opaque host annotations.
type InstructionType struct {
	Name              string
	ParamTypes        []ir.Type
	AllowConditional  bool
	AllowParallel     bool
	AllowReusedQubits bool
	HostAnnotations   any
}

// InstructionTable is a case-insensitive table of instruction (gate)
// overloads.
type InstructionTable struct {
	table *Table[*InstructionType]
}

// NewInstructionTable returns an empty instruction table.
func NewInstructionTable() *InstructionTable {
	return &InstructionTable{table: New[*InstructionType]()}
}

// Register adds an instruction overload built from a parameter-type
// shorthand (§4.4).
func (t *InstructionTable) Register(name, shorthand string, allowConditional, allowParallel, allowReusedQubits bool, hostAnnotations any) error {
	paramTypes, err := ParseShorthand(shorthand)
	if err != nil {
		return err
	}
	t.table.Register(name, &InstructionType{
		Name:              name,
		ParamTypes:        paramTypes,
		AllowConditional:  allowConditional,
		AllowParallel:     allowParallel,
		AllowReusedQubits: allowReusedQubits,
		HostAnnotations:   hostAnnotations,
	}, paramTypes)
	return nil
}

// Resolve selects the first applicable overload of name for args, returning
// its InstructionType and the promoted arguments.
func (t *InstructionTable) Resolve(name string, args []ir.Value) (*InstructionType, []ir.Value, error) {
	return t.table.Resolve(name, args)
}

// Has reports whether any overload is registered under name.
func (t *InstructionTable) Has(name string) bool {
	return t.table.Has(name)
}
