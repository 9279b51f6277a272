package overload

import "github.com/jvanstraten/libcqasm/ir"

// FunctionImpl is the closure invoked once an overload's arguments have
// been promoted. It backs constant-expression operators and functions
// (§4.4 "tag is an implementation closure (values) -> value").
type FunctionImpl func(args []ir.Value) (ir.Value, error)

// FunctionTable is a case-insensitive table of named constant-expression
// functions and lowered operators.
type FunctionTable struct {
	table *Table[FunctionImpl]
}

// NewFunctionTable returns an empty function table.
func NewFunctionTable() *FunctionTable {
	return &FunctionTable{table: New[FunctionImpl]()}
}

// Register adds an overload of name with the given parameter types and
// implementation closure.
func (t *FunctionTable) Register(name string, paramTypes []ir.Type, impl FunctionImpl) {
	t.table.Register(name, impl, paramTypes)
}

// Call resolves name against args, promotes the arguments, and invokes the
// selected overload's closure.
func (t *FunctionTable) Call(name string, args []ir.Value) (ir.Value, error) {
	impl, promoted, err := t.table.Resolve(name, args)
	if err != nil {
		return nil, err
	}
	return impl(promoted)
}
