package overload

import "github.com/jvanstraten/libcqasm/ir"

// ErrorModel is the tag registered for an error-model overload (§4.4).
type ErrorModel struct {
	Name            string
	ParamTypes      []ir.Type
	HostAnnotations any
}

// ErrorModelTable is a case-insensitive table of error-model overloads.
type ErrorModelTable struct {
	table *Table[*ErrorModel]
}

// NewErrorModelTable returns an empty error-model table.
func NewErrorModelTable() *ErrorModelTable {
	return &ErrorModelTable{table: New[*ErrorModel]()}
}

// Register adds an error-model overload built from a parameter-type
// shorthand.
func (t *ErrorModelTable) Register(name, shorthand string, hostAnnotations any) error {
	paramTypes, err := ParseShorthand(shorthand)
	if err != nil {
		return err
	}
	t.table.Register(name, &ErrorModel{
		Name:            name,
		ParamTypes:      paramTypes,
		HostAnnotations: hostAnnotations,
	}, paramTypes)
	return nil
}

// Resolve selects the first applicable overload of name for args.
func (t *ErrorModelTable) Resolve(name string, args []ir.Value) (*ErrorModel, []ir.Value, error) {
	return t.table.Resolve(name, args)
}

// Has reports whether any overload is registered under name.
func (t *ErrorModelTable) Has(name string) bool {
	return t.table.Has(name)
}
