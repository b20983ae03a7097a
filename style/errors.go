package style

import "fmt"

// Resolution failures indicate configuration mistakes, not transient
// conditions: the first one aborts the whole pass and the caller must treat
// the style object as entirely unresolved.

// UndefinedVariableError reports a registered theme variable that is absent
// from the theme's size/color mappings.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("theme variable %q is not defined in the current theme", e.Name)
}

// UnknownUnitError reports a length value with a unit the converter does
// not understand.
type UnknownUnitError struct {
	Unit  string
	Value string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown length unit %q in value %q", e.Unit, e.Value)
}

// MalformedLengthError reports a non-zero length without a unit.
type MalformedLengthError struct {
	Value string
}

func (e *MalformedLengthError) Error() string {
	return fmt.Sprintf("length value %q requires a unit", e.Value)
}

// ContractViolationError reports a length property value of a type the
// converter is not prepared to handle.
type ContractViolationError struct {
	Value any
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("length value %v (%T) is neither a string nor a number", e.Value, e.Value)
}
