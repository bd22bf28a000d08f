package sheetengine

import "errors"

// ErrFormulaParse is wrapped by any error returned from ParseFormula when the input text
// cannot be tokenized or parsed into a valid expression.
var ErrFormulaParse = errors.New("formula parse error")

// ErrCircularDependency is returned by Sheet.SetCell when installing the new cell would
// introduce a cycle in the reference graph. The sheet is left unchanged.
var ErrCircularDependency = errors.New("circular dependency")

// ErrDuplicateSheetName is returned by Workbook.AddSheet when the requested name is empty or
// already in use within that workbook.
var ErrDuplicateSheetName = errors.New("duplicate sheet name")

// ErrorKind classifies the first-class error values a formula can evaluate to.
type ErrorKind int

const (
	// ErrRef marks a reference to a Position outside the sheet's valid range.
	ErrRef ErrorKind = iota
	// ErrValueKind marks an operand that could not be coerced to a number.
	ErrValueKind
	// ErrDiv0 marks division by zero, or any non-finite arithmetic result.
	ErrDiv0
)

// FormulaError is a first-class value a Cell can hold, distinct from the caller-facing
// sentinel errors above: it never aborts a SetCell, it propagates through arithmetic like any
// other operand and is surfaced to callers as part of a Cell's Value.
type FormulaError struct {
	Kind ErrorKind
}

// Error implements the error interface, returning the canonical short form used when a
// FormulaError is compared, logged, or embedded in another error.
func (fe FormulaError) Error() string {
	switch fe.Kind {
	case ErrRef:
		return "#REF!"
	case ErrValueKind:
		return "#VALUE!"
	case ErrDiv0:
		return "#DIV0!"
	default:
		return "#ERROR!"
	}
}

// PrintForm returns the value as it should appear in Sheet.PrintValues output. This differs
// from Error() only for Div0, which prints in the long-form "#DIV/0!" for compatibility with
// the reference implementation's printer.
func (fe FormulaError) PrintForm() string {
	if fe.Kind == ErrDiv0 {
		return "#DIV/0!"
	}
	return fe.Error()
}
