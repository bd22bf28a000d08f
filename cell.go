package sheetengine

// cellKind tags which variant a Cell currently holds. A plain enum-plus-struct, per the
// "tagged variant" recommendation over virtual dispatch: the same shape the reference
// implementation's Impl hierarchy collapses to once it's expressed in Go.
type cellKind int

const (
	cellEmpty cellKind = iota
	cellText
	cellFormula
)

const (
	formulaSign = '='
	escapeSign  = '\''
)

// Cell holds one of {Empty, Text, Formula}. A Cell is owned exclusively by the Sheet that
// created it, and keeps a back-reference to that Sheet so GetValue can resolve formula
// references without the caller having to thread a lookup closure through the public API —
// mirroring the reference implementation's Cell(SheetInterface& sheet).
type Cell struct {
	sheet *Sheet
	kind  cellKind

	rawText string  // Text variant: the verbatim stored string, including a leading escapeSign.
	formula Formula // Formula variant: the parsed expression tree.
	cached  *Value  // Formula variant: nil whenever the cached value may be stale.

	// dependents lists every Position whose formula directly references this cell's
	// Position. It is write-only from this Cell's perspective; Sheet appends to it and walks
	// it to invalidate caches. Entries are append-only: nothing is removed when a dependent
	// formula is replaced or cleared, so duplicates and stale entries are both possible and
	// harmless, since they only ever cause an extra, idempotent ClearCache call.
	dependents []Position
}

// newEmptyCell returns a fresh Empty cell owned by sheet.
func newEmptyCell(sheet *Sheet) *Cell {
	return &Cell{sheet: sheet, kind: cellEmpty}
}

// set installs new content into the cell: empty text clears it, a leading '=' parses a
// formula, anything else is stored verbatim. Parser failure leaves the cell's prior variant
// untouched and returns the error.
func (c *Cell) set(text string) error {
	switch {
	case text == "":
		c.kind = cellEmpty
		c.rawText = ""
		c.cached = nil
	case len(text) >= 2 && text[0] == formulaSign:
		f, err := ParseFormula(text[1:])
		if err != nil {
			return err
		}
		c.kind = cellFormula
		c.formula = f
		c.cached = nil
	default:
		c.kind = cellText
		c.rawText = text
	}
	return nil
}

// GetValue returns the cell's current Value. Empty is always NumberValue(0); Text strips a
// leading escape marker; Formula returns the cached value if present, else evaluates against
// the owning Sheet and fills the cache.
func (c *Cell) GetValue() Value {
	switch c.kind {
	case cellEmpty:
		return NumberValue(0)
	case cellText:
		if len(c.rawText) > 0 && c.rawText[0] == escapeSign {
			return StringValue(c.rawText[1:])
		}
		return StringValue(c.rawText)
	case cellFormula:
		if c.cached != nil {
			return *c.cached
		}
		v := c.formula.Evaluate(c.sheet.cellLookup)
		c.cached = &v
		return v
	}
	return NumberValue(0) // unreachable
}

// GetText returns the cell's textual form: "" for Empty, the raw string (escape marker and
// all) for Text, "=" + printed form for Formula.
func (c *Cell) GetText() string {
	switch c.kind {
	case cellEmpty:
		return ""
	case cellText:
		return c.rawText
	case cellFormula:
		return string(formulaSign) + c.formula.PrintedForm()
	}
	return ""
}

// GetReferencedCells returns the Formula's referenced positions, or nil for Empty/Text.
func (c *Cell) GetReferencedCells() []Position {
	if c.kind != cellFormula {
		return nil
	}
	return c.formula.ReferencedCells()
}

// isEmpty reports whether the cell currently holds no content, used by Sheet both to decide
// whether a storage slot is "absent" for GetCell purposes and to recompute the printable area.
func (c *Cell) isEmpty() bool {
	return c.kind == cellEmpty
}

// clearCache drops any cached Formula result. A no-op for Empty and Text cells.
func (c *Cell) clearCache() {
	if c.kind == cellFormula {
		c.cached = nil
	}
}

// addDependent appends pos to this cell's dependents list.
func (c *Cell) addDependent(pos Position) {
	c.dependents = append(c.dependents, pos)
}
