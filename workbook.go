package sheetengine

import (
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
)

// Workbook is a named, ordered collection of independent Sheets, each identified by a
// uuid.UUID assigned when it's added. Cross-sheet formula references are not supported, the
// same as range references are not; every Sheet inside a Workbook is a plain, unmodified Sheet.
type Workbook struct {
	limits Limits

	order  []string // sheet names, insertion order
	byName map[string]*Sheet
	byID   map[uuid.UUID]*Sheet
	idOf   map[string]uuid.UUID
}

// NewWorkbook creates an empty Workbook whose sheets use DefaultLimits.
func NewWorkbook() *Workbook {
	return NewWorkbookWithLimits(DefaultLimits)
}

// NewWorkbookWithLimits creates an empty Workbook whose sheets are all bounded by limits.
func NewWorkbookWithLimits(limits Limits) *Workbook {
	return &Workbook{
		limits: limits,
		byName: make(map[string]*Sheet),
		byID:   make(map[uuid.UUID]*Sheet),
		idOf:   make(map[string]uuid.UUID),
	}
}

// AddSheet creates a new, empty Sheet under name and adds it to the workbook, returning its
// assigned UUID. It fails with ErrDuplicateSheetName if name is empty or already in use.
func (wb *Workbook) AddSheet(name string) (*Sheet, uuid.UUID, error) {
	if name == "" {
		return nil, uuid.Nil, fmt.Errorf("%w: sheet name must not be empty", ErrDuplicateSheetName)
	}
	if _, exists := wb.byName[name]; exists {
		return nil, uuid.Nil, fmt.Errorf("%w: %q", ErrDuplicateSheetName, name)
	}
	sheet := NewSheetWithLimits(wb.limits)
	id := uuid.New()

	wb.order = append(wb.order, name)
	wb.byName[name] = sheet
	wb.byID[id] = sheet
	wb.idOf[name] = id
	return sheet, id, nil
}

// Sheet returns the sheet registered under name, if any.
func (wb *Workbook) Sheet(name string) (*Sheet, bool) {
	s, ok := wb.byName[name]
	return s, ok
}

// SheetByID returns the sheet with the given UUID, if any.
func (wb *Workbook) SheetByID(id uuid.UUID) (*Sheet, bool) {
	s, ok := wb.byID[id]
	return s, ok
}

// RemoveSheet drops the sheet registered under name, reporting whether one was present.
// Removing a sheet never affects the state of any other sheet in the workbook.
func (wb *Workbook) RemoveSheet(name string) bool {
	id, ok := wb.idOf[name]
	if !ok {
		return false
	}
	delete(wb.byName, name)
	delete(wb.byID, id)
	delete(wb.idOf, name)
	for i, n := range wb.order {
		if n == name {
			wb.order = append(wb.order[:i], wb.order[i+1:]...)
			break
		}
	}
	return true
}

// SheetNames returns the workbook's sheet names in insertion order.
func (wb *Workbook) SheetNames() []string {
	out := make([]string, len(wb.order))
	copy(out, wb.order)
	return out
}

// SheetIDs returns every UUID currently registered in the workbook, in no particular order.
func (wb *Workbook) SheetIDs() []uuid.UUID {
	return maps.Keys(wb.byID)
}
