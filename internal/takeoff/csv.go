package takeoff

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/ppiankov/planreader/internal/model"
)

// WriteCSV writes a shopping list as Item,Quantity,Unit rows.
func WriteCSV(w io.Writer, list ShoppingList) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Item", "Quantity", "Unit"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, e := range list.Entries {
		unit := e.Unit
		if unit == "" {
			unit = UnitFor(e.Item)
		}
		row := []string{DisplayName(e.Item), strconv.Itoa(e.Quantity), unit}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

var lineItemHeader = []string{
	"Line", "Description", "Lumber Size", "Quantity", "Length", "Unit",
	"Division", "Subcategory", "Supplier Notes",
}

// WriteLineItemsCSV writes a supplier order, one row per line item.
func WriteLineItemsCSV(w io.Writer, items []model.MaterialLineItem) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(lineItemHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, it := range items {
		row := []string{
			strconv.Itoa(it.OrderLine),
			it.Description,
			it.LumberSize,
			strconv.Itoa(it.Quantity),
			it.Length,
			it.Unit,
			string(it.Division),
			it.Subcategory,
			it.SupplierNotes,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ReadLineItemsCSV parses a file written by WriteLineItemsCSV.
func ReadLineItemsCSV(r io.Reader) ([]model.MaterialLineItem, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(lineItemHeader)

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	items := make([]model.MaterialLineItem, 0, len(rows)-1)
	for i, row := range rows[1:] {
		line, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid line %q: %w", i+2, row[0], err)
		}
		qty, err := strconv.Atoi(row[3])
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid quantity %q: %w", i+2, row[3], err)
		}
		items = append(items, model.MaterialLineItem{
			OrderLine:     line,
			Description:   row[1],
			LumberSize:    row[2],
			Quantity:      qty,
			Length:        row[4],
			Unit:          row[5],
			Division:      model.DivisionCode(row[6]),
			Subcategory:   row[7],
			SupplierNotes: row[8],
		})
	}
	return items, nil
}
