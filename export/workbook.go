// Package export writes the aggregation views to an xlsx workbook and reads
// such a workbook back.
package export

import (
	"bytes"
	"fmt"
	"errors"
	"io"
	"reflect"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"orderdesk/aggregate"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	OrdersSheet    = "Orders"
	TotalsSheet    = "Totals"
	FrequencySheet = "Frequency"

	defaultSheet = "Sheet1"
	headerRow    = 1
	firstDataRow = 2
)

// ErrCellTooLong is returned for text longer than a workbook cell can hold.
// Writing it would silently truncate the value.
var ErrCellTooLong = errors.New("cell text too long")

// SheetNames lists the workbook sheets in the order they are written.
var SheetNames = []string{OrdersSheet, TotalsSheet, FrequencySheet}

var (
	orderHeaders     = []string{"Order ID", "Customer", "Contact", "Category", "Dish", "Portion", "Trays", "Covered guests", "Note"}
	totalHeaders     = []string{"Category", "Dish", "Portion", "Trays", "Covered guests"}
	frequencyHeaders = []string{"Dish", "Tray quantity", "Occurrences"}
)

// Workbook renders the three views into an in-memory xlsx file.
func Workbook(flat []aggregate.Row, totals []aggregate.Total, freq []aggregate.Frequency) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteTo(&buf, flat, totals, freq); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func WriteTo(w io.Writer, flat []aggregate.Row, totals []aggregate.Total, freq []aggregate.Frequency) (err error) {
	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	if err = f.SetSheetName(defaultSheet, OrdersSheet); err != nil {
		return err
	}
	if err = writeSheet(f, OrdersSheet, orderHeaders, flat); err != nil {
		return err
	}
	if _, err = f.NewSheet(TotalsSheet); err != nil {
		return err
	}
	if err = writeSheet(f, TotalsSheet, totalHeaders, totals); err != nil {
		return err
	}
	if _, err = f.NewSheet(FrequencySheet); err != nil {
		return err
	}
	if err = writeSheet(f, FrequencySheet, frequencyHeaders, freq); err != nil {
		return err
	}
	f.SetActiveSheet(0)
	_, err = f.WriteTo(w)
	return err
}

// writeSheet puts the header in the first row and one struct per row below,
// columns in field order.
func writeSheet[T any](f *excelize.File, sheet string, headers []string, rows []T) error {
	if err := setRow(f, sheet, headerRow, toCells(headers)); err != nil {
		return err
	}
	for i, r := range rows {
		cells := structCells(reflect.ValueOf(r))
		if err := checkLength(cells); err != nil {
			return fmt.Errorf("sheet %s row %d: %w", sheet, firstDataRow+i, err)
		}
		if err := setRow(f, sheet, firstDataRow+i, cells); err != nil {
			return err
		}
	}
	return nil
}

func checkLength(cells []interface{}) error {
	for i, c := range cells {
		s, ok := c.(string)
		if !ok {
			continue
		}
		if n := utf8.RuneCountInString(s); n > excelize.TotalCellChars {
			return fmt.Errorf("%w: column %d has %d characters, limit is %d", ErrCellTooLong, i+1, n, excelize.TotalCellChars)
		}
	}
	return nil
}

func setRow(f *excelize.File, sheet string, row int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
		return fmt.Errorf("sheet %s row %d: %w", sheet, row, err)
	}
	return nil
}

func toCells(values []string) []interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return cells
}

// structCells flattens a row struct. Portion is written as its "for N" label.
func structCells(v reflect.Value) []interface{} {
	cells := make([]interface{}, v.NumField())
	for i := 0; i < v.NumField(); i++ {
		if v.Type().Field(i).Name == portionField {
			cells[i] = aggregate.PortionLabel(int(v.Field(i).Int()))
			continue
		}
		cells[i] = v.Field(i).Interface()
	}
	return cells
}
