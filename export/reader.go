package export

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"orderdesk/aggregate"
)

const portionField = "Portion"

var (
	ErrMissingSheet = errors.New("missing sheet")
	ErrBadHeader    = errors.New("unexpected header")
)

// Sheets is a workbook read back into the aggregation row types.
type Sheets struct {
	Names     []string
	Orders    []aggregate.Row
	Totals    []aggregate.Total
	Frequency []aggregate.Frequency
}

// Read parses a workbook produced by WriteTo.
func Read(r io.Reader) (res Sheets, err error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Sheets{}, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			res, err = Sheets{}, cerr
		}
	}()

	res = Sheets{Names: f.GetSheetList()}
	for _, name := range SheetNames {
		if !contains(res.Names, name) {
			return Sheets{}, fmt.Errorf("%w: %s", ErrMissingSheet, name)
		}
	}
	if res.Orders, err = readSheet[aggregate.Row](f, OrdersSheet, orderHeaders); err != nil {
		return Sheets{}, err
	}
	if res.Totals, err = readSheet[aggregate.Total](f, TotalsSheet, totalHeaders); err != nil {
		return Sheets{}, err
	}
	if res.Frequency, err = readSheet[aggregate.Frequency](f, FrequencySheet, frequencyHeaders); err != nil {
		return Sheets{}, err
	}
	return res, nil
}

func readSheet[T any](f *excelize.File, sheet string, headers []string) ([]T, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < headerRow || !equalHeader(rows[headerRow-1], headers) {
		return nil, fmt.Errorf("%w in sheet %s", ErrBadHeader, sheet)
	}
	res := make([]T, 0, len(rows)-headerRow)
	for i, row := range rows[headerRow:] {
		var item T
		if err := decodeRow(reflect.ValueOf(&item).Elem(), row); err != nil {
			return nil, fmt.Errorf("sheet %s row %d: %w", sheet, firstDataRow+i, err)
		}
		res = append(res, item)
	}
	return res, nil
}

// decodeRow fills the struct fields in column order. GetRows drops trailing
// empty cells, so missing columns decode as zero values.
func decodeRow(v reflect.Value, row []string) error {
	for i := 0; i < v.NumField(); i++ {
		val := ""
		if i < len(row) {
			val = row[i]
		}
		field := v.Field(i)
		switch field.Kind() {
		case reflect.Int:
			val = strings.TrimSpace(val)
			if v.Type().Field(i).Name == portionField {
				val = strings.TrimPrefix(val, "for ")
			}
			if val == "" {
				continue
			}
			n, err := strconv.Atoi(val)
			if err != nil {
				return fmt.Errorf("column %d: %w", i+1, err)
			}
			field.SetInt(int64(n))
		case reflect.String:
			field.SetString(val)
		default:
			return fmt.Errorf("column %d: unsupported kind %s", i+1, field.Kind())
		}
	}
	return nil
}

func equalHeader(row, headers []string) bool {
	if len(row) != len(headers) {
		return false
	}
	for i := range headers {
		if strings.TrimSpace(row[i]) != headers[i] {
			return false
		}
	}
	return true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
