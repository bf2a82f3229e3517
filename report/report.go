// Package report renders the menu and the aggregation views as plain text
// tables for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"orderdesk/aggregate"
	"orderdesk/menu"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	t := tablewriter.NewWriter(w)
	t.SetHeader(header)
	t.SetAutoFormatHeaders(false)
	t.SetAutoWrapText(false)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	return t
}

// Menu prints one table per category, in catalog order, with its preparation
// note above it.
func Menu(w io.Writer, c *menu.Catalog) error {
	for _, name := range c.ListCategories() {
		items, err := c.ListItems(name)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n", name); err != nil {
			return err
		}
		if note := c.CategoryNote(name); note != "" {
			if _, err := fmt.Fprintf(w, "  %s\n", note); err != nil {
				return err
			}
		}
		t := newTable(w, "Dish", "Price", "Description")
		for _, it := range items {
			t.Append([]string{it.Name, menu.FormatPrice(it.Price, it.Unit), it.Description})
		}
		t.Render()
	}
	return nil
}

func HotButtons(w io.Writer, buttons []menu.HotButton) {
	t := newTable(w, "#", "Category", "Dish")
	for i, b := range buttons {
		t.Append([]string{strconv.Itoa(i + 1), b.Category, b.Dish})
	}
	t.Render()
}

func Totals(w io.Writer, rows []aggregate.Total) {
	t := newTable(w, "Category", "Dish", "Portion", "Trays", "Covered guests")
	trays, guests := 0, 0
	for _, r := range rows {
		t.Append([]string{r.Category, r.Dish, r.PortionLabel(), strconv.Itoa(r.TrayCount), strconv.Itoa(r.CoveredGuests)})
		trays += r.TrayCount
		guests += r.CoveredGuests
	}
	t.SetFooter([]string{"", "", "Total", strconv.Itoa(trays), strconv.Itoa(guests)})
	t.Render()
}

func Frequency(w io.Writer, rows []aggregate.Frequency) {
	t := newTable(w, "Dish", "Tray quantity", "Occurrences")
	for _, r := range rows {
		t.Append([]string{r.Dish, strconv.Itoa(r.TrayQuantity), strconv.Itoa(r.OccurrenceCount)})
	}
	t.Render()
}

func Customers(w io.Writer, rows []aggregate.CustomerRollup) {
	t := newTable(w, "Customer", "Contact", "Orders", "Trays", "Covered guests")
	for _, r := range rows {
		t.Append([]string{r.CustomerName, r.ContactInfo, strconv.Itoa(r.DistinctOrderCount),
			strconv.Itoa(r.TotalTrays), strconv.Itoa(r.TotalCoveredGuests)})
	}
	t.Render()
}

func KPIs(w io.Writer, k aggregate.KPIs) {
	t := newTable(w, "Orders", "Trays", "Covered guests")
	t.Append([]string{strconv.Itoa(k.Orders), strconv.Itoa(k.Trays), strconv.Itoa(k.CoveredGuests)})
	t.Render()
}

func TopDishes(w io.Writer, rows []aggregate.DishTrays) {
	t := newTable(w, "Dish", "Trays")
	for _, r := range rows {
		t.Append([]string{r.Dish, strconv.Itoa(r.Trays)})
	}
	t.Render()
}
