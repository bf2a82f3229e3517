// Package aggregate turns a list of orders into the tabular views used by the
// dashboard and the export: one row per ordered item, totals per dish and
// portion, tray-quantity frequencies and per-customer rollups.
//
// Every function is pure and works the same on a filtered subset as on the
// full order list.
package aggregate

import (
	"fmt"
	"sort"

	"orderdesk/models"
)

// Row is one (order, item) pair.
type Row struct {
	OrderID       int
	CustomerName  string
	ContactInfo   string
	Category      string
	Dish          string
	Portion       int
	TrayCount     int
	CoveredGuests int
	Note          string
}

func (r Row) PortionLabel() string {
	return PortionLabel(r.Portion)
}

func PortionLabel(portion int) string {
	return fmt.Sprintf("for %d", portion)
}

type Total struct {
	Category      string
	Dish          string
	Portion       int
	TrayCount     int
	CoveredGuests int
}

func (t Total) PortionLabel() string {
	return PortionLabel(t.Portion)
}

type Frequency struct {
	Dish            string
	TrayQuantity    int
	OccurrenceCount int
}

type CustomerRollup struct {
	CustomerName       string
	ContactInfo        string
	DistinctOrderCount int
	TotalTrays         int
	TotalCoveredGuests int
}

// Flatten never returns nil.
func Flatten(orders []models.Order) []Row {
	rows := make([]Row, 0, len(orders))
	for _, o := range orders {
		for _, it := range o.Items {
			rows = append(rows, Row{
				OrderID:       o.ID,
				CustomerName:  o.CustomerName,
				ContactInfo:   o.ContactInfo,
				Category:      it.Category,
				Dish:          it.Dish,
				Portion:       it.Portion,
				TrayCount:     it.Quantity,
				CoveredGuests: it.CoveredGuests(),
				Note:          o.Note,
			})
		}
	}
	return rows
}

func TotalsByDishAndPortion(orders []models.Order) []Total {
	return TotalsFromRows(Flatten(orders))
}

func QuantityFrequency(orders []models.Order) []Frequency {
	return FrequencyFromRows(Flatten(orders))
}

type totalKey struct {
	category, dish string
	portion        int
}

// TotalsFromRows groups by (category, dish, portion) and sorts ascending on
// the same key.
func TotalsFromRows(rows []Row) []Total {
	groups := make(map[totalKey]*Total)
	for _, r := range rows {
		k := totalKey{r.Category, r.Dish, r.Portion}
		t, ok := groups[k]
		if !ok {
			t = &Total{Category: r.Category, Dish: r.Dish, Portion: r.Portion}
			groups[k] = t
		}
		t.TrayCount += r.TrayCount
		t.CoveredGuests += r.CoveredGuests
	}
	res := make([]Total, 0, len(groups))
	for _, t := range groups {
		res = append(res, *t)
	}
	sort.Slice(res, func(i, j int) bool {
		a, b := res[i], res[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if a.Dish != b.Dish {
			return a.Dish < b.Dish
		}
		return a.Portion < b.Portion
	})
	return res
}

type freqKey struct {
	dish string
	qty  int
}

// FrequencyFromRows counts rows sharing the same (dish, tray count).
func FrequencyFromRows(rows []Row) []Frequency {
	counts := make(map[freqKey]int)
	for _, r := range rows {
		counts[freqKey{r.Dish, r.TrayCount}]++
	}
	res := make([]Frequency, 0, len(counts))
	for k, n := range counts {
		res = append(res, Frequency{Dish: k.dish, TrayQuantity: k.qty, OccurrenceCount: n})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Dish != res[j].Dish {
			return res[i].Dish < res[j].Dish
		}
		return res[i].TrayQuantity < res[j].TrayQuantity
	})
	return res
}

type customerKey struct {
	name, contact string
}

// PerCustomerRollup sorts by distinct order count, highest first. Ties fall
// back to name then contact.
func PerCustomerRollup(rows []Row) []CustomerRollup {
	groups := make(map[customerKey]*CustomerRollup)
	seen := make(map[customerKey]map[int]struct{})
	for _, r := range rows {
		k := customerKey{r.CustomerName, r.ContactInfo}
		g, ok := groups[k]
		if !ok {
			g = &CustomerRollup{CustomerName: r.CustomerName, ContactInfo: r.ContactInfo}
			groups[k] = g
			seen[k] = make(map[int]struct{})
		}
		seen[k][r.OrderID] = struct{}{}
		g.TotalTrays += r.TrayCount
		g.TotalCoveredGuests += r.CoveredGuests
	}
	res := make([]CustomerRollup, 0, len(groups))
	for k, g := range groups {
		g.DistinctOrderCount = len(seen[k])
		res = append(res, *g)
	}
	sort.Slice(res, func(i, j int) bool {
		a, b := res[i], res[j]
		if a.DistinctOrderCount != b.DistinctOrderCount {
			return a.DistinctOrderCount > b.DistinctOrderCount
		}
		if a.CustomerName != b.CustomerName {
			return a.CustomerName < b.CustomerName
		}
		return a.ContactInfo < b.ContactInfo
	})
	return res
}
