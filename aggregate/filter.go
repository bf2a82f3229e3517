package aggregate

import "sort"

// Filter narrows flattened rows the way the dashboard does. Empty strings and
// zero order bounds match everything.
type Filter struct {
	Customer   string
	Category   string
	Dish       string
	MinOrderID int
	MaxOrderID int
}

func (f Filter) Match(r Row) bool {
	if f.Customer != "" && r.CustomerName != f.Customer {
		return false
	}
	if f.Category != "" && r.Category != f.Category {
		return false
	}
	if f.Dish != "" && r.Dish != f.Dish {
		return false
	}
	if f.MinOrderID != 0 && r.OrderID < f.MinOrderID {
		return false
	}
	if f.MaxOrderID != 0 && r.OrderID > f.MaxOrderID {
		return false
	}
	return true
}

func (f Filter) Apply(rows []Row) []Row {
	res := make([]Row, 0, len(rows))
	for _, r := range rows {
		if f.Match(r) {
			res = append(res, r)
		}
	}
	return res
}

type KPIs struct {
	Orders        int
	Trays         int
	CoveredGuests int
}

func Summarize(rows []Row) KPIs {
	ids := make(map[int]struct{})
	var k KPIs
	for _, r := range rows {
		ids[r.OrderID] = struct{}{}
		k.Trays += r.TrayCount
		k.CoveredGuests += r.CoveredGuests
	}
	k.Orders = len(ids)
	return k
}

type DishTrays struct {
	Dish  string
	Trays int
}

// TopDishes ranks dishes by total trays; equal totals are ordered by name.
func TopDishes(rows []Row, n int) []DishTrays {
	totals := make(map[string]int)
	for _, r := range rows {
		totals[r.Dish] += r.TrayCount
	}
	res := make([]DishTrays, 0, len(totals))
	for d, t := range totals {
		res = append(res, DishTrays{Dish: d, Trays: t})
	}
	sort.Slice(res, func(i, j int) bool {
		if res[i].Trays != res[j].Trays {
			return res[i].Trays > res[j].Trays
		}
		return res[i].Dish < res[j].Dish
	})
	if n > 0 && len(res) > n {
		res = res[:n]
	}
	return res
}

// OrderRange returns the lowest and highest order id in rows.
func OrderRange(rows []Row) (min, max int, ok bool) {
	for i, r := range rows {
		if i == 0 || r.OrderID < min {
			min = r.OrderID
		}
		if i == 0 || r.OrderID > max {
			max = r.OrderID
		}
	}
	return min, max, len(rows) > 0
}

func Customers(rows []Row) []string {
	return distinct(rows, func(r Row) string { return r.CustomerName })
}

func Categories(rows []Row) []string {
	return distinct(rows, func(r Row) string { return r.Category })
}

func Dishes(rows []Row) []string {
	return distinct(rows, func(r Row) string { return r.Dish })
}

func distinct(rows []Row, field func(Row) string) []string {
	set := make(map[string]struct{})
	for _, r := range rows {
		if v := field(r); v != "" {
			set[v] = struct{}{}
		}
	}
	res := make([]string, 0, len(set))
	for v := range set {
		res = append(res, v)
	}
	sort.Strings(res)
	return res
}
