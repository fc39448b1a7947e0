package menu

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Price normalizes the mixed representations found in outlet menu files.
// A string like "50/-" collapses to its leading number, a list of prices
// collapses to its minimum, and a plain number passes through unchanged.
type Price float64

// UnmarshalJSON implements the json.Unmarshaler interface for Price.
func (p *Price) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*p = Price(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		head := strings.SplitN(s, "/", 2)[0]
		v, err := strconv.ParseFloat(strings.TrimSpace(head), 64)
		if err != nil {
			return fmt.Errorf("invalid price string %q", s)
		}
		*p = Price(v)
		return nil
	}

	var list []float64
	if err := json.Unmarshal(data, &list); err == nil {
		if len(list) == 0 {
			return fmt.Errorf("empty price list")
		}
		min := list[0]
		for _, v := range list[1:] {
			if v < min {
				min = v
			}
		}
		*p = Price(min)
		return nil
	}

	return fmt.Errorf("unsupported price value %s", data)
}

// String renders the price without trailing zeros, so 50 prints as "50".
func (p Price) String() string {
	return strconv.FormatFloat(float64(p), 'f', -1, 64)
}

// Item represents a single dish on an outlet's menu.
type Item struct {
	Name    string `json:"name" db:"name"`
	Price   Price  `json:"price" db:"price"`
	Cuisine string `json:"cuisine" db:"cuisine"`
}

// UnmarshalJSON implements the json.Unmarshaler interface for Item.
// Items with no cuisine field default to "unknown".
func (i *Item) UnmarshalJSON(data []byte) error {
	type Alias Item // Create an alias to avoid infinite recursion
	aux := (*Alias)(i)

	if err := json.Unmarshal(data, aux); err != nil {
		return err
	}

	if i.Cuisine == "" {
		i.Cuisine = "unknown"
	}

	return nil
}

// OutletMenu is one outlet's full menu, keyed by category.
type OutletMenu struct {
	Outlet     string            `json:"outlet"`
	Categories map[string][]Item `json:"menu"`
}
