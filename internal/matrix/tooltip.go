package matrix

import "fmt"

// TooltipItem is one line of a cell tooltip.
type TooltipItem struct {
	Header      string
	DisplayName string
	Value       string
}

// Tooltip describes an occupied data cell. Other cells have no tooltip.
func Tooltip(c Cell) []TooltipItem {
	if c.Kind != CellData || !c.Occupied {
		return nil
	}
	items := []TooltipItem{{
		Header:      fmt.Sprintf("Cell: %d, %d", c.X, c.Y),
		DisplayName: "Value",
		Value:       JoinValues(c.Values),
	}}
	if c.HasCategory {
		items = append(items, TooltipItem{DisplayName: "Category", Value: FormatValue(c.Category)})
	}
	return items
}
