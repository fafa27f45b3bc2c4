package drainage

import (
	"fmt"
	"math"

	"Vodostok/internal/calc/plan"
)

const (
	BracketSpacingM = 0.6
	GutterSectionM  = 3.0
	ElbowsPerDrain  = 2
)

const (
	UnitMetre = "м"
	UnitPiece = "шт"
)

type LineItem struct {
	Kind       ComponentKind `json:"kind"`
	Name       string        `json:"name"`
	Quantity   float64       `json:"quantity"`
	Unit       string        `json:"unit"`
	UnitPrice  float64       `json:"price_per_unit"`
	TotalPrice float64       `json:"total_price"`
}

// BuildMaterialsBill derives the six estimate lines. Fewer than two placed
// drain points are priced as two. A zero perimeter is derived from the house
// length and width.
func BuildMaterialsBill(houseLength, houseWidth, houseHeight float64, diameterMM int, perimeter float64, drainPointCount int, prices PriceTable) []LineItem {
	if perimeter == 0 {
		perimeter = (houseLength + houseWidth) * 2
	}

	drains := float64(drainPointCount)
	if drainPointCount < plan.MinDrains {
		drains = plan.MinDrains
	}

	items := []LineItem{
		{Kind: ComponentPipe, Name: fmt.Sprintf("Водосточная труба ⌀%d мм", diameterMM), Quantity: math.Ceil(houseHeight * drains), Unit: UnitMetre},
		{Kind: ComponentGutter, Name: "Желоб водосточный", Quantity: math.Ceil(perimeter), Unit: UnitMetre},
		{Kind: ComponentBracket, Name: "Кронштейн желоба", Quantity: math.Ceil(perimeter / BracketSpacingM), Unit: UnitPiece},
		{Kind: ComponentFunnel, Name: "Воронка водосточная", Quantity: drains, Unit: UnitPiece},
		{Kind: ComponentElbow, Name: "Колено трубы 45°", Quantity: drains * ElbowsPerDrain, Unit: UnitPiece},
		{Kind: ComponentConnector, Name: "Соединитель желоба", Quantity: math.Ceil(perimeter / GutterSectionM), Unit: UnitPiece},
	}
	for i := range items {
		items[i].UnitPrice = prices.For(items[i].Kind)
		items[i].TotalPrice = items[i].Quantity * items[i].UnitPrice
	}
	return items
}

func TotalCost(items []LineItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.TotalPrice
	}
	return total
}

// ComponentTitle is the Latin label of a line item, for outputs without Cyrillic fonts.
func ComponentTitle(item LineItem) string {
	switch item.Kind {
	case ComponentPipe:
		return "Downpipe"
	case ComponentGutter:
		return "Gutter"
	case ComponentBracket:
		return "Gutter bracket"
	case ComponentFunnel:
		return "Funnel"
	case ComponentElbow:
		return "Pipe elbow 45 deg"
	case ComponentConnector:
		return "Gutter connector"
	}
	return string(item.Kind)
}
