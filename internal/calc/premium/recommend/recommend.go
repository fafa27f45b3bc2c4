package recommend

import (
	"sort"

	"Vodostok/internal/calc/drainage"
)

type Option struct {
	MaterialID drainage.MaterialID `json:"material_id"`
	Result     drainage.Result     `json:"result"`
	Cost       drainage.CostTier   `json:"cost_tier"`
}

type MaterialRecommendResult struct {
	Recommended drainage.MaterialID `json:"recommended"`
	Options     []Option            `json:"options"`
	Notes       string              `json:"notes"`
}

// Materials calculates the input once per material and ranks the options:
// velocity within limits first, then total cost, then cost tier.
func Materials(in drainage.Input) (MaterialRecommendResult, error) {
	var options []Option
	for _, m := range drainage.Materials() {
		item := in
		item.Material = m.ID
		res, err := drainage.Calculate(item)
		if err != nil {
			return MaterialRecommendResult{}, err
		}
		options = append(options, Option{MaterialID: m.ID, Result: res, Cost: m.Cost})
	}

	sort.SliceStable(options, func(i, j int) bool {
		a, b := options[i], options[j]
		if a.Result.VelocityOK != b.Result.VelocityOK {
			return a.Result.VelocityOK
		}
		if a.Result.TotalCost != b.Result.TotalCost {
			return a.Result.TotalCost < b.Result.TotalCost
		}
		return a.Cost < b.Cost
	})

	notes := "Recommended material keeps flow velocity within limits at the lowest cost."
	if !options[0].Result.VelocityOK {
		notes = "No material keeps flow velocity within 0.7-4.0 m/s; cheapest option shown."
	}
	return MaterialRecommendResult{
		Recommended: options[0].MaterialID,
		Options:     options,
		Notes:       notes,
	}, nil
}
