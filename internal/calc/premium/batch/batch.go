package batch

import (
	"fmt"

	"Vodostok/internal/calc/drainage"
)

type DrainageBatchInput struct {
	Items []drainage.Input `json:"items"`
}

type DrainageBatchResult struct {
	Results   []drainage.Result `json:"results"`
	TotalCost float64           `json:"total_cost"`
}

// CalculateDrainage stops at the first failing item and reports its position.
func CalculateDrainage(in DrainageBatchInput) (DrainageBatchResult, error) {
	if len(in.Items) == 0 {
		return DrainageBatchResult{}, fmt.Errorf("no items")
	}
	out := DrainageBatchResult{Results: make([]drainage.Result, 0, len(in.Items))}
	for i, item := range in.Items {
		res, err := drainage.Calculate(item)
		if err != nil {
			return DrainageBatchResult{}, fmt.Errorf("item %d: %w", i+1, err)
		}
		out.Results = append(out.Results, res)
		out.TotalCost += res.TotalCost
	}
	return out, nil
}
