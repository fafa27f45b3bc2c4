package diagram

import (
	"encoding/json"
	"net/http"

	"Vodostok/internal/calc/drainage"
	"Vodostok/internal/calc/plan"

	"gonum.org/v1/plot"
)

const (
	ViewProfile = "profile"
	ViewPlan    = "plan"
)

type Handler struct{}

type SchemeResponse struct {
	Geometry drainage.SchemeGeometry `json:"geometry"`
	Result   drainage.Result         `json:"result"`
}

// Scheme returns the slope geometry as JSON, or an image when format is given.
func (h *Handler) Scheme(w http.ResponseWriter, r *http.Request) {
	var input drainage.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := drainage.Calculate(input)
	if err != nil {
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}
	geom := drainage.Scheme(input, res)

	q := r.URL.Query()
	if q.Get("format") == "" || q.Get("format") == "json" {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SchemeResponse{Geometry: geom, Result: res})
		return
	}
	format, err := Format(q.Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var p *plot.Plot
	switch q.Get("view") {
	case "", ViewProfile:
		p, err = SlopePlot(geom)
	case ViewPlan:
		if !input.Extended() {
			http.Error(w, "House dimensions are required for the plan view", http.StatusBadRequest)
			return
		}
		points := input.DrainPoints
		if len(points) == 0 {
			points = plan.Spread(input.Drains)
		}
		p, err = PlanPlot(input.HouseLengthM, input.HouseWidthM, points)
	default:
		http.Error(w, "Unknown view", http.StatusBadRequest)
		return
	}
	if err != nil {
		http.Error(w, "Failed to draw scheme", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", ContentType(format))
	if err := Write(w, p, format); err != nil {
		http.Error(w, "Failed to render scheme", http.StatusInternalServerError)
	}
}
