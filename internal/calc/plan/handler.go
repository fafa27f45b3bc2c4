package plan

import (
	"encoding/json"
	"net/http"
)

type AddRequest struct {
	Points []DrainPoint `json:"points"`
	X      float64      `json:"x"`
	Y      float64      `json:"y"`
}

type ClickRequest struct {
	Points  []DrainPoint `json:"points"`
	ClientX float64      `json:"client_x"`
	ClientY float64      `json:"client_y"`
	Rect    Rect         `json:"rect"`
}

type RemoveRequest struct {
	Points []DrainPoint `json:"points"`
	ID     string       `json:"id"`
}

type Response struct {
	Points         []DrainPoint `json:"points"`
	Count          int          `json:"count"`
	EffectiveCount int          `json:"effective_count"`
}

// Handler keeps no state: the client owns the list and sends it with every call.
type Handler struct{}

func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	var input AddRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	writePoints(w, Add(input.Points, input.X, input.Y))
}

func (h *Handler) Click(w http.ResponseWriter, r *http.Request) {
	var input ClickRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Rect.Width <= 0 || input.Rect.Height <= 0 {
		http.Error(w, "Invalid schematic rect", http.StatusBadRequest)
		return
	}
	x, y := FromClick(input.ClientX, input.ClientY, input.Rect)
	writePoints(w, Add(input.Points, x, y))
}

func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	var input RemoveRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	writePoints(w, Remove(input.Points, input.ID))
}

func writePoints(w http.ResponseWriter, points []DrainPoint) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Response{
		Points:         points,
		Count:          Count(points),
		EffectiveCount: EffectiveCount(points),
	})
}
