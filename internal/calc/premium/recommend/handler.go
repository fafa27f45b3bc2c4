package recommend

import (
	"encoding/json"
	"net/http"

	"Vodostok/internal/calc/drainage"
)

type Handler struct{}

func (h *Handler) Materials(w http.ResponseWriter, r *http.Request) {
	var input drainage.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Materials(input)
	if err != nil {
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
