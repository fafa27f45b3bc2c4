package estimate

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	"Vodostok/internal/calc/drainage"
)

type Handler struct{}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var input drainage.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if !input.Extended() {
		http.Error(w, "House dimensions are required for an estimate", http.StatusBadRequest)
		return
	}
	res, err := drainage.Calculate(input)
	if err != nil {
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := Write(&buf, res); err != nil {
		log.Printf("estimate: ошибка формирования xlsx: %v", err)
		http.Error(w, "Estimate generation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"estimate.xlsx\"")
	w.Write(buf.Bytes())
}
