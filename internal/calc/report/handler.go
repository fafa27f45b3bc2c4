package report

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"Vodostok/internal/calc/drainage"
)

type Input struct {
	Meta
	Calculation drainage.Input `json:"calculation"`
}

type Handler struct {
	DefaultAuthor string
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if input.Author == "" {
		input.Author = h.DefaultAuthor
	}
	res, err := drainage.Calculate(input.Calculation)
	if err != nil {
		http.Error(w, "Calculation error: "+err.Error(), http.StatusBadRequest)
		return
	}

	var buf bytes.Buffer
	if err := Render(&buf, input.Meta, input.Calculation, res, time.Now()); err != nil {
		log.Printf("report: ошибка генерации PDF: %v", err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"drainage-report.pdf\"")
	w.Write(buf.Bytes())
}
