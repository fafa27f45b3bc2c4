package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"Vodostok/internal/calc/drainage"
	"Vodostok/internal/calc/plan"

	"github.com/xuri/excelize/v2"
)

const MaxUploadSize = 10 << 20 // 10MB

type Handler struct{}

type RowResult struct {
	Row    int             `json:"row"`
	Input  drainage.Input  `json:"input"`
	Result drainage.Result `json:"result"`
}

type DrainageImportResult struct {
	Count   int         `json:"count"`
	Skipped []int       `json:"skipped,omitempty"`
	Results []RowResult `json:"results"`
}

func (h *Handler) Drainage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	out, err := Import(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// Import calculates every data row of the first sheet. Rows that fail to
// parse or calculate are listed in Skipped by their 1-based sheet row number.
func Import(r io.Reader) (DrainageImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return DrainageImportResult{}, fmt.Errorf("invalid file")
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil || len(rows) < 2 {
		return DrainageImportResult{}, fmt.Errorf("empty sheet")
	}

	out := DrainageImportResult{Results: []RowResult{}}
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if isBlank(row) {
			continue
		}
		input, err := parseDrainageRow(row)
		if err != nil {
			out.Skipped = append(out.Skipped, i+1)
			continue
		}
		res, err := drainage.Calculate(input)
		if err != nil {
			out.Skipped = append(out.Skipped, i+1)
			continue
		}
		out.Results = append(out.Results, RowResult{Row: i + 1, Input: input, Result: res})
	}
	out.Count = len(out.Results)
	return out, nil
}

func parseDrainageRow(row []string) (drainage.Input, error) {
	// expected: material, roof_area_m2, rainfall_mm_h, drain_length_m,
	// house_length_m(optional), house_width_m, house_height_m, drains
	if len(row) < 4 {
		return drainage.Input{}, fmt.Errorf("bad row")
	}
	material := drainage.MaterialID(strings.ToLower(strings.TrimSpace(row[0])))
	area, err := toFloat(row[1])
	if err != nil {
		return drainage.Input{}, err
	}
	rain, err := toFloat(row[2])
	if err != nil {
		return drainage.Input{}, err
	}
	length, err := toFloat(row[3])
	if err != nil {
		return drainage.Input{}, err
	}
	in := drainage.Input{
		Material:     material,
		RoofAreaM2:   area,
		RainfallMMH:  rain,
		DrainLengthM: length,
	}
	if in.HouseLengthM, err = optionalFloat(row, 4); err != nil {
		return drainage.Input{}, err
	}
	if in.HouseWidthM, err = optionalFloat(row, 5); err != nil {
		return drainage.Input{}, err
	}
	if in.HouseHeightM, err = optionalFloat(row, 6); err != nil {
		return drainage.Input{}, err
	}
	if len(row) > 7 && strings.TrimSpace(row[7]) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(row[7]))
		if err != nil || n < 0 || n > plan.MaxDrains {
			return drainage.Input{}, fmt.Errorf("bad drain count %q", row[7])
		}
		in.Drains = n
	}
	return in, nil
}

func optionalFloat(row []string, idx int) (float64, error) {
	if len(row) <= idx || strings.TrimSpace(row[idx]) == "" {
		return 0, nil
	}
	return toFloat(row[idx])
}

// toFloat accepts both "12.5" and the "12,5" decimal comma.
func toFloat(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	return strconv.ParseFloat(s, 64)
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
