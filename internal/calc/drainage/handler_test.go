package drainage

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHandlerCalc(t *testing.T) {
	h := &Handler{}
	body := `{"roof_area_m2":100,"rainfall_mm_h":100,"drain_length_m":10,"material":"metal",
		"house_length_m":12,"house_width_m":8,"house_height_m":6}`
	rec := httptest.NewRecorder()
	h.Calc(rec, httptest.NewRequest(http.MethodPost, "/calc", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("unexpected content type %q", ct)
	}
	var res Result
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Material != "Металл" || res.DiameterMM != 75 {
		t.Errorf("unexpected result: %+v", res)
	}
	if len(res.Materials) != 6 {
		t.Errorf("expected 6 line items, got %d", len(res.Materials))
	}
}

func TestHandlerCalcErrors(t *testing.T) {
	h := &Handler{}
	cases := []struct {
		name string
		body string
	}{
		{"malformed", `{"roof_area_m2":`},
		{"non-numeric", `{"roof_area_m2":"abc","rainfall_mm_h":100,"drain_length_m":10}`},
		{"unknown material", `{"roof_area_m2":100,"rainfall_mm_h":100,"drain_length_m":10,"material":"wood"}`},
		{"negative length", `{"roof_area_m2":100,"rainfall_mm_h":100,"drain_length_m":-3}`},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		h.Calc(rec, httptest.NewRequest(http.MethodPost, "/calc", strings.NewReader(tc.body)))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", tc.name, rec.Code)
		}
	}
}

func TestHandlerMaterials(t *testing.T) {
	h := &Handler{}
	rec := httptest.NewRecorder()
	h.Materials(rec, httptest.NewRequest(http.MethodGet, "/materials", nil))

	var list []MaterialSpec
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 materials, got %d", len(list))
	}
	if list[2].ID != MaterialCopper || list[2].CostLabel != "Высокая" {
		t.Errorf("unexpected copper entry: %+v", list[2])
	}
}

func TestHandlerCalcZeroInput(t *testing.T) {
	rec := httptest.NewRecorder()
	(&Handler{}).Calc(rec, httptest.NewRequest(http.MethodPost, "/calc", strings.NewReader(`{}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for all-zero input, got %d: %s", rec.Code, rec.Body.String())
	}
	var res Result
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.DiameterMM != 50 || res.MaterialID != MaterialPVC {
		t.Errorf("unexpected result %+v", res)
	}
}
