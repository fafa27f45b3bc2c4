package diagram

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"Vodostok/internal/calc/drainage"
	"Vodostok/internal/calc/plan"
)

var geom = drainage.SchemeGeometry{RunLengthM: 10, DropMM: 50, AngleDeg: 0.2865, DiameterMM: 75, SlopeMMPerM: 5}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "png"},
		{"PNG", "png"},
		{".svg", "svg"},
		{"pdf", "pdf"},
	}
	for _, tt := range tests {
		got, err := Format(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("Format(%q) = %q, %v; expected %q", tt.in, got, err, tt.want)
		}
	}
	if _, err := Format("bmp"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestSlopePlotWritesSVG(t *testing.T) {
	p, err := SlopePlot(geom)
	if err != nil {
		t.Fatalf("plot: %v", err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, p, "svg"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Errorf("expected svg output")
	}
}

func TestPlanPlotWritesPNG(t *testing.T) {
	points := plan.Spread(3)
	p, err := PlanPlot(12, 8, points)
	if err != nil {
		t.Fatalf("plot: %v", err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, p, "png"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Errorf("expected png output")
	}
}

func TestExport(t *testing.T) {
	p, err := SlopePlot(geom)
	if err != nil {
		t.Fatalf("plot: %v", err)
	}
	name := filepath.Join(t.TempDir(), "out", "slope")
	if err := Export(p, name); err != nil {
		t.Fatalf("export: %v", err)
	}
	if _, err := os.Stat(name + ".png"); err != nil {
		t.Errorf("expected png file: %v", err)
	}
	if err := Export(p, filepath.Join(t.TempDir(), "slope.gif")); err == nil {
		t.Errorf("expected error for gif")
	}
}

func TestDrawASCIISlope(t *testing.T) {
	out := DrawASCIISlope(geom)
	for _, want := range []string{"h = 50 mm", "L = 10 m", "D75"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in:\n%s", want, out)
		}
	}
}

func TestDrawASCIIPlan(t *testing.T) {
	points := []plan.DrainPoint{{ID: "a", X: 0, Y: 0}, {ID: "b", X: 100, Y: 100}}
	out := DrawASCIIPlan(points)
	if !strings.Contains(out, "|1") || !strings.Contains(out, "2|") {
		t.Errorf("expected corner marks in:\n%s", out)
	}
	if !strings.Contains(DrawASCIIPlan(nil), "0 placed, 2 counted") {
		t.Errorf("expected default count of 2")
	}
}

func TestDrawASCIIPlanOutOfRange(t *testing.T) {
	points := []plan.DrainPoint{{ID: "drain-a", X: 150, Y: 50}, {ID: "drain-b", X: -10, Y: 400}}
	out := DrawASCIIPlan(points)
	if !strings.Contains(out, "1|") {
		t.Errorf("expected point 1 on the right edge in:\n%s", out)
	}
	if !strings.Contains(out, "|2") {
		t.Errorf("expected point 2 on the left edge in:\n%s", out)
	}
}

func TestPlanPlotOutOfRange(t *testing.T) {
	p, err := PlanPlot(12, 8, []plan.DrainPoint{{ID: "drain-a", X: 150, Y: -20}})
	if err != nil {
		t.Fatalf("plot: %v", err)
	}
	var buf bytes.Buffer
	if err := Write(&buf, p, "svg"); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Errorf("expected svg output")
	}
}

func TestHandlerSchemeJSON(t *testing.T) {
	body := `{"roof_area_m2":100,"rainfall_mm_h":100,"drain_length_m":10}`
	rec := httptest.NewRecorder()
	(&Handler{}).Scheme(rec, httptest.NewRequest(http.MethodPost, "/scheme", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var out SchemeResponse
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Geometry.DropMM != 50 || out.Geometry.DiameterMM != 75 {
		t.Errorf("unexpected geometry %+v", out.Geometry)
	}
}

func TestHandlerSchemeImage(t *testing.T) {
	body := `{"roof_area_m2":100,"rainfall_mm_h":100,"drain_length_m":10,"house_length_m":12,"house_width_m":8,"house_height_m":6}`
	rec := httptest.NewRecorder()
	(&Handler{}).Scheme(rec, httptest.NewRequest(http.MethodPost, "/scheme?view=plan&format=svg", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("unexpected content type %q", ct)
	}
}

func TestHandlerSchemeRejects(t *testing.T) {
	basic := `{"roof_area_m2":100,"rainfall_mm_h":100,"drain_length_m":10}`
	tests := []struct {
		name, url, body string
	}{
		{"plan without house", "/scheme?view=plan&format=png", basic},
		{"unknown view", "/scheme?view=side&format=png", basic},
		{"unknown format", "/scheme?format=bmp", basic},
		{"bad payload", "/scheme", "{"},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		(&Handler{}).Scheme(rec, httptest.NewRequest(http.MethodPost, tt.url, strings.NewReader(tt.body)))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", tt.name, rec.Code)
		}
	}
}
