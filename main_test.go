package main

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	config "Vodostok/internal/config"
	drainage "Vodostok/internal/calc/drainage"

	"github.com/gorilla/mux"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.Default()
	cfg.RateLimit.RPS = 100
	cfg.RateLimit.Burst = 100
	cfg.Server.StaticDir = t.TempDir()
	if err := os.WriteFile(filepath.Join(cfg.Server.StaticDir, "index.html"), []byte("<h1>Водосток</h1>"), 0644); err != nil {
		t.Fatalf("write index: %v", err)
	}

	r := mux.NewRouter()
	HandleList(r, cfg, log.New(io.Discard, "", 0))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/health")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
}

func TestCalcRoute(t *testing.T) {
	srv := newTestServer(t)
	body := `{"roof_area_m2":100,"rainfall_mm_h":100,"drain_length_m":10,"material":"pvc"}`
	resp, err := http.Post(srv.URL+"/api/tools/drainage/calc", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var res drainage.Result
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.DiameterMM != 75 || res.SlopeMMPerM != 5 {
		t.Errorf("unexpected result %+v", res)
	}
}

func TestMaterialsAndStatic(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/tools/drainage/materials")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	var mats []drainage.MaterialSpec
	json.NewDecoder(resp.Body).Decode(&mats)
	resp.Body.Close()
	if len(mats) != 3 {
		t.Errorf("expected 3 materials, got %d", len(mats))
	}

	resp, err = http.Get(srv.URL + "/")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	page, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if !strings.Contains(string(page), "Водосток") {
		t.Errorf("expected static index, got %q", page)
	}
}
