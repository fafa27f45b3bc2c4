package importer

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"Vodostok/internal/calc/plan"

	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return buf
}

var header = []any{"material", "roof_area_m2", "rainfall_mm_h", "drain_length_m", "house_length_m", "house_width_m", "house_height_m", "drains"}

func TestImport(t *testing.T) {
	buf := workbook(t, [][]any{
		header,
		{"pvc", 100, 100, 10},
		{"Metal", "120,5", 90, 18, 12, 8, 6, 3},
		{"wood", 100, 100, 10},
		{"copper", "abc", 100, 10},
		{"copper", 200, 100, 25, 10, 10, 5},
	})

	out, err := Import(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count != 3 {
		t.Fatalf("expected 3 results, got %d (%+v)", out.Count, out)
	}
	if len(out.Skipped) != 2 || out.Skipped[0] != 4 || out.Skipped[1] != 5 {
		t.Errorf("expected rows 4 and 5 skipped, got %v", out.Skipped)
	}

	first := out.Results[0]
	if first.Row != 2 || first.Result.DiameterMM != 75 || len(first.Result.Materials) != 0 {
		t.Errorf("unexpected first row result: %+v", first)
	}
	second := out.Results[1]
	if second.Input.RoofAreaM2 != 120.5 {
		t.Errorf("expected decimal comma to parse, got %v", second.Input.RoofAreaM2)
	}
	if second.Result.DrainCount != 3 || second.Input.Drains != 3 || len(second.Input.DrainPoints) != 0 {
		t.Errorf("expected 3 drains, got %d", second.Result.DrainCount)
	}
	if second.Result.Material != "Металл" {
		t.Errorf("expected material name Металл, got %q", second.Result.Material)
	}
	if out.Results[2].Row != 6 || out.Results[2].Result.DiameterMM != 100 {
		t.Errorf("unexpected last row result: %+v", out.Results[2])
	}
}

func TestImportSkipsOversizedDrainCount(t *testing.T) {
	buf := workbook(t, [][]any{
		header,
		{"pvc", 100, 100, 10, 12, 8, 6, "3000000"},
		{"pvc", 100, 100, 10, 12, 8, 6, plan.MaxDrains},
		{"pvc", 100, 100, 10, 12, 8, 6, -1},
	})

	out, err := Import(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Count != 1 || out.Results[0].Row != 3 {
		t.Fatalf("expected only row 3 calculated, got %+v", out)
	}
	if out.Results[0].Result.DrainCount != plan.MaxDrains {
		t.Errorf("expected %d drains, got %d", plan.MaxDrains, out.Results[0].Result.DrainCount)
	}
	if len(out.Skipped) != 2 || out.Skipped[0] != 2 || out.Skipped[1] != 4 {
		t.Errorf("expected rows 2 and 4 skipped, got %v", out.Skipped)
	}
}

func TestImportRejectsGarbage(t *testing.T) {
	if _, err := Import(bytes.NewBufferString("not a workbook")); err == nil {
		t.Errorf("expected error for invalid file")
	}
	if _, err := Import(workbook(t, [][]any{header})); err == nil {
		t.Errorf("expected error for header-only sheet")
	}
}

func TestHandlerDrainage(t *testing.T) {
	buf := workbook(t, [][]any{header, {"pvc", 100, 100, 10}})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "roofs.xlsx")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	fw.Write(buf.Bytes())
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	(&Handler{}).Drainage(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var out DrainageImportResult
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Count != 1 {
		t.Errorf("expected 1 result, got %d", out.Count)
	}
}

func TestHandlerDrainageRequiresFile(t *testing.T) {
	rec := httptest.NewRecorder()
	(&Handler{}).Drainage(rec, httptest.NewRequest(http.MethodPost, "/import", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
