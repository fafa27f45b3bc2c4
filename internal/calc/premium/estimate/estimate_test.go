package estimate

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Vodostok/internal/calc/drainage"

	"github.com/xuri/excelize/v2"
)

func extendedResult(t *testing.T) drainage.Result {
	t.Helper()
	res, err := drainage.Calculate(drainage.Input{
		RoofAreaM2:   100,
		RainfallMMH:  100,
		DrainLengthM: 10,
		HouseLengthM: 12,
		HouseWidthM:  8,
		HouseHeightM: 6,
	})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	return res
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, extendedResult(t)); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil {
		t.Fatalf("rows: %v", err)
	}
	if rows[0][1] != "Наименование" {
		t.Errorf("unexpected header %v", rows[0])
	}
	if rows[1][1] != "Водосточная труба ⌀75 мм" || rows[1][2] != "12" {
		t.Errorf("unexpected first line %v", rows[1])
	}
	if rows[6][1] != "Соединитель желоба" {
		t.Errorf("unexpected last line %v", rows[6])
	}
	total, err := f.GetCellValue(SheetName, "F8")
	if err != nil || total != "27825" {
		t.Errorf("expected total 27825 in F8, got %q (%v)", total, err)
	}
}

func TestWriteRequiresBill(t *testing.T) {
	res, err := drainage.Calculate(drainage.Input{RoofAreaM2: 100, RainfallMMH: 100, DrainLengthM: 10})
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if err := Write(&bytes.Buffer{}, res); err == nil {
		t.Errorf("expected error without materials bill")
	}
}

func TestHandlerExport(t *testing.T) {
	body := `{"roof_area_m2":100,"rainfall_mm_h":100,"drain_length_m":10,"house_length_m":12,"house_width_m":8,"house_height_m":6}`
	rec := httptest.NewRecorder()
	(&Handler{}).Export(rec, httptest.NewRequest(http.MethodPost, "/estimate.xlsx", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if _, err := excelize.OpenReader(rec.Body); err != nil {
		t.Errorf("response is not a workbook: %v", err)
	}

	rec = httptest.NewRecorder()
	(&Handler{}).Export(rec, httptest.NewRequest(http.MethodPost, "/estimate.xlsx",
		strings.NewReader(`{"roof_area_m2":100,"rainfall_mm_h":100,"drain_length_m":10}`)))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without house dimensions, got %d", rec.Code)
	}
}
