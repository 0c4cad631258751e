package sheet

import (
	"bytes"
	"errors"
	"math"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Buildcalc/internal/calc/barbending"
	"Buildcalc/internal/calc/quantity"

	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows ...[]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		r := row
		if err := f.SetSheetRow("Sheet1", cell, &r); err != nil {
			t.Fatal(err)
		}
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf
}

func header() []interface{} {
	out := make([]interface{}, len(Header))
	for i, h := range Header {
		out[i] = h
	}
	return out
}

func TestImport(t *testing.T) {
	buf := workbook(t,
		header(),
		[]interface{}{"Beam", "Main", 12, 3000, 10, 2, 25, "U-bar"},
		[]interface{}{"Slab", "Distribution", 8, 2000, 20},
		[]interface{}{"Column", "Main", "twelve", 3000, 4},
	)
	res, err := Import(buf)
	if err != nil {
		t.Fatal(err)
	}
	if res.Count != 2 {
		t.Fatalf("count = %d", res.Count)
	}
	if len(res.Skipped) != 1 || res.Skipped[0] != 4 {
		t.Errorf("skipped = %v", res.Skipped)
	}
	first := res.Result.Items[0]
	if first.CuttingLength != 3046 {
		t.Errorf("cutting length = %v, want 3046", first.CuttingLength)
	}
	want := math.Pi * 144 * 3046 / 162 * 10
	if math.Abs(first.Weight-want) > 1e-6 {
		t.Errorf("weight = %v, want %v", first.Weight, want)
	}
	if res.Result.TotalBars != 30 {
		t.Errorf("total bars = %d", res.Result.TotalBars)
	}
}

func TestImportRejectsPartialNumbers(t *testing.T) {
	buf := workbook(t,
		header(),
		[]interface{}{"Beam", "Main", 12, "1,000", 10},
		[]interface{}{"Beam", "Main", "10mm", 3000, 10},
		[]interface{}{"Beam", "Main", 12, 3000, 10, "2.0"},
		[]interface{}{"Beam", "Main", 12, 3000, 10, 2, "25 mm"},
		[]interface{}{"Beam", "Main", 12, 3000, 10, 2, 25},
	)
	res, err := Import(buf)
	if err != nil {
		t.Fatal(err)
	}
	if res.Count != 1 {
		t.Errorf("count = %d", res.Count)
	}
	want := []int{2, 3, 4, 5}
	if len(res.Skipped) != len(want) {
		t.Fatalf("skipped = %v", res.Skipped)
	}
	for i, row := range want {
		if res.Skipped[i] != row {
			t.Errorf("skipped = %v, want %v", res.Skipped, want)
			break
		}
	}
}

func TestImportEmpty(t *testing.T) {
	_, err := Import(workbook(t, header()))
	if !errors.Is(err, ErrEmptySheet) {
		t.Errorf("err = %v", err)
	}
	if _, err := Import(strings.NewReader("not a workbook")); err == nil {
		t.Error("want error for garbage input")
	}
}

func TestExportScheduleRoundTrip(t *testing.T) {
	res, _ := barbending.Calculate(barbending.Input{Items: []barbending.Item{
		{ElementType: "Footing", BarType: "Main", Diameter: 16, Length: 1500, Quantity: 6, ClearCover: 50},
	}})
	var buf bytes.Buffer
	if err := ExportSchedule(&buf, res); err != nil {
		t.Fatal(err)
	}
	back, err := Import(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if back.Count != 1 || back.Result.Items[0].CuttingLength != 1400 {
		t.Errorf("round trip = %+v", back)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if idx, _ := f.GetSheetIndex("Summary"); idx < 0 {
		t.Error("summary sheet missing")
	}
}

func TestExportSections(t *testing.T) {
	var buf bytes.Buffer
	err := ExportSections(&buf, []quantity.Section{
		{Heading: "Materials: slab", Lines: []quantity.Line{{Label: "Cement", Quantity: 1964, Unit: "kg"}}},
		{Heading: "Materials: slab", Lines: []quantity.Line{{Label: "Sand", Quantity: 2946, Unit: "kg"}}},
	})
	if err != nil {
		t.Fatal(err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if n := len(f.GetSheetList()); n != 2 {
		t.Fatalf("sheets = %v", f.GetSheetList())
	}
	v, _ := f.GetCellValue("Materials slab", "B2")
	if v != "1964" {
		t.Errorf("B2 = %q", v)
	}
}

func TestExportSectionsRepeatedHeadings(t *testing.T) {
	var buf bytes.Buffer
	err := ExportSections(&buf, []quantity.Section{
		{Heading: "A", Lines: []quantity.Line{{Label: "first", Quantity: 1}}},
		{Heading: "A", Lines: []quantity.Line{{Label: "second", Quantity: 2}}},
		{Heading: "2 A", Lines: []quantity.Line{{Label: "third", Quantity: 3}}},
	})
	if err != nil {
		t.Fatal(err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if n := len(f.GetSheetList()); n != 3 {
		t.Fatalf("sheets = %v", f.GetSheetList())
	}
	for name, want := range map[string]string{"A": "first", "2 A": "second", "2 2 A": "third"} {
		if v, _ := f.GetCellValue(name, "A2"); v != want {
			t.Errorf("%s!A2 = %q, want %q", name, v, want)
		}
	}
}

func TestSheetName(t *testing.T) {
	if got := sheetName("", 2); got != "Section 3" {
		t.Errorf("got %q", got)
	}
	if got := sheetName(strings.Repeat("x", 40), 0); len(got) != 31 {
		t.Errorf("len = %d", len(got))
	}
}

func TestHandlerImport(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, _ := mw.CreateFormFile("file", "bbs.xlsx")
	part.Write(workbook(t, header(), []interface{}{"Beam", "Main", 10, 1000, 1}).Bytes())
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/tools/bar-bending/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	(&Handler{}).Import(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body %s", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"count":1`) {
		t.Errorf("body = %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	(&Handler{}).Import(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing file status = %d", rec.Code)
	}
}

func TestHandlerExport(t *testing.T) {
	rec := httptest.NewRecorder()
	body := `{"items":[{"element_type":"Beam","diameter":12,"length":3000,"quantity":2}]}`
	(&Handler{}).Export(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if rec.Header().Get("Content-Type") != xlsxType {
		t.Errorf("content type = %q", rec.Header().Get("Content-Type"))
	}
}
