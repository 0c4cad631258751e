package units

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/mux"
)

func TestBuiltinFactorsPositive(t *testing.T) {
	reg := Default()
	for _, id := range reg.Domains() {
		if id == Temperature {
			continue
		}
		d, _ := reg.Domain(id)
		for _, u := range d.Units {
			if !(u.Factor > 0) {
				t.Errorf("%s/%s factor = %v", id, u.ID, u.Factor)
			}
		}
	}
}

func TestFactorBaseUnits(t *testing.T) {
	base := map[DomainID]string{
		Length: "m", Area: "m2", Volume: "l", Weight: "kg", Density: "kg/m3",
		Pressure: "pa", Energy: "j", Time: "s", Flow: "m3/s", Land: "m2",
		Speed: "m/s", Force: "n", Currency: "usd",
	}
	for domain, unit := range base {
		f, err := Default().Factor(domain, unit)
		if err != nil {
			t.Fatalf("%s: %v", domain, err)
		}
		if f != 1 {
			t.Errorf("%s base %s factor = %v, want 1", domain, unit, f)
		}
	}
}

func TestNewRegistryRejectsBadTables(t *testing.T) {
	_, err := NewRegistry(Domain{ID: "x", Units: []Unit{{ID: "a", Factor: 0}}})
	if err == nil {
		t.Error("expected error for zero factor")
	}
	_, err = NewRegistry(Domain{ID: "x", Units: []Unit{{ID: "a", Factor: 1}, {ID: "A", Factor: 2}}})
	if err == nil {
		t.Error("expected error for duplicate unit id")
	}
}

func TestCurrencyRatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.yaml")
	data := "base: INR\nrates:\n  USD: 80\n  EUR: 88\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	rates, err := LoadRates(path)
	if err != nil {
		t.Fatal(err)
	}
	reg, err := Default().WithCurrencyRates(rates)
	if err != nil {
		t.Fatal(err)
	}
	res, err := reg.Convert(Currency, "usd", "inr", 1)
	if err != nil {
		t.Fatal(err)
	}
	if !approx(res.Value, 80) {
		t.Errorf("1 USD = %v INR, want 80", res.Value)
	}
	if res.Symbol != "₹" {
		t.Errorf("symbol = %q", res.Symbol)
	}
	if _, err := reg.Convert(Currency, "usd", "jpy", 1); err == nil {
		t.Error("expected JPY to be absent from the overridden table")
	}
	// The default registry is untouched.
	if _, err := Default().Convert(Currency, "usd", "jpy", 1); err != nil {
		t.Errorf("default registry lost JPY: %v", err)
	}
}

func TestCurrencyRatesRejectsUnknownCode(t *testing.T) {
	_, err := normalizeRates(RatesFile{Base: "USD", Rates: map[string]float64{"XYZQ": 2}})
	if err == nil {
		t.Error("expected error for invalid ISO code")
	}
}

func TestHandlerConvert(t *testing.T) {
	h := &Handler{}
	body := strings.NewReader(`{"domain":"length","from":"m","to":"cm","value":2.5}`)
	req := httptest.NewRequest(http.MethodPost, "/api/convert", body)
	rec := httptest.NewRecorder()
	h.Convert(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var got convertResponse
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Value != 250 || got.Symbol != "cm" {
		t.Errorf("got %+v", got)
	}
	if got.Display != "250 cm" {
		t.Errorf("display = %q", got.Display)
	}
}

func TestHandlerConvertInvalidUnits(t *testing.T) {
	h := &Handler{}
	body := strings.NewReader(`{"domain":"length","from":"m","to":"parsec","value":1}`)
	req := httptest.NewRequest(http.MethodPost, "/api/convert", body)
	rec := httptest.NewRecorder()
	h.Convert(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid units") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestHandlerDomain(t *testing.T) {
	h := &Handler{}
	r := mux.NewRouter()
	r.HandleFunc("/api/units/{domain}", h.Domain)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/units/temperature", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var d Domain
	if err := json.NewDecoder(rec.Body).Decode(&d); err != nil {
		t.Fatal(err)
	}
	if len(d.Units) != 4 {
		t.Errorf("temperature units = %d, want 4", len(d.Units))
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/units/nope", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestUnknownUnitErrorMessage(t *testing.T) {
	err := error(&UnknownUnitError{Domain: Length, Unit: "cubit", Err: ErrUnknownUnit})
	if !errors.Is(err, ErrUnknownUnit) {
		t.Fatal("expected ErrUnknownUnit")
	}
	if !strings.Contains(err.Error(), "cubit") {
		t.Errorf("message = %q", err.Error())
	}
}

func TestDomainReturnsCopy(t *testing.T) {
	reg := Default()
	d, err := reg.Domain(Length)
	if err != nil {
		t.Fatal(err)
	}
	d.Units[0].Factor = 42
	d.Units = d.Units[:1]
	d.Precision = 9

	again, _ := reg.Domain(Length)
	if again.Units[0].Factor == 42 || len(again.Units) < 2 || again.Precision == 9 {
		t.Errorf("registry table changed through returned domain: %+v", again.Units[0])
	}
	f, _ := reg.Factor(Length, again.Units[0].ID)
	if f == 42 {
		t.Error("factor changed through returned domain")
	}
}

func TestDisplayCurrency(t *testing.T) {
	reg := Default()
	res, err := reg.Convert(Currency, "usd", "usd", 1500)
	if err != nil {
		t.Fatal(err)
	}
	got := reg.Display(Currency, "USD", res, "en")
	if !strings.Contains(got, "$") || !strings.Contains(got, "1") {
		t.Errorf("display = %q", got)
	}
	if strings.Contains(got, "usd") {
		t.Errorf("display uses unit id: %q", got)
	}

	res, _ = reg.Convert(Length, "m", "cm", 2.5)
	if got := reg.Display(Length, "cm", res, ""); got != "250 cm" {
		t.Errorf("length display = %q", got)
	}
}
