package batch

import (
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Buildcalc/internal/units"
)

func TestConvertMixed(t *testing.T) {
	res, err := Convert(units.Default(), Input{Items: []units.Request{
		{Domain: units.Length, From: "m", To: "cm", Value: 2.5},
		{Domain: units.Length, From: "m", To: "parsec", Value: 1},
		{Domain: units.Temperature, From: "c", To: "f", Value: 100},
	}})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Results) != 3 || res.Failed != 1 {
		t.Fatalf("results %d failed %d", len(res.Results), res.Failed)
	}
	if math.Abs(res.Results[0].Value-250) > 1e-9 {
		t.Errorf("first = %v", res.Results[0].Value)
	}
	if res.Results[1].Error != "Invalid units" {
		t.Errorf("second error = %q", res.Results[1].Error)
	}
	if math.Abs(res.Results[2].Value-212) > 1e-9 {
		t.Errorf("third = %v", res.Results[2].Value)
	}
}

func TestConvertEmpty(t *testing.T) {
	if _, err := Convert(units.Default(), Input{}); !errors.Is(err, ErrNoItems) {
		t.Errorf("err = %v", err)
	}
	big := Input{Items: make([]units.Request, MaxItems+1)}
	if _, err := Convert(units.Default(), big); err == nil {
		t.Error("want error for oversized batch")
	}
}

func TestHandler(t *testing.T) {
	h := &Handler{}
	rec := httptest.NewRecorder()
	body := `{"items":[{"domain":"weight","from":"kg","to":"g","value":1}]}`
	h.Convert(rec, httptest.NewRequest(http.MethodPost, "/api/convert/batch", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"result":1000`) {
		t.Errorf("body = %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.Convert(rec, httptest.NewRequest(http.MethodPost, "/api/convert/batch", strings.NewReader(`{"items":[]}`)))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty status = %d", rec.Code)
	}
}
