package units

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/currency"
	"gopkg.in/yaml.v3"
)

// Reference rates: value of one unit in US dollars. They are static; there is
// no live rate feed.
var defaultRates = map[string]float64{
	"USD": 1,
	"EUR": 1.08,
	"GBP": 1.27,
	"INR": 0.012,
	"JPY": 0.0067,
	"CNY": 0.138,
	"AUD": 0.66,
	"CAD": 0.73,
	"CHF": 1.12,
	"SGD": 0.74,
	"AED": 0.2723,
	"SAR": 0.2667,
	"NPR": 0.0075,
	"BDT": 0.0091,
	"PKR": 0.0036,
	"LKR": 0.0033,
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"JPY": "¥",
	"CNY": "¥",
	"AUD": "A$",
	"CAD": "C$",
	"CHF": "CHF",
	"SGD": "S$",
	"AED": "د.إ",
	"SAR": "﷼",
	"NPR": "रु",
	"BDT": "৳",
	"PKR": "₨",
	"LKR": "Rs",
}

// RatesFile is the YAML layout of a currency rate override file.
type RatesFile struct {
	Base  string             `yaml:"base"`
	Rates map[string]float64 `yaml:"rates"`
}

func currencyDomain(rates map[string]float64) Domain {
	d := Domain{ID: Currency, Name: "Currency", Base: "usd", Precision: 2}
	for _, code := range sortedKeys(rates) {
		sym, ok := currencySymbols[code]
		if !ok {
			sym = code
		}
		d.Units = append(d.Units, Unit{
			ID:     strings.ToLower(code),
			Symbol: sym,
			Name:   code,
			Factor: rates[code],
		})
	}
	return d
}

// LoadRates reads a rate file. Rates are rebased to USD so that the file may
// use any listed currency as its base.
func LoadRates(path string) (map[string]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rates file: %w", err)
	}
	var f RatesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing rates YAML: %w", err)
	}
	return normalizeRates(f)
}

func normalizeRates(f RatesFile) (map[string]float64, error) {
	base := strings.ToUpper(strings.TrimSpace(f.Base))
	if base == "" {
		base = "USD"
	}
	if _, err := currency.ParseISO(base); err != nil {
		return nil, fmt.Errorf("base currency %q: %w", base, err)
	}
	out := make(map[string]float64, len(f.Rates)+1)
	for code, rate := range f.Rates {
		code = strings.ToUpper(strings.TrimSpace(code))
		if _, err := currency.ParseISO(code); err != nil {
			return nil, fmt.Errorf("currency %q: %w", code, err)
		}
		if !(rate > 0) {
			return nil, fmt.Errorf("currency %q: rate must be positive", code)
		}
		out[code] = rate
	}
	out[base] = 1

	usd, ok := out["USD"]
	if !ok {
		return nil, fmt.Errorf("rates must include USD")
	}
	for code := range out {
		out[code] /= usd
	}
	return out, nil
}

// WithCurrencyRates returns a copy of the registry whose currency table uses
// the given USD-based rates.
func (r *Registry) WithCurrencyRates(rates map[string]float64) (*Registry, error) {
	return r.replace(currencyDomain(rates))
}
