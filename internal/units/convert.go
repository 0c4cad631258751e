package units

import "math"

type Request struct {
	Domain DomainID `json:"domain"`
	From   string   `json:"from"`
	To     string   `json:"to"`
	Value  float64  `json:"value"`
}

type Result struct {
	Value  float64 `json:"value"`
	Symbol string  `json:"symbol"`
}

// Convert converts value between two units of one domain. Ratio domains use
// value*factor(from)/factor(to); temperature pivots through Celsius.
// NaN and infinite values are treated as 0. No rounding is applied.
func (r *Registry) Convert(domain DomainID, from, to string, value float64) (Result, error) {
	d, err := r.domain(domain)
	if err != nil {
		return Result{}, err
	}
	src, ok := d.lookup(from)
	if !ok {
		return Result{}, &UnknownUnitError{Domain: domain, Unit: from, Err: ErrUnknownUnit}
	}
	dst, ok := d.lookup(to)
	if !ok {
		return Result{}, &UnknownUnitError{Domain: domain, Unit: to, Err: ErrUnknownUnit}
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}
	if src.ID == dst.ID {
		return Result{Value: value, Symbol: dst.Symbol}, nil
	}

	if d.affine != nil {
		c := d.affine[src.ID].toCelsius(value)
		return Result{Value: d.affine[dst.ID].fromCelsius(c), Symbol: dst.Symbol}, nil
	}
	return Result{Value: value * src.Factor / dst.Factor, Symbol: dst.Symbol}, nil
}

// Do runs a Request against the registry.
func (r *Registry) Do(req Request) (Result, error) {
	return r.Convert(req.Domain, req.From, req.To, req.Value)
}

// Convert uses the built-in registry.
func Convert(domain DomainID, from, to string, value float64) (Result, error) {
	return Default().Convert(domain, from, to, value)
}
