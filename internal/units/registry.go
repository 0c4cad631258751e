package units

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

type DomainID string

const (
	Length      DomainID = "length"
	Area        DomainID = "area"
	Volume      DomainID = "volume"
	Weight      DomainID = "weight"
	Density     DomainID = "density"
	Pressure    DomainID = "pressure"
	Energy      DomainID = "energy"
	Time        DomainID = "time"
	Flow        DomainID = "flow"
	Temperature DomainID = "temperature"
	Land        DomainID = "land"
	Speed       DomainID = "speed"
	Force       DomainID = "force"
	Currency    DomainID = "currency"
)

var (
	ErrUnknownDomain = errors.New("unknown domain")
	ErrUnknownUnit   = errors.New("unknown unit")
)

// UnknownUnitError reports a unit (or domain) that is not registered.
// Callers show "Invalid units" for it.
type UnknownUnitError struct {
	Domain DomainID
	Unit   string
	Err    error
}

func (e *UnknownUnitError) Error() string {
	if errors.Is(e.Err, ErrUnknownDomain) {
		return fmt.Sprintf("unknown domain %q", e.Domain)
	}
	return fmt.Sprintf("unknown unit %q in domain %q", e.Unit, e.Domain)
}

func (e *UnknownUnitError) Unwrap() error { return e.Err }

// Unit is one entry of a domain table. Factor is the value of one unit
// expressed in the domain base unit; it is zero for temperature units.
type Unit struct {
	ID     string  `json:"id"`
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Factor float64 `json:"factor,omitempty"`
}

// Domain is a measurement category with its own base unit.
type Domain struct {
	ID        DomainID `json:"id"`
	Name      string   `json:"name"`
	Base      string   `json:"base"`
	Precision int      `json:"precision"`
	Units     []Unit   `json:"units"`

	affine map[string]affine
	index  map[string]int
}

func (d *Domain) lookup(id string) (Unit, bool) {
	i, ok := d.index[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return Unit{}, false
	}
	return d.Units[i], true
}

// Registry holds the domain tables. It is read-only once built and safe for
// concurrent use.
type Registry struct {
	domains map[DomainID]*Domain
	order   []DomainID
}

// NewRegistry indexes the given domains. Ratio domains must have positive
// factors and every unit id must be unique inside its domain.
func NewRegistry(domains ...Domain) (*Registry, error) {
	r := &Registry{domains: make(map[DomainID]*Domain, len(domains))}
	for _, d := range domains {
		if _, dup := r.domains[d.ID]; dup {
			return nil, fmt.Errorf("duplicate domain %q", d.ID)
		}
		d := d
		d.Units = append([]Unit(nil), d.Units...)
		d.index = make(map[string]int, len(d.Units))
		for i, u := range d.Units {
			key := strings.ToLower(u.ID)
			if _, dup := d.index[key]; dup {
				return nil, fmt.Errorf("domain %q: duplicate unit %q", d.ID, u.ID)
			}
			if d.affine == nil && !(u.Factor > 0) {
				return nil, fmt.Errorf("domain %q: unit %q must have a positive factor", d.ID, u.ID)
			}
			if d.affine != nil {
				if _, ok := d.affine[u.ID]; !ok {
					return nil, fmt.Errorf("domain %q: unit %q has no affine mapping", d.ID, u.ID)
				}
			}
			d.index[key] = i
		}
		r.domains[d.ID] = &d
		r.order = append(r.order, d.ID)
	}
	return r, nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the built-in registry.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := NewRegistry(builtinDomains()...)
		if err != nil {
			panic(err)
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Domains lists the registered domains in registration order.
func (r *Registry) Domains() []DomainID {
	return append([]DomainID(nil), r.order...)
}

// Domain returns a copy of the domain table; changing it does not affect
// the registry.
func (r *Registry) Domain(id DomainID) (*Domain, error) {
	d, err := r.domain(id)
	if err != nil {
		return nil, err
	}
	cp := *d
	cp.Units = append([]Unit(nil), d.Units...)
	return &cp, nil
}

func (r *Registry) domain(id DomainID) (*Domain, error) {
	d, ok := r.domains[DomainID(strings.ToLower(string(id)))]
	if !ok {
		return nil, &UnknownUnitError{Domain: id, Err: ErrUnknownDomain}
	}
	return d, nil
}

func (r *Registry) Unit(domain DomainID, id string) (Unit, error) {
	d, err := r.domain(domain)
	if err != nil {
		return Unit{}, err
	}
	u, ok := d.lookup(id)
	if !ok {
		return Unit{}, &UnknownUnitError{Domain: domain, Unit: id, Err: ErrUnknownUnit}
	}
	return u, nil
}

// Factor returns the conversion factor of unit id relative to the domain base.
func (r *Registry) Factor(domain DomainID, id string) (float64, error) {
	u, err := r.Unit(domain, id)
	if err != nil {
		return 0, err
	}
	return u.Factor, nil
}

// Precision is the number of decimals results in the domain are shown with.
func (r *Registry) Precision(domain DomainID) int {
	d, err := r.domain(domain)
	if err != nil {
		return 4
	}
	return d.Precision
}

// replace returns a copy of r with domain d swapped in.
func (r *Registry) replace(d Domain) (*Registry, error) {
	domains := make([]Domain, 0, len(r.order))
	for _, id := range r.order {
		if id == d.ID {
			domains = append(domains, d)
			continue
		}
		domains = append(domains, *r.domains[id])
	}
	return NewRegistry(domains...)
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
