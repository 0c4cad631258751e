package favorites

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const DefaultRecentsLimit = 10

var ErrUnknownCalculator = errors.New("unknown calculator")

// Service applies list rules on top of a Store. Known reports whether an id
// names a calculator; nil accepts any non-empty id.
type Service struct {
	Store        Store
	Known        func(id string) bool
	RecentsLimit int
}

func (s *Service) limit() int {
	if s.RecentsLimit <= 0 {
		return DefaultRecentsLimit
	}
	return s.RecentsLimit
}

func (s *Service) check(id string) error {
	if id == "" || (s.Known != nil && !s.Known(id)) {
		return fmt.Errorf("%w: %q", ErrUnknownCalculator, id)
	}
	return nil
}

func (s *Service) Favorites(ctx context.Context, userID int) ([]string, error) {
	return s.Store.Get(ctx, userID, Favorites)
}

// SetFavorites replaces the list, dropping duplicates but keeping order.
func (s *Service) SetFavorites(ctx context.Context, userID int, ids []string) ([]string, error) {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if err := s.check(id); err != nil {
			return nil, err
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	if err := s.Store.Set(ctx, userID, Favorites, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) Recents(ctx context.Context, userID int) ([]string, error) {
	return s.Store.Get(ctx, userID, Recents)
}

// Touch moves id to the front of the recents list and caps its length.
func (s *Service) Touch(ctx context.Context, userID int, id string) ([]string, error) {
	id = strings.TrimSpace(id)
	if err := s.check(id); err != nil {
		return nil, err
	}
	cur, err := s.Store.Get(ctx, userID, Recents)
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(cur)+1)
	out = append(out, id)
	for _, c := range cur {
		if c != id {
			out = append(out, c)
		}
	}
	if len(out) > s.limit() {
		out = out[:s.limit()]
	}
	if err := s.Store.Set(ctx, userID, Recents, out); err != nil {
		return nil, err
	}
	return out, nil
}
