package favorites

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"Buildcalc/internal/auth"
)

func known(id string) bool {
	switch id {
	case "emi", "concrete", "discount", "bar-bending", "mix-design":
		return true
	}
	return false
}

func TestTouchCapsAndDedups(t *testing.T) {
	ctx := context.Background()
	s := &Service{Store: NewMemoryStore(), RecentsLimit: 3}
	for _, id := range []string{"a", "b", "c", "b", "d"} {
		if _, err := s.Touch(ctx, 7, id); err != nil {
			t.Fatal(err)
		}
	}
	got, _ := s.Recents(ctx, 7)
	if !reflect.DeepEqual(got, []string{"d", "b", "c"}) {
		t.Errorf("recents = %v", got)
	}
}

func TestDefaultLimit(t *testing.T) {
	ctx := context.Background()
	s := &Service{Store: NewMemoryStore()}
	for i := 0; i < 15; i++ {
		s.Touch(ctx, 1, string(rune('a'+i)))
	}
	got, _ := s.Recents(ctx, 1)
	if len(got) != DefaultRecentsLimit || got[0] != "o" {
		t.Errorf("recents = %v", got)
	}
}

func TestSetFavorites(t *testing.T) {
	ctx := context.Background()
	s := &Service{Store: NewMemoryStore(), Known: known}
	got, err := s.SetFavorites(ctx, 1, []string{"emi", " concrete", "emi"})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, []string{"emi", "concrete"}) {
		t.Errorf("favorites = %v", got)
	}
	if _, err := s.SetFavorites(ctx, 1, []string{"emi", "warp-drive"}); !errors.Is(err, ErrUnknownCalculator) {
		t.Errorf("err = %v", err)
	}
	stored, _ := s.Favorites(ctx, 1)
	if !reflect.DeepEqual(stored, []string{"emi", "concrete"}) {
		t.Errorf("rejected update changed list: %v", stored)
	}
}

func TestHandlers(t *testing.T) {
	h := &Handler{Service: &Service{Store: NewMemoryStore(), Known: known}}
	ctx := auth.WithUser(context.Background(), 5, "asha")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/user/favorites", strings.NewReader(`{"ids":["discount","emi"]}`))
	h.PutFavorites(rec, req.WithContext(ctx))
	if rec.Code != http.StatusOK {
		t.Fatalf("put status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.GetFavorites(rec, httptest.NewRequest(http.MethodGet, "/api/user/favorites", nil).WithContext(ctx))
	if strings.TrimSpace(rec.Body.String()) != `{"ids":["discount","emi"]}` {
		t.Errorf("get body = %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/user/recents", strings.NewReader(`{"id":"nope"}`))
	h.PostRecent(rec, req.WithContext(ctx))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown id status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/user/recents", strings.NewReader(`{"id":"mix-design"}`))
	h.PostRecent(rec, req.WithContext(ctx))
	if !strings.Contains(rec.Body.String(), `"mix-design"`) {
		t.Errorf("recent body = %s", rec.Body.String())
	}

	rec = httptest.NewRecorder()
	h.GetRecents(rec, httptest.NewRequest(http.MethodGet, "/api/user/recents", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous status = %d", rec.Code)
	}
}
