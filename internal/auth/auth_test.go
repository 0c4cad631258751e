package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"Buildcalc/internal/repo"
)

func newEnv(p Provider) *Authenv {
	return &Authenv{JWTkey: []byte("test-key"), Provider: p}
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == CookieName {
			return c
		}
	}
	t.Fatal("no session cookie")
	return nil
}

func TestRegisterLoginFlow(t *testing.T) {
	env := newEnv(NewStaticProvider())

	rec := httptest.NewRecorder()
	env.RegisterHandler(rec, httptest.NewRequest(http.MethodPost, "/api/register",
		strings.NewReader(`{"login":"ravi","email":"ravi@example.com","password":"secret1"}`)))
	if rec.Code != http.StatusCreated {
		t.Fatalf("register status = %d", rec.Code)
	}
	sessionCookie(t, rec)

	rec = httptest.NewRecorder()
	env.RegisterHandler(rec, httptest.NewRequest(http.MethodPost, "/api/register",
		strings.NewReader(`{"login":"RAVI","email":"x@example.com","password":"secret1"}`)))
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	env.AuthHandler(rec, httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"login":"ravi","password":"wrong"}`)))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad password status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	env.AuthHandler(rec, httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"login":"ravi","password":"secret1"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("login status = %d", rec.Code)
	}
	cookie := sessionCookie(t, rec)

	var seen int
	protected := env.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UserID(r.Context())
		if UserLogin(r.Context()) != "ravi" {
			t.Errorf("login = %q", UserLogin(r.Context()))
		}
	}))
	req := httptest.NewRequest(http.MethodGet, "/api/user/favorites", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || seen != 1 {
		t.Errorf("protected status %d user %d", rec.Code, seen)
	}
}

func TestRegisterValidation(t *testing.T) {
	env := newEnv(NewStaticProvider())
	for _, body := range []string{`{`, `{"login":"a","email":"a@b.c"}`, `{"login":"a","email":"a@b.c","password":"123"}`} {
		rec := httptest.NewRecorder()
		env.RegisterHandler(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d", body, rec.Code)
		}
	}
}

func TestMiddlewareRejects(t *testing.T) {
	env := newEnv(NewStaticProvider())
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler reached")
	})
	h := env.AuthMiddleware(next)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no cookie status = %d", rec.Code)
	}

	expired, _ := env.Token(1, "ravi", time.Now().Add(-2*SessionTTL))
	other := &Authenv{JWTkey: []byte("other-key")}
	forged, _ := other.Token(1, "ravi", time.Now())
	for _, tok := range []string{expired, forged, "garbage"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: tok})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("token %q status = %d", tok, rec.Code)
		}
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	newEnv(nil).LogoutHandler(rec, httptest.NewRequest(http.MethodPost, "/api/logout", nil))
	c := sessionCookie(t, rec)
	if c.MaxAge >= 0 || c.Value != "" {
		t.Errorf("cookie = %+v", c)
	}
}

func TestRepoProvider(t *testing.T) {
	ctx := context.Background()
	db, err := repo.OpenSQLite(ctx, ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	users := repo.NewSQLiteUserDB(db)
	if err := users.Migrate(ctx); err != nil {
		t.Fatal(err)
	}
	p := &RepoProvider{Repo: users}

	u, err := p.Register(ctx, "meera", "meera@example.com", "hunter22")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := p.Register(ctx, "meera", "meera@example.com", "hunter22"); !errors.Is(err, ErrUserExists) {
		t.Errorf("duplicate err = %v", err)
	}
	got, err := p.Authenticate(ctx, "meera", "hunter22")
	if err != nil || got.ID != u.ID || got.Email != "meera@example.com" {
		t.Errorf("authenticate = %+v %v", got, err)
	}
	if _, err := p.Authenticate(ctx, "meera", "nope"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v", err)
	}
	if _, err := p.Authenticate(ctx, "ghost", "nope"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown user err = %v", err)
	}
}

func TestRateLimiter(t *testing.T) {
	l := NewIPRateLimiter(0, 2)
	h := l.LimitMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	if codes[0] != 200 || codes[1] != 200 || codes[2] != http.StatusTooManyRequests {
		t.Errorf("codes = %v", codes)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:5000"
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != 200 {
		t.Errorf("other ip status = %d", rec.Code)
	}
}
