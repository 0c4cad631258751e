package main

import (
	"compress/gzip"
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"Buildcalc/internal/auth"
	"Buildcalc/internal/calc/barbending"
	"Buildcalc/internal/calc/batch"
	"Buildcalc/internal/calc/concrete"
	"Buildcalc/internal/calc/discount"
	"Buildcalc/internal/calc/emi"
	"Buildcalc/internal/calc/mixdesign"
	"Buildcalc/internal/calc/rateanalysis"
	"Buildcalc/internal/calc/report"
	"Buildcalc/internal/calc/sheet"
	"Buildcalc/internal/catalog"
	"Buildcalc/internal/config"
	"Buildcalc/internal/favorites"
	"Buildcalc/internal/repo"
	"Buildcalc/internal/units"

	"github.com/gorilla/mux"
	"github.com/klauspost/compress/gzhttp"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

// Compress gzips responses of at least 1KB.
func Compress(h http.Handler) http.Handler {
	wrapper, err := gzhttp.NewWrapper(
		gzhttp.MinSize(1024),
		gzhttp.CompressionLevel(gzip.DefaultCompression),
	)
	if err != nil {
		log.Printf("gzip disabled: %v", err)
		return h
	}
	return wrapper(h)
}

type app struct {
	registry *units.Registry
	authEnv  *auth.Authenv
	lists    *favorites.Service
}

// newApp wires the unit registry, auth provider and favorites store over db.
func newApp(ctx context.Context, cfg config.Config, db *sql.DB, dialect repo.Dialect) (*app, error) {
	reg := units.Default()
	if cfg.CurrencyRates != "" {
		rates, err := units.LoadRates(cfg.CurrencyRates)
		if err != nil {
			return nil, err
		}
		if reg, err = reg.WithCurrencyRates(rates); err != nil {
			return nil, err
		}
		log.Printf("Loaded %d currency rates from %s", len(rates), cfg.CurrencyRates)
	}

	var provider auth.Provider
	switch cfg.AuthMode {
	case config.AuthStatic:
		log.Println("Using static auth provider, accounts are not persisted")
		provider = auth.NewStaticProvider()
	default:
		users := repo.NewUserDB(db, dialect)
		if err := users.Migrate(ctx); err != nil {
			return nil, err
		}
		provider = &auth.RepoProvider{Repo: users}
	}

	store := favorites.NewSQLStore(db, dialect)
	if err := store.Migrate(ctx); err != nil {
		return nil, err
	}

	return &app{
		registry: reg,
		authEnv:  &auth.Authenv{JWTkey: []byte(cfg.TokenKey), Provider: provider, Secure: cfg.TLS()},
		lists: &favorites.Service{
			Store:        store,
			RecentsLimit: cfg.RecentsLimit,
			Known: func(id string) bool {
				_, ok := catalog.Lookup(reg, id)
				return ok
			},
		},
	}, nil
}

func HandleList(mux *mux.Router, a *app, staticDir string) {
	limiter := auth.NewIPRateLimiter(10, 30)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", a.authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", a.authEnv.RegisterHandler).Methods("POST")
	api.HandleFunc("/logout", a.authEnv.LogoutHandler).Methods("POST")

	unitsH := &units.Handler{Registry: a.registry}
	batchH := &batch.Handler{Registry: a.registry}
	catalogH := &catalog.Handler{Registry: a.registry}
	api.HandleFunc("/units", unitsH.List).Methods("GET")
	api.HandleFunc("/units/{domain}", unitsH.Domain).Methods("GET")
	api.HandleFunc("/convert", unitsH.Convert).Methods("POST")
	api.HandleFunc("/convert/batch", batchH.Convert).Methods("POST")
	api.HandleFunc("/calculators", catalogH.List).Methods("GET")

	concreteH := &concrete.Handler{}
	mixH := &mixdesign.Handler{}
	bbsH := &barbending.Handler{}
	rateH := &rateanalysis.Handler{}
	emiH := &emi.Handler{}
	discountH := &discount.Handler{}
	sheetH := &sheet.Handler{}
	reportH := &report.Handler{}

	api.HandleFunc("/tools/concrete/calc", concreteH.Calc).Methods("POST")
	api.HandleFunc("/tools/mix-design/calc", mixH.Calc).Methods("POST")
	api.HandleFunc("/tools/bar-bending/calc", bbsH.Calc).Methods("POST")
	api.HandleFunc("/tools/bar-bending/import", sheetH.Import).Methods("POST")
	api.HandleFunc("/tools/bar-bending/export", sheetH.Export).Methods("POST")
	api.HandleFunc("/tools/rate-analysis/calc", rateH.Calc).Methods("POST")
	api.HandleFunc("/tools/emi/calc", emiH.Calc).Methods("POST")
	api.HandleFunc("/tools/discount/calc", discountH.Calc).Methods("POST")
	api.HandleFunc("/tools/report/pdf", reportH.Generate).Methods("POST")
	api.HandleFunc("/tools/report/xlsx", sheetH.Sections).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(a.authEnv.AuthMiddleware)

	listsH := &favorites.Handler{Service: a.lists}
	secureApi.HandleFunc("/me", a.authEnv.Me).Methods("GET")
	secureApi.HandleFunc("/favorites", listsH.GetFavorites).Methods("GET")
	secureApi.HandleFunc("/favorites", listsH.PutFavorites).Methods("PUT")
	secureApi.HandleFunc("/recents", listsH.GetRecents).Methods("GET")
	secureApi.HandleFunc("/recents", listsH.PostRecent).Methods("POST")

	authFileServer := http.FileServer(http.Dir(staticDir + "/auth"))
	mux.PathPrefix("/auth/").
		Handler(a.authEnv.RedirectIfLoggedIn(http.StripPrefix("/auth", authFileServer)))
	mux.PathPrefix("/").
		Handler(http.FileServer(http.Dir(staticDir)))
}

func openDB(ctx context.Context, cfg config.Config) (*sql.DB, repo.Dialect, error) {
	if cfg.DatabaseURL != "" {
		db, err := repo.OpenPostgres(ctx, cfg.DatabaseURL)
		return db, repo.Postgres, err
	}
	db, err := repo.OpenSQLite(ctx, cfg.SQLitePath)
	return db, repo.SQLite, err
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, dialect, err := openDB(ctx, cfg)
	if err != nil {
		log.Fatal("Database error: ", err)
	}
	defer db.Close()
	log.Printf("Using %s storage", dialect)

	a, err := newApp(ctx, cfg, db, dialect)
	if err != nil {
		log.Fatal(err)
	}

	mux := mux.NewRouter()
	HandleList(mux, a, cfg.StaticDir)
	handler := CORS(mux)
	if cfg.Gzip {
		handler = Compress(handler)
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("Starting server on %s", cfg.Addr)
	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Server error: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
