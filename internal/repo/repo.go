package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("not found")

// Dialect selects placeholder style and schema types.
type Dialect int

const (
	Postgres Dialect = iota
	SQLite
)

func (d Dialect) String() string {
	if d == SQLite {
		return "sqlite"
	}
	return "postgres"
}

// Rebind rewrites $1-style placeholders to ? for SQLite.
func (d Dialect) Rebind(query string) string {
	if d != SQLite {
		return query
	}
	var b strings.Builder
	b.Grow(len(query))
	for i := 0; i < len(query); i++ {
		if query[i] == '$' && i+1 < len(query) && query[i+1] >= '0' && query[i+1] <= '9' {
			b.WriteByte('?')
			for i+1 < len(query) && query[i+1] >= '0' && query[i+1] <= '9' {
				i++
			}
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

type User struct {
	ID    int    `json:"id"`
	Login string `json:"login"`
	Email string `json:"email"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	GetByID(ctx context.Context, id int) (User, error)
}

type SQLUserRepository struct {
	db      *sql.DB
	dialect Dialect
}

func NewPostgresUserDB(db *sql.DB) *SQLUserRepository {
	return &SQLUserRepository{db: db, dialect: Postgres}
}

func NewSQLiteUserDB(db *sql.DB) *SQLUserRepository {
	return &SQLUserRepository{db: db, dialect: SQLite}
}

func NewUserDB(db *sql.DB, d Dialect) *SQLUserRepository {
	return &SQLUserRepository{db: db, dialect: d}
}

// Migrate creates the users table when it is missing.
func (r *SQLUserRepository) Migrate(ctx context.Context) error {
	id := "SERIAL PRIMARY KEY"
	if r.dialect == SQLite {
		id = "INTEGER PRIMARY KEY AUTOINCREMENT"
	}
	query := `CREATE TABLE IF NOT EXISTS users (
	id ` + id + `,
	login TEXT NOT NULL UNIQUE,
	email TEXT NOT NULL,
	password TEXT NOT NULL
)`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func (r *SQLUserRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := r.dialect.Rebind("INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id")
	if err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id); err != nil {
		return 0, fmt.Errorf("create user %q: %w", login, err)
	}
	return id, nil
}

// GetByLogin returns the user id and password hash.
func (r *SQLUserRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := r.dialect.Rebind("SELECT id, password FROM users WHERE login=$1")

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, "", ErrNotFound
		}
		return 0, "", fmt.Errorf("get user %q: %w", login, err)
	}
	return id, hash, nil
}

func (r *SQLUserRepository) GetByID(ctx context.Context, id int) (User, error) {
	u := User{ID: id}
	query := r.dialect.Rebind("SELECT login, email FROM users WHERE id=$1")
	err := r.db.QueryRowContext(ctx, query, id).Scan(&u.Login, &u.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, fmt.Errorf("get user %d: %w", id, err)
	}
	return u, nil
}

// OpenPostgres opens connStr, forcing sslmode=require unless the string
// already sets a mode.
func OpenPostgres(ctx context.Context, connStr string) (*sql.DB, error) {
	if !strings.Contains(connStr, "sslmode=") {
		if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
			sep := "?"
			if strings.Contains(connStr, "?") {
				sep = "&"
			}
			connStr = connStr + sep + "sslmode=require"
		} else {
			connStr = connStr + " sslmode=require"
		}
	}
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// OpenSQLite opens a SQLite file with WAL journaling. ":memory:" keeps a
// single connection so every query sees the same database.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	dsn := path
	if path != ":memory:" {
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}
