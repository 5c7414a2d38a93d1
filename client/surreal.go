package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"github.com/surrealdb/surrealdb.go"
)

// Standard errors for the SurrealDB backend.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrConnection indicates a failure to connect to or communicate with
	// the database.
	ErrConnection = errors.New("database connection error")

	// ErrQuery indicates a query execution failure.
	ErrQuery = errors.New("query error")

	// ErrBadEndpoint indicates an endpoint path that does not name a table.
	ErrBadEndpoint = errors.New("endpoint does not name a table")
)

// Querier is the narrow slice of the SurrealDB driver the backend needs,
// kept as an interface so tests can fake the database.
type Querier interface {
	Query(ctx context.Context, query string, vars map[string]any) error
}

// SurrealConfig holds SurrealDB connection settings.
type SurrealConfig struct {
	Host      string
	Port      string
	Namespace string
	Database  string
	User      string
	Password  string
}

// Surreal seeds records straight into a SurrealDB instance. The endpoint's
// last path segment names the target table ("/v3/products" writes to
// "products"), and record ids are issued from a per-table counter starting
// at 1, so the backend is only suitable for disposable test databases.
type Surreal struct {
	db    Querier
	close func(context.Context) error

	mu   sync.Mutex
	next map[string]int64
}

// NewSurreal wraps an existing Querier. Close is a no-op; the caller owns
// the underlying connection.
func NewSurreal(db Querier) *Surreal {
	return &Surreal{
		db:   db,
		next: make(map[string]int64),
	}
}

// DialSurreal connects to SurrealDB, signs in, and selects the configured
// namespace and database. The caller must Close the returned backend.
func DialSurreal(ctx context.Context, cfg SurrealConfig) (*Surreal, error) {
	endpoint := fmt.Sprintf("ws://%s:%s", cfg.Host, cfg.Port)

	db, err := surrealdb.FromEndpointURLString(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	_, err = db.SignIn(ctx, &surrealdb.Auth{
		Username: cfg.User,
		Password: cfg.Password,
	})
	if err != nil {
		_ = db.Close(ctx)
		return nil, fmt.Errorf("%w: signin failed: %v", ErrConnection, err)
	}

	if err := db.Use(ctx, cfg.Namespace, cfg.Database); err != nil {
		_ = db.Close(ctx)
		return nil, fmt.Errorf("%w: use failed: %v", ErrConnection, err)
	}

	backend := NewSurreal(driverQuerier{db: db})
	backend.close = db.Close
	return backend, nil
}

// Close releases the underlying connection when this backend owns one.
func (s *Surreal) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close(context.Background())
}

// Post creates one record in the table named by endpoint and returns a data
// payload carrying the issued id.
func (s *Surreal) Post(ctx context.Context, endpoint string, body any) (*Response, error) {
	table, err := tableFromEndpoint(endpoint)
	if err != nil {
		return nil, err
	}

	content, err := toContent(body)
	if err != nil {
		return nil, err
	}

	id := s.nextID(table)
	vars := map[string]any{
		"tb":      table,
		"id":      id,
		"content": content,
	}
	if err := s.db.Query(ctx, "CREATE type::thing($tb, $id) CONTENT $content", vars); err != nil {
		return nil, err
	}

	data, err := json.Marshal(struct {
		ID int64 `json:"id"`
	}{ID: id})
	if err != nil {
		return nil, err
	}

	return &Response{Status: http.StatusCreated, Data: data}, nil
}

// nextID issues the next identifier for a table.
func (s *Surreal) nextID(table string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next[table]++
	return s.next[table]
}

// tableFromEndpoint maps an endpoint path to its table: the last non-empty
// path segment.
func tableFromEndpoint(endpoint string) (string, error) {
	trimmed := strings.Trim(endpoint, "/")
	if trimmed == "" {
		return "", fmt.Errorf("%w: %q", ErrBadEndpoint, endpoint)
	}
	segments := strings.Split(trimmed, "/")
	table := segments[len(segments)-1]
	if table == "" {
		return "", fmt.Errorf("%w: %q", ErrBadEndpoint, endpoint)
	}
	return table, nil
}

// toContent converts an arbitrary request body into the map shape the
// driver's CONTENT clause expects.
func toContent(body any) (map[string]any, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode record content: %w", err)
	}
	var content map[string]any
	if err := json.Unmarshal(raw, &content); err != nil {
		return nil, fmt.Errorf("record content must be an object: %w", err)
	}
	return content, nil
}

// driverQuerier adapts the SurrealDB driver to the Querier interface.
type driverQuerier struct {
	db *surrealdb.DB
}

func (q driverQuerier) Query(ctx context.Context, query string, vars map[string]any) error {
	results, err := surrealdb.Query[any](ctx, q.db, query, vars)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrQuery, err)
	}
	if results == nil {
		return nil
	}
	for _, r := range *results {
		if r.Status != "OK" {
			if r.Error != nil {
				return fmt.Errorf("%w: %s", ErrQuery, r.Error.Message)
			}
			return ErrQuery
		}
	}
	return nil
}
