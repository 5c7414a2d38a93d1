package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNewHTTP_InvalidBaseURL(t *testing.T) {
	t.Parallel()

	cases := []string{"", "not a url", "/just/a/path"}
	for _, base := range cases {
		if _, err := NewHTTP(HTTPConfig{BaseURL: base}); !errors.Is(err, ErrInvalidBaseURL) {
			t.Errorf("base %q: expected ErrInvalidBaseURL, got %v", base, err)
		}
	}
}

func TestHTTP_Post_UnwrapsDataEnvelope(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/v3/products" {
			t.Errorf("expected /v3/products, got %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json, got %q", ct)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"data": {"id": 42, "name": "Widget"}}`))
	}))
	defer srv.Close()

	c, err := NewHTTP(HTTPConfig{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewHTTP: %v", err)
	}

	res, err := c.Post(context.Background(), "/v3/products", map[string]string{"name": "Widget"})
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if res.Status != http.StatusCreated {
		t.Errorf("expected status 201, got %d", res.Status)
	}
	if !strings.Contains(string(res.Data), `"id": 42`) {
		t.Errorf("expected data payload with id 42, got %s", res.Data)
	}
}

func TestHTTP_Post_BareObjectBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": 7}`))
	}))
	defer srv.Close()

	c, err := NewHTTP(HTTPConfig{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewHTTP: %v", err)
	}

	res, err := c.Post(context.Background(), "things", nil)
	if err != nil {
		t.Fatalf("Post: %v", err)
	}
	if string(res.Data) != `{"id": 7}` {
		t.Errorf("expected bare body as data, got %s", res.Data)
	}
}

func TestHTTP_Post_BearerToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer seed-token" {
			t.Errorf("expected bearer token header, got %q", got)
		}
		_, _ = w.Write([]byte(`{"data": {"id": 1}}`))
	}))
	defer srv.Close()

	c, err := NewHTTP(HTTPConfig{BaseURL: srv.URL, Token: "seed-token"})
	if err != nil {
		t.Fatalf("NewHTTP: %v", err)
	}
	if _, err := c.Post(context.Background(), "/things", nil); err != nil {
		t.Fatalf("Post: %v", err)
	}
}

func TestHTTP_Post_ProblemDetails(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/problem+json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"type": "https://api.test.local/errors/conflict", "title": "Conflict", "status": 409, "detail": "product already exists", "code": 3003}`))
	}))
	defer srv.Close()

	c, err := NewHTTP(HTTPConfig{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewHTTP: %v", err)
	}

	_, err = c.Post(context.Background(), "/v3/products", map[string]string{"name": "Widget"})
	var problem *Problem
	if !errors.As(err, &problem) {
		t.Fatalf("expected *Problem, got %T: %v", err, err)
	}
	if problem.Status != http.StatusConflict {
		t.Errorf("expected status 409, got %d", problem.Status)
	}
	if problem.Code != 3003 {
		t.Errorf("expected code 3003, got %d", problem.Code)
	}
}

func TestHTTP_Post_NonProblemError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	c, err := NewHTTP(HTTPConfig{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("NewHTTP: %v", err)
	}

	_, err = c.Post(context.Background(), "/things", nil)
	if err == nil {
		t.Fatal("expected error for 502 response")
	}
	var problem *Problem
	if errors.As(err, &problem) {
		t.Errorf("expected plain error, got *Problem: %v", problem)
	}
	if !strings.Contains(err.Error(), "502") {
		t.Errorf("expected error to mention status 502, got: %v", err)
	}
}
