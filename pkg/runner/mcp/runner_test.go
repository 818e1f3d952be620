package mcp

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tableflip.dev/bookshelf/pkg/catalog"
)

func TestHandlerHealthz(t *testing.T) {
	store, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	r := Runner{Store: store, HTTPEndpointPath: "books"}
	path, h := r.handler(r.newServer())
	if path != "/books" {
		t.Fatalf("expected /books, got %q", path)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"books":24`) {
		t.Fatalf("unexpected healthz %d %q", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/books", nil)
	req.Header.Set("Origin", "http://localhost:6274")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:6274" {
		t.Fatalf("expected CORS preflight to allow the local origin, got %q", got)
	}
}

func TestServeHTTPNeedsTLSPair(t *testing.T) {
	store, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	r := Runner{Store: store, Transport: TransportHTTP, HTTPServerCert: "cert.pem"}
	if err := r.Do(context.Background()); !errors.Is(err, errTLSPair) {
		t.Fatalf("expected errTLSPair, got %v", err)
	}
}

func TestDoRequiresStore(t *testing.T) {
	if err := (Runner{}).Do(context.Background()); err == nil {
		t.Fatal("expected an error without a catalog")
	}
}
