package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	json "github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/bookshelf/pkg/catalog"
)

// Transport selects the mechanism used to expose the MCP server.
type Transport string

const (
	// TransportHTTP serves MCP via the streamable HTTP transport.
	TransportHTTP Transport = "http"
	// TransportStdio serves MCP over stdio.
	TransportStdio Transport = "stdio"
)

// Runner coordinates MCP server startup.
type Runner struct {
	Store   *catalog.Store
	Name    string
	Version string
	Logger  *slog.Logger

	Transport        Transport
	HTTPListenAddr   string
	HTTPEndpointPath string
	OnHTTPListening  func(net.Addr)
	HTTPServerCert   string
	HTTPServerKey    string
}

// Do executes the runner.
func (r Runner) Do(ctx context.Context) error {
	if r.Store == nil {
		return errors.New("mcp runner requires a catalog")
	}
	srv := r.newServer()
	r.logger().Info("mcp server ready", "transport", r.Transport, "books", r.Store.Len())

	switch t := r.Transport; t {
	case "", TransportHTTP:
		return r.serveHTTP(ctx, srv)
	case TransportStdio:
		return server.ServeStdio(srv)
	default:
		return fmt.Errorf("unknown MCP transport %q", t)
	}
}

func (r Runner) newServer() *server.MCPServer {
	name := r.Name
	if name == "" {
		name = "bookshelf"
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}

	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Search the book catalog by title, author and genre, and read book details."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)

	svc := NewService(r.Store)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv
}

var errTLSPair = errors.New("mcp: --http-tls-cert and --http-tls-key go together")

// handler mounts the streamable transport at the endpoint path and a
// liveness probe at /healthz.
func (r Runner) handler(srv *server.MCPServer) (string, http.Handler) {
	path := r.HTTPEndpointPath
	if path == "" {
		path = "/mcp"
	} else if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	mux := chi.NewRouter()
	mux.Use(middleware.RequestID)
	mux.Use(middleware.Recoverer)
	// browser-based MCP inspectors run on a local origin
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Mcp-Session-Id", "Mcp-Protocol-Version"},
		ExposedHeaders: []string{"Mcp-Session-Id"},
		MaxAge:         300,
	}))

	mux.Handle(path, server.NewStreamableHTTPServer(srv))
	mux.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "books": r.Store.Len()})
	})
	return path, mux
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer) error {
	useTLS := r.HTTPServerCert != "" || r.HTTPServerKey != ""
	if useTLS && (r.HTTPServerCert == "" || r.HTTPServerKey == "") {
		return errTLSPair
	}

	addr := r.HTTPListenAddr
	if addr == "" {
		addr = "127.0.0.1:8080"
	}
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("mcp: listen %s: %w", addr, err)
	}
	if r.OnHTTPListening != nil {
		r.OnHTTPListening(ln.Addr())
	}

	path, h := r.handler(srv)
	httpSrv := &http.Server{Handler: h, ReadHeaderTimeout: 10 * time.Second}
	r.logger().Info("mcp http listening", "addr", ln.Addr().String(), "path", path, "tls", useTLS)

	stop := context.AfterFunc(ctx, func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	})
	defer stop()

	if useTLS {
		err = httpSrv.ServeTLS(ln, r.HTTPServerCert, r.HTTPServerKey)
	} else {
		err = httpSrv.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (r Runner) logger() *slog.Logger {
	if r.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r.Logger.With("component", "mcp")
}
