package commands

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/bookshelf/pkg/runner/mcp"
)

type mcpOptions struct {
	transport string
	host      string
	port      int
	path      string
	tlsCert   string
	tlsKey    string
}

func addMCP(topLevel *cobra.Command) {
	o := &mcpOptions{}

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server that exposes catalog search, book details, and the
author and genre lookups through the Model Context Protocol.`,
		Example: `
bookshelf mcp --http-port 0
bookshelf mcp --transport stdio
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner, err := o.runner()
			if err != nil {
				return err
			}
			e, err := loadEnv()
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true

			runner.Store = e.store
			runner.Logger = logger
			if runner.Transport == mcp.TransportHTTP {
				runner.OnHTTPListening = func(a net.Addr) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "MCP HTTP server listening on %s\n", o.listenURL(a))
				}
			}
			return runner.Do(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&o.transport, "transport", string(mcp.TransportHTTP), "transport to use: http or stdio")
	cmd.Flags().StringVar(&o.host, "http-host", "127.0.0.1", "host/interface for HTTP transport")
	cmd.Flags().IntVar(&o.port, "http-port", 8080, "port for HTTP transport (use 0 for random)")
	cmd.Flags().StringVar(&o.path, "http-path", "/mcp", "HTTP endpoint path")
	cmd.Flags().StringVar(&o.tlsCert, "http-tls-cert", "", "TLS certificate file for HTTPS")
	cmd.Flags().StringVar(&o.tlsKey, "http-tls-key", "", "TLS private key file for HTTPS")

	topLevel.AddCommand(cmd)
}

// runner validates the flags into an unstarted runner.
func (o *mcpOptions) runner() (mcp.Runner, error) {
	r := mcp.Runner{
		Name:             "bookshelf",
		Version:          Version,
		HTTPEndpointPath: o.endpoint(),
		HTTPServerCert:   strings.TrimSpace(o.tlsCert),
		HTTPServerKey:    strings.TrimSpace(o.tlsKey),
	}
	switch mcp.Transport(strings.ToLower(strings.TrimSpace(o.transport))) {
	case "", mcp.TransportHTTP:
		if o.port < 0 || o.port > 65535 {
			return r, fmt.Errorf("invalid http-port %d", o.port)
		}
		r.Transport = mcp.TransportHTTP
		r.HTTPListenAddr = net.JoinHostPort(o.bindHost(), strconv.Itoa(o.port))
	case mcp.TransportStdio:
		r.Transport = mcp.TransportStdio
	default:
		return r, fmt.Errorf("unsupported transport %q (expected http or stdio)", o.transport)
	}
	return r, nil
}

func (o *mcpOptions) bindHost() string {
	if h := strings.TrimSpace(o.host); h != "" {
		return h
	}
	return "127.0.0.1"
}

func (o *mcpOptions) endpoint() string {
	p := strings.TrimSpace(o.path)
	if p == "" {
		return "/mcp"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// listenURL is the address clients should use. Wildcard binds are shown as
// the loopback address.
func (o *mcpOptions) listenURL(a net.Addr) string {
	scheme := "http"
	if strings.TrimSpace(o.tlsCert) != "" && strings.TrimSpace(o.tlsKey) != "" {
		scheme = "https"
	}
	tcp, ok := a.(*net.TCPAddr)
	if !ok {
		return scheme + "://" + a.String() + o.endpoint()
	}
	host := o.bindHost()
	switch host {
	case "0.0.0.0", "::":
		host = "127.0.0.1"
		if tcp.IP != nil && !tcp.IP.IsUnspecified() {
			host = tcp.IP.String()
		}
	}
	return scheme + "://" + net.JoinHostPort(host, strconv.Itoa(tcp.Port)) + o.endpoint()
}
