package config

import (
	"log/slog"
	"net"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Server holds configuration of the chart display server
type Server struct {
	Addr      string
	NoBrowser bool
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Address the chart is served on",
			Category:    "Display",
			Value:       "localhost:8080",
			Sources:     cli.EnvVars("DOSECURVE_ADDR"),
			Destination: &s.Addr,
		},
		&cli.BoolFlag{
			Name:        "no-browser",
			Usage:       "Do not open the chart in the system browser",
			Category:    "Display",
			Sources:     cli.EnvVars("DOSECURVE_NO_BROWSER"),
			Destination: &s.NoBrowser,
		},
	}
}

// URL returns the address of the chart page for a listener bound to addr
func (s *Server) URL(addr net.Addr) string {
	host, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return "http://" + addr.String() + "/"
	}
	if ip := net.ParseIP(host); ip != nil && ip.IsUnspecified() {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port) + "/"
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.Bool("no_browser", s.NoBrowser),
	)
}

// Validate validates the server configuration
func (s *Server) Validate() error {
	if _, _, err := net.SplitHostPort(s.Addr); err != nil {
		return goerr.Wrap(err, "invalid server address", goerr.V("addr", s.Addr))
	}
	return nil
}
