package config_test

import (
	"bytes"
	"net"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/dosecurve/pkg/cli/config"
)

func TestServerURL(t *testing.T) {
	var s config.Server

	t.Run("loopback listener", func(t *testing.T) {
		addr := &net.TCPAddr{IP: net.ParseIP("127.0.0.1"), Port: 8080}
		gt.Equal(t, s.URL(addr), "http://127.0.0.1:8080/")
	})

	t.Run("unspecified address maps to localhost", func(t *testing.T) {
		addr := &net.TCPAddr{IP: net.IPv4zero, Port: 18080}
		gt.Equal(t, s.URL(addr), "http://localhost:18080/")
	})

	t.Run("IPv6 unspecified", func(t *testing.T) {
		addr := &net.TCPAddr{IP: net.IPv6unspecified, Port: 9000}
		gt.Equal(t, s.URL(addr), "http://localhost:9000/")
	})
}

func TestServerValidate(t *testing.T) {
	gt.NoError(t, (&config.Server{Addr: "localhost:8080"}).Validate())
	gt.NoError(t, (&config.Server{Addr: ":0"}).Validate())
	gt.Error(t, (&config.Server{Addr: "localhost"}).Validate())
}

func TestLoggerValidate(t *testing.T) {
	gt.NoError(t, (&config.Logger{Level: "debug", Format: "json"}).Validate())
	gt.Error(t, (&config.Logger{Level: "trace", Format: "json"}).Validate())
	gt.Error(t, (&config.Logger{Level: "info", Format: "xml"}).Validate())
}

func TestLoggerConfigureWriter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := (&config.Logger{Level: "info", Format: "json"}).ConfigureWriter(&buf)
	gt.NoError(t, err).Required()

	logger.Debug("hidden")
	logger.Info("visible")
	gt.S(t, buf.String()).Contains("visible")
	gt.False(t, bytes.Contains(buf.Bytes(), []byte("hidden")))
}

func TestChartConfigure(t *testing.T) {
	cfg := config.Chart{Width: "800px", Height: "400px", AssetsHost: "http://assets.example.com/"}
	renderer := cfg.Configure()
	gt.Equal(t, renderer.ContentType(), "text/html; charset=utf-8")
}
