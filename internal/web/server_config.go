package web

import (
	"net"
	"strings"
)

const defaultListenAddr = ":8080"

// ServerConfig contains settings for running the HTTP server.
type ServerConfig struct {
	ListenAddr string
	// DevMode enables permissive CORS for local front-end work.
	DevMode bool
}

func (c ServerConfig) withDefaults() ServerConfig {
	if c.ListenAddr == "" {
		c.ListenAddr = defaultListenAddr
	}
	return c
}

// BaseURL turns a listen address into a URL a browser on this machine can
// open. Unspecified hosts become 127.0.0.1.
func BaseURL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + strings.TrimPrefix(addr, ":")
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, port)
}
