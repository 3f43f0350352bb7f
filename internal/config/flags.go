package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the console flags from args.
//
// Flags:
//
//	-c/-config json file path with configs
//	-backend remote backend: chroma or qdrant
//	-a remote address in format [host]:[port] for the selected backend
//	-request-timeout per-call timeout (e.g., "30s", "1m")
//	-journal SQLite file for the deletion journal
//	-log-level zerolog level (debug, info, warn, error)
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("vector-console", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var address NetAddress
	var jsonConfigPath string
	var backend string
	var requestTimeout time.Duration
	var journalDSN string
	var logLevel string

	fs.Var(&address, "a", "Remote address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&backend, "backend", "", "Remote backend: chroma or qdrant")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&journalDSN, "journal", "", "Deletion journal SQLite file")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &StructuredConfig{
		Adapter: Adapter{
			Backend:        strings.ToLower(strings.TrimSpace(backend)),
			RequestTimeout: requestTimeout,
		},
		Storage:      Storage{Journal: Journal{DSN: journalDSN}},
		Logger:       Logger{Level: logLevel},
		JSONFilePath: jsonConfigPath,
	}

	// -a applies to whichever backend ends up selected, so it is written to
	// both endpoint groups.
	if address.Host != "" || address.Port != 0 {
		cfg.Chroma.Host, cfg.Chroma.Port = address.Host, address.Port
		cfg.Qdrant.Host, cfg.Qdrant.Port = address.Host, address.Port
	}

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// Host names are accepted as-is; only the port is validated.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host == "" {
		return errors.New("host must not be empty")
	}

	a.Host = host
	a.Port = port
	return nil
}
