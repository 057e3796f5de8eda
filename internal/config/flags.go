package config

import (
	"errors"
	"flag"
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

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-u local member id
//	-a rendezvous server address, host:port or URL
//	-d database DSN (SQLite file path)
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-retry-count retries of idempotent requests
//	-poll-interval incoming message poll interval (e.g., "10s")
//	-hash-key request signing key
//	-m metrics address in format [host]:[port]
func ParseFlags() *StructuredConfig {
	var metricsAddress NetAddress
	var userID string
	var serverAddress string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var retryCount int
	var pollInterval time.Duration
	var hashKey string

	flag.StringVar(&userID, "u", "", "Local member id")
	flag.StringVar(&serverAddress, "a", "", "Rendezvous server address (host:port or URL)")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.IntVar(&retryCount, "retry-count", 0, "Retries of idempotent requests")
	flag.DurationVar(&pollInterval, "poll-interval", 0, "Poll interval (e.g., 10s)")
	flag.StringVar(&hashKey, "hash-key", "", "Request signing key")
	flag.Var(&metricsAddress, "m", "Metrics net address host:port")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			UserID:  userID,
			HashKey: hashKey,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
			RetryCount:     retryCount,
		},
		Workers:      Workers{PollInterval: pollInterval},
		Metrics:      Metrics{Address: metricsAddress.String()},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
