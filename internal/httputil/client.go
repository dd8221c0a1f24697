// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil builds the HTTP clients used for outbound API calls.
package httputil

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/content-assistant/pkg/types"
)

var log = zerolog.New(zerolog.NewConsoleWriter()).With().Timestamp().Logger()

// defaultTimeout bounds one model call end to end, including streaming reads.
const defaultTimeout = 120 * time.Second

// NewClient constructs an *http.Client from cfg.
//
// A configured CA bundle is loaded into the root pool, replacing the system
// roots for this client. InsecureSkipVerify disables certificate
// verification entirely; it must be set explicitly and is logged as a
// warning every time a client is built, because a silently unverified
// connection is worse than a failed one.
func NewClient(cfg types.HTTPConfig) (*http.Client, error) {
	tlsCfg := &tls.Config{}

	switch {
	case cfg.CABundleFile != "":
		pem, err := os.ReadFile(cfg.CABundleFile)
		if err != nil {
			return nil, fmt.Errorf("reading ca bundle %s: %w", cfg.CABundleFile, err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, fmt.Errorf("ca bundle %s: no certificates found", cfg.CABundleFile)
		}
		tlsCfg.RootCAs = pool
	case cfg.InsecureSkipVerify:
		log.Warn().Msg("TLS certificate verification disabled; configure ca_bundle_file to verify the provider certificate")
		tlsCfg.InsecureSkipVerify = true
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSClientConfig: tlsCfg,
			Proxy:           http.ProxyFromEnvironment,
		},
	}, nil
}
