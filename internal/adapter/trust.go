package adapter

import (
	"crypto/x509"
	_ "embed"
	"fmt"
	"os"
)

// pinnedCA is the intermediate certificate the gateway's server chain must
// terminate at. It is the only trust anchor of the default transport.
//
//go:embed certs/intermediate_ca.pem
var pinnedCA []byte

// PinnedCertPool returns a pool holding only the embedded intermediate CA.
func PinnedCertPool() (*x509.CertPool, error) {
	return CertPoolFromPEM(pinnedCA)
}

// CertPoolFromPEM builds a pool from PEM-encoded certificates.
func CertPoolFromPEM(pemCerts []byte) (*x509.CertPool, error) {
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pemCerts) {
		return nil, ErrNoCertificates
	}
	return pool, nil
}

// CertPoolFromFile builds a pool from a PEM file.
func CertPoolFromFile(path string) (*x509.CertPool, error) {
	pemCerts, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read CA file: %w", err)
	}

	pool, err := CertPoolFromPEM(pemCerts)
	if err != nil {
		return nil, fmt.Errorf("CA file %s: %w", path, err)
	}
	return pool, nil
}
