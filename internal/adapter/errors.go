package adapter

import "errors"

var (
	// ErrNoCertificates is returned when a PEM bundle holds no certificate.
	ErrNoCertificates = errors.New("no PEM certificates found")
)
