// Package transport builds the HTTP/2 mutual-TLS http.Client used to reach
// the APNs provider API.
package transport

import (
	"crypto/tls"
	"encoding/pem"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/crypto/pkcs12"
	"golang.org/x/net/http2"
)

// CertificateFromP12File reads a PKCS#12 certificate bundle from disk and
// returns the TLS client certificate it contains.
func CertificateFromP12File(path, passphrase string) (tls.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("reading certificate bundle: %w", err)
	}
	return CertificateFromP12(data, passphrase)
}

// CertificateFromP12 decodes raw PKCS#12 data into a TLS client
// certificate.
func CertificateFromP12(data []byte, passphrase string) (tls.Certificate, error) {
	blocks, err := pkcs12.ToPEM(data, passphrase)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("decoding PKCS#12 bundle: %w", err)
	}

	var pemData []byte
	for _, block := range blocks {
		pemData = append(pemData, pem.EncodeToMemory(block)...)
	}

	certificate, err := tls.X509KeyPair(pemData, pemData)
	if err != nil {
		return tls.Certificate{}, fmt.Errorf("assembling key pair: %w", err)
	}
	return certificate, nil
}

// NewClient returns an http.Client that speaks HTTP/2 exclusively and
// presents the given client certificate for mutual TLS. APNs requires
// HTTP/2, so the client is built on an http2.Transport directly rather
// than relying on protocol negotiation over a default transport.
func NewClient(certificate tls.Certificate) *http.Client {
	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{certificate},
		MinVersion:   tls.VersionTLS12,
	}
	return &http.Client{
		Transport: &http2.Transport{
			TLSClientConfig: tlsConfig,
		},
	}
}
