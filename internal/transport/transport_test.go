package transport

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/http2"
)

func testCertificate(t *testing.T) tls.Certificate {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	template := x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "apns transport test"},
		NotBefore:    time.Now(),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, &template, &template, &key.PublicKey, key)
	require.NoError(t, err)

	return tls.Certificate{Certificate: [][]byte{der}, PrivateKey: key}
}

func TestCertificateFromP12(t *testing.T) {
	t.Run("Garbage data is rejected", func(t *testing.T) {
		_, err := CertificateFromP12([]byte("not a pkcs12 bundle"), "")
		assert.Error(t, err)
	})

	t.Run("Missing file is rejected", func(t *testing.T) {
		_, err := CertificateFromP12File("testdata/does-not-exist.p12", "")
		assert.Error(t, err)
	})
}

func TestNewClient(t *testing.T) {
	client := NewClient(testCertificate(t))

	transport, ok := client.Transport.(*http2.Transport)
	require.True(t, ok, "client must speak HTTP/2")
	require.NotNil(t, transport.TLSClientConfig)
	assert.Len(t, transport.TLSClientConfig.Certificates, 1)
}
