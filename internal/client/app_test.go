package client

import (
	"bytes"
	"context"
	"crypto/x509"
	"encoding/json"
	"flag"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	simplify "github.com/MKhiriev/go-simplify"
	"github.com/MKhiriev/go-simplify/internal/config"
	"github.com/MKhiriev/go-simplify/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSandboxKey = "sbpb_M2E2YTJkOTctMDEwZS00MjViLWJhZWItZmI1Yjg1NTMxMDk3"

// newGateway starts a TLS server answering every request with body and
// records the last request payload.
func newGateway(t *testing.T, status int, body string) (*httptest.Server, *[]byte) {
	t.Helper()
	var payload []byte

	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv, &payload
}

func newTestApp(t *testing.T, srv *httptest.Server, input *Input, out io.Writer) *App {
	t.Helper()

	pool := x509.NewCertPool()
	pool.AddCert(srv.Certificate())

	cfg := &config.ClientConfig{
		App: config.App{APIKey: testSandboxKey, SandboxBaseURL: srv.URL, Version: "test"},
		Adapter: config.Adapter{
			ConnectTimeout: 2 * time.Second,
			ReadTimeout:    2 * time.Second,
		},
		Workers: config.Workers{ShutdownTimeout: time.Second},
	}

	app, err := NewApp(cfg, input, out, logger.Nop(), simplify.WithRootCAs(pool))
	require.NoError(t, err)
	return app
}

// ─────────────────────────────────────────────
// RegisterFlags
// ─────────────────────────────────────────────

func TestRegisterFlags(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	in := RegisterFlags(fs)

	cfg, err := config.ParseFlags(fs, []string{
		"-number", "4111 1111 1111 1111", "-exp-month", "12", "-exp-year", "30", "-cvc", "123",
		"-amount", "500", "-api-key", testSandboxKey,
	})
	require.NoError(t, err)

	assert.Equal(t, "4111 1111 1111 1111", in.Number)
	assert.Equal(t, int64(500), in.Amount)
	assert.Equal(t, "USD", in.Currency)
	assert.Equal(t, testSandboxKey, cfg.App.APIKey)
}

// ─────────────────────────────────────────────
// Run
// ─────────────────────────────────────────────

func TestApp_Run_Card(t *testing.T) {
	srv, payload := newGateway(t, http.StatusOK, `{"id":"tok_cli","card":{"last4":"1111"}}`)

	var out bytes.Buffer
	app := newTestApp(t, srv, &Input{Number: "4111 1111 1111 1111", ExpMonth: "12", ExpYear: "99", CVC: "123"}, &out)

	require.NoError(t, app.Run(context.Background()))

	var printed map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &printed))
	assert.Equal(t, "tok_cli", printed["id"])

	sent, err := simplify.ParseMap(*payload)
	require.NoError(t, err)
	assert.Equal(t, "4111111111111111", sent.Get("card.number"))
	ok, err := sent.ContainsKey("secure3DRequestData")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestApp_Run_CardWith3DS(t *testing.T) {
	srv, payload := newGateway(t, http.StatusOK, `{"id":"tok_3ds","card":{"secure3DData":{"acsUrl":"https://acs.example.test","paReq":"p","md":"m","termUrl":"https://t.example.test"}}}`)

	var out bytes.Buffer
	app := newTestApp(t, srv, &Input{
		Number: "5555555555554444", ExpMonth: "12", ExpYear: "99", CVC: "123",
		Amount: 1000, Currency: "EUR", Description: "order 1",
	}, &out)

	require.NoError(t, app.Run(context.Background()))

	sent, err := simplify.ParseMap(*payload)
	require.NoError(t, err)
	assert.Equal(t, "EUR", sent.Get("secure3DRequestData.currency"))
	assert.Equal(t, "order 1", sent.Get("secure3DRequestData.description"))
	assert.Contains(t, out.String(), "tok_3ds")
}

func TestApp_Run_GooglePay(t *testing.T) {
	srv, payload := newGateway(t, http.StatusOK, `{"id":"tok_gpay"}`)

	path := filepath.Join(t.TempDir(), "payment.json")
	data := `{"paymentMethodData":{"tokenizationData":{"token":` +
		`"{\"signedMessage\":\"{\\\"encryptedMessage\\\":\\\"em\\\",\\\"ephemeralPublicKey\\\":\\\"epk\\\",\\\"tag\\\":\\\"tg\\\"}\"}"}}}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	var out bytes.Buffer
	app := newTestApp(t, srv, &Input{GooglePayFile: path}, &out)
	// The test config carries no Google Pay key.
	err := app.Run(context.Background())
	require.ErrorIs(t, err, simplify.ErrGooglePayKeyMissing)

	pool := x509.NewCertPool()
	pool.AddCert(srv.Certificate())
	cfg := &config.ClientConfig{
		App:     config.App{APIKey: testSandboxKey, SandboxBaseURL: srv.URL, GooglePayPublicKey: "gpay-key"},
		Workers: config.Workers{ShutdownTimeout: time.Second},
	}
	app, err = NewApp(cfg, &Input{GooglePayFile: path}, &out, nil, simplify.WithRootCAs(pool))
	require.NoError(t, err)
	require.NoError(t, app.Run(context.Background()))

	sent, err := simplify.ParseMap(*payload)
	require.NoError(t, err)
	assert.Equal(t, "gpay-key", sent.Get("card.androidPayData.publicKey"))
	assert.Equal(t, "em", sent.Get("card.androidPayData.paymentToken.encryptedMessage"))
}

func TestApp_Run_Errors(t *testing.T) {
	srv, _ := newGateway(t, http.StatusPaymentRequired, `{"error":{"code":"card.declined","message":"Card declined"}}`)

	t.Run("no input", func(t *testing.T) {
		err := newTestApp(t, srv, &Input{}, io.Discard).Run(context.Background())
		assert.ErrorIs(t, err, ErrNoInput)
	})

	t.Run("invalid card", func(t *testing.T) {
		err := newTestApp(t, srv, &Input{Number: "4111111111111112", ExpMonth: "12", ExpYear: "99", CVC: "123"}, io.Discard).
			Run(context.Background())
		assert.ErrorIs(t, err, simplify.ErrInvalidCardNumber)
	})

	t.Run("missing google pay file", func(t *testing.T) {
		err := newTestApp(t, srv, &Input{GooglePayFile: filepath.Join(t.TempDir(), "none.json")}, io.Discard).
			Run(context.Background())
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("declined", func(t *testing.T) {
		err := newTestApp(t, srv, &Input{Number: "4111111111111111", ExpMonth: "12", ExpYear: "99", CVC: "123"}, io.Discard).
			Run(context.Background())

		var gatewayErr *simplify.GatewayError
		require.ErrorAs(t, err, &gatewayErr)
		assert.Equal(t, "Card declined", gatewayErr.Message)
	})
}

func TestNewApp_Errors(t *testing.T) {
	_, err := NewApp(&config.ClientConfig{App: config.App{APIKey: testSandboxKey}}, nil, io.Discard, nil)
	assert.ErrorIs(t, err, ErrNoInput)

	_, err = NewApp(&config.ClientConfig{App: config.App{APIKey: "nope"}}, &Input{}, io.Discard, nil)
	assert.ErrorIs(t, err, simplify.ErrInvalidArgument)
}
