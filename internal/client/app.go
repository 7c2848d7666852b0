package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	simplify "github.com/MKhiriev/go-simplify"
	"github.com/MKhiriev/go-simplify/internal/config"
	"github.com/MKhiriev/go-simplify/internal/logger"
)

var ErrNoInput = errors.New("either card flags or -google-pay-file are required")

type App struct {
	client *simplify.Client
	input  *Input
	out    io.Writer

	logger *logger.Logger
}

// NewApp creates the SDK client from cfg. opts are applied after the
// options derived from cfg.
func NewApp(cfg *config.ClientConfig, input *Input, out io.Writer, log *logger.Logger, opts ...simplify.Option) (*App, error) {
	if input == nil {
		return nil, ErrNoInput
	}
	if log == nil {
		log = logger.Nop()
	}

	clientOpts := []simplify.Option{
		simplify.WithLogger(log.Logger),
		simplify.WithConnectTimeout(cfg.Adapter.ConnectTimeout),
		simplify.WithReadTimeout(cfg.Adapter.ReadTimeout),
		simplify.WithCAFile(cfg.Adapter.CAFile),
		simplify.WithBaseURLs(cfg.App.LiveBaseURL, cfg.App.SandboxBaseURL),
		simplify.WithGooglePayPublicKey(cfg.App.GooglePayPublicKey),
		simplify.WithVersion(cfg.App.Version),
		simplify.WithShutdownTimeout(cfg.Workers.ShutdownTimeout),
	}

	c, err := simplify.New(cfg.App.APIKey, append(clientOpts, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	return &App{
		client: c,
		input:  input,
		out:    out,
		logger: log,
	}, nil
}

// Run sends the token request and prints the token. When ctx ends first the
// request is left to finish during Shutdown and ctx.Err() is returned.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.client.Shutdown(context.Background()); err != nil {
			a.logger.Warn().Err(err).Msg("calls still running at exit")
		}
	}()

	future, err := a.start(ctx)
	if err != nil {
		return err
	}

	a.logger.Info().Bool("live", a.client.IsLive()).Msg("card token requested")

	select {
	case <-future.Done():
	case <-ctx.Done():
		return ctx.Err()
	}

	token, err := future.Await(ctx)
	if err != nil {
		return fmt.Errorf("create card token: %w", err)
	}

	if data, err := simplify.Secure3DDataFromToken(token); err == nil {
		a.logger.Info().Str("acs_url", data.AcsURL).Msg("3-D Secure authentication required")
	}

	return a.print(token)
}

func (a *App) start(ctx context.Context) (*simplify.Future, error) {
	var s3d *simplify.Secure3DRequestData
	if a.input.Amount > 0 {
		s3d = &simplify.Secure3DRequestData{
			Amount:      a.input.Amount,
			Currency:    a.input.Currency,
			Description: a.input.Description,
		}
	}

	if a.input.GooglePayFile != "" {
		paymentData, err := os.ReadFile(a.input.GooglePayFile)
		if err != nil {
			return nil, fmt.Errorf("read google pay data: %w", err)
		}

		var s3dMap *simplify.Map
		if s3d != nil {
			s3dMap = s3d.ToMap()
		}
		return a.client.CreateGooglePayCardTokenAsync(ctx, paymentData, s3dMap)
	}

	if a.input.Number == "" {
		return nil, ErrNoInput
	}

	card := simplify.NewCard(a.input.Number, a.input.ExpMonth, a.input.ExpYear, a.input.CVC)
	a.logger.Debug().
		Str("brand", simplify.DetectBrand(card.Number).String()).
		Str("last4", card.Last4()).
		Msg("tokenizing card")

	return a.client.TokenizeCardAsync(ctx, card, s3d)
}

func (a *App) print(token *simplify.Map) error {
	raw, err := token.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}

	var pretty bytes.Buffer
	if err = json.Indent(&pretty, raw, "", "  "); err != nil {
		return fmt.Errorf("encode token: %w", err)
	}
	pretty.WriteByte('\n')

	_, err = a.out.Write(pretty.Bytes())
	return err
}
