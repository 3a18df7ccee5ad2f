package weather

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

const keyHeader = "X-Yandex-Weather-Key"

// ClientYandex fetches forecasts from the Yandex weather API.
type ClientYandex struct {
	APIKey string
	client HTTPClient
	logger zerolog.Logger
	strict bool
}

// NewClientYandex constructs a new Yandex client. A strict client turns
// any non-200 answer into a *StatusError.
func NewClientYandex(apiKey string, httpClient HTTPClient, logger zerolog.Logger, strict bool) *ClientYandex {
	return &ClientYandex{APIKey: apiKey, client: httpClient, logger: logger, strict: strict}
}

// Fetch issues a single GET for uri. A transport failure yields an error and
// no Response. A non-200 status is logged and, unless the client is strict,
// the Response is still returned so the caller can decide what to do with it.
func (s *ClientYandex) Fetch(ctx context.Context, uri string) (Response, error) {
	start := time.Now()

	s.logger.Debug().
		Ctx(ctx).
		Str("url", uri).
		Msg("starting Yandex weather request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		s.logger.Error().
			Ctx(ctx).
			Err(err).
			Str("url", uri).
			Msg("failed to create HTTP request")
		return Response{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set(keyHeader, s.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Error().
			Ctx(ctx).
			Err(err).
			Str("url", uri).
			Msg("error sending HTTP request to Yandex weather")
		return Response{}, fmt.Errorf("send request: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			s.logger.Error().
				Ctx(ctx).
				Err(cerr).
				Msg("failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		s.logger.Error().
			Ctx(ctx).
			Err(err).
			Int("status_code", resp.StatusCode).
			Msg("failed to read Yandex weather response")
		return Response{}, fmt.Errorf("read response: %w", err)
	}

	out := Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}

	if !out.OK() {
		s.logger.Error().
			Ctx(ctx).
			Int("status_code", resp.StatusCode).
			Interface("headers", resp.Header).
			Msg("Yandex weather API returned non-200 status")
		if s.strict {
			return Response{}, &StatusError{Code: resp.StatusCode, Body: string(body)}
		}
	}

	s.logger.Info().
		Ctx(ctx).
		Int("status_code", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("duration_ms", time.Since(start)).
		Msg("fetched Yandex weather response")

	return out, nil
}
