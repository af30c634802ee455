// Package yasb resolves xwing-legacy squad builder links into XWS documents
// through the RollBetter conversion service.
package yasb

//go:generate mockgen -destination=mock/mock_client.go -package=yasbmock github.com/SogeMoge/xwsbot/internal/clients/yasb Client

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/SogeMoge/xwsbot/internal/entities/xws"
	"github.com/SogeMoge/xwsbot/internal/errors"
)

const (
	// DefaultBaseURL is the RollBetter endpoint the link is appended to
	DefaultBaseURL = "https://rollbetter-linux.azurewebsites.net/lists/xwing-legacy?"
	// DefaultHTTPTimeout bounds the whole fetch
	DefaultHTTPTimeout = 20 * time.Second

	bodyExcerptSize = 500
	maxBodySize     = 4 << 20
)

// Client fetches squad documents
type Client interface {
	// FetchSquad converts a builder link into an XWS squad.
	// Returns errors.Unavailable or errors.DeadlineExceeded when the service
	// cannot be reached, and errors.InvalidArgument when the body is not XWS.
	FetchSquad(ctx context.Context, link string) (*xws.Squad, error)
}

// Config contains configuration options for the conversion client
type Config struct {
	// BaseURL of the conversion service (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for the request (optional, defaults to 20 seconds)
	HTTPTimeout time.Duration
	// HTTPClient (optional) replaces the default client, mainly for tests
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = DefaultHTTPTimeout
	}

	vb := errors.NewValidationBuilder()
	errors.ValidatePositiveDuration("HTTPTimeout", cfg.HTTPTimeout, vb)
	return vb.Build()
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a conversion client
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	// the configured timeout always wins so a shared client cannot hang a channel
	withTimeout := *httpClient
	withTimeout.Timeout = cfg.HTTPTimeout

	return &client{
		baseURL:    cfg.BaseURL,
		httpClient: &withTimeout,
	}, nil
}

func (c *client) FetchSquad(ctx context.Context, link string) (*xws.Squad, error) {
	if link == "" {
		return nil, errors.InvalidArgument("link cannot be empty")
	}

	url := c.baseURL + link
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to build conversion request").
			WithMeta("url", url)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(err).WithMeta("url", url)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, transportError(err).WithMeta("url", url)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Unavailablef("conversion service returned %d", resp.StatusCode).
			WithMeta("url", url).
			WithMeta("status_code", resp.StatusCode)
	}

	var squad xws.Squad
	if err := json.Unmarshal(body, &squad); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "conversion service returned malformed XWS").
			WithMeta("url", url).
			WithMeta("body_excerpt", excerpt(body))
	}

	return &squad, nil
}

func transportError(err error) *errors.Error {
	if stderrors.Is(err, context.Canceled) {
		return errors.WrapWithCode(err, errors.CodeCanceled, "conversion request canceled")
	}
	var netErr net.Error
	if stderrors.Is(err, context.DeadlineExceeded) || (stderrors.As(err, &netErr) && netErr.Timeout()) {
		return errors.WrapWithCode(err, errors.CodeDeadlineExceeded, "conversion service timed out")
	}
	return errors.WrapWithCode(err, errors.CodeUnavailable, "conversion service unreachable")
}

func excerpt(body []byte) string {
	if len(body) > bodyExcerptSize {
		body = body[:bodyExcerptSize]
	}
	return string(body)
}

// IsFetchFailure reports whether err means the squad could not be retrieved
func IsFetchFailure(err error) bool {
	return errors.IsUnavailable(err) || errors.IsDeadlineExceeded(err)
}

// IsParseFailure reports whether err means the response was not a squad
func IsParseFailure(err error) bool {
	return errors.IsInvalidArgument(err)
}
