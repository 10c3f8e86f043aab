// Package openexchangerates is the remote source adapter for the Open
// Exchange Rates API (https://openexchangerates.org).
package openexchangerates

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/SscSPs/currency_calculator/internal/apperrors"
	"github.com/SscSPs/currency_calculator/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_calculator/internal/core/ports/repositories"
	"github.com/go-playground/validator/v10"
)

// DefaultBaseURL is the production API root.
const DefaultBaseURL = "https://openexchangerates.org/api"

const (
	currenciesEndpoint = "/currencies.json"
	latestEndpoint     = "/latest.json"

	// maxBodyBytes bounds how much of a response body is read.
	maxBodyBytes = 1 << 20
)

// ErrUnexpectedResponse is returned when a body cannot be decoded or fails validation.
var ErrUnexpectedResponse = errors.New("response format is unexpected")

// HTTPStatusError is returned for responses outside the 2xx range.
type HTTPStatusError struct {
	StatusCode int
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP status code %d", e.StatusCode)
}

// Client fetches currencies and latest rates over HTTP.
type Client struct {
	baseURL   string
	appID     string
	http      *http.Client
	userAgent string
	validate  *validator.Validate
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient creates a Client. An empty baseURL selects DefaultBaseURL.
func NewClient(baseURL, appID string, timeout time.Duration, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	transport := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 3 * time.Second, KeepAlive: 30 * time.Second}).DialContext,
		MaxIdleConns:          10,
		MaxIdleConnsPerHost:   2,
		ForceAttemptHTTP2:     true,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   3 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: 5 * time.Second,
	}
	c := &Client{
		baseURL:   baseURL,
		appID:     appID,
		http:      &http.Client{Timeout: timeout, Transport: transport},
		userAgent: "currency-calculator/1.0",
		validate:  validator.New(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchCurrencies returns every currency the API supports, sorted by ID.
func (c *Client) FetchCurrencies(ctx context.Context) ([]domain.Currency, error) {
	var resp currenciesResponse
	if err := c.get(ctx, currenciesEndpoint, &resp); err != nil {
		return nil, apperrors.NewRemoteFetchError("currencies", err)
	}
	if err := c.validate.Var(resp, currenciesRules); err != nil {
		return nil, apperrors.NewRemoteFetchError("currencies", fmt.Errorf("%w: %v", ErrUnexpectedResponse, err))
	}

	currencies := make([]domain.Currency, 0, len(resp))
	for code, name := range resp {
		currencies = append(currencies, domain.Currency{ID: code, FullName: name})
	}
	domain.SortCurrencies(currencies)
	return currencies, nil
}

// FetchQuotes returns the latest rates relative to the API base, sorted by ID.
func (c *Client) FetchQuotes(ctx context.Context) ([]domain.Quote, error) {
	var resp latestResponse
	if err := c.get(ctx, latestEndpoint, &resp); err != nil {
		return nil, apperrors.NewRemoteFetchError("quotes", err)
	}
	if err := c.validate.Struct(resp); err != nil {
		return nil, apperrors.NewRemoteFetchError("quotes", fmt.Errorf("%w: %v", ErrUnexpectedResponse, err))
	}

	quotes := make([]domain.Quote, 0, len(resp.Rates))
	for code, rate := range resp.Rates {
		if err := c.validate.Var(code, codeRules); err != nil {
			return nil, apperrors.NewRemoteFetchError("quotes",
				fmt.Errorf("%w: invalid currency code %q", ErrUnexpectedResponse, code))
		}
		if !rate.IsPositive() {
			return nil, apperrors.NewRemoteFetchError("quotes",
				fmt.Errorf("%w: non-positive rate %s for %s", ErrUnexpectedResponse, rate, code))
		}
		quotes = append(quotes, domain.Quote{ID: code, Rate: rate})
	}
	domain.SortQuotes(quotes)
	return quotes, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out any) error {
	u, err := url.Parse(c.baseURL + endpoint)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	q := u.Query()
	q.Set("app_id", c.appID)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return &HTTPStatusError{StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	return nil
}

var _ portsrepo.RemoteSource = (*Client)(nil)
