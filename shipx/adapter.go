package shipx

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/shoplo/shipx-go/errors"
	"github.com/shoplo/shipx-go/httpclient"
	"github.com/shoplo/shipx-go/logger"
)

const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	contentTypeJSON     = "application/json; charset=utf-8"
)

// Doer issues HTTP requests. *httpclient.Client satisfies it.
type Doer interface {
	Do(ctx context.Context, req httpclient.Request) (*httpclient.Response, error)
}

// TranslateFunc maps a transport error onto a domain error.
type TranslateFunc func(error) error

// Transport is the contract API resources use to talk to the backend.
type Transport interface {
	SetAccessToken(token string)
	Headers() map[string]string
	Get(ctx context.Context, url string, query, headers map[string]string) (string, error)
	Put(ctx context.Context, url string, body []byte, headers map[string]string) (string, error)
	Post(ctx context.Context, url string, body []byte, headers map[string]string) (string, error)
	Delete(ctx context.Context, url string, headers map[string]string) (string, error)
}

var _ Transport = (*Adapter)(nil)

// Adapter sends requests through a caller-owned Doer.
type Adapter struct {
	client      Doer
	accessToken string
	translate   TranslateFunc
	log         *logger.Logger
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithTranslator replaces the default errors.Translate.
func WithTranslator(fn TranslateFunc) Option {
	return func(a *Adapter) {
		if fn != nil {
			a.translate = fn
		}
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *logger.Logger) Option {
	return func(a *Adapter) {
		if l != nil {
			a.log = l.WithComponent("shipx")
		}
	}
}

// New creates an Adapter around client. An empty token sends no auth headers.
func New(client Doer, accessToken string, opts ...Option) *Adapter {
	a := &Adapter{
		client:      client,
		accessToken: accessToken,
		translate:   errors.Translate,
		log:         logger.Nop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// SetAccessToken replaces the token used by subsequent calls.
func (a *Adapter) SetAccessToken(token string) {
	a.accessToken = token
}

// Headers returns the authorization headers for the current token, or an
// empty map when no token is set.
func (a *Adapter) Headers() map[string]string {
	if a.accessToken == "" {
		return map[string]string{}
	}
	return map[string]string{
		headerAuthorization: "Bearer " + a.accessToken,
		headerContentType:   contentTypeJSON,
	}
}

// Get issues a GET with query parameters and returns the response body.
func (a *Adapter) Get(ctx context.Context, url string, query, headers map[string]string) (string, error) {
	return a.do(ctx, httpclient.Request{
		Method:  http.MethodGet,
		Path:    url,
		Query:   query,
		Headers: a.mergeHeaders(headers),
	})
}

// Put issues a PUT with body as the raw payload and returns the response body.
func (a *Adapter) Put(ctx context.Context, url string, body []byte, headers map[string]string) (string, error) {
	return a.do(ctx, httpclient.Request{
		Method:  http.MethodPut,
		Path:    url,
		Body:    body,
		Headers: a.mergeHeaders(headers),
	})
}

// Post issues a POST with body as the raw payload and returns the response body.
func (a *Adapter) Post(ctx context.Context, url string, body []byte, headers map[string]string) (string, error) {
	return a.do(ctx, httpclient.Request{
		Method:  http.MethodPost,
		Path:    url,
		Body:    body,
		Headers: a.mergeHeaders(headers),
	})
}

// Delete issues a DELETE without a body and returns the response body.
func (a *Adapter) Delete(ctx context.Context, url string, headers map[string]string) (string, error) {
	return a.do(ctx, httpclient.Request{
		Method:  http.MethodDelete,
		Path:    url,
		Headers: a.mergeHeaders(headers),
	})
}

// mergeHeaders overlays the auth headers on extra. Keys are canonicalized so
// a caller's "authorization" cannot survive next to the computed value.
func (a *Adapter) mergeHeaders(extra map[string]string) map[string]string {
	auth := a.Headers()
	merged := make(map[string]string, len(extra)+len(auth))
	for k, v := range extra {
		merged[http.CanonicalHeaderKey(k)] = v
	}
	for k, v := range auth {
		merged[http.CanonicalHeaderKey(k)] = v
	}
	return merged
}

func (a *Adapter) do(ctx context.Context, req httpclient.Request) (string, error) {
	log := a.log.WithFields(logger.Fields(
		logger.FieldRequestID, uuid.NewString(),
		logger.FieldMethod, req.Method,
		logger.FieldURL, req.Path,
	))
	start := time.Now()

	resp, err := a.client.Do(ctx, req)
	elapsed := time.Since(start)
	if err != nil {
		derr := a.translateError(err)
		kind := "unclassified"
		if code, ok := errors.CodeOf(derr); ok {
			kind = string(code)
		}
		log.WithError(err).Warn("shipx request failed", logger.Fields(
			logger.FieldErrorKind, kind,
			logger.FieldDuration, elapsed.Milliseconds(),
		))
		return "", derr
	}

	if resp == nil {
		return "", nil
	}
	log.Debug("shipx request completed", logger.Fields(
		logger.FieldStatus, resp.StatusCode,
		logger.FieldBodyLength, len(resp.Body),
		logger.FieldDuration, elapsed.Milliseconds(),
	))
	return resp.Text(), nil
}

// translateError never yields nil: a translator that declines to map err
// leaves the original error in place.
func (a *Adapter) translateError(err error) error {
	if derr := a.translate(err); derr != nil {
		return derr
	}
	return err
}
