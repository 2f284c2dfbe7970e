// Package httpclient provides the generic HTTP client the shipping API adapter
// delegates to.
//
// The Client resolves request paths against a base URL, applies default and
// per-request headers, sends the request, and classifies non-success status
// codes into *Error values. Every request is wrapped in an OpenTelemetry
// client span and recorded in request metrics using the global providers
// unless others are supplied.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://api-shipx-pl.easypack24.net",
//	    Timeout: 30 * time.Second,
//	})
//
//	resp, err := client.Do(ctx, httpclient.Request{
//	    Method: http.MethodGet,
//	    Path:   "/v1/organizations/123",
//	})
//
// The client performs no retries, circuit breaking, rate limiting or
// streaming. Timeouts come from Config.Timeout and the request context.
package httpclient
