package httpclient

// Request describes an outbound HTTP request.
type Request struct {
	// Method is the HTTP method (GET, POST, PUT, DELETE, etc).
	Method string
	// Path is appended to the client's BaseURL. Absolute URLs are used as-is.
	Path string
	// Headers are request-specific headers. They override client defaults.
	Headers map[string]string
	// Query are URL query parameters, merged into any query already in Path.
	Query map[string]string
	// Body is the raw request payload. Nil sends no body.
	Body []byte
}

// Response is the result of an HTTP request.
type Response struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Headers are the response headers, first value per key.
	Headers map[string]string
	// Body is the raw response body.
	Body []byte
}

// Text returns the response body as a string.
func (r *Response) Text() string {
	return string(r.Body)
}

// IsSuccess returns true if the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// IsError returns true if the status code is 4xx or 5xx.
func (r *Response) IsError() bool {
	return r.StatusCode >= 400
}
