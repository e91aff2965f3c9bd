package jira

import (
	"errors"
	"net/http"
)

// Interceptor rewrites an outbound request before it is sent. It receives
// a private copy of the request and may modify it in place.
type Interceptor func(*http.Request) *http.Request

// BasicAuthInterceptor sets "Authorization: Basic base64(username:password)"
// on every request.
func BasicAuthInterceptor(username, password string) Interceptor {
	return func(req *http.Request) *http.Request {
		req.SetBasicAuth(username, password)
		return req
	}
}

// ClientCredentialsInterceptor sets the Authorization header to the literal
// string
//
//	{ "client_id": "<clientID>", "client_secret": "<clientSecret>" }
//
// on every request. The values are not escaped, and no token exchange takes
// place: the credentials themselves travel with each request, so this mode
// must only be used over TLS.
func ClientCredentialsInterceptor(clientID, clientSecret string) Interceptor {
	credentials := `{ "client_id": "` + clientID + `", "client_secret": "` + clientSecret + `" }`

	return func(req *http.Request) *http.Request {
		req.Header.Set("Authorization", credentials)
		return req
	}
}

// InterceptorTransport is an http.RoundTripper that applies an [Interceptor]
// to a clone of each request before delegating to the base transport. The
// base transport's response and error are returned unchanged.
type InterceptorTransport struct {
	// Base is the underlying HTTP transport. If nil, http.DefaultTransport is used.
	Base http.RoundTripper

	Intercept Interceptor
}

// NewInterceptorTransport creates an InterceptorTransport. The base
// transport defaults to http.DefaultTransport if nil.
func NewInterceptorTransport(intercept Interceptor, base http.RoundTripper) *InterceptorTransport {
	if base == nil {
		base = http.DefaultTransport
	}

	return &InterceptorTransport{
		Base:      base,
		Intercept: intercept,
	}
}

// RoundTrip implements http.RoundTripper.
func (t *InterceptorTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.Intercept == nil {
		if req.Body != nil {
			_ = req.Body.Close()
		}
		return nil, errors.New("jira: interceptor is nil")
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	// RoundTrippers must not modify the caller's request
	return base.RoundTrip(t.Intercept(req.Clone(req.Context())))
}
