package jira

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// DefaultRetryPolicy is the default retry condition installed on the resty
// client. It retries idempotent requests on HTTP 429 (rate limit) and 5xx
// server errors, and on transient connection errors. It does not retry on
// context cancellation, deadline exceeded, DNS resolution or certificate
// failures. POST and PATCH requests are never retried, since Jira may have
// applied the first attempt.
//
// Supply a custom function via [WithRetryPolicy] to override this behaviour.
func DefaultRetryPolicy(r *resty.Response, err error) bool {
	if r != nil && r.Request != nil && !isIdempotent(r.Request.Method) {
		return false
	}

	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false
		}

		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) {
			return false
		}

		// A bad certificate will not fix itself between attempts
		var verifyErr *tls.CertificateVerificationError
		if errors.As(err, &verifyErr) {
			return false
		}

		var authorityErr x509.UnknownAuthorityError
		if errors.As(err, &authorityErr) {
			return false
		}

		return true
	}

	if r == nil {
		return false
	}

	return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= http.StatusInternalServerError
}

func isIdempotent(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete, http.MethodOptions:
		return true
	default:
		return false
	}
}
