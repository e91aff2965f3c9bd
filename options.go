package jira

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type Option func(*Options)

type Options struct {
	endpoint         string
	username         string
	password         string
	clientID         string
	clientSecret     string
	propertySource   PropertySource
	retryCount       int
	retryWaitTime    time.Duration
	retryMaxWaitTime time.Duration
	requestLogger    RequestLogger
	retryPolicy      func(*resty.Response, error) bool
	requestHeaders   map[string]string
	timeout          time.Duration
	baseTransport    http.RoundTripper
	userAgent        string
}

func newClientOptions() *Options {
	return &Options{
		retryCount:       3,
		retryWaitTime:    500 * time.Millisecond,
		retryMaxWaitTime: 3 * time.Second,
		requestLogger:    &NoopLogger{},
		retryPolicy:      DefaultRetryPolicy,
		timeout:          30 * time.Second,
		requestHeaders: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
	}
}

// WithEndpoint sets the Jira base URL. A trailing slash is appended when
// missing. Empty values are ignored.
func WithEndpoint(endpoint string) Option {
	return func(o *Options) {
		if endpoint != "" {
			o.endpoint = addSlashIfMissing(endpoint)
		}
	}
}

func WithBasicAuth(username, password string) Option {
	return func(o *Options) {
		o.username = username
		o.password = password
	}
}

// WithClientCredentials sets the client ID and secret. When both are
// non-empty at build time they take precedence over basic auth.
func WithClientCredentials(clientID, clientSecret string) Option {
	return func(o *Options) {
		o.clientID = clientID
		o.clientSecret = clientSecret
	}
}

// WithPropertySource sets where [Builder.LoadDefaults] reads the
// ALLURE_JIRA_* keys from. The process environment is used by default.
func WithPropertySource(source PropertySource) Option {
	return func(o *Options) {
		if source != nil {
			o.propertySource = source
		}
	}
}

func WithRetryCount(count int) Option {
	return func(o *Options) {
		if count >= 0 {
			o.retryCount = count
		}
	}
}

func WithRetryWaitTime(waitTime time.Duration) Option {
	return func(o *Options) {
		if waitTime >= 100*time.Millisecond {
			o.retryWaitTime = waitTime
		}
	}
}

func WithRetryMaxWaitTime(maxWaitTime time.Duration) Option {
	return func(o *Options) {
		if maxWaitTime >= 100*time.Millisecond {
			o.retryMaxWaitTime = maxWaitTime
		}
	}
}

func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}

func WithRetryPolicy(policy func(*resty.Response, error) bool) Option {
	return func(o *Options) {
		if policy != nil {
			o.retryPolicy = policy
		}
	}
}

// WithRequestHeader adds a static header to every request. Content-Type,
// Accept and Authorization are reserved and cannot be overridden.
func WithRequestHeader(header, value string) Option {
	return func(o *Options) {
		header = strings.TrimSpace(header)

		if header == "" || isReservedHeader(header) {
			return
		}

		o.requestHeaders[header] = value
	}
}

// WithTimeout sets the overall timeout of a single HTTP request, including
// reading the response body. Zero disables the timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout >= 0 {
			o.timeout = timeout
		}
	}
}

// WithBaseTransport sets the transport the authentication interceptor
// forwards to. http.DefaultTransport is used when unset.
func WithBaseTransport(transport http.RoundTripper) Option {
	return func(o *Options) {
		o.baseTransport = transport
	}
}

func WithUserAgent(userAgent string) Option {
	return func(o *Options) {
		o.userAgent = strings.TrimSpace(userAgent)
	}
}

// Validate checks the options as a whole. It is called by [Builder.Build].
func (o *Options) Validate() error {
	if o.endpoint == "" {
		return errors.New("endpoint must be set")
	}

	u, err := url.Parse(o.endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("endpoint %q is not a valid absolute URL", o.endpoint)
	}

	if o.retryCount < 0 {
		return errors.New("retryCount must be non-negative")
	}

	if o.retryCount > 100 {
		return errors.New("retryCount must not exceed 100")
	}

	if o.retryWaitTime < 100*time.Millisecond {
		return errors.New("retryWaitTime must be at least 100ms")
	}

	if o.retryWaitTime > time.Minute {
		return fmt.Errorf("retryWaitTime must not exceed %v", time.Minute)
	}

	if o.retryMaxWaitTime < 100*time.Millisecond {
		return errors.New("retryMaxWaitTime must be at least 100ms")
	}

	if o.retryMaxWaitTime > 5*time.Minute {
		return fmt.Errorf("retryMaxWaitTime must not exceed %v", 5*time.Minute)
	}

	if o.retryMaxWaitTime < o.retryWaitTime {
		return fmt.Errorf("retryMaxWaitTime (%v) must be greater than or equal to retryWaitTime (%v)", o.retryMaxWaitTime, o.retryWaitTime)
	}

	if o.requestLogger == nil {
		return errors.New("requestLogger must not be nil")
	}

	if o.retryPolicy == nil {
		return errors.New("retryPolicy must not be nil")
	}

	hasBasic := o.username != "" && o.password != ""

	if o.hasClientCredentials() {
		if hasBasic {
			return errors.New("cannot use both basic auth and client credentials - choose one")
		}
		return nil
	}

	if !hasBasic {
		return errors.New("username and password, or client ID and client secret, must be set")
	}

	return nil
}

func (o *Options) hasClientCredentials() bool {
	return o.clientID != "" && o.clientSecret != ""
}

func isReservedHeader(header string) bool {
	for _, reserved := range []string{"Content-Type", "Accept", "Authorization"} {
		if strings.EqualFold(header, reserved) {
			return true
		}
	}
	return false
}

func addSlashIfMissing(endpoint string) string {
	if strings.HasSuffix(endpoint, "/") {
		return endpoint
	}
	return endpoint + "/"
}
