// Package jira builds HTTP clients for the Jira REST API used by the Allure
// Jira integration.
//
// The client wraps [github.com/go-resty/resty/v2]. Every outbound request
// passes through an [InterceptorTransport] that injects the Authorization
// header for the selected credential mode.
//
// # Basic Usage
//
//	b := jira.NewBuilder()
//	if err := b.LoadDefaults(); err != nil {
//	    log.Fatal(err)
//	}
//
//	c, err := b.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	issue, err := c.GetIssue(ctx, "ALR-1")
//
// # Configuration
//
// Settings are supplied either through [Option] functions passed to
// [NewBuilder] or through the Builder setters. [Builder.LoadDefaults]
// resolves the ALLURE_JIRA_* keys from a [PropertySource], which defaults
// to the process environment. All configuration is validated when
// [Builder.Build] is called; no network I/O happens before the returned
// client is used.
//
// # Authentication
//
// When both a client ID and a client secret are configured, requests carry
// the client credentials as a literal JSON string in the Authorization
// header (see [ClientCredentialsInterceptor]). Otherwise HTTP Basic
// authentication is used with the configured username and password.
//
// # Retry Behaviour
//
// Retries are handled by resty. [DefaultRetryPolicy] retries idempotent
// requests on HTTP 429 and 5xx responses and on transient connection
// errors; the create operations (POST) are sent once. Supply a custom
// function via [WithRetryPolicy], or disable retries with
// WithRetryCount(0).
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger]. The
// default [NoopLogger] discards all log output. A *zap.SugaredLogger
// satisfies the interface as is.
package jira
