package jira

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
)

const (
	serverInfoPath       = "rest/api/2/serverInfo"
	issuePath            = "rest/api/2/issue/"
	launchCreatePath     = "rest/tms/1.0/launch/create"
	testResultCreatePath = "rest/tms/1.0/testresult/create"
)

// Service is the set of Jira operations used by the Allure integration.
// [Client] is the HTTP implementation returned by [Builder.Build].
type Service interface {
	ServerInfo(ctx context.Context) (*ServerInfo, error)
	GetIssue(ctx context.Context, issueKey string) (*Issue, error)
	CreateIssueComment(ctx context.Context, issueKey string, comment *Comment) (*Comment, error)
	CreateLaunch(ctx context.Context, launch *Launch) (*Launch, error)
	CreateTestResult(ctx context.Context, result *TestResult) ([]ExportResult, error)
}

var _ Service = (*Client)(nil)

// Client is a Jira REST client. It holds only immutable configuration and
// is safe for concurrent use.
type Client struct {
	endpoint string
	authMode AuthMode
	client   *resty.Client
	logger   RequestLogger
}

func newClient(opts *Options, mode AuthMode, intercept Interceptor) *Client {
	httpClient := &http.Client{
		Transport: NewInterceptorTransport(intercept, opts.baseTransport),
		Timeout:   opts.timeout,
	}

	rc := resty.NewWithClient(httpClient).
		SetBaseURL(opts.endpoint).
		SetHeaders(opts.requestHeaders).
		SetRetryCount(opts.retryCount).
		SetRetryWaitTime(opts.retryWaitTime).
		SetRetryMaxWaitTime(opts.retryMaxWaitTime).
		AddRetryCondition(opts.retryPolicy).
		SetLogger(opts.requestLogger)

	if opts.userAgent != "" {
		rc.SetHeader("User-Agent", opts.userAgent)
	}

	return &Client{
		endpoint: opts.endpoint,
		authMode: mode,
		client:   rc,
		logger:   opts.requestLogger,
	}
}

// Endpoint returns the normalized base URL, always ending with a slash.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// AuthMode reports which authentication interceptor the client uses.
func (c *Client) AuthMode() AuthMode {
	return c.authMode
}

// ServerInfo fetches the Jira server info. It is the cheapest authenticated
// call and doubles as a connectivity check.
func (c *Client) ServerInfo(ctx context.Context) (*ServerInfo, error) {
	if c == nil {
		return nil, errNilClient
	}

	info := &ServerInfo{}
	if err := c.do(ctx, http.MethodGet, serverInfoPath, nil, info); err != nil {
		return nil, err
	}

	return info, nil
}

func (c *Client) GetIssue(ctx context.Context, issueKey string) (*Issue, error) {
	if c == nil {
		return nil, errNilClient
	}

	issueKey = strings.TrimSpace(issueKey)
	if issueKey == "" {
		return nil, invalidArgument("issue key")
	}

	issue := &Issue{}
	if err := c.do(ctx, http.MethodGet, issuePath+url.PathEscape(issueKey), nil, issue); err != nil {
		return nil, err
	}

	return issue, nil
}

func (c *Client) CreateIssueComment(ctx context.Context, issueKey string, comment *Comment) (*Comment, error) {
	if c == nil {
		return nil, errNilClient
	}

	issueKey = strings.TrimSpace(issueKey)
	if issueKey == "" {
		return nil, invalidArgument("issue key")
	}

	if comment == nil {
		return nil, invalidArgument("comment")
	}

	created := &Comment{}
	path := issuePath + url.PathEscape(issueKey) + "/comment"
	if err := c.do(ctx, http.MethodPost, path, comment, created); err != nil {
		return nil, err
	}

	return created, nil
}

func (c *Client) CreateLaunch(ctx context.Context, launch *Launch) (*Launch, error) {
	if c == nil {
		return nil, errNilClient
	}

	if launch == nil {
		return nil, invalidArgument("launch")
	}

	created := &Launch{}
	if err := c.do(ctx, http.MethodPost, launchCreatePath, launch, created); err != nil {
		return nil, err
	}

	return created, nil
}

func (c *Client) CreateTestResult(ctx context.Context, result *TestResult) ([]ExportResult, error) {
	if c == nil {
		return nil, errNilClient
	}

	if result == nil {
		return nil, invalidArgument("test result")
	}

	var exported []ExportResult
	if err := c.do(ctx, http.MethodPost, testResultCreatePath, result, &exported); err != nil {
		return nil, err
	}

	return exported, nil
}

var errNilClient = errors.New("jira client is nil")

// do executes a request and adapts the response: 2xx bodies are decoded
// into result, anything else becomes a *ResponseError. Transport errors are
// wrapped with the method and path.
func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	req := c.client.R().SetContext(ctx)

	if body != nil {
		req.SetBody(body)
	}

	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Errorf("%s %s failed: %v", method, path, err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}

	if !resp.IsSuccess() {
		respErr := newResponseError(method, path, resp.StatusCode(), resp.Body())
		c.logger.Warnf("%v", respErr)
		return respErr
	}

	c.logger.Debugf("%s %s completed with status %d", method, path, resp.StatusCode())

	return nil
}
