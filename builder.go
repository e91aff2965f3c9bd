package jira

import "fmt"

// AuthMode identifies the authentication interceptor installed by
// [Builder.Build].
type AuthMode string

const (
	AuthModeBasic             AuthMode = "basic"
	AuthModeClientCredentials AuthMode = "client-credentials"
)

func (m AuthMode) String() string {
	return string(m)
}

// Builder collects the endpoint and credentials of a Jira client. A Builder
// is not safe for concurrent use; the [Client] it builds is.
type Builder struct {
	opts *Options
}

// NewBuilder creates a Builder with the given options applied on top of the
// defaults.
func NewBuilder(opts ...Option) *Builder {
	options := newClientOptions()

	for _, opt := range opts {
		opt(options)
	}

	return &Builder{opts: options}
}

// SetEndpoint sets the Jira base URL, appending a trailing slash if absent.
func (b *Builder) SetEndpoint(endpoint string) error {
	if endpoint == "" {
		return invalidArgument("endpoint")
	}

	b.opts.endpoint = addSlashIfMissing(endpoint)

	return nil
}

func (b *Builder) SetUsername(username string) error {
	if username == "" {
		return invalidArgument("username")
	}

	b.opts.username = username

	return nil
}

func (b *Builder) SetPassword(password string) error {
	if password == "" {
		return invalidArgument("password")
	}

	b.opts.password = password

	return nil
}

func (b *Builder) SetClientID(clientID string) error {
	if clientID == "" {
		return invalidArgument("client ID")
	}

	b.opts.clientID = clientID

	return nil
}

func (b *Builder) SetClientSecret(clientSecret string) error {
	if clientSecret == "" {
		return invalidArgument("client secret")
	}

	b.opts.clientSecret = clientSecret

	return nil
}

// LoadDefaults resolves the configuration from the builder's
// [PropertySource].
//
// If both ALLURE_JIRA_CLIENT_ID and ALLURE_JIRA_CLIENT_SECRET are set, the
// values read are adopted as client credentials, and ALLURE_JIRA_ENDPOINT is
// applied when present. Otherwise ALLURE_JIRA_ENDPOINT, ALLURE_JIRA_USERNAME
// and ALLURE_JIRA_PASSWORD are all required, in that order, and the first
// missing one is reported as a *MissingConfigError.
func (b *Builder) LoadDefaults() error {
	source := b.opts.propertySource
	if source == nil {
		source = NewEnvPropertySource()
	}

	clientID, hasID := source.Lookup(ClientIDKey)
	clientSecret, hasSecret := source.Lookup(ClientSecretKey)

	if hasID && hasSecret {
		b.opts.requestLogger.Debugf("loading client credentials from %s and %s", ClientIDKey, ClientSecretKey)
		return b.loadClientCredentialDefaults(source, clientID, clientSecret)
	}

	b.opts.requestLogger.Debugf("%s or %s not set, loading basic auth defaults", ClientIDKey, ClientSecretKey)

	return b.loadBasicDefaults(source)
}

func (b *Builder) loadClientCredentialDefaults(source PropertySource, clientID, clientSecret string) error {
	// Assign what was read from the source, not the builder's own fields.
	if err := b.SetClientID(clientID); err != nil {
		return err
	}

	if err := b.SetClientSecret(clientSecret); err != nil {
		return err
	}

	if endpoint, ok := source.Lookup(EndpointKey); ok {
		return b.SetEndpoint(endpoint)
	}

	return nil
}

func (b *Builder) loadBasicDefaults(source PropertySource) error {
	setters := []struct {
		key string
		set func(string) error
	}{
		{EndpointKey, b.SetEndpoint},
		{UsernameKey, b.SetUsername},
		{PasswordKey, b.SetPassword},
	}

	for _, s := range setters {
		value, err := requireProperty(source, s.key)
		if err != nil {
			return err
		}

		if err := s.set(value); err != nil {
			return err
		}
	}

	return nil
}

// AuthMode reports the interceptor Build will install: client credentials
// when both the client ID and secret are set, basic auth otherwise.
func (b *Builder) AuthMode() AuthMode {
	if b.opts.hasClientCredentials() {
		return AuthModeClientCredentials
	}
	return AuthModeBasic
}

// Build validates the configuration and returns a client with the matching
// authentication interceptor installed. It performs no network I/O.
func (b *Builder) Build() (*Client, error) {
	if err := b.opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	mode := b.AuthMode()

	var intercept Interceptor
	if mode == AuthModeClientCredentials {
		intercept = ClientCredentialsInterceptor(b.opts.clientID, b.opts.clientSecret)
	} else {
		intercept = BasicAuthInterceptor(b.opts.username, b.opts.password)
	}

	b.opts.requestLogger.Debugf("building Jira client for %s with %s authentication", b.opts.endpoint, mode)

	return newClient(b.opts, mode, intercept), nil
}
