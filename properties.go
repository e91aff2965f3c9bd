package jira

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Configuration keys read by [Builder.LoadDefaults]. The names are shared
// with the other Allure Jira integrations and must not change.
const (
	EndpointKey     = "ALLURE_JIRA_ENDPOINT"
	UsernameKey     = "ALLURE_JIRA_USERNAME"
	PasswordKey     = "ALLURE_JIRA_PASSWORD"
	ClientIDKey     = "ALLURE_JIRA_CLIENT_ID"
	ClientSecretKey = "ALLURE_JIRA_CLIENT_SECRET"
)

// PropertySource resolves named configuration values. Lookup reports false
// when the key is unset or blank.
type PropertySource interface {
	Lookup(key string) (string, bool)
}

// MapPropertySource is an in-memory [PropertySource].
type MapPropertySource map[string]string

func (m MapPropertySource) Lookup(key string) (string, bool) {
	value, ok := m[key]
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}

type viperPropertySource struct {
	v *viper.Viper
}

// NewEnvPropertySource returns a [PropertySource] backed by the process
// environment.
func NewEnvPropertySource() PropertySource {
	v := viper.New()
	v.AutomaticEnv()
	return &viperPropertySource{v: v}
}

// NewFilePropertySource returns a [PropertySource] that reads a config file
// (any format viper understands) whose keys are the ALLURE_JIRA_* names.
// Environment variables take precedence over values from the file.
func NewFilePropertySource(path string) (PropertySource, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	v.AutomaticEnv()
	return &viperPropertySource{v: v}, nil
}

func (s *viperPropertySource) Lookup(key string) (string, bool) {
	value := s.v.GetString(key)
	if strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}

func requireProperty(source PropertySource, key string) (string, error) {
	value, ok := source.Lookup(key)
	if !ok {
		return "", &MissingConfigError{Key: key}
	}
	return value, nil
}
