// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the storserv server.
//
// Fields:
//   - EndpointAddr: bind address for the public HTTP endpoint.
//   - DatabaseDSN: optional PostgreSQL DSN (pgx) for the credential store.
//     When empty, credentials are read from the users bucket instead.
//   - SecretKey: HMAC secret for signing JWTs (HS256). When empty the secret
//     is fetched from the SSM parameter named by SecretParamName.
//   - SecretParamName: SSM parameter holding the signing secret.
//   - TokenValidity: lifetime of issued tokens.
//   - NamespacePrefix: prefix of per-user storage namespaces.
//   - UsersBucket: fixed bucket holding username -> password-hash records.
//   - S3RootUser / S3RootPassword: credentials for the S3-compatible backend.
//   - S3Region / S3BaseEndpoint: object storage settings.
type Config struct {
	EndpointAddr    string
	DatabaseDSN     string
	SecretKey       string
	SecretParamName string
	TokenValidity   time.Duration
	NamespacePrefix string
	UsersBucket     string
	S3RootUser      string
	S3RootPassword  string
	S3Region        string
	S3BaseEndpoint  string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DatabaseDSN = ""
	c.SecretKey = ""
	c.SecretParamName = "storserv-jwt"
	c.TokenValidity = 3600 * time.Second
	c.NamespacePrefix = "storserv"
	c.UsersBucket = "storserv-users"
	c.S3RootUser = "admin"
	c.S3RootPassword = "secretpassword"
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
