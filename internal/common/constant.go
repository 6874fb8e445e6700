// Package common contains shared constants and sentinel errors used across
// storserv components.
package common

// AuthorizationHeaderName is the HTTP header used to carry the access token
// on inbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerSchema is the expected scheme of the Authorization header value.
const BearerSchema = "Bearer"
