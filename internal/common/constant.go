// Package common contains shared constants and sentinel errors used across
// gophtasks components.
package common

// AuthTokenHeaderName is the HTTP header carrying the signed access token.
// The raw token is expected; a "Bearer " prefix is tolerated.
const AuthTokenHeaderName = "Authorization"

// BearerPrefix is the optional authorization scheme in front of the token.
const BearerPrefix = "Bearer "
