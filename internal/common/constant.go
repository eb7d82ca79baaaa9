package common

// AuthorizationHeaderName is the gRPC metadata key (and lower-cased HTTP
// header) carrying the bearer token.
const AuthorizationHeaderName = "authorization"

// BearerScheme prefixes the token inside the authorization header.
const BearerScheme = "Bearer"
