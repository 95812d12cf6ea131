// Package analytics is a client for the organizational mining HTTP API.
//
// Every endpoint is a GET returning a raw JSON payload. Failed requests
// (status >= 400) are returned as *APIError, decoded from the API's
// {success, message, code, errors} body when present.
//
// Requests pass through a token-bucket limiter and carry a fresh
// X-Request-ID so they can be matched against server logs. Request outcomes
// are logged at debug level.
package analytics
