// Package middleware groups the Fiber middleware registered by the start command.
//
// rayid tags every request with an X-Ray-ID that the request logger picks up.
// auth rejects requests without the configured API key, except for public
// prefixes such as the swagger UI.
package middleware
