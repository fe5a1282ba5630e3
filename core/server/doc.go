// Package server holds the HTTP server configuration.
//
// The main application entry point handles the server startup; this package
// only defines the settings it reads: the listen port, the API key protecting
// every route, and the request read timeout.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by the start command to configure Fiber.
package server
