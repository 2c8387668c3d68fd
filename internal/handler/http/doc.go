// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as bearer authentication, request tracing,
// and access logging are handled in this package before requests are
// delegated to the service layer. Handlers never touch the database
// directly: every database operation travels through the dispatcher, so a
// handler goroutine only ever blocks on a future, never on a driver call.
package http
