// Package client is the InstaGuard API client layer.
//
// # Overview
//
// Client is the transport-agnostic contract for every backend call the
// terminal client makes: authentication, profile, reports, predictions,
// feedback, contact and the admin views. HTTPClient implements it over
// JSON/HTTP. It attaches the bearer token held in memory, tags each request
// with an X-Request-ID and maps failures to sentinel errors.
//
// The package also bootstraps the local SQLite database used for the
// session cache (InitDatabase, RunMigrations).
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. Non-2xx responses become
// *APIError, which matches ErrUnauthorized (401), ErrForbidden (403),
// ErrNotFound (404) and ErrTooManyRequests (429) through errors.Is.
// Operations that need a bearer token return ErrNoToken without touching
// the network when none is held. Message turns any of these into the single
// line shown to the user.
//
// Nothing is retried.
package client
