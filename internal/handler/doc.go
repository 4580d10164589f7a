// Package handler exposes the HTTP surface of MeepleHub. Every endpoint
// responds with the same envelope: a status code, a human-readable
// message, and an optional data payload. Domain failures map to 400,
// authentication failures to 401, everything unexpected to 500.
package handler
