// Package model defines the domain entities and request/response types
// shared between repositories, services, and handlers.
package model
