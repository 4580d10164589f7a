package model

// Envelope is the uniform response wrapper for every endpoint.
// Status mirrors the HTTP status code, Message carries a human-readable
// explanation, and Data holds the typed payload (omitted when empty).
type Envelope struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
