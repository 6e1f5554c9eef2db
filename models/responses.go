package models

import "encoding/json"

// Envelope is the uniform reply shape produced by every food-blog endpoint:
// an application-level status code, an optional human-readable message, and
// either a single result object or a list of results. The HTTP layer may
// answer 200 while Status carries the real outcome, so callers must always
// inspect Status and never the transport code alone.
type Envelope struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`

	// Token is present only on successful login responses.
	Token string `json:"token,omitempty"`

	// Result and Results are kept raw so each endpoint can decode its own
	// payload shape exactly once at the adapter boundary.
	Result  json.RawMessage `json:"result,omitempty"`
	Results json.RawMessage `json:"results,omitempty"`
}

// OK reports whether Status is in the success set shared by all endpoints.
func (e Envelope) OK() bool {
	return e.Status == 200 || e.Status == 201
}
