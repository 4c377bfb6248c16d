package http

// Request is the body of POST /ask. Question holds whatever JSON value the
// client sent, nil when the field is absent or null.
type Request struct {
	Question any `json:"question"`
}
