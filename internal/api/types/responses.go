package types

// Envelope is a success body: success and message followed by the payload
// keys at the top level.
type Envelope map[string]any

// OK builds a success envelope around payload.
func OK(message string, payload map[string]any) Envelope {
	env := Envelope{"success": true, "message": message}
	for k, v := range payload {
		env[k] = v
	}
	return env
}

// ErrorBody is the failure body. Stack echoes the internal error text on 500s.
type ErrorBody struct {
	Error string `json:"error"`
	Stack string `json:"stack,omitempty"`
}
