package taskapi

import "encoding/json"

// APIError is a non-2xx response from the backend, carrying the message
// extracted from its error envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

// HTTPStatus implements service.StatusError.
func (e *APIError) HTTPStatus() int { return e.StatusCode }

// errorDetail is the inner shape of both envelope variants.
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorEnvelope covers the two shapes the backend produces:
// {"error": {"message": ...}} and {"detail": {"message": ...}}.
// detail is raw because validation failures put other types there.
type errorEnvelope struct {
	Error  *errorDetail    `json:"error"`
	Detail json.RawMessage `json:"detail"`
}

// decodeError extracts a human-readable message from an error response
// body, trying error.message then detail.message before falling back.
func decodeError(status int, body []byte, fallback string) *APIError {
	msg := fallback
	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err == nil {
		switch {
		case env.Error != nil && env.Error.Message != "":
			msg = env.Error.Message
		case env.Detail != nil:
			var d errorDetail
			if err := json.Unmarshal(env.Detail, &d); err == nil && d.Message != "" {
				msg = d.Message
			}
		}
	}
	return &APIError{StatusCode: status, Message: msg}
}
