package baas

import (
	"encoding/json"
	"fmt"
)

// Error is a provider error carried through unchanged so callers can relay
// the exact status and message (duplicate email, weak password, ...).
type Error struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("auth provider: %s (%s)", e.Message, e.Code)
	}
	return fmt.Sprintf("auth provider: %s", e.Message)
}

// decodeError maps the handful of body shapes GoTrue responds with
// ({"msg":...}, {"message":...}, {"error_description":...}) onto Error.
func decodeError(status int, body []byte) error {
	var raw struct {
		Msg              string `json:"msg"`
		Message          string `json:"message"`
		ErrorCode        string `json:"error_code"`
		ErrorDescription string `json:"error_description"`
	}
	_ = json.Unmarshal(body, &raw)

	msg := raw.Msg
	if msg == "" {
		msg = raw.Message
	}
	if msg == "" {
		msg = raw.ErrorDescription
	}
	if msg == "" {
		msg = string(body)
	}
	return &Error{Status: status, Code: raw.ErrorCode, Message: msg}
}
