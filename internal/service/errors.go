package service

import "encoding/json"

// ProtocolError is a well-formed application-level error frame from the
// backend. It is terminal for the stream that produced it, and distinct
// from a transport failure: the connection worked, the server reported
// a failure of its own.
type ProtocolError struct {
	Message string
}

func (e *ProtocolError) Error() string {
	return e.Message
}

// errorFrom inspects a frame payload for an error signal: either an
// explicit `error`-typed frame or the backend's bare {"error": "..."}
// shape. Returns nil when the frame is not an error.
func errorFrom(raw json.RawMessage) *ProtocolError {
	var probe struct {
		Type    string `json:"type"`
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil
	}
	if probe.Error != "" {
		return &ProtocolError{Message: probe.Error}
	}
	if probe.Type == "error" {
		msg := probe.Message
		if msg == "" {
			msg = "stream failed"
		}
		return &ProtocolError{Message: msg}
	}
	return nil
}
