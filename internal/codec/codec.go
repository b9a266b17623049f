// Package codec holds the wire framing shared by the transports.
package codec

import (
	"encoding/json"
	"errors"
)

// ResponseFrame is the minimal response encoding for request/reply
// transports. It must stay identical across transport backends so that a
// requester on one backend can decode a reply produced by another.
type ResponseFrame struct {
	Data []byte `json:"data,omitempty"`
	Err  string `json:"err,omitempty"`
}

// EncodeResponse frames a handler outcome.
func EncodeResponse(data []byte, err error) []byte {
	rf := ResponseFrame{Data: data}
	if err != nil {
		rf.Err = err.Error()
		rf.Data = nil
	}
	b, _ := json.Marshal(rf)
	return b
}

// DecodeResponse unframes a reply back into a handler outcome.
func DecodeResponse(b []byte) ([]byte, error) {
	var rf ResponseFrame
	if err := json.Unmarshal(b, &rf); err != nil {
		return nil, err
	}
	if rf.Err != "" {
		return nil, errors.New(rf.Err)
	}
	return rf.Data, nil
}
