package node

// EnvelopeOption mutates an envelope before it is sent.
type EnvelopeOption func(*Envelope)

// WithHeader sets a header on the envelope.
func WithHeader(key, value string) EnvelopeOption {
	return func(e *Envelope) {
		if e.Headers == nil {
			e.Headers = make(map[string]string)
		}
		e.Headers[key] = value
	}
}

// Envelope carries one invocation across a transport. Params are opaque to
// everything between the caller and the handler.
type Envelope struct {
	Actor   string            `json:"actor"`
	Method  uint64            `json:"method"`
	Params  []byte            `json:"params,omitempty"`
	ReplyTo string            `json:"reply_to,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
}

func (e Envelope) GetHeader(key string) (string, bool) {
	if e.Headers == nil {
		return "", false
	}
	v, ok := e.Headers[key]
	return v, ok
}

func (e Envelope) Validate() error {
	if e.Actor == "" {
		return ErrActorIDRequired
	}
	return nil
}
