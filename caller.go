package tgram

import (
	"context"
	"encoding/json"
)

// Params holds the parameters of a Bot API method call.
type Params map[string]any

// merged returns a copy of p with extra merged in. Keys from extra win on
// conflict: defaults computed from the update (reply targets, thread ids)
// must never override what the caller asked for.
func (p Params) merged(extra Params) Params {
	out := make(Params, len(p)+len(extra))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// Caller is the outbound transport capability: it performs one named Bot
// API method call and returns the raw result. Implementations fail with
// *Error for API-level rejections and *HTTPError for transport-level
// failures. A Caller is shared across contexts and must be safe for
// concurrent use.
type Caller interface {
	Call(ctx context.Context, method string, params Params) (json.RawMessage, error)
}

// CallerFunc adapts a function to the Caller interface. Use for stubs:
//
//	stub := tgram.CallerFunc(func(ctx context.Context, method string, params tgram.Params) (json.RawMessage, error) {
//	    return json.RawMessage(`true`), nil
//	})
type CallerFunc func(ctx context.Context, method string, params Params) (json.RawMessage, error)

// Call implements the Caller interface.
func (f CallerFunc) Call(ctx context.Context, method string, params Params) (json.RawMessage, error) {
	return f(ctx, method, params)
}
