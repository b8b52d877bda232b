package api

import (
	"encoding/json"
	"fmt"

	"github.com/portalesuite/portale-client/internal/common"
)

// BodyKind identifies the shape of a normalized response body. The set is
// closed: downstream code switches on it instead of re-probing field
// presence.
type BodyKind int

const (
	// BodyNone: the response carried no body, or an empty one.
	BodyNone BodyKind = iota
	// BodyObject: a JSON object, decoded into Body.Object.
	BodyObject
	// BodyArray: a JSON array, decoded into Body.Array.
	BodyArray
	// BodyText: a non-JSON body (HTML error pages, plain text), in Body.Text.
	BodyText
	// BodyInvalid: a body was present but could not be decoded; Body.Err
	// holds the cause.
	BodyInvalid
)

// Body is the normalized response body, decided once by the normalizer.
// Exactly one of Object, Array, Text, Err is meaningful, per Kind.
type Body struct {
	Kind   BodyKind
	Object map[string]any
	Array  []any
	Text   string
	Err    error
}

// Result is the uniform outcome of every API call.
//
// Invariants:
//   - OK is true only when the transport succeeded, the HTTP status is in
//     the success range, and the body did not carry success=false.
//   - Status is 0 when the request never reached the server.
//   - Message is non-empty whenever OK is false.
type Result struct {
	OK      bool
	Status  int
	Data    any    // unwrapped payload; nil for non-JSON bodies and failures without one
	Raw     Body   // the full normalized body, kept for diagnostics
	Message string // human-readable explanation; empty only on silent successes
}

// Decode remarshals the unwrapped payload of res into T. It is the typed
// view over Result.Data for callers that know the expected shape.
func Decode[T any](res Result) (T, error) {
	var v T
	if res.Data == nil {
		return v, common.ErrBadPayload
	}
	b, err := json.Marshal(res.Data)
	if err != nil {
		return v, fmt.Errorf("%w: %v", common.ErrBadPayload, err)
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return v, fmt.Errorf("%w: %v", common.ErrBadPayload, err)
	}
	return v, nil
}
