package api

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"
	"sort"
	"strings"
)

// maxTextMessageLen bounds how much of a plain-text body (typically an HTML
// error page) is surfaced as a message.
const maxTextMessageLen = 500

// normalize turns one raw HTTP response into the uniform Result. It is a
// pure function of the response: normalizing equivalent responses yields
// equal Results.
func normalize(resp *http.Response) Result {
	body := readBody(resp)

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	// An explicit success=false in the envelope overrides the HTTP status.
	// An object omitting the field does not block success.
	if body.Kind == BodyObject {
		if flag, isBool := body.Object["success"].(bool); isBool && !flag {
			ok = false
		}
	}

	var data any
	switch body.Kind {
	case BodyObject:
		if d, present := body.Object["data"]; present {
			data = d
		} else {
			data = body.Object
		}
	case BodyArray:
		data = body.Array
	}

	msg := extractMessage(body)
	if msg == "" && !ok {
		msg = defaultMessage(resp.StatusCode)
	}

	return Result{
		OK:      ok,
		Status:  resp.StatusCode,
		Data:    data,
		Raw:     body,
		Message: msg,
	}
}

// readBody decodes the response body into the closed Body union, driven by
// the Content-Type header: JSON media types are parsed, everything else is
// read as plain text.
func readBody(resp *http.Response) Body {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Body{Kind: BodyInvalid, Err: err}
	}
	if len(raw) == 0 {
		return Body{Kind: BodyNone}
	}

	if !isJSONContentType(resp.Header.Get("Content-Type")) {
		return Body{Kind: BodyText, Text: string(raw)}
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return Body{Kind: BodyInvalid, Err: err}
	}

	switch v := parsed.(type) {
	case map[string]any:
		return Body{Kind: BodyObject, Object: v}
	case []any:
		return Body{Kind: BodyArray, Array: v}
	case string:
		// A bare JSON string is treated like a text body.
		return Body{Kind: BodyText, Text: v}
	default:
		// Bare numbers, booleans and null carry no usable payload.
		return Body{Kind: BodyNone}
	}
}

func isJSONContentType(ct string) bool {
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	return mt == "application/json" || strings.HasSuffix(mt, "+json")
}

// extractMessage derives the human-readable message from a normalized body.
// Priority: field-keyed validation errors, then the top-level message
// string, then a truncated plain-text body. Returns "" when the body offers
// nothing; the caller falls back to the status-code default for failures.
func extractMessage(body Body) string {
	switch body.Kind {
	case BodyObject:
		if errs, isMap := body.Object["errors"].(map[string]any); isMap {
			if msg := flattenErrors(errs); msg != "" {
				return msg
			}
		}
		if msg, isString := body.Object["message"].(string); isString && msg != "" {
			return msg
		}
		return ""
	case BodyText:
		return truncate(body.Text, maxTextMessageLen)
	default:
		return ""
	}
}

// flattenErrors renders a field-keyed validation map as "field: message"
// lines joined by newlines. Field order is sorted for determinism; per-field
// message order is preserved.
func flattenErrors(errs map[string]any) string {
	fields := make([]string, 0, len(errs))
	for f := range errs {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var lines []string
	for _, f := range fields {
		switch v := errs[f].(type) {
		case string:
			lines = append(lines, f+": "+v)
		case []any:
			for _, item := range v {
				if s, isString := item.(string); isString {
					lines = append(lines, f+": "+s)
				}
			}
		}
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
