// Package jsonutil holds the JSON plumbing for payloads that cross the
// generator trust boundary: fenced-block stripping and best-effort
// unmarshalling of text that is almost, but not quite, clean JSON.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"strings"
)

// StripFences removes a single leading/trailing markdown code fence
// (``` or ```json, any language tag) around the payload, plus surrounding
// whitespace. Text-generation services wrap JSON this way even when told
// not to; the fence is an artifact, not part of the payload.
func StripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// Drop the language tag on the opening fence line, if any.
	if i := strings.IndexByte(s, '\n'); i >= 0 && !strings.ContainsAny(s[:i], "{[") {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "json")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// MarshalNoEscape encodes v without HTML-escaping <, >, and &,
// keeping prompts readable for the model.
func MarshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// MarshalIndentNoEscape is MarshalNoEscape with two-space indentation.
func MarshalIndentNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalFlex tries a direct unmarshal first and falls back to unwrapping
// a doubly encoded payload (the whole document delivered as one JSON
// string), which some models produce under JSON output mode.
func UnmarshalFlex(raw []byte, v any) error {
	direct := json.Unmarshal(raw, v)
	if direct == nil {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return direct
	}
	if err := json.Unmarshal([]byte(s), v); err != nil {
		return direct
	}
	return nil
}
