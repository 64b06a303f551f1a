// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package genai

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StripFences removes markdown code fences from a model response. Models
// routinely wrap JSON or HTML payloads in ```json / ```html fences even
// when told not to; parsing is tolerant of both fenced and bare output.
func StripFences(s string) string {
	for _, fence := range []string{"```json", "```html", "```"} {
		s = strings.ReplaceAll(s, fence+"\n", "")
		s = strings.ReplaceAll(s, fence, "")
	}
	return strings.TrimSpace(s)
}

// DecodeJSON strips fences from raw and unmarshals the remainder into v.
func DecodeJSON(raw string, v any) error {
	cleaned := StripFences(raw)
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return fmt.Errorf("parsing model JSON: %w", err)
	}
	return nil
}
