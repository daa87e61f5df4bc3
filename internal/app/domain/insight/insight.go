package insight

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/FACorreiaa/travelmind/internal/app/domain/completion"
)

const parseFailureMessage = "Failed to parse AI response"

// Result carries the parsed insight. When Degraded is set, Value is the
// error envelope rather than model output.
type Result struct {
	Value    any
	Degraded bool
}

// Parse decodes raw model output. Any JSON value is accepted; anything else
// becomes {"error": ..., "raw": raw} with the original text untouched.
func Parse(raw string) Result {
	cleaned := completion.StripCodeFences(raw)

	dec := json.NewDecoder(strings.NewReader(cleaned))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil || dec.Decode(&struct{}{}) != io.EOF {
		return Result{
			Value:    map[string]any{"error": parseFailureMessage, "raw": raw},
			Degraded: true,
		}
	}

	return Result{Value: value}
}
