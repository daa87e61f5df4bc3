package completion

import "strings"

// StripCodeFences removes a surrounding markdown code fence (``` or ```json)
// that models tend to wrap JSON in, and trims whitespace.
func StripCodeFences(response string) string {
	response = strings.TrimSpace(response)
	if strings.HasPrefix(response, "```json") {
		response = strings.TrimPrefix(response, "```json")
	} else if strings.HasPrefix(response, "```JSON") {
		response = strings.TrimPrefix(response, "```JSON")
	} else if strings.HasPrefix(response, "```") {
		response = strings.TrimPrefix(response, "```")
	}
	response = strings.TrimSuffix(strings.TrimSpace(response), "```")
	return strings.TrimSpace(response)
}
