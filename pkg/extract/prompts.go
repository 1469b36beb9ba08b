package extract

import (
	"fmt"
	"strings"
)

// AttributePrompt is the instruction sent with every image. The reply must
// be a single JSON object carrying exactly the six attribute fields.
const AttributePrompt = `Analyze this fashion item and extract these attributes in JSON format: color, pattern, material, occasion, era, vibe.
Every value must be a short lowercase string.

Schema:
{
  "color": string,
  "pattern": string,
  "material": string,
  "occasion": string,
  "era": string,
  "vibe": string
}

Return ONLY valid JSON, no other text.`

// extractJSONObject returns the outermost {...} span of text, which strips
// markdown code fences and any chatter around the object.
func extractJSONObject(text string) (string, error) {
	text = strings.TrimSpace(text)
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response: %s", truncate(text, 80))
	}
	return text[start : end+1], nil
}
