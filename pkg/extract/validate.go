package extract

import (
	"encoding/json"
	"errors"
	"fmt"

	domain "github.com/donaldgifford/closette/pkg/types"
)

// attributeFields lists the keys every vision reply must carry.
var attributeFields = []string{"color", "pattern", "material", "occasion", "era", "vibe"}

// ParseAttributes decodes a vision reply into an AttributeSet. The reply
// may wrap the object in prose or code fences; every field must be present
// and a string.
func ParseAttributes(content string) (domain.AttributeSet, error) {
	raw, err := extractJSONObject(content)
	if err != nil {
		return domain.AttributeSet{}, err
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return domain.AttributeSet{}, fmt.Errorf("parsing vision JSON response: %w", err)
	}

	if err := ValidateAttributes(fields); err != nil {
		return domain.AttributeSet{}, err
	}

	return domain.AttributeSet{
		Color:    fields["color"].(string),
		Pattern:  fields["pattern"].(string),
		Material: fields["material"].(string),
		Occasion: fields["occasion"].(string),
		Era:      fields["era"].(string),
		Vibe:     fields["vibe"].(string),
	}, nil
}

// ValidateAttributes checks that every attribute field is present and a
// string. Extra keys are ignored.
func ValidateAttributes(fields map[string]any) error {
	var errs []error
	for _, name := range attributeFields {
		v, ok := fields[name]
		if !ok {
			errs = append(errs, fmt.Errorf("missing field %q", name))
			continue
		}
		if _, ok := v.(string); !ok {
			errs = append(errs, fmt.Errorf("field %q must be a string, got %T", name, v))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("validating attributes: %w", errors.Join(errs...))
	}
	return nil
}
