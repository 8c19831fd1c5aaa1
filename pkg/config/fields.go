package config

import (
	"fmt"
	"sort"

	"github.com/aretw0/tempera/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// DecodeFields applies a loosely typed map (decoded JSON, MCP tool arguments) on top of base.
// Numbers and booleans are converted to their text form, keys absent from m keep
// the value from base. Unknown keys are rejected with domain.ErrUnknownField.
func DecodeFields(m map[string]any, base domain.Fields) (domain.Fields, error) {
	if len(m) == 0 {
		return base, nil
	}
	var unknown []string
	for k := range m {
		if _, err := base.Get(k); err != nil {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return base, fmt.Errorf("%w: %v", domain.ErrUnknownField, unknown)
	}

	out := base
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return base, err
	}
	if err := dec.Decode(m); err != nil {
		return base, fmt.Errorf("decode fields: %w", err)
	}
	return out, nil
}
