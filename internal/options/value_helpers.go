// Where: cli/internal/options/value_helpers.go
// What: Bag copy and decode helpers for option resolution.
// Why: Keep the resolver concise and consistent.
package options

import (
	"dario.cat/mergo"
	"github.com/mitchellh/copystructure"
	"github.com/mitchellh/mapstructure"
)

// MergeMaps deep-merges overlay over base and returns a fresh map. Overlay
// wins on every overlapping key; nested maps merge key by key. Neither
// input is mutated.
func MergeMaps(base, overlay map[string]any) (map[string]any, error) {
	merged, err := copyBag(base)
	if err != nil {
		return nil, err
	}
	if len(overlay) == 0 {
		return merged, nil
	}
	src, err := copyBag(overlay)
	if err != nil {
		return nil, err
	}
	if err := mergo.Merge(&merged, src, mergo.WithOverride); err != nil {
		return nil, err
	}
	return merged, nil
}

// copyBag returns a deep copy of an options bag so merges never mutate
// the caller's maps.
func copyBag(bag map[string]any) (map[string]any, error) {
	if len(bag) == 0 {
		return map[string]any{}, nil
	}
	copied, err := copystructure.Copy(bag)
	if err != nil {
		return nil, err
	}
	out, ok := copied.(map[string]any)
	if !ok || out == nil {
		return map[string]any{}, nil
	}
	return out, nil
}

// decodeBag decodes a merged options bag into a typed options struct.
// Weak typing tolerates YAML's loose scalars ("8080", "true").
func decodeBag(bag map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(bag)
}

func asMap(value any) map[string]any {
	if value == nil {
		return nil
	}
	if m, ok := value.(map[string]any); ok {
		return m
	}
	return nil
}
