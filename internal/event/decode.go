package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload returns an event payload as T. In-process publishers hand
// over the struct (or a pointer to it) directly; payloads read back from the
// dead-letter file arrive as generic JSON and take the round-trip path.
func DecodePayload[T any](input interface{}) (T, error) {
	var zero T
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return zero, fmt.Errorf("decode %T: nil payload", zero)
		}
		return *v, nil
	case nil:
		return zero, fmt.Errorf("decode %T: nil payload", zero)
	}

	data, err := json.Marshal(input)
	if err != nil {
		return zero, fmt.Errorf("decode %T: %w", zero, err)
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return zero, fmt.Errorf("decode %T: %w", zero, err)
	}
	return out, nil
}
