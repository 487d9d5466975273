package event

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// ErrPayloadType is returned when an event payload cannot be read as the
// requested payload struct.
var ErrPayloadType = errors.New("unexpected event payload")

// DecodePayload reads an event payload as T. The in-process bus hands over
// T or *T directly. Payloads that crossed a wire arrive as a generic map or
// as raw JSON and are decoded by their json field names.
func DecodePayload[T any](input any) (T, error) {
	var out T
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return out, fmt.Errorf("%w: nil %T", ErrPayloadType, v)
		}
		return *v, nil
	case json.RawMessage:
		return out, decodeJSON(v, &out)
	case []byte:
		return out, decodeJSON(v, &out)
	case map[string]any:
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &out,
			TagName:          "json",
			WeaklyTypedInput: true,
		})
		if err != nil {
			return out, err
		}
		if err := decoder.Decode(v); err != nil {
			return out, fmt.Errorf("%w: %v", ErrPayloadType, err)
		}
		return out, nil
	default:
		return out, fmt.Errorf("%w: got %T, want %T", ErrPayloadType, input, out)
	}
}

func decodeJSON(data []byte, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrPayloadType, err)
	}
	return nil
}
