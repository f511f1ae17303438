package option

import (
	"bytes"

	"github.com/goccy/go-json"
)

var jsonNull = []byte("null")

// MarshalJSON encodes a Some as its value and None as null
func (opt Option[T]) MarshalJSON() ([]byte, error) {
	if !opt.some {
		return jsonNull, nil
	}
	return json.Marshal(opt.value)
}

// UnmarshalJSON decodes null as None and anything else as Some. A Some whose
// value encodes as null therefore decodes as None.
func (opt *Option[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*opt = None[T]()
		return nil
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	*opt = Of(value)
	return nil
}
