package result

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/application-research/go-monads"
)

// Results encode as {"ok": value} or {"err": error}. An error payload that
// does not marshal itself is written as its message string.

const (
	okKey  = "ok"
	errKey = "err"
)

func (result Result[T, E]) MarshalJSON() ([]byte, error) {
	if result.tag == TagOk {
		value, err := json.Marshal(result.value)
		if err != nil {
			return nil, err
		}
		return json.Marshal(map[string]json.RawMessage{okKey: value})
	}

	var payload any = result.err
	if _, ok := payload.(json.Marshaler); !ok {
		if err, ok := payload.(error); ok {
			payload = err.Error()
		}
	}
	errBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[string]json.RawMessage{errKey: errBytes})
}

func (result *Result[T, E]) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	okData, hasOk := fields[okKey]
	errData, hasErr := fields[errKey]
	switch {
	case hasOk && hasErr:
		return &monads.InvalidStateError{Op: "Result.UnmarshalJSON", Reason: "both ok and err are set"}
	case !hasOk && !hasErr:
		return &monads.InvalidStateError{Op: "Result.UnmarshalJSON", Reason: "neither ok nor err is set"}
	case hasOk:
		var value T
		if err := json.Unmarshal(okData, &value); err != nil {
			return fmt.Errorf("decoding ok value: %w", err)
		}
		*result = Ok[T, E](value)
		return nil
	}

	var errValue E
	if target, ok := any(&errValue).(*error); ok {
		var msg string
		if err := json.Unmarshal(errData, &msg); err != nil {
			return fmt.Errorf("decoding err message: %w", err)
		}
		*target = errors.New(msg)
	} else if err := json.Unmarshal(errData, &errValue); err != nil {
		return fmt.Errorf("decoding err value: %w", err)
	}

	if monads.IsNil(errValue) {
		return &monads.InvalidStateError{Op: "Result.UnmarshalJSON", Reason: "err is null"}
	}
	*result = Err[T](errValue)
	return nil
}
