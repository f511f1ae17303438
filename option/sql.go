package option

import (
	"database/sql"
	"database/sql/driver"
)

// Scan implements sql.Scanner: a NULL column scans as None
func (opt *Option[T]) Scan(src any) error {
	if src == nil {
		*opt = None[T]()
		return nil
	}
	var null sql.Null[T]
	if err := null.Scan(src); err != nil {
		return err
	}
	*opt = Of(null.V)
	return nil
}

// Value implements driver.Valuer: None is written as NULL and a Some value is
// converted to one of the driver.Value types (int becomes int64 and so on).
func (opt Option[T]) Value() (driver.Value, error) {
	if !opt.some {
		return nil, nil
	}
	return driver.DefaultParameterConverter.ConvertValue(opt.value)
}
