package patch

import (
	"encoding/json"
	"fmt"
	"math"
)

// Kind 描述可更新列接受的值类型。
type Kind int

const (
	KindAny Kind = iota
	KindString
	KindNullableString
	KindInt
	KindFloat
)

// Table 声明一张表允许被选择性更新的列。未声明的列一律拒绝。
type Table struct {
	Name      string
	KeyColumn string
	Columns   map[string]Kind
}

func (t Table) normalize(column string, value any) (any, error) {
	kind, ok := t.Columns[column]
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownColumn, t.Name, column)
	}
	switch kind {
	case KindAny:
		return value, nil
	case KindString:
		s, ok := value.(string)
		if !ok {
			return nil, invalidValue(column, "string")
		}
		return s, nil
	case KindNullableString:
		if value == nil {
			return nil, nil
		}
		s, ok := value.(string)
		if !ok {
			return nil, invalidValue(column, "string or null")
		}
		return s, nil
	case KindInt:
		return toInt(column, value)
	case KindFloat:
		return toFloat(column, value)
	}
	return nil, invalidValue(column, "known type")
}

func toInt(column string, value any) (any, error) {
	switch v := value.(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return nil, invalidValue(column, "integer")
		}
		return n, nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		if v != math.Trunc(v) {
			return nil, invalidValue(column, "integer")
		}
		return int64(v), nil
	}
	return nil, invalidValue(column, "integer")
}

func toFloat(column string, value any) (any, error) {
	switch v := value.(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return nil, invalidValue(column, "number")
		}
		return f, nil
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	}
	return nil, invalidValue(column, "number")
}

func invalidValue(column, want string) error {
	return fmt.Errorf("%w: %s must be %s", ErrInvalidValue, column, want)
}
