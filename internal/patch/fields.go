package patch

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field 是一次更新中的单个 "列 = 值"。
type Field struct {
	Column string
	Value  any
}

// Fields 是有序的字段集合。顺序即客户端提交的顺序，生成的 SQL 按此顺序输出。
type Fields []Field

// Set 追加或覆盖一个字段，覆盖时保留原来的位置。
func (f *Fields) Set(column string, value any) {
	for i := range *f {
		if (*f)[i].Column == column {
			(*f)[i].Value = value
			return
		}
	}
	*f = append(*f, Field{Column: column, Value: value})
}

// Get 返回字段值以及是否存在。
func (f Fields) Get(column string) (any, bool) {
	for _, field := range f {
		if field.Column == column {
			return field.Value, true
		}
	}
	return nil, false
}

// Columns 按顺序返回所有列名。
func (f Fields) Columns() []string {
	cols := make([]string, 0, len(f))
	for _, field := range f {
		cols = append(cols, field.Column)
	}
	return cols
}

// UnmarshalJSON 解析一个 JSON 对象并保留键的顺序。数字以 json.Number 保存，
// 由 Table 的列类型决定最终转换。
func (f *Fields) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("patch: expected JSON object")
	}

	out := Fields{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("patch: expected object key, got %v", tok)
		}
		var value any
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("patch: decode value for %q: %w", key, err)
		}
		out.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*f = out
	return nil
}
