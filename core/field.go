package core

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"time"
)

// FieldType represents the type of a field value
type FieldType uint8

const (
	StringType FieldType = iota
	IntType
	Int64Type
	Float64Type
	BoolType
	TimeType
	DurationType
	ErrorType
	AnyType
)

// Field represents a key-value pair for structured logging
type Field struct {
	Key     string
	Type    FieldType
	Int64   int64
	Float64 float64
	Str     string
	Any     interface{}
}

// AppendValue appends the text form of the field's value to dst.
func (f Field) AppendValue(dst []byte) []byte {
	switch f.Type {
	case StringType, ErrorType:
		return append(dst, f.Str...)
	case IntType, Int64Type:
		return strconv.AppendInt(dst, f.Int64, 10)
	case Float64Type:
		return strconv.AppendFloat(dst, f.Float64, 'f', -1, 64)
	case BoolType:
		return strconv.AppendBool(dst, f.Int64 == 1)
	case TimeType:
		return time.Unix(0, f.Int64).AppendFormat(dst, time.RFC3339)
	case DurationType:
		return append(dst, time.Duration(f.Int64).String()...)
	case AnyType:
		return fmt.Append(dst, f.Any)
	default:
		return dst
	}
}

// StringValue returns the string representation of a field's value
func (f Field) StringValue() string {
	switch f.Type {
	case StringType, ErrorType:
		return f.Str
	default:
		return string(f.AppendValue(nil))
	}
}

// FieldOf builds a field from an arbitrary value, picking the most
// specific FieldType. It is used when converting records from other
// logging libraries.
func FieldOf(key string, val interface{}) Field {
	switch v := val.(type) {
	case string:
		return Field{Key: key, Type: StringType, Str: v}
	case int:
		return Field{Key: key, Type: IntType, Int64: int64(v)}
	case int32:
		return Field{Key: key, Type: Int64Type, Int64: int64(v)}
	case int64:
		return Field{Key: key, Type: Int64Type, Int64: v}
	case float32:
		return Field{Key: key, Type: Float64Type, Float64: float64(v)}
	case float64:
		return Field{Key: key, Type: Float64Type, Float64: v}
	case bool:
		f := Field{Key: key, Type: BoolType}
		if v {
			f.Int64 = 1
		}
		return f
	case time.Time:
		return Field{Key: key, Type: TimeType, Int64: v.UnixNano()}
	case time.Duration:
		return Field{Key: key, Type: DurationType, Int64: int64(v)}
	case error:
		return Field{Key: key, Type: ErrorType, Str: v.Error()}
	case nil:
		return Field{Key: key, Type: AnyType}
	default:
		return Field{Key: key, Type: AnyType, Any: v}
	}
}

// AppendMap appends one field per map entry to dst, ordered by key.
func AppendMap(dst []Field, m map[string]interface{}) []Field {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		dst = append(dst, FieldOf(k, m[k]))
	}
	return dst
}
