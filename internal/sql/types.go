package sql

import (
	"strconv"
	"strings"
)

// DataType represents the logical type of a value in a column.
type DataType int

const (
	TypeInt DataType = iota
	TypeString
)

// String returns the keyword used for the type in CREATE TABLE.
func (t DataType) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypeString:
		return "string"
	default:
		return "DataType(" + strconv.Itoa(int(t)) + ")"
	}
}

// parseDataType maps a CREATE TABLE type keyword (case-insensitive) to a DataType.
func parseDataType(keyword string) (DataType, bool) {
	switch strings.ToLower(keyword) {
	case "int":
		return TypeInt, true
	case "string":
		return TypeString, true
	default:
		return 0, false
	}
}

// Value represents a single cell in a table (one column in one row).
// Only the field matching Type should be read; the other field stays at its
// zero value.
type Value struct {
	Type DataType

	I64 int64  // for TypeInt
	S   string // for TypeString
}

// NewInt returns an integer Value.
func NewInt(i int64) Value {
	return Value{Type: TypeInt, I64: i}
}

// NewText returns a text Value.
func NewText(s string) Value {
	return Value{Type: TypeString, S: s}
}

// Equal reports whether both values carry the same type and payload.
func (v Value) Equal(other Value) bool {
	if v.Type != other.Type {
		return false
	}
	switch v.Type {
	case TypeInt:
		return v.I64 == other.I64
	case TypeString:
		return v.S == other.S
	default:
		return false
	}
}

// String renders the value as plain text.
func (v Value) String() string {
	switch v.Type {
	case TypeInt:
		return strconv.FormatInt(v.I64, 10)
	case TypeString:
		return v.S
	default:
		return ""
	}
}
