package sql

import (
	"strconv"
	"strings"
)

// Coerce converts literal text into a Value of the target type. The type
// always comes from the column the literal is bound to, never from the
// literal's shape.
//
// Integer literals keep only their digits and a minus sign seen before the
// first digit, so '20' coerces to 20, '-5' to -5, and 'Alice' fails. Text literals lose one leading and one
// trailing single quote; embedded quotes are not unescaped.
func Coerce(lit string, t DataType) (Value, error) {
	switch t {
	case TypeInt:
		s := strings.TrimSpace(lit)
		var b strings.Builder
		for _, r := range s {
			if (r >= '0' && r <= '9') || (r == '-' && b.Len() == 0) {
				b.WriteRune(r)
			}
		}
		n, err := strconv.ParseInt(b.String(), 10, 64)
		if err != nil {
			return Value{}, Errorf(KindType, "cannot use %s as int", lit)
		}
		return NewInt(n), nil

	case TypeString:
		s := strings.TrimPrefix(lit, "'")
		s = strings.TrimSuffix(s, "'")
		return NewText(s), nil

	default:
		return Value{}, Errorf(KindType, "unknown column type %s", t)
	}
}
