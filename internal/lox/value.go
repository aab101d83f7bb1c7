package lox

import (
	"fmt"
	"strconv"
)

// stringify returns the text `print` writes for a runtime value
func stringify(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Only nil and false are falsy
func isTruthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if v, ok := value.(bool); ok {
		return v
	}
	return true
}

// Values of different types are never equal. Every runtime value is
// comparable with ==, functions compare by identity.
func isEqual(lhs, rhs interface{}) bool {
	return lhs == rhs
}
