// Package calc implements the arithmetic behind the calculator tool.
package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrDivideByZero reports a division with a zero divisor. It is a domain
// failure, not a validation failure: the operands themselves are well-formed.
var ErrDivideByZero = errors.New("division by zero is not allowed")

// Apply evaluates "num1 operator num2" for one of the four operators
// +, -, * and /.
func Apply(num1, num2 float64, operator string) (float64, error) {
	switch operator {
	case "+":
		return num1 + num2, nil
	case "-":
		return num1 - num2, nil
	case "*":
		return num1 * num2, nil
	case "/":
		if num2 == 0 {
			return 0, ErrDivideByZero
		}
		return num1 / num2, nil
	default:
		return 0, fmt.Errorf("unsupported operator: %s", operator)
	}
}

// Format renders a numeric value the way the calculator tool reports it:
// integral values without a decimal point, everything else in the shortest
// representation that round-trips.
func Format(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
