package runtime

import (
	"fmt"
	"strconv"

	"github.com/pointvale/stagehand/internal/scene"
)

// conditionMet evaluates an interaction condition against the session
// variables. Ordering operators require both operands to be numeric;
// anything unparseable fails closed.
func (r *Runtime) conditionMet(c *scene.Condition) bool {
	if c == nil {
		return true
	}
	actual := r.variables[c.Variable]

	switch c.Operator {
	case "", "==":
		return looseEqual(actual, c.Value)
	case "!=":
		return !looseEqual(actual, c.Value)
	case ">", "<", ">=", "<=":
		a, aok := toNumber(actual)
		b, bok := toNumber(c.Value)
		if !aok || !bok {
			return false
		}
		switch c.Operator {
		case ">":
			return a > b
		case "<":
			return a < b
		case ">=":
			return a >= b
		default:
			return a <= b
		}
	default:
		r.logger.Debug("unknown condition operator", "operator", c.Operator)
		return false
	}
}

// looseEqual compares two variable values the way authored data expects:
// numerically when both sides are numeric, otherwise by string form, so
// yaml's `1` matches json's `"1"` and `true` matches `"true"`.
func looseEqual(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	if an, aok := toNumber(a); aok {
		if bn, bok := toNumber(b); bok {
			return an == bn
		}
	}
	return fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b)
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}
