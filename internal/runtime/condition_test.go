package runtime

import (
	"testing"

	"github.com/pointvale/stagehand/internal/scene"
)

func TestConditionMet(t *testing.T) {
	r := newTestRuntime(t, nil)
	r.variables["coins"] = 3
	r.variables["name"] = "guybrush"
	r.variables["door_open"] = true
	r.variables["ratio"] = 0.5

	tests := []struct {
		name string
		cond *scene.Condition
		want bool
	}{
		{"nil condition passes", nil, true},
		{"empty operator means equals", &scene.Condition{Variable: "coins", Value: 3}, true},
		{"equals int", &scene.Condition{Variable: "coins", Operator: "==", Value: 3}, true},
		{"equals mismatched int", &scene.Condition{Variable: "coins", Operator: "==", Value: 4}, false},
		{"equals string form of number", &scene.Condition{Variable: "coins", Operator: "==", Value: "3"}, true},
		{"equals string", &scene.Condition{Variable: "name", Operator: "==", Value: "guybrush"}, true},
		{"equals bool against string", &scene.Condition{Variable: "door_open", Operator: "==", Value: "true"}, true},
		{"not equals", &scene.Condition{Variable: "coins", Operator: "!=", Value: 4}, true},
		{"not equals same value", &scene.Condition{Variable: "coins", Operator: "!=", Value: 3}, false},
		{"greater than", &scene.Condition{Variable: "coins", Operator: ">", Value: 2}, true},
		{"greater than equal value", &scene.Condition{Variable: "coins", Operator: ">", Value: 3}, false},
		{"greater or equal", &scene.Condition{Variable: "coins", Operator: ">=", Value: 3}, true},
		{"less than float", &scene.Condition{Variable: "ratio", Operator: "<", Value: 1}, true},
		{"less or equal", &scene.Condition{Variable: "coins", Operator: "<=", Value: 3}, true},
		{"ordering on non-numeric fails closed", &scene.Condition{Variable: "name", Operator: ">", Value: 1}, false},
		{"ordering on non-numeric literal fails closed", &scene.Condition{Variable: "coins", Operator: "<", Value: "lots"}, false},
		{"unknown operator fails closed", &scene.Condition{Variable: "coins", Operator: "~=", Value: 3}, false},
		{"unset variable equals nil-ish empty", &scene.Condition{Variable: "ghost", Operator: "!=", Value: "anything"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.conditionMet(tc.cond); got != tc.want {
				t.Errorf("conditionMet(%+v) = %v, expected %v", tc.cond, got, tc.want)
			}
		})
	}
}

func TestLooseEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"both nil", nil, nil, true},
		{"int vs float", 3, 3.0, true},
		{"int vs numeric string", 3, "3", true},
		{"float vs padded string", 0.5, "0.50", true},
		{"bool vs one", true, 1, true},
		{"bool vs word", false, "false", true},
		{"plain strings", "red", "red", true},
		{"different strings", "red", "blue", false},
		{"number vs word", 3, "three", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := looseEqual(tc.a, tc.b); got != tc.want {
				t.Errorf("looseEqual(%v, %v) = %v, expected %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestToNumber(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
		ok   bool
	}{
		{"int", 7, 7, true},
		{"int64", int64(7), 7, true},
		{"float64", 2.5, 2.5, true},
		{"float32", float32(1.5), 1.5, true},
		{"numeric string", "42", 42, true},
		{"negative string", "-3.5", -3.5, true},
		{"word", "seven", 0, false},
		{"true", true, 1, true},
		{"false", false, 0, true},
		{"nil", nil, 0, false},
		{"slice", []string{"x"}, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := toNumber(tc.in)
			if got != tc.want || ok != tc.ok {
				t.Errorf("toNumber(%v) = (%v, %v), expected (%v, %v)", tc.in, got, ok, tc.want, tc.ok)
			}
		})
	}
}
