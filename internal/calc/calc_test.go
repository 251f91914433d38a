package calc

import (
	"errors"
	"testing"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		num1     float64
		num2     float64
		operator string
		want     float64
	}{
		{"addition", 5, 3, "+", 8},
		{"addition negative", -2.5, 1, "+", -1.5},
		{"subtraction", 10, 4, "-", 6},
		{"multiplication", 6, 7, "*", 42},
		{"multiplication by zero", 123.45, 0, "*", 0},
		{"division", 9, 3, "/", 3},
		{"division fractional", 1, 4, "/", 0.25},
		{"division of zero", 0, 5, "/", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.num1, tt.num2, tt.operator)
			if err != nil {
				t.Fatalf("Apply returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Apply(%v, %v, %q) = %v, want %v", tt.num1, tt.num2, tt.operator, got, tt.want)
			}
		})
	}
}

func TestApply_DivideByZero(t *testing.T) {
	for _, num1 := range []float64{0, 1, -3.5} {
		_, err := Apply(num1, 0, "/")
		if !errors.Is(err, ErrDivideByZero) {
			t.Errorf("Apply(%v, 0, /) error = %v, want ErrDivideByZero", num1, err)
		}
	}
}

func TestApply_UnsupportedOperator(t *testing.T) {
	if _, err := Apply(1, 2, "%"); err == nil {
		t.Error("expected error for unsupported operator, got nil")
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{8, "8"},
		{-6, "-6"},
		{0, "0"},
		{0.25, "0.25"},
		{-1.5, "-1.5"},
		{1e20, "1e+20"},
	}

	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("Format(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
