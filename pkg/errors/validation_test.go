package errors

import (
	"math"
	"testing"
)

func TestValidateRadius(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"unit", 1, false},
		{"small", 1e-9, false},
		{"large", 1e9, false},

		{"zero", 0, true},
		{"negative", -1, true},
		{"NaN", math.NaN(), true},
		{"+Inf", math.Inf(1), true},
		{"-Inf", math.Inf(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRadius(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRadius(%g) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidArgument) {
				t.Errorf("ValidateRadius(%g) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidArgument)
			}
		})
	}
}

func TestValidateTolerance(t *testing.T) {
	tests := []struct {
		name    string
		input   float64
		wantErr bool
	}{
		{"zero", 0, false},
		{"positive", 0.5, false},

		{"negative", -0.1, true},
		{"NaN", math.NaN(), true},
		{"Inf", math.Inf(1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTolerance(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTolerance(%g) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		x, y    float64
		wantErr bool
	}{
		{"origin", 0, 0, false},
		{"negative", -3.5, -2, false},

		{"NaN x", math.NaN(), 0, true},
		{"Inf y", 0, math.Inf(-1), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCoordinate(0, tt.x, tt.y)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCoordinate(%g, %g) error = %v, wantErr %v", tt.x, tt.y, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("code = %v, want %v", GetCode(err), ErrCodeInvalidInput)
			}
		})
	}
}

func TestValidatePointBudget(t *testing.T) {
	tests := []struct {
		name     string
		n, limit int
		wantErr  bool
	}{
		{"under", 10, 60, false},
		{"at limit", 60, 60, false},
		{"disabled", 1000, 0, false},
		{"over", 61, 60, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePointBudget(tt.n, tt.limit)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePointBudget(%d, %d) error = %v, wantErr %v", tt.n, tt.limit, err, tt.wantErr)
			}
		})
	}
}
