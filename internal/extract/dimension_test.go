package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFeetInches(t *testing.T) {
	tests := []struct {
		name   string
		length float64
		want   string
	}{
		{"zero", 0, `0'-0"`},
		{"whole feet", 30, `30'-0"`},
		{"exact half foot", 42.5, `42'-6"`},
		{"remainder below quarter inch drops", 5 + 3.1/12, `5'-3"`},
		{"remainder at quarter inch gets half marker", 10 + 6.25/12, `10'-6 1/2"`},
		{"remainder below three quarters gets half marker", 1 + 11.7/12, `1'-11 1/2"`},
		{"remainder above three quarters carries to next foot", 1 + 11.8/12, `2'-0"`},
		{"inch carry within a foot", 7 + 4.9/12, `7'-5"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFeetInches(tt.length))
		})
	}
}

func TestFormatFeetInches_Deterministic(t *testing.T) {
	for _, length := range []float64{0, 0.01, 12.345, 99.999} {
		first := FormatFeetInches(length)
		second := FormatFeetInches(length)
		assert.Equal(t, first, second)
	}
}
