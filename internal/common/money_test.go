package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"small whole", 400, "400"},
		{"thousands separator", 2500, "2,500"},
		{"millions", 1234567, "1,234,567"},
		{"cents", 1250.5, "1,250.50"},
		{"near-zero fraction dropped", 400.001, "400"},
		{"fraction carries into dollars", 999.999, "1,000"},
		{"fraction rounds to cents", 12.346, "12.35"},
		{"negative", -750, "-750"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.amount))
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
		ok   bool
	}{
		{"bare account and amount", "Cash $2,500", 2500, true},
		{"cents", "Sales Revenue $1,250.50", 1250.50, true},
		{"no amount", "Equipment (Fixed Asset)", 0, false},
		{"first of several", "Cash $100 then $200", 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.text)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}
