package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{950, "$950"},
		{14000, "$14,000"},
		{12345.6, "$12,346"},
		{1234567, "$1,234,567"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatUSD(tc.in))
	}
}

func TestToPointer(t *testing.T) {
	p := ToPointer(42)
	assert.Equal(t, 42, *p)
}
