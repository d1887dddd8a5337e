package rates_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/weberkan/mevatur-backend/internal/platform/rates"
)

func TestParseDecimalSmart(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1.234,56", "1234.56"}, // comma decimal, dot thousands
		{"1,234.56", "1234.56"}, // dot decimal, comma thousands
		{"12,50", "12.5"},       // lone comma is decimal
		{"12.50", "12.5"},
		{"41,0013", "41.0013"},
		{"1.234.567,89", "1234567.89"},
		{"", "0"},
		{"abc", "0"},
		{" 34,20 ", "34.2"},
		{"9 1,23", "91.23"}, // non-breaking spaces are stripped
	}
	for _, tc := range cases {
		got := rates.ParseDecimalSmart(tc.in)
		assert.Equal(t, tc.want, got.String(), "input %q", tc.in)
	}
}
