package wizard

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidNationalID(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{"valid, r < 2 branch", "1234567891", true},
		{"valid with leading zeros", "0013542419", true},
		{"valid, r >= 2 branch", "4608968882", true},
		{"off-by-one check digit", "1234567892", false},
		{"mutated middle digit", "1235567891", false},
		{"too short", "123456789", false},
		{"too long", "12345678910", false},
		{"non-digits stripped then valid", "123-456-789-1", true},
		{"letters only", "abcdefghij", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidNationalID(tt.code))
		})
	}
}

func TestValidNationalID_AllIdenticalRejected(t *testing.T) {
	for d := 0; d <= 9; d++ {
		code := ""
		for i := 0; i < 10; i++ {
			code += fmt.Sprint(d)
		}
		assert.Falsef(t, ValidNationalID(code), "all-%d code must be rejected", d)
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"leading zero kept", "09123456789", "09123456789"},
		{"leading nine gets zero", "9123456789", "09123456789"},
		{"separators stripped", "0912 345-6789", "09123456789"},
		{"international prefix passes through", "+989123456789", "0989123456789"},
		{"other prefix untouched", "12345", "12345"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePhone(tt.raw))
		})
	}
}

func TestNormalizePhone_Idempotent(t *testing.T) {
	inputs := []string{"09123456789", "9123456789", "+989123456789", "12345", "", "0912 345 6789"}
	for _, in := range inputs {
		once := NormalizePhone(in)
		assert.Equal(t, once, NormalizePhone(once), "normalize(normalize(%q))", in)
	}
}

func TestValidPhone(t *testing.T) {
	assert.True(t, ValidPhone("09123456789"))
	assert.True(t, ValidPhone("9123456789"))
	assert.False(t, ValidPhone("0912345678"))    // 10 digits
	assert.False(t, ValidPhone("091234567890"))  // 12 digits
	assert.False(t, ValidPhone("+989123456789")) // not corrected, fails check
	assert.False(t, ValidPhone("08123456789"))   // wrong prefix
	assert.False(t, ValidPhone(""))
}

func TestValidAge(t *testing.T) {
	assert.False(t, ValidAge(0))
	assert.True(t, ValidAge(1))
	assert.True(t, ValidAge(120))
	assert.False(t, ValidAge(121))
	assert.False(t, ValidAge(-5))
}

func TestValidInsurance(t *testing.T) {
	assert.True(t, ValidInsurance(false, ""))
	assert.True(t, ValidInsurance(false, "x"))
	assert.False(t, ValidInsurance(true, ""))
	assert.False(t, ValidInsurance(true, " a "))
	assert.True(t, ValidInsurance(true, "ta"))
	assert.True(t, ValidInsurance(true, "  tamin  "))
}
