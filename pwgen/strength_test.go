package pwgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssessStrength(t *testing.T) {
	tests := []struct {
		password string
		want     int
	}{
		{"", 0},
		{"abcdefgh", 1},
		{"abcdefghijkl", 2},
		{"ABCdef", 2},
		{"Ab3!efghijkl", 5},
		{"Ab3!", 4},
		{"123456789012", 2},
		{"!!!!", 1},
		{"ünïcödé", 2},
		{"Ab3ünïcödé!x", 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AssessStrength(tt.password), "AssessStrength(%q)", tt.password)
	}
}

func TestAssessStrengthGenerated(t *testing.T) {
	pw, err := Generate(Config{Length: 8, Classes: NewClassSet(Lowercase)})
	assert.NoError(t, err)
	assert.Equal(t, 1, AssessStrength(pw))
}

func TestStrengthLabel(t *testing.T) {
	assert.Equal(t, "", StrengthLabel(0))
	assert.Equal(t, "Very Weak", StrengthLabel(1))
	assert.Equal(t, "Medium", StrengthLabel(3))
	assert.Equal(t, "Very Strong", StrengthLabel(MaxStrength))
	assert.Equal(t, "", StrengthLabel(6))
}
