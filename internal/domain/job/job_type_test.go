package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"full time", "Full-time"},
		{"Full Time", "Full-time"},
		{"part time", "Part-time"},
		{"rent a chair", "Rent a Chair"},
		{"temporary", "Temporary"},
		{"contract", "Contract"},
		{"freelance", "freelance"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeType(tt.in), "input %q", tt.in)
	}
}
