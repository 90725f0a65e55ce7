package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  string
	}{
		{
			name:  "long token",
			token: "sess_1234567890abcdef",
			want:  "sess...cdef",
		},
		{
			name:  "short token",
			token: "abc",
			want:  "********",
		},
		{
			name:  "exactly eight",
			token: "12345678",
			want:  "********",
		},
		{
			name:  "empty",
			token: "",
			want:  "********",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskToken(tt.token))
		})
	}
}
