package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedact(t *testing.T) {
	tests := []struct {
		name string
		in   []any
		want []any
	}{
		{name: "nil", in: nil, want: nil},
		{name: "nothing sensitive", in: []any{"path", "/cart", "status", 200}, want: []any{"path", "/cart", "status", 200}},
		{name: "token", in: []any{"token", "abc", "path", "/cart"}, want: []any{"token", Redacted, "path", "/cart"}},
		{name: "case insensitive", in: []any{"AccessToken", "abc", "ACCESS_TOKEN", "def"}, want: []any{"AccessToken", Redacted, "ACCESS_TOKEN", Redacted}},
		{name: "odd tail kept", in: []any{"password", "pw", "dangling"}, want: []any{"password", Redacted, "dangling"}},
		{name: "non-string key skipped", in: []any{42, "token"}, want: []any{42, "token"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, redact(tt.in))
		})
	}
}

func TestRedact_DoesNotModifyInput(t *testing.T) {
	in := []any{"authorization", "Bearer x"}
	_ = redact(in)
	assert.Equal(t, "Bearer x", in[1])
}
