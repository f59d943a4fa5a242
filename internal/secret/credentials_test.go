package secret

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestParseCredentials(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    *Credentials
	}{
		{
			name:    "password only",
			payload: `{"password":"x"}`,
			want:    &Credentials{Password: strPtr("x")},
		},
		{
			name:    "username and password",
			payload: `{"username":"app","password":"x"}`,
			want:    &Credentials{Username: strPtr("app"), Password: strPtr("x")},
		},
		{
			name:    "user alias",
			payload: `{"user":"app","password":"x"}`,
			want:    &Credentials{Username: strPtr("app"), Password: strPtr("x")},
		},
		{
			name:    "username wins over user",
			payload: `{"user":"other","username":"app"}`,
			want:    &Credentials{Username: strPtr("app")},
		},
		{
			name:    "redis_password alias",
			payload: `{"redis_password":"x"}`,
			want:    &Credentials{Password: strPtr("x")},
		},
		{
			name:    "authToken alias",
			payload: `{"authToken":"x"}`,
			want:    &Credentials{Password: strPtr("x")},
		},
		{
			name:    "token alias",
			payload: `{"token":"x"}`,
			want:    &Credentials{Password: strPtr("x")},
		},
		{
			name:    "password wins over later aliases",
			payload: `{"token":"t","authToken":"a","redis_password":"r","password":"p"}`,
			want:    &Credentials{Password: strPtr("p")},
		},
		{
			name:    "null falls through to next alias",
			payload: `{"password":null,"authToken":"a"}`,
			want:    &Credentials{Password: strPtr("a")},
		},
		{
			name:    "empty string is present",
			payload: `{"password":"","token":"t"}`,
			want:    &Credentials{Password: strPtr("")},
		},
		{
			name:    "numeric value kept as text",
			payload: `{"password":12345678901234567890}`,
			want:    &Credentials{Password: strPtr("12345678901234567890")},
		},
		{
			name:    "object without known keys",
			payload: `{"host":"redis.local"}`,
			want:    &Credentials{},
		},
		{
			name:    "array",
			payload: `["x"]`,
			want:    &Credentials{},
		},
		{
			name:    "raw string",
			payload: "s3cr3t!",
			want:    &Credentials{Password: strPtr("s3cr3t!")},
		},
		{
			name:    "truncated json is raw",
			payload: `{"password":"x"`,
			want:    &Credentials{Password: strPtr(`{"password":"x"`)},
		},
		{
			name:    "empty",
			payload: "",
			want:    nil,
		},
		{
			name:    "json number",
			payload: "123456",
			want:    nil,
		},
		{
			name:    "json null",
			payload: "null",
			want:    nil,
		},
		{
			name:    "json string",
			payload: `"x"`,
			want:    nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCredentials(tt.payload))
		})
	}
}

func TestPayloadText_Binary(t *testing.T) {
	p := Payload{Binary: []byte(`{"authToken":"x"}`)}
	s, ok := p.Text()
	require.True(t, ok)

	creds := ParseCredentials(s)
	require.NotNil(t, creds)
	assert.Equal(t, "x", *creds.Password)
	assert.Nil(t, creds.Username)
}

func TestPayloadText_InvalidUTF8(t *testing.T) {
	p := Payload{Binary: []byte{'a', 0xff, 'b'}}
	s, ok := p.Text()
	require.True(t, ok)
	assert.Equal(t, "a�b", s)
}

func TestPayloadText_StringWins(t *testing.T) {
	p := Payload{String: strPtr("str"), Binary: []byte("bin")}
	s, ok := p.Text()
	require.True(t, ok)
	assert.Equal(t, "str", s)
}

func TestPayloadText_Empty(t *testing.T) {
	_, ok := Payload{}.Text()
	assert.False(t, ok)
}
