package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set_Valid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantHost string
		wantPort int
	}{
		{name: "localhost", input: "localhost:8080", wantHost: "localhost", wantPort: 8080},
		{name: "loopback IP", input: "127.0.0.1:9090", wantHost: "127.0.0.1", wantPort: 9090},
		{name: "any interface", input: "0.0.0.0:80", wantHost: "0.0.0.0", wantPort: 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress

			require.NoError(t, addr.Set(tt.input))
			assert.Equal(t, tt.wantHost, addr.Host)
			assert.Equal(t, tt.wantPort, addr.Port)
		})
	}
}

func TestNetAddress_Set_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "no port", input: "localhost"},
		{name: "non-numeric port", input: "localhost:http"},
		{name: "zero port", input: "localhost:0"},
		{name: "negative port", input: "localhost:-1"},
		{name: "bogus host", input: "not-an-ip:8080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress

			assert.Error(t, addr.Set(tt.input))
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	assert.Empty(t, (&NetAddress{}).String())
	assert.Equal(t, "localhost:8080", (&NetAddress{Host: "localhost", Port: 8080}).String())
}
