package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Mrithul03/vendroo-server/config"
)

func TestConfig_PublicBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		baseURL string
		port    string
		want    string
	}{
		{
			name:    "explicit override wins",
			env:     "production",
			baseURL: "https://api.example.com",
			port:    "8080",
			want:    "https://api.example.com",
		},
		{
			name: "production fallback",
			env:  "production",
			port: "8080",
			want: "https://vendroo-server.onrender.com",
		},
		{
			name: "development falls back to localhost with port",
			env:  "development",
			port: "3000",
			want: "http://localhost:3000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.Env = tt.env
			cfg.Server.Port = tt.port
			cfg.App.BaseURL = tt.baseURL

			assert.Equal(t, tt.want, cfg.PublicBaseURL())
		})
	}
}

func TestConfig_PostgresSSLMode(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		sslMode string
		want    string
	}{
		{name: "explicit mode wins", env: "production", sslMode: "verify-full", want: "verify-full"},
		{name: "development disables ssl", env: "development", want: "disable"},
		{name: "production requires ssl", env: "production", want: "require"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.Env = tt.env
			cfg.DB.Postgres.SSLMode = tt.sslMode

			assert.Equal(t, tt.want, cfg.PostgresSSLMode())
		})
	}
}
