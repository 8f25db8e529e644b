package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "Valid development config",
			cfg:     Config{Port: "8374", JWTSecret: "dev-secret", Env: "development"},
			wantErr: false,
		},
		{
			name:    "Missing port",
			cfg:     Config{JWTSecret: "dev-secret"},
			wantErr: true,
		},
		{
			name:    "Missing JWT secret",
			cfg:     Config{Port: "8374"},
			wantErr: true,
		},
		{
			name:    "Production with default JWT secret",
			cfg:     Config{Port: "8374", JWTSecret: "your-secret-key-change-in-production", Env: "production", DBPassword: "strongpass"},
			wantErr: true,
		},
		{
			name:    "Production with short JWT secret",
			cfg:     Config{Port: "8374", JWTSecret: "short", Env: "production", DBPassword: "strongpass"},
			wantErr: true,
		},
		{
			name: "Production with weak DB password",
			cfg: Config{
				Port:       "8374",
				JWTSecret:  "a-very-long-production-grade-secret-key",
				Env:        "production",
				DBPassword: "password",
			},
			wantErr: true,
		},
		{
			name: "Valid production config",
			cfg: Config{
				Port:       "8374",
				JWTSecret:  "a-very-long-production-grade-secret-key",
				Env:        "production",
				DBPassword: "strongpass",
				DBSSLMode:  "require",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
