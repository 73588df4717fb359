package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name:   "Development Defaults",
			config: Config{Port: "8080", DBName: "bookswap", DBPassword: "postgres", Env: "development"},
		},
		{
			name:        "Missing Port",
			config:      Config{DBName: "bookswap"},
			expectError: true,
		},
		{
			name:        "Missing DB Name",
			config:      Config{Port: "8080"},
			expectError: true,
		},
		{
			name:        "Production With Default Password",
			config:      Config{Port: "8080", DBName: "bookswap", DBPassword: "postgres", Env: "production"},
			expectError: true,
		},
		{
			name:        "Prod Alias With Empty Password",
			config:      Config{Port: "8080", DBName: "bookswap", DBPassword: "", Env: "prod"},
			expectError: true,
		},
		{
			name:   "Production With Strong Password",
			config: Config{Port: "8080", DBName: "bookswap", DBPassword: "s3cure-and-long", Env: "production"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
