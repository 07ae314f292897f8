package config

import (
	"os"
	"testing"
)

func TestGetEnvOrDefault(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		setEnv       bool
		want         string
	}{
		{
			name:         "environment variable set",
			key:          "TEST_KEY_1",
			defaultValue: "default",
			envValue:     "custom",
			setEnv:       true,
			want:         "custom",
		},
		{
			name:         "environment variable not set",
			key:          "TEST_KEY_2",
			defaultValue: "default",
			envValue:     "",
			setEnv:       false,
			want:         "default",
		},
		{
			name:         "empty environment variable",
			key:          "TEST_KEY_3",
			defaultValue: "default",
			envValue:     "",
			setEnv:       true,
			want:         "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			got := getEnvOrDefault(tt.key, tt.defaultValue)
			if got != tt.want {
				t.Errorf("getEnvOrDefault() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENVIRONMENT", "RUT_MIN_NUMBER", "RUT_MAX_NUMBER", "TRACING_ENABLED", "TRACING_ENDPOINT"} {
		os.Unsetenv(key)
	}

	if err := LoadConfig(); err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if AppConfig.Port != 8080 {
		t.Errorf("Port = %d, want 8080", AppConfig.Port)
	}
	if AppConfig.Environment != "development" {
		t.Errorf("Environment = %q, want development", AppConfig.Environment)
	}
	if AppConfig.RutMinNumber != 1000000 {
		t.Errorf("RutMinNumber = %d, want 1000000", AppConfig.RutMinNumber)
	}
	if AppConfig.RutMaxNumber != 99999999 {
		t.Errorf("RutMaxNumber = %d, want 99999999", AppConfig.RutMaxNumber)
	}
	if AppConfig.TracingEnabled {
		t.Error("TracingEnabled should default to false")
	}
}

func TestLoadConfig_CustomValues(t *testing.T) {
	os.Setenv("PORT", "9090")
	os.Setenv("ENVIRONMENT", "production")
	os.Setenv("RUT_MIN_NUMBER", "500000")
	os.Setenv("RUT_MAX_NUMBER", "200000000")
	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("ENVIRONMENT")
		os.Unsetenv("RUT_MIN_NUMBER")
		os.Unsetenv("RUT_MAX_NUMBER")
	}()

	if err := LoadConfig(); err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if AppConfig.Port != 9090 {
		t.Errorf("Port = %d, want 9090", AppConfig.Port)
	}
	if AppConfig.Environment != "production" {
		t.Errorf("Environment = %q, want production", AppConfig.Environment)
	}
	if AppConfig.RutMinNumber != 500000 {
		t.Errorf("RutMinNumber = %d, want 500000", AppConfig.RutMinNumber)
	}
	if AppConfig.RutMaxNumber != 200000000 {
		t.Errorf("RutMaxNumber = %d, want 200000000", AppConfig.RutMaxNumber)
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "invalid port", key: "PORT", value: "not-a-port"},
		{name: "invalid min number", key: "RUT_MIN_NUMBER", value: "one million"},
		{name: "invalid max number", key: "RUT_MAX_NUMBER", value: "9.9e7"},
		{name: "invalid tracing flag", key: "TRACING_ENABLED", value: "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv(tt.key, tt.value)
			defer os.Unsetenv(tt.key)

			if err := LoadConfig(); err == nil {
				t.Errorf("LoadConfig() with %s=%q should fail", tt.key, tt.value)
			}
		})
	}
}

func TestLoadConfig_InvertedBounds(t *testing.T) {
	os.Setenv("RUT_MIN_NUMBER", "2000000")
	os.Setenv("RUT_MAX_NUMBER", "1000000")
	defer func() {
		os.Unsetenv("RUT_MIN_NUMBER")
		os.Unsetenv("RUT_MAX_NUMBER")
	}()

	if err := LoadConfig(); err == nil {
		t.Error("LoadConfig() should reject min greater than max")
	}
}
