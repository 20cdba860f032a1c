package main

import (
	"log/slog"
	"strings"
	"testing"
)

func TestLoadConfig_Validation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		envVars     map[string]string
		expectError bool
		errorSubstr string
	}{
		{
			name: "valid online config from flags",
			args: []string{
				"-username", "steve",
				"-ftp-addr", "mc.example.com:21",
				"-ftp-user", "admin",
				"-ftp-password", "hunter2",
			},
			expectError: false,
		},
		{
			name:        "missing username",
			args:        []string{"-ftp-addr", "mc.example.com:21", "-ftp-user", "admin"},
			envVars:     map[string]string{"ASPECTPATH_USERNAME": ""},
			expectError: true,
			errorSubstr: "username is required",
		},
		{
			name:        "missing ftp address online",
			args:        []string{"-username", "steve"},
			envVars:     map[string]string{"ASPECTPATH_FTP_ADDR": ""},
			expectError: true,
			errorSubstr: "ftp address is required",
		},
		{
			name:        "offline needs no ftp settings",
			args:        []string{"-username", "steve", "-offline"},
			expectError: false,
		},
		{
			name: "username from env",
			args: []string{"-offline"},
			envVars: map[string]string{
				"ASPECTPATH_USERNAME": "alex",
			},
			expectError: false,
		},
		{
			name:        "zero slack rejected",
			args:        []string{"-username", "steve", "-offline", "-slack", "0"},
			expectError: true,
			errorSubstr: "slack must be at least 1",
		},
		{
			name:        "bad log level rejected",
			args:        []string{"-username", "steve", "-offline", "-log-level", "loud"},
			expectError: true,
			errorSubstr: "invalid log level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			config, err := LoadConfig(tt.args)
			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errorSubstr) {
					t.Fatalf("error %q does not contain %q", err, tt.errorSubstr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadConfig failed: %v", err)
			}
			if config.Username == "" {
				t.Error("username not populated")
			}
		})
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := LoadConfig([]string{"-username", "steve", "-offline"})
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Slack != defaultSlack {
		t.Errorf("Slack = %d, want %d", config.Slack, defaultSlack)
	}
	if config.MaxExpansions != defaultMaxExpansions {
		t.Errorf("MaxExpansions = %d, want %d", config.MaxExpansions, defaultMaxExpansions)
	}
	if config.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v, want info", config.LogLevel)
	}
	if config.CachePath == "" {
		t.Error("CachePath not defaulted")
	}
}
