/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"strings"
	"testing"
	"time"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		want   string
	}{
		{"defaults", func(*Config) {}, ""},
		{"cert without key", func(c *Config) { c.tlsCert = "cert.pem" }, "tls-key"},
		{"key without cert", func(c *Config) { c.tlsKey = "key.pem" }, "tls-key"},
		{"port too low", func(c *Config) { c.port = 0 }, "invalid port"},
		{"port too high", func(c *Config) { c.port = 70000 }, "invalid port"},
		{"zero draw", func(c *Config) { c.drawDuration = 0 }, "draw"},
		{"negative end", func(c *Config) { c.endDuration = -time.Second }, "end"},
		{"no rounds", func(c *Config) { c.rounds = 0 }, "invalid rounds"},
		{"one participant", func(c *Config) { c.maxParticipants = 1 }, "invalid max participants"},
		{"too many participants", func(c *Config) { c.maxParticipants = 101 }, "invalid max participants"},
		{"empty history", func(c *Config) { c.historySize = 0 }, "invalid history size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.modify(cfg)

			err := cfg.validate()
			if tt.want == "" {
				if err != nil {
					t.Fatalf("validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("validate() = %v, want error containing %q", err, tt.want)
			}
		})
	}
}

func TestConfigScheme(t *testing.T) {
	cfg := testConfig()
	if got := cfg.scheme(); got != "http" {
		t.Errorf("scheme() = %q, want http", got)
	}

	cfg.tlsCert, cfg.tlsKey = "cert.pem", "key.pem"
	if got := cfg.scheme(); got != "https" {
		t.Errorf("scheme() = %q, want https", got)
	}
}

func TestNewCmdDefaults(t *testing.T) {
	cfg := &Config{}
	newCmd(cfg)

	if cfg.port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.port)
	}
	if cfg.readyDuration != 3*time.Second || cfg.drawDuration != time.Minute || cfg.guessDuration != 20*time.Second {
		t.Errorf("schedule = %+v", cfg.schedule())
	}
	if cfg.endDuration != 0 {
		t.Errorf("endDuration = %v, want 0", cfg.endDuration)
	}
	if cfg.rounds != 1 || cfg.maxParticipants != 20 {
		t.Errorf("rounds = %d, maxParticipants = %d", cfg.rounds, cfg.maxParticipants)
	}
	if err := cfg.validate(); err != nil {
		t.Errorf("validate() = %v", err)
	}
}

func TestNewCmdEnvironment(t *testing.T) {
	t.Setenv("WORDRAW_PORT", "9090")
	t.Setenv("WORDRAW_DRAW_DURATION", "45s")
	t.Setenv("WORDRAW_MAX_PARTICIPANTS", "12")
	t.Setenv("WORDRAW_VERBOSE", "true")

	cfg := &Config{}
	newCmd(cfg)

	if cfg.port != 9090 {
		t.Errorf("port = %d, want 9090", cfg.port)
	}
	if cfg.drawDuration != 45*time.Second {
		t.Errorf("drawDuration = %v, want 45s", cfg.drawDuration)
	}
	if cfg.maxParticipants != 12 {
		t.Errorf("maxParticipants = %d, want 12", cfg.maxParticipants)
	}
	if !cfg.verbose {
		t.Error("verbose = false, want true")
	}
}

func TestNewCmdRejectsArgs(t *testing.T) {
	cmd := newCmd(&Config{})
	cmd.SetArgs([]string{"extra"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("Execute() with positional args succeeded")
	}
}
