package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != *defaultConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glox.yaml")
	err := os.WriteFile(path, []byte("prompt: \"lox> \"\ncolor: false\nlog_level: debug\nhistory_file: /tmp/hist\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Prompt != "lox> " || cfg.Color || cfg.LogLevel != "debug" || cfg.HistoryFile != "/tmp/hist" {
		t.Errorf("unexpected config %+v", cfg)
	}
	// Unset keys keep their defaults
	if cfg.ContinuePrompt != defaultConfig().ContinuePrompt {
		t.Errorf("continue prompt should keep its default, got %q", cfg.ContinuePrompt)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glox.yaml")
	if err := os.WriteFile(path, []byte("color: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestNewLoggerLevel(t *testing.T) {
	cfg := defaultConfig()
	cfg.LogLevel = "nonsense"
	if _, err := newLogger(cfg); err == nil {
		t.Error("expected an error for an unknown level")
	}
	cfg.LogLevel = "debug"
	logger, err := newLogger(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if logger.GetLevel().String() != "debug" {
		t.Errorf("expected debug level, got %s", logger.GetLevel())
	}
}

func TestOpenBraces(t *testing.T) {
	cases := map[string]int{
		"print 1;":            0,
		"fun f() {":           1,
		"class A { m() {":     2,
		"class A { m() { } }": 0,
		`print "{";`:          0,
		"var a = 1; // {":     0,
		"{\n  print \"}\";\n": 1,
	}
	for source, expected := range cases {
		if got := openBraces(source); got != expected {
			t.Errorf("%q: expected %d open braces, got %d", source, expected, got)
		}
	}
}
