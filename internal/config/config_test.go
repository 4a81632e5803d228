package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `include: "**/*.env,**/*.yml"
max_bytes: 524288
threads: 8
min_confidence: 80.5
verify: true
region: eu-west-1
verify_timeout: 5s
telegram_token: "123:abc"
telegram_chat_id: "42"
alert_interval: 10s
`

func TestLoadFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "leakhound.yml")
	if err := os.WriteFile(p, []byte(sampleYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Include == nil || *cfg.Include != "**/*.env,**/*.yml" {
		t.Fatalf("include = %v", cfg.Include)
	}
	if cfg.MaxBytes == nil || *cfg.MaxBytes != 524288 {
		t.Fatalf("max_bytes = %v", cfg.MaxBytes)
	}
	if cfg.Threads == nil || *cfg.Threads != 8 {
		t.Fatalf("threads = %v", cfg.Threads)
	}
	if cfg.MinConfidence == nil || *cfg.MinConfidence != 80.5 {
		t.Fatalf("min_confidence = %v", cfg.MinConfidence)
	}
	if cfg.Verify == nil || !*cfg.Verify {
		t.Fatalf("verify = %v", cfg.Verify)
	}
	if cfg.Region == nil || *cfg.Region != "eu-west-1" {
		t.Fatalf("region = %v", cfg.Region)
	}
	if cfg.TelegramToken == nil || *cfg.TelegramToken != "123:abc" {
		t.Fatalf("telegram_token = %v", cfg.TelegramToken)
	}
}

func TestAbsentKeysStayNil(t *testing.T) {
	p := filepath.Join(t.TempDir(), "leakhound.yml")
	if err := os.WriteFile(p, []byte("threads: 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Threads == nil || *cfg.Threads != 2 {
		t.Fatalf("threads = %v", cfg.Threads)
	}
	if cfg.Include != nil || cfg.Exclude != nil || cfg.NoCache != nil || cfg.Verify != nil {
		t.Fatalf("absent keys populated: %+v", cfg)
	}
}

func TestLoadLocalPrefersDotfile(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".leakhound.yml"), []byte("threads: 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "leakhound.yml"), []byte("threads: 9\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadLocal(root)
	if err != nil {
		t.Fatalf("LoadLocal: %v", err)
	}
	if cfg.Threads == nil || *cfg.Threads != 3 {
		t.Fatalf("dotfile not preferred: %v", cfg.Threads)
	}
}

func TestLoadLocalMissing(t *testing.T) {
	if _, err := LoadLocal(t.TempDir()); err == nil {
		t.Fatalf("expected error when no config file exists")
	}
}

func TestLoadFileBadYAML(t *testing.T) {
	p := filepath.Join(t.TempDir(), "leakhound.yml")
	if err := os.WriteFile(p, []byte("threads: [not an int\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(p); err == nil {
		t.Fatalf("expected parse error")
	}
}
