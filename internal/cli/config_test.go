package cli

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func noneChanged(string) bool { return false }

func TestLoadConfigFile(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
		changed    func(string) bool
		wantErr    bool
	}{
		{
			name:       "no config file",
			configPath: "",
			changed:    noneChanged,
			wantErr:    false,
		},
		{
			name:       "missing default config file",
			configPath: filepath.Join(t.TempDir(), DefaultConfigPath),
			changed:    noneChanged,
			wantErr:    false,
		},
		{
			name:       "missing explicit config file",
			configPath: "/nonexistent/config.yml",
			changed:    func(name string) bool { return name == "config" },
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			config.ConfigPath = tt.configPath
			err := loadConfigFile(&config, tt.changed)
			if (err != nil) != tt.wantErr {
				t.Errorf("loadConfigFile() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfigFileWithValidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "nox.yml")

	configContent := `
paths: ["src", "vendor/lib"]
output: "doc/api.yaml"
format: "yaml"
extensions: [".js", ".mjs"]
exclude: ["build"]
logLevel: "debug"
concurrency: 2
`
	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		t.Fatal(err)
	}

	config := DefaultConfig()
	config.ConfigPath = configFile

	if err := loadConfigFile(&config, noneChanged); err != nil {
		t.Fatalf("loadConfigFile() error = %v", err)
	}

	want := Config{
		Paths:       []string{"src", "vendor/lib"},
		Output:      "doc/api.yaml",
		Format:      "yaml",
		Extensions:  []string{".js", ".mjs"},
		ExcludeDirs: []string{"build"},
		LogLevel:    "debug",
		Concurrency: 2,
		ConfigPath:  configFile,
	}
	if !reflect.DeepEqual(config, want) {
		t.Errorf("config: got %+v, want %+v", config, want)
	}
}

func TestLoadConfigFileFlagsWin(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "nox.yml")

	if err := os.WriteFile(configFile, []byte("format: yaml\noutput: from-file.json\npaths: [src]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	config := DefaultConfig()
	config.ConfigPath = configFile
	config.Format = "json"
	config.Paths = []string{"cli-arg"}

	changed := func(name string) bool { return name == "format" || name == "paths" }
	if err := loadConfigFile(&config, changed); err != nil {
		t.Fatalf("loadConfigFile() error = %v", err)
	}

	if config.Format != "json" {
		t.Errorf("Format: got %s, want json", config.Format)
	}
	if !reflect.DeepEqual(config.Paths, []string{"cli-arg"}) {
		t.Errorf("Paths: got %v, want [cli-arg]", config.Paths)
	}
	if config.Output != "from-file.json" {
		t.Errorf("Output: got %s, want from-file.json", config.Output)
	}
}

func TestLoadConfigFileWithInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "invalid.yml")

	invalidContent := `
invalid: yaml: content: [
`
	if err := os.WriteFile(configFile, []byte(invalidContent), 0644); err != nil {
		t.Fatal(err)
	}

	config := DefaultConfig()
	config.ConfigPath = configFile

	err := loadConfigFile(&config, noneChanged)
	if err == nil {
		t.Fatal("Expected error for invalid YAML, but got none")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Errorf("Expected parse config error, got: %v", err)
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{name: "defaults", modify: func(*Config) {}, wantErr: false},
		{name: "yml format", modify: func(c *Config) { c.Format = "yml" }, wantErr: false},
		{name: "unknown format", modify: func(c *Config) { c.Format = "xml" }, wantErr: true},
		{name: "no paths", modify: func(c *Config) { c.Paths = nil }, wantErr: true},
		{name: "empty path", modify: func(c *Config) { c.Paths = []string{""} }, wantErr: true},
		{name: "extension without dot", modify: func(c *Config) { c.Extensions = []string{"js"} }, wantErr: true},
		{name: "no extensions", modify: func(c *Config) { c.Extensions = nil }, wantErr: true},
		{name: "empty output", modify: func(c *Config) { c.Output = "" }, wantErr: true},
		{name: "bad log level", modify: func(c *Config) { c.LogLevel = "verbose" }, wantErr: true},
		{name: "negative concurrency", modify: func(c *Config) { c.Concurrency = -1 }, wantErr: true},
		{name: "no excludes", modify: func(c *Config) { c.ExcludeDirs = nil }, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			err := validateConfig(&config)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
