package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	want := Config{
		HorizonURL:     "https://horizon.example.org",
		EthRPCURL:      "https://rpc.example.org",
		USDCToken:      "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48",
		RequestPath:    "request.json",
		ConnectTimeout: 30,
		Logger:         true,
	}
	Save(path, want)

	if got := Load(path); got != want {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	got := Load(filepath.Join(t.TempDir(), "nope.json"))
	if got != (Config{}) {
		t.Errorf("expected zero config, got %+v", got)
	}
}

func TestLoadOrCreateWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	got := LoadOrCreate(path)
	if got != DefaultConfig() {
		t.Errorf("expected defaults, got %+v", got)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config file was not created: %v", err)
	}

	// second call reads the file it just wrote
	if again := LoadOrCreate(path); again != got {
		t.Errorf("reload mismatch: %+v vs %+v", again, got)
	}
}

func TestLoadOrCreateFixesTimeout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	Save(path, Config{HorizonURL: "https://horizon.example.org", ConnectTimeout: 0})

	got := LoadOrCreate(path)
	if got.ConnectTimeout != DefaultConfig().ConnectTimeout {
		t.Errorf("ConnectTimeout = %d, want default %d", got.ConnectTimeout, DefaultConfig().ConnectTimeout)
	}
	if got.HorizonURL != "https://horizon.example.org" {
		t.Errorf("HorizonURL lost: %q", got.HorizonURL)
	}
}

func TestLoadOrCreateInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}

	if got := LoadOrCreate(path); got != DefaultConfig() {
		t.Errorf("expected defaults for invalid file, got %+v", got)
	}
}
