package config

import (
	"testing"

	"github.com/spf13/viper"
)

func initClean(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	Init(nil)
}

func TestDefaults(t *testing.T) {
	initClean(t)

	if got := Port(); got != DefaultPort {
		t.Fatalf("default port %d", got)
	}
	if !AutoLaunch() {
		t.Fatal("auto-launch must default to true")
	}
	if got := LogLevel(); got != "info" {
		t.Fatalf("default log level %q", got)
	}
	if Token() != "" {
		t.Fatalf("token must default to empty, got %q", Token())
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("JOPLIN_TOKEN", "secret")
	t.Setenv("JOPLIN_PORT", "51515")
	t.Setenv("JOPLIN_AUTO_LAUNCH", "false")
	initClean(t)

	if got := Token(); got != "secret" {
		t.Fatalf("token %q", got)
	}
	if got := Port(); got != 51515 {
		t.Fatalf("port %d", got)
	}
	if AutoLaunch() {
		t.Fatal("JOPLIN_AUTO_LAUNCH=false not honored")
	}
}

func TestBaseURLFollowsPort(t *testing.T) {
	t.Setenv("JOPLIN_PORT", "42000")
	initClean(t)

	if got := BaseURL(); got != "http://localhost:42000" {
		t.Fatalf("base URL %q", got)
	}
}
