package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveLogFilePathDefaults(t *testing.T) {
	workDir := t.TempDir()
	prevWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("get wd failed: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(prevWD)
	})
	if err := os.Chdir(workDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}

	path, err := resolveLogFilePath(Options{})
	if err != nil {
		t.Fatalf("resolve default path failed: %v", err)
	}
	if filepath.Base(path) != defaultLogFilename {
		t.Fatalf("expected default filename %s, got %s", defaultLogFilename, filepath.Base(path))
	}
	if filepath.Base(filepath.Dir(path)) != defaultLogDirName {
		t.Fatalf("expected default dir %s, got %s", defaultLogDirName, filepath.Dir(path))
	}
	if _, err := os.Stat(filepath.Dir(path)); err != nil {
		t.Fatalf("the log dir must exist after resolving: %v", err)
	}
}

func TestResolveLogFilePathRespectsOptions(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "var", "log", "orderdesk")
	path, err := resolveLogFilePath(Options{Dir: " " + dir + " ", Filename: " orderdesk.log "})
	if err != nil {
		t.Fatalf("resolve configured path failed: %v", err)
	}
	if path != filepath.Join(dir, "orderdesk.log") {
		t.Fatalf("expected trimmed dir and filename, got %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("the log file must be writable after resolving: %v", err)
	}
}

func TestNewReleaseModeWritesJSONFile(t *testing.T) {
	dir := t.TempDir()
	log := New("release", Options{Dir: dir, Filename: "orderdesk.log"})
	log.Info("order workflow started")
	_ = log.Sync()

	raw, err := os.ReadFile(filepath.Join(dir, "orderdesk.log"))
	if err != nil {
		t.Fatalf("read log file failed: %v", err)
	}
	line := string(raw)
	if !strings.Contains(line, `"message":"order workflow started"`) {
		t.Fatalf("expected a JSON log line with the message, got %s", line)
	}
	if !strings.Contains(line, `"level":"info"`) {
		t.Fatalf("expected lowercase level key, got %s", line)
	}
}

func TestNewDebugModeStaysOnStdout(t *testing.T) {
	dir := t.TempDir()
	log := New("debug", Options{Dir: dir, Filename: "orderdesk.log"})
	log.Debug("warehouse report received")
	_ = log.Sync()

	if _, err := os.Stat(filepath.Join(dir, "orderdesk.log")); !os.IsNotExist(err) {
		t.Fatalf("debug mode must not create a log file")
	}
}

func TestNormalizePositiveInt(t *testing.T) {
	cases := []struct {
		value    int
		fallback int
		want     int
	}{
		{value: 50, fallback: 100, want: 50},
		{value: 0, fallback: 100, want: 100},
		{value: -3, fallback: 7, want: 7},
	}
	for _, c := range cases {
		if got := normalizePositiveInt(c.value, c.fallback); got != c.want {
			t.Fatalf("normalizePositiveInt(%d, %d) = %d, want %d", c.value, c.fallback, got, c.want)
		}
	}
}

func TestZReturnsFallbackBeforeInit(t *testing.T) {
	prev := L
	L = nil
	t.Cleanup(func() { L = prev })

	if Z() == nil {
		t.Fatalf("Z must never return nil")
	}
	if S() == nil {
		t.Fatalf("S must never return nil")
	}
}
