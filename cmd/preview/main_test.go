package main

import (
	"flag"
	"strings"
	"testing"

	"deskscene/internal/config"

	"github.com/go-gl/mathgl/mgl32"
)

// setFlags marks flags as given and restores their defaults when the test ends.
func setFlags(t *testing.T, values map[string]string) {
	t.Helper()
	for name, v := range values {
		f := flag.Lookup(name)
		if f == nil {
			t.Fatalf("flag %q not registered", name)
		}
		def := f.DefValue
		if err := flag.Set(name, v); err != nil {
			t.Fatalf("set %s: %v", name, err)
		}
		t.Cleanup(func() { f.Value.Set(def) })
	}
}

func TestRejectViewerFlags(t *testing.T) {
	if err := rejectViewerFlags(); err != nil {
		t.Fatalf("no flags given: %v", err)
	}

	setFlags(t, map[string]string{"fps": "30", "save-config": "true"})
	err := rejectViewerFlags()
	if err == nil {
		t.Fatal("viewer-only flags accepted")
	}
	for _, name := range []string{"-fps", "-save-config"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error %q does not name %s", err, name)
		}
	}
}

func TestApplyCameraFlags(t *testing.T) {
	setFlags(t, map[string]string{"yaw": "10", "pos": "1,2,3"})

	cfg := config.Default()
	pitch := cfg.Camera.Pitch
	if err := applyCameraFlags(cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Camera.Yaw != 10 {
		t.Errorf("yaw = %v, want 10", cfg.Camera.Yaw)
	}
	if cfg.Camera.Position != (mgl32.Vec3{1, 2, 3}) {
		t.Errorf("position = %v", cfg.Camera.Position)
	}
	if cfg.Camera.Pitch != pitch {
		t.Errorf("pitch changed without -pitch: %v", cfg.Camera.Pitch)
	}
}

func TestApplyCameraFlagsBadPosition(t *testing.T) {
	setFlags(t, map[string]string{"pos": "1;2"})
	if err := applyCameraFlags(config.Default()); err == nil {
		t.Fatal("malformed -pos accepted")
	}
}
