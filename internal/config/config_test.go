package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 800 || cfg.Window.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.FPSLimit != 0 {
		t.Errorf("expected unlimited fps, got %d", cfg.Window.FPSLimit)
	}

	if cfg.Camera.Position != (mgl32.Vec3{0, 0, 3}) {
		t.Errorf("expected camera at (0,0,3), got %v", cfg.Camera.Position)
	}
	if cfg.Camera.Yaw != -90 || cfg.Camera.Zoom != 45 {
		t.Errorf("expected yaw -90 zoom 45, got %v %v", cfg.Camera.Yaw, cfg.Camera.Zoom)
	}

	if cfg.Lighting.AmbientStrength != 0.1 || cfg.Lighting.SpecularStrength != 0.8 || cfg.Lighting.Shininess != 16 {
		t.Errorf("unexpected material %+v", cfg.Lighting)
	}
	if cfg.Lighting.Key.Position != (mgl32.Vec3{10, 0, -10}) {
		t.Errorf("key light at %v", cfg.Lighting.Key.Position)
	}
	if cfg.Lighting.Accent.Position != (mgl32.Vec3{1, 2.15, -0.4}) {
		t.Errorf("accent light at %v", cfg.Lighting.Accent.Position)
	}

	if cfg.Scene.UVScale != (mgl32.Vec2{5, 5}) {
		t.Errorf("expected uv scale (5,5), got %v", cfg.Scene.UVScale)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  vsync: false
  fps_limit: 144

camera:
  position: [1, 2, 5]
  yaw: -45
  orthographic: true

lighting:
  shininess: 32
  fill:
    position: [0, 4, 0]
    color: [1, 0.5, 0.25]

scene:
  textures:
    floor: "assets/bricks.png"

logging:
  level: "debug"
  log_file: "scene.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Window.FPSLimit != 144 {
		t.Errorf("expected fps limit 144, got %d", cfg.Window.FPSLimit)
	}
	if cfg.Camera.Position != (mgl32.Vec3{1, 2, 5}) {
		t.Errorf("expected position (1,2,5), got %v", cfg.Camera.Position)
	}
	if cfg.Camera.Yaw != -45 || !cfg.Camera.Orthographic {
		t.Errorf("camera not overridden: %+v", cfg.Camera)
	}
	if cfg.Lighting.Shininess != 32 {
		t.Errorf("expected shininess 32, got %v", cfg.Lighting.Shininess)
	}
	if cfg.Lighting.Fill.Color != (mgl32.Vec3{1, 0.5, 0.25}) {
		t.Errorf("fill color %v", cfg.Lighting.Fill.Color)
	}
	if cfg.Scene.Textures.Floor != "assets/bricks.png" {
		t.Errorf("floor texture %q", cfg.Scene.Textures.Floor)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "scene.log" {
		t.Errorf("logging %+v", cfg.Logging)
	}

	// untouched values keep their defaults
	if cfg.Camera.Pitch != 0 || cfg.Camera.MovementSpeed != 2.5 {
		t.Errorf("defaults lost: %+v", cfg.Camera)
	}
	if cfg.Lighting.Key.Position != (mgl32.Vec3{10, 0, -10}) {
		t.Errorf("key light lost: %v", cfg.Lighting.Key.Position)
	}
	if cfg.Scene.UVScale != (mgl32.Vec2{5, 5}) {
		t.Errorf("uv scale lost: %v", cfg.Scene.UVScale)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()

	cases := map[string]string{
		"syntax":     "window: [unclosed",
		"array size": "camera:\n  position: [1, 2]\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(tmpDir, strings.ReplaceAll(name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write test config: %v", err)
			}
			if err := loadFromFile(Default(), path); err == nil {
				t.Error("expected error for invalid YAML")
			}
		})
	}
}

func TestLoadFromFileNotFound(t *testing.T) {
	if err := loadFromFile(Default(), "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero width", func(c *Config) { c.Window.Width = 0 }, "window size"},
		{"negative fps", func(c *Config) { c.Window.FPSLimit = -1 }, "fps_limit"},
		{"near past far", func(c *Config) { c.Camera.Near = 200 }, "clip planes"},
		{"zero near", func(c *Config) { c.Camera.Near = 0 }, "clip planes"},
		{"ortho extent", func(c *Config) { c.Camera.OrthoHalfExtent = 0 }, "ortho_half_extent"},
		{"negative shininess", func(c *Config) { c.Lighting.Shininess = -1 }, "shininess"},
		{"color range", func(c *Config) { c.Lighting.Accent.Color = mgl32.Vec3{1, 2, 1} }, "accent light color"},
		{"texture size", func(c *Config) { c.Scene.TextureSize = 0 }, "texture_size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateReportsAll(t *testing.T) {
	cfg := Default()
	cfg.Window.Height = -1
	cfg.Lighting.Shininess = -2
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "window size") || !strings.Contains(err.Error(), "shininess") {
		t.Fatalf("not all problems reported: %v", err)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Window.Width = 1024
	cfg.Lighting.Key.Color = mgl32.Vec3{0.5, 0.5, 1}
	cfg.Scene.Textures.Drawer = "wood2.jpg"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if loaded.Window.Width != 1024 {
		t.Errorf("width %d", loaded.Window.Width)
	}
	if loaded.Lighting.Key.Color != (mgl32.Vec3{0.5, 0.5, 1}) {
		t.Errorf("key color %v", loaded.Lighting.Key.Color)
	}
	if loaded.Scene.Textures.Drawer != "wood2.jpg" {
		t.Errorf("drawer texture %q", loaded.Scene.Textures.Drawer)
	}
}

func TestLoadFindsConfigDir(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux and others")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir := filepath.Join(xdg, "deskscene")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("window:\n  title: from file\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Window.Title != "from file" {
		t.Fatalf("title %q, want value from config dir", cfg.Window.Title)
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	if runtime.GOOS == "darwin" || runtime.GOOS == "windows" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux and others")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	dir := filepath.Join(xdg, "deskscene")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("camera:\n  near: 500\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestFPSLimitClamp(t *testing.T) {
	defer SetFPSLimit(GetFPSLimit())

	tests := []struct{ in, want int }{
		{60, 60},
		{-5, 0},
		{0, 0},
		{5000, MaxFPSLimit},
	}
	for _, tt := range tests {
		SetFPSLimit(tt.in)
		if got := GetFPSLimit(); got != tt.want {
			t.Errorf("SetFPSLimit(%d): got %d, want %d", tt.in, got, tt.want)
		}
	}
}
