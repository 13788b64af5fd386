// Package config handles scene configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Config holds all viewer settings.
type Config struct {
	Window      WindowConfig     `yaml:"window"`
	Camera      CameraConfig     `yaml:"camera"`
	Lighting    LightingConfig   `yaml:"lighting"`
	Scene       SceneConfig      `yaml:"scene"`
	Logging     LoggingConfig    `yaml:"logging"`
	Screenshots ScreenshotConfig `yaml:"screenshots"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Title    string `yaml:"title"`
	VSync    bool   `yaml:"vsync"`
	FPSLimit int    `yaml:"fps_limit"` // 0 = unlimited
}

// CameraConfig holds the starting camera and projection settings.
type CameraConfig struct {
	Position         mgl32.Vec3 `yaml:"position,flow"`
	Yaw              float32    `yaml:"yaw"`
	Pitch            float32    `yaml:"pitch"`
	MovementSpeed    float32    `yaml:"movement_speed"`
	MouseSensitivity float32    `yaml:"mouse_sensitivity"`
	Zoom             float32    `yaml:"zoom"`
	Near             float32    `yaml:"near"`
	Far              float32    `yaml:"far"`
	OrthoHalfExtent  float32    `yaml:"ortho_half_extent"`
	Orthographic     bool       `yaml:"orthographic"`
}

// LightConfig is one point light.
type LightConfig struct {
	Position mgl32.Vec3 `yaml:"position,flow"`
	Color    mgl32.Vec3 `yaml:"color,flow"`
}

// LightingConfig holds the material constants and the light rig.
type LightingConfig struct {
	AmbientStrength  float32     `yaml:"ambient_strength"`
	SpecularStrength float32     `yaml:"specular_strength"`
	Shininess        float32     `yaml:"shininess"`
	Key              LightConfig `yaml:"key"`
	Fill             LightConfig `yaml:"fill"`
	Accent           LightConfig `yaml:"accent"`
}

// TextureConfig holds image paths per surface. Empty paths use generated textures.
type TextureConfig struct {
	Frame  string `yaml:"frame"`
	Drawer string `yaml:"drawer"`
	Floor  string `yaml:"floor"`
}

// SceneConfig holds scene content settings.
type SceneConfig struct {
	UVScale        mgl32.Vec2    `yaml:"uv_scale,flow"`
	Textures       TextureConfig `yaml:"textures"`
	TextureSize    int           `yaml:"texture_size"`     // generated texture edge
	MaxTextureSize int           `yaml:"max_texture_size"` // loaded textures are downscaled past this
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns a Config with the values the scene was designed with.
func Default() *Config {
	white := mgl32.Vec3{1, 1, 1}
	return &Config{
		Window: WindowConfig{
			Width:    800,
			Height:   600,
			Title:    "Desk Scene",
			VSync:    true,
			FPSLimit: 0,
		},
		Camera: CameraConfig{
			Position:         mgl32.Vec3{0, 0, 3},
			Yaw:              -90,
			Pitch:            0,
			MovementSpeed:    2.5,
			MouseSensitivity: 0.1,
			Zoom:             45,
			Near:             0.1,
			Far:              100,
			OrthoHalfExtent:  5,
		},
		Lighting: LightingConfig{
			AmbientStrength:  0.1,
			SpecularStrength: 0.8,
			Shininess:        16,
			Key:              LightConfig{Position: mgl32.Vec3{10, 0, -10}, Color: white},
			Fill:             LightConfig{Position: mgl32.Vec3{-10, 0, 10}, Color: white},
			Accent:           LightConfig{Position: mgl32.Vec3{1, 2.15, -0.4}, Color: white},
		},
		Scene: SceneConfig{
			UVScale:        mgl32.Vec2{5, 5},
			TextureSize:    256,
			MaxTextureSize: 2048,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Screenshots: ScreenshotConfig{
			Dir: "screenshots",
		},
	}
}

// Validate reports every setting the renderer cannot work with.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Window.FPSLimit < 0 {
		errs = append(errs, fmt.Errorf("fps_limit %d must not be negative", c.Window.FPSLimit))
	}
	if c.Camera.Near <= 0 || c.Camera.Near >= c.Camera.Far {
		errs = append(errs, fmt.Errorf("clip planes near=%v far=%v: need 0 < near < far", c.Camera.Near, c.Camera.Far))
	}
	if c.Camera.OrthoHalfExtent <= 0 {
		errs = append(errs, fmt.Errorf("ortho_half_extent %v must be positive", c.Camera.OrthoHalfExtent))
	}
	if c.Lighting.Shininess < 0 {
		errs = append(errs, fmt.Errorf("shininess %v must not be negative", c.Lighting.Shininess))
	}
	for name, l := range map[string]LightConfig{"key": c.Lighting.Key, "fill": c.Lighting.Fill, "accent": c.Lighting.Accent} {
		for _, ch := range l.Color {
			if ch < 0 || ch > 1 {
				errs = append(errs, fmt.Errorf("%s light color %v outside [0,1]", name, l.Color))
				break
			}
		}
	}
	if c.Scene.TextureSize <= 0 {
		errs = append(errs, fmt.Errorf("texture_size %d must be positive", c.Scene.TextureSize))
	}
	return errors.Join(errs...)
}
