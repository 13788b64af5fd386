package scene

import (
	"testing"

	"deskscene/internal/config"
	"deskscene/internal/texture"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

func TestNewDeskScene(t *testing.T) {
	s := New(config.Default())

	wantObjects := []struct {
		name, tex string
		verts     int
	}{
		{"frame", TextureFrame, 180},
		{"drawer", TextureDrawer, 36},
		{"floor", TextureFloor, 6},
		{"legs", TextureFrame, 72},
	}
	if len(s.Objects) != len(wantObjects) {
		t.Fatalf("got %d objects, want %d", len(s.Objects), len(wantObjects))
	}
	for i, w := range wantObjects {
		o := s.Objects[i]
		if o.Name != w.name || o.Texture != w.tex || o.Mesh.VertexCount() != w.verts {
			t.Errorf("object %d: got %s/%s/%d, want %s/%s/%d", i, o.Name, o.Texture, o.Mesh.VertexCount(), w.name, w.tex, w.verts)
		}
		if _, ok := s.Textures[o.Texture]; !ok {
			t.Errorf("object %s references unknown texture %q", o.Name, o.Texture)
		}
	}

	if len(s.Lamps) != 3 {
		t.Fatalf("got %d lamps, want 3", len(s.Lamps))
	}
	lights := s.Lights()
	for i, l := range s.Lamps {
		if l.Light != lights[i] {
			t.Errorf("lamp %s light %v does not match rig slot %d %v", l.Name, l.Light, i, lights[i])
		}
		origin := l.Model.Mul4x1(mgl32.Vec4{0, 0, 0, 1}).Vec3()
		if !origin.ApproxEqualThreshold(l.Light.Position, eps) {
			t.Errorf("lamp %s drawn at %v, light at %v", l.Name, origin, l.Light.Position)
		}
	}
	if s.Lamps[2].Mesh.VertexCount() != 18 {
		t.Errorf("accent lamp is not the pyramid")
	}

	if s.Material.Shininess != 16 || s.UVScale != (mgl32.Vec2{5, 5}) {
		t.Errorf("material/uv from defaults: %+v %v", s.Material, s.UVScale)
	}
	if s.Textures[TextureFloor].Fallback != texture.KindBricks {
		t.Errorf("floor fallback %q", s.Textures[TextureFloor].Fallback)
	}
}

func TestLampModelScalesAndRotates(t *testing.T) {
	m := LampModel(mgl32.Vec3{1, 2, 3}, 0.5, 90)
	// +X corner of a unit cube rotates onto -Z under a +90 degree Y rotation
	got := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1}).Vec3()
	want := mgl32.Vec3{1, 2, 2.5}
	if !got.ApproxEqualThreshold(want, eps) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestNewUsesConfiguredLights(t *testing.T) {
	cfg := config.Default()
	cfg.Lighting.Fill = config.LightConfig{Position: mgl32.Vec3{0, 9, 0}, Color: mgl32.Vec3{1, 0, 0}}
	cfg.Scene.Textures.Drawer = "drawer.png"

	s := New(cfg)
	if s.Rig.Fill.Position != (mgl32.Vec3{0, 9, 0}) || s.Rig.Fill.Color != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("fill light %+v", s.Rig.Fill)
	}
	if s.Textures[TextureDrawer].Path != "drawer.png" {
		t.Errorf("drawer path %q", s.Textures[TextureDrawer].Path)
	}
}

func TestLoadTexturesProcedural(t *testing.T) {
	s := New(config.Default())
	imgs, err := s.LoadTextures(16, 0)
	if err != nil {
		t.Fatalf("LoadTextures: %v", err)
	}
	for key := range s.Textures {
		img, ok := imgs[key]
		if !ok {
			t.Fatalf("missing texture %s", key)
		}
		if img.Bounds().Dx() != 16 {
			t.Errorf("%s size %v", key, img.Bounds())
		}
	}
}

func TestLoadTexturesMissingFile(t *testing.T) {
	cfg := config.Default()
	cfg.Scene.Textures.Floor = "/nonexistent/bricks.png"
	if _, err := New(cfg).LoadTextures(16, 0); err == nil {
		t.Fatal("expected error for unreadable texture")
	}
}
