package lighting

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

var white = mgl32.Vec3{1, 1, 1}

func TestEvaluateOverheadLight(t *testing.T) {
	s := Surface{
		Position:  mgl32.Vec3{0, 0, 0},
		Normal:    mgl32.Vec3{0, 1, 0},
		BaseColor: white,
	}
	eye := mgl32.Vec3{0, 5, 0}
	light := Light{Position: mgl32.Vec3{0, 10, 0}, Color: white}

	terms := Contribution(DefaultMaterial(), s.Normal, s.Position, eye, light)
	if !terms.Ambient.ApproxEqualThreshold(mgl32.Vec3{0.1, 0.1, 0.1}, 1e-6) {
		t.Errorf("ambient: got %v, want 0.1", terms.Ambient)
	}
	if !terms.Diffuse.ApproxEqualThreshold(white, 1e-6) {
		t.Errorf("diffuse: got %v, want 1.0", terms.Diffuse)
	}
	if !terms.Specular.ApproxEqualThreshold(mgl32.Vec3{0.8, 0.8, 0.8}, 1e-6) {
		t.Errorf("specular: got %v, want 0.8", terms.Specular)
	}

	got := Evaluate(DefaultMaterial(), s, eye, []Light{light})
	want := mgl32.Vec4{1.9, 1.9, 1.9, 1}
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("color: got %v, want %v (unclamped)", got, want)
	}
}

func TestEvaluateIsPure(t *testing.T) {
	s := Surface{
		Position:  mgl32.Vec3{0.3, -0.2, 1},
		Normal:    mgl32.Vec3{0.2, 0.9, 0.1},
		BaseColor: mgl32.Vec3{0.6, 0.4, 0.2},
	}
	eye := mgl32.Vec3{0, 0, 3}
	lights := Rig{
		Key:    Light{Position: mgl32.Vec3{10, 0, -10}, Color: white},
		Fill:   Light{Position: mgl32.Vec3{-10, 0, 10}, Color: white},
		Accent: Light{Position: mgl32.Vec3{1, 2.15, -0.4}, Color: white},
	}.Lights()

	first := Evaluate(DefaultMaterial(), s, eye, lights)
	second := Evaluate(DefaultMaterial(), s, eye, lights)
	if first != second {
		t.Fatalf("repeated evaluation differs: %v vs %v", first, second)
	}
}

func TestLightBehindSurfaceIsAmbientOnly(t *testing.T) {
	normal := mgl32.Vec3{0, 1, 0}
	frag := mgl32.Vec3{0, 0, 0}
	color := mgl32.Vec3{0.5, 0.7, 1}

	tests := []struct {
		name  string
		light mgl32.Vec3
		eye   mgl32.Vec3
	}{
		{"directly below", mgl32.Vec3{0, -10, 0}, mgl32.Vec3{0, 5, 0}},
		{"grazing", mgl32.Vec3{10, 0, 0}, mgl32.Vec3{-10, 0.01, 0}},
		// the mirrored reflection would line up with the eye here
		{"below, eye on reflection", mgl32.Vec3{3, -3, 0}, mgl32.Vec3{3, -3, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			terms := Contribution(DefaultMaterial(), normal, frag, tt.eye, Light{Position: tt.light, Color: color})
			if terms.Diffuse != (mgl32.Vec3{}) {
				t.Errorf("diffuse: got %v, want 0", terms.Diffuse)
			}
			if terms.Specular != (mgl32.Vec3{}) {
				t.Errorf("specular: got %v, want 0", terms.Specular)
			}
			if !terms.Ambient.ApproxEqualThreshold(color.Mul(0.1), 1e-6) {
				t.Errorf("ambient: got %v, want %v", terms.Ambient, color.Mul(0.1))
			}
		})
	}
}

func TestEvaluateSumsLightsAndModulatesBase(t *testing.T) {
	s := Surface{
		Position:  mgl32.Vec3{0, 0, 0},
		Normal:    mgl32.Vec3{0, 2, 0}, // not unit; Evaluate normalizes
		BaseColor: mgl32.Vec3{0.5, 0.25, 1},
	}
	eye := mgl32.Vec3{0, 5, 0}
	overhead := Light{Position: mgl32.Vec3{0, 10, 0}, Color: white}
	below := Light{Position: mgl32.Vec3{0, -10, 0}, Color: mgl32.Vec3{1, 0, 0}}

	got := Evaluate(DefaultMaterial(), s, eye, []Light{overhead, below})
	// 1.9 from overhead, 0.1 red ambient from below
	want := mgl32.Vec4{2.0 * 0.5, 1.9 * 0.25, 1.9 * 1, 1}
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestEvaluateNoLights(t *testing.T) {
	s := Surface{Normal: mgl32.Vec3{0, 0, 1}, BaseColor: white}
	got := Evaluate(DefaultMaterial(), s, mgl32.Vec3{0, 0, 1}, nil)
	if got != (mgl32.Vec4{0, 0, 0, 1}) {
		t.Fatalf("got %v, want black with alpha 1", got)
	}
}

func TestCustomMaterial(t *testing.T) {
	m := Material{AmbientStrength: 0.5, SpecularStrength: 0, Shininess: 32}
	terms := Contribution(m, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{}, mgl32.Vec3{0, 5, 0},
		Light{Position: mgl32.Vec3{0, 10, 0}, Color: white})
	if !terms.Ambient.ApproxEqualThreshold(mgl32.Vec3{0.5, 0.5, 0.5}, 1e-6) {
		t.Errorf("ambient: got %v", terms.Ambient)
	}
	if terms.Specular != (mgl32.Vec3{}) {
		t.Errorf("specular with zero strength: got %v", terms.Specular)
	}
}

func TestShininessNarrowsHighlight(t *testing.T) {
	normal := mgl32.Vec3{0, 1, 0}
	light := Light{Position: mgl32.Vec3{-5, 5, 0}, Color: white}
	eye := mgl32.Vec3{5, 4, 0} // slightly off the mirror direction

	broad := Contribution(Material{SpecularStrength: 1, Shininess: 2}, normal, mgl32.Vec3{}, eye, light)
	tight := Contribution(Material{SpecularStrength: 1, Shininess: 64}, normal, mgl32.Vec3{}, eye, light)
	if !(tight.Specular.X() < broad.Specular.X()) {
		t.Fatalf("shininess 64 specular %v not below shininess 2 specular %v", tight.Specular, broad.Specular)
	}
}

func TestReflect(t *testing.T) {
	got := Reflect(mgl32.Vec3{1, -1, 0}, mgl32.Vec3{0, 1, 0})
	if !got.ApproxEqualThreshold(mgl32.Vec3{1, 1, 0}, 1e-6) {
		t.Fatalf("reflect: got %v", got)
	}
}

func BenchmarkEvaluate(b *testing.B) {
	s := Surface{
		Position:  mgl32.Vec3{0.3, -0.2, 1},
		Normal:    mgl32.Vec3{0, 1, 0},
		BaseColor: mgl32.Vec3{0.6, 0.4, 0.2},
	}
	lights := Rig{
		Key:    Light{Position: mgl32.Vec3{10, 0, -10}, Color: white},
		Fill:   Light{Position: mgl32.Vec3{-10, 0, 10}, Color: white},
		Accent: Light{Position: mgl32.Vec3{1, 2.15, -0.4}, Color: white},
	}.Lights()
	eye := mgl32.Vec3{0, 0, 3}
	m := DefaultMaterial()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Evaluate(m, s, eye, lights)
	}
}
