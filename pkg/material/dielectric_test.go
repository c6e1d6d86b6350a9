package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/FabiMur/go-pathtracer/pkg/core"
)

func TestDielectricNoIndexMismatch(t *testing.T) {
	// Ratio 1.0: the ray passes straight through, never bending
	glass := NewDielectric(1.0)
	random := rand.New(rand.NewSource(42))

	incoming := core.NewVec3(1, -2, 0.5).Normalize()
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), incoming)
	hit := testHit(core.NewVec3(0, 1, 0))

	for i := 0; i < 100; i++ {
		scatter, didScatter := glass.Scatter(rayIn, hit, random)
		if !didScatter {
			t.Fatal("dielectric must always scatter")
		}
		got := scatter.Scattered.Direction.Normalize()
		if got.Subtract(incoming).Length() > 1e-9 {
			t.Fatalf("ratio 1.0 bent the ray: got %v, want %v", got, incoming)
		}
	}
}

func TestDielectricAttenuationIsWhite(t *testing.T) {
	glass := NewDielectric(1.5)
	random := rand.New(rand.NewSource(42))

	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := testHit(core.NewVec3(0, 1, 0))

	scatter, didScatter := glass.Scatter(rayIn, hit, random)
	if !didScatter {
		t.Fatal("expected scatter")
	}
	if scatter.Attenuation != core.NewVec3(1, 1, 1) {
		t.Errorf("attenuation = %v, want (1,1,1)", scatter.Attenuation)
	}
}

func TestDielectricTotalInternalReflection(t *testing.T) {
	// Exiting glass at a grazing angle: refraction is impossible,
	// every sample must reflect
	glass := NewDielectric(1.5)
	random := rand.New(rand.NewSource(42))

	// Back-face hit (ray leaving the glass), 60 degrees off the normal:
	// 1.5 * sin(60) > 1, total internal reflection
	incoming := core.NewVec3(math.Sin(math.Pi/3), -math.Cos(math.Pi/3), 0)
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), incoming)
	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: false, // inside the material
	}

	expected := incoming.Reflect(hit.Normal)
	for i := 0; i < 100; i++ {
		scatter, didScatter := glass.Scatter(rayIn, hit, random)
		if !didScatter {
			t.Fatal("expected scatter")
		}
		got := scatter.Scattered.Direction
		if got.Subtract(expected).Length() > 1e-9 {
			t.Fatalf("expected pure reflection %v, got %v", expected, got)
		}
	}
}

func TestDielectricRefractionBendsTowardNormal(t *testing.T) {
	// Entering a denser medium bends the ray toward the normal.
	// Use many samples and check the refracted ones against Snell's law.
	glass := NewDielectric(1.5)
	random := rand.New(rand.NewSource(42))

	// 45 degrees incidence
	incoming := core.NewVec3(math.Sin(math.Pi/4), -math.Cos(math.Pi/4), 0)
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), incoming)
	hit := testHit(core.NewVec3(0, 1, 0))

	sinRefracted := math.Sin(math.Pi/4) / 1.5
	refracted := 0
	for i := 0; i < 1000; i++ {
		scatter, _ := glass.Scatter(rayIn, hit, random)
		dir := scatter.Scattered.Direction.Normalize()
		if dir.Y < 0 {
			// Transmitted: check the refraction angle
			refracted++
			sinTheta := math.Abs(dir.X)
			if math.Abs(sinTheta-sinRefracted) > 1e-9 {
				t.Fatalf("sin(refraction angle) = %v, want %v", sinTheta, sinRefracted)
			}
		}
	}
	if refracted == 0 {
		t.Error("no ray was ever refracted at 45 degrees")
	}
}

func TestReflectanceSchlick(t *testing.T) {
	// Normal incidence: reflectance equals r0 = ((1-n)/(1+n))^2
	r0 := math.Pow((1-1.5)/(1+1.5), 2)
	if got := Reflectance(1.0, 1.5); math.Abs(got-r0) > 1e-12 {
		t.Errorf("normal incidence reflectance = %v, want %v", got, r0)
	}

	// Grazing incidence: reflectance approaches 1
	if got := Reflectance(0.0, 1.5); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("grazing reflectance = %v, want 1", got)
	}
}
