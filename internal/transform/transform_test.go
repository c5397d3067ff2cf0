package transform

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

func TestIdentityInstance(t *testing.T) {
	in := Instance{Scale: mgl32.Vec3{1, 1, 1}}
	got := ModelViewProjection(in, mgl32.Ident4())
	if !got.ApproxEqualThreshold(mgl32.Ident4(), eps) {
		t.Fatalf("got %v, want identity", got)
	}
}

func TestModelOrder(t *testing.T) {
	in := Instance{
		Position:  mgl32.Vec3{1.9, 0, -6},
		Scale:     mgl32.Vec3{1.45, 0.7, 1.25},
		RotationY: 60,
	}
	rot := mgl32.HomogRotate3DY(mgl32.DegToRad(in.RotationY))
	tr := mgl32.Translate3D(1.9, 0, -6)
	sc := mgl32.Scale3D(1.45, 0.7, 1.25)

	want := tr.Mul4(sc).Mul4(rot)
	if got := Model(in); !got.ApproxEqualThreshold(want, eps) {
		t.Fatalf("got %v, want %v", got, want)
	}

	rotatedFirst := rot.Mul4(tr).Mul4(sc)
	if want.ApproxEqualThreshold(rotatedFirst, eps) {
		t.Fatal("rotating before translating gave the same matrix")
	}
}

func TestModelMovesApex(t *testing.T) {
	in := Instance{Position: mgl32.Vec3{0, 0, -3}, Scale: mgl32.Vec3{0.7, 0.5, 0.5}, RotationY: 30}
	apex := Model(in).Mul4x1(mgl32.Vec4{0, 2, 0, 1})
	want := mgl32.Vec4{0, 1, -3, 1}
	if !apex.ApproxEqualThreshold(want, eps) {
		t.Fatalf("apex = %v, want %v", apex, want)
	}
}

func TestProjectionTracksAspect(t *testing.T) {
	wide := Projection(1920, 1080)
	square := Projection(800, 800)
	if wide.ApproxEqualThreshold(square, eps) {
		t.Fatal("projection ignores aspect ratio")
	}
	// [0] is f/aspect, [5] is f.
	f := 1 / math32.Tan(FieldOfView/2)
	if math32.Abs(wide[5]-f) > eps {
		t.Errorf("y scale = %v, want %v", wide[5], f)
	}
	if got, want := wide[0], f/(1920.0/1080.0); math32.Abs(got-want) > eps {
		t.Errorf("x scale = %v, want %v", got, want)
	}
}

func TestAspect(t *testing.T) {
	cases := []struct {
		w, h int
		want float32
	}{
		{1600, 800, 2},
		{800, 1600, 0.5},
		{800, 0, 1},
		{0, 0, 1},
	}
	for _, tc := range cases {
		if got := Aspect(tc.w, tc.h); got != tc.want {
			t.Errorf("Aspect(%d, %d) = %v, want %v", tc.w, tc.h, got, tc.want)
		}
	}
}

func TestRotateY(t *testing.T) {
	for _, deg := range []float32{0, 30, 60, 90, 180, -45, 270} {
		want := mgl32.HomogRotate3DY(mgl32.DegToRad(deg))
		if got := RotateY(deg); !got.ApproxEqualThreshold(want, eps) {
			t.Errorf("RotateY(%v) = %v, want %v", deg, got, want)
		}
	}
}
