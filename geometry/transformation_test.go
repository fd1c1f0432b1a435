package geometry

import (
	"math"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func assertNear(t *testing.T, got, want Point, epsilon float64) {
	t.Helper()
	if d := got.DistanceTo(want); d > epsilon {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

func TestIdentity(t *testing.T) {
	id := NewTransformation()
	p := Pt(3, -4)
	if got := p.Transform(id); got != p {
		t.Errorf("identity moved %s to %s", p, got)
	}
	if id.ScaleX() != 1 || id.ScaleY() != 1 || id.ScaleFactor() != 1 {
		t.Errorf("identity scales = %g, %g, %g", id.ScaleX(), id.ScaleY(), id.ScaleFactor())
	}
}

func TestCompositionOrder(t *testing.T) {
	const epsilon = 1e-12

	// the operation added last applies last
	tr := NewTransformation().Scale(2, 1).Translate(3, 0)
	assertNear(t, Pt(1, 1).Transform(tr), Pt(5, 1), epsilon)

	tr = NewTransformation().Translate(3, 0).Scale(2, 1)
	assertNear(t, Pt(1, 1).Transform(tr), Pt(8, 1), epsilon)
}

func TestTransformPointInPlace(t *testing.T) {
	tr := NewTransformation().Scale(2, 2).Translate(-1, 5)
	p := Pt(1, 2)
	tr.TransformPoint(&p)
	assertNear(t, p, Pt(1, 9), 1e-12)
}

func TestChainingDoesNotMutate(t *testing.T) {
	base := NewTransformation().Scale(2, 2)
	_ = base.Translate(10, 10)
	assertNear(t, Pt(1, 1).Transform(base), Pt(2, 2), 1e-12)
}

func TestScaleFactors(t *testing.T) {
	tests := []struct {
		name                   string
		tr                     Transformation
		wantX, wantY, wantMean float64
	}{
		{"uniform", NewTransformation().Scale(2, 2), 2, 2, 2},
		{"anisotropic", NewTransformation().Scale(3, 1), 3, 1, math.Sqrt(5)},
		{"negative", NewTransformation().Scale(-2, 2), 2, 2, 2},
		{"translation only", NewTransformation().Translate(5, -7), 1, 1, 1},
		{"accumulated", NewTransformation().Scale(2, 1).Translate(1, 1).Scale(2, 1), 4, 1, math.Sqrt(8.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const epsilon = 1e-12
			if d := math.Abs(tt.tr.ScaleX() - tt.wantX); d > epsilon {
				t.Errorf("ScaleX() = %g, want %g", tt.tr.ScaleX(), tt.wantX)
			}
			if d := math.Abs(tt.tr.ScaleY() - tt.wantY); d > epsilon {
				t.Errorf("ScaleY() = %g, want %g", tt.tr.ScaleY(), tt.wantY)
			}
			if d := math.Abs(tt.tr.ScaleFactor() - tt.wantMean); d > epsilon {
				t.Errorf("ScaleFactor() = %g, want %g", tt.tr.ScaleFactor(), tt.wantMean)
			}
		})
	}
}

func TestSizeIgnoresTranslation(t *testing.T) {
	tr := NewTransformation().Scale(3, 2).Translate(100, -50)
	got := Sz(1.5, 4).Transform(tr)
	if d := cmp.Diff(Sz(4.5, 8), got, cmpopts.EquateApprox(0, 1e-12)); d != "" {
		t.Error(d)
	}
}

func TestOneShotScale(t *testing.T) {
	assertNear(t, Pt(2, 3).Scale(2, -1), Pt(4, -3), 1e-12)
	if got := Sz(2, 3).Scale(0.5, 2); got != Sz(1, 6) {
		t.Errorf("Size.Scale = %s, want 1x6", got)
	}
	if got := Scale(Pt(1, 1), 4, 4); got != Pt(4, 4) {
		t.Errorf("Scale = %s, want (4, 4)", got)
	}
}

func TestTransformSeq(t *testing.T) {
	tr := NewTransformation().Translate(1, 1)
	pts := []Point{Pt(0, 0), Pt(1, 2), Pt(-1, -1)}
	got := slices.Collect(Transform(slices.Values(pts), tr))
	want := []Point{Pt(1, 1), Pt(2, 3), Pt(0, 0)}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestDistanceTo(t *testing.T) {
	if d := Pt(-11, 1).DistanceTo(Pt(-7, -2)); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}
