package params

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDefaultsValid(t *testing.T) {
	if err := Defaults().Validate(); err != nil {
		t.Fatalf("Defaults().Validate() = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		edit func(*Parameters)
	}{
		{"angle high", func(p *Parameters) { p.Angle = 4 }},
		{"angle low", func(p *Parameters) { p.Angle = -4 }},
		{"angle nan", func(p *Parameters) { p.Angle = math.NaN() }},
		{"depth zero", func(p *Parameters) { p.Depth = 0 }},
		{"depth high", func(p *Parameters) { p.Depth = 7 }},
		{"sides low", func(p *Parameters) { p.Sides = 2 }},
		{"sides high", func(p *Parameters) { p.Sides = 11 }},
		{"radius low", func(p *Parameters) { p.Radius = 0.05 }},
		{"radius high", func(p *Parameters) { p.Radius = 1.5 }},
	}
	for _, tc := range tests {
		p := Defaults()
		tc.edit(&p)
		err := p.Validate()
		if !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("%s: Validate() = %v; want ErrOutOfRange", tc.name, err)
		}
		if err := p.Clamp().Validate(); err != nil {
			t.Fatalf("%s: Clamp().Validate() = %v", tc.name, err)
		}
	}
}

func TestClampBounds(t *testing.T) {
	got := Parameters{Angle: 10, Depth: 99, Sides: -1, Radius: 0}.Clamp()
	want := Parameters{Angle: MaxAngle, Depth: MaxDepth, Sides: MinSides, Radius: MinRadius}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Clamp mismatch (-want +got):\n%s", diff)
	}
}

func TestControlStep(t *testing.T) {
	p := Defaults()
	approx := cmpopts.EquateApprox(0, 1e-9)

	got := ControlAngle.Step(p, 1)
	if diff := cmp.Diff(0.25, got.Angle, approx); diff != "" {
		t.Fatalf("angle step:\n%s", diff)
	}
	got = ControlRadius.Step(p, -3)
	if diff := cmp.Diff(0.45, got.Radius, approx); diff != "" {
		t.Fatalf("radius step:\n%s", diff)
	}
	if got = ControlDepth.Step(p, 1); got.Depth != 3 {
		t.Fatalf("depth step = %d; want 3", got.Depth)
	}
	if got = ControlSides.Step(p, -1); got.Sides != 3 {
		t.Fatalf("sides step = %d; want 3", got.Sides)
	}
	if got = ControlSides.Step(got, -1); got.Sides != MinSides {
		t.Fatalf("sides below min = %d; want %d", got.Sides, MinSides)
	}
	if got = ControlWireframe.Step(p, -1); !got.Wireframe {
		t.Fatalf("wireframe toggle did not flip")
	}
	if got = ControlUniform.Step(p, 1); !got.Uniform {
		t.Fatalf("uniform toggle did not flip")
	}
	if got = ControlDepth.Step(p, 0); got != p {
		t.Fatalf("zero step changed parameters: %+v", got)
	}

	hi := p
	hi.Angle = 3.1
	if got = ControlAngle.Step(hi, 1); got.Angle != MaxAngle {
		t.Fatalf("angle above max = %v; want %v", got.Angle, MaxAngle)
	}
}

func TestControls(t *testing.T) {
	cs := Controls()
	if len(cs) != 6 {
		t.Fatalf("len(Controls())=%d; want 6", len(cs))
	}
	toggles := 0
	for _, c := range cs {
		if c.String() == "" || c.Format(Defaults()) == "" {
			t.Fatalf("control %d has empty label or value", c)
		}
		if c.IsToggle() {
			toggles++
		}
	}
	if toggles != 2 {
		t.Fatalf("toggles=%d; want 2", toggles)
	}
	if got := ControlWireframe.Format(Parameters{Wireframe: true}); got != "[x]" {
		t.Fatalf("wireframe format=%q", got)
	}
}

func TestSurface(t *testing.T) {
	var seen []Parameters
	var states []State
	var s *Surface
	s = NewSurface(Defaults(), func(p Parameters) error {
		seen = append(seen, p)
		states = append(states, s.State())
		return nil
	})
	if s.State() != StateIdle || s.Runs() != 0 {
		t.Fatalf("new surface state=%v runs=%d", s.State(), s.Runs())
	}

	if err := s.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if err := s.Step(ControlSides, 1); err != nil {
		t.Fatalf("Step: %v", err)
	}
	if err := s.Set(s.Params()); err != nil {
		t.Fatalf("Set same: %v", err)
	}
	if err := s.Update(func(p *Parameters) { p.Depth = 42 }); err != nil {
		t.Fatalf("Update: %v", err)
	}

	if s.Runs() != 4 || len(seen) != 4 {
		t.Fatalf("runs=%d seen=%d; want 4", s.Runs(), len(seen))
	}
	for i, st := range states {
		if st != StateDirty {
			t.Fatalf("run %d saw state %v; want dirty", i, st)
		}
	}
	if s.State() != StateIdle {
		t.Fatalf("state after runs=%v; want idle", s.State())
	}
	if seen[1].Sides != 5 || seen[2].Sides != 5 {
		t.Fatalf("sides seen=%d,%d; want 5,5", seen[1].Sides, seen[2].Sides)
	}
	if seen[3].Depth != MaxDepth {
		t.Fatalf("depth=%d; want clamped to %d", seen[3].Depth, MaxDepth)
	}
}

func TestSurfaceError(t *testing.T) {
	boom := errors.New("boom")
	s := NewSurface(Defaults(), func(Parameters) error { return boom })
	if err := s.Refresh(); !errors.Is(err, boom) {
		t.Fatalf("Refresh() = %v; want boom", err)
	}
	if s.State() != StateIdle {
		t.Fatalf("state after error=%v; want idle", s.State())
	}
}
