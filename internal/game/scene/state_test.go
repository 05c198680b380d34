package scene

import "testing"

func TestEffectString(t *testing.T) {
	tests := []struct {
		e    Effect
		want string
	}{
		{EffectNone, "none"},
		{EffectCloud, "cloud"},
		{EffectTree | EffectCloud | EffectSnow, "cloud|snow|tree"},
		{Polyhedra, "square_pyramid|octahedron|triangular_pyramid"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.e.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStateFlagsIndependent(t *testing.T) {
	s := NewState()
	s.Show(EffectCloud | EffectSnow)
	s.Show(EffectTree)

	if !s.IsActive(EffectCloud|EffectSnow) || !s.IsActive(EffectTree) {
		t.Fatalf("expected cloud, snow and tree active, got %s", s.Active)
	}

	s.Hide(EffectSnow)
	if s.IsActive(EffectSnow) {
		t.Error("snow still active after Hide")
	}
	if !s.IsActive(EffectCloud) || !s.IsActive(EffectTree) {
		t.Error("Hide(snow) affected other effects")
	}
	if s.IsActive(EffectNone) {
		t.Error("IsActive(EffectNone) should be false")
	}
}

func TestNewState(t *testing.T) {
	s := NewState()
	if s.Active != EffectNone {
		t.Errorf("Active = %s, want none", s.Active)
	}
	if s.Octahedron.Scale.Y != 3 {
		t.Errorf("octahedron scale.y = %v, want 3", s.Octahedron.Scale.Y)
	}
	if s.Bouncer.Scale.Z != 1 || s.BounceDir != -1 {
		t.Errorf("bouncer = %+v dir %v", s.Bouncer, s.BounceDir)
	}
}

func TestIsActiveOnSnapshot(t *testing.T) {
	d := newTestDirector(t, 1, Options{})
	d.Update(0)
	d.Update(10000)

	// State() returns a copy; querying it must not need an addressable value.
	if !d.State().IsActive(EffectCloud | EffectSnow) {
		t.Errorf("Active = %s, want cloud|snow", d.State().Active)
	}
	if d.State().IsActive(EffectSnowman) {
		t.Error("snowman active before its cue")
	}
}
