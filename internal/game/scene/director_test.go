package scene

import (
	"math/rand/v2"
	"testing"

	"github.com/Faultbox/snowfall/internal/engine/camera"
	"github.com/Faultbox/snowfall/internal/engine/framebuffer"
	"github.com/Faultbox/snowfall/internal/engine/model"
	"github.com/Faultbox/snowfall/internal/engine/projection"
	"github.com/Faultbox/snowfall/internal/engine/raster"
)

const (
	testWidth  = 1280
	testHeight = 1024
	frameMs    = 33
)

func newTestDirector(t *testing.T, seed uint64, opts Options) *Director {
	t.Helper()
	fb, err := framebuffer.New(testWidth, testHeight)
	if err != nil {
		t.Fatal(err)
	}
	d, err := NewDirector(raster.New(fb, rand.New(rand.NewPCG(seed, seed))), opts)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestNewDirectorErrors(t *testing.T) {
	if _, err := NewDirector(nil, Options{}); err == nil {
		t.Error("expected error for nil rasterizer")
	}

	fb, _ := framebuffer.New(10, 10)
	r := raster.New(fb, rand.New(rand.NewPCG(1, 1)))
	if _, err := NewDirector(r, Options{Script: []Cue{{At: 5}, {At: 1}}}); err == nil {
		t.Error("expected error for unsorted script")
	}
}

func TestDirectorFirstFrame(t *testing.T) {
	d := newTestDirector(t, 1, Options{})
	d.Update(12345)

	if d.Elapsed() != 0 {
		t.Errorf("Elapsed() = %d, want 0", d.Elapsed())
	}
	s := d.State()
	if s.Active != EffectCloud {
		t.Errorf("Active = %s, want cloud", s.Active)
	}
	if s.CloudX != scrollStep {
		t.Errorf("CloudX = %d, want %d", s.CloudX, scrollStep)
	}
	if d.FrameBuffer().CountNot(framebuffer.Black) == 0 {
		t.Error("first frame drew nothing")
	}
}

func TestDirectorElapsedFromFirstUpdate(t *testing.T) {
	d := newTestDirector(t, 1, Options{})
	d.Update(5000)
	d.Update(5000 + 10000)

	if d.Elapsed() != 10000 {
		t.Errorf("Elapsed() = %d, want 10000", d.Elapsed())
	}
	if !d.State().IsActive(EffectCloud | EffectSnow) {
		t.Errorf("Active = %s, want cloud|snow", d.State().Active)
	}
	if d.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", d.Frames())
	}
}

func TestDirectorStarCut(t *testing.T) {
	d := newTestDirector(t, 7, Options{})
	d.Update(0)
	d.Update(30000)
	if !d.State().IsActive(EffectSnowman) {
		t.Fatalf("Active = %s, want snowman", d.State().Active)
	}

	d.Update(48000)
	s := d.State()
	if s.Active != EffectStar {
		t.Fatalf("Active = %s, want star only", s.Active)
	}
	if s.StarLayout != 0 || s.StarSince != 48000 {
		t.Errorf("star layout %d since %d", s.StarLayout, s.StarSince)
	}

	fb := d.FrameBuffer()
	yellow := 0
	for _, p := range fb.Pixels() {
		switch framebuffer.Color(p) {
		case framebuffer.Black:
		case framebuffer.Yellow:
			yellow++
		default:
			t.Fatalf("unexpected color %#08x after cut", p)
		}
	}
	if yellow == 0 {
		t.Error("no star drawn")
	}
}

func TestDirectorStarsAppearOverTime(t *testing.T) {
	d := newTestDirector(t, 7, Options{})
	d.Update(0)
	d.Update(48000)
	one := d.FrameBuffer().CountNot(framebuffer.Black)

	d.Update(48700)
	three := d.FrameBuffer().CountNot(framebuffer.Black)
	if three <= one {
		t.Errorf("stars after 700ms drew %d pixels, first frame %d", three, one)
	}
}

func TestDirectorRunsToCompletion(t *testing.T) {
	d := newTestDirector(t, 3, Options{})

	var seen Effect
	for now := uint32(0); now <= 104000; now += frameMs {
		d.Update(now)
		seen |= d.State().Active
		if d.Finished() && now < 103000 {
			t.Fatalf("finished early at %dms", now)
		}
	}

	if seen != AllEffects {
		t.Errorf("effects seen = %s, want all", seen)
	}
	if !d.Finished() {
		t.Fatalf("not finished, active %s", d.State().Active)
	}
	if n := d.FrameBuffer().CountNot(framebuffer.Black); n != 0 {
		t.Errorf("%d pixels left after finale", n)
	}
}

func TestDirectorStateIndependentOfSeed(t *testing.T) {
	a := newTestDirector(t, 1, Options{})
	b := newTestDirector(t, 99, Options{})

	for now := uint32(0); now <= 95000; now += frameMs {
		a.Update(now)
		b.Update(now)
		if a.State() != b.State() {
			t.Fatalf("state diverged at %dms:\n%+v\n%+v", now, a.State(), b.State())
		}
	}
}

func TestScrollCountersStayInRange(t *testing.T) {
	d := newTestDirector(t, 5, Options{Script: []Cue{
		{At: 0, Name: "everything", Action: show(EffectCloud | EffectSnowman | EffectPolygons)},
	}})

	for i := 0; i < 2000; i++ {
		d.Update(uint32(i * frameMs))
		s := d.State()
		if s.CloudX < -70 || s.CloudX >= testWidth {
			t.Fatalf("frame %d: CloudX = %d", i, s.CloudX)
		}
		if s.SnowmanX < -70 || s.SnowmanX >= testWidth {
			t.Fatalf("frame %d: SnowmanX = %d", i, s.SnowmanX)
		}
		if s.PolygonY < -70 || s.PolygonY >= testHeight {
			t.Fatalf("frame %d: PolygonY = %d", i, s.PolygonY)
		}
	}
}

func TestPolygonGridAdvancesPerHexagon(t *testing.T) {
	d := newTestDirector(t, 5, Options{Script: []Cue{
		{At: 0, Name: "grid", Action: show(EffectPolygons)},
	}})
	d.Update(0)
	if got, want := d.State().PolygonY, 2*hexagonRows*raster.PolygonStep; got != want {
		t.Errorf("PolygonY = %d, want %d", got, want)
	}
}

func TestCustomCueFiresOnce(t *testing.T) {
	calls := 0
	d := newTestDirector(t, 1, Options{Script: []Cue{
		{At: 100, Name: "count", Action: func(*State) { calls++ }},
	}})
	for now := uint32(0); now < 1000; now += 10 {
		d.Update(now)
	}
	if calls != 1 {
		t.Errorf("action ran %d times, want 1", calls)
	}
	if !d.Finished() {
		t.Error("director should be finished with no effects active")
	}
}

func TestBouncerStaysInFront(t *testing.T) {
	s := NewState()
	p := projection.NewProjector(testWidth, testHeight, camera.Default())
	mesh := model.Octahedron()

	var tris []projection.Triangle
	for i := 0; i < 5000; i++ {
		updateBouncer(&s.Bouncer, &s.BounceDir)
		if x := s.Bouncer.Translation.X; x < -BounceLimit-2*bounceStep || x > BounceLimit+2*bounceStep {
			t.Fatalf("frame %d: translation.x = %v", i, x)
		}
		tris = p.Project(mesh, s.Bouncer, projection.AxisY, tris)
		for j, tri := range tris {
			if tri.Clipped {
				t.Fatalf("frame %d: triangle %d clipped, transform %+v", i, j, s.Bouncer)
			}
		}
	}
}

func TestBreathingPyramids(t *testing.T) {
	sq := projection.Identity()
	updateSquarePyramid(&sq, 0)
	if sq.Scale.X != 0.8 || sq.Translation.X != 0 {
		t.Errorf("square pyramid at t=0: %+v", sq)
	}
	if sq.Rotation.X != meshSpin || sq.Rotation.Y != meshSpin || sq.Rotation.Z != meshSpin {
		t.Errorf("square pyramid rotation = %+v", sq.Rotation)
	}

	tri := projection.Identity()
	updateTriangularPyramid(&tri, 0)
	if tri.Rotation.Y != 0 || tri.Rotation.X != meshSpin {
		t.Errorf("triangular pyramid rotation = %+v", tri.Rotation)
	}
}

func TestMeshEffectSkipsClipped(t *testing.T) {
	fb, _ := framebuffer.New(testWidth, testHeight)
	r := raster.New(fb, rand.New(rand.NewPCG(1, 1)))
	p := projection.NewProjector(testWidth, testHeight, camera.Default())
	m := newMeshEffect(model.Octahedron(), projection.AxesAll)
	fb.Clear(framebuffer.Black)

	behind := projection.Identity()
	behind.Translation.Z = -10
	m.draw(r, p, behind, fixed(framebuffer.White))
	if n := fb.CountNot(framebuffer.Black); n != 0 {
		t.Errorf("mesh behind the camera drew %d pixels", n)
	}

	m.draw(r, p, projection.Identity(), fixed(framebuffer.White))
	if fb.CountNot(framebuffer.Black) == 0 {
		t.Error("mesh in front of the camera drew nothing")
	}
}
