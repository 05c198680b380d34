package scene

// StarPlacement positions one star relative to the screen center. It appears
// DelayMs after its layout starts.
type StarPlacement struct {
	DelayMs uint32
	DX, DY  int
}

// StarLayouts are the star bursts shown between the polyhedra segments.
var StarLayouts = [][]StarPlacement{
	{{0, 0, 0}, {300, -300, -400}, {600, 200, 500}},
	{{0, 0, 0}, {300, -100, -300}, {600, 400, 400}},
	{{0, 0, 0}, {300, -550, -150}, {600, 430, 250}},
	{{0, 0, 0}, {300, -300, -140}, {600, 130, 150}},
}

// DefaultScript returns the full show. It ends with every effect cleared.
func DefaultScript() []Cue {
	return []Cue{
		{At: 0, Name: "clouds", Action: show(EffectCloud)},
		{At: 10000, Name: "snowfall", Action: show(EffectSnow)},
		{At: 30000, Name: "snowman", Action: show(EffectSnowman)},
		{At: 48000, Name: "stars-1", Cut: true, Action: all(
			hide(EffectCloud|EffectSnow|EffectSnowman),
			startStars(0, 48000),
		)},
		{At: 49000, Name: "square-pyramid", Cut: true, Action: all(hide(EffectStar), show(EffectSquarePyramid))},
		{At: 56000, Name: "stars-2", Cut: true, Action: all(hide(EffectSquarePyramid), startStars(1, 56000))},
		{At: 57000, Name: "octahedron", Cut: true, Action: all(hide(EffectStar), show(EffectOctahedron))},
		{At: 63500, Name: "stars-3", Cut: true, Action: all(hide(EffectOctahedron), startStars(2, 63500))},
		{At: 65000, Name: "triangular-pyramid", Cut: true, Action: all(hide(EffectStar), show(EffectTriangularPyramid))},
		{At: 71500, Name: "stars-4", Cut: true, Action: all(hide(EffectTriangularPyramid), startStars(3, 71500))},
		{At: 73000, Name: "polyhedra", Cut: true, Action: all(hide(EffectStar), show(Polyhedra))},
		{At: 80000, Name: "winter-tree", Cut: true, Action: all(
			hide(Polyhedra|EffectStar),
			show(EffectTree|EffectCloud|EffectSnow),
		)},
		{At: 85000, Name: "polygon-grid", Action: show(EffectPolygons)},
		{At: 90000, Name: "bouncer", Action: show(EffectBouncer)},
		{At: 103000, Name: "finale", Cut: true, Action: hide(AllEffects)},
	}
}

func show(e Effect) func(*State) {
	return func(s *State) { s.Show(e) }
}

func hide(e Effect) func(*State) {
	return func(s *State) { s.Hide(e) }
}

func startStars(layout int, at uint32) func(*State) {
	return func(s *State) {
		s.Show(EffectStar)
		s.StarLayout = layout
		s.StarAngle = 0
		s.StarSince = at
	}
}

func all(actions ...func(*State)) func(*State) {
	return func(s *State) {
		for _, a := range actions {
			a(s)
		}
	}
}
