package scene

import "testing"

func TestNewTimelineRejectsUnsorted(t *testing.T) {
	_, err := NewTimeline([]Cue{{At: 100, Name: "b"}, {At: 50, Name: "a"}})
	if err == nil {
		t.Fatal("expected error for cues out of order")
	}

	if _, err := NewTimeline([]Cue{{At: 0}, {At: 0}, {At: 10}}); err != nil {
		t.Fatalf("equal times should be allowed: %v", err)
	}
}

func TestTimelineAdvance(t *testing.T) {
	tl, err := NewTimeline([]Cue{
		{At: 0, Name: "a"},
		{At: 100, Name: "b"},
		{At: 100, Name: "c"},
		{At: 250, Name: "d"},
	})
	if err != nil {
		t.Fatal(err)
	}

	steps := []struct {
		elapsed uint32
		want    []string
	}{
		{0, []string{"a"}},
		{0, nil},
		{99, nil},
		{100, []string{"b", "c"}},
		{400, []string{"d"}},
		{1000, nil},
	}
	for _, s := range steps {
		got := tl.Advance(s.elapsed)
		if len(got) != len(s.want) {
			t.Fatalf("Advance(%d) returned %d cues, want %d", s.elapsed, len(got), len(s.want))
		}
		for i := range got {
			if got[i].Name != s.want[i] {
				t.Errorf("Advance(%d)[%d] = %s, want %s", s.elapsed, i, got[i].Name, s.want[i])
			}
		}
	}

	if !tl.Done() {
		t.Error("timeline should be done")
	}
	if tl.Fired() != tl.Len() {
		t.Errorf("Fired() = %d, want %d", tl.Fired(), tl.Len())
	}
}

func TestTimelineSkipsAhead(t *testing.T) {
	tl, err := NewTimeline(DefaultScript())
	if err != nil {
		t.Fatal(err)
	}
	got := tl.Advance(60000)
	if len(got) != 7 {
		t.Fatalf("Advance(60000) returned %d cues, want 7", len(got))
	}
	if got[len(got)-1].Name != "octahedron" {
		t.Errorf("last cue = %s, want octahedron", got[len(got)-1].Name)
	}
}

func TestDefaultScriptSorted(t *testing.T) {
	script := DefaultScript()
	if _, err := NewTimeline(script); err != nil {
		t.Fatal(err)
	}
	last := script[len(script)-1]
	if last.At != 103000 || !last.Cut {
		t.Errorf("last cue = %+v, want cut at 103000", last)
	}
	for _, c := range script {
		if c.Action == nil {
			t.Errorf("cue %s has no action", c.Name)
		}
	}
}
