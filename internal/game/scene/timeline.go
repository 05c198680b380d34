package scene

import "fmt"

// Cue is a one-shot scene change fired once elapsed time reaches At.
type Cue struct {
	At     uint32 // ms since the first frame
	Name   string
	Cut    bool // clear the buffer when the cue fires
	Action func(*State)
}

// Timeline is an ordered script of cues.
type Timeline struct {
	cues []Cue
	next int
}

// NewTimeline validates that cues are sorted by At.
func NewTimeline(cues []Cue) (*Timeline, error) {
	for i := 1; i < len(cues); i++ {
		if cues[i].At < cues[i-1].At {
			return nil, fmt.Errorf("cue %d (%s at %dms) is before cue %d (%s at %dms)",
				i, cues[i].Name, cues[i].At, i-1, cues[i-1].Name, cues[i-1].At)
		}
	}
	return &Timeline{cues: cues}, nil
}

// Advance returns the cues crossed since the previous call, in order.
// Each cue is returned exactly once.
func (t *Timeline) Advance(elapsed uint32) []Cue {
	start := t.next
	for t.next < len(t.cues) && t.cues[t.next].At <= elapsed {
		t.next++
	}
	return t.cues[start:t.next]
}

// Done reports whether every cue has fired.
func (t *Timeline) Done() bool {
	return t.next >= len(t.cues)
}

// Len returns the number of cues in the script.
func (t *Timeline) Len() int {
	return len(t.cues)
}

// Fired returns how many cues have fired so far.
func (t *Timeline) Fired() int {
	return t.next
}
