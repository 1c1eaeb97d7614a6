package domain

import "time"

// Segment is one timeline unit derived from a subtitle fragment. It is
// never persisted; Source is a read-only reference back to the fragment
// it came from, used for file/index lookup when rendering.
type Segment struct {
	Source   *Subtitle
	Path     string
	Index    int
	Start    time.Duration
	End      time.Duration
	Duration time.Duration
	Selected bool
}

// SegmentFromSubtitle derives a segment, preserving the fragment's
// duration from its absolute source timing.
func SegmentFromSubtitle(sub *Subtitle) Segment {
	return Segment{
		Source:   sub,
		Path:     sub.SrtFile,
		Index:    sub.Index,
		Duration: time.Duration((sub.End - sub.Start) * float64(time.Second)),
		Selected: true,
	}
}

// Sequence is an ordered list of segments forming one playback timeline.
// After any mutation of the segment list, Recalculate must run so that
// adjacent segments stay contiguous.
type Sequence struct {
	Segments []Segment
}

func (s *Sequence) Append(seg Segment) {
	s.Segments = append(s.Segments, seg)
}

func (s *Sequence) Len() int { return len(s.Segments) }

// Recalculate lays the segments back to back: each keeps its duration and
// starts exactly where the previous one ends, regardless of how far apart
// the source fragments were in their files.
func (s *Sequence) Recalculate() {
	var at time.Duration
	for i := range s.Segments {
		seg := &s.Segments[i]
		seg.Start = at
		seg.End = at + seg.Duration
		at = seg.End
	}
}
