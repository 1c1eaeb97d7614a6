package domain

import (
	"testing"
	"time"
)

func TestSegmentFromSubtitle(t *testing.T) {
	sub := &Subtitle{
		Index:   7,
		Start:   120.5,
		End:     123.0,
		SrtFile: "ep1.srt",
	}
	seg := SegmentFromSubtitle(sub)

	if seg.Path != "ep1.srt" || seg.Index != 7 {
		t.Fatalf("unexpected segment identity: %+v", seg)
	}
	if seg.Duration != 2500*time.Millisecond {
		t.Fatalf("duration must come from the source timing, got %v", seg.Duration)
	}
	if !seg.Selected {
		t.Fatalf("derived segments start selected")
	}
	if seg.Source != sub {
		t.Fatalf("segment must reference its source fragment")
	}
}

func TestSequenceRecalculate(t *testing.T) {
	var seq Sequence
	seq.Append(Segment{Duration: 2 * time.Second})
	seq.Append(Segment{Duration: 3 * time.Second})
	seq.Append(Segment{Duration: 1 * time.Second})
	seq.Recalculate()

	if seq.Len() != 3 {
		t.Fatalf("unexpected length %d", seq.Len())
	}
	var at time.Duration
	for i, seg := range seq.Segments {
		if seg.Start != at {
			t.Fatalf("segment %d starts at %v, want %v", i, seg.Start, at)
		}
		if seg.End != at+seg.Duration {
			t.Fatalf("segment %d ends at %v, want %v", i, seg.End, at+seg.Duration)
		}
		at = seg.End
	}
	if at != 6*time.Second {
		t.Fatalf("timeline must end at 6s, got %v", at)
	}
}

func TestSequenceRecalculateIdempotent(t *testing.T) {
	var seq Sequence
	seq.Append(Segment{Duration: 2 * time.Second, Start: 99 * time.Second, End: 101 * time.Second})
	seq.Recalculate()
	seq.Recalculate()

	if seq.Segments[0].Start != 0 || seq.Segments[0].End != 2*time.Second {
		t.Fatalf("recalculate must normalize stale absolute times: %+v", seq.Segments[0])
	}
}

func TestSubtitleCompositeID(t *testing.T) {
	sub := &Subtitle{SrtFile: "show_01.srt", Index: 3}
	if got := sub.CompositeID(); got != "show_01.srt_3" {
		t.Fatalf("unexpected composite id %q", got)
	}
}
