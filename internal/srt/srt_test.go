package srt

import (
	"strings"
	"testing"
)

const sample = `1
00:00:00,000 --> 00:00:01,830
I'm happy to
have you here today.

2
00:01:02,500 --> 00:01:04,000
Thanks for coming.
`

func TestParse(t *testing.T) {
	cues, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(cues) != 2 {
		t.Fatalf("expected 2 cues, got %d", len(cues))
	}

	if cues[0].Index != 1 || cues[0].Start != 0 || cues[0].End != 1.83 {
		t.Fatalf("unexpected first cue: %+v", cues[0])
	}
	if cues[0].Text != "I'm happy to have you here today." {
		t.Fatalf("text lines must join with spaces: %q", cues[0].Text)
	}
	if cues[1].Index != 2 || cues[1].Start != 62.5 || cues[1].End != 64 {
		t.Fatalf("unexpected second cue: %+v", cues[1])
	}
}

func TestParseBOMAndStrayText(t *testing.T) {
	input := "\ufeffstray header line\n\n" + sample
	cues, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(cues) != 2 || cues[0].Index != 1 {
		t.Fatalf("stray leading text must be skipped: %+v", cues)
	}
}

func TestParseDotMilliseconds(t *testing.T) {
	input := "1\n00:00:01.500 --> 00:00:02.250\nhi\n"
	cues, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(cues) != 1 || cues[0].Start != 1.5 || cues[0].End != 2.25 {
		t.Fatalf("dot separators must be tolerated: %+v", cues)
	}
}

func TestParseMissingTrailingBlank(t *testing.T) {
	input := "1\n00:00:00,000 --> 00:00:01,000\nlast cue"
	cues, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(cues) != 1 || cues[0].Text != "last cue" {
		t.Fatalf("the final cue must flush at EOF: %+v", cues)
	}
}

func TestParseMalformedTimestamp(t *testing.T) {
	input := "1\nnot a timestamp --> 00:00:01,000\nhi\n"
	if _, err := Parse(strings.NewReader(input)); err == nil {
		t.Fatalf("malformed timestamps must abort the parse")
	}
}

func TestParseEmpty(t *testing.T) {
	cues, err := Parse(strings.NewReader(""))
	if err != nil || len(cues) != 0 {
		t.Fatalf("empty input must yield no cues: %v %v", cues, err)
	}
}
