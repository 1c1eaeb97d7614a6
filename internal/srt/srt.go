package srt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Cue is one parsed subtitle block: its sequence number, timing in
// seconds and joined text lines.
type Cue struct {
	Index int
	Start float64
	End   float64
	Text  string
}

// Parse reads SRT cues:
//
//	1
//	00:00:00,000 --> 00:00:01,830
//	I'm happy to
//	have you here today.
//
// Blocks are separated by blank lines. Malformed timestamp lines abort
// the parse; stray text before the first sequence number is skipped.
func Parse(r io.Reader) ([]Cue, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var cues []Cue
	var cur *Cue
	var text []string

	flush := func() {
		if cur == nil {
			return
		}
		cur.Text = strings.Join(text, " ")
		cues = append(cues, *cur)
		cur = nil
		text = nil
	}

	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if first {
			line = strings.TrimPrefix(line, "\ufeff")
			first = false
		}

		if line == "" {
			flush()
			continue
		}

		if cur == nil {
			index, err := strconv.Atoi(line)
			if err != nil {
				continue
			}
			cur = &Cue{Index: index}
			continue
		}

		if strings.Contains(line, "-->") {
			parts := strings.SplitN(line, "-->", 2)
			start, err := parseTimestamp(strings.TrimSpace(parts[0]))
			if err != nil {
				return nil, err
			}
			end, err := parseTimestamp(strings.TrimSpace(parts[1]))
			if err != nil {
				return nil, err
			}
			cur.Start = start
			cur.End = end
			continue
		}

		text = append(text, line)
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cues, nil
}

// parseTimestamp converts "HH:MM:SS,mmm" to seconds. A dot separator is
// tolerated since some tools emit it.
func parseTimestamp(ts string) (float64, error) {
	ts = strings.Replace(ts, ".", ",", 1)
	var h, m, s, ms int
	_, err := fmt.Sscanf(ts, "%d:%d:%d,%d", &h, &m, &s, &ms)
	if err != nil {
		return 0, fmt.Errorf("malformed timestamp %q", ts)
	}
	return float64(h*3600+m*60+s) + float64(ms)/1000, nil
}
