package manifest

import (
	"fmt"
	"strings"
)

// segmentDuration is the EXTINF value emitted for every chunk. The media
// chunks are fixed-duration; players resync on each discontinuity marker.
const segmentDuration = 6

const header = "#EXTM3U\n" +
	"#EXT-X-VERSION:3\n" +
	"#EXT-X-MEDIA-SEQUENCE:0\n" +
	"#EXT-X-TARGETDURATION:10\n"

const trailer = "#EXT-X-ENDLIST\n"

// Ref identifies one media chunk by its source file and subtitle index.
type Ref struct {
	SrtFile string
	Index   int
}

// MediaURL resolves a chunk reference to its media file: the ".srt"
// suffix is stripped from the source name and the chunk file name is the
// subtitle index minus one, since chunks are zero-indexed against
// one-indexed subtitles.
func MediaURL(base, srtFile string, index int) string {
	return fmt.Sprintf("%s/%s/%d.ts",
		strings.TrimSuffix(base, "/"),
		strings.TrimSuffix(srtFile, ".srt"),
		index-1,
	)
}

// Render produces the playlist text for the given chunk references, in
// order. Players require syntactic exactness, so output is byte-stable
// for identical input: one discontinuity marker, duration directive and
// URL per chunk between a fixed header and trailer.
func Render(base string, refs []Ref) string {
	var b strings.Builder
	b.WriteString(header)
	for _, ref := range refs {
		b.WriteString("#EXT-X-DISCONTINUITY\n")
		fmt.Fprintf(&b, "#EXTINF:%d,\n", segmentDuration)
		b.WriteString(MediaURL(base, ref.SrtFile, ref.Index))
		b.WriteByte('\n')
	}
	b.WriteString(trailer)
	return b.String()
}
