package manifest

import "testing"

func TestMediaURL(t *testing.T) {
	cases := []struct {
		base    string
		srtFile string
		index   int
		want    string
	}{
		{"http://media.example.com", "ep1.srt", 5, "http://media.example.com/ep1/4.ts"},
		{"http://media.example.com/", "ep1.srt", 5, "http://media.example.com/ep1/4.ts"},
		{"http://media.example.com", "ep1", 1, "http://media.example.com/ep1/0.ts"},
		{"http://media.example.com", "show.srt.srt", 2, "http://media.example.com/show.srt/1.ts"},
	}
	for _, tc := range cases {
		if got := MediaURL(tc.base, tc.srtFile, tc.index); got != tc.want {
			t.Fatalf("MediaURL(%q, %q, %d) = %q, want %q",
				tc.base, tc.srtFile, tc.index, got, tc.want)
		}
	}
}

func TestRender(t *testing.T) {
	refs := []Ref{
		{SrtFile: "ep1.srt", Index: 5},
		{SrtFile: "ep2.srt", Index: 1},
	}
	got := Render("http://media.example.com", refs)

	want := "#EXTM3U\n" +
		"#EXT-X-VERSION:3\n" +
		"#EXT-X-MEDIA-SEQUENCE:0\n" +
		"#EXT-X-TARGETDURATION:10\n" +
		"#EXT-X-DISCONTINUITY\n" +
		"#EXTINF:6,\n" +
		"http://media.example.com/ep1/4.ts\n" +
		"#EXT-X-DISCONTINUITY\n" +
		"#EXTINF:6,\n" +
		"http://media.example.com/ep2/0.ts\n" +
		"#EXT-X-ENDLIST\n"
	if got != want {
		t.Fatalf("playlist mismatch:\n got: %q\nwant: %q", got, want)
	}
}

func TestRenderEmpty(t *testing.T) {
	got := Render("http://media.example.com", nil)
	want := "#EXTM3U\n" +
		"#EXT-X-VERSION:3\n" +
		"#EXT-X-MEDIA-SEQUENCE:0\n" +
		"#EXT-X-TARGETDURATION:10\n" +
		"#EXT-X-ENDLIST\n"
	if got != want {
		t.Fatalf("empty playlist mismatch: %q", got)
	}
}

func TestRenderDeterministic(t *testing.T) {
	refs := []Ref{{SrtFile: "ep1.srt", Index: 3}, {SrtFile: "ep1.srt", Index: 3}}
	a := Render("http://m", refs)
	b := Render("http://m", refs)
	if a != b {
		t.Fatalf("identical input must render identical bytes")
	}
}
