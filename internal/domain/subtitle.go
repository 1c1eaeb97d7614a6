package domain

import (
	"github.com/lingoclip/lingoclip"
)

// SubtitleSchema declares the subtitle document type. One document per
// aligned subtitle fragment; start/end are absolute seconds within the
// source file, sub_start/sub_end carry the finer word-level timing.
var SubtitleSchema = lingoclip.Schema{
	Index: "subtitles",
	Fields: []lingoclip.Field{
		{Name: "index", Type: lingoclip.FieldInt},
		{Name: "start", Type: lingoclip.FieldFloat},
		{Name: "end", Type: lingoclip.FieldFloat},
		{Name: "content", Type: lingoclip.FieldString},
		{Name: "sub_start", Type: lingoclip.FieldFloat},
		{Name: "sub_end", Type: lingoclip.FieldFloat},
		{Name: "srt_file", Type: lingoclip.FieldString},
		{Name: "ts_ready", Type: lingoclip.FieldBool, Default: false},
	},
}

// Subtitle is one aligned subtitle fragment from a source file.
type Subtitle struct {
	lingoclip.Document

	Index    int     `json:"index"`
	Start    float64 `json:"start"`
	End      float64 `json:"end"`
	Content  string  `json:"content"`
	SubStart float64 `json:"sub_start"`
	SubEnd   float64 `json:"sub_end"`
	SrtFile  string  `json:"srt_file"`
	TsReady  bool    `json:"ts_ready"`
}

func NewSubtitle() *Subtitle { return &Subtitle{} }

func (s *Subtitle) Schema() lingoclip.Schema { return SubtitleSchema }

func (s *Subtitle) MarshalFields() map[string]any {
	return map[string]any{
		"index":     s.Index,
		"start":     s.Start,
		"end":       s.End,
		"content":   s.Content,
		"sub_start": s.SubStart,
		"sub_end":   s.SubEnd,
		"srt_file":  s.SrtFile,
		"ts_ready":  s.TsReady,
	}
}

func (s *Subtitle) UnmarshalFields(fields map[string]any) {
	s.Index = asInt(fields["index"])
	s.Start = asFloat(fields["start"])
	s.End = asFloat(fields["end"])
	s.Content = asString(fields["content"])
	s.SubStart = asFloat(fields["sub_start"])
	s.SubEnd = asFloat(fields["sub_end"])
	s.SrtFile = asString(fields["srt_file"])
	s.TsReady = asBool(fields["ts_ready"])
}

// CompositeID is the externally meaningful primary key of this fragment.
func (s *Subtitle) CompositeID() string {
	return lingoclip.ComposeSubtitleID(s.SrtFile, s.Index)
}
