package lingoclip

import (
	"fmt"
	"strconv"
	"strings"
)

// ComposeSubtitleID builds the stable composite identifier of a subtitle
// fragment: the source file name joined with its sequence index. Callers
// construct these directly to fetch a specific neighbor without searching.
func ComposeSubtitleID(srtFile string, index int) string {
	return fmt.Sprintf("%s_%d", srtFile, index)
}

// ParseSubtitleID splits a composite identifier back into the source file
// name and sequence index. The index is the part after the last underscore,
// since file names may themselves contain underscores.
func ParseSubtitleID(id string) (string, int, error) {
	pos := strings.LastIndex(id, "_")
	if pos < 1 || pos == len(id)-1 {
		return "", 0, fmt.Errorf("malformed subtitle id %q", id)
	}
	index, err := strconv.Atoi(id[pos+1:])
	if err != nil {
		return "", 0, fmt.Errorf("malformed subtitle id %q", id)
	}
	return id[:pos], index, nil
}
