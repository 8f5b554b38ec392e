package clip

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// defaultNameLayout renders as MM-DD-HH-MM-SS.
const defaultNameLayout = "01-02-15-04-05"

// unsafeChars matches characters not safe for filenames: / \ : * ? < > | and whitespace
var unsafeChars = regexp.MustCompile(`[/\\:*?<>|\s]`)

// DefaultName returns the timestamp-derived name used when the user leaves the name blank.
func DefaultName(now time.Time) string {
	return "crushed-video-" + now.Format(defaultNameLayout)
}

// OutputName sanitizes a user supplied name, falling back to DefaultName.
// A trailing .mp4 is dropped because it is added back by OutputPath.
func OutputName(name string, now time.Time) string {
	name = strings.TrimSpace(name)
	name = strings.TrimSuffix(name, ".mp4")
	if name == "" {
		return DefaultName(now)
	}
	return unsafeChars.ReplaceAllString(name, "_")
}

// OutputPath returns <dir>/<name>.mp4.
func OutputPath(dir, name string) string {
	return filepath.Join(dir, name+".mp4")
}
