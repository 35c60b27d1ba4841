package chatlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// Prune removes log files under baseDir whose date, taken from the
// <channel>-YYYY-MM-DD.log file name, falls before cutoff. Files whose
// names carry no parseable date are left alone. The removed paths are
// returned relative to baseDir.
func Prune(baseDir string, cutoff time.Time) ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(baseDir), "**/*.log")
	if err != nil {
		return nil, fmt.Errorf("chatlog: prune %s: %w", baseDir, err)
	}

	day := cutoff.Format(dateLayout)
	var removed []string
	for _, rel := range matches {
		date, ok := fileDate(rel)
		if !ok || date >= day {
			continue
		}
		if err := os.Remove(filepath.Join(baseDir, rel)); err != nil {
			return removed, fmt.Errorf("chatlog: prune %s: %w", rel, err)
		}
		removed = append(removed, rel)
	}
	return removed, nil
}

// fileDate extracts the trailing YYYY-MM-DD from a log file name. Dates
// in this layout compare correctly as strings.
func fileDate(path string) (string, bool) {
	name := strings.TrimSuffix(filepath.Base(path), ".log")
	if len(name) < len(dateLayout)+1 {
		return "", false
	}
	date := name[len(name)-len(dateLayout):]
	if _, err := time.Parse(dateLayout, date); err != nil {
		return "", false
	}
	return date, true
}
