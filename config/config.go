// Package config loads display settings from a TOML file and keeps a
// live snapshot that render passes read without locking. The file may be
// edited while the program runs; Watch picks the change up and swaps the
// snapshot atomically.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sync/atomic"

	"github.com/BurntSushi/toml"

	"github.com/mwielgus/marquee"
	"github.com/mwielgus/marquee/moderation"
)

// File is the TOML schema.
type File struct {
	EmoteScale        float64  `toml:"emote_scale"`
	TimestampFormat   string   `toml:"timestamp_format"`
	ModerationActions []string `toml:"moderation_actions"`
}

// Store holds the current settings snapshot. Snapshot is safe to call
// from any goroutine; Reload and Watch swap the snapshot as a whole, so
// a render pass started before a reload keeps its old settings.
type Store struct {
	path string
	cur  atomic.Pointer[marquee.Settings]
}

// Open reads the file at path and returns a store serving its settings.
// A missing file is not an error: the store starts from defaults and
// picks the file up once it appears (via Reload or Watch).
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	settings := marquee.DefaultSettings()
	s.cur.Store(&settings)

	if err := s.Reload(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return s, nil
}

// Snapshot returns the current settings.
func (s *Store) Snapshot() marquee.Settings {
	return *s.cur.Load()
}

// Reload re-reads the file and swaps the snapshot. On error the previous
// snapshot stays in place.
func (s *Store) Reload() error {
	var f File
	if _, err := toml.DecodeFile(s.path, &f); err != nil {
		return fmt.Errorf("config: load %s: %w", s.path, err)
	}
	settings := f.Settings()
	s.cur.Store(&settings)
	return nil
}

// Settings converts the decoded file into a settings snapshot, filling
// defaults for absent fields and deriving moderation action display.
func (f File) Settings() marquee.Settings {
	s := marquee.DefaultSettings()
	if f.EmoteScale > 0 {
		s.EmoteScale = f.EmoteScale
	}
	if f.TimestampFormat != "" {
		s.TimestampFormat = f.TimestampFormat
	}
	for _, invocation := range f.ModerationActions {
		if invocation == "" {
			continue
		}
		s.ModerationActions = append(s.ModerationActions, moderation.ParseAction(invocation))
	}
	return s
}
