// Package chatlog writes per-channel chat logs as dated plain-text files
// and prunes old ones.
package chatlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mwielgus/marquee"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// Channel appends messages for one chat channel to a log file named
// <channel>-<date>.log, rolling over to a new file when the local date
// changes. Special channels route to their own subdirectories:
// /whispers, /mentions and /live; everything else lands under
// Channels/<name>. The platform name, capitalized, is the top-level
// directory.
type Channel struct {
	name    string
	subDir  string
	baseDir string

	now  func() time.Time
	file *os.File
	date string
}

// Open creates (or resumes) the log for channelName under baseDir and
// writes the opening banner.
func Open(baseDir, platform, channelName string) (*Channel, error) {
	c := &Channel{
		name:    channelName,
		subDir:  subDirectory(platform, channelName),
		baseDir: baseDir,
		now:     time.Now,
	}
	if err := c.openFile(); err != nil {
		return nil, err
	}
	return c, nil
}

func subDirectory(platform, channelName string) string {
	var sub string
	switch {
	case strings.HasPrefix(channelName, "/whispers"):
		sub = "Whispers"
	case strings.HasPrefix(channelName, "/mentions"):
		sub = "Mentions"
	case strings.HasPrefix(channelName, "/live"):
		sub = "Live"
	default:
		sub = filepath.Join("Channels", channelName)
	}
	return filepath.Join(capitalize(platform), sub)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

func (c *Channel) openFile() error {
	now := c.now()
	c.date = now.Format(dateLayout)

	if c.file != nil {
		c.file.Close()
		c.file = nil
	}

	dir := filepath.Join(c.baseDir, c.subDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("chatlog: create %s: %w", dir, err)
	}

	name := strings.TrimPrefix(c.name, "/") + "-" + c.date + ".log"
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("chatlog: open %s: %w", name, err)
	}
	c.file = f

	return c.appendLine("# Start logging at " + now.Format(dateLayout+" "+timeLayout+" MST"))
}

// Path returns the file currently being written.
func (c *Channel) Path() string {
	if c.file == nil {
		return ""
	}
	return c.file.Name()
}

// AddMessage appends one message line. Messages flagged DoNotLog are
// skipped. Crossing midnight rolls the log over to the next day's file.
func (c *Channel) AddMessage(m *marquee.Message) error {
	if m.Flags.Has(marquee.MessageDoNotLog) {
		return nil
	}

	now := c.now()
	if d := now.Format(dateLayout); d != c.date {
		if err := c.openFile(); err != nil {
			return err
		}
	}

	var b strings.Builder
	if strings.HasPrefix(c.name, "/mentions") {
		b.WriteString("#" + m.ChannelName + " ")
	}
	b.WriteString("[" + now.Format(timeLayout) + "] ")
	b.WriteString(messageLine(m))
	return c.appendLine(b.String())
}

// messageLine renders the author and text portion of a log line. System
// lines have no author; localized names are shown ahead of the login
// name; replies get the parent chatter mentioned after the colon.
func messageLine(m *marquee.Message) string {
	var text string
	switch {
	case m.LoginName == "":
		text = m.MessageText
	case m.LocalizedName == "":
		text = m.LoginName + ": " + m.MessageText
	default:
		text = m.LocalizedName + " " + m.LoginName + ": " + m.MessageText
	}

	if m.Flags.Has(marquee.MessageReply) {
		if i := strings.IndexByte(text, ':'); i >= 0 {
			if parent := replyParentLogin(m); parent != "" {
				text = text[:i+1] + " @" + parent + text[i+1:]
			}
		}
	}
	return text
}

func replyParentLogin(m *marquee.Message) string {
	if m.ReplyParent != nil {
		return m.ReplyParent.LoginName
	}
	if m.ReplyThread != nil && m.ReplyThread.Root() != nil {
		return m.ReplyThread.Root().LoginName
	}
	return ""
}

// Close writes the closing banner and releases the file.
func (c *Channel) Close() error {
	if c.file == nil {
		return nil
	}
	err := c.appendLine("# Stop logging at " + c.now().Format(dateLayout+" "+timeLayout+" MST"))
	if cerr := c.file.Close(); err == nil {
		err = cerr
	}
	c.file = nil
	return err
}

func (c *Channel) appendLine(line string) error {
	if c.file == nil {
		return fmt.Errorf("chatlog: %s: %w", c.name, marquee.ErrLogClosed)
	}
	if _, err := c.file.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("chatlog: write %s: %w", c.file.Name(), err)
	}
	return nil
}
