// Command marquee renders a demo chat feed in the terminal.
//
// Usage:
//
//	marquee [flags]
//
// Flags:
//
//	-config string   Path to a TOML settings file (watched for changes)
//	-log-dir string  Directory to write chat logs into (disabled if omitted)
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/mwielgus/marquee"
	bt "github.com/mwielgus/marquee/bubbletea"
	"github.com/mwielgus/marquee/chatlog"
	"github.com/mwielgus/marquee/config"
	"github.com/mwielgus/marquee/term"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "marquee: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", "", "Path to a TOML settings file (watched for changes)")
		logDir     = flag.String("log-dir", "", "Directory to write chat logs into")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Settings: from file when given, defaults otherwise.
	settings := marquee.DefaultSettings()
	if *configPath != "" {
		store, err := config.Open(*configPath)
		if err != nil {
			return err
		}
		if err := store.Watch(ctx, nil); err != nil {
			return err
		}
		settings = store.Snapshot()
	}

	store := sampleEmotes()
	messages := sampleMessages(store)

	if *logDir != "" {
		if err := writeLogs(*logDir, messages); err != nil {
			return err
		}
	}

	pane := bt.New(messages, bt.Config{
		Theme:     term.DetectTheme(),
		Settings:  settings,
		Tokenizer: store,
		Flags:     marquee.FlagsDefault | marquee.FlagModeratorTools,
	})
	if err := bt.Run(ctx, pane); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}

func writeLogs(dir string, messages []*marquee.Message) error {
	c, err := chatlog.Open(dir, "twitch", "demo")
	if err != nil {
		return err
	}
	defer c.Close()
	for _, m := range messages {
		if err := c.AddMessage(m); err != nil {
			return err
		}
	}
	return nil
}
