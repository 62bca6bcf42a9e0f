package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"
)

type WatchCmd struct {
	File   string `help:"IR document to watch." arg:"" type:"existingfile"`
	Output string `help:"Write CSS to this file instead of stdout." short:"o"`
	Map    string `help:"Write a source map to this file (enables destination tracking)."`
	Source string `help:"Logical source filename recorded in the source map."`
}

func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	file, err := filepath.Abs(cmd.File)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory rather than the file: atomic saves replace the
	// file and would silently drop a file-level watch.
	if err := watcher.Add(filepath.Dir(file)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", file, err)
	}

	runCtx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	printInfof(ctx.Stderr, "Watching %s", pathStyle.Render(file))
	cmd.renderOnce(ctx, globals, file)

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	// Editors often write files in multiple steps.
	const debounceDelay = 100 * time.Millisecond

	for {
		select {
		case <-runCtx.Done():
			printInfof(ctx.Stderr, "Stopped watching")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != file {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}

			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				cmd.renderOnce(ctx, globals, file)
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stderr, fmt.Sprintf("watch error: %v", err))
		}
	}
}

// renderOnce renders the document once, reporting failures without ending
// the watch.
func (cmd *WatchCmd) renderOnce(ctx *kong.Context, globals *Globals, file string) {
	started := time.Now()

	render := &RenderCmd{
		Output: cmd.Output,
		Map:    cmd.Map,
		Source: cmd.Source,
	}
	render.File.Filename = file

	contents, err := os.ReadFile(file)
	if err != nil {
		printError(ctx.Stderr, fmt.Sprintf("failed to read %s: %v", file, err))
		return
	}
	render.File.Contents = contents

	if err := render.Run(ctx, globals); err != nil {
		printError(ctx.Stderr, err.Error())
		return
	}

	printSuccess(ctx.Stderr, fmt.Sprintf("Rendered in %s", time.Since(started).Round(time.Millisecond)))
}
