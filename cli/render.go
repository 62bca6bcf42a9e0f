package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/cssckit/cssc/ast"
	"github.com/cssckit/cssc/printer"
	"github.com/cssckit/cssc/sourcemap"
	"github.com/cssckit/cssc/telemetry"
)

type RenderCmd struct {
	File   FileOrStdin `help:"IR input filename (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Output string      `help:"Write CSS to this file instead of stdout." short:"o"`
	Map    string      `help:"Write a source map to this file (enables destination tracking)."`
	Source string      `help:"Logical source filename recorded in the source map."`
}

func (cmd *RenderCmd) Run(ctx *kong.Context, globals *Globals) error {
	if err := cmd.File.EnsureContents(); err != nil {
		return err
	}

	cfg, err := LoadConfig(globals.Config)
	if err != nil {
		return err
	}
	cmd.applyDefaults(cfg)

	runCtx := context.Background()

	var collector *telemetry.TimingCollector
	if globals.Telemetry {
		collector = telemetry.NewTimingCollector()
		runCtx = telemetry.WithCollector(runCtx, collector)

		defer func() {
			_, _ = fmt.Fprintln(ctx.Stderr)
			collector.Report(ctx.Stderr)
		}()
	}

	css, forest, err := renderDocument(runCtx, cmd.File.Contents, cmd.Map != "")
	if err != nil {
		printError(ctx.Stderr, NewErrorRenderer(cmd.File.Contents).Render(err))
		return fmt.Errorf("failed to render %s", cmd.File.GetAbsoluteFilename())
	}

	if err := cmd.writeCSS(ctx, css); err != nil {
		return err
	}

	if cmd.Map != "" {
		if err := cmd.writeMap(runCtx, forest); err != nil {
			return err
		}
	}

	return nil
}

// applyDefaults fills unset flags from the config file.
func (cmd *RenderCmd) applyDefaults(cfg *Config) {
	if cmd.Output == "" {
		cmd.Output = cfg.Output
	}
	if cmd.Map == "" {
		cmd.Map = cfg.Map
	}
	if cmd.Source == "" {
		cmd.Source = cfg.Source
	}
}

func (cmd *RenderCmd) writeCSS(ctx *kong.Context, css string) error {
	if cmd.Output == "" {
		_, err := fmt.Fprint(ctx.Stdout, css)
		return err
	}

	if err := os.WriteFile(cmd.Output, []byte(css), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	printSuccess(ctx.Stderr, fmt.Sprintf("Wrote %s", pathStyle.Render(cmd.Output)))
	return nil
}

func (cmd *RenderCmd) writeMap(runCtx context.Context, forest []ast.Node) error {
	stop := telemetry.FromContext(runCtx).Start("sourcemap")
	defer stop()

	source := cmd.Source
	if source == "" {
		source = cmd.File.GetAbsoluteFilename()
	}

	m := sourcemap.Generate(forest, source)
	if cmd.Output != "" {
		m.File = filepath.Base(cmd.Output)
	}

	data, err := m.JSON()
	if err != nil {
		return fmt.Errorf("failed to encode source map: %w", err)
	}

	if err := os.WriteFile(cmd.Map, data, 0644); err != nil {
		return fmt.Errorf("failed to write source map: %w", err)
	}

	return nil
}

// renderDocument decodes an IR document and prints it to CSS. The returned
// forest carries destination mappings when track is set.
func renderDocument(ctx context.Context, data []byte, track bool) (string, []ast.Node, error) {
	tel := telemetry.FromContext(ctx)

	stop := tel.Start("decode")
	forest, err := ast.UnmarshalForest(data)
	stop()
	if err != nil {
		return "", nil, err
	}

	stop = tel.Start("print")
	css := printer.New(printer.WithDestinations(track)).Print(forest)
	stop()

	return css, forest, nil
}
