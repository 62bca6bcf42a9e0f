package cli

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"
)

type InitCmd struct {
	Force bool `help:"Overwrite an existing config file." short:"f"`
}

func (cmd *InitCmd) Run(ctx *kong.Context, globals *Globals) error {
	path := globals.Config

	if _, err := os.Stat(path); err == nil && !cmd.Force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	}

	if !isTerminal() {
		return fmt.Errorf("init needs an interactive terminal; write %s by hand instead", path)
	}

	cfg := &Config{}
	withMap := true

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Output file").
				Description("CSS file to write (empty for stdout).").
				Value(&cfg.Output),
			huh.NewConfirm().
				Title("Generate source maps?").
				Value(&withMap),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Source map file").
				Value(&cfg.Map),
			huh.NewInput().
				Title("Logical source name").
				Description("Recorded in the source map's sources list.").
				Value(&cfg.Source),
		).WithHideFunc(func() bool { return !withMap }),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("failed to read responses: %w", err)
	}

	if !withMap {
		cfg.Map = ""
		cfg.Source = ""
	}

	if err := cfg.Save(path); err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Wrote %s", pathStyle.Render(path)))
	return nil
}
