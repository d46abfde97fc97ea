package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/fchimpan/kusa-blocks/internal/config"
	"github.com/fchimpan/kusa-blocks/internal/tui"
)

func run(ctx context.Context, deps Deps, cfg config.Config, seed uint64) error {
	if deps.RunTUI == nil {
		return fmt.Errorf("deps.RunTUI is nil")
	}
	if deps.Stdout == nil {
		return fmt.Errorf("deps.Stdout is nil")
	}

	res, err := deps.RunTUI(ctx, cfg, seed)
	if err != nil {
		return fmt.Errorf("failed to run game: %w", err)
	}
	printSummary(deps.Stdout, res)
	return nil
}

func printSummary(w io.Writer, res tui.Result) {
	label := color.New(color.Faint)
	value := color.New(color.Bold)
	score := color.New(color.Bold, color.FgYellow)

	status := color.GreenString("quit")
	if res.GameOver {
		status = color.RedString("game over")
	}

	fmt.Fprintf(w, "%s  %s %s  %s %s  %s %s  %s %s\n",
		status,
		label.Sprint("score"), score.Sprint(humanize.Comma(int64(res.Score))),
		label.Sprint("lines"), value.Sprint(humanize.Comma(int64(res.Lines))),
		label.Sprint("level"), value.Sprint(res.Level),
		label.Sprint("seed"), value.Sprint(res.Seed),
	)
}
