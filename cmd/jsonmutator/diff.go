package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/cybergodev/jsonmutator"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := cfg.readDoc(args[0])
	if err != nil {
		return err
	}
	b, err := cfg.readDoc(args[1])
	if err != nil {
		return err
	}

	if cfg.MergePatch {
		p, err := a.CreateMergePatch(b)
		if err != nil {
			return err
		}
		if err := cfg.writeJSON(cc.Out, p); err != nil {
			return err
		}
		if a.Equal(b) {
			return nil
		}
		return cli.ExitCodeErr(1)
	}

	lines := a.Diff(b)
	if len(lines) == 0 {
		return nil
	}
	if err := writeDiff(cc.Out, lines, cfg.useColor(cc.Out)); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

func writeDiff(w io.Writer, lines []jsonmutator.LineDiff, colored bool) error {
	if !colored {
		_, err := io.WriteString(w, jsonmutator.FormatDiff(lines))
		return err
	}
	for _, line := range lines {
		var err error
		switch line.Op {
		case jsonmutator.DiffInsert:
			_, err = fmt.Fprintln(w, color.GreenString("+ %s", line.Text))
		case jsonmutator.DiffDelete:
			_, err = fmt.Fprintln(w, color.RedString("- %s", line.Text))
		default:
			_, err = fmt.Fprintf(w, "  %s\n", line.Text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
