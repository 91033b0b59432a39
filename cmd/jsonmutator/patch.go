package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: patch requires a patch file and at most one file", cli.ErrUsage)
	}
	ops, err := readInput(args[0])
	if err != nil {
		return err
	}
	d, err := cfg.readDoc(fileArg(args, 1))
	if err != nil {
		return err
	}
	if cfg.Merge {
		err = d.ApplyMergePatch(ops)
	} else {
		err = d.ApplyPatch(ops)
	}
	if err != nil {
		return fmt.Errorf("error applying %s: %w", args[0], err)
	}
	return cfg.writeDoc(cc.Out, d)
}
