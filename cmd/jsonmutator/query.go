package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: query requires a gjson path and at most one file", cli.ErrUsage)
	}
	d, err := cfg.readDoc(fileArg(args, 1))
	if err != nil {
		return err
	}
	v, ok := d.Query(args[0])
	if !ok {
		return cli.ExitCodeErr(1)
	}
	return cfg.writeValue(cc.Out, v)
}

func jq(cfg *JQConfig, cc *cli.Context, args []string) error {
	args, err := cfg.JQ.Parse(cc, args)
	if err != nil {
		cfg.JQ.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: jq requires a program and at most one file", cli.ErrUsage)
	}
	d, err := cfg.readDoc(fileArg(args, 1))
	if err != nil {
		return err
	}
	results, err := d.JQ(args[0])
	if err != nil {
		return err
	}
	for _, v := range results {
		if err := cfg.writeValue(cc.Out, v); err != nil {
			return err
		}
	}
	return nil
}

func eval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: eval requires an expression and at most one file", cli.ErrUsage)
	}
	d, err := cfg.readDoc(fileArg(args, 1))
	if err != nil {
		return err
	}
	v, err := d.Eval(args[0])
	if err != nil {
		return err
	}
	return cfg.writeValue(cc.Out, v)
}
