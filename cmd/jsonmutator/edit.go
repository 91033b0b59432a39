package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/cybergodev/jsonmutator"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: get requires a path and at most one file", cli.ErrUsage)
	}
	d, err := cfg.readDoc(fileArg(args, 1))
	if err != nil {
		return err
	}
	if text, ok := d.GetJSON(args[0], cfg.encodeConfig()); ok {
		return cfg.writeJSON(cc.Out, []byte(text))
	}
	if cfg.Default != "" {
		if !jsonmutator.Valid(cfg.Default) {
			return fmt.Errorf("%w: default %q is not valid JSON", cli.ErrUsage, cfg.Default)
		}
		return cfg.writeJSON(cc.Out, []byte(cfg.Default))
	}
	return cli.ExitCodeErr(1)
}

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("%w: set requires a path, a value and at most one file", cli.ErrUsage)
	}
	d, err := cfg.readDoc(fileArg(args, 2))
	if err != nil {
		return err
	}
	value, err := parseValue(args[1], cfg.Raw)
	if err != nil {
		return err
	}
	return cfg.writeDoc(cc.Out, d.Set(args[0], value))
}

// parseValue decodes a command-line value as JSON, or keeps it as a string
// when raw is set or the text is not JSON
func parseValue(arg string, raw bool) (any, error) {
	if raw || !jsonmutator.Valid(arg) {
		return arg, nil
	}
	holder := jsonmutator.FromJSON(`{"v":` + arg + `}`)
	v, ok := holder.Lookup("v")
	if !ok {
		return nil, fmt.Errorf("%w: could not decode value %q", cli.ErrUsage, arg)
	}
	if _, isMap := v.(map[string]any); isMap {
		// keeps the key order of the argument
		return holder.Sub("v"), nil
	}
	return v, nil
}

func forget(cfg *ForgetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Forget.Parse(cc, args)
	if err != nil {
		cfg.Forget.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: forget requires a path and at most one file", cli.ErrUsage)
	}
	d, err := cfg.readDoc(fileArg(args, 1))
	if err != nil {
		return err
	}
	return cfg.writeDoc(cc.Out, d.Forget(args[0]))
}

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: merge requires a source and at most one file", cli.ErrUsage)
	}
	incoming, err := cfg.readJSONArg(args[0])
	if err != nil {
		return err
	}
	d, err := cfg.readDoc(fileArg(args, 1))
	if err != nil {
		return err
	}
	policy := cfg.docConfig.MergePolicy
	if cfg.Overwrite {
		policy = jsonmutator.MergeOverwrite
	}
	return cfg.writeDoc(cc.Out, d.MergeWith(incoming, policy))
}
