package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/cybergodev/jsonmutator"
)

func format(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: fmt takes at most one file", cli.ErrUsage)
	}
	d, err := cfg.readDoc(fileArg(args, 0))
	if err != nil {
		return err
	}
	enc := cfg.encodeConfig()
	if cfg.Escape {
		enc.EscapeUnicode = true
		enc.EscapeSlash = true
	}
	data, err := d.Encode(enc)
	if err != nil {
		return err
	}
	return cfg.writeJSON(cc.Out, data)
}

func toYAML(cfg *YAMLConfig, cc *cli.Context, args []string) error {
	args, err := cfg.YAML.Parse(cc, args)
	if err != nil {
		cfg.YAML.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: yaml takes at most one file", cli.ErrUsage)
	}
	file := fileArg(args, 0)
	if cfg.Reverse {
		data, err := readInput(file)
		if err != nil {
			return err
		}
		d, err := jsonmutator.FromYAMLWithConfig(data, cfg.docConfig)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		return cfg.writeDoc(cc.Out, d)
	}
	d, err := cfg.readDoc(file)
	if err != nil {
		return err
	}
	out, err := d.ToYAML()
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(out)
	return err
}

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		cfg.Dump.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	d, err := cfg.readDoc(fileArg(args, 0))
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cc.Out, d.Dump())
	return err
}

func validate(cfg *ValidateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Validate.Parse(cc, args)
	if err != nil {
		cfg.Validate.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	file := fileArg(args, 0)
	data, err := readInput(file)
	if err != nil {
		return err
	}

	limits := cfg.docConfig.Clone()
	if cfg.MaxDepth > 0 {
		limits.Validation.MaxDepth = cfg.MaxDepth
	}
	if cfg.MaxLength > 0 {
		limits.Validation.MaxLength = cfg.MaxLength
	}
	d, err := jsonmutator.FromJSONStrictWithConfig(string(data), limits)
	if err == nil {
		err = d.Validate()
	}
	if err != nil {
		fmt.Fprintf(cc.Out, "%s: %s (%s)\n", file, err, jsonmutator.ErrorCode(err))
		return cli.ExitCodeErr(1)
	}
	fmt.Fprintf(cc.Out, "%s: ok (depth %d, %d keys)\n", file, d.Depth(), d.Count())
	return nil
}

func printConfig(cfg *ConfigConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Config.Parse(cc, args); err != nil {
		cfg.Config.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return jsonmutator.WriteConfig(cc.Out, cfg.docConfig)
}
