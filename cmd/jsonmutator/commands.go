package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "jsonmutator").
		WithSynopsis("jsonmutator [opts] command [opts] [args]").
		WithDescription("jsonmutator reads, edits and converts JSON objects using dot-notation paths.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return jmMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			SetCommand(cfg),
			ForgetCommand(cfg),
			MergeCommand(cfg),
			FmtCommand(cfg),
			YAMLCommand(cfg),
			QueryCommand(cfg),
			JQCommand(cfg),
			EvalCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			ValidateCommand(cfg),
			DumpCommand(cfg),
			ConfigCommand(cfg))
}

func structOpts(cfg any) []*cli.Opt {
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return opts
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get [-d default] <path> [file]").
		WithDescription("print the value at a dot-notation path").
		WithOpts(structOpts(cfg)...).
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("set").
		WithAliases("s").
		WithSynopsis("set [-s] <path> <value> [file]").
		WithDescription("store a JSON value at a path, creating intermediate objects").
		WithOpts(structOpts(cfg)...).
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
	cfg.Set = cmd
	return cmd
}

func ForgetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ForgetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("forget").
		WithAliases("rm", "unset").
		WithSynopsis("forget <path> [file]").
		WithDescription("remove the entry at a path").
		WithRun(func(cc *cli.Context, args []string) error {
			return forget(cfg, cc, args)
		})
	cfg.Forget = cmd
	return cmd
}

func MergeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MergeConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("merge").
		WithAliases("m").
		WithSynopsis("merge [-overwrite] <file-or-json> [file]").
		WithDescription("merge a JSON object into the input document").
		WithOpts(structOpts(cfg)...).
		WithRun(func(cc *cli.Context, args []string) error {
			return merge(cfg, cc, args)
		})
	cfg.Merge = cmd
	return cmd
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("fmt").
		WithAliases("f").
		WithSynopsis("fmt [-escape] [file]").
		WithDescription("re-encode a document, keeping key order").
		WithOpts(structOpts(cfg)...).
		WithRun(func(cc *cli.Context, args []string) error {
			return format(cfg, cc, args)
		})
	cfg.Fmt = cmd
	return cmd
}

func YAMLCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &YAMLConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("yaml").
		WithAliases("y").
		WithSynopsis("yaml [-r] [file]").
		WithDescription("convert a JSON document to YAML, or YAML to JSON with -r").
		WithOpts(structOpts(cfg)...).
		WithRun(func(cc *cli.Context, args []string) error {
			return toYAML(cfg, cc, args)
		})
	cfg.YAML = cmd
	return cmd
}

func QueryCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &QueryConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("query").
		WithAliases("q").
		WithSynopsis("query <gjson-path> [file]").
		WithDescription("evaluate a gjson path with wildcards, filters and modifiers").
		WithRun(func(cc *cli.Context, args []string) error {
			return query(cfg, cc, args)
		})
	cfg.Query = cmd
	return cmd
}

func JQCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &JQConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("jq").
		WithSynopsis("jq <program> [file]").
		WithDescription("run a jq program and print each result").
		WithRun(func(cc *cli.Context, args []string) error {
			return jq(cfg, cc, args)
		})
	cfg.JQ = cmd
	return cmd
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("eval").
		WithAliases("e").
		WithSynopsis("eval <expression> [file]").
		WithDescription("evaluate an expression with top-level keys as variables and at(path)/exists(path) helpers").
		WithRun(func(cc *cli.Context, args []string) error {
			return eval(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithSynopsis("diff [-m] <a> <b>").
		WithDescription("compare two documents; exits 1 when they differ").
		WithOpts(structOpts(cfg)...).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithSynopsis("patch [-m] <patch-file> [file]").
		WithDescription("apply an RFC 6902 JSON Patch, or an RFC 7396 merge patch with -m").
		WithOpts(structOpts(cfg)...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func ValidateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ValidateConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("validate").
		WithAliases("v").
		WithSynopsis("validate [-depth n] [-length n] [file]").
		WithDescription("check a document against the depth and length limits; exits 1 on violation").
		WithOpts(structOpts(cfg)...).
		WithRun(func(cc *cli.Context, args []string) error {
			return validate(cfg, cc, args)
		})
	cfg.Validate = cmd
	return cmd
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("dump").
		WithSynopsis("dump [file]").
		WithDescription("print the decoded Go values of a document").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
	cfg.Dump = cmd
	return cmd
}

func ConfigCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConfigConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("config").
		WithAliases("c").
		WithSynopsis("config").
		WithDescription("print the effective configuration as YAML, suitable as a -config file").
		WithRun(func(cc *cli.Context, args []string) error {
			return printConfig(cfg, cc, args)
		})
	cfg.Config = cmd
	return cmd
}
