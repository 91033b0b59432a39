package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/cybergodev/jsonmutator"
)

type MainConfig struct {
	ConfigFile string `cli:"name=config desc='yaml configuration file'"`
	Pretty     bool   `cli:"name=pretty aliases=p desc='indent JSON output'"`
	Color      bool   `cli:"name=color desc='colorize output (default: when writing to a terminal)'"`
	Strict     bool   `cli:"name=strict desc='fail on input that is not a JSON object instead of using an empty document'"`

	Main *cli.Command

	docConfig *jsonmutator.Config
}

// loadConfig reads -config once; without it the defaults apply
func (cfg *MainConfig) loadConfig() error {
	if cfg.docConfig != nil {
		return nil
	}
	if cfg.ConfigFile == "" {
		cfg.docConfig = jsonmutator.DefaultConfig()
		return nil
	}
	c, err := jsonmutator.LoadConfig(cfg.ConfigFile)
	if err != nil {
		return err
	}
	cfg.docConfig = c
	return nil
}

func (cfg *MainConfig) encodeConfig() *jsonmutator.EncodeConfig {
	enc := cfg.docConfig.JSONOptions.Clone()
	if cfg.Pretty {
		enc.Pretty = true
	}
	return enc
}

// useColor reports whether output to w should be colorized: -color forces
// it, otherwise only terminals get color
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		color.NoColor = false
		return true
	}
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		color.NoColor = true
		return false
	}
	color.NoColor = false
	return true
}

type GetConfig struct {
	*MainConfig
	Default string `cli:"name=d aliases=default desc='JSON value printed when the path does not resolve'"`

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig
	Raw bool `cli:"name=s aliases=string desc='treat the value as a plain string instead of JSON'"`

	Set *cli.Command
}

type ForgetConfig struct {
	*MainConfig

	Forget *cli.Command
}

type MergeConfig struct {
	*MainConfig
	Overwrite bool `cli:"name=overwrite desc='incoming values replace existing ones instead of accumulating'"`

	Merge *cli.Command
}

type FmtConfig struct {
	*MainConfig
	Escape bool `cli:"name=escape desc='escape non-ASCII characters and slashes'"`

	Fmt *cli.Command
}

type YAMLConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r aliases=reverse desc='read YAML and write JSON'"`

	YAML *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Query *cli.Command
}

type JQConfig struct {
	*MainConfig

	JQ *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Eval *cli.Command
}

type DiffConfig struct {
	*MainConfig
	MergePatch bool `cli:"name=m aliases=merge-patch desc='print the RFC 7396 merge patch instead of a line diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=m aliases=merge desc='the patch is an RFC 7396 merge patch'"`

	Patch *cli.Command
}

type ValidateConfig struct {
	*MainConfig
	MaxDepth  int `cli:"name=depth desc='maximum nesting depth (default from config)'"`
	MaxLength int `cli:"name=length desc='maximum encoded length in bytes (default from config)'"`

	Validate *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type ConfigConfig struct {
	*MainConfig

	Config *cli.Command
}
