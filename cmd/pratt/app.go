package main

import (
	"fmt"

	"github.com/dhamidi/pratt/config"
	"github.com/dhamidi/pratt/expr/parser"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("pratt.cli")

// app carries the global flags and the configuration they resolve to.
type app struct {
	configPath string
	verbosity  int
	logFile    string
	maxDepth   int

	cfg *config.Config
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	var err error
	if a.configPath != "" {
		a.cfg, err = config.Load(a.configPath)
	} else {
		a.cfg, err = config.LoadDefault()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		a.cfg.Log.Verbosity = a.verbosity
	}
	if flags.Changed("log") {
		a.cfg.Log.File = a.logFile
	}
	if flags.Changed("max-depth") {
		a.cfg.Parser.MaxDepth = a.maxDepth
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	commonlog.Configure(a.cfg.Log.Verbosity, a.cfg.LogPath())
	log.Debugf("max depth %d, output format %s", a.cfg.Parser.MaxDepth, a.cfg.Output.Format)
	return nil
}

func (a *app) parserOptions() []parser.Option {
	return a.cfg.ParserOptions()
}
