package main

import (
	"fmt"
	"github.com/nimatrueway/foxyrules/internal"
	"github.com/nimatrueway/foxyrules/internal/config"
	"github.com/nimatrueway/foxyrules/internal/view"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ztrue/tracerr"
	"os"
)

var RootCmd = &cobra.Command{
	Use:   "foxyrules",
	Short: "Convert domain block lists into FoxyProxy patterns",
	Long: `foxyrules reads a gfwlist / AdBlock style domain list from a file, an http(s) url or stdin,
optionally hex or base64 encoded, and writes the equivalent FoxyProxy patterns as json.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Convert(cmd.Flags())
	},
}

var RootFlags struct {
	Config      string
	Src         string
	SrcEncoding config.Encoding
	Parser      config.ParserType
	Dst         string
	DstEncoding config.Encoding
	LogLevel    string
}

func init() {
	RootFlags.SrcEncoding = config.Config.Source.Encoding
	RootFlags.DstEncoding = config.Config.Destination.Encoding
	RootFlags.Parser = config.Config.Parser.Type

	fs := RootCmd.Flags()
	fs.StringVarP(&RootFlags.Config, "config", "c", "", "toml config file, flags take precedence over it")
	fs.StringVarP(&RootFlags.Src, "src", "s", "", "source of patterns to be parsed, a file, an http(s) url or '-' for stdin")
	fs.Var(&RootFlags.SrcEncoding, "src-encoding", "encoding of the source: raw, base64 or hex")
	fs.VarP(&RootFlags.Parser, "parser", "p", "parser of the source: default")
	fs.StringVarP(&RootFlags.Dst, "dst", "d", "", "destination file for the foxyproxy patterns, '-' for stdout")
	fs.Var(&RootFlags.DstEncoding, "dst-encoding", "encoding of the destination: raw, base64 or hex")
	fs.StringVar(&RootFlags.LogLevel, "log-level", "", "log level: panic, fatal, error, warn, info, debug or trace")

	RootCmd.Version = config.Version
}

func Convert(fs *pflag.FlagSet) error {
	if err := configure(fs); err != nil {
		return err
	}

	return internal.Convert(&config.Config)
}

func configure(fs *pflag.FlagSet) error {
	cfg := &config.Config
	if RootFlags.Config != "" {
		if err := cfg.Load(RootFlags.Config); err != nil {
			return err
		}
	}

	if fs.Changed("src") {
		cfg.Source.Path = RootFlags.Src
	}
	if fs.Changed("src-encoding") {
		cfg.Source.Encoding = RootFlags.SrcEncoding
	}
	if fs.Changed("parser") {
		cfg.Parser.Type = RootFlags.Parser
	}
	if fs.Changed("dst") {
		cfg.Destination.Path = RootFlags.Dst
	}
	if fs.Changed("dst-encoding") {
		cfg.Destination.Encoding = RootFlags.DstEncoding
	}
	if fs.Changed("log-level") {
		level, err := logrus.ParseLevel(RootFlags.LogLevel)
		if err != nil {
			return err
		}
		cfg.Log.Level = level
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := view.Init(cfg); err != nil {
		return err
	}
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debugf("effective config:\n%s", cfg.SaveData())
	}
	return nil
}

func main() {
	if err := RootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "run command failed: %s\n", err.Error())
		if logrus.IsLevelEnabled(logrus.DebugLevel) {
			_, _ = fmt.Fprintln(os.Stderr, tracerr.SprintSourceColor(err))
		}
		os.Exit(1)
	}
}
