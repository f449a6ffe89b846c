package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/d21d3q/goseatalk/internal/capture"
	"github.com/d21d3q/goseatalk/internal/config"
	"github.com/d21d3q/goseatalk/internal/output"
	"github.com/d21d3q/goseatalk/internal/stream"
	"github.com/d21d3q/goseatalk/pkg/goseatalk"
)

func newRootCmd() *cobra.Command {
	var (
		configPath string
		flagCfg    = config.Default()
	)
	cmd := &cobra.Command{
		Use:   "goseatalk-analyze [record]",
		Short: "Decode SeaTalk datagrams",
		Long: "goseatalk-analyze decodes SeaTalk datagrams captured as lines of hex tokens " +
			"(\"0x20 0x1 0x2c 0x0\"). With no argument it reads records from --file or standard input " +
			"until end of input.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, configPath, flagCfg)
			if err != nil {
				return err
			}
			lvl, err := cfg.Level()
			if err != nil {
				return err
			}
			logrus.SetLevel(lvl)
			sink, err := output.New(cfg.Format, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if len(args) == 1 {
				return runRecord(sink, args[0])
			}
			return runStream(cmd.Context(), cmd.InOrStdin(), sink, cfg)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "YAML file with default settings")
	flags.StringVarP(&flagCfg.Input, "file", "f", "", "capture file to read instead of standard input")
	flags.BoolVar(&flagCfg.Raw, "raw", false, "input is a raw UART dump with FF 00 parity marks")
	flags.StringVar(&flagCfg.Format, "format", flagCfg.Format, "output format: text or json")
	flags.BoolVar(&flagCfg.ShowUnrecognized, "show-unrecognized", false, "print datagrams with unsupported command bytes")
	flags.StringVar(&flagCfg.LogLevel, "log-level", flagCfg.LogLevel, "log level (debug, info, warn, error)")
	return cmd
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.SetOutput(os.Stderr)
	ctx := context.Background()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logrus.Fatal(err)
	}
}

// resolveConfig layers explicitly set flags over the config file and
// validates the merged settings.
func resolveConfig(cmd *cobra.Command, path string, flagCfg config.Config) (config.Config, error) {
	cfg, err := config.Read(path)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("file") {
		cfg.Input = flagCfg.Input
	}
	if flags.Changed("raw") {
		cfg.Raw = flagCfg.Raw
	}
	if flags.Changed("format") {
		cfg.Format = flagCfg.Format
	}
	if flags.Changed("show-unrecognized") {
		cfg.ShowUnrecognized = flagCfg.ShowUnrecognized
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = flagCfg.LogLevel
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runRecord(sink output.Sink, record string) error {
	result, err := goseatalk.DecodeLine(record)
	if err != nil {
		return err
	}
	return sink.Write(result)
}

func runStream(ctx context.Context, stdin io.Reader, sink output.Sink, cfg config.Config) error {
	in := stdin
	if !cfg.Stdin() {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return fmt.Errorf("open capture: %w", err)
		}
		defer f.Close()
		in = f
	}

	var src stream.LineSource
	if cfg.Raw {
		src = capture.NewFramer(in)
	} else {
		src = stream.NewLineReader(in)
	}
	p := &stream.Processor{
		Source:           src,
		Sink:             sink,
		Log:              logrus.StandardLogger(),
		ShowUnrecognized: cfg.ShowUnrecognized,
	}
	stats, err := p.Run(ctx)
	logrus.WithFields(logrus.Fields{
		"lines":        humanize.Comma(int64(stats.Lines)),
		"decoded":      humanize.Comma(int64(stats.Decoded)),
		"unrecognized": humanize.Comma(int64(stats.Unrecognized)),
		"failed":       humanize.Comma(int64(stats.Failed)),
	}).Info("capture processed")
	return err
}
