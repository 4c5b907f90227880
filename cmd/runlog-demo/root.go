package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/runlog/core"
	"github.com/philipp01105/runlog/formatter"
	"github.com/philipp01105/runlog/handler/zaphandler"
	"github.com/philipp01105/runlog/logger"
)

type demoOptions struct {
	name   string
	dir    string
	noFile bool
	level  string
	color  bool
	json   bool
	zap    bool
}

func newRootCmd() *cobra.Command {
	opts := &demoOptions{}

	cmd := &cobra.Command{
		Use:   "runlog-demo",
		Short: "Write sample records through a runlog handle",
		Long: `Creates a runlog handle, writes a record at every level plus one
stack trace, and prints the path of the run file.

Examples:
  # Console and ./log/Run_<timestamp>.log
  runlog-demo

  # Console only, warnings and above
  runlog-demo --no-file --level warning

  # Run file in /tmp/demo, JSON lines, also mirrored to zap
  runlog-demo --dir /tmp/demo --json --zap`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.name, "name", "n", "Demo", "name printed as the record source")
	cmd.Flags().StringVarP(&opts.dir, "dir", "d", "", "directory for the run file (default <cwd>/log)")
	cmd.Flags().BoolVar(&opts.noFile, "no-file", false, "log to the console only")
	cmd.Flags().StringVarP(&opts.level, "level", "l", "info", "minimum level: info, warning, severe, error")
	cmd.Flags().BoolVar(&opts.color, "color", false, "color level names on the console")
	cmd.Flags().BoolVar(&opts.json, "json", false, "write JSON lines instead of records")
	cmd.Flags().BoolVar(&opts.zap, "zap", false, "mirror records to a zap logger on stdout")
	return cmd
}

func runDemo(stdout, stderr io.Writer, opts *demoOptions) error {
	level, ok := core.ParseLevel(opts.level)
	if !ok {
		return fmt.Errorf("unknown level %q", opts.level)
	}

	destination := opts.dir
	if opts.noFile {
		destination = logger.NoFile
	}

	b := logger.NewBuilder().
		WithName(opts.name).
		WithDirectory(destination).
		WithConsole(stderr).
		WithColor(opts.color).
		WithLevel(level)
	if opts.json {
		b.WithFormatter(formatter.NewJSONFormatter(formatter.Config{}))
	}
	if opts.zap {
		b.WithHandler(zaphandler.NewFromLogger(newZapLogger(stdout)))
	}

	log, err := b.Build()
	if err != nil {
		return err
	}

	log.Info("demo started")
	log.WarningFrom("Worker", "queue is filling up")
	log.Log(logger.SevereLevel, "replica lagging")
	log.Errorf("%d requests failed", 3)
	log.LogStackTrace(logger.WithStack(errors.New("connection refused")))

	if p := log.Path(); p != "" {
		fmt.Fprintln(stdout, p)
	}
	return log.Close()
}

// newZapLogger writes console-encoded zap entries to w. The writer is
// wrapped so that Sync is a no-op on terminals.
func newZapLogger(w io.Writer) *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	ws := zapcore.AddSync(struct{ io.Writer }{w})
	return zap.New(zapcore.NewCore(enc, ws, zapcore.InfoLevel))
}
