// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"minimat/config"
	"minimat/exec"
	"minimat/parse"
	"minimat/run"
)

const prompt = "minimat> "

func main() {
	logger := newLogger(os.Stderr)
	defer logger.Sync()

	cmd := newRootCmd(logger, os.Stdin, isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()))
	if err := cmd.Execute(); err != nil {
		logger.Error("fatal", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

// newLogger returns the diagnostic logger: console encoding, no timestamps, info level.
func newLogger(w io.Writer) *zap.Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), zapcore.InfoLevel)
	return zap.New(core).Named("minimat")
}

// newRootCmd returns the command that runs a session reading from stdin.
// The prompt is shown only when interactive. Help prints the usage message.
func newRootCmd(logger *zap.Logger, stdin io.Reader, interactive bool) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "minimat",
		Short:         "minimat is a calculator for named 3-vectors",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Arguments are ignored, flags included.
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			var conf config.Config
			conf.SetOutput(cmd.OutOrStdout())
			conf.SetErrOutput(cmd.ErrOrStderr())
			conf.SetLogger(logger)
			if interactive {
				conf.SetPrompt(prompt)
			}
			context := exec.NewContext(&conf)
			return run.Run(parse.NewParser(context), stdin, interactive)
		},
	}
	cmd.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		parse.Usage(cmd.OutOrStdout())
	})
	return cmd
}
