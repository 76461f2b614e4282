package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hnimtadd/termdraw/logger"
	"github.com/spf13/cobra"
)

type logFlags struct {
	file  string
	level string
	json  bool
}

// open returns the logger described by the flags and a function releasing
// it. Without a log file nothing is logged: the terminal belongs to the
// demo.
func (f *logFlags) open() (logger.Logger, func(), error) {
	if f.file == "" {
		return logger.Discard, func() {}, nil
	}
	file, err := os.OpenFile(f.file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(file, f), func() { _ = file.Close() }, nil
}

func newLogger(w io.Writer, f *logFlags) logger.Logger {
	typ := logger.TypeText
	if f.json {
		typ = logger.TypeJSON
	}
	return logger.New(logger.Options{
		Buffer: w,
		Level:  logger.ParseLevel(f.level),
		Type:   typ,
	})
}

func newRootCmd() *cobra.Command {
	flags := &logFlags{}
	root := &cobra.Command{
		Use:           "termdraw",
		Short:         "Paint styled, wide-character aware text onto a terminal cell grid",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.file, "log-file", "", "write logs to this file")
	root.PersistentFlags().StringVar(&flags.level, "log-level", "info", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&flags.json, "log-json", false, "log as JSON")

	root.AddCommand(newDemoCmd(flags), newSnapshotCmd(flags))
	return root
}
