// SPDX-License-Identifier: MIT

// Package main is the entry point for the contourlab binary.
// It runs complex-analysis lab exercises described in YAML job files.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/afcarl/numerical-computing/grid"
	"github.com/afcarl/numerical-computing/internal/lab"
	"github.com/spf13/cobra"
)

const defaultLogLevel = "warn"

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd wires every subcommand. Results go to stdout, logs to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "contourlab",
		Short: "Contour integrals and the Cauchy integral formula",
		Long: `Evaluates contour integrals, Cauchy-formula reconstructions, winding
numbers and complex-function surfaces described in a YAML job file.

Example:
  contourlab run -f jobs.yaml --format json
  contourlab demo
  contourlab grid --function z^4+1 --res 201`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringP("log-level", "l", defaultLogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringP("format", "o", lab.FormatText, "Output format (text, json)")

	rootCmd.AddCommand(newRunCmd(), newDemoCmd(), newGridCmd(), newWatchCmd())

	return rootCmd
}

// parseLevel maps a flag value onto a slog level, defaulting to info.
func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setup builds the logger and reads the output format from the
// persistent flags.
func setup(cmd *cobra.Command) (*slog.Logger, string, error) {
	level, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return nil, "", fmt.Errorf("failed to get log-level flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return nil, "", fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != lab.FormatText && format != lab.FormatJSON {
		return nil, "", fmt.Errorf("unknown output format %q", format)
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: parseLevel(level)}))

	return logger, format, nil
}

// execute runs f and writes the report. When strict, failed jobs make
// the command fail after the report is printed.
func execute(cmd *cobra.Command, f *lab.File, strict bool) error {
	logger, format, err := setup(cmd)
	if err != nil {
		return err
	}

	rep, err := lab.NewRunner(logger).Run(cmd.Context(), f)
	if err != nil {
		return err
	}
	if err := lab.Write(cmd.OutOrStdout(), rep, format); err != nil {
		return err
	}
	if n := rep.Failed(); strict && n > 0 {
		return fmt.Errorf("%d of %d jobs failed", n, len(rep.Outcomes))
	}

	return nil
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a job file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := cmd.Flags().GetString("file")
			if err != nil {
				return fmt.Errorf("failed to get file flag: %w", err)
			}
			f, err := lab.Load(path)
			if err != nil {
				return err
			}

			return execute(cmd, f, true)
		},
	}
	cmd.Flags().StringP("file", "f", "", "Path to the job file (YAML)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in lab exercises",
		Long: `Integrates conj(z) and exp(z) from 0 to 1+i along several paths and
around the unit circle, checks the Cauchy formula for z^2+1 (including a
point on the contour, which fails), computes winding numbers and samples
the z^4+1 surface and the fifth-root sheets.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// One Cauchy point sits on the contour; its error is part of the demo.
			return execute(cmd, lab.Demo(), false)
		},
	}
}

func newGridCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Sample a catalogue function on a grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name, err := cmd.Flags().GetString("function")
			if err != nil {
				return fmt.Errorf("failed to get function flag: %w", err)
			}
			res, err := cmd.Flags().GetInt("res")
			if err != nil {
				return fmt.Errorf("failed to get res flag: %w", err)
			}
			x, err := cmd.Flags().GetStringSlice("x")
			if err != nil {
				return fmt.Errorf("failed to get x flag: %w", err)
			}
			y, err := cmd.Flags().GetStringSlice("y")
			if err != nil {
				return fmt.Errorf("failed to get y flag: %w", err)
			}

			job := lab.Job{Name: name, Kind: lab.KindGrid, Function: name, Resolution: res}
			job.X, job.Y = toAny(x), toAny(y)
			if err := job.Validate(); err != nil {
				return err
			}

			return execute(cmd, &lab.File{Jobs: []lab.Job{job}}, true)
		},
	}
	cmd.Flags().String("function", "z^4+1", "Catalogue function to sample")
	cmd.Flags().Int("res", grid.DefaultResolution, "Samples per axis")
	cmd.Flags().StringSlice("x", nil, "Real-axis bounds as min,max (default -1,1)")
	cmd.Flags().StringSlice("y", nil, "Imaginary-axis bounds as min,max (default -1,1)")

	return cmd
}

// toAny adapts flag strings to the job file's scalar fields.
func toAny(ss []string) []any {
	if len(ss) == 0 {
		return nil
	}
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}

	return out
}

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Re-run a job file every time it changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, err := cmd.Flags().GetString("file")
			if err != nil {
				return fmt.Errorf("failed to get file flag: %w", err)
			}
			debounce, err := cmd.Flags().GetDuration("debounce")
			if err != nil {
				return fmt.Errorf("failed to get debounce flag: %w", err)
			}
			logger, _, err := setup(cmd)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			cmd.SetContext(ctx)

			rerun := func(f *lab.File) {
				if err := execute(cmd, f, true); err != nil {
					logger.Warn("run finished with errors", "error", err)
				}
			}
			if f, err := lab.Load(path); err != nil {
				logger.Error("initial load failed", "path", path, "error", err)
			} else {
				rerun(f)
			}

			logger.Info("watching job file", "path", path)

			return lab.Watch(ctx, path, debounce, logger, rerun)
		},
	}
	cmd.Flags().StringP("file", "f", "", "Path to the job file (YAML)")
	cmd.Flags().Duration("debounce", lab.DefaultDebounce, "Quiet period before re-running after a write")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
