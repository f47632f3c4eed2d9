// enginekit-debug exercises the engine's runtime diagnostics from the
// command line: correlated precise time, symbolized stack reports, hex
// dumps and UUID generation.
package main

import (
	"fmt"
	"os"

	"enginekit/internal/backtrace"
	"enginekit/internal/bytesutil"
	"enginekit/internal/clock"
	"enginekit/internal/config"
	"enginekit/internal/ident"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	logger := zap.Must(zap.NewProduction())
	defer func() {
		_ = logger.Sync()
	}()

	if err := newRootCmd().Execute(); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "enginekit-debug",
		Short:        "Runtime diagnostics: precise time, stack reports, hex dumps",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			clock.Initialize()
		},
	}
	root.AddCommand(newNowCmd(), newStackCmd(), newHexdumpCmd(), newUUIDCmd())
	return root
}

func newNowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Print the correlated precise time and uptime",
		RunE: func(cmd *cobra.Command, _ []string) error {
			up := clock.Uptime()
			fmt.Fprintf(cmd.OutOrStdout(), "%s (uptime %d.%09ds)\n",
				clock.Format(clock.Now()), up.Sec, up.Nsec)
			return nil
		},
	}
}

func newStackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stack",
		Short: "Print a symbolized report of the current stack",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.ParseDiagnostics()
			if err != nil {
				return err
			}
			reporter, err := backtrace.NewReporter(cfg)
			if err != nil {
				return err
			}
			reporter.Report(cmd.OutOrStdout(), cfg.UseResolver)
			return nil
		},
	}
}

func newHexdumpCmd() *cobra.Command {
	var (
		offset uint
		length int
	)
	cmd := &cobra.Command{
		Use:   "hexdump <file>",
		Short: "Dump a file region in hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}
			if int(offset) >= len(data) {
				return fmt.Errorf("offset %d past end of %d-byte file", offset, len(data))
			}
			data = data[offset:]
			if length >= 0 && length < len(data) {
				data = data[:length]
			}
			bytesutil.HexDump(cmd.OutOrStdout(), data, offset)
			return nil
		},
	}
	cmd.Flags().UintVar(&offset, "offset", 0, "byte offset to start at")
	cmd.Flags().IntVar(&length, "length", -1, "bytes to dump, -1 for the rest of the file")
	return cmd
}

func newUUIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uuid",
		Short: "Print a fresh random UUID",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), ident.ToString(ident.New()))
			return nil
		},
	}
}
