// Command thumb2dis decodes a stream of Thumb-2 machine code into
// human-readable disassembly.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jtarchie/thumb2dis"
	"github.com/jtarchie/thumb2dis/config"
	"github.com/spf13/cobra"
)

func main() {
	var configPath string
	var stopOnError bool
	var numberFormat string

	rootCmd := &cobra.Command{
		Use:   "thumb2dis [hex bytes]",
		Short: "Decode a little-endian Thumb-2 (ARMv7-M) instruction stream",
		Long: "thumb2dis decodes 16- and 32-bit Thumb instructions from a hex-encoded\n" +
			"byte stream and prints one disassembled line per instruction.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if cmd.Flags().Changed("stop-on-error") {
				cfg.Decode.StopOnError = stopOnError
			}
			if cmd.Flags().Changed("number-format") {
				cfg.Output.NumberFormat = numberFormat
			}

			data, err := hex.DecodeString(strings.Join(args, ""))
			if err != nil {
				return fmt.Errorf("invalid hex input: %w", err)
			}

			return run(cmd.OutOrStdout(), data, cfg)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a thumb2dis.toml config file")
	rootCmd.Flags().BoolVar(&stopOnError, "stop-on-error", false, "halt at the first undecodable instruction")
	rootCmd.Flags().StringVar(&numberFormat, "number-format", "", "override output.number_format (hex or dec)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(out io.Writer, data []byte, cfg *config.Config) error {
	stream := thumb2.NewStream(data)
	addr := 0
	count := 0

	for stream.Remaining() > 0 {
		if cfg.Decode.MaxOperations > 0 && count >= cfg.Decode.MaxOperations {
			break
		}

		n, op, err := thumb2.NextOperation(stream)
		if err != nil {
			line := fmt.Sprintf("%04x: <error: %v>\n", addr, err)
			fmt.Fprint(out, line)
			if cfg.Decode.StopOnError {
				return err
			}
			// The stream is unchanged on error; advance by one half-word
			// manually so a single bad instruction does not loop forever.
			stream.Consume(1)
			addr += 2
			continue
		}

		line := formatLine(addr, cfg, op)
		fmt.Fprint(out, line)
		addr += n * 2
		count++
	}
	return nil
}

func formatLine(addr int, cfg *config.Config, op thumb2.Operation) string {
	var addrStr string
	if cfg.Output.ShowAddresses {
		if cfg.Output.NumberFormat == "dec" {
			addrStr = fmt.Sprintf("%d: ", addr)
		} else {
			addrStr = fmt.Sprintf("%04x: ", addr)
		}
	}
	return addrStr + thumb2.Format(op) + "\n"
}
