// Command computor is the CLI entrypoint: a REPL by default, or a single
// expression evaluated and printed with -e/--execute, following the
// teacher's ivy.go flag set (-e, --format, --origin, --prompt) but
// dispatched through github.com/spf13/cobra rather than the flag
// package, per SPEC_FULL §10.
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/DinaGala/computor-v2/config"
	"github.com/DinaGala/computor-v2/repl"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		execute     string
		floatFormat int
		outputBase  int
		angleMode   string
		historyPath string
	)

	cmd := &cobra.Command{
		Use:   "computor",
		Short: "An interactive rational/complex/matrix expression interpreter",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if floatFormat > 0 {
				cfg.SetFloatSigFigs(floatFormat)
			}
			if outputBase > 0 {
				cfg.SetOutputBase(outputBase)
			}
			if historyPath != "" {
				cfg.SetHistoryPath(historyPath)
			}
			switch angleMode {
			case "degrees":
				cfg.SetAngleMode(config.Degrees)
			case "radians", "":
				cfg.SetAngleMode(config.Radians)
			default:
				return fmt.Errorf("unknown angle mode %q (want radians or degrees)", angleMode)
			}

			if execute != "" {
				return runOneShot(cfg, execute, cmd.OutOrStdout())
			}

			if len(args) > 0 {
				return runFile(cfg, args[0], cmd.OutOrStdout())
			}

			return runInteractive(cfg, cmd.OutOrStdout())
		},
	}

	cmd.PersistentFlags().StringVarP(&execute, "execute", "e", "", "evaluate a single expression and exit")
	cmd.PersistentFlags().IntVar(&floatFormat, "format", 0, "significant digits for floating approximations (default 12)")
	cmd.PersistentFlags().IntVar(&outputBase, "base", 0, "base used to render exact integers and fractions (default 10)")
	cmd.PersistentFlags().StringVar(&angleMode, "angles", "", "angle mode for sin/cos/tan: radians or degrees")
	cmd.PersistentFlags().StringVar(&historyPath, "history", "", "path to the REPL history file")
	return cmd
}

// runOneShot implements the --execute/-e flag (SPEC_FULL §12): evaluate a
// single expression from the command line and exit, useful for scripting.
func runOneShot(cfg *config.Config, expr string, out io.Writer) error {
	r := repl.NewNonInteractive(cfg, bytes.NewReader(append([]byte(expr), '\n')), out)
	r.Run()
	return nil
}

func runFile(cfg *config.Config, path string, out io.Writer) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	r := repl.NewNonInteractive(cfg, f, out)
	r.Run()
	return nil
}

func runInteractive(cfg *config.Config, out io.Writer) error {
	r, err := repl.NewInteractive(cfg, out)
	if err != nil {
		return err
	}
	defer r.Close()
	r.Run()
	return cfg.Save()
}
