package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const stdinHint = "Reading reversed text from stdin; finish with Ctrl-D."

func newRestoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore [text...]",
		Short: "Restore reversed text given as arguments or on stdin",
		RunE: func(cmd *cobra.Command, args []string) error {
			restorer, err := restorerFromConfig(cmd, nil, nil)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), restorer.Text(strings.Join(args, " ")))
				return nil
			}

			in := cmd.InOrStdin()
			if isTerminal(in) {
				_, _ = fmt.Fprintln(cmd.ErrOrStderr(), stdinHint)
			}
			raw, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			out := restorer.Text(string(raw))
			if out == "" {
				return nil
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
