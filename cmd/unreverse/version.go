package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), versionString())
			return nil
		},
	}
}

func versionString() string {
	var b strings.Builder
	b.WriteString("unreverse ")
	b.WriteString(strings.TrimSpace(version))
	if c := strings.TrimSpace(commit); c != "" && c != "none" {
		b.WriteString(" (commit " + c)
		if d := strings.TrimSpace(date); d != "" && d != "unknown" {
			b.WriteString(", built " + d)
		}
		b.WriteString(")")
	}
	return b.String()
}
