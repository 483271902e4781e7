package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"idlcheck/internal/compat"
)

var codesCmd = &cobra.Command{
	Use:   "codes",
	Short: "List every compatibility error code",
	RunE: func(cmd *cobra.Command, args []string) error {
		codeColor := color.New(color.FgCyan, color.Bold)
		for _, code := range compat.Codes() {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", codeColor.Sprint(string(code)), code.Title())
		}
		return nil
	},
}
