package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"idlcheck/internal/checker"
	"idlcheck/internal/compat"
	"idlcheck/internal/ui"
)

var (
	checkConfigPath string
	checkJobs       int
	checkCacheDir   string
	checkUI         string
)

var errIncompatible = errors.New("incompatible API changes found")

func init() {
	checkCmd.Flags().StringVar(&checkConfigPath, "config", "", "path to an idlcheck.toml allow-list")
	checkCmd.Flags().IntVar(&checkJobs, "jobs", 0, "number of parallel workers (0 = all CPUs)")
	checkCmd.Flags().StringVar(&checkCacheDir, "cache-dir", "", "directory for the on-disk parse cache")
	checkCmd.Flags().StringVar(&checkUI, "ui", "auto", "interactive progress display (auto|on|off)")
}

var checkCmd = &cobra.Command{
	Use:   "check <old_idl_dir> <new_idl_dir>",
	Short: "Check API compatibility between two IDL directory versions",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		cfg, err := checker.LoadConfig(checkConfigPath)
		if err != nil {
			return err
		}
		oldDir, newDir := args[0], args[1]
		opts := checker.Options{Jobs: checkJobs, CacheDir: checkCacheDir}

		useTUI, err := shouldUseTUI(checkUI)
		if err != nil {
			return err
		}

		var found *compat.ErrorCollection
		if useTUI {
			found, err = runCheckWithUI(cmd.Context(), oldDir, newDir, cfg, opts)
		} else {
			found, err = checker.CheckDirs(cmd.Context(), oldDir, newDir, cfg, opts)
		}
		if err != nil {
			return err
		}

		if found.HasErrors() {
			found.Dump(cmd.OutOrStdout())
			return errIncompatible
		}
		if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "%s no incompatible API changes between %s and %s\n",
				color.GreenString("ok:"), oldDir, newDir)
		}
		return nil
	},
}

func shouldUseTUI(value string) (bool, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return isTerminal(os.Stdout), nil
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

type checkOutcome struct {
	found *compat.ErrorCollection
	err   error
}

func runCheckWithUI(ctx context.Context, oldDir, newDir string, cfg *checker.Config, opts checker.Options) (*compat.ErrorCollection, error) {
	files, err := checker.ListIDLFiles(oldDir)
	if err != nil {
		return nil, err
	}
	events := make(chan checker.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		optsCopy := opts
		optsCopy.Events = events
		found, err := checker.CheckDirs(ctx, oldDir, newDir, cfg, optsCopy)
		outcomeCh <- checkOutcome{found: found, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("checking IDL compatibility", files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.found, uiErr
	}
	return outcome.found, outcome.err
}
