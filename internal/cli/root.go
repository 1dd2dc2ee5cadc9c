// Package cli defines the sprintdeck command tree. State is built once
// per invocation in the root PersistentPreRunE and carried on the
// command context; commands never reach for globals.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sprintdeck/sprintdeck/internal/app"
	"github.com/sprintdeck/sprintdeck/internal/config"
	"github.com/sprintdeck/sprintdeck/internal/fixture"
	"github.com/sprintdeck/sprintdeck/internal/output"
	"github.com/sprintdeck/sprintdeck/internal/persist"
)

var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

type contextKey string

const (
	appKey  contextKey = "app"
	slotKey contextKey = "slot"
	cfgKey  contextKey = "cfg"
)

// CmdError wraps an error with a machine-readable error code for
// structured output.
type CmdError struct {
	Err  error
	Code output.ErrorCode
}

func (e *CmdError) Error() string { return e.Err.Error() }

func cmdErr(err error, code output.ErrorCode) *CmdError {
	return &CmdError{Err: err, Code: code}
}

var rootCmd = &cobra.Command{
	Use:     "sprintdeck",
	Short:   "Local-first project and sprint tracker",
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Resolve()
		if err != nil {
			return err
		}

		ctx := context.WithValue(cmd.Context(), cfgKey, cfg)

		if _, ok := cmd.Annotations["skipState"]; ok {
			cmd.SetContext(ctx)
			return nil
		}

		if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
			return cmdErr(
				fmt.Errorf("no sprintdeck state found, run 'sprintdeck init' to create it"),
				output.ErrNotFound,
			)
		}

		slot, err := persist.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("opening state database: %w", err)
		}

		a := app.New(slot, fixture.Seed())
		for _, warning := range a.DrainWarnings() {
			getWriter(cmd).Warn("%s", warning)
		}

		ctx = context.WithValue(ctx, slotKey, slot)
		cmd.SetContext(context.WithValue(ctx, appKey, a))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		slot, ok := cmd.Context().Value(slotKey).(*persist.SlotStore)
		if ok && slot != nil {
			return slot.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress non-essential output")
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func getWriter(cmd *cobra.Command) *output.Writer {
	jsonMode, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return output.New(jsonMode, quietMode)
}

func getCfg(cmd *cobra.Command) *config.Config {
	cfg, _ := cmd.Context().Value(cfgKey).(*config.Config)
	return cfg
}

func getApp(cmd *cobra.Command) *app.App {
	a, _ := cmd.Context().Value(appKey).(*app.App)
	return a
}

func jsonMode(cmd *cobra.Command) bool {
	mode, _ := cmd.Flags().GetBool("json")
	return mode
}

// Execute runs the root command and returns an exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		jsonMode, _ := rootCmd.PersistentFlags().GetBool("json")
		quietMode, _ := rootCmd.PersistentFlags().GetBool("quiet")
		w := output.New(jsonMode, quietMode)

		var ce *CmdError
		if errors.As(err, &ce) {
			return w.Error(ce.Err, ce.Code)
		}
		return w.Error(err, output.ErrGeneral)
	}
	return 0
}
