package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sprintdeck/sprintdeck/internal/output"
	"github.com/sprintdeck/sprintdeck/internal/persist"
)

var initCmd = &cobra.Command{
	Use:         "init",
	Short:       "Initialize the sprintdeck state directory",
	Annotations: map[string]string{"skipState": "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		w := getWriter(cmd)
		cfg := getCfg(cmd)

		exists, err := cfg.Exists()
		if err != nil {
			return cmdErr(fmt.Errorf("checking state: %w", err), output.ErrGeneral)
		}

		if exists {
			w.Warn("State already exists at %s", cfg.DBPath)
			w.Success(struct {
				Path    string `json:"path"`
				DBPath  string `json:"db_path"`
				Created bool   `json:"created"`
			}{
				Path:    cfg.DataDir,
				DBPath:  cfg.DBPath,
				Created: false,
			}, "State already initialized")
			return nil
		}

		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return cmdErr(fmt.Errorf("creating directory: %w", err), output.ErrGeneral)
		}

		slot, err := persist.Open(cfg.DBPath)
		if err != nil {
			return cmdErr(fmt.Errorf("creating state database: %w", err), output.ErrGeneral)
		}
		defer slot.Close()

		w.Success(struct {
			Path    string `json:"path"`
			DBPath  string `json:"db_path"`
			Created bool   `json:"created"`
		}{
			Path:    cfg.DataDir,
			DBPath:  cfg.DBPath,
			Created: true,
		}, "Initialized sprintdeck state")

		w.Info("Initialized sprintdeck state at %s", cfg.DBPath)
		w.Info("Consider adding .sprintdeck/ to your .gitignore")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
