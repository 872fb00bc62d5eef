package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/menta2k/stickerframe/internal/config"
	"github.com/menta2k/stickerframe/internal/utils"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration files",
	}
	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		outPath string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			if utils.FileExists(outPath) && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", outPath)
			}

			cfg := config.Default()
			if err := cfg.SaveToFile(outPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			logger.Info("wrote default config", "path", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "stickerframe.json", "config file path")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}
