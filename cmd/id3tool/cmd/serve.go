package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jxs/go-id3/pkg/api"
	"github.com/jxs/go-id3/pkg/config"
	"github.com/jxs/go-id3/pkg/library"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the track library over HTTP",
	Long: `Serve the track library over HTTP. The configuration file is
created with a generated API key on first run.

Example:
  id3tool serve --config ~/.config/id3tool/config.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		var cfg *config.Config
		var err error
		if config.ConfigExists(configPath) {
			cfg, err = config.LoadConfig(configPath)
		} else {
			libPath, _ := cmd.Flags().GetString("library")
			cfg, err = config.BootstrapConfig(configPath, libPath)
			if err == nil {
				fmt.Printf("wrote new config with generated API key to %s\n", configPath)
			}
		}
		if err != nil {
			return err
		}

		if cfg.Security.APIKey == "" || cfg.Security.APIKey == "auto" {
			cfg.Security.APIKey, err = config.GenerateSecureKey(32)
			if err != nil {
				return err
			}
			fmt.Printf("ephemeral API key: %s\n", cfg.Security.APIKey)
		}

		lib, err := library.Open(cfg.LibraryPath)
		if err != nil {
			return err
		}
		defer lib.Close()

		return api.StartServer(lib, api.ServerConfig{
			Bind:     cfg.Bind,
			Port:     cfg.Port,
			APIKey:   cfg.Security.APIKey,
			MusicDir: cfg.MusicDir,
		})
	},
}

func init() {
	serveCmd.Flags().StringP("config", "c", "", "Path to the configuration file")
	rootCmd.AddCommand(serveCmd)
}
