package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "id3tool",
	Short: "id3tool - ID3v2 tag inspector and editor",
	Long: `id3tool reads and writes ID3v2 metadata frames in audio files,
maintains a searchable library of scanned tracks and can serve the
library over HTTP.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("library", "l", "./library", "Path to the track library")
}
