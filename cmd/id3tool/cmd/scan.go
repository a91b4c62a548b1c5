package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jxs/go-id3/pkg/library"
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "Index the ID3v2 tags of every mp3 under a directory",
	Long: `Index the ID3v2 tags of every mp3 under a directory into the
track library.

Example:
  id3tool scan ~/Music --library ./library`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		libPath, _ := cmd.Flags().GetString("library")
		lib, err := library.Open(libPath)
		if err != nil {
			return err
		}
		defer lib.Close()

		added, skipped, err := lib.ScanDir(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("indexed %d tracks, skipped %d\n", added, skipped)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
