package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jxs/go-id3/pkg/library"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the tracks in the library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		libPath, _ := cmd.Flags().GetString("library")
		lib, err := library.Open(libPath)
		if err != nil {
			return err
		}
		defer lib.Close()

		entries, err := lib.List()
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("%s  %s - %s (%s)  [%d frames]  %s\n",
				e.ID, e.Artist, e.Title, e.Album, e.FrameCount, e.Path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
