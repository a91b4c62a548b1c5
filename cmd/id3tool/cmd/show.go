package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jxs/go-id3/pkg/tag"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Show the decoded frames of a file's ID3v2 tag",
	Long: `Show the decoded frames of a file's ID3v2 tag.

Example:
  id3tool show song.mp3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		t, err := tag.Decode(f)
		if err != nil {
			return err
		}

		fmt.Printf("%s, %d frames\n", t.Version(), len(t.Frames()))
		for _, fr := range t.Frames() {
			fmt.Printf("%-4s  %s\n", fr.ID(), fr)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
