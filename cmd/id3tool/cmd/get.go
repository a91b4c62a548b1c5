package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jxs/go-id3/pkg/tag"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <file> <frame-id>",
	Short: "Print the content of matching frames",
	Long: `Print the content of every frame with the given identifier.

Example:
  id3tool get song.mp3 TIT2`,
	Args: cobra.ExactArgs(2),
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

		found := false
		for _, fr := range t.Frames() {
			if fr.ID() == args[1] {
				fmt.Println(fr)
				found = true
			}
		}
		if !found {
			return fmt.Errorf("no %s frame in %s", args[1], args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
