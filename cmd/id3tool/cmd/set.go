package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jxs/go-id3/pkg/frame"
	"github.com/jxs/go-id3/pkg/tag"
)

// setCmd represents the set command
var setCmd = &cobra.Command{
	Use:   "set <file> <frame-id> <value>",
	Short: "Set a text frame and rewrite the file's tag",
	Long: `Set a text frame and rewrite the file's tag in front of the
audio stream. A file without a tag gets a fresh ID3v2.3 one.

Example:
  id3tool set song.mp3 TIT2 "New Title"`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, frameID, value := args[0], args[1], args[2]
		if !isTextFrameID(frameID) {
			return fmt.Errorf("%q is not a text frame identifier", frameID)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		r := bytes.NewReader(data)
		t, err := tag.Decode(r)
		audio := data
		switch {
		case err == nil:
			audio = data[len(data)-r.Len():]
		case errors.Is(err, tag.ErrNoTag),
			errors.Is(err, io.EOF),
			errors.Is(err, io.ErrUnexpectedEOF):
			t = tag.New()
		default:
			return err
		}

		t.AddFrame(frame.WithContent(frameID, frame.Text(value)))

		out, _ := cmd.Flags().GetString("output")
		if out == "" {
			out = path
		}
		var buf bytes.Buffer
		if _, err := t.Encode(&buf); err != nil {
			return err
		}
		buf.Write(audio)
		return os.WriteFile(out, buf.Bytes(), 0600)
	},
}

// isTextFrameID reports whether the identifier names a plain text frame in
// either the 3- or 4-byte namespace.
func isTextFrameID(id string) bool {
	switch len(id) {
	case 3:
		return id[0] == 'T' && id != "TXX"
	case 4:
		return id[0] == 'T' && id != "TXXX"
	default:
		return false
	}
}

func init() {
	setCmd.Flags().StringP("output", "o", "", "Write the result to this file instead of rewriting in place")
	rootCmd.AddCommand(setCmd)
}
