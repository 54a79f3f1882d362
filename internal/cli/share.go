package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/myrinnew/wpkit/internal/tui"
	"github.com/myrinnew/wpkit/internal/wpapi"
)

func newShareCmd(debug *bool) *cobra.Command {
	var (
		title string
		file  string
	)

	cmd := &cobra.Command{
		Use:   "share",
		Short: "Draft a post from shared content, picking categories",
		RunE: func(_ *cobra.Command, _ []string) error {
			deps, cleanup, err := setup(*debug)
			if err != nil {
				return err
			}
			defer cleanup()

			content, err := readShareContent(file)
			if err != nil {
				return err
			}
			if title == "" {
				title = "Shared post"
			}

			return tui.RunShare(deps, wpapi.Draft{Title: title, Content: content})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "draft title")
	cmd.Flags().StringVar(&file, "file", "", "file with the shared content (default: stdin)")
	return cmd
}

func readShareContent(file string) (string, error) {
	if file != "" {
		b, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	fi, err := os.Stdin.Stat()
	if err != nil {
		return "", err
	}
	// Only consume stdin when something is piped in.
	if fi.Mode()&os.ModeCharDevice != 0 {
		return "", fmt.Errorf("no content: pass --file or pipe content on stdin")
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
