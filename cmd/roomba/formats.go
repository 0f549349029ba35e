package main

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/roomba/internal/registry"
	"github.com/vovakirdan/roomba/internal/render"
)

//go:embed docs/formats.md
var formatsDoc string

const docWidth = 80

func newFormatsCmd() *cobra.Command {
	var doc bool

	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List supported input formats",
		Long:  `Shows the registered room description formats and the file extensions they claim.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if doc {
				_, err := io.WriteString(out, renderDoc(formatsDoc, isTerminal(out)))
				return err
			}
			listFormats(out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&doc, "doc", false, "Show the full format documentation")
	return cmd
}

func listFormats(out io.Writer) {
	formats := registry.List()

	if len(formats) == 0 {
		fmt.Fprintln(out, "No formats available.")
		return
	}

	fmt.Fprintln(out, "Supported formats:")
	fmt.Fprintln(out)

	maxNameLen := len("Name")
	for _, f := range formats {
		if len(f.Name) > maxNameLen {
			maxNameLen = len(f.Name)
		}
	}

	fmt.Fprintf(out, "  %-*s  %-12s  %s\n", maxNameLen, "Name", "Extensions", "Description")
	fmt.Fprintf(out, "  %-*s  %-12s  %s\n", maxNameLen, "----", "----------", "-----------")

	for _, f := range formats {
		exts := strings.Join(f.Extensions, " ")
		if f.Name == registry.DefaultFormat {
			exts += " *"
		}
		fmt.Fprintf(out, "  %-*s  %-12s  %s\n", maxNameLen, f.Name, exts, f.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "* used for unknown extensions. Run 'roomba formats --doc' for details.")
}

// renderDoc renders markdown for the terminal, or returns it unchanged if
// glamour fails.
func renderDoc(md string, tty bool) string {
	style := "notty"
	if tty {
		style = "dark"
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(docWidth),
	)
	if err != nil {
		return md
	}
	str, err := r.Render(md)
	if err != nil {
		return md
	}
	return str
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && render.IsTerminal(f)
}
