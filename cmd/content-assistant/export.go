// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pdiddy/content-assistant/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export <generation-id>",
	Short: "Re-export a stored generation",
	Long: `Export reads one generation from the session store and writes it to the
output directory in the requested format: md, pdf, html (browser-rendered
Markdown), or html-inline (converted ahead of time, no external assets).`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func runExport(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("generation id must be a number: %q", args[0])
	}
	format, _ := cmd.Flags().GetString("format")

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	gen, err := store.Get(id)
	if err != nil {
		return err
	}

	title := gen.Topic
	if title == "" {
		title = firstLine(gen.Content)
	}
	prefix := string(gen.Kind)

	var path string
	switch format {
	case "md":
		path, err = writeArtifact(export.Filename(prefix, title, "md"), []byte(gen.Content))
	case "pdf":
		path, err = writePDF(prefix, title, gen.Content)
	case "html":
		path, err = writeArtifact(export.Filename(prefix, title, "html"),
			export.RenderHTML(title, gen.Content))
	case "html-inline":
		var page []byte
		page, err = export.RenderHTMLInline(title, gen.Content)
		if err != nil {
			return err
		}
		path, err = writeArtifact(export.Filename(prefix, title, "html"), page)
	default:
		return fmt.Errorf("unknown format %q: want md, pdf, html, or html-inline", format)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Exported generation %d to %s\n", gen.ID, path)
	return nil
}

func init() {
	exportCmd.Flags().String("format", "md", "export format: md, pdf, html, html-inline")

	rootCmd.AddCommand(exportCmd)
}
