// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pdiddy/content-assistant/internal/export"
	"github.com/pdiddy/content-assistant/pkg/types"
)

var articleCmd = &cobra.Command{
	Use:   "article",
	Short: "Generate an SEO article",
	Long: `Article streams a long-form SEO article to stdout as Markdown. With
--html or --md the result is also written to the output directory; the
HTML variant is a standalone page that renders the Markdown in the
browser.`,
	RunE: runArticle,
}

func runArticle(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	if topic == "" {
		return fmt.Errorf("--topic is required")
	}
	niche, _ := cmd.Flags().GetString("niche")
	if niche == "" {
		return fmt.Errorf("--niche is required")
	}
	keywords, _ := cmd.Flags().GetString("keywords")
	length, _ := cmd.Flags().GetString("length")

	svc, err := newAssistant(cmd)
	if err != nil {
		return err
	}

	stream, err := svc.StreamArticle(context.Background(), types.ArticleRequest{
		Niche:          niche,
		Topic:          topic,
		TargetKeywords: keywords,
		Length:         length,
	})
	if err != nil {
		return err
	}

	text, err := streamToStdout(stream)
	if err != nil {
		return err
	}

	if noSave, _ := cmd.Flags().GetBool("no-save"); !noSave {
		if _, err := saveGeneration(types.Generation{
			Kind:    types.KindArticle,
			Niche:   niche,
			Topic:   topic,
			Content: text,
		}); err != nil {
			return err
		}
	}

	if htmlOut, _ := cmd.Flags().GetBool("html"); htmlOut {
		path, err := writeArtifact(export.Filename(string(types.KindArticle), topic, "html"),
			export.RenderHTML(topic, text))
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "HTML written to %s\n", path)
	}
	if mdOut, _ := cmd.Flags().GetBool("md"); mdOut {
		path, err := writeArtifact(export.Filename(string(types.KindArticle), topic, "md"), []byte(text))
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Markdown written to %s\n", path)
	}
	return nil
}

// writeArtifact writes an export file into the configured output directory
// and returns the written path.
func writeArtifact(name string, data []byte) (string, error) {
	outputDir := assistantConfig().Export.OutputDir
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(outputDir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

func init() {
	articleCmd.Flags().String("niche", "", "business niche (required)")
	articleCmd.Flags().String("topic", "", "article subject (required)")
	articleCmd.Flags().String("keywords", "", "SEO keywords to weave into the text, comma-separated")
	articleCmd.Flags().String("length", "2500 слов", "requested size")
	articleCmd.Flags().Bool("html", false, "also export the article as a standalone HTML page")
	articleCmd.Flags().Bool("md", false, "also export the article as a Markdown file")
	articleCmd.Flags().Bool("no-save", false, "do not store the result in the session store")

	rootCmd.AddCommand(articleCmd)
}
