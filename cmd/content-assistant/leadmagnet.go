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

var leadMagnetCmd = &cobra.Command{
	Use:   "lead-magnet",
	Short: "Generate a long-form lead magnet document",
	Long: `Lead-magnet streams a guide, checklist, or similar long-form document to
stdout as Markdown. With --pdf the result is also laid out as an A4 PDF
in the output directory.`,
	RunE: runLeadMagnet,
}

func runLeadMagnet(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	if topic == "" {
		return fmt.Errorf("--topic is required")
	}
	niche, _ := cmd.Flags().GetString("niche")
	if niche == "" {
		return fmt.Errorf("--niche is required")
	}
	lmType, _ := cmd.Flags().GetString("type")
	audience, _ := cmd.Flags().GetString("audience")
	length, _ := cmd.Flags().GetString("length")

	svc, err := newAssistant(cmd)
	if err != nil {
		return err
	}

	stream, err := svc.StreamLeadMagnet(context.Background(), types.LeadMagnetRequest{
		Type:     lmType,
		Topic:    topic,
		Audience: audience,
		Length:   length,
		Niche:    niche,
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
			Kind:    types.KindLeadMagnet,
			Niche:   niche,
			Topic:   topic,
			Content: text,
		}); err != nil {
			return err
		}
	}

	if pdf, _ := cmd.Flags().GetBool("pdf"); pdf {
		path, err := writePDF(string(types.KindLeadMagnet), topic, text)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "PDF written to %s\n", path)
	}
	return nil
}

// writePDF lays the Markdown out as a PDF in the configured output
// directory and returns the written path.
func writePDF(prefix, topic, markdown string) (string, error) {
	cfg := assistantConfig().Export

	renderer, err := export.NewPDFRenderer(cfg.FontsDir)
	if err != nil {
		return "", err
	}
	pdf, err := renderer.Render(topic, markdown)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(cfg.OutputDir, export.Filename(prefix, topic, "pdf"))
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}

func init() {
	leadMagnetCmd.Flags().String("type", "гайд", "document format: гайд, чек-лист, инструкция")
	leadMagnetCmd.Flags().String("topic", "", "document subject (required)")
	leadMagnetCmd.Flags().String("audience", "", "intended readers")
	leadMagnetCmd.Flags().String("length", "5 страниц", "requested size")
	leadMagnetCmd.Flags().String("niche", "", "business niche (required)")
	leadMagnetCmd.Flags().Bool("pdf", false, "also export the document as PDF")
	leadMagnetCmd.Flags().Bool("no-save", false, "do not store the result in the session store")

	rootCmd.AddCommand(leadMagnetCmd)
}
