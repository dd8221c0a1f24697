// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/content-assistant/pkg/types"
)

var broadcastCmd = &cobra.Command{
	Use:   "broadcast",
	Short: "Generate a social or mailing post",
	Long: `Broadcast streams a short-form post for one channel to stdout as the
model produces it. Without --topic, recent topics from stored content
plans are listed as suggestions.`,
	RunE: runBroadcast,
}

func runBroadcast(cmd *cobra.Command, args []string) error {
	topic, _ := cmd.Flags().GetString("topic")
	if topic == "" {
		return suggestTopics()
	}

	channel, _ := cmd.Flags().GetString("channel")
	niche, _ := cmd.Flags().GetString("niche")
	if niche == "" {
		return fmt.Errorf("--niche is required")
	}
	tone, _ := cmd.Flags().GetString("tone")
	keywords, _ := cmd.Flags().GetString("keywords")

	svc, err := newAssistant(cmd)
	if err != nil {
		return err
	}

	stream, err := svc.StreamBroadcast(context.Background(), types.BroadcastRequest{
		Channel:       channel,
		Niche:         niche,
		Topic:         topic,
		Tone:          tone,
		BrandKeywords: keywords,
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
			Kind:    types.KindBroadcast,
			Niche:   niche,
			Topic:   topic,
			Content: text,
		}); err != nil {
			return err
		}
	}
	return nil
}

// suggestTopics lists topics from recent stored plans as candidates.
func suggestTopics() error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	topics, err := store.RecentTopics(20)
	if err != nil {
		return err
	}
	if len(topics) == 0 {
		return fmt.Errorf("--topic is required (no stored plans to suggest from)")
	}

	fmt.Fprintln(os.Stderr, "--topic is required. Topics from recent plans:")
	for _, topic := range topics {
		fmt.Fprintf(os.Stderr, "  - %s\n", topic)
	}
	return fmt.Errorf("--topic is required")
}

func init() {
	broadcastCmd.Flags().String("channel", "telegram", "target channel: telegram, vk, email")
	broadcastCmd.Flags().String("niche", "", "business niche (required)")
	broadcastCmd.Flags().String("topic", "", "post subject (required; omit to list suggestions)")
	broadcastCmd.Flags().String("tone", "дружелюбный", "tone of voice")
	broadcastCmd.Flags().String("keywords", "", "brand phrases to work into the text, comma-separated")
	broadcastCmd.Flags().Bool("no-save", false, "do not store the result in the session store")

	rootCmd.AddCommand(broadcastCmd)
}

// firstLine returns the first non-empty line of text, for display titles.
func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "# "))
		if line != "" {
			return line
		}
	}
	return ""
}
