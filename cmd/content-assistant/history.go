// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/content-assistant/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List stored generations",
	Long: `History lists generations from the session store, newest first. Use
"export" with an ID from the listing to re-export a stored result.`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	kindFlag, _ := cmd.Flags().GetString("kind")
	kind := types.GenerationKind(kindFlag)
	if kindFlag != "" && !types.ValidKinds[kind] {
		return fmt.Errorf("unknown kind %q: want plan, broadcast, lead_magnet, or article", kindFlag)
	}
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	generations, err := store.List(kind, limit)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(generations)
	}

	if len(generations) == 0 {
		fmt.Println("No stored generations.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-5s  %-12s  %-20s  %-30s  %s\n",
		"ID", "Kind", "Niche", "Topic", "Created")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 90))
	for _, gen := range generations {
		topic := gen.Topic
		if topic == "" {
			topic = firstLine(gen.Content)
		}
		if len([]rune(topic)) > 30 {
			topic = string([]rune(topic)[:27]) + "..."
		}
		fmt.Fprintf(os.Stdout, "%-5d  %-12s  %-20s  %-30s  %s\n",
			gen.ID, gen.Kind, gen.Niche, topic, gen.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func init() {
	historyCmd.Flags().String("kind", "", "filter by kind: plan, broadcast, lead_magnet, article")
	historyCmd.Flags().Int("limit", 20, "maximum number of entries (0 = no limit)")
	historyCmd.Flags().Bool("json", false, "output the listing as JSON")

	rootCmd.AddCommand(historyCmd)
}
