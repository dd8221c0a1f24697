// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/content-assistant/internal/content"
	"github.com/pdiddy/content-assistant/pkg/types"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate a structured content plan",
	Long: `Plan asks the model for a content calendar covering the requested period
and channels, validates the returned structure, and stores it in the
session store. Topics from stored plans feed later broadcast and article
topic suggestions.`,
	RunE: runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
	niche, _ := cmd.Flags().GetString("niche")
	if niche == "" {
		return fmt.Errorf("--niche is required")
	}
	period, _ := cmd.Flags().GetString("period")
	channels, _ := cmd.Flags().GetString("channels")
	extraContext, _ := cmd.Flags().GetString("context")

	svc, err := newAssistant(cmd)
	if err != nil {
		return err
	}

	plan, err := svc.GeneratePlan(context.Background(), types.PlanRequest{
		Niche:        niche,
		Period:       period,
		Channels:     channels,
		ExtraContext: extraContext,
	})
	if err != nil {
		var formatErr *content.FormatError
		if errors.As(err, &formatErr) {
			fmt.Fprintln(os.Stderr, "Model returned an unusable plan. Raw output follows:")
			fmt.Fprintln(os.Stderr, formatErr.Raw)
		}
		return err
	}

	planJSON, err := json.Marshal(plan.Items)
	if err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}

	noSave, _ := cmd.Flags().GetBool("no-save")
	if !noSave {
		id, err := saveGeneration(types.Generation{
			Kind:    types.KindPlan,
			Niche:   niche,
			Content: string(planJSON),
		})
		if err != nil {
			return err
		}

		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.SaveTopics(id, plan.Topics()); err != nil {
			return err
		}
	}

	if outFile, _ := cmd.Flags().GetString("out"); outFile != "" {
		data, err := yaml.Marshal(plan.Items)
		if err != nil {
			return fmt.Errorf("encoding plan: %w", err)
		}
		if err := os.WriteFile(outFile, data, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", outFile, err)
		}
		fmt.Fprintf(os.Stderr, "Plan written to %s\n", outFile)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(plan.Items)
	}
	return yaml.NewEncoder(os.Stdout).Encode(plan.Items)
}

func init() {
	planCmd.Flags().String("niche", "", "business niche (required)")
	planCmd.Flags().String("period", "2 недели", "calendar span the plan covers")
	planCmd.Flags().String("channels", "telegram, vk, email", "comma-separated distribution channels")
	planCmd.Flags().String("context", "", "extra notes about the audience or brand")
	planCmd.Flags().String("out", "", "also write the plan to a YAML file")
	planCmd.Flags().Bool("json", false, "output the plan as JSON instead of YAML")
	planCmd.Flags().Bool("no-save", false, "do not store the plan in the session store")

	rootCmd.AddCommand(planCmd)
}
