package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vowsmith/planner/internal/models"
	"github.com/vowsmith/planner/internal/timeline"
	"github.com/vowsmith/planner/internal/validation"
)

// NewGenerateCmd creates the generate command
func NewGenerateCmd() *cobra.Command {
	var (
		file   string
		format string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a wedding-day timeline from a preferences file",
		RunE: func(cmd *cobra.Command, args []string) error {
			prefs, err := loadPreferences(file)
			if err != nil {
				return err
			}

			events := timeline.NewGenerator(nil).Generate(prefs)

			switch format {
			case "table":
				printTable(cmd, events)
			case "diagram":
				cmd.Print(timeline.Diagram(diagramTitle(prefs), prefs.WeddingDate, events))
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(events)
			default:
				return fmt.Errorf("unknown format %q (must be 'table', 'diagram', or 'json')", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML preferences file (required)")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table, diagram, or json")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// loadPreferences reads a YAML preferences file and merges it over the
// defaults, the same single-merge boundary the API uses.
func loadPreferences(path string) (models.TimelinePreferences, error) {
	prefs := models.DefaultPreferences()

	raw, err := os.ReadFile(path)
	if err != nil {
		return prefs, fmt.Errorf("read preferences file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &prefs); err != nil {
		return prefs, fmt.Errorf("parse preferences file: %w", err)
	}

	// Check the enum fields first so a typo gets a readable message instead
	// of a validator field dump
	if prefs.DinnerService != "" {
		if err := validation.ValidateDinnerService(string(prefs.DinnerService)); err != nil {
			return prefs, err
		}
	}
	if prefs.DessertService != "" {
		if err := validation.ValidateDessertService(string(prefs.DessertService)); err != nil {
			return prefs, err
		}
	}
	if err := validation.Validate.Struct(prefs); err != nil {
		return prefs, fmt.Errorf("invalid preferences: %w", err)
	}
	prefs.EnsureEventIDs()
	return prefs, nil
}

func printTable(cmd *cobra.Command, events []models.TimelineEvent) {
	for _, group := range timeline.GroupByCategory(events) {
		cmd.Printf("%s\n", group.Name)
		for _, e := range group.Events {
			if e.Notes != "" {
				cmd.Printf("  %-9s %s - %s\n", e.Time, e.Label, e.Notes)
			} else {
				cmd.Printf("  %-9s %s\n", e.Time, e.Label)
			}
		}
	}
}

func diagramTitle(prefs models.TimelinePreferences) string {
	if prefs.CeremonyVenue != "" {
		return "Wedding Day - " + prefs.CeremonyVenue
	}
	return "Wedding Day"
}
