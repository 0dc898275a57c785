package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"draftsmith/internal/catalog"
)

// listEntry is the JSON view of one catalog row.
type listEntry struct {
	ID         int64  `json:"id"`
	DraftID    string `json:"draft_id"`
	Name       string `json:"name"`
	OutputDir  string `json:"output_dir"`
	DurationUS int64  `json:"duration_us"`
	Segments   int    `json:"segments"`
	Images     int    `json:"images"`
	Seed       int64  `json:"seed"`
	CreatedAt  string `json:"created_at"`
}

func newListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show recent builds from the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := catalog.Open(cfg)
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			defer store.Close()

			entries, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list builds: %w", err)
			}

			if jsonOut {
				views := make([]listEntry, 0, len(entries))
				for _, entry := range entries {
					views = append(views, listEntryOf(entry))
				}
				return writeJSON(cmd, views)
			}

			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No builds recorded yet")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{
					strconv.FormatInt(entry.ID, 10),
					entry.Name,
					entry.CreatedAt.Local().Format("2006-01-02 15:04"),
					formatDurationUS(entry.DurationUS),
					strconv.Itoa(entry.SegmentCount),
					strconv.Itoa(entry.ImageCount),
					strconv.FormatInt(entry.Seed, 10),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Name", "Created", "Duration", "Segments", "Images", "Seed"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of builds to show (0 for all)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the list as JSON")
	return cmd
}

func listEntryOf(entry *catalog.Entry) listEntry {
	return listEntry{
		ID:         entry.ID,
		DraftID:    entry.DraftID,
		Name:       entry.Name,
		OutputDir:  entry.OutputDir,
		DurationUS: entry.DurationUS,
		Segments:   entry.SegmentCount,
		Images:     entry.ImageCount,
		Seed:       entry.Seed,
		CreatedAt:  entry.CreatedAt.UTC().Format(time.RFC3339),
	}
}
