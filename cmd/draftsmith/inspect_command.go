package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"draftsmith/internal/config"
	"draftsmith/internal/draft"
)

// inspectView is the JSON view of a decoded wire document.
type inspectView struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	DurationUS int64          `json:"duration_us"`
	FPS        float64        `json:"fps"`
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Ratio      string         `json:"ratio"`
	Segments   int            `json:"segments"`
	Tracks     []inspectTrack `json:"tracks"`
	Materials  map[string]int `json:"materials"`
}

type inspectTrack struct {
	Type     string `json:"type"`
	Name     string `json:"name,omitempty"`
	Segments int    `json:"segments"`
}

func newInspectCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:         "inspect <draft_content.json | draft folder>",
		Short:       "Summarize a draft wire document",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := config.ExpandPath(args[0])
			if err != nil {
				return fmt.Errorf("resolve path: %w", err)
			}
			info, err := os.Stat(target)
			if err != nil {
				return fmt.Errorf("inspect %s: %w", target, err)
			}
			if info.IsDir() {
				target = filepath.Join(target, "draft_content.json")
			}

			data, err := os.ReadFile(target)
			if err != nil {
				return fmt.Errorf("read draft document: %w", err)
			}
			wire, err := draft.DecodeWire(data)
			if err != nil {
				return err
			}

			if jsonOut {
				return writeJSON(cmd, inspectViewOf(wire))
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderKeyValues([][2]string{
				{"Draft ID", wire.ID},
				{"Name", wire.Name},
				{"Duration", formatDurationUS(wire.Duration)},
				{"FPS", strconv.FormatFloat(wire.FPS, 'f', -1, 64)},
				{"Canvas", fmt.Sprintf("%dx%d (%s)", wire.Width, wire.Height, wire.Ratio)},
				{"Segments", strconv.Itoa(wire.SegmentCount)},
			}))

			trackRows := make([][]string, 0, len(wire.Tracks))
			for _, track := range wire.Tracks {
				trackRows = append(trackRows, []string{track.Type, track.Name, strconv.Itoa(track.Segments)})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Track", "Name", "Segments"},
				trackRows,
				[]columnAlignment{alignLeft, alignLeft, alignRight},
			))

			materialRows := make([][]string, 0, len(wire.MaterialCounts))
			for _, bucket := range sortedKeys(wire.MaterialCounts) {
				if wire.MaterialCounts[bucket] == 0 {
					continue
				}
				materialRows = append(materialRows, []string{bucket, strconv.Itoa(wire.MaterialCounts[bucket])})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Material", "Count"},
				materialRows,
				[]columnAlignment{alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print the summary as JSON")
	return cmd
}

func inspectViewOf(wire *draft.WireInfo) inspectView {
	view := inspectView{
		ID:         wire.ID,
		Name:       wire.Name,
		DurationUS: wire.Duration,
		FPS:        wire.FPS,
		Width:      wire.Width,
		Height:     wire.Height,
		Ratio:      wire.Ratio,
		Segments:   wire.SegmentCount,
		Materials:  wire.MaterialCounts,
	}
	for _, track := range wire.Tracks {
		view.Tracks = append(view.Tracks, inspectTrack{
			Type:     track.Type,
			Name:     track.Name,
			Segments: track.Segments,
		})
	}
	return view
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
