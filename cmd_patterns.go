package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/patterns"
)

type presetInfo struct {
	Name     string               `json:"name"`
	Title    string               `json:"title"`
	Width    int                  `json:"width"`
	Height   int                  `json:"height"`
	Boundary model.BoundaryPolicy `json:"boundary"`
	Delay    string               `json:"delay"`
}

type patternInfo struct {
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Cells       int                  `json:"cells"`
	Width       int                  `json:"width"`
	Height      int                  `json:"height"`
	Boundary    model.BoundaryPolicy `json:"boundary"`
}

func newPatternsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List presets and catalog patterns",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := patterns.Builtin()
			if path, _ := cmd.Flags().GetString("catalog"); path != "" {
				var err error
				if catalog, err = patterns.LoadCatalog(path); err != nil {
					return err
				}
			}
			jsonOut, _ := cmd.Flags().GetBool("json")
			return listPatterns(cmd.OutOrStdout(), catalog, jsonOut)
		},
	}
	cmd.Flags().String("catalog", "", "YAML file with extra patterns")
	return cmd
}

func listPatterns(out io.Writer, catalog *patterns.Catalog, jsonOut bool) error {
	var (
		presets []presetInfo
		pats    []patternInfo
	)
	for _, name := range patterns.PresetNames() {
		p, err := patterns.LookupPreset(name)
		if err != nil {
			return err
		}
		presets = append(presets, presetInfo{
			Name:     p.Name,
			Title:    p.Title,
			Width:    p.Width,
			Height:   p.Height,
			Boundary: p.Boundary,
			Delay:    p.Delay.String(),
		})
	}
	for _, name := range catalog.Names() {
		p, err := catalog.Lookup(name)
		if err != nil {
			return err
		}
		w, h := p.Size()
		pats = append(pats, patternInfo{Name: p.Name, Description: p.Description, Cells: len(p.Cells), Width: w, Height: h, Boundary: p.Boundary})
	}

	if jsonOut {
		return json.NewEncoder(out).Encode(map[string]any{"presets": presets, "patterns": pats})
	}

	fmt.Fprintln(out, "Presets:")
	for _, p := range presets {
		fmt.Fprintf(out, "  %-18s %dx%d %-4s %-8s %s\n", p.Name, p.Width, p.Height, p.Boundary, p.Delay, p.Title)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Patterns:")
	for _, p := range pats {
		fmt.Fprintf(out, "  %-18s %2d cells %dx%d %-4s %s\n", p.Name, p.Cells, p.Width, p.Height, p.Boundary, p.Description)
	}
	return nil
}
