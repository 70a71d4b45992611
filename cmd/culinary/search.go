package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sahasharan/telugu-culinary-app2/internal/config"
	"github.com/sahasharan/telugu-culinary-app2/internal/recipe"
	"github.com/sahasharan/telugu-culinary-app2/internal/store"
)

var (
	searchDifficulty string
	searchJSON       bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the recipe catalog",
	Long: `Search recipes by name, ingredients or description. Telugu and
English terms both match.

Examples:
  culinary search బిర్యానీ
  culinary search mutton --difficulty hard
  culinary search sweet --json`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVarP(&searchDifficulty, "difficulty", "d", "", "filter by difficulty (easy, medium, hard)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output as JSON")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := args[0]

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	st, err := store.Open(cfg.Data.Dir, logger)
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}

	filter := recipe.SearchFilter{Query: query}
	if searchDifficulty != "" {
		d, ok := recipe.ParseDifficulty(searchDifficulty)
		if !ok {
			return fmt.Errorf("unknown difficulty %q (use easy, medium or hard)", searchDifficulty)
		}
		filter.Difficulty = d
	}

	results := st.Search(filter)

	if searchJSON {
		return outputJSON(query, results)
	}
	return outputHuman(query, results)
}

func outputJSON(query string, results []recipe.Recipe) error {
	output := struct {
		Query   string          `json:"query"`
		Count   int             `json:"count"`
		Results []recipe.Recipe `json:"results"`
	}{
		Query:   query,
		Count:   len(results),
		Results: results,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(data))
	return nil
}

func outputHuman(query string, results []recipe.Recipe) error {
	if len(results) == 0 {
		fmt.Printf("No recipes for \"%s\"\n", query)
		return nil
	}

	fmt.Printf("Results for \"%s\" (%d recipes)\n\n", query, len(results))

	for i, r := range results {
		fmt.Printf("%d. %s (%s)\n", i+1, r.Name, r.EnglishName)

		var meta []string
		if r.Category != "" {
			meta = append(meta, r.Category)
		}
		meta = append(meta, string(r.Difficulty), r.CookingTime, r.Servings)
		fmt.Printf("   %s\n", strings.Join(meta, " | "))

		if r.Description != "" {
			fmt.Printf("   %s\n", r.Description)
		}

		fmt.Println()
	}

	return nil
}
