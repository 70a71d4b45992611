package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sahasharan/telugu-culinary-app2/internal/config"
	"github.com/sahasharan/telugu-culinary-app2/internal/store"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show catalog status and statistics",
	Long: `Display Telugu Culinary status including:
- Configuration summary
- Recipe counts by category
- Favorites count
- Assistant API key status`,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	fmt.Println("Telugu Culinary Status")
	fmt.Println(strings.Repeat("=", 40))

	fmt.Println("\nConfiguration:")
	fmt.Printf("  Server:    %s\n", cfg.Server.Addr)
	fmt.Printf("  Data:      %s\n", cfg.Data.Dir)

	fmt.Println("\nAssistant:")
	fmt.Printf("  Model:     %s\n", cfg.Assistant.Model)
	fmt.Printf("  API key:   %s\n", keyStatus(cfg.Assistant.APIKey()))

	fmt.Println("\nOpening data files...")

	st, err := store.Open(cfg.Data.Dir, logger)
	if err != nil {
		fmt.Printf("  Status:    FAILED (%s)\n", err)
		return nil // Don't fail command, just report status
	}

	fmt.Println("  Status:    OK")

	fmt.Println("\nRecipes by category:")
	total := 0
	for _, category := range st.Categories() {
		count := len(st.CategoryRecipes(category))
		fmt.Printf("  %-12s %d\n", category+":", count)
		total += count
	}
	fmt.Printf("  %-12s %d\n", "TOTAL:", total)

	fmt.Printf("\nFavorites:   %d\n", st.Stats().Favorites)

	return nil
}

func keyStatus(key string) string {
	if key == "" {
		return "not set"
	}
	// Show first 4 and last 4 chars
	if len(key) > 12 {
		return key[:4] + "..." + key[len(key)-4:] + " (set)"
	}
	return "****** (set)"
}
