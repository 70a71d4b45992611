package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sahasharan/telugu-culinary-app2/internal/config"
	"github.com/sahasharan/telugu-culinary-app2/internal/store"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file and seed the data directory",
	Long: `Create culinary.yaml in the working directory and seed the data
directory with the starter recipe catalog. Existing files are left
alone unless --force is given.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
}

func runInit(cmd *cobra.Command, args []string) error {
	path := cfgPath
	if path == "" {
		path = config.FileName
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.WriteDefault(path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	fmt.Printf("Wrote %s\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := os.MkdirAll(cfg.Data.Dir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	// Opening the store seeds recipes.json with the starter catalog when
	// the file does not exist yet.
	st, err := store.Open(cfg.Data.Dir, logger)
	if err != nil {
		return fmt.Errorf("seeding data: %w", err)
	}

	stats := st.Stats()
	fmt.Printf("Data directory %s ready (%d recipes in %d categories)\n",
		cfg.Data.Dir, stats.Recipes, stats.Categories)
	fmt.Printf("Run \"culinary serve\" and open http://localhost%s\n", cfg.Server.Addr)

	return nil
}
