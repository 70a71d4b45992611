package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sahasharan/telugu-culinary-app2/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage Telugu Culinary configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show merged configuration",
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the configuration file path",
	Run:   runConfigPath,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	fmt.Println("# Merged configuration (defaults + file + environment)")
	fmt.Println(string(data))
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) {
	path := cfgPath
	if path == "" {
		path = config.FileName
	}
	if _, err := os.Stat(path); err != nil {
		fmt.Printf("%s (not found, defaults in effect)\n", path)
		return
	}
	fmt.Println(path)
}
