// This file contains the connectivity check and config commands.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"eksgen/internal/config"
	"eksgen/internal/prompt"
)

// checkCmd verifies the Gemini API key and model before a full run.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Test the Gemini API connection",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, client, err := loadAndConnect(cmd)
		if err != nil {
			return err
		}
		defer client.Close()

		resp, err := client.Ping(cmd.Context(), prompt.ConnectivityCheck())
		if err != nil {
			return fmt.Errorf("gemini connection test failed: %w", err)
		}

		logger.Info("gemini connection test successful",
			zap.String("model", client.Model()),
			zap.String("response", strings.TrimSpace(resp)))
		fmt.Println("Gemini API connection successful")
		return nil
	},
}

// configCmd prints or writes the effective configuration.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialize the configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		write, _ := cmd.Flags().GetBool("init")

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		if write {
			if err := cfg.Save(configPath); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", configPath)
			return nil
		}

		fmt.Printf("cluster:   %s (%s)\n", cfg.Cluster.Name, cfg.Cluster.Region)
		fmt.Printf("registry:  %s\n", cfg.ECRRegistry())
		fmt.Printf("model:     %s\n", cfg.Gemini.Model)
		fmt.Printf("output:    %s\n", cfg.Output.Dir)
		if cfg.Gemini.APIKey == "" {
			fmt.Println("api key:   NOT CONFIGURED")
		} else {
			fmt.Println("api key:   configured")
		}
		return nil
	},
}

func init() {
	configCmd.Flags().Bool("init", false, "Write the effective configuration to the config file")
}
