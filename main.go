package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"hermes-gcs/app"
	"hermes-gcs/config"
	"hermes-gcs/inspect"
	"hermes-gcs/log"
)

var (
	version       = "0.3.1"
	thresholdFlag int
	settleFlag    int
	robotFlag     string
	noWatchFlag   bool

	rootCmd = &cobra.Command{
		Use:   "hermes-gcs",
		Short: "Hermes GCS - terminal ground control console with a floating robot control panel.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			log.Initialize()
			defer log.Close()

			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("hermes-gcs must run in a terminal")
			}
			lipgloss.SetColorProfile(termenv.NewOutput(os.Stdout).Profile)

			cfg := config.LoadConfig()

			// Flags override config
			if thresholdFlag > 0 {
				cfg.SnapThreshold = thresholdFlag
			}
			if settleFlag > 0 {
				cfg.SettleDelayMs = settleFlag
			}
			if robotFlag != "" {
				cfg.RobotName = robotFlag
			}

			var updates <-chan *config.Config
			if !noWatchFlag {
				stop := make(chan struct{})
				defer close(stop)
				ch, err := config.Watch(stop)
				if err != nil {
					log.WarningLog.Printf("config watcher unavailable: %v", err)
				} else {
					updates = ch
				}
			}

			return app.Run(ctx, cfg, updates)
		},
	}

	resetCmd = &cobra.Command{
		Use:   "reset",
		Short: "Reset the stored configuration to defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			if err := config.SaveConfig(config.DefaultConfig()); err != nil {
				return fmt.Errorf("failed to reset config: %w", err)
			}
			fmt.Println("Configuration has been reset to defaults")
			return nil
		},
	}

	debugCmd = &cobra.Command{
		Use:   "debug",
		Short: "Print debug information like config paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
			fmt.Printf("Effective snap threshold: %d\n", cfg.EffectiveSnapThreshold())
			if inspect.IsEnabled() {
				fmt.Printf("Inspect file: %s\n", inspect.GetInspectFile())
			} else {
				fmt.Printf("Inspection disabled (set %s=1)\n", inspect.EnvVar)
			}

			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of hermes-gcs",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("hermes-gcs version %s\n", version)
		},
	}
)

func init() {
	rootCmd.Flags().IntVarP(&thresholdFlag, "threshold", "t", 0,
		"Edge-snap distance in cells (overrides config and "+config.SnapThresholdEnv+")")
	rootCmd.Flags().IntVar(&settleFlag, "settle-ms", 0,
		"Resize settle delay in milliseconds (overrides config)")
	rootCmd.Flags().StringVarP(&robotFlag, "robot", "r", "",
		"Robot name shown in the console title bar")
	rootCmd.Flags().BoolVar(&noWatchFlag, "no-watch", false,
		"Disable live reload of the config file")

	rootCmd.AddCommand(debugCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(resetCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
	}
}
