package main

import (
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/codesmithlabs/codesmith/internal/api"
	"github.com/codesmithlabs/codesmith/internal/config"
	"github.com/codesmithlabs/codesmith/internal/core"
	"github.com/codesmithlabs/codesmith/internal/tui"
)

func main() {
	var (
		serverURL  string
		language   string
		framework  string
		configPath string
		notify     bool
	)

	root := &cobra.Command{
		Use:   "codesmith",
		Short: "Terminal client for the code generation backend",
		Long: "codesmith is a terminal UI for generating code through a running\n" +
			"backend server. Sessions, history, and results live in the terminal;\n" +
			"the backend does the generating.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				os.Setenv("CODESMITH_CONFIG", configPath)
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			// flags override file and env
			if serverURL != "" {
				cfg.Server.BaseURL = serverURL
			}
			if language != "" {
				if _, err := core.ParseLanguage(language); err != nil {
					return err
				}
				cfg.Generation.DefaultLanguage = language
			}
			if framework != "" {
				cfg.Generation.Framework = framework
			}
			if cmd.Flags().Changed("notify") {
				cfg.UI.Notify = notify
			}

			client, err := api.New(cfg.Server.BaseURL, time.Duration(cfg.Server.TimeoutSeconds)*time.Second)
			if err != nil {
				return fmt.Errorf("backend URL: %w", err)
			}

			p := tea.NewProgram(tui.New(cfg, client), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run: %w", err)
			}
			return nil
		},
	}

	root.Flags().StringVar(&serverURL, "server", "", "backend base URL (default from config)")
	root.Flags().StringVarP(&language, "language", "l", "", "default target language")
	root.Flags().StringVar(&framework, "framework", "", "default framework hint")
	root.Flags().StringVar(&configPath, "config", "", "config file path")
	root.Flags().BoolVar(&notify, "notify", false, "desktop notification when generation finishes")

	log.SetFlags(0)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
