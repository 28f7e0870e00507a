package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/prefeitura-rio/app-research-agent/internal/extract"
	"github.com/prefeitura-rio/app-research-agent/internal/models"
	"github.com/prefeitura-rio/app-research-agent/internal/utils"
)

var askCmd = &cobra.Command{
	Use:   "ask --mode <mode> <prompt>",
	Short: "Run a prompt through one of the agent modes",
	Long: `Ask routes the prompt like the chat UI does. web_search prints the papers
found for the normalized query; future_analysis prints the markdown report.

For future_analysis, --file reads the paper from a PDF and the prompt becomes
optional analysis requirements.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		modeName, _ := cmd.Flags().GetString("mode")
		mode, ok := models.ParseMode(modeName)
		if !ok {
			return fmt.Errorf("unknown mode %q", modeName)
		}
		maxResults, _ := cmd.Flags().GetInt("max-results")
		format, _ := cmd.Flags().GetString("format")
		file, _ := cmd.Flags().GetString("file")

		prompt := strings.TrimSpace(strings.Join(args, " "))
		if file != "" {
			if mode != models.ModeFutureAnalysis {
				return fmt.Errorf("--file only applies to %s", models.ModeFutureAnalysis)
			}
			var err error
			if prompt, err = paperPrompt(file, prompt); err != nil {
				return err
			}
		}
		if cfg.MaxPromptLength > 0 && len(prompt) > cfg.MaxPromptLength {
			return models.ErrPromptTooLong
		}

		router, err := newRouter(cmd.Context())
		if err != nil {
			return err
		}

		payload, err := router.Route(cmd.Context(), mode, prompt, maxResults)
		if err != nil {
			return fmt.Errorf("%s: %w", models.ErrorCode(err), err)
		}

		if payload.Query != nil {
			fmt.Fprintf(os.Stderr, "query (%s): %s\n", payload.Query.Source, payload.Query.Query)
		}
		if payload.Report != nil {
			switch format {
			case "text":
				fmt.Println(utils.StripMarkdown(payload.Report.Text))
			case "html":
				fmt.Println(utils.RenderHTML(payload.Report.Text))
			default:
				fmt.Println(payload.Report.Text)
			}
			return nil
		}
		return printResults(payload.Results, format == "json")
	},
}

// paperPrompt builds the future-analysis prompt from a PDF on disk
func paperPrompt(path, requirements string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	text, err := extract.PDF(content)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}

	prompt := "Paper text:\n" + text
	if requirements != "" {
		prompt += "\n\nAnalysis requirements:\n" + requirements
	}
	return prompt, nil
}

func init() {
	modes := make([]string, len(models.AllModes))
	for i, m := range models.AllModes {
		modes[i] = string(m)
	}
	askCmd.Flags().String("mode", string(models.ModeWebSearch), "agent mode ("+strings.Join(modes, ", ")+")")
	askCmd.Flags().Int("max-results", models.DefaultMaxResults, "number of papers for web_search (1-50)")
	askCmd.Flags().String("format", "markdown", "output format: markdown, json (web_search), text or html (future_analysis)")
	askCmd.Flags().String("file", "", "paper PDF for future_analysis")

	rootCmd.AddCommand(askCmd)
}
