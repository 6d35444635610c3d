package commands

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/holyfit/holyfit-api/config"
	"github.com/holyfit/holyfit-api/pkg/ai/llm"
	"github.com/holyfit/holyfit-api/pkg/content"
	"github.com/holyfit/holyfit-api/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	providerName string
	lang         string
	verbose      bool

	cfg      *config.Config
	client   llm.StructuredClient
	provider *content.Provider
)

// Execute runs the CLI
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "holyfit",
		Short:         "Generate HOLYFIT diet plans and workouts from the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg = config.Load()
			if providerName != "" {
				cfg.ContentProvider = providerName
			}
			if lang != "" {
				cfg.ContentLanguage = lang
			}

			level := "error"
			if verbose {
				level = "debug"
			}
			log := logger.New(level, "console")

			var err error
			client, err = llm.NewClientFromConfig(cmd.Context(), cfg, log)
			if err != nil && !errors.Is(err, llm.ErrMissingCredential) {
				return err
			}

			provider = content.NewProvider(content.Config{
				Remote:          cfg.RemoteProvider(),
				CalorieTarget:   cfg.DailyCalorieTarget,
				DefaultLanguage: content.ParseLanguage(cfg.ContentLanguage),
				MaxTokens:       cfg.LLMMaxTokens,
			}, client, nil, log)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&providerName, "provider", "", "content provider: mock, gemini, openai, ollama (default $CONTENT_PROVIDER)")
	root.PersistentFlags().StringVar(&lang, "lang", "", "response language: ko, en (default $CONTENT_LANGUAGE)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log provider activity to stderr")

	root.AddCommand(dietCmd(), workoutCmd(), tiersCmd(), probeCmd())
	return root
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
