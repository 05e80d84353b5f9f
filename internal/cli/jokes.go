package cli

import (
	"errors"
	"fmt"

	"github.com/harun/jokebot/pkg/joke"
	"github.com/spf13/cobra"
)

var (
	tellLanguage string
	tellCategory string
)

var jokesCmd = &cobra.Command{
	Use:   "jokes",
	Short: "Inspect the joke corpus",
}

var jokesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show how many jokes each language and category has",
	Args:  cobra.NoArgs,
	RunE:  runJokesList,
}

var jokesTellCmd = &cobra.Command{
	Use:   "tell",
	Short: "Print one joke and exit",
	Args:  cobra.NoArgs,
	RunE:  runJokesTell,
}

func init() {
	jokesTellCmd.Flags().StringVar(&tellLanguage, "language", joke.LanguageEnglish.String(), "joke language (en, es, de)")
	jokesTellCmd.Flags().StringVar(&tellCategory, "category", joke.CategoryNeutral.String(), "joke category (neutral, chuck, all)")

	jokesCmd.AddCommand(jokesListCmd)
	jokesCmd.AddCommand(jokesTellCmd)
	rootCmd.AddCommand(jokesCmd)
}

func loadCorpus() (*joke.Corpus, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	corpus, err := joke.LoadCorpus(cfg.Jokes.File, cfg.Jokes.Seed)
	if err != nil {
		return nil, fmt.Errorf("failed to load jokes: %w", err)
	}
	return corpus, nil
}

func runJokesList(cmd *cobra.Command, args []string) error {
	corpus, err := loadCorpus()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-10s %-10s %s\n", "LANGUAGE", "CATEGORY", "JOKES")
	for _, lang := range joke.Languages {
		for _, cat := range joke.Categories {
			fmt.Fprintf(out, "%-10s %-10s %d\n", lang, cat, corpus.Count(lang, cat))
		}
	}

	return nil
}

func runJokesTell(cmd *cobra.Command, args []string) error {
	lang, err := joke.ParseLanguage(tellLanguage)
	if err != nil {
		return err
	}
	cat, err := joke.ParseCategory(tellCategory)
	if err != nil {
		return err
	}

	corpus, err := loadCorpus()
	if err != nil {
		return err
	}

	text, err := corpus.Fetch(cmd.Context(), lang, cat)
	if err != nil {
		var perr *joke.ProviderError
		if errors.As(err, &perr) {
			return fmt.Errorf("no %s joke available in %s: %w", perr.Category, perr.Language, perr.Err)
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}
