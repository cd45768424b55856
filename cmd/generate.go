package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/content"
	"github.com/abhisek/quizforge/internal/llm"
	"github.com/abhisek/quizforge/internal/question"
	"github.com/abhisek/quizforge/internal/questiongen"
	"github.com/abhisek/quizforge/internal/store"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a validated question batch",
	Long: "Drafts questions with the configured LLM provider, validates\n" +
		"each one against the tier format rules, auto-repairs minor defects and\n" +
		"falls back to canned questions when generation keeps failing. The batch\n" +
		"is stored as a new session and printed as JSON.",
	RunE: func(cmd *cobra.Command, args []string) error {
		domain, _ := cmd.Flags().GetString("domain")
		tierFlag, _ := cmd.Flags().GetString("tier")
		mixed, _ := cmd.Flags().GetBool("mixed")
		count, _ := cmd.Flags().GetInt("count")
		topics, _ := cmd.Flags().GetStringSlice("topics")
		contentPath, _ := cmd.Flags().GetString("content")
		noSave, _ := cmd.Flags().GetBool("no-save")

		tier := question.Tier(tierFlag)
		if !mixed && !tier.Valid() {
			return fmt.Errorf("invalid tier %q: want easy, moderate or hard", tierFlag)
		}

		var summary *content.Summary
		if contentPath != "" {
			var err error
			summary, err = content.Load(contentPath)
			if err != nil {
				return fmt.Errorf("load content summary: %w", err)
			}
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		provider, err := llm.NewProviderFromEnv(ctx, st)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Generating from the fallback pools only.")
			provider = llm.NewMockProvider()
		}

		gen := questiongen.New(
			questiongen.NewLLMDrafter(provider, questiongen.DefaultConfig()),
			questiongen.DefaultConfig(),
		)

		batch, err := gen.GenerateBatch(ctx, questiongen.BatchInput{
			Domain:  domain,
			Topics:  topics,
			Tier:    tier,
			Mixed:   mixed,
			Count:   count,
			Content: summary,
		})
		if err != nil {
			return fmt.Errorf("generate batch: %w", err)
		}

		sess := &store.Session{
			ID:        uuid.NewString(),
			Domain:    domain,
			Tier:      tier,
			Mixed:     mixed,
			Questions: batch,
		}
		if !noSave {
			if err := st.SaveSession(ctx, sess); err != nil {
				return fmt.Errorf("save session: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Session %s saved (%d questions).\n", sess.ID, len(batch))
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(batch)
	},
}

func init() {
	generateCmd.Flags().String("domain", "", "Assessed subject area, e.g. computer-networks")
	generateCmd.Flags().String("tier", "moderate", "Difficulty tier: easy, moderate or hard")
	generateCmd.Flags().Bool("mixed", false, "Use the mixed easy/moderate/hard distribution instead of one tier")
	generateCmd.Flags().Int("count", 10, "Number of questions to generate")
	generateCmd.Flags().StringSlice("topics", nil, "Pin the topic pool (comma separated)")
	generateCmd.Flags().String("content", "", "Path to an ingested content summary JSON file")
	generateCmd.Flags().Bool("no-save", false, "Print the batch without storing a session")
	generateCmd.MarkFlagRequired("domain")
}
