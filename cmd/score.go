package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizforge/internal/question"
	"github.com/abhisek/quizforge/internal/scoring"
)

// submission is one learner answer as supplied by the caller, before
// grading.
type submission struct {
	QuestionID  string  `json:"question_id"`
	Selected    string  `json:"selected_answer"`
	Reasoning   string  `json:"reasoning"`
	Confidence  float64 `json:"confidence"`
	TimeSeconds float64 `json:"time_seconds"`
	Revisions   int     `json:"revisions"`
}

var scoreCmd = &cobra.Command{
	Use:   "score <session-id>",
	Short: "Score submitted answers and build the mastery profile",
	Long: "Score grades a responses file against the session's question batch,\n" +
		"derives per-tier and per-topic scores plus the overall profile, and\n" +
		"stores the results on the session.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		responsesPath, _ := cmd.Flags().GetString("responses")
		excludeFallbacks, _ := cmd.Flags().GetBool("exclude-fallbacks")
		asJSON, _ := cmd.Flags().GetBool("json")

		subs, err := readSubmissions(responsesPath)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		sess, err := st.GetSession(ctx, args[0])
		if err != nil {
			return fmt.Errorf("load session: %w", err)
		}

		if len(subs) != len(sess.Questions) {
			return fmt.Errorf("session has %d questions but %d responses were provided", len(sess.Questions), len(subs))
		}

		responses := make([]scoring.Response, len(subs))
		for i, sub := range subs {
			r := scoring.BuildResponse(sess.Questions[i], sub.Selected, sub.Reasoning, sub.Confidence, sub.TimeSeconds, sub.Revisions)
			if sub.QuestionID != "" {
				r.QuestionID = sub.QuestionID
			}
			responses[i] = r
		}

		analytics, err := scoring.Score(sess.Questions, responses, scoring.Options{
			ExcludeFallbacks: excludeFallbacks,
		})
		if err != nil {
			return fmt.Errorf("score session: %w", err)
		}

		if err := st.SaveResults(ctx, sess.ID, responses, analytics); err != nil {
			return fmt.Errorf("save results: %w", err)
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(analytics)
		}

		printAnalytics(analytics)
		return nil
	},
}

func init() {
	scoreCmd.Flags().String("responses", "-", "Path to the responses JSON file ('-' for stdin)")
	scoreCmd.Flags().Bool("exclude-fallbacks", false, "Drop fallback questions from concept mastery")
	scoreCmd.Flags().Bool("json", false, "Print the full analytics record as JSON")
}

func readSubmissions(path string) ([]submission, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open responses file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var subs []submission
	if err := json.NewDecoder(r).Decode(&subs); err != nil {
		return nil, fmt.Errorf("parse responses: %w", err)
	}
	return subs, nil
}

func printAnalytics(a *scoring.Analytics) {
	sep := strings.Repeat("─", 64)

	fmt.Printf("Confidence score:  %d\n", a.ConfidenceScore)
	fmt.Printf("Level:             %s\n", a.Level)
	fmt.Printf("Accuracy:          %.1f   Consistency: %.1f   Speed: %.1f\n",
		a.Accuracy, a.Consistency, a.Speed)

	fmt.Println()
	fmt.Println("By difficulty")
	fmt.Println(sep)
	fmt.Printf("%-10s  %6s  %8s  %10s  %10s\n", "Tier", "Count", "Correct", "Accuracy", "Mean time")
	for _, tier := range []question.Tier{question.TierEasy, question.TierModerate, question.TierHard} {
		d := a.Difficulty[tier]
		fmt.Printf("%-10s  %6d  %8d  %9.1f%%  %9.1fs\n",
			tier, d.Count, d.Correct, d.Accuracy, d.MeanTime)
	}

	if len(a.Concepts) > 0 {
		fmt.Println()
		fmt.Println("By topic")
		fmt.Println(sep)
		fmt.Printf("%-32s  %8s  %s\n", "Topic", "Overall", "Status")
		for _, c := range a.Concepts {
			topic := c.Topic
			if len(topic) > 32 {
				topic = topic[:32]
			}
			fmt.Printf("%-32s  %8.1f  %s\n", topic, c.Overall, c.Status)
		}
	}

	fmt.Println()
	fmt.Println(a.Interpretation)
	for _, rec := range a.Recommendations {
		fmt.Println("  -", rec)
	}
}
