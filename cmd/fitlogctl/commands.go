package main

import (
	"fmt"
	"io"
	"mime"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/2beens/fitlog/internal/middleware"
	"github.com/2beens/fitlog/internal/profile"
	"github.com/2beens/fitlog/internal/workouts"
)

type cliContext struct {
	serverURL string
}

func (c *cliContext) client() *apiClient {
	return newAPIClient(c.serverURL)
}

func newRootCmd() *cobra.Command {
	cc := &cliContext{}

	root := &cobra.Command{
		Use:           "fitlogctl",
		Short:         "Log workouts and read stats from a fitlog server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cc.serverURL, "server", defaultServerURL, "fitlog server base URL")

	root.AddCommand(
		newAddCmd(cc),
		newDeleteCmd(cc),
		newListCmd(cc),
		newStatsCmd(cc),
		newDailyCmd(cc),
		newProfileCmd(cc),
		newReportCmd(cc),
	)
	return root
}

// --- add ---

func newAddCmd(cc *cliContext) *cobra.Command {
	var category, exercise, idemKey string
	var duration int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a workout entry",
		Long: `Log a workout entry.

Examples:
  fitlogctl add --exercise "Jumping jacks" --duration 10 --category Warm-up
  fitlogctl add --exercise Squats --duration 20`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if idemKey == "" {
				idemKey = uuid.NewString()
			}

			resp, err := cc.client().post(cmd.Context(), "/workouts", map[string]string{
				"category": category,
				"exercise": exercise,
				"duration": strconv.Itoa(duration),
			}, map[string]string{
				middleware.IdempotencyKeyHeader: idemKey,
			})
			if err != nil {
				return err
			}

			var added workouts.AddWorkoutResponse
			if err := decodeJSON(resp, &added); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (id %d)\n", added.Message, added.Entry.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", string(workouts.DefaultCategory), "Warm-up, Workout or Cool-down")
	cmd.Flags().StringVar(&exercise, "exercise", "", "exercise name")
	cmd.Flags().IntVar(&duration, "duration", 0, "duration in minutes")
	cmd.Flags().StringVar(&idemKey, "idempotency-key", "", "key used to drop duplicate submissions (random by default)")
	_ = cmd.MarkFlagRequired("exercise")
	_ = cmd.MarkFlagRequired("duration")
	return cmd
}

// --- delete ---

func newDeleteCmd(cc *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <category> <id>",
		Short: "Delete a workout entry",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid id %q", args[1])
			}

			resp, err := cc.client().delete(cmd.Context(), fmt.Sprintf("/workouts/%s/%d", url.PathEscape(args[0]), id))
			if err != nil {
				return err
			}

			var res workouts.DeleteWorkoutResponse
			if err := decodeJSON(resp, &res); err != nil {
				return err
			}

			if res.Deleted {
				fmt.Fprintf(cmd.OutOrStdout(), "deleted %s entry %d\n", args[0], id)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "no %s entry with id %d\n", args[0], id)
			}
			return nil
		},
	}
}

// --- list ---

func newListCmd(cc *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all logged entries by category",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := cc.client().get(cmd.Context(), "/api/workouts")
			if err != nil {
				return err
			}

			var ledger map[workouts.Category][]workouts.Entry
			if err := decodeJSON(resp, &ledger); err != nil {
				return err
			}

			printEntries(cmd.OutOrStdout(), ledger)
			return nil
		},
	}
}

func printEntries(out io.Writer, ledger map[workouts.Category][]workouts.Entry) {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tID\tEXERCISE\tMIN\tKCAL\tLOGGED")
	for _, c := range workouts.OrderedCategories(ledger) {
		for _, e := range ledger[c] {
			kcal := "-"
			if e.Calories != nil {
				kcal = fmt.Sprintf("%.1f", *e.Calories)
			}
			fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%s\t%s\n",
				c, e.ID, e.Exercise, e.Duration, kcal, e.Timestamp.Format(time.DateTime))
		}
	}
	_ = tw.Flush()
}

// --- stats ---

func newStatsCmd(cc *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show totals, motivation and weekly calorie goal progress",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := cc.client().get(cmd.Context(), "/api/summary")
			if err != nil {
				return err
			}

			var summary workouts.SummaryResponse
			if err := decodeJSON(resp, &summary); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total minutes: %d (%d entries)\n", summary.Totals.TotalMinutes, summary.Totals.TotalEntries)
			for _, c := range workouts.OrderedCategories(summary.Totals.PerCategory) {
				ct := summary.Totals.PerCategory[c]
				fmt.Fprintf(out, "  %-10s %4d min  %d entries\n", c, ct.TotalMinutes, ct.Count)
			}
			fmt.Fprintf(out, "Motivation: %s - %s\n", summary.Motivation.Level, summary.Motivation.Message)
			fmt.Fprintf(out, "Weekly goal: %.0f / %.0f kcal (%.1f%%)\n",
				summary.WeeklyGoal.BurnedKcal, summary.WeeklyGoal.GoalKcal, summary.WeeklyGoal.ProgressPercent)
			return nil
		},
	}
}

// --- daily ---

func newDailyCmd(cc *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "daily [YYYY-MM-DD]",
		Short: "Show the entries logged on one day (today by default)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day := time.Now().Format(workouts.DateLayout)
			if len(args) == 1 {
				day = args[0]
			}

			resp, err := cc.client().get(cmd.Context(), "/api/workouts/daily/"+url.PathEscape(day))
			if err != nil {
				return err
			}

			var daily workouts.DailyResponse
			if err := decodeJSON(resp, &daily); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s: %d min in %d entries\n", daily.Date, daily.Totals.TotalMinutes, daily.Totals.TotalEntries)
			printEntries(out, daily.Entries)
			return nil
		},
	}
}

// --- profile ---

func newProfileCmd(cc *cliContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage the user profile",
	}
	cmd.AddCommand(newProfileSetCmd(cc), newProfileShowCmd(cc))
	return cmd
}

func newProfileSetCmd(cc *cliContext) *cobra.Command {
	var name, regnID, gender, age, height, weight, goal string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Save the user profile used for calories, BMI/BMR and reports",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := cc.client().post(cmd.Context(), "/profile", map[string]string{
				"name":                name,
				"regn_id":             regnID,
				"age":                 age,
				"gender":              gender,
				"height":              height,
				"weight":              weight,
				"weekly_calorie_goal": goal,
			}, nil)
			if err != nil {
				return err
			}

			var saved profile.SaveProfileResponse
			if err := decodeJSON(resp, &saved); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), saved.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "user name")
	cmd.Flags().StringVar(&regnID, "regn-id", "", "registration id")
	cmd.Flags().StringVar(&age, "age", "", "age in years")
	cmd.Flags().StringVar(&gender, "gender", "M", "M or F")
	cmd.Flags().StringVar(&height, "height", "", "height in cm")
	cmd.Flags().StringVar(&weight, "weight", "", "weight in kg")
	cmd.Flags().StringVar(&goal, "weekly-goal", "", "weekly calorie goal in kcal (server default when empty)")
	return cmd
}

func newProfileShowCmd(cc *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the saved profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := cc.client().get(cmd.Context(), "/profile")
			if err != nil {
				return err
			}

			var p profile.UserProfile
			if err := decodeJSON(resp, &p); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s), %d, %s\n", p.Name, p.RegnID, p.Age, p.Gender)
			fmt.Fprintf(out, "Height %.1f cm, weight %.1f kg\n", p.HeightCm, p.WeightKg)
			fmt.Fprintf(out, "BMI %.1f, BMR %.0f kcal/day, weekly goal %.0f kcal\n", p.BMI, p.BMR, p.WeeklyCalorieGoal)
			return nil
		},
	}
}

// --- report ---

func newReportCmd(cc *cliContext) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Download the PDF workout report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			resp, err := cc.client().get(cmd.Context(), "/report/pdf")
			if err != nil {
				return err
			}
			if err := checkStatus(resp); err != nil {
				return err
			}
			defer resp.Body.Close()

			if outPath == "" {
				outPath = attachmentName(resp.Header.Get("Content-Disposition"))
			}

			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			n, err := io.Copy(f, resp.Body)
			if cErr := f.Close(); err == nil {
				err = cErr
			}
			if err != nil {
				return fmt.Errorf("write %s: %w", outPath, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "report saved to %s (%d bytes)\n", outPath, n)
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "output file (server suggested name by default)")
	return cmd
}

func attachmentName(contentDisposition string) string {
	_, params, err := mime.ParseMediaType(contentDisposition)
	if err != nil || params["filename"] == "" {
		return "weekly_report.pdf"
	}
	return filepath.Base(params["filename"])
}
