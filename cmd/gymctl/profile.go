package main

import (
	"alcyxob/gym-coach/internal/domain"
	"alcyxob/gym-coach/internal/generator"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile <goal text>",
	Short: "Show the goal profile and templates a goal text selects",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := loadGenerator()
		if err != nil {
			return err
		}
		goal := strings.Join(args, " ")
		out := cmd.OutOrStdout()

		fmt.Fprintf(out, "Goal:    %s\n", goal)
		fmt.Fprintf(out, "Profile: %s\n\n", gen.Classify(goal))
		printPlan(out, gen.Plan(goal))
		fmt.Fprintln(out)
		routine := gen.Routine(goal)
		printRoutine(out, routine.Week, routine.Intensity)
		return nil
	},
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the active goal classification rules in precedence order",
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := loadGenerator()
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "#\tPROFILE\tKEYWORDS")
		for i, r := range gen.Rules() {
			fmt.Fprintf(w, "%d\t%s\t%s\n", i+1, r.Profile, strings.Join(r.Keywords, ", "))
		}
		fmt.Fprintf(w, "-\t%s\t(fallback)\n", generator.FallbackProfile)
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(rulesCmd)
}

func printPlan(out io.Writer, p generator.PlanTemplate) {
	fmt.Fprintf(out, "Plan: %d kcal, %d comidas\n", p.DailyCalories, p.MealsPerDay)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, label := range generator.MealLabels(p.Meals) {
		fmt.Fprintf(w, "  %s\t%s\n", label, p.Meals[label])
	}
	w.Flush()
	if p.Observations != "" {
		fmt.Fprintf(out, "  Obs: %s\n", p.Observations)
	}
}

func printRoutine(out io.Writer, week domain.WeeklySchedule, intensity string) {
	fmt.Fprintf(out, "Rutina (%s)\n", intensity)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, day := range domain.Weekdays {
		for _, e := range week[day] {
			fmt.Fprintf(w, "  %s\t%s\t%d\t%s\n", day, e.Name, e.Sets, e.Reps)
		}
	}
	w.Flush()
}
