package main

import (
	"alcyxob/gym-coach/internal/domain"
	"alcyxob/gym-coach/internal/repository/memory"
	"alcyxob/gym-coach/internal/service"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var demoReportPath string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the demo coaching scenario against an in-memory store",
	RunE: func(cmd *cobra.Command, args []string) error {
		gen, err := loadGenerator()
		if err != nil {
			return err
		}
		coach := service.NewCoachService(memory.NewDB().Store(), service.WithGenerator(gen))
		return runDemo(cmd.Context(), cmd, coach)
	},
}

func init() {
	demoCmd.Flags().StringVar(&demoReportPath, "report", "", "Write the demo client's xlsx report to this path")
	rootCmd.AddCommand(demoCmd)
}

func runDemo(ctx context.Context, cmd *cobra.Command, coach service.CoachService) error {
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	if _, err := coach.SeedDemo(ctx); err != nil {
		return err
	}
	trainer, err := coach.Authenticate(ctx, service.DemoTrainerUsername, service.DemoPassword)
	if err != nil {
		return err
	}
	client, err := coach.Authenticate(ctx, service.DemoClientUsername, service.DemoPassword)
	if err != nil {
		return err
	}
	if !trainer.IsTrainer() || !client.IsClient() {
		return fmt.Errorf("demo accounts have unexpected roles %q and %q", trainer.Role, client.Role)
	}
	fmt.Fprintf(out, "Seeded trainer %s and client %s\n", trainer.Username, client.Username)

	plan, err := coach.GeneratePlan(ctx, client.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Automatic plan: %d kcal, %d meals (%s)\n", plan.DailyCalories, plan.MealsPerDay, plan.Profile)

	if err := coach.Link(ctx, client.ID, trainer.ID); err != nil {
		return err
	}
	fmt.Fprintln(out, "Linked client to trainer")

	custom, err := coach.CreateCustomPlan(ctx, trainer.ID, client.ID,
		map[string]string{"Desayuno": "Avena con fruta", "Almuerzo": "Pollo con verduras", "Cena": "Pescado y ensalada", "Merienda": "Yogur"},
		1900, 4, "Ajustado por el entrenador")
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Custom plan: %d kcal, %d meals\n", custom.DailyCalories, custom.MealsPerDay)

	routine, err := coach.GenerateRoutine(ctx, client.ID, trainer.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Automatic routine: intensity %s\n", routine.Intensity)

	other, err := coach.RegisterTrainer(ctx, "ent2", service.DemoPassword, "Laura Diaz", "Junior")
	if err != nil {
		return err
	}
	_, err = coach.CreateCustomPlan(ctx, other.ID, client.ID, nil, 2000, 3, "")
	switch {
	case errors.Is(err, domain.ErrPermissionDenied):
		fmt.Fprintf(out, "Unlinked trainer %s denied: %v\n", other.Username, err)
	case err != nil:
		return err
	default:
		return fmt.Errorf("unlinked trainer was allowed to create a plan")
	}

	for _, w := range []float64{82.0, 80.5} {
		if _, err := coach.RecordProgress(ctx, service.ProgressInput{ClientID: client.ID, Weight: w}); err != nil {
			return err
		}
	}

	sum, err := coach.ClientSummary(ctx, client.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Summary: trainer=%s routines=%d plans=%d progress=%d weigh-ins=%d",
		sum.TrainerName, sum.RoutineCount, sum.PlanCount, sum.ProgressCount, sum.WeighIns)
	if sum.WeightChange != nil {
		fmt.Fprintf(out, " change=%+.1fkg", *sum.WeightChange)
	}
	fmt.Fprintln(out)

	if demoReportPath != "" {
		res, err := service.NewReportService(coach, nil, 0).Export(ctx, client.ID)
		if err != nil {
			return err
		}
		if err := os.WriteFile(demoReportPath, res.Content, 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Fprintf(out, "Report written to %s\n", demoReportPath)
	}
	return nil
}
