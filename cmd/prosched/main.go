package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/baseline"
	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/config"
	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/cpm"
	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/model"
	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/reporter"
	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/snapshot"
	"github.com/benju66/Pro-Logic-Scheduler-sub009/internal/ui"
)

var (
	flagJSON    bool
	flagNoColor bool
	flagFormat  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "prosched",
		Short: "Critical path scheduling for construction projects",
		Long: `Prosched reads a project snapshot — tasks, dependencies, and a working-day
calendar — runs the critical path method over the dependency graph, and
reports early/late dates, float, the critical path, and schedule health.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagNoColor {
				ui.Disable()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Machine-readable JSON output")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(calcCmd())
	rootCmd.AddCommand(criticalCmd())
	rootCmd.AddCommand(healthCmd())
	rootCmd.AddCommand(lookaheadCmd())
	rootCmd.AddCommand(vizCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(baselineCmd())
	rootCmd.AddCommand(slipCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runCalculation is shared logic for every command that needs a computed
// schedule: load config and snapshot, pick the calendar, run the engine.
func runCalculation(path string) (*snapshot.Snapshot, *cpm.Result, *model.Calendar, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	if !cfg.Output.Color {
		ui.Disable()
	}

	snap, err := snapshot.Load(path)
	if err != nil {
		return nil, nil, nil, err
	}

	cal := snap.Calendar
	if cal == nil {
		cal = cfg.BuildCalendar()
	}

	// Root tasks with no explicit start inherit the project start date.
	if !snap.Project.Start.IsZero() {
		for i := range snap.Tasks {
			t := &snap.Tasks[i]
			if t.Start.IsZero() && len(t.Dependencies) == 0 && t.Mode != model.Manual {
				t.Start = snap.Project.Start
			}
		}
	}

	result := cpm.Calculate(snap.Tasks, cal)
	if result.Failed() {
		return nil, nil, nil, fmt.Errorf("calculation failed: %s", result.Stats.Error)
	}
	return snap, result, cal, nil
}

func calcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <snapshot.json>",
		Short: "Compute the schedule and print the task table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, result, cal, err := runCalculation(args[0])
			if err != nil {
				return err
			}

			rpt := reporter.New(result, cal)
			if flagJSON {
				data, err := rpt.JSON()
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			rpt.PrintSchedule(os.Stdout)
			fmt.Println()
			rpt.PrintCriticalPath(os.Stdout)
			return nil
		},
	}
}

func criticalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "critical <snapshot.json>",
		Short: "Show the critical path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, result, cal, err := runCalculation(args[0])
			if err != nil {
				return err
			}
			reporter.New(result, cal).PrintCriticalPath(os.Stdout)
			return nil
		},
	}
}

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health <snapshot.json>",
		Short: "Show schedule health by severity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, result, cal, err := runCalculation(args[0])
			if err != nil {
				return err
			}
			reporter.New(result, cal).PrintHealth(os.Stdout)
			return nil
		},
	}
}

func lookaheadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookahead <snapshot.json>",
		Short: "Group tasks by early start date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, result, cal, err := runCalculation(args[0])
			if err != nil {
				return err
			}
			reporter.New(result, cal).PrintLookahead(os.Stdout)
			return nil
		},
	}
}

func vizCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "viz <snapshot.json>",
		Short: "Export the dependency graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, result, cal, err := runCalculation(args[0])
			if err != nil {
				return err
			}
			if flagFormat != "dot" {
				return fmt.Errorf("unsupported format %q (use dot)", flagFormat)
			}
			reporter.New(result, cal).PrintDOT(os.Stdout)
			return nil
		},
	}
	cmd.Flags().StringVar(&flagFormat, "format", "dot", "Output format (dot)")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <snapshot.json>",
		Short: "Validate a snapshot file against the schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			violations, err := snapshot.Validate(args[0])
			if err != nil {
				return err
			}
			if len(violations) == 0 {
				fmt.Printf("%s %s is valid\n", ui.Green("✓"), args[0])
				return nil
			}
			for _, v := range violations {
				fmt.Printf("  %s %s\n", ui.Red("✗"), v)
			}
			return fmt.Errorf("%d schema violations", len(violations))
		},
	}
}

func baselineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "baseline <snapshot.json>",
		Short: "Compute the schedule and save it as the baseline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, result, _, err := runCalculation(args[0])
			if err != nil {
				return err
			}
			if _, err := baseline.New(snap.Project.Name, result); err != nil {
				return fmt.Errorf("save baseline: %w", err)
			}
			fmt.Printf("%s baseline saved (%d tasks)\n", ui.Green("✓"), result.Stats.TaskCount)
			return nil
		},
	}
}

func slipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slip <snapshot.json>",
		Short: "Compare the current schedule against the saved baseline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !baseline.Exists() {
				return fmt.Errorf("no baseline saved (run: prosched baseline <snapshot>)")
			}
			base, err := baseline.Load()
			if err != nil {
				return err
			}

			_, result, cal, err := runCalculation(args[0])
			if err != nil {
				return err
			}
			reporter.New(result, cal).PrintSlip(os.Stdout, base)
			return nil
		},
	}
}
