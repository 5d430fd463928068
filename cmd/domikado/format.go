package main

import (
	"fmt"
	"strings"

	"github.com/valuin/domikado/pkg/allocation"
	"github.com/valuin/domikado/pkg/indicator"
	"github.com/valuin/domikado/pkg/requirements"
	"github.com/valuin/domikado/pkg/timeline"
	"github.com/valuin/domikado/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.Path != "" {
				fmt.Printf("    -> %s = %v\n", e.Path, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			if e.ConflictWith != "" {
				fmt.Printf("    conflicts with: %s\n", e.ConflictWith)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.Path != "" {
				fmt.Printf("    -> %s = %v\n", w.Path, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printCalculation(r *allocation.Result) {
	title := fmt.Sprintf("Gap Calculation: %s", r.Province)
	fmt.Println(title)
	fmt.Println(strings.Repeat("=", len(title)))
	fmt.Println()

	if len(r.Selected) == 0 {
		fmt.Println("No indicators selected.")
		return
	}

	fmt.Printf("%-34s %14s %8s %8s\n", "Indicator", "Value", "Score", "Gap")
	fmt.Printf("%-34s %14s %8s %8s\n",
		"----------------------------------", "--------------", "--------", "--------")
	for _, k := range r.Selected {
		sc := r.Scores[k]
		fmt.Printf("%-34s %14s %8.3f %8.3f\n", indicator.Label(k), sc.RawValue, sc.Score, sc.Gap)
	}

	fmt.Println()
	fmt.Println("Summary")
	fmt.Println("-------")
	fmt.Printf("  Combined gap score:     %.2f (%s)\n", r.CombinedGapScore, r.Severity.Label)
	fmt.Printf("  Recommended allocation: %s (%s)\n", allocation.FormatRupiah(r.Allocation), allocation.FormatShort(r.Allocation))
	fmt.Printf("  Cap per parameter:      %s\n", allocation.FormatRupiah(r.MaxBudgetPerParameter))
	fmt.Printf("  %s\n", r.Severity.Title)

	if len(r.Recommendations) == 0 {
		return
	}
	fmt.Println()
	fmt.Printf("Recommendations (%d):\n", len(r.Recommendations))
	for i, rec := range r.Recommendations {
		fmt.Printf("  %d. [%s] %s\n", i+1, rec.Priority, rec.Parameter)
		fmt.Printf("     %s\n", rec.Description)
		fmt.Printf("     cost %s (%.1f%% of cap), current %s, target %s\n",
			allocation.FormatRupiah(rec.Cost), rec.BudgetUtilization, rec.Gap.Current, rec.Gap.Target)
		for _, a := range rec.Actions {
			fmt.Printf("     * %s\n", a)
		}
	}
}

func printRequirements(a requirements.Analysis) {
	fmt.Printf("Ratio Analysis: %s (%s students)\n", a.Province, allocation.FormatCount(a.Students))
	fmt.Println()
	fmt.Printf("%-10s %10s %10s %10s %10s %10s %10s  %s\n",
		"", "Current", "Target", "Existing", "Needed", "Shortage", "Short %", "Status")
	printRequirementRow("Teachers", a.Teachers)
	printRequirementRow("Schools", a.Schools)
}

func printRequirementRow(label string, r requirements.Requirement) {
	fmt.Printf("%-10s %10s %10s %10s %10s %10s %9.1f%%  %s\n",
		label, r.Current, r.Target,
		allocation.FormatCount(r.Existing), allocation.FormatCount(r.Needed), allocation.FormatCount(r.Required),
		r.ShortagePercent, r.Status)
}

func printNarration(n timeline.Narration) {
	fmt.Printf("%s %d (month %d): %s [%s, trend %s]\n", n.MonthName, n.Year, n.Month, n.Title, n.Phase, n.Trend)
	fmt.Printf("  %s\n", n.Description)
}

func printNarrationLine(n timeline.Narration) {
	arrow := "v"
	if n.Trend == timeline.TrendUp {
		arrow = "^"
	}
	fmt.Printf("%2d  %s %d  %s  %-15s %s\n", n.Month, n.MonthName, n.Year, arrow, n.Phase, n.Title)
}
