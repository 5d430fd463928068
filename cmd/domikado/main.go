package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func main() {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:          "domikado",
		Short:        "Education gap scoring and budget allocation for Indonesian provinces",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogging(logLevel)
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(calculateCmd())
	rootCmd.AddCommand(requirementsCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(timelineCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func calculateCmd() *cobra.Command {
	var (
		indicators string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "calculate [province-file]",
		Short: "Score a province and recommend a budget allocation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalculate(args[0], indicators, cmd.Flags().Changed("indicators"), asJSON)
		},
	}

	cmd.Flags().StringVarP(&indicators, "indicators", "i", "", "comma-separated indicator ids (default: literacy, infrastructure, teacher ratio)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func requirementsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "requirements [province-file]",
		Short: "Show teacher and school requirements against the national ratio targets",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runRequirements(args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [province-file]",
		Short: "Validate a province statistics file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func timelineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "timeline [month]",
		Short: "Narrate the intervention timeline (all 36 months, or one)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runTimeline(0)
			}
			month, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			return runTimeline(month)
		},
	}
}

func serveCmd() *cobra.Command {
	var (
		configPath string
		port       int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the JSON API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), configPath, port, cmd.Flags().Changed("log-level"))
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "HTTP server port (overrides config and PORT)")
	return cmd
}

func seedCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "seed [data-dir]",
		Short: "Load province files into the configured postgres or mongo store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	return cmd
}
