package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/valuin/domikado/internal/config"
	"github.com/valuin/domikado/internal/server"
	"github.com/valuin/domikado/internal/store"
	"github.com/valuin/domikado/pkg/allocation"
	"github.com/valuin/domikado/pkg/indicator"
	"github.com/valuin/domikado/pkg/province"
	"github.com/valuin/domikado/pkg/requirements"
	"github.com/valuin/domikado/pkg/timeline"
	"github.com/valuin/domikado/pkg/validation"
)

func setupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return eris.Wrapf(err, "invalid --log-level %q", level)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	return nil
}

// loadAndValidate loads a province file and runs statistics validation.
func loadAndValidate(path string) (*province.Statistics, *validation.Report, error) {
	s, err := province.Load(path)
	if err != nil {
		return nil, nil, eris.Wrap(err, "loading province")
	}
	return s, validation.ValidateStatistics(s), nil
}

func runValidate(path string) error {
	_, report, err := loadAndValidate(path)
	if err != nil {
		return err
	}

	printValidationReport(report)

	if !report.Valid {
		os.Exit(1)
	}
	return nil
}

func runCalculate(path, indicators string, explicit, asJSON bool) error {
	s, report, err := loadAndValidate(path)
	if err != nil {
		return err
	}
	if !report.Valid {
		printValidationReport(report)
		return eris.New("province data has validation errors; fix before calculating")
	}

	selected := indicator.DefaultSelection()
	if explicit {
		selected, err = indicator.ParseList(indicators)
		if err != nil {
			return err
		}
	}

	result := allocation.Evaluate(s, selected, allocation.DefaultPolicy())
	log.Debug().
		Str("province", result.Province).
		Int("indicators", len(result.Selected)).
		Float64("gap_score", result.CombinedGapScore).
		Msg("evaluated")

	if asJSON {
		return printJSON(result)
	}
	printCalculation(result)
	if len(report.Warnings) > 0 {
		printValidationReport(report)
	}
	return nil
}

func runRequirements(path string, asJSON bool) error {
	s, err := province.Load(path)
	if err != nil {
		return eris.Wrap(err, "loading province")
	}
	a := requirements.Analyze(s)
	if asJSON {
		return printJSON(a)
	}
	printRequirements(a)
	return nil
}

func runTimeline(month int) error {
	if month == 0 {
		for _, n := range timeline.Schedule() {
			printNarrationLine(n)
		}
		return nil
	}
	printNarration(timeline.Narrate(month))
	return nil
}

func runServe(ctx context.Context, configPath string, port int, levelFromFlag bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if port > 0 {
		cfg.Server.Port = port
	}
	if !levelFromFlag {
		zerolog.SetGlobalLevel(cfg.Level())
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer st.Close()

	srv := server.New(st, cfg.Policy, server.Options{
		Addr:           cfg.Addr(),
		AllowedOrigins: cfg.Server.AllowedOrigins,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
	})
	return srv.Start(ctx)
}

func runSeed(ctx context.Context, configPath, dir string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if cfg.Store.Driver == config.DriverFile {
		return eris.New("seed needs a postgres or mongo store; set store.driver or STORE_DRIVER")
	}

	provinces, err := province.LoadDir(dir)
	if err != nil {
		return err
	}

	st, err := store.Open(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer st.Close()

	w, ok := st.(store.Writer)
	if !ok {
		return eris.Errorf("store driver %s does not accept writes", cfg.Store.Driver)
	}
	for _, s := range provinces {
		if report := validation.ValidateStatistics(s); !report.Valid {
			log.Warn().Str("province", s.Name()).Str("summary", report.Summary).Msg("skipping invalid province")
			continue
		}
		if err := w.Put(ctx, s); err != nil {
			return err
		}
		log.Info().Str("province", s.Name()).Str("id", s.ProvinceID).Msg("seeded")
	}
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
