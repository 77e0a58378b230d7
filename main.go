package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pnl/server"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	if err := loadDotEnv(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg := LoadConfig()

	serve := flag.Bool("serve", false, "run the HTTP calculator API instead of the terminal UI")
	addr := flag.String("addr", cfg.HTTPAddr, "listen address for -serve")
	flag.Parse()

	if *serve {
		cfg.HTTPAddr = *addr
		if err := runServer(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running server: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runTUI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

// runTUI runs the terminal UI, closing the log file before it returns.
func runTUI(cfg Config, opts ...tea.ProgramOption) error {
	logger, closer, err := newFileLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer closer.Close()
	logConfigWarnings(logger, cfg)

	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	if _, err := tea.NewProgram(NewModel(cfg, logger), opts...).Run(); err != nil {
		logger.Error().Err(err).Msg("program exited with error")
		return err
	}
	return nil
}

// runServer serves the calculator API until SIGINT or SIGTERM.
func runServer(cfg Config) error {
	logger := newConsoleLogger(os.Stderr, cfg)
	logConfigWarnings(logger, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srvCfg := server.DefaultConfig()
	srvCfg.Addr = cfg.HTTPAddr
	srvCfg.RequestTimeout = cfg.HTTPTimeout
	srvCfg.RateLimit = cfg.HTTPRateLimit
	srvCfg.MaxBodyBytes = cfg.HTTPMaxBody
	srvCfg.ReferralRate = cfg.ReferralRate
	srvCfg.AdsRate = cfg.AdsRate

	return server.New(srvCfg, logger).Run(ctx)
}
