package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	designpattern "github.com/chriskaliX/coffee-decorator/Design-Pattern"
	"github.com/chriskaliX/coffee-decorator/internal/config"
)

func newRootCmd() *cobra.Command {
	var (
		configPath string
		addons     []string
		colorOut   bool
	)

	cmd := &cobra.Command{
		Use:   "coffee",
		Short: "Brew a plain coffee and wrap it with addons",
		Long: `coffee builds a plain coffee and wraps it with each addon in order,
printing the description and price after every step.

With no flags it adds milk and then chocolate.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addon") {
				cfg.Order.Addons = addons
			}
			if cmd.Flags().Changed("color") {
				cfg.Output.Color = colorOut
			}
			logger := config.NewLogger(cfg.Log, cmd.ErrOrStderr())
			return brew(cmd.OutOrStdout(), cfg, logger)
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file (default ./coffee.yaml)")
	cmd.Flags().StringSliceVarP(&addons, "addon", "a", nil, "Addon to wrap the coffee with, innermost first (repeatable)")
	cmd.Flags().BoolVar(&colorOut, "color", false, "Colorize description and price")

	cmd.AddCommand(newMenuCmd())
	return cmd
}

// brew composes the configured order, printing every stage to w.
func brew(w io.Writer, cfg *config.Config, logger *slog.Logger) error {
	wraps, err := designpattern.ParseAddons(cfg.Order.Addons)
	if err != nil {
		return err
	}

	logger = logger.With("order", uuid.NewString())
	order, err := designpattern.NewOrder(designpattern.BasicCoffee{})
	if err != nil {
		return err
	}
	order.Attach(designpattern.NewPrinter(w, lineStrategy(cfg.Output.Color)))
	order.Attach(&logObserver{logger: logger})

	order.Start()
	for i, wrap := range wraps {
		if err := order.Add(wrap); err != nil {
			logger.Error("addon failed", "addon", cfg.Order.Addons[i], "error", err)
			return fmt.Errorf("adding %s: %w", cfg.Order.Addons[i], err)
		}
	}

	final := order.Beverage()
	logger.Info("order ready",
		"description", final.Describe(),
		"price", final.Price(),
		"layers", len(designpattern.Chain(final)))
	return nil
}

type logObserver struct {
	logger *slog.Logger
	stage  int
}

func (l *logObserver) Update(o *designpattern.Order) {
	b := o.Beverage()
	l.logger.Debug("stage", "n", l.stage, "description", b.Describe(), "price", b.Price())
	l.stage++
}
