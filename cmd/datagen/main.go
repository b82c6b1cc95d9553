package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ClaudiaCodeLab/DemoMB/config"
	"github.com/ClaudiaCodeLab/DemoMB/service/generator"
	"github.com/ClaudiaCodeLab/DemoMB/sink"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	rootCmd := cobra.Command{
		Use: "datagen",
	}
	rootCmd.AddCommand(
		generateCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func generateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "generate the three raw demo datasets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate()
		},
		SilenceUsage: true,
	}

	flags := cmd.Flags()
	flags.String("out", config.DefaultOutDir, "output directory")
	flags.Int("customers", config.DefaultCustomers, "number of customers")
	flags.Int("days", config.DefaultDays, "lookback window in days")
	flags.Int64("seed", config.DefaultSeed, "random seed")
	config.BindFlags(flags)

	return cmd
}

func runGenerate() error {
	conf := config.Load()
	if err := conf.Generator.Validate(); err != nil {
		return err
	}

	logger := config.NewLogger(conf.Log)
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("run.id", uuid.NewString()))

	if err := os.MkdirAll(conf.Generator.OutDir, 0o755); err != nil {
		return err
	}

	customersPath := filepath.Join(conf.Generator.OutDir, "raw_customers.csv")
	marketingPath := filepath.Join(conf.Generator.OutDir, "raw_marketing_events.csv")
	productPath := filepath.Join(conf.Generator.OutDir, "raw_product_events.csv")

	sinks, closeSinks, err := openSinks(customersPath, marketingPath, productPath)
	if err != nil {
		return err
	}

	logger.Info("run started",
		zap.Int("customers", conf.Generator.Customers),
		zap.Int("days", conf.Generator.Days),
		zap.Int64("seed", conf.Generator.Seed),
	)

	svc := generator.NewService(conf.Generator, time.Now().UTC(), logger)
	summary, err := svc.Run(sinks)
	closeErr := closeSinks()
	if err != nil {
		return err
	}
	if closeErr != nil {
		return closeErr
	}

	logger.Info("run finished",
		zap.Int("customers", summary.Customers),
		zap.Int("impressions", summary.Impressions),
		zap.Int("clicks", summary.Clicks),
		zap.Int("leads", summary.Leads),
		zap.Int("accounts", summary.Accounts),
	)

	fmt.Println("CSV files generated:")
	fmt.Println(" -", customersPath)
	fmt.Println(" -", marketingPath)
	fmt.Println(" -", productPath)
	fmt.Println()
	fmt.Println("Next step: load these files into the DemoMB.raw dataset (raw_customers, raw_marketing_events, raw_product_events).")
	return nil
}

func openSinks(customersPath, marketingPath, productPath string) (generator.Sinks, func() error, error) {
	var opened []*sink.CSV

	closeAll := func() error {
		var firstErr error
		for _, s := range opened {
			if err := s.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
		return firstErr
	}

	open := func(path string) (*sink.CSV, error) {
		s, err := sink.NewCSV(path)
		if err != nil {
			_ = closeAll()
			return nil, err
		}
		opened = append(opened, s)
		return s, nil
	}

	customers, err := open(customersPath)
	if err != nil {
		return generator.Sinks{}, nil, err
	}
	marketing, err := open(marketingPath)
	if err != nil {
		return generator.Sinks{}, nil, err
	}
	product, err := open(productPath)
	if err != nil {
		return generator.Sinks{}, nil, err
	}

	sinks := generator.Sinks{
		Customers: customers,
		Marketing: marketing,
		Product:   product,
	}
	return sinks, closeAll, nil
}
