/**
 * Copyright 2025-present Coinbase Global, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"flag"
	"fmt"
	"os"

	"hotel-reservation-go/internal/common"
	"hotel-reservation-go/internal/config"
	"hotel-reservation-go/internal/report"
	"hotel-reservation-go/internal/scenario"

	"go.uber.org/zap"
)

func printResults(results []scenario.Result) (failed int) {
	for _, r := range results {
		mark := "✓"
		if r.Err != nil {
			mark = "x"
			failed++
		}
		fmt.Printf(" %s %s\n", mark, r.String())
	}
	return failed
}

func main() {
	scenarioFlag := flag.String("scenario", "", "Scenario YAML file (overrides SCENARIO_FILE)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *scenarioFlag != "" {
		cfg.Scenario.File = *scenarioFlag
	}

	logger, loggerCleanup := common.InitializeLogger(cfg.LogLevel)
	defer loggerCleanup()

	sc, err := common.LoadScenario(cfg.Scenario)
	if err != nil {
		logger.Fatal("Failed to load scenario", zap.Error(err))
	}

	svc := common.InitializeLedger()
	printer := report.NewPrinter(os.Stdout, cfg.Report)

	fmt.Printf("=== HOTEL RESERVATION SYSTEM: %s ===\n\n", sc.Name)
	results := scenario.Run(svc, sc)
	failed := printResults(results)

	printer.PrintAll(svc)
	printer.PrintAllUsers(svc.Users())

	if cfg.Report.ShowJournal {
		if err := printer.PrintJournals(svc); err != nil {
			logger.Error("Failed to print journal", zap.Error(err))
		}
	}

	logger.Info("Scenario completed",
		zap.Int("steps", len(results)),
		zap.Int("failed_steps", failed),
		zap.Int("bookings", len(svc.Bookings())))
}
