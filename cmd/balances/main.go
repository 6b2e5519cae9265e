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
	"strings"

	"hotel-reservation-go/internal/common"
	"hotel-reservation-go/internal/config"
	"hotel-reservation-go/internal/ledger"
	"hotel-reservation-go/internal/models"
	"hotel-reservation-go/internal/report"
	"hotel-reservation-go/internal/scenario"

	"go.uber.org/zap"
)

type balanceStats struct {
	totalUsers      int
	usersWithStays  int
	totalBookings   int
	reconcileErrors int
}

func formatReference(ref string) string {
	if ref == "" {
		return "none"
	}
	if len(ref) > 8 {
		return ref[:8] + "..."
	}
	return ref
}

func printBooking(booking models.Booking, isLast bool, dateLayout string) {
	fmt.Printf("%s #%-4d room %-4d %s -> %s %8d (ref: %s)\n",
		report.BoxPrefix(isLast),
		booking.Id,
		booking.RoomNumber,
		booking.CheckIn.Format(dateLayout),
		booking.CheckOut.Format(dateLayout),
		booking.TotalPrice,
		formatReference(booking.Reference))
}

func printUserHeader(user models.User, bookingCount int) {
	fmt.Printf("\n┌─ User: %d\n", user.Id)
	fmt.Printf("│  Balance: %d\n", user.Balance)
	fmt.Printf("│  Bookings: %d\n", bookingCount)
	fmt.Println("├" + strings.Repeat("─", 78))
}

func processUser(svc *ledger.Service, user models.User, dateLayout string) (int, error) {
	bookings, err := svc.UserBookings(user.Id)
	if err != nil {
		return 0, fmt.Errorf("failed to get bookings: %w", err)
	}

	printUserHeader(user, len(bookings))
	for i, booking := range bookings {
		printBooking(booking, i == len(bookings)-1, dateLayout)
	}

	if err := svc.ReconcileUserBalance(user.Id); err != nil {
		return len(bookings), fmt.Errorf("failed to reconcile: %w", err)
	}
	return len(bookings), nil
}

func processUsersAndGenerateReport(svc *ledger.Service, users []models.User, dateLayout string, logger *zap.Logger) balanceStats {
	stats := balanceStats{}

	for _, user := range users {
		stats.totalUsers++

		bookingCount, err := processUser(svc, user, dateLayout)
		if err != nil {
			logger.Error("Failed to process user", zap.Int("user_id", user.Id), zap.Error(err))
			stats.reconcileErrors++
		}

		if bookingCount > 0 {
			stats.usersWithStays++
			stats.totalBookings += bookingCount
		}
	}

	return stats
}

func main() {
	userFlag := flag.Int("user", 0, "Filter by specific user id (optional)")
	scenarioFlag := flag.String("scenario", "", "Scenario YAML file (overrides SCENARIO_FILE)")
	flag.Parse()

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

	logger.Info("Starting balance query")

	sc, err := common.LoadScenario(cfg.Scenario)
	if err != nil {
		logger.Fatal("Failed to load scenario", zap.Error(err))
	}

	// State is in memory only, so the scenario is replayed before reporting.
	svc := common.InitializeLedger()
	scenario.Run(svc, sc)

	users, err := common.InitializeUsers(svc, *userFlag, logger)
	if err != nil {
		logger.Fatal("Failed to initialize users", zap.Error(err))
	}

	rule := strings.Repeat("=", cfg.Report.Width)
	fmt.Println("\n" + rule)
	fmt.Println("USER BALANCE REPORT")
	fmt.Println(rule)

	stats := processUsersAndGenerateReport(svc, users, cfg.Report.DateLayout, logger)

	fmt.Println("\n" + rule)
	fmt.Printf("SUMMARY: %d users with stays (%d bookings across %d users queried, %d reconciliation errors)\n",
		stats.usersWithStays, stats.totalBookings, stats.totalUsers, stats.reconcileErrors)
	fmt.Println(rule + "\n")

	logger.Info("Balance query completed",
		zap.Int("users_queried", stats.totalUsers),
		zap.Int("users_with_stays", stats.usersWithStays),
		zap.Int("total_bookings", stats.totalBookings))

	if stats.reconcileErrors > 0 {
		loggerCleanup()
		os.Exit(1)
	}
}
