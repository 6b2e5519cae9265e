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

package ledger

import (
	"fmt"

	"hotel-reservation-go/internal/models"

	"go.uber.org/zap"
)

// TransactionHistory returns a user's journal entries, newest first.
// A non-positive limit returns everything after offset.
func (s *Service) TransactionHistory(userId int, limit, offset int) ([]models.JournalEntry, error) {
	if offset < 0 {
		return nil, invalidArgument("offset cannot be negative, got %d", offset)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, err := s.findUser(userId); err != nil {
		return nil, err
	}

	var entries []models.JournalEntry
	skipped := 0
	for i := len(s.journal) - 1; i >= 0; i-- {
		entry := s.journal[i]
		if entry.UserId != userId {
			continue
		}
		if skipped < offset {
			skipped++
			continue
		}
		entries = append(entries, entry)
		if limit > 0 && len(entries) == limit {
			break
		}
	}

	zap.L().Debug("Retrieved transaction history",
		zap.Int("user_id", userId),
		zap.Int("count", len(entries)))
	return entries, nil
}

// ReconcileUserBalance verifies that the current balance matches the sum of
// every journal entry recorded for the user.
func (s *Service) ReconcileUserBalance(userId int) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, err := s.findUser(userId)
	if err != nil {
		return err
	}

	var calculated int64
	for _, entry := range s.journal {
		if entry.UserId == userId {
			calculated += entry.Amount
		}
	}

	if calculated != user.Balance {
		zap.L().Error("Balance reconciliation failed",
			zap.Int("user_id", userId),
			zap.Int64("current_balance", user.Balance),
			zap.Int64("calculated_balance", calculated),
			zap.Int64("difference", user.Balance-calculated))
		return fmt.Errorf("balance mismatch for user %d: current=%d, calculated=%d", userId, user.Balance, calculated)
	}

	zap.L().Debug("Balance reconciliation successful",
		zap.Int("user_id", userId),
		zap.Int64("balance", user.Balance))
	return nil
}
