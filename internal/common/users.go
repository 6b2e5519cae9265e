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

package common

import (
	"fmt"

	"hotel-reservation-go/internal/models"

	"go.uber.org/zap"
)

// UserSource is the subset of the ledger needed to select users.
type UserSource interface {
	Users() []models.User
	User(userId int) (models.User, error)
}

// InitializeUsers retrieves users based on an optional id filter.
// If userFilter is positive, returns that single user.
// Otherwise returns all users, most recently created first.
func InitializeUsers(src UserSource, userFilter int, logger *zap.Logger) ([]models.User, error) {
	var users []models.User

	if userFilter > 0 {
		logger.Info("Looking up user by id", zap.Int("user_id", userFilter))
		user, err := src.User(userFilter)
		if err != nil {
			return nil, fmt.Errorf("failed to get user: %w", err)
		}
		users = append(users, user)
	} else {
		users = src.Users()
	}

	logger.Info("Retrieved users", zap.Int("count", len(users)))
	return users, nil
}
