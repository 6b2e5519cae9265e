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

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"hotel-reservation-go/internal/models"

	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"
)

func Load() (*models.Config, error) {
	logLevel := getEnvString("LOG_LEVEL", "info")
	if _, err := zapcore.ParseLevel(logLevel); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %q (%w)", logLevel, err)
	}

	tag, err := getEnvLanguage("REPORT_LANGUAGE", language.English)
	if err != nil {
		return nil, err
	}

	width := getEnvInt("REPORT_WIDTH", 80)
	if width <= 2 {
		return nil, fmt.Errorf("REPORT_WIDTH must be greater than 2, got %d", width)
	}

	return &models.Config{
		LogLevel: strings.ToLower(logLevel),
		Scenario: models.ScenarioConfig{
			File: getEnvString("SCENARIO_FILE", ""),
		},
		Report: models.ReportConfig{
			DateLayout:  getEnvString("REPORT_DATE_LAYOUT", "02/01/2006"),
			Width:       width,
			Language:    tag,
			ShowJournal: getEnvBool("REPORT_SHOW_JOURNAL", false),
		},
	}, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvLanguage(key string, defaultValue language.Tag) (language.Tag, error) {
	if value := os.Getenv(key); value != "" {
		tag, err := language.Parse(value)
		if err != nil {
			return language.Und, fmt.Errorf("invalid language for %s: %q (%w)", key, value, err)
		}
		return tag, nil
	}
	return defaultValue, nil
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
