package models

import "golang.org/x/text/language"

// Config represents the application configuration
type Config struct {
	LogLevel string
	Scenario ScenarioConfig
	Report   ReportConfig
}

// ScenarioConfig holds demonstration driver settings
type ScenarioConfig struct {
	File string
}

// ReportConfig holds console report settings
type ReportConfig struct {
	DateLayout  string
	Width       int
	Language    language.Tag
	ShowJournal bool
}
