package common

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"hotel-reservation-go/internal/ledger"
	"hotel-reservation-go/internal/models"

	"go.uber.org/zap"
)

func TestIsIgnorableSyncError(t *testing.T) {
	if !isIgnorableSyncError(errors.New("sync /dev/stderr: inappropriate ioctl for device")) {
		t.Error("Expected stderr ioctl error to be ignorable")
	}
	if isIgnorableSyncError(errors.New("disk full")) {
		t.Error("Expected other errors not to be ignorable")
	}
}

func TestLoadScenario(t *testing.T) {
	sc, err := LoadScenario(models.ScenarioConfig{})
	if err != nil {
		t.Fatalf("LoadScenario failed: %v", err)
	}
	if len(sc.Steps) != 11 {
		t.Errorf("Expected built-in scenario with 11 steps, got %d", len(sc.Steps))
	}

	path := filepath.Join(t.TempDir(), "one.yaml")
	if err := os.WriteFile(path, []byte("steps:\n  - set_user: {id: 1, balance: 10}\n"), 0o600); err != nil {
		t.Fatalf("Failed to write scenario: %v", err)
	}
	sc, err = LoadScenario(models.ScenarioConfig{File: path})
	if err != nil {
		t.Fatalf("LoadScenario from file failed: %v", err)
	}
	if len(sc.Steps) != 1 {
		t.Errorf("Expected 1 step, got %d", len(sc.Steps))
	}
}

func TestInitializeUsers(t *testing.T) {
	svc := InitializeLedger()
	for _, id := range []int{1, 2} {
		if _, err := svc.UpsertUser(id, 100); err != nil {
			t.Fatalf("UpsertUser failed: %v", err)
		}
	}
	logger := zap.NewNop()

	all, err := InitializeUsers(svc, 0, logger)
	if err != nil {
		t.Fatalf("InitializeUsers failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("Expected 2 users, got %d", len(all))
	}

	one, err := InitializeUsers(svc, 2, logger)
	if err != nil {
		t.Fatalf("InitializeUsers with filter failed: %v", err)
	}
	if len(one) != 1 || one[0].Id != 2 {
		t.Errorf("Expected only user 2, got %+v", one)
	}

	if _, err := InitializeUsers(svc, 9, logger); !errors.Is(err, ledger.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
