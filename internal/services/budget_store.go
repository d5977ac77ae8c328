package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"budget-dashboard/internal/models"
	"budget-dashboard/internal/repositories"
)

// storedBudget is the persisted shape of one entry. Budget is kept loose so
// snapshots written by older clients with quoted or missing numbers still load.
type storedBudget struct {
	Category string `json:"category"`
	Budget   any    `json:"budget"`
	Color    string `json:"color"`
}

type budgetStore struct {
	mu       sync.RWMutex
	settings repositories.SettingRepositoryInterface
	metrics  MetricsRecorderInterface
	key      string
	budgets  []models.BudgetCategory
}

// NewBudgetStore creates a store seeded with the default budgets.
// Call Load to pick up a persisted configuration.
func NewBudgetStore(settings repositories.SettingRepositoryInterface, metrics MetricsRecorderInterface, key string) BudgetStoreInterface {
	if key == "" {
		key = models.BudgetSettingKey
	}
	return &budgetStore{
		settings: settings,
		metrics:  metrics,
		key:      key,
		budgets:  models.DefaultBudgets(),
	}
}

// Load replaces the in-memory configuration with the persisted snapshot.
// A missing, unreadable or malformed snapshot falls back to the defaults;
// a well-formed empty list is a saved configuration and loads as empty.
func (s *budgetStore) Load(ctx context.Context) []models.BudgetCategory {
	budgets := s.readSnapshot(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.budgets = budgets

	return cloneBudgets(s.budgets)
}

func (s *budgetStore) readSnapshot(ctx context.Context) []models.BudgetCategory {
	setting, err := s.settings.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, repositories.ErrSettingNotFound) {
			slog.Warn("failed to read budget snapshot, using defaults", "key", s.key, "error", err)
		}
		return models.DefaultBudgets()
	}

	budgets, err := decodeBudgets(setting.Value)
	if err != nil {
		slog.Warn("malformed budget snapshot, using defaults", "key", s.key, "error", err)
		return models.DefaultBudgets()
	}

	return normalizeBudgets(budgets)
}

// ReplaceAll swaps in a complete new configuration and persists it before returning.
// Persistence failures are logged and swallowed; the in-memory state still changes.
func (s *budgetStore) ReplaceAll(ctx context.Context, entries []models.BudgetCategory) []models.BudgetCategory {
	budgets := normalizeBudgets(entries)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.budgets = budgets

	status := "success"
	if err := s.persist(ctx, budgets); err != nil {
		status = "persist_failed"
		slog.Warn("failed to persist budgets", "key", s.key, "categories", len(budgets), "error", err)
	}
	s.metrics.IncrementCounter("budget_replacements_total", map[string]string{"status": status})

	return cloneBudgets(s.budgets)
}

// Reset forgets the persisted snapshot and returns to the defaults. Unlike
// ReplaceAll it reports a failed delete, since the next Load would undo the reset.
func (s *budgetStore) Reset(ctx context.Context) ([]models.BudgetCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.settings.Delete(ctx, s.key); err != nil {
		return nil, fmt.Errorf("failed to reset budgets: %w", err)
	}
	s.budgets = models.DefaultBudgets()
	s.metrics.IncrementCounter("budget_replacements_total", map[string]string{"status": "reset"})

	return cloneBudgets(s.budgets), nil
}

// Current returns a copy of the configuration in insertion order
func (s *budgetStore) Current() []models.BudgetCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return cloneBudgets(s.budgets)
}

func (s *budgetStore) persist(ctx context.Context, budgets []models.BudgetCategory) error {
	payload, err := encodeBudgets(budgets)
	if err != nil {
		return err
	}
	return s.settings.Put(ctx, s.key, payload)
}

func encodeBudgets(budgets []models.BudgetCategory) (string, error) {
	stored := make([]storedBudget, 0, len(budgets))
	for _, b := range budgets {
		stored = append(stored, storedBudget{
			Category: b.Category,
			Budget:   json.Number(b.Budget.String()),
			Color:    b.Color,
		})
	}

	payload, err := json.Marshal(stored)
	if err != nil {
		return "", fmt.Errorf("failed to encode budgets: %w", err)
	}
	return string(payload), nil
}

func decodeBudgets(payload string) ([]models.BudgetCategory, error) {
	decoder := json.NewDecoder(bytes.NewBufferString(payload))
	decoder.UseNumber()

	var stored []storedBudget
	if err := decoder.Decode(&stored); err != nil {
		return nil, fmt.Errorf("failed to decode budgets: %w", err)
	}
	if stored == nil {
		return nil, errors.New("failed to decode budgets: snapshot is null")
	}

	budgets := make([]models.BudgetCategory, 0, len(stored))
	for _, entry := range stored {
		budgets = append(budgets, models.BudgetCategory{
			Category: entry.Category,
			Budget:   models.ParseBudgetAmount(entry.Budget),
			Color:    entry.Color,
		})
	}
	return budgets, nil
}

// normalizeBudgets drops entries without a label and keeps the first entry for
// every repeated label. Missing colors are filled from the category palette.
func normalizeBudgets(entries []models.BudgetCategory) []models.BudgetCategory {
	seen := make(map[string]struct{}, len(entries))
	budgets := make([]models.BudgetCategory, 0, len(entries))

	for _, entry := range entries {
		label := strings.TrimSpace(entry.Category)
		if label == "" {
			continue
		}
		if _, dup := seen[label]; dup {
			continue
		}
		seen[label] = struct{}{}

		color := entry.Color
		if color == "" {
			color = models.CategoryColor(label)
		}

		budgets = append(budgets, models.BudgetCategory{
			Category: label,
			Budget:   entry.Budget,
			Color:    color,
		})
	}

	return budgets
}

func cloneBudgets(budgets []models.BudgetCategory) []models.BudgetCategory {
	return append(make([]models.BudgetCategory, 0, len(budgets)), budgets...)
}
