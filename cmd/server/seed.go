package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/phrazzld/finstart-api/internal/domain"
	"github.com/phrazzld/finstart-api/internal/store"
	"gopkg.in/yaml.v3"
)

// seedFile is the layout of a -seed YAML document.
type seedFile struct {
	Lessons []*domain.Lesson `yaml:"lessons"`
}

// loadSeedFile reads and validates the lessons of a seed file.
func loadSeedFile(path string) ([]*domain.Lesson, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return parseSeed(raw)
}

func parseSeed(raw []byte) ([]*domain.Lesson, error) {
	var doc seedFile
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	if len(doc.Lessons) == 0 {
		return nil, errors.New("seed file contains no lessons")
	}

	seen := make(map[string]struct{}, len(doc.Lessons))
	for i, lesson := range doc.Lessons {
		if lesson == nil {
			return nil, fmt.Errorf("lesson %d is empty", i)
		}
		if err := lesson.Validate(); err != nil {
			return nil, fmt.Errorf("lesson %d (%q): %w", i, lesson.ID, err)
		}
		if _, dup := seen[lesson.ID]; dup {
			return nil, fmt.Errorf("duplicate lesson id %q", lesson.ID)
		}
		seen[lesson.ID] = struct{}{}
		lesson.Normalize()
	}
	return doc.Lessons, nil
}

// seedLessons upserts every lesson in a single transaction.
func seedLessons(
	ctx context.Context,
	db *sql.DB,
	lessons store.LessonStore,
	seed []*domain.Lesson,
	log *slog.Logger,
) error {
	err := store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		txLessons := lessons.WithTx(tx)
		for _, lesson := range seed {
			if err := txLessons.Upsert(ctx, lesson); err != nil {
				return fmt.Errorf("failed to upsert lesson %q: %w", lesson.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("seeded lessons", slog.Int("count", len(seed)))
	return nil
}
