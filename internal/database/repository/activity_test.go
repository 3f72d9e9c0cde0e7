package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jask/modalstack/internal/database"
	"github.com/jask/modalstack/internal/database/repository"
)

func openTestJournal(t *testing.T) *repository.ActivityRepo {
	t.Helper()
	db, err := database.OpenJournal(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("OpenJournal: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return repository.NewActivityRepo(db)
}

func TestActivityRecentNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := openTestJournal(t)
	base := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	for i, action := range []string{"opened", "confirmed", "cancelled"} {
		err := repo.Append(ctx, repository.Activity{
			At:        base.Add(time.Duration(i) * time.Minute),
			Namespace: "main",
			Key:       "confirm",
			Action:    action,
		})
		if err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	got, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	if got[0].Action != "cancelled" || got[1].Action != "confirmed" {
		t.Fatalf("unexpected order: %+v", got)
	}
	if got[0].ID == "" {
		t.Fatalf("id should be generated")
	}
	if !got[0].At.Equal(base.Add(2 * time.Minute)) {
		t.Fatalf("at = %s", got[0].At)
	}
}

func TestActivityCountByAction(t *testing.T) {
	ctx := context.Background()
	repo := openTestJournal(t)
	for _, action := range []string{"opened", "opened", "saved"} {
		if err := repo.Append(ctx, repository.Activity{Namespace: "nested", Key: "note", Action: action}); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}
	counts, err := repo.CountByAction(ctx)
	if err != nil {
		t.Fatalf("CountByAction: %v", err)
	}
	if counts["opened"] != 2 || counts["saved"] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.db")
	if err := database.RunMigrations(path); err != nil {
		t.Fatalf("first run: %v", err)
	}
	if err := database.RunMigrations(path); err != nil {
		t.Fatalf("second run: %v", err)
	}
}
