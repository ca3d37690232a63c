package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KashifaTajreen/Fitness/internal/auth"
	"github.com/KashifaTajreen/Fitness/internal/diary"
)

func tempStorePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "calmate_db.json")
}

func TestStateSurvivesReopen(t *testing.T) {
	path := tempStorePath(t)

	s := Open(path)
	users := NewFileUserRepository(s)
	entries := NewFileEntryRepository(s)

	if err := users.Save(&auth.User{Username: "testuser", PasswordHash: "hash", Remember: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := entries.Append("testuser", "2026-08-31", []diary.Entry{
		{Raw: "2 roti", Name: "roti", Kcal: 160},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Fresh store reading the same file.
	reopened := Open(path)

	user, err := NewFileUserRepository(reopened).FindByUsername("testuser")
	if err != nil {
		t.Fatalf("user not found after reopen: %v", err)
	}
	if user.PasswordHash != "hash" || !user.Remember {
		t.Fatalf("unexpected user after reopen: %+v", user)
	}

	day, err := NewFileEntryRepository(reopened).List("testuser", "2026-08-31")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(day) != 1 || day[0].Name != "roti" || day[0].Kcal != 160 {
		t.Fatalf("unexpected entries after reopen: %+v", day)
	}
}

func TestOpenMissingFile(t *testing.T) {
	s := Open(tempStorePath(t))

	exists, _ := NewFileUserRepository(s).ExistsByUsername("anyone")
	if exists {
		t.Fatalf("expected empty state for missing file")
	}
}

func TestOpenCorruptFile(t *testing.T) {
	path := tempStorePath(t)
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	s := Open(path)

	// The corrupt file is discarded and the store stays usable.
	users := NewFileUserRepository(s)
	if err := users.Save(&auth.User{Username: "testuser", PasswordHash: "hash"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists, _ := users.ExistsByUsername("testuser"); !exists {
		t.Fatalf("expected user saved after corrupt load")
	}
}

func TestSaveFailureIsBestEffort(t *testing.T) {
	// Unwritable path: mutations must still succeed in memory.
	s := Open(filepath.Join(t.TempDir(), "missing-dir", "calmate_db.json"))
	entries := NewFileEntryRepository(s)

	if err := entries.Append("testuser", "2026-08-31", []diary.Entry{
		{Raw: "chai", Name: "chai (estimated)", Kcal: 150},
	}); err != nil {
		t.Fatalf("expected best-effort save, got error: %v", err)
	}

	day, _ := entries.List("testuser", "2026-08-31")
	if len(day) != 1 {
		t.Fatalf("expected in-memory entry despite save failure, got %d", len(day))
	}
}

func TestClearDayAndResetKeepAccount(t *testing.T) {
	s := Open(tempStorePath(t))
	users := NewFileUserRepository(s)
	entries := NewFileEntryRepository(s)

	if err := users.Save(&auth.User{Username: "testuser", PasswordHash: "hash"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, date := range []string{"2026-08-30", "2026-08-31"} {
		if err := entries.Append("testuser", date, []diary.Entry{{Raw: "2 roti", Name: "roti", Kcal: 160}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if err := entries.ClearDay("testuser", "2026-08-31"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day, _ := entries.List("testuser", "2026-08-31"); len(day) != 0 {
		t.Fatalf("expected cleared day, got %d entries", len(day))
	}
	if day, _ := entries.List("testuser", "2026-08-30"); len(day) != 1 {
		t.Fatalf("expected other day untouched, got %d entries", len(day))
	}

	if err := entries.ResetAll("testuser"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day, _ := entries.List("testuser", "2026-08-30"); len(day) != 0 {
		t.Fatalf("expected all entries gone, got %d", len(day))
	}
	if exists, _ := users.ExistsByUsername("testuser"); !exists {
		t.Fatalf("reset must keep the account")
	}
}
