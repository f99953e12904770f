package vehicle

import (
	"context"
	"errors"
	"testing"

	"github.com/PermitDrive/PermitDrive/internal/common/db"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	gdb, err := db.NewSQLiteMemory()
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := gdb.AutoMigrate(&Vehicle{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewRepo(gdb)
}

func TestArchiveFlipsStatus(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	v := &Vehicle{
		ID:          uuid.NewString(),
		UnitID:      uuid.NewString(),
		PlateNumber: "AB-123",
		Status:      StatusActive,
	}
	if err := repo.Upsert(ctx, v); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	if err := repo.Archive(ctx, v.ID); err != nil {
		t.Fatalf("Archive: %v", err)
	}

	got, err := repo.FindByID(ctx, v.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if got.Status != StatusArchived {
		t.Fatalf("expected archived, got %s", got.Status)
	}
	if got.IsActive() {
		t.Fatalf("archived vehicle must not be active")
	}
}

func TestArchiveMissingVehicle(t *testing.T) {
	repo := newTestRepo(t)
	err := repo.Archive(context.Background(), "no-such-id")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
