package permit

import (
	"context"
	"testing"
	"time"

	"github.com/PermitDrive/PermitDrive/internal/association"
	"github.com/PermitDrive/PermitDrive/internal/common/auth"
	"github.com/PermitDrive/PermitDrive/internal/common/config"
	"github.com/PermitDrive/PermitDrive/internal/common/db"
	"github.com/PermitDrive/PermitDrive/internal/unit"
	"github.com/PermitDrive/PermitDrive/internal/vehicle"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var testAuthCfg = config.AuthConfig{
	Enabled:       true,
	JWTSecret:     "test-secret",
	Issuer:        "permitdrive",
	Audience:      "permitdrive",
	OverrideScope: "permits:override",
}

func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()
	gdb, err := db.NewSQLiteMemory()
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := gdb.AutoMigrate(
		&association.Association{},
		&unit.Unit{},
		&vehicle.Vehicle{},
		&Permit{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewService(gdb, NewOverrideVerifier(testAuthCfg)), gdb
}

type assocOpts struct {
	method          association.AllocationMethod
	perCount        int
	maxPerUnit      *int
	visitorPolicy   association.VisitorPolicy
	maxVisitor      int
	allowAdditional bool
}

func seedAssociation(t *testing.T, gdb *gorm.DB, o assocOpts) *association.Association {
	t.Helper()
	if o.method == "" {
		o.method = association.AllocationPerUnit
	}
	if o.perCount == 0 {
		o.perCount = 1
	}
	if o.visitorPolicy == "" {
		o.visitorPolicy = association.VisitorUnlimited
	}
	a := &association.Association{
		ID:                     uuid.NewString(),
		Name:                   "Test HOA",
		AllocationMethod:       o.method,
		PermitsPerCount:        o.perCount,
		MaxPermitsPerUnit:      o.maxPerUnit,
		VisitorPolicy:          o.visitorPolicy,
		MaxVisitorPermits:      o.maxVisitor,
		AllowAdditionalPermits: o.allowAdditional,
	}
	if err := association.NewRepo(gdb).Upsert(context.Background(), a); err != nil {
		t.Fatalf("seed association: %v", err)
	}
	return a
}

func seedUnit(t *testing.T, gdb *gorm.DB, assocID string, bedrooms int) *unit.Unit {
	t.Helper()
	u := &unit.Unit{
		ID:            uuid.NewString(),
		AssociationID: assocID,
		Number:        "1-101",
		Bedrooms:      bedrooms,
	}
	if err := unit.NewRepo(gdb).Upsert(context.Background(), u); err != nil {
		t.Fatalf("seed unit: %v", err)
	}
	return u
}

func seedVehicle(t *testing.T, gdb *gorm.DB, unitID, plate, status string) *vehicle.Vehicle {
	t.Helper()
	v := &vehicle.Vehicle{
		ID:          uuid.NewString(),
		UnitID:      unitID,
		PlateNumber: plate,
		Status:      status,
	}
	if err := vehicle.NewRepo(gdb).Upsert(context.Background(), v); err != nil {
		t.Fatalf("seed vehicle: %v", err)
	}
	return v
}

func overrideToken(t *testing.T, scopes []string) string {
	t.Helper()
	token, _, err := auth.GenerateAccessToken(testAuthCfg, "mgr-1", nil, scopes, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func mustIssue(t *testing.T, svc *Service, in IssueInput, now time.Time) *Permit {
	t.Helper()
	res, err := svc.Issue(context.Background(), in, now)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if !res.Success {
		t.Fatalf("Issue denied: code=%s msg=%s", res.Code, res.Message)
	}
	return res.Permit
}
