package service

import (
	"context"
	"testing"

	"crmbackend/cache"
	"crmbackend/models"
	"crmbackend/repository"
)

func TestProgrammerSeesEverything(t *testing.T) {
	mem := repository.NewMemory()
	svc := NewPermissionService(mem.Permissions(), cache.New())

	for _, module := range ModuleNames {
		if !svc.Allowed(context.Background(), ProgrammerRole, module) {
			t.Fatalf("programmer denied %q", module)
		}
	}
}

func TestPermissionDocumentDrivesGate(t *testing.T) {
	ctx := context.Background()
	mem := repository.NewMemory()
	mem.AddPermission(models.Permission{
		WorkerType: "seller",
		Modules:    map[string]bool{"clients": true, "orders": true, "reports": false},
	})
	svc := NewPermissionService(mem.Permissions(), cache.New())

	if !svc.Allowed(ctx, "seller", "orders") {
		t.Fatalf("seller should reach orders")
	}
	if svc.Allowed(ctx, "seller", "reports") {
		t.Fatalf("seller should not reach reports")
	}
	if svc.Allowed(ctx, "seller", "permissions") {
		t.Fatalf("unlisted module must default to denied")
	}
}

func TestMissingDocumentFallsBackToMinimalSet(t *testing.T) {
	ctx := context.Background()
	mem := repository.NewMemory()
	svc := NewPermissionService(mem.Permissions(), cache.New())

	if !svc.Allowed(ctx, "warehouse", "orders") || !svc.Allowed(ctx, "warehouse", "clients") {
		t.Fatalf("minimal set should allow clients and orders")
	}
	if svc.Allowed(ctx, "warehouse", "permissions") {
		t.Fatalf("minimal set must not allow permissions")
	}
}

func TestInvalidateDropsCachedFlags(t *testing.T) {
	ctx := context.Background()
	mem := repository.NewMemory()
	mem.AddPermission(models.Permission{WorkerType: "seller", Modules: map[string]bool{"orders": true}})
	svc := NewPermissionService(mem.Permissions(), cache.New())

	if !svc.Allowed(ctx, "seller", "orders") {
		t.Fatalf("seller should reach orders")
	}

	// flip the stored flags; the gate keeps serving the cached copy until
	// invalidated
	mem.AddPermission(models.Permission{WorkerType: "seller", Modules: map[string]bool{"orders": false}})
	if !svc.Allowed(ctx, "seller", "orders") {
		t.Fatalf("cached flags should still allow orders")
	}

	svc.Invalidate("seller")
	if svc.Allowed(ctx, "seller", "orders") {
		t.Fatalf("after invalidation the new flags should deny orders")
	}
}
