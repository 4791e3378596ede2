package service

import (
	"context"
	"errors"

	"crmbackend/cache"
	"crmbackend/repository"
)

// ProgrammerRole bypasses the permission documents entirely.
const ProgrammerRole = "programmer"

// ModuleNames lists every gated module. Permission documents carry a boolean
// per name.
var ModuleNames = []string{
	"clients", "employees", "products", "orders",
	"purchases", "providers", "catalogs", "reports", "permissions",
}

// defaultModules is the hard-coded minimal set used when a worker type has no
// permission document.
var defaultModules = map[string]bool{
	"clients": true,
	"orders":  true,
}

type PermissionService struct {
	store repository.PermissionStore
	cache *cache.Store
}

func NewPermissionService(store repository.PermissionStore, c *cache.Store) *PermissionService {
	if c == nil {
		c = cache.New()
	}
	return &PermissionService{store: store, cache: c}
}

// Allowed reports whether the worker type may open a module.
func (s *PermissionService) Allowed(ctx context.Context, role, module string) bool {
	if role == ProgrammerRole {
		return true
	}
	return s.ModulesFor(ctx, role)[module]
}

// ModulesFor resolves the module flags for a worker type, via the TTL cache.
// A missing document (or an unreadable one) falls back to the minimal set.
func (s *PermissionService) ModulesFor(ctx context.Context, role string) map[string]bool {
	if role == ProgrammerRole {
		all := make(map[string]bool, len(ModuleNames))
		for _, name := range ModuleNames {
			all[name] = true
		}
		return all
	}

	key := "permissions:" + role
	if cached, ok := s.cache.Get(key); ok {
		return cached.(map[string]bool)
	}

	modules := make(map[string]bool, len(defaultModules))
	perm, err := s.store.GetByWorkerType(ctx, role)
	if err == nil {
		for name, allowed := range perm.Modules {
			modules[name] = allowed
		}
	} else if errors.Is(err, repository.ErrNotFound) {
		for name := range defaultModules {
			modules[name] = true
		}
	} else {
		// backend failure: behave as if the document were absent, do not cache
		for name := range defaultModules {
			modules[name] = true
		}
		return modules
	}

	s.cache.Set(key, modules)
	return modules
}

// Invalidate drops the cached flags for a worker type after a permission
// write.
func (s *PermissionService) Invalidate(role string) {
	s.cache.Invalidate("permissions:" + role)
}
