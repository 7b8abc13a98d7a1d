package authz

import "fmt"

// RoleSeed declares one built-in role.
type RoleSeed struct {
	Role      string
	Inherits  []string
	Policies  []Policy
	Immutable bool
}

// BuiltinRoleSeeds is the default role matrix. Every operator can read the
// dashboard; write access follows the fulfillment workflow split between
// sales, warehouse, manager and admin.
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: "readonly",
			Policies: []Policy{
				{Object: "/admin/*", Action: "GET"},
			},
			Immutable: true,
		},
		{
			Role:     "sales",
			Inherits: []string{"readonly"},
			Policies: []Policy{
				{Object: "/admin/orders", Action: "POST"},
				{Object: "/admin/orders/:id/items", Action: "PUT"},
				{Object: "/admin/orders/:id/send-to-warehouse", Action: "POST"},
				{Object: "/admin/orders/:id/status", Action: "POST"},
				{Object: "/admin/customers", Action: "*"},
				{Object: "/admin/customers/:id", Action: "*"},
				{Object: "/admin/upload", Action: "POST"},
				{Object: "/admin/notifications/:id/read", Action: "POST"},
			},
			Immutable: true,
		},
		{
			Role:     "warehouse",
			Inherits: []string{"readonly"},
			Policies: []Policy{
				{Object: "/admin/orders/:id/warehouse-stock", Action: "POST"},
				{Object: "/admin/notifications/:id/read", Action: "POST"},
			},
			Immutable: true,
		},
		{
			Role:     "manager",
			Inherits: []string{"readonly"},
			Policies: []Policy{
				{Object: "/admin/orders/:id/invoice", Action: "POST"},
				{Object: "/admin/orders/:id/status", Action: "POST"},
				{Object: "/admin/upload", Action: "POST"},
				{Object: "/admin/notifications/:id/read", Action: "POST"},
			},
			Immutable: true,
		},
		{
			Role:     "admin",
			Inherits: []string{"readonly"},
			Policies: []Policy{
				{Object: "/admin/*", Action: "*"},
			},
			Immutable: true,
		},
	}
}

// BootstrapBuiltinRoles seeds the built-in roles and their policies.
func (s *Service) BootstrapBuiltinRoles() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}

	changed := false
	for _, seed := range BuiltinRoleSeeds() {
		role, err := NormalizeRole(seed.Role)
		if err != nil {
			return err
		}

		exists, err := s.enforcer.HasNamedGroupingPolicy("g", role, roleAnchor)
		if err != nil {
			return fmt.Errorf("check builtin role failed: %w", err)
		}
		if !exists {
			added, err := s.enforcer.AddNamedGroupingPolicy("g", role, roleAnchor)
			if err != nil {
				return fmt.Errorf("create builtin role failed: %w", err)
			}
			if added {
				changed = true
			}
		}

		for _, parent := range seed.Inherits {
			parentRole, err := NormalizeRole(parent)
			if err != nil {
				return err
			}
			added, err := s.enforcer.AddNamedGroupingPolicy("g", role, parentRole)
			if err != nil {
				return fmt.Errorf("link role inheritance failed: %w", err)
			}
			if added {
				changed = true
			}
		}

		for _, policy := range seed.Policies {
			action := NormalizeAction(policy.Action)
			if action == "" {
				return fmt.Errorf("builtin policy action is required")
			}
			added, err := s.enforcer.AddPolicy(role, NormalizeObject(policy.Object), action)
			if err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
			if added {
				changed = true
			}
		}
	}

	if changed {
		return s.saveAndReload()
	}
	return nil
}
