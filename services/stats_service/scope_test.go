package stats_service

import (
	"testing"

	"bazaar-go-admin/model"
)

func TestResolveScope(t *testing.T) {
	tests := []struct {
		name     string
		role     string
		vendorId string
		want     Scope
	}{
		{"平台管理员", model.RoleAdmin, "", GlobalScope()},
		{"超级管理员", model.RoleSuperAdmin, "", GlobalScope()},
		{"超级管理员忽略绑定", model.RoleSuperAdmin, "v1", GlobalScope()},
		{"商家管理员已绑定", model.RoleVendorAdmin, "v1", VendorScope("v1")},
		{"商家管理员未绑定", model.RoleVendorAdmin, "", EmptyScope()},
		{"买家", model.RoleCustomer, "", EmptyScope()},
		{"未知角色", "auditor", "v1", EmptyScope()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveScope(tt.role, tt.vendorId)
			if got != tt.want {
				t.Errorf("ResolveScope(%q, %q) = %+v, want %+v", tt.role, tt.vendorId, got, tt.want)
			}
		})
	}
}

func TestScopeAllows(t *testing.T) {
	tests := []struct {
		name     string
		scope    Scope
		vendorId string
		want     bool
	}{
		{"全局放行商家记录", GlobalScope(), "v1", true},
		{"全局放行无归属记录", GlobalScope(), "", true},
		{"商家域放行本商家", VendorScope("v1"), "v1", true},
		{"商家域拒绝其他商家", VendorScope("v1"), "v2", false},
		{"商家域拒绝无归属", VendorScope("v1"), "", false},
		{"空域拒绝一切", EmptyScope(), "v1", false},
		{"空域拒绝无归属", EmptyScope(), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.scope.Allows(tt.vendorId); got != tt.want {
				t.Errorf("%+v.Allows(%q) = %v, want %v", tt.scope, tt.vendorId, got, tt.want)
			}
		})
	}
}

func TestScopeCacheKey(t *testing.T) {
	if got := GlobalScope().CacheKey(); got != "global" {
		t.Errorf("global cache key = %q", got)
	}
	if got := VendorScope("v9").CacheKey(); got != "vendor:v9" {
		t.Errorf("vendor cache key = %q", got)
	}
	if got := EmptyScope().CacheKey(); got != "none" {
		t.Errorf("none cache key = %q", got)
	}
}
