package stats_service

import "bazaar-go-admin/model"

// ScopeKind 可见域类别
type ScopeKind int

const (
	// ScopeGlobal 全局可见域，平台管理员可见所有商家
	ScopeGlobal ScopeKind = iota
	// ScopeVendor 单商家可见域
	ScopeVendor
	// ScopeNone 空可见域，所有统计返回零值
	ScopeNone
)

// Scope 请求级可见域，解析一次后在整个计算中保持不变
type Scope struct {
	Kind     ScopeKind
	VendorId string
}

func GlobalScope() Scope {
	return Scope{Kind: ScopeGlobal}
}

func VendorScope(vendorId string) Scope {
	return Scope{Kind: ScopeVendor, VendorId: vendorId}
}

func EmptyScope() Scope {
	return Scope{Kind: ScopeNone}
}

// ResolveScope 由角色与商家绑定推导可见域
// admin/super_admin 为全局；vendor_admin 有绑定则限定其商家；
// vendor_admin 无绑定按空可见域处理（仪表盘返回零值，不报错）
func ResolveScope(role, assignedVendorId string) Scope {
	switch role {
	case model.RoleAdmin, model.RoleSuperAdmin:
		return GlobalScope()
	case model.RoleVendorAdmin:
		if assignedVendorId == "" {
			return EmptyScope()
		}
		return VendorScope(assignedVendorId)
	default:
		return EmptyScope()
	}
}

// Allows 判断归属 vendorId 的记录是否落在可见域内
// 全局可见域放行一切（含无商家归属的记录）
func (s Scope) Allows(vendorId string) bool {
	switch s.Kind {
	case ScopeGlobal:
		return true
	case ScopeVendor:
		return vendorId != "" && vendorId == s.VendorId
	default:
		return false
	}
}

func (s Scope) IsGlobal() bool {
	return s.Kind == ScopeGlobal
}

// CacheKey 可见域的缓存键片段，摘要缓存必须按可见域隔离
func (s Scope) CacheKey() string {
	switch s.Kind {
	case ScopeGlobal:
		return "global"
	case ScopeVendor:
		return "vendor:" + s.VendorId
	default:
		return "none"
	}
}
