package model

import "time"

// 审计事件类型
const (
	AuditOrderStatusChanged = "order.status_changed"
	AuditVendorCreated      = "vendor.created"
	AuditVendorUpdated      = "vendor.updated"
	AuditVendorDeleted      = "vendor.deleted"
	AuditVendorAdminBound   = "vendor.admin_bound"
	AuditVendorAdminRemoved = "vendor.admin_removed"
)

// AuditEvent 后台变更的审计事件，经消息队列异步落地
type AuditEvent struct {
	EventType string    `json:"event_type"`
	ActorId   int       `json:"actor_id"`
	ActorRole string    `json:"actor_role"`
	TargetId  string    `json:"target_id"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
