package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLogModel stores append-only audit entries. Before/After are JSON
// snapshots of the touched entity.
type AuditLogModel struct {
	ID         uint   `gorm:"primarykey"`
	ActorID    uint   `gorm:"not null;index:idx_audit_actor"`
	Action     string `gorm:"not null;size:50;index:idx_audit_action"`
	EntityType string `gorm:"not null;size:50"`
	EntityID   uint
	Before     datatypes.JSON
	After      datatypes.JSON
	CreatedAt  time.Time
}

// TableName specifies the table name for GORM
func (AuditLogModel) TableName() string {
	return "audit_logs"
}
