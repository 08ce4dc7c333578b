package enums

import (
	"database/sql"
	"time"
)

type Modelable interface {
	Exists() bool
}

// A Model is the essential data points for primary ID-based records,
// indicating when a record was created, last updated and soft deleted.
// Record types declaring enum fields and lookup-table rows alike embed it.
type Model struct {
	ID        uint        `db:"id" json:"id"`
	CreatedAt time.Time   `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time   `db:"updated_at" json:"updatedAt"`
	DeletedAt DeletedTime `db:"deleted_at" json:"deletedAt"`
}

func (m Model) Exists() bool { return !m.CreatedAt.IsZero() }

// DeletedTime is a nullable timestamp marking a record as soft deleted.
type DeletedTime struct {
	sql.NullTime
}

// IsDeleted asserts whether the record is soft deleted.
func (dt DeletedTime) IsDeleted() bool { return dt.Valid }
