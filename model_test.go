package enums_test

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/enums"
)

func TestModelExists(t *testing.T) {
	var m enums.Model
	require.False(t, m.Exists())

	m.CreatedAt = time.Now()
	require.True(t, m.Exists())
}

func TestDeletedTimeIsDeleted(t *testing.T) {
	var dt enums.DeletedTime
	require.False(t, dt.IsDeleted())

	dt = enums.DeletedTime{NullTime: sql.NullTime{Time: time.Now(), Valid: true}}
	require.True(t, dt.IsDeleted())
}
