package postgres_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/enums"
	"github.com/xy-planning-network/enums/postgres"
)

func TestLookupEnumDef(t *testing.T) {
	// Arrange
	row := postgres.Lookup{
		Name:      "cancelled",
		Title:     "Ended",
		Position:  5,
		IsDefault: true,
	}
	row.ID = 4

	// Act
	def := row.EnumDef()

	// Assert
	require.Equal(t, 4, def.ID)
	require.Equal(t, enums.Attrs{Name: "cancelled", Title: "Ended", Position: 5, Default: true}, def.Value)
}

func TestLookupRowsAsSource(t *testing.T) {
	// Arrange
	rows := make(enums.Records, 0, 2)
	for i, name := range []string{"new", "in_progress"} {
		row := postgres.Lookup{Name: name}
		row.ID = uint(i + 1)
		rows = append(rows, row)
	}

	// Act
	reg, err := enums.NewRegistry(rows)

	// Assert
	require.Nil(t, err)
	require.Equal(t, 2, reg.Len())

	v, err := reg.Lookup("in_progress")
	require.Nil(t, err)
	require.Equal(t, 2, v.ID())
	require.Equal(t, "In Progress", v.Title())

	entity, ok := v.Entity().(postgres.Lookup)
	require.True(t, ok)
	require.Equal(t, uint(2), entity.ID)
}
