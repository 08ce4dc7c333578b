package enums_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/enums"
)

type Task struct {
	enums.Model
	Description string   `db:"description"`
	StatusID    enums.ID `db:"status_id"`
}

func TestRegister(t *testing.T) {
	// Arrange + Act
	f, err := enums.Register[Task]("status", statusMap())

	// Assert
	require.Nil(t, err)
	require.Equal(t, "status", f.Name())
	require.Equal(t, 4, f.Registry().Len())

	found, ok := enums.FieldFor[Task]("status")
	require.True(t, ok)
	require.Equal(t, f, found)

	_, ok = enums.FieldFor[Task]("priority")
	require.False(t, ok)

	// Arrange + Act
	_, err = enums.Register[Task]("status", enums.Map{{ID: 1, Value: 100}})

	// Assert: a failed registration leaves the prior binding in place.
	require.ErrorIs(t, err, enums.ErrBadDefinition)

	found, ok = enums.FieldFor[Task]("status")
	require.True(t, ok)
	require.Equal(t, f, found)
}

func TestRegisterRebuilds(t *testing.T) {
	// Arrange
	first, err := enums.Register[Task]("status", statusMap())
	require.Nil(t, err)

	// Act
	second, err := enums.Register[Task]("status", enums.Map{{ID: 1, Value: "only"}})

	// Assert
	require.Nil(t, err)
	require.NotEqual(t, first, second)

	found, ok := enums.FieldFor[Task]("status")
	require.True(t, ok)
	require.Equal(t, second, found)
	require.Equal(t, 1, found.Registry().Len())
}

func TestMustRegister(t *testing.T) {
	require.NotPanics(t, func() { enums.MustRegister[Task]("status", statusMap()) })
	require.Panics(t, func() { enums.MustRegister[Task]("status", enums.Map{{ID: 1, Value: 100}}) })
}

func TestFieldClassAccessors(t *testing.T) {
	// Arrange
	f := enums.MustRegister[Task]("status", enums.Map{
		{ID: 1, Value: enums.Attrs{Name: "new", Default: true}},
		{ID: 2, Value: "in_progress"},
	})

	// Act + Assert
	require.Len(t, f.Values(), 2)

	v, err := f.Value("in_progress")
	require.Nil(t, err)
	require.Equal(t, 2, v.ID())

	_, err = f.Value("missing")
	require.ErrorIs(t, err, enums.ErrNotFound)

	_, err = f.Value(true)
	require.ErrorIs(t, err, enums.ErrInvalidKey)

	def, ok := f.Default()
	require.True(t, ok)
	require.Equal(t, "new", def.Name())
}

func TestFieldGet(t *testing.T) {
	f := enums.MustRegister[Task]("status", statusMap())

	t.Run("Blank", func(t *testing.T) {
		var task Task
		_, ok := f.Get(task.StatusID)
		require.False(t, ok)
	})

	t.Run("Resolves", func(t *testing.T) {
		task := Task{StatusID: enums.NewID(2)}
		v, ok := f.Get(task.StatusID)
		require.True(t, ok)
		require.Equal(t, "in_progress", v.Name())
	})

	t.Run("Unresolvable-ID", func(t *testing.T) {
		task := Task{StatusID: enums.NewID(99)}
		_, ok := f.Get(task.StatusID)
		require.False(t, ok)
	})
}

func TestFieldSet(t *testing.T) {
	f := enums.MustRegister[Task]("status", statusMap())

	t.Run("By-Value-And-By-Name-Agree", func(t *testing.T) {
		v, err := f.Value("cancelled")
		require.Nil(t, err)

		var byValue, byName Task
		require.Nil(t, f.Set(&byValue.StatusID, v))
		require.Nil(t, f.Set(&byName.StatusID, "cancelled"))

		require.Equal(t, byValue.StatusID, byName.StatusID)
		require.Equal(t, int64(4), byValue.StatusID.Int64)
	})

	t.Run("Nil-Clears", func(t *testing.T) {
		task := Task{StatusID: enums.NewID(1)}
		require.Nil(t, f.Set(&task.StatusID, nil))
		require.True(t, task.StatusID.IsBlank())

		_, ok := f.Get(task.StatusID)
		require.False(t, ok)
	})

	t.Run("Unknown-Name", func(t *testing.T) {
		var task Task
		require.ErrorIs(t, f.Set(&task.StatusID, "missing"), enums.ErrNotFound)
	})

	t.Run("Bad-Type", func(t *testing.T) {
		var task Task
		require.ErrorIs(t, f.Set(&task.StatusID, 42), enums.ErrBadAssignment)
	})
}

func TestFieldIs(t *testing.T) {
	f := enums.MustRegister[Task]("status", statusMap())

	for _, tc := range []struct {
		name   string
		input  enums.ID
		member string
		output bool
	}{
		{"Matches", enums.NewID(1), "new", true},
		{"Other-Member", enums.NewID(1), "completed", false},
		{"Blank", enums.ID{}, "new", false},
		{"Unresolvable", enums.NewID(99), "new", false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.output, f.Is(tc.input, tc.member))
		})
	}
}

func TestBoundValue(t *testing.T) {
	f := enums.MustRegister[Task]("status", statusMap())

	// Act
	var set enums.Enumerable = f.Enum(enums.NewID(2))
	var blank enums.Enumerable = f.Enum(enums.ID{})
	var stray enums.Enumerable = f.Enum(enums.NewID(99))

	// Assert
	require.Equal(t, "in_progress", set.String())
	require.Nil(t, set.Valid())

	require.Equal(t, "", blank.String())
	require.ErrorIs(t, blank.Valid(), enums.ErrNotValid)

	require.Equal(t, "", stray.String())
	require.ErrorIs(t, stray.Valid(), enums.ErrNotValid)
}
