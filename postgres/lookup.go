package postgres

import (
	"fmt"
	"log/slog"

	v10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/xy-planning-network/enums"
	"gorm.io/gorm"
)

var valid = v10.New()

// A Lookup is one row of an enum lookup table: a table whose rows are
// themselves the members of an enum field.
type Lookup struct {
	enums.Model
	ExternalID uuid.UUID `db:"external_id" json:"externalId"`
	Name       string    `db:"name" json:"name" validate:"required"`
	Title      string    `db:"title" json:"title"`
	Position   int       `db:"position" json:"position" validate:"gte=0"`
	IsDefault  bool      `db:"is_default" json:"isDefault"`
}

// EnumDef declares the Lookup as an enum member.
//
// EnumDef implements enums.Valuer.
func (l Lookup) EnumDef() enums.Def {
	return enums.Def{
		ID: int(l.ID),
		Value: enums.Attrs{
			Name:     l.Name,
			Title:    l.Title,
			Position: l.Position,
			Default:  l.IsDefault,
		},
	}
}

// LoadSource reads the lookup table named table into a Records declaration,
// in id order. Because each member is a full Lookup row, the row stays
// reachable through enums.Value.Entity after registration.
//
// A row missing its name fails with ErrBadDefinition.
func LoadSource(db *gorm.DB, table string) (enums.Records, error) {
	var rows []Lookup
	if err := db.Table(table).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: loading %s: %s", enums.ErrUnexpected, table, err)
	}

	src := make(enums.Records, 0, len(rows))
	for _, row := range rows {
		if err := valid.Struct(row); err != nil {
			return nil, fmt.Errorf("%w: %s row %d: %s", enums.ErrBadDefinition, table, row.ID, err)
		}

		src = append(src, row)
	}

	slog.Debug("loaded enum lookup table", "table", table, "rows", len(src))

	return src, nil
}
