package postgres

import (
	"fmt"

	"github.com/xy-planning-network/enums"
	"github.com/xy-planning-network/enums/validate"
	"gorm.io/gorm"
)

const callbackName = "enums:validate"

// RegisterValidation installs a callback running validate.Check on the
// record being saved, before both create and update. A record failing its
// declared rules aborts the save with the validation Errors; the record
// itself remains loadable and inspectable.
func RegisterValidation(db *gorm.DB) error {
	check := func(tx *gorm.DB) {
		if tx.Statement.Dest == nil {
			return
		}

		errs, err := validate.Check(tx.Statement.Dest)
		if err != nil {
			tx.AddError(err)
			return
		}

		if errs.Any() {
			tx.AddError(errs)
		}
	}

	if err := db.Callback().Create().Before("gorm:create").Register(callbackName, check); err != nil {
		return fmt.Errorf("%w: %s", enums.ErrUnexpected, err)
	}

	if err := db.Callback().Update().Before("gorm:update").Register(callbackName, check); err != nil {
		return fmt.Errorf("%w: %s", enums.ErrUnexpected, err)
	}

	return nil
}
