package kuuid

import (
	"database/sql/driver"

	"github.com/gofrs/uuid"
	"github.com/martinlehoux/kuuid/kcore"
)

// Value implements driver.Valuer. The ID is stored as the driver's native
// UUID representation, not as the short base64 form, so columns stay
// readable by anything else talking to the database.
func (id ID) Value() (driver.Value, error) {
	return uuid.UUID(id).Value()
}

// Scan implements sql.Scanner, accepting whatever the driver hands back for
// a UUID column.
func (id *ID) Scan(src any) error {
	var raw uuid.UUID
	if err := raw.Scan(src); err != nil {
		return kcore.Wrap(err, "error scanning uuid")
	}
	*id = ID(raw)
	return nil
}
