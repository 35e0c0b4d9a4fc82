package postgres

import (
	"database/sql"
)

// rowsAdapter turns *sql.Rows into repo.Rows.
type rowsAdapter struct {
	*sql.Rows
}

// Close ignores the error; callers check Err after iterating.
func (ra rowsAdapter) Close() {
	_ = ra.Rows.Close()
}
