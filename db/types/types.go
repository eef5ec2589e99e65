package types

// Migration is a sql-migrate migration. SQL holds both directions, the Down part
// first and the Up part after the "-- +migrate Up" marker.
type Migration struct {
	ID  string
	SQL string
	// Prefix replaces /*dbprefix*/ in SQL so several components can share a database
	Prefix string
}
