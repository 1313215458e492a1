package domain

// Table is a mongo collection name
type Table string

const (
	TableRuns            Table = "rarity_runs"
	TableAuthorizedUsers Table = "authorized_users"
)
