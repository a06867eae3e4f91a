package models

// TableInfo is one entry of the store's table listing.
type TableInfo struct {
	TableName string `db:"table_name" json:"table_name"`
}
