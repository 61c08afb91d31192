package models

// Setting is a key-value row for small pieces of application state that
// live alongside the record collections (demo session counter, schema
// version).
type Setting struct {
	Key   string `gorm:"primaryKey" json:"key"`
	Value string `json:"value"`
}
