package models

// Category is a named grouping that recipes and freezer items reference via
// their CategoryID. Categories are fetched once per client session and
// treated as read-mostly.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TableName returns the name of the database table
// associated with the Category model.
func (c Category) TableName() string {
	return "categories"
}
