package models

// FreezerItem is one entry of the freezer inventory.
//
// CategoryName is a read-only display field joined in by the server when
// listing items; it is never written back and the server recomputes it on
// every read, so a renamed category is reflected on the next load.
type FreezerItem struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name,omitempty"`
}

// TableName returns the name of the database table
// associated with the FreezerItem model.
func (f FreezerItem) TableName() string {
	return "freezer_items"
}
