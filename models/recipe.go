package models

// Recipe is one entry of the recipe catalog.
//
// Ingredients and Instructions are ordered lists of free-form strings;
// their order is part of the recipe and must be preserved end to end.
// Image is an optional inline photo; it is omitted from list responses
// when empty to keep payloads small.
type Recipe struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Image        []byte   `json:"image,omitempty"`
	CategoryID   int64    `json:"category_id"`
}

// TableName returns the name of the database table
// associated with the Recipe model.
func (r Recipe) TableName() string {
	return "recipes"
}
