package catalog

import (
	"context"
	"strings"

	"github.com/savrasovpm/go-pantry-keeper/internal/adapter"
	"github.com/savrasovpm/go-pantry-keeper/models"
)

// Collection describes one server-backed record collection to a [Cache]:
// how to reach its endpoints and how to read, sort and validate its records.
type Collection[T any] struct {
	// Name identifies the collection in logs.
	Name string

	// ID extracts the record's unique identifier.
	ID func(record T) int64

	// DisplayName extracts the name records are sorted and searched by.
	DisplayName func(record T) string

	// CategoryID extracts the record's category reference. Nil for
	// collections that have no category axis; such records always pass the
	// category filter.
	CategoryID func(record T) int64

	// Validate runs the client-side required-field checks before a create
	// or update is allowed to reach the network.
	Validate func(record T) error

	List   func(ctx context.Context) ([]T, error)
	Create func(ctx context.Context, record T) (T, error)
	Update func(ctx context.Context, id int64, record T) (T, error)
	Delete func(ctx context.Context, id int64) error
}

// Recipes binds the recipe collection to gateway.
func Recipes(gateway adapter.ServerGateway) Collection[models.Recipe] {
	return Collection[models.Recipe]{
		Name:        "recipes",
		ID:          func(r models.Recipe) int64 { return r.ID },
		DisplayName: func(r models.Recipe) string { return r.Name },
		CategoryID:  func(r models.Recipe) int64 { return r.CategoryID },
		Validate:    validateRecipe,
		List:        gateway.ListRecipes,
		Create:      gateway.CreateRecipe,
		Update:      gateway.UpdateRecipe,
		Delete:      gateway.DeleteRecipe,
	}
}

// FreezerItems binds the freezer inventory collection to gateway.
func FreezerItems(gateway adapter.ServerGateway) Collection[models.FreezerItem] {
	return Collection[models.FreezerItem]{
		Name:        "freezer-items",
		ID:          func(f models.FreezerItem) int64 { return f.ID },
		DisplayName: func(f models.FreezerItem) string { return f.Name },
		CategoryID:  func(f models.FreezerItem) int64 { return f.CategoryID },
		Validate:    validateFreezerItem,
		List:        gateway.ListFreezerItems,
		Create:      gateway.CreateFreezerItem,
		Update:      gateway.UpdateFreezerItem,
		Delete:      gateway.DeleteFreezerItem,
	}
}

// Categories binds the category collection to gateway. Categories have no
// category axis of their own and cannot be updated, only created and
// deleted.
func Categories(gateway adapter.ServerGateway) Collection[models.Category] {
	return Collection[models.Category]{
		Name:        "categories",
		ID:          func(c models.Category) int64 { return c.ID },
		DisplayName: func(c models.Category) string { return c.Name },
		Validate:    validateCategory,
		List:        gateway.ListCategories,
		Create:      gateway.CreateCategory,
		Delete:      gateway.DeleteCategory,
	}
}

func validateRecipe(r models.Recipe) error {
	if strings.TrimSpace(r.Name) == "" {
		return &MissingFieldError{Field: "name"}
	}
	if r.CategoryID == 0 {
		return &MissingFieldError{Field: "category"}
	}
	return nil
}

func validateFreezerItem(f models.FreezerItem) error {
	if strings.TrimSpace(f.Name) == "" {
		return &MissingFieldError{Field: "name"}
	}
	if f.Quantity <= 0 {
		return &MissingFieldError{Field: "quantity"}
	}
	if f.CategoryID == 0 {
		return &MissingFieldError{Field: "category"}
	}
	return nil
}

func validateCategory(c models.Category) error {
	if strings.TrimSpace(c.Name) == "" {
		return &MissingFieldError{Field: "name"}
	}
	return nil
}
