package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Get("/api/recipes", h.listRecipes)
		r.Get("/api/recipes/search", h.searchRecipes)
		r.Get("/api/recipes/{id}", h.getRecipe)

		r.Get("/api/freezer-items", h.listFreezerItems)
		r.Get("/api/freezer-items/{id}", h.getFreezerItem)

		r.Get("/api/categories", h.listCategories)

		r.Get("/api/version", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)

		r.Post("/api/recipes", h.createRecipe)
		r.Put("/api/recipes/{id}", h.updateRecipe)
		r.Delete("/api/recipes/{id}", h.deleteRecipe)

		r.Post("/api/freezer-items", h.createFreezerItem)
		r.Put("/api/freezer-items/{id}", h.updateFreezerItem)
		r.Delete("/api/freezer-items/{id}", h.deleteFreezerItem)

		r.Post("/api/categories", h.createCategory)
		r.Delete("/api/categories/{id}", h.deleteCategory)
	})

	return router
}
