package handlers

import (
	"log"
	"net/http"

	"goshop/app/helpers"
	"goshop/app/repositories"
	"goshop/app/services"

	"github.com/unrolled/render"
)

type HomeHandler struct {
	render       *render.Render
	catalog      *services.CatalogService
	categoryRepo repositories.CategoryRepositoryImpl
}

func NewHomeHandler(r *render.Render, catalog *services.CatalogService, categoryRepo repositories.CategoryRepositoryImpl) *HomeHandler {
	return &HomeHandler{render: r, catalog: catalog, categoryRepo: categoryRepo}
}

func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalog.Home(r.Context(), 20)
	if err != nil {
		log.Printf("Home: failed to load products: %v", err)
		http.Error(w, "Failed to load products", http.StatusInternalServerError)
		return
	}

	categories, err := h.categoryRepo.GetAllActive(r.Context())
	if err != nil {
		log.Printf("Home: failed to load categories: %v", err)
		http.Error(w, "Failed to load categories", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":      "GoShop",
		"Products":   products,
		"Categories": categories,
	})
	_ = h.render.HTML(w, http.StatusOK, "home", data)
}
