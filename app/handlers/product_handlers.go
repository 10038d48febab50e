package handlers

import (
	"errors"
	"log"
	"net/http"

	"goshop/app/helpers"
	"goshop/app/services"
	"goshop/app/utils/breadcrumb"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

type ProductHandler struct {
	render  *render.Render
	catalog *services.CatalogService
}

func NewProductHandler(r *render.Render, catalog *services.CatalogService) *ProductHandler {
	return &ProductHandler{render: r, catalog: catalog}
}

// CategoryProducts lists the products of a category and all of its
// descendants. Unknown or inactive categories are a 404.
func (h *ProductHandler) CategoryProducts(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	category, products, err := h.catalog.ListProductsForCategory(r.Context(), slug)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Printf("CategoryProducts: failed to list products for %q: %v", slug, err)
		http.Error(w, "Failed to load products", http.StatusInternalServerError)
		return
	}

	breadcrumbs := []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: category.Title, URL: "/category/" + category.Slug},
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":       category.Title,
		"Category":    category,
		"Products":    products,
		"Breadcrumbs": breadcrumbs,
	})
	_ = h.render.HTML(w, http.StatusOK, "products/list", data)
}

// ProductDetail shows a product with its variants, attributes, published
// comments and the comment form.
func (h *ProductHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	productSlug := mux.Vars(r)["product_slug"]

	product, comments, err := h.catalog.GetProductDetail(r.Context(), productSlug)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Printf("ProductDetail: failed to load product %q: %v", productSlug, err)
		http.Error(w, "Failed to load product", http.StatusInternalServerError)
		return
	}

	breadcrumbs := []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
	}
	if len(product.Categories) > 0 {
		mainCategory := product.Categories[0]
		breadcrumbs = append(breadcrumbs, breadcrumb.Breadcrumb{
			Name: mainCategory.Title,
			URL:  "/category/" + mainCategory.Slug,
		})
	}
	breadcrumbs = append(breadcrumbs, breadcrumb.Breadcrumb{Name: product.Name, URL: "/" + product.Slug})

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":          product.Name,
		"Product":        product,
		"Comments":       comments,
		"Breadcrumbs":    breadcrumbs,
		csrf.TemplateTag: csrf.TemplateField(r),
	})
	_ = h.render.HTML(w, http.StatusOK, "products/detail", data)
}
