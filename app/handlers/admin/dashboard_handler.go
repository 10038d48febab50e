package admin

import (
	"log"
	"net/http"

	"goshop/app/helpers"
	"goshop/app/models"
	"goshop/app/repositories"
	"goshop/app/services"
	"goshop/app/utils/breadcrumb"

	"github.com/unrolled/render"
)

// DashboardHandler serves the admin landing page with a quick overview
// of the catalog and the moderation queue.
type DashboardHandler struct {
	render       *render.Render
	categoryRepo repositories.CategoryRepositoryImpl
	productRepo  repositories.ProductRepositoryImpl
	comments     *services.CommentService
}

func NewDashboardHandler(r *render.Render, categoryRepo repositories.CategoryRepositoryImpl, productRepo repositories.ProductRepositoryImpl, comments *services.CommentService) *DashboardHandler {
	return &DashboardHandler{
		render:       r,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		comments:     comments,
	}
}

func (h *DashboardHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categories, err := h.categoryRepo.GetAll(ctx)
	if err != nil {
		log.Printf("Dashboard: failed to load categories: %v", err)
	}

	products, err := h.productRepo.GetActiveProducts(ctx, 0)
	if err != nil {
		log.Printf("Dashboard: failed to load products: %v", err)
	}

	moderation, err := h.comments.AllForModeration(ctx)
	if err != nil {
		log.Printf("Dashboard: failed to load moderation queue: %v", err)
	}
	waiting := 0
	for _, c := range moderation {
		if c.Status == models.CommentStatusWaiting {
			waiting++
		}
	}

	breadcrumbs := []breadcrumb.Breadcrumb{
		{Name: "Home", URL: "/"},
		{Name: "Admin", URL: "/admin/dashboard"},
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":           "Admin Dashboard",
		"Breadcrumbs":     breadcrumbs,
		"TotalCategories": len(categories),
		"TotalProducts":   len(products),
		"WaitingComments": waiting,
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/dashboard", data)
}
