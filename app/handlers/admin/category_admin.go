package admin

import (
	"errors"
	"log"
	"net/http"
	"net/url"

	"goshop/app/helpers"
	"goshop/app/repositories"
	"goshop/app/services"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

// CategoryAdminHandler is the administrative write surface for the
// category tree. All writes go through CategoryService.Save, so the
// slug, cycle and depth checks cannot be skipped.
type CategoryAdminHandler struct {
	render       *render.Render
	categories   *services.CategoryService
	categoryRepo repositories.CategoryRepositoryImpl
}

func NewCategoryAdminHandler(r *render.Render, categories *services.CategoryService, categoryRepo repositories.CategoryRepositoryImpl) *CategoryAdminHandler {
	return &CategoryAdminHandler{render: r, categories: categories, categoryRepo: categoryRepo}
}

func (h *CategoryAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("CategoryAdmin List: failed to load categories: %v", err)
		http.Error(w, "Failed to load categories", http.StatusInternalServerError)
		return
	}

	paths := make(map[string]string, len(categories))
	for i := range categories {
		path, err := h.categories.DisplayPath(r.Context(), &categories[i])
		if err != nil {
			log.Printf("CategoryAdmin List: failed to build path for %s: %v", categories[i].ID, err)
			continue
		}
		paths[categories[i].ID] = path
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":          "Categories",
		"Categories":     categories,
		"Paths":          paths,
		csrf.TemplateTag: csrf.TemplateField(r),
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/categories", data)
}

func (h *CategoryAdminHandler) Save(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, categoriesURL("error", "Failed to process the form."), http.StatusSeeOther)
		return
	}

	form := services.CategoryForm{
		ID:       r.FormValue("id"),
		Title:    r.FormValue("title"),
		IsActive: r.FormValue("is_active") == "on",
	}
	if parent := r.FormValue("parent_id"); parent != "" {
		form.ParentID = &parent
	}

	if _, err := h.categories.Save(r.Context(), form); err != nil {
		var validationErrs validator.ValidationErrors
		switch {
		case errors.Is(err, services.ErrDuplicateSlug):
			http.Redirect(w, r, categoriesURL("error", "A category with this path already exists."), http.StatusSeeOther)
		case errors.Is(err, services.ErrCategoryCycle):
			http.Redirect(w, r, categoriesURL("error", "This parent would create a cycle."), http.StatusSeeOther)
		case errors.Is(err, services.ErrDepthExceeded):
			http.Redirect(w, r, categoriesURL("error", "Category tree is too deep."), http.StatusSeeOther)
		case errors.Is(err, services.ErrParentNotFound):
			http.Redirect(w, r, categoriesURL("error", "Parent category does not exist."), http.StatusSeeOther)
		case errors.As(err, &validationErrs):
			msgs := helpers.FormatValidationErrors(validationErrs)
			for _, msg := range msgs {
				http.Redirect(w, r, categoriesURL("error", msg), http.StatusSeeOther)
				return
			}
		default:
			log.Printf("CategoryAdmin Save: failed to save category: %v", err)
			http.Redirect(w, r, categoriesURL("error", "Failed to save the category."), http.StatusSeeOther)
		}
		return
	}

	http.Redirect(w, r, categoriesURL("success", "Category saved."), http.StatusSeeOther)
}

func (h *CategoryAdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.categories.Delete(r.Context(), id); err != nil {
		if errors.Is(err, services.ErrCategoryNotFound) {
			http.Redirect(w, r, categoriesURL("error", "Category does not exist."), http.StatusSeeOther)
			return
		}
		log.Printf("CategoryAdmin Delete: failed to delete category %s: %v", id, err)
		http.Redirect(w, r, categoriesURL("error", "Failed to delete the category."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, categoriesURL("success", "Category deleted, including its subcategories."), http.StatusSeeOther)
}

func categoriesURL(status, message string) string {
	return "/admin/categories?status=" + status + "&message=" + url.QueryEscape(message)
}
