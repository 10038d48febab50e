package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"goshop/app/helpers"
	"goshop/app/services"

	"github.com/gorilla/mux"
)

type CommentHandler struct {
	comments *services.CommentService
}

func NewCommentHandler(comments *services.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// CreateComment handles the comment form on the product detail page.
// The route sits behind RequireAuthMiddleware.
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	productSlug := mux.Vars(r)["product_slug"]

	if err := r.ParseForm(); err != nil {
		log.Printf("CreateComment: error parsing form: %v", err)
		http.Redirect(w, r, productURL(productSlug, "error", "Failed to process the form."), http.StatusSeeOther)
		return
	}

	userID, _ := r.Context().Value(helpers.ContextKeyUserID).(string)
	content := r.FormValue("content")

	var parentID *string
	if parent := r.FormValue("parent_id"); parent != "" {
		parentID = &parent
	}

	_, err := h.comments.Create(r.Context(), userID, productSlug, content, parentID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			http.NotFound(w, r)
		case errors.Is(err, services.ErrEmptyComment):
			http.Redirect(w, r, productURL(productSlug, "error", "Comment cannot be empty."), http.StatusSeeOther)
		case errors.Is(err, services.ErrCommentNotFound):
			http.Redirect(w, r, productURL(productSlug, "error", "The comment you replied to no longer exists."), http.StatusSeeOther)
		default:
			log.Printf("CreateComment: failed to create comment on %q: %v", productSlug, err)
			http.Redirect(w, r, productURL(productSlug, "error", "Failed to save your comment."), http.StatusSeeOther)
		}
		return
	}

	http.Redirect(w, r, productURL(productSlug, "success", "Comment successfully created. It will appear after moderation."), http.StatusFound)
}

func productURL(slug, status, message string) string {
	return fmt.Sprintf("/%s?status=%s&message=%s", slug, status, url.QueryEscape(message))
}
