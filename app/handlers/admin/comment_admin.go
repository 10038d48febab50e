package admin

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"

	"goshop/app/helpers"
	"goshop/app/services"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
)

// CommentAdminHandler exposes the moderation actions: list waiting
// threads, publish, cancel, and reply (which also publishes the parent).
type CommentAdminHandler struct {
	render   *render.Render
	comments *services.CommentService
}

func NewCommentAdminHandler(r *render.Render, comments *services.CommentService) *CommentAdminHandler {
	return &CommentAdminHandler{render: r, comments: comments}
}

func (h *CommentAdminHandler) List(w http.ResponseWriter, r *http.Request) {
	comments, err := h.comments.AllForModeration(r.Context())
	if err != nil {
		log.Printf("CommentAdmin List: failed to load comments: %v", err)
		http.Error(w, "Failed to load comments", http.StatusInternalServerError)
		return
	}

	data := helpers.GetBaseData(r, map[string]interface{}{
		"Title":          "Comment Moderation",
		"Comments":       comments,
		csrf.TemplateTag: csrf.TemplateField(r),
	})
	_ = h.render.HTML(w, http.StatusOK, "admin/comments", data)
}

func (h *CommentAdminHandler) Publish(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.comments.Publish, "Comment published.")
}

func (h *CommentAdminHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, h.comments.Cancel, "Comment canceled.")
}

func (h *CommentAdminHandler) setStatus(w http.ResponseWriter, r *http.Request, action func(ctx context.Context, id string) error, message string) {
	id := mux.Vars(r)["id"]

	if err := action(r.Context(), id); err != nil {
		if errors.Is(err, services.ErrCommentNotFound) {
			http.Redirect(w, r, moderationURL("error", "Comment no longer exists."), http.StatusSeeOther)
			return
		}
		log.Printf("CommentAdmin: failed to update comment %s: %v", id, err)
		http.Redirect(w, r, moderationURL("error", "Failed to update the comment."), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, moderationURL("success", message), http.StatusSeeOther)
}

func (h *CommentAdminHandler) Reply(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, moderationURL("error", "Failed to process the form."), http.StatusSeeOther)
		return
	}

	moderatorID, _ := r.Context().Value(helpers.ContextKeyUserID).(string)
	content := r.FormValue("content")

	if _, err := h.comments.AdminReply(r.Context(), moderatorID, id, content); err != nil {
		switch {
		case errors.Is(err, services.ErrCommentNotFound):
			http.Redirect(w, r, moderationURL("error", "Comment no longer exists."), http.StatusSeeOther)
		case errors.Is(err, services.ErrEmptyComment):
			http.Redirect(w, r, moderationURL("error", "Reply cannot be empty."), http.StatusSeeOther)
		default:
			log.Printf("CommentAdmin Reply: failed to reply to %s: %v", id, err)
			http.Redirect(w, r, moderationURL("error", "Failed to save the reply."), http.StatusSeeOther)
		}
		return
	}

	http.Redirect(w, r, moderationURL("success", "Reply posted. Thread published."), http.StatusSeeOther)
}

func moderationURL(status, message string) string {
	return fmt.Sprintf("/admin/comments?status=%s&message=%s", status, url.QueryEscape(message))
}
