package controllers

import (
	"encoding/json"
	"net/http"

	"griddle/app/services"

	"github.com/gorilla/mux"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

type commentRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Comment string `json:"comment"`
}

// Index handles GET /api/post/{id}/comments
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	comments, err := cc.commentService.ListComments(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, comments)
}

// Create handles POST /api/post/{id}/comments
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
		return
	}

	comments, err := cc.commentService.AddComment(mux.Vars(r)["id"], req.Name, req.Email, req.Comment)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, map[string]interface{}{
		"message":  "Comment added successfully",
		"comments": comments,
	})
}

// Delete handles DELETE /api/post/{postId}/comments/{commentId}
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	comments, err := cc.commentService.RemoveComment(vars["postId"], vars["commentId"])
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{
		"message":  "Comment deleted successfully",
		"comments": comments,
	})
}
