package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"griddle/app/services"

	"github.com/gorilla/mux"
)

const maxUploadSize = 32 << 20

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
	engagement  *services.EngagementService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService, engagement *services.EngagementService) *PostController {
	return &PostController{
		postService: postService,
		engagement:  engagement,
	}
}

// postRequest is the JSON payload for create and edit. The reading client
// sends either a multipart form with a coverImage file, or JSON with an
// imageUrl / coverImage string (remote URL or base64 data URL).
type postRequest struct {
	Title      string `json:"title"`
	Subtitle   string `json:"subtitle"`
	Content    string `json:"content"`
	ImageURL   string `json:"imageUrl"`
	CoverImage string `json:"coverImage"`
}

// parsePostRequest extracts the content fields and the image intent from a
// multipart form or a JSON body.
func parsePostRequest(r *http.Request) (services.PostInput, services.ImageIntent, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			return services.PostInput{}, services.NoImageChange(), err
		}
		input := services.PostInput{
			Title:    r.FormValue("title"),
			Subtitle: r.FormValue("subtitle"),
			Content:  r.FormValue("content"),
		}
		if file, _, err := r.FormFile("coverImage"); err == nil {
			return input, services.UploadBinary(file), nil
		}
		if url := r.FormValue("imageUrl"); url != "" {
			return input, services.UploadFromURL(url), nil
		}
		return input, services.NoImageChange(), nil
	}

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return services.PostInput{}, services.NoImageChange(), err
	}
	input := services.PostInput{
		Title:    req.Title,
		Subtitle: req.Subtitle,
		Content:  req.Content,
	}
	switch {
	case req.ImageURL != "":
		return input, services.UploadFromURL(req.ImageURL), nil
	case req.CoverImage != "":
		return input, services.UploadFromURL(req.CoverImage), nil
	}
	return input, services.NoImageChange(), nil
}

// Index handles GET /api/post/all
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.ListPosts()
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, posts)
}

// Show handles GET /api/post/{id}
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	post, err := pc.postService.GetPost(mux.Vars(r)["id"])
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Create handles POST /api/post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	input, intent, err := parsePostRequest(r)
	if err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
		return
	}
	defer intent.Close()

	post, err := pc.postService.CreatePost(r.Context(), input, intent)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusCreated, post)
}

// Edit handles PUT /api/post/{id}
func (pc *PostController) Edit(w http.ResponseWriter, r *http.Request) {
	input, intent, err := parsePostRequest(r)
	if err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
		return
	}
	defer intent.Close()

	post, err := pc.postService.EditPost(r.Context(), mux.Vars(r)["id"], input, intent)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, post)
}

// Delete handles DELETE /api/post/{id}
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	if err := pc.postService.DeletePost(r.Context(), mux.Vars(r)["id"]); err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]string{"message": "Post deleted successfully"})
}

// Like handles POST /api/post/{id}/like
func (pc *PostController) Like(w http.ResponseWriter, r *http.Request) {
	pc.vote(w, r, services.ActionLike, "Post liked successfully")
}

// Dislike handles POST /api/post/{id}/dislike
func (pc *PostController) Dislike(w http.ResponseWriter, r *http.Request) {
	pc.vote(w, r, services.ActionDislike, "Post disliked successfully")
}

func (pc *PostController) vote(w http.ResponseWriter, r *http.Request, action services.VoteAction, message string) {
	result, err := pc.engagement.Vote(mux.Vars(r)["id"], clientIdentity(r), action)
	if err != nil {
		sendError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{
		"likes":    result.Likes,
		"dislikes": result.Dislikes,
		"message":  message,
	})
}
