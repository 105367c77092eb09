package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response messages for the post endpoints.
const (
	msgPostCreated = "post created successfully"
	msgPostUpdated = "post updated successfully"
	msgPostDeleted = "post deleted successfully"

	errPostFieldsRequired = "title and content are required"
	errPostNotFound       = "post not found"

	errCreatePost = "failed to create post"
	errGetPost    = "failed to fetch post"
	errListPosts  = "failed to fetch posts"
	errUpdatePost = "failed to update post"
	errDeletePost = "failed to delete post"
)

type postInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// @Summary      Create post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body  postInput  true  "Post payload"
// @Success      200   {object}  map[string]interface{}  "message, postId"
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/posts [post]
func (h *Handler) createPost(c *gin.Context) {
	var input postInput
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	if input.Title == "" || input.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": errPostFieldsRequired})
		return
	}

	ctx := c.Request.Context()
	postID, err := h.services.Posts.Create(ctx, input.Title, input.Content)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errCreatePost, "post_create_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgPostCreated, "postId": postID})
}

// @Summary      Get one post
// @Tags         posts
// @Produce      json
// @Param        id   path      int  true  "Post id"
// @Success      200  {object}  models.Post
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/posts/{id} [get]
func (h *Handler) getPost(c *gin.Context) {
	id, ok := h.idParamOrBadRequest(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	p, err := h.services.Posts.GetByID(ctx, id)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetPost, "post_get_failed", err, "id", id)
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": errPostNotFound})
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      List posts
// @Description  Ordered by creation time, most recent first.
// @Tags         posts
// @Produce      json
// @Success      200  {array}   models.Post
// @Failure      500  {object}  map[string]string
// @Router       /api/posts [get]
func (h *Handler) listPosts(c *gin.Context) {
	ctx := c.Request.Context()
	posts, err := h.services.Posts.List(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListPosts, "post_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// @Summary      Update post
// @Description  Replaces title and content and refreshes updated_at.
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path  int        true  "Post id"
// @Param        body  body  postInput  true  "Post payload"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/posts/{id} [put]
func (h *Handler) updatePost(c *gin.Context) {
	id, ok := h.idParamOrBadRequest(c)
	if !ok {
		return
	}
	// Title/content presence is deliberately not checked here, matching the
	// public contract of this endpoint.
	var input postInput
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.services.Posts.Update(ctx, id, input.Title, input.Content); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errUpdatePost, "post_update_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgPostUpdated})
}

// @Summary      Delete post
// @Description  Succeeds whether or not the row existed.
// @Tags         posts
// @Produce      json
// @Param        id   path      int  true  "Post id"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/posts/{id} [delete]
func (h *Handler) deletePost(c *gin.Context) {
	id, ok := h.idParamOrBadRequest(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.services.Posts.Delete(ctx, id); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errDeletePost, "post_delete_failed", err, "id", id)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgPostDeleted})
}
