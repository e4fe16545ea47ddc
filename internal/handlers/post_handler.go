package handlers

import (
	"errors"
	"net/http"

	"github.com/graceyoon00/MiniWall/internal/models"
	"github.com/graceyoon00/MiniWall/internal/repositories"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository) *PostHandler {
	return &PostHandler{postRepository: postRepo}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts", h.GetPosts)
	g.GET("/posts/:id", h.GetPost)
	g.PATCH("/posts/:id", h.UpdatePost)
	g.DELETE("/posts/:id", h.DeletePost)
}

// CreatePost creates a new post owned by the requester
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID := c.Get("userID").(string)

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	owner, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	post := &models.Post{
		PostTitle:       req.PostTitle,
		PostDescription: req.PostDescription,
		PostOwner:       owner,
	}

	if err := h.postRepository.CreatePost(c.Request().Context(), post); err != nil {
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	return c.JSON(http.StatusCreated, post)
}

// GetPosts lists all posts, most-liked first with ties broken by recency
func (h *PostHandler) GetPosts(c echo.Context) error {
	posts, err := h.postRepository.GetAllPosts(c.Request().Context())
	if err != nil {
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	models.RankPosts(posts)
	return c.JSON(http.StatusOK, posts)
}

// GetPost retrieves a single post by ID
func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postRepository.GetPostByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "Post does not exist")
		}
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	return c.JSON(http.StatusOK, post)
}

// UpdatePost overwrites the title and description of a post the requester owns
func (h *PostHandler) UpdatePost(c echo.Context) error {
	userID := c.Get("userID").(string)
	postID := c.Param("id")

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "Post does not exist")
		}
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	if post.PostOwner.Hex() != userID {
		return echo.NewHTTPError(http.StatusBadRequest, "You are not the owner of this post")
	}

	if err := h.postRepository.UpdatePost(c.Request().Context(), postID, req.PostTitle, req.PostDescription); err != nil {
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	post.PostTitle = req.PostTitle
	post.PostDescription = req.PostDescription
	return c.JSON(http.StatusOK, post)
}

// DeletePost removes a post the requester owns. Likes and comments that
// reference the post are left behind, matching the original behavior.
func (h *PostHandler) DeletePost(c echo.Context) error {
	userID := c.Get("userID").(string)
	postID := c.Param("id")

	post, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "Post does not exist")
		}
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	if post.PostOwner.Hex() != userID {
		return echo.NewHTTPError(http.StatusBadRequest, "You are not the owner of this post")
	}

	if err := h.postRepository.DeletePost(c.Request().Context(), postID); err != nil {
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	return c.NoContent(http.StatusNoContent)
}
