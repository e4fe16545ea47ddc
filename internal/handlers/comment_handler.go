package handlers

import (
	"errors"
	"net/http"

	"github.com/graceyoon00/MiniWall/internal/models"
	"github.com/graceyoon00/MiniWall/internal/repositories"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	postRepository    repositories.PostRepository
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		postRepository:    postRepo,
	}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:id/comments", h.CreateComment)
	g.GET("/posts/:id/comments", h.GetCommentsByPostID)
	g.PATCH("/comments/:id", h.UpdateComment)
	g.DELETE("/comments/:id", h.DeleteComment)
}

// CreateComment creates a new comment on someone else's post
func (h *CommentHandler) CreateComment(c echo.Context) error {
	userID := c.Get("userID").(string)
	postID := c.Param("id")

	// Validation runs before any store access
	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "You cannot comment on a post that does not exist.")
		}
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	if post.PostOwner.Hex() == userID {
		return echo.NewHTTPError(http.StatusBadRequest, "You cannot comment on your own post.")
	}

	author, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	comment := &models.Comment{
		CommentPost:    post.ID,
		CommentContent: req.CommentContent,
		CommentUser:    author,
	}

	if err := h.commentRepository.CreateComment(c.Request().Context(), comment); err != nil {
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	return c.JSON(http.StatusCreated, comment)
}

// GetCommentsByPostID retrieves all comments for a specific post. A post
// with no comments is reported as an error, matching the original API.
func (h *CommentHandler) GetCommentsByPostID(c echo.Context) error {
	postID := c.Param("id")

	_, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "You cannot get comments for a post that does not exist.")
		}
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	comments, err := h.commentRepository.GetCommentsByPostID(c.Request().Context(), postID)
	if err != nil {
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	if len(comments) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "No comments found for this post.")
	}

	return c.JSON(http.StatusOK, comments)
}

// UpdateComment overwrites the content of a comment the requester authored.
// Ownership is checked before payload validation so a non-author is always
// rejected for that reason regardless of what they sent.
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	userID := c.Get("userID").(string)
	commentID := c.Param("id")

	comment, err := h.commentRepository.GetCommentByID(c.Request().Context(), commentID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "You cannot update a comment that does not exist.")
		}
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	if comment.CommentUser.Hex() != userID {
		return echo.NewHTTPError(http.StatusBadRequest, "You cannot update a comment that is not yours.")
	}

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if err := h.commentRepository.UpdateComment(c.Request().Context(), commentID, req.CommentContent); err != nil {
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	comment.CommentContent = req.CommentContent
	return c.JSON(http.StatusOK, comment)
}

// DeleteComment removes a comment the requester authored
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	userID := c.Get("userID").(string)
	commentID := c.Param("id")

	comment, err := h.commentRepository.GetCommentByID(c.Request().Context(), commentID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "You cannot delete a comment that does not exist.")
		}
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	if comment.CommentUser.Hex() != userID {
		return echo.NewHTTPError(http.StatusBadRequest, "You cannot delete a comment that is not yours.")
	}

	if err := h.commentRepository.DeleteComment(c.Request().Context(), commentID); err != nil {
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	return c.NoContent(http.StatusNoContent)
}
