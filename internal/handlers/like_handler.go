package handlers

import (
	"errors"
	"net/http"

	"github.com/graceyoon00/MiniWall/internal/models"
	"github.com/graceyoon00/MiniWall/internal/repositories"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeRepository repositories.LikeRepository
	postRepository repositories.PostRepository // To update like counts in posts
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, postRepo repositories.PostRepository) *LikeHandler {
	return &LikeHandler{
		likeRepository: likeRepo,
		postRepository: postRepo,
	}
}

// RegisterLikeRoutes registers like routes requiring authentication
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:id/likes", h.LikePost)
	g.DELETE("/posts/:id/likes", h.UnlikePost)
}

// RegisterPublicLikeRoutes registers like routes that need no identity
func (h *LikeHandler) RegisterPublicLikeRoutes(g *echo.Group) {
	g.GET("/posts/:id/likes/count", h.GetLikesCountForPost)
}

// LikePost records a like on someone else's post and bumps its counter.
// The like insert and the counter increment are two separate writes with
// no rollback; a failure in between leaves the counter behind the records.
func (h *LikeHandler) LikePost(c echo.Context) error {
	userID := c.Get("userID").(string)
	postID := c.Param("id")

	post, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "You cannot like a post that does not exist.")
		}
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	if post.PostOwner.Hex() == userID {
		return echo.NewHTTPError(http.StatusBadRequest, "You cannot like your own post.")
	}

	hasLiked, err := h.likeRepository.HasUserLikedPost(c.Request().Context(), postID, userID)
	if err != nil {
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}
	if hasLiked {
		return echo.NewHTTPError(http.StatusBadRequest, "You cannot like a post twice.")
	}

	user, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}

	like := &models.Like{
		LikeUser: user,
		LikePost: post.ID,
	}

	if err := h.likeRepository.CreateLike(c.Request().Context(), like); err != nil {
		if errors.Is(err, models.ErrConflict) {
			return echo.NewHTTPError(http.StatusBadRequest, "You cannot like a post twice.")
		}
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	if err := h.postRepository.IncrementLikeCount(c.Request().Context(), postID); err != nil {
		c.Logger().Error(err)
	}

	return c.JSON(http.StatusCreated, like)
}

// UnlikePost removes the requester's like from a post and drops its counter
func (h *LikeHandler) UnlikePost(c echo.Context) error {
	userID := c.Get("userID").(string)
	postID := c.Param("id")

	_, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "You cannot unlike a post that does not exist.")
		}
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	if err := h.likeRepository.DeleteLike(c.Request().Context(), postID, userID); err != nil {
		if errors.Is(err, models.ErrNotLiked) {
			return echo.NewHTTPError(http.StatusBadRequest, "You cannot unlike a post you have not liked.")
		}
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	if err := h.postRepository.DecrementLikeCount(c.Request().Context(), postID); err != nil {
		c.Logger().Error(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetLikesCountForPost returns the number of like records referencing a
// post. Public, so the count comes from the records rather than the
// denormalized counter.
func (h *LikeHandler) GetLikesCountForPost(c echo.Context) error {
	postID := c.Param("id")

	_, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return echo.NewHTTPError(http.StatusBadRequest, "Post does not exist")
		}
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	count, err := h.likeRepository.CountLikesByPostID(c.Request().Context(), postID)
	if err != nil {
		c.Logger().Error(err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Database error")
	}

	return c.JSON(http.StatusOK, echo.Map{"post_id": postID, "like_count": count})
}
