package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"time"

	"github.com/graceyoon00/MiniWall/internal/models"
	"github.com/graceyoon00/MiniWall/internal/validators"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repository fakes backing the handler tests. They honor the
// same error contract as the Mongo implementations.

type fakeUserRepo struct {
	users []*models.User
}

func (r *fakeUserRepo) CreateUser(_ context.Context, user *models.User) error {
	user.ID = primitive.NewObjectID()
	cp := *user
	r.users = append(r.users, &cp)
	return nil
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, id string) (*models.User, error) {
	for _, u := range r.users {
		if u.ID.Hex() == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *fakeUserRepo) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

type fakePostRepo struct {
	posts    []*models.Post
	getCalls int // number of store reads, used to assert validation short-circuits
}

func (r *fakePostRepo) find(id string) *models.Post {
	for _, p := range r.posts {
		if p.ID.Hex() == id {
			return p
		}
	}
	return nil
}

func (r *fakePostRepo) CreatePost(_ context.Context, post *models.Post) error {
	post.ID = primitive.NewObjectID()
	post.PostTimestamp = time.Now()
	post.LikeCount = 0
	cp := *post
	r.posts = append(r.posts, &cp)
	return nil
}

func (r *fakePostRepo) GetPostByID(_ context.Context, id string) (*models.Post, error) {
	r.getCalls++
	if p := r.find(id); p != nil {
		cp := *p
		return &cp, nil
	}
	return nil, models.ErrNotFound
}

func (r *fakePostRepo) GetAllPosts(_ context.Context) ([]models.Post, error) {
	out := make([]models.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, *p)
	}
	return out, nil
}

func (r *fakePostRepo) UpdatePost(_ context.Context, id, title, description string) error {
	p := r.find(id)
	if p == nil {
		return models.ErrNotFound
	}
	p.PostTitle = title
	p.PostDescription = description
	return nil
}

func (r *fakePostRepo) DeletePost(_ context.Context, id string) error {
	for i, p := range r.posts {
		if p.ID.Hex() == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

func (r *fakePostRepo) IncrementLikeCount(_ context.Context, id string) error {
	if p := r.find(id); p != nil {
		p.LikeCount++
	}
	return nil
}

func (r *fakePostRepo) DecrementLikeCount(_ context.Context, id string) error {
	if p := r.find(id); p != nil {
		p.LikeCount--
	}
	return nil
}

type fakeCommentRepo struct {
	comments []*models.Comment
}

func (r *fakeCommentRepo) CreateComment(_ context.Context, comment *models.Comment) error {
	comment.ID = primitive.NewObjectID()
	comment.CommentTimestamp = time.Now()
	cp := *comment
	r.comments = append(r.comments, &cp)
	return nil
}

func (r *fakeCommentRepo) GetCommentByID(_ context.Context, id string) (*models.Comment, error) {
	for _, cm := range r.comments {
		if cm.ID.Hex() == id {
			cp := *cm
			return &cp, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *fakeCommentRepo) GetCommentsByPostID(_ context.Context, postID string) ([]models.Comment, error) {
	var out []models.Comment
	for _, cm := range r.comments {
		if cm.CommentPost.Hex() == postID {
			out = append(out, *cm)
		}
	}
	return out, nil
}

func (r *fakeCommentRepo) UpdateComment(_ context.Context, id, content string) error {
	for _, cm := range r.comments {
		if cm.ID.Hex() == id {
			cm.CommentContent = content
			return nil
		}
	}
	return models.ErrNotFound
}

func (r *fakeCommentRepo) DeleteComment(_ context.Context, id string) error {
	for i, cm := range r.comments {
		if cm.ID.Hex() == id {
			r.comments = append(r.comments[:i], r.comments[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

type fakeLikeRepo struct {
	likes []*models.Like
}

func (r *fakeLikeRepo) CreateLike(_ context.Context, like *models.Like) error {
	for _, l := range r.likes {
		if l.LikeUser == like.LikeUser && l.LikePost == like.LikePost {
			return models.ErrConflict
		}
	}
	like.ID = primitive.NewObjectID()
	cp := *like
	r.likes = append(r.likes, &cp)
	return nil
}

func (r *fakeLikeRepo) DeleteLike(_ context.Context, postID, userID string) error {
	for i, l := range r.likes {
		if l.LikePost.Hex() == postID && l.LikeUser.Hex() == userID {
			r.likes = append(r.likes[:i], r.likes[i+1:]...)
			return nil
		}
	}
	return models.ErrNotLiked
}

func (r *fakeLikeRepo) HasUserLikedPost(_ context.Context, postID, userID string) (bool, error) {
	for _, l := range r.likes {
		if l.LikePost.Hex() == postID && l.LikeUser.Hex() == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeLikeRepo) CountLikesByPostID(_ context.Context, postID string) (int64, error) {
	var count int64
	for _, l := range r.likes {
		if l.LikePost.Hex() == postID {
			count++
		}
	}
	return count, nil
}

// testAuth stands in for the JWT middleware: it injects the requester
// identity from the X-Test-User header.
func testAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Set("userID", c.Request().Header.Get("X-Test-User"))
		return next(c)
	}
}

func setupEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validators.NewValidator()
	return e
}

func doRequest(e *echo.Echo, method, path, user string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if user != "" {
		req.Header.Set("X-Test-User", user)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func errorMessage(rec *httptest.ResponseRecorder) string {
	var body map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	msg, _ := body["message"].(string)
	return msg
}

func seedPost(repo *fakePostRepo, owner primitive.ObjectID, likeCount int, ts time.Time) *models.Post {
	post := &models.Post{
		ID:              primitive.NewObjectID(),
		PostTitle:       "A seeded post",
		PostDescription: "Seeded post description",
		PostOwner:       owner,
		PostTimestamp:   ts,
		LikeCount:       likeCount,
	}
	repo.posts = append(repo.posts, post)
	return post
}

func seedComment(repo *fakeCommentRepo, post, author primitive.ObjectID, content string) *models.Comment {
	comment := &models.Comment{
		ID:               primitive.NewObjectID(),
		CommentPost:      post,
		CommentContent:   content,
		CommentUser:      author,
		CommentTimestamp: time.Now(),
	}
	repo.comments = append(repo.comments, comment)
	return comment
}
