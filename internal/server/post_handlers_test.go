package server

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"plume/internal/models"
	"plume/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePost(t *testing.T) {
	t.Parallel()
	s, app, db := setupTestServer(t)
	author := createUser(t, db, "writer")

	t.Run("anonymous is redirected to the feed", func(t *testing.T) {
		resp := doRequest(t, app, jsonRequest(t, http.MethodPost, "/api/posts", map[string]any{"text": "hi"}))
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/api/feed", resp.Header.Get("Location"))

		var count int64
		db.Model(&models.Post{}).Count(&count)
		assert.Equal(t, int64(0), count, "no post may be created anonymously")
	})

	t.Run("signed-in author creates", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, "/api/posts", map[string]any{"text": "first post"})
		req.Header.Set("Authorization", bearer(t, s, author))
		resp := doRequest(t, app, req)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var post models.Post
		decodeBody(t, resp, &post)
		assert.Equal(t, author.ID, post.AuthorID)
		assert.Equal(t, "first post", post.Text)
	})

	t.Run("created post appears in the feed", func(t *testing.T) {
		resp := doRequest(t, app, jsonRequest(t, http.MethodGet, "/api/feed", nil))
		var feed service.FeedPage
		decodeBody(t, resp, &feed)
		require.NotEmpty(t, feed.Posts)
		assert.Equal(t, "first post", feed.Posts[0].Text)
		assert.Equal(t, "writer", feed.Posts[0].Author.Username)
	})

	t.Run("empty text is a structured field error", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, "/api/posts", map[string]any{"text": "   "})
		req.Header.Set("Authorization", bearer(t, s, author))
		resp := doRequest(t, app, req)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body struct {
			Code   string `json:"code"`
			Fields []struct {
				Field   string `json:"field"`
				Message string `json:"message"`
			} `json:"fields"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, "VALIDATION_ERROR", body.Code)
		require.NotEmpty(t, body.Fields)
		assert.Equal(t, "text", body.Fields[0].Field)
	})

	t.Run("unknown group is a field error", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, "/api/posts", map[string]any{"text": "hello", "group_id": 999})
		req.Header.Set("Authorization", bearer(t, s, author))
		resp := doRequest(t, app, req)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetAuthorPost(t *testing.T) {
	t.Parallel()
	_, app, db := setupTestServer(t)

	author := createUser(t, db, "leo")
	stranger := createUser(t, db, "mia")
	post := createPost(t, db, author, "readable", time.Now())
	_ = stranger

	t.Run("returns post and comments", func(t *testing.T) {
		db.Create(&models.Comment{PostID: post.ID, AuthorID: author.ID, Text: "first"})
		db.Create(&models.Comment{PostID: post.ID, AuthorID: author.ID, Text: "second"})

		resp := doRequest(t, app, jsonRequest(t, http.MethodGet, "/api/users/leo/posts/1", nil))
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Post            models.Post      `json:"post"`
			AuthorPostCount int64            `json:"author_post_count"`
			Comments        []models.Comment `json:"comments"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, "readable", body.Post.Text)
		assert.Equal(t, int64(2), body.Post.CommentsCount)
		assert.Equal(t, int64(1), body.AuthorPostCount)
		require.Len(t, body.Comments, 2)
		assert.Equal(t, "first", body.Comments[0].Text)
		assert.Equal(t, "second", body.Comments[1].Text)
	})

	t.Run("post under the wrong username is 404", func(t *testing.T) {
		resp := doRequest(t, app, jsonRequest(t, http.MethodGet, "/api/users/mia/posts/1", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("non-numeric id is 404", func(t *testing.T) {
		resp := doRequest(t, app, jsonRequest(t, http.MethodGet, "/api/users/leo/posts/abc", nil))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestUpdatePost(t *testing.T) {
	t.Parallel()
	s, app, db := setupTestServer(t)

	owner := createUser(t, db, "owner")
	intruder := createUser(t, db, "intruder")
	created := time.Now().Add(-48 * time.Hour).Truncate(time.Second)
	post := createPost(t, db, owner, "original", created)

	t.Run("anonymous is redirected", func(t *testing.T) {
		resp := doRequest(t, app, jsonRequest(t, http.MethodPut, "/api/users/owner/posts/1", map[string]any{"text": "x"}))
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/api/feed", resp.Header.Get("Location"))
	})

	t.Run("non-owner is redirected to the post view", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPut, "/api/users/owner/posts/1", map[string]any{"text": "hijacked"})
		req.Header.Set("Authorization", bearer(t, s, intruder))
		resp := doRequest(t, app, req)
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/api/users/owner/posts/1", resp.Header.Get("Location"))

		var got models.Post
		require.NoError(t, db.First(&got, post.ID).Error)
		assert.Equal(t, "original", got.Text, "non-owner edit must not persist")
	})

	t.Run("owner edits and created_at survives", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPut, "/api/users/owner/posts/1", map[string]any{"text": "edited"})
		req.Header.Set("Authorization", bearer(t, s, owner))
		resp := doRequest(t, app, req)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var got models.Post
		require.NoError(t, db.First(&got, post.ID).Error)
		assert.Equal(t, "edited", got.Text)
		assert.WithinDuration(t, created, got.CreatedAt, time.Second)
	})

	t.Run("owner edit with empty text is rejected", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPut, "/api/users/owner/posts/1", map[string]any{"text": strings.Repeat(" ", 3)})
		req.Header.Set("Authorization", bearer(t, s, owner))
		resp := doRequest(t, app, req)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
