package server

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"plume/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddComment(t *testing.T) {
	t.Parallel()
	s, app, db := setupTestServer(t)

	author := createUser(t, db, "author")
	commenter := createUser(t, db, "commenter")
	createPost(t, db, author, "discuss me", time.Now())

	countComments := func() int64 {
		var n int64
		db.Model(&models.Comment{}).Count(&n)
		return n
	}

	t.Run("anonymous is redirected to the feed", func(t *testing.T) {
		resp := doRequest(t, app, jsonRequest(t, http.MethodPost, "/api/users/author/posts/1/comments", map[string]any{"text": "hi"}))
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/api/feed", resp.Header.Get("Location"))
		assert.Equal(t, int64(0), countComments())
	})

	t.Run("signed-in user comments", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, "/api/users/author/posts/1/comments", map[string]any{"text": "nice"})
		req.Header.Set("Authorization", bearer(t, s, commenter))
		resp := doRequest(t, app, req)
		require.Equal(t, http.StatusCreated, resp.StatusCode)

		var comment models.Comment
		decodeBody(t, resp, &comment)
		assert.Equal(t, commenter.ID, comment.AuthorID)
		assert.Equal(t, "nice", comment.Text)
	})

	t.Run("empty comment is rejected, not dropped", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, "/api/users/author/posts/1/comments", map[string]any{"text": ""})
		req.Header.Set("Authorization", bearer(t, s, commenter))
		resp := doRequest(t, app, req)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)

		var body struct {
			Code   string `json:"code"`
			Fields []struct {
				Field string `json:"field"`
			} `json:"fields"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, "VALIDATION_ERROR", body.Code)
		require.NotEmpty(t, body.Fields)
		assert.Equal(t, "text", body.Fields[0].Field)
		assert.Equal(t, int64(1), countComments())
	})

	t.Run("overlong comment is rejected", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, "/api/users/author/posts/1/comments", map[string]any{"text": strings.Repeat("x", 2001)})
		req.Header.Set("Authorization", bearer(t, s, commenter))
		resp := doRequest(t, app, req)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("comment on a missing post is 404", func(t *testing.T) {
		req := jsonRequest(t, http.MethodPost, "/api/users/author/posts/999/comments", map[string]any{"text": "hi"})
		req.Header.Set("Authorization", bearer(t, s, commenter))
		resp := doRequest(t, app, req)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestGetComments_AscendingOrder(t *testing.T) {
	t.Parallel()
	_, app, db := setupTestServer(t)

	author := createUser(t, db, "author")
	createPost(t, db, author, "thread", time.Now())

	base := time.Now().Add(-time.Hour)
	for i, text := range []string{"oldest", "middle", "newest"} {
		require.NoError(t, db.Create(&models.Comment{
			PostID:    1,
			AuthorID:  author.ID,
			Text:      text,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}).Error)
	}

	resp := doRequest(t, app, jsonRequest(t, http.MethodGet, "/api/users/author/posts/1/comments", nil))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var comments []models.Comment
	decodeBody(t, resp, &comments)
	require.Len(t, comments, 3)
	assert.Equal(t, "oldest", comments[0].Text)
	assert.Equal(t, "newest", comments[2].Text)
}
