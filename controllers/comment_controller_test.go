package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulsenet-api/models"
)

func TestCommentLifecycle(t *testing.T) {
	r, _ := setupTestRouter(t)
	authorToken, _ := registerUser(t, r, "alice")
	commenterToken, _ := registerUser(t, r, "bob")
	setProfile(t, r, commenterToken, "bob")

	postID := createPost(t, r, authorToken, "discuss")
	commentsPath := fmt.Sprintf("/api/v1/posts/%d/comments", postID)

	w := doJSON(r, http.MethodPost, commentsPath, commenterToken, gin.H{"text": "first!"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Comment
	decodeBody(t, w, &created)

	w = doJSON(r, http.MethodGet, commentsPath, "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Comments []models.CommentView `json:"comments"`
	}
	decodeBody(t, w, &resp)
	require.Len(t, resp.Comments, 1)
	assert.Equal(t, "first!", resp.Comments[0].Text)
	assert.Equal(t, "first!", resp.Comments[0].Content, "content mirrors text for older clients")
	assert.Equal(t, "bob", resp.Comments[0].AuthorUsername)

	deletePath := fmt.Sprintf("/api/v1/comments/%d", created.ID)

	w = doJSON(r, http.MethodDelete, deletePath, authorToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code, "only the comment author may delete")

	w = doJSON(r, http.MethodDelete, deletePath, commenterToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, commentsPath, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &resp)
	assert.Empty(t, resp.Comments)
}

func TestCommentAcceptsLegacyContentField(t *testing.T) {
	r, _ := setupTestRouter(t)
	token, _ := registerUser(t, r, "alice")
	postID := createPost(t, r, token, "post")

	w := doJSON(r, http.MethodPost, fmt.Sprintf("/api/v1/posts/%d/comments", postID), token, gin.H{"content": "legacy"})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Comment
	decodeBody(t, w, &created)
	assert.Equal(t, "legacy", created.Text)
}

func TestCommentOnMissingPost(t *testing.T) {
	r, _ := setupTestRouter(t)
	token, _ := registerUser(t, r, "alice")

	w := doJSON(r, http.MethodPost, "/api/v1/posts/9999/comments", token, gin.H{"text": "hello?"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodGet, "/api/v1/posts/9999/comments", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCommentAuthorWithoutProfile(t *testing.T) {
	r, _ := setupTestRouter(t)
	token, _ := registerUser(t, r, "alice")
	postID := createPost(t, r, token, "post")

	w := doJSON(r, http.MethodPost, fmt.Sprintf("/api/v1/posts/%d/comments", postID), token, gin.H{"text": "no profile"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/v1/posts/%d/comments", postID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Comments []models.CommentView `json:"comments"`
	}
	decodeBody(t, w, &resp)
	require.Len(t, resp.Comments, 1)
	assert.Equal(t, "", resp.Comments[0].AuthorUsername)
}
