package controllers_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulsenet-api/models"
)

func uploadFile(t *testing.T, r *gin.Engine, token, filename string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("fake media bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/media/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadMedia(t *testing.T) {
	r, _ := setupTestRouter(t)
	token, _ := registerUser(t, r, "alice")

	w := uploadFile(t, r, token, "holiday.jpg")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		FilePath string `json:"file_path"`
		Type     string `json:"type"`
	}
	decodeBody(t, w, &resp)
	assert.NotEmpty(t, resp.FilePath)
	assert.Equal(t, "photo", resp.Type)

	w = uploadFile(t, r, token, "clip.mp4")
	require.Equal(t, http.StatusCreated, w.Code)
	decodeBody(t, w, &resp)
	assert.Equal(t, "video", resp.Type)
}

func TestUploadRejectsUnknownExtension(t *testing.T) {
	r, _ := setupTestRouter(t)
	token, _ := registerUser(t, r, "alice")

	w := uploadFile(t, r, token, "script.exe")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAttachToPost(t *testing.T) {
	r, _ := setupTestRouter(t)
	authorToken, _ := registerUser(t, r, "alice")
	otherToken, _ := registerUser(t, r, "bob")

	postID := createPost(t, r, authorToken, "with media")
	attachPath := fmt.Sprintf("/api/v1/posts/%d/attach", postID)

	body := gin.H{"file_path": "uploads/abc.jpg", "type": "photo"}

	w := doJSON(r, http.MethodPost, attachPath, otherToken, body)
	assert.Equal(t, http.StatusForbidden, w.Code, "only the post author may attach media")

	w = doJSON(r, http.MethodPost, attachPath, authorToken, body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodGet, fmt.Sprintf("/api/v1/posts/%d", postID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var view models.PostView
	decodeBody(t, w, &view)
	require.Len(t, view.Attachments, 1)
	assert.Equal(t, "uploads/abc.jpg", view.Attachments[0].FilePath)
	assert.Equal(t, models.AttachmentTypePhoto, view.Attachments[0].Type)
}

func TestAttachRejectsInvalidType(t *testing.T) {
	r, _ := setupTestRouter(t)
	token, _ := registerUser(t, r, "alice")
	postID := createPost(t, r, token, "post")

	w := doJSON(r, http.MethodPost, fmt.Sprintf("/api/v1/posts/%d/attach", postID), token, gin.H{
		"file_path": "uploads/abc.bin",
		"type":      "document",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
