package binder_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bindkit/binder"
)

// multipartRequest builds a multipart/form-data request with the given
// form fields and files (field name -> filename -> content).
func multipartRequest(t *testing.T, fields map[string]string, files map[string]map[string][]byte) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for name, value := range fields {
		require.NoError(t, w.WriteField(name, value))
	}
	for field, byName := range files {
		for filename, content := range byName {
			part, err := w.CreateFormFile(field, filename)
			require.NoError(t, err)
			_, err = part.Write(content)
			require.NoError(t, err)
		}
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestFile(t *testing.T) {
	type uploadRequest struct {
		Title    string              `form:"title"`
		Avatar   binder.FileUpload   `file:"avatar"`
		Gallery  []binder.FileUpload `file:"gallery"`
		Document *binder.FileUpload  `file:"document"`
	}

	t.Run("single file", func(t *testing.T) {
		req := multipartRequest(t, nil, map[string]map[string][]byte{
			"avatar": {"me.png": []byte("png-bytes")},
		})

		var result uploadRequest
		err := binder.File()(req, &result, binder.Options{Config: binder.Default})

		require.NoError(t, err)
		assert.Equal(t, "me.png", result.Avatar.Filename)
		assert.Equal(t, int64(9), result.Avatar.Size)
		assert.Equal(t, []byte("png-bytes"), result.Avatar.Content)
	})

	t.Run("multiple files into slice", func(t *testing.T) {
		req := multipartRequest(t, nil, map[string]map[string][]byte{
			"gallery": {
				"a.jpg": []byte("aa"),
				"b.jpg": []byte("bb"),
			},
		})

		var result uploadRequest
		err := binder.File()(req, &result, binder.Options{Config: binder.Default})

		require.NoError(t, err)
		require.Len(t, result.Gallery, 2)
	})

	t.Run("optional pointer file absent", func(t *testing.T) {
		req := multipartRequest(t, map[string]string{"title": "hello"}, nil)

		var result uploadRequest
		err := binder.File()(req, &result, binder.Options{Config: binder.Default})

		require.NoError(t, err)
		assert.Nil(t, result.Document)
	})

	t.Run("non-multipart request is skipped", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader([]byte("{}")))
		req.Header.Set("Content-Type", "application/json")

		var result uploadRequest
		err := binder.File()(req, &result, binder.Options{Config: binder.Default})

		require.NoError(t, err)
		assert.Empty(t, result.Avatar.Filename)
	})

	t.Run("blacklisted file field is not bound", func(t *testing.T) {
		req := multipartRequest(t, nil, map[string]map[string][]byte{
			"avatar": {"me.png": []byte("png-bytes")},
		})

		var result uploadRequest
		err := binder.File()(req, &result, binder.Options{
			Config:    binder.Default,
			Blacklist: []string{"Avatar"},
		})

		require.NoError(t, err)
		assert.Empty(t, result.Avatar.Filename)
	})
}

func TestFileHelpers(t *testing.T) {
	t.Run("GetFile returns the first upload", func(t *testing.T) {
		req := multipartRequest(t, nil, map[string]map[string][]byte{
			"doc": {"report.pdf": []byte("pdf")},
		})

		file, err := binder.GetFile(req, "doc")
		require.NoError(t, err)
		require.NotNil(t, file)
		assert.Equal(t, "report.pdf", file.Filename)
	})

	t.Run("GetFile missing field", func(t *testing.T) {
		req := multipartRequest(t, map[string]string{"title": "x"}, nil)

		file, err := binder.GetFile(req, "doc")
		require.NoError(t, err)
		assert.Nil(t, file)
	})

	t.Run("GetFiles returns all uploads", func(t *testing.T) {
		req := multipartRequest(t, nil, map[string]map[string][]byte{
			"photos": {
				"1.jpg": []byte("one"),
				"2.jpg": []byte("two"),
			},
		})

		files, err := binder.GetFiles(req, "photos")
		require.NoError(t, err)
		assert.Len(t, files, 2)
	})

	t.Run("StreamFile hands content to the handler", func(t *testing.T) {
		req := multipartRequest(t, nil, map[string]map[string][]byte{
			"video": {"clip.mp4": []byte("frames")},
		})

		var got []byte
		err := binder.StreamFile(req, "video", func(r io.Reader, h *binder.FileHeader) error {
			data, err := io.ReadAll(r)
			got = data
			assert.Equal(t, "clip.mp4", h.Filename)
			return err
		})

		require.NoError(t, err)
		assert.Equal(t, []byte("frames"), got)
	})
}

func TestFileContentType(t *testing.T) {
	upload := binder.FileUpload{Filename: "pic.png"}
	assert.Equal(t, "image/png", upload.ContentType())
}
