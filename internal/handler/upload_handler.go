package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/student-control/pkg/errors"
	"github.com/noah-isme/student-control/pkg/response"
)

type uploadStore interface {
	Exists(filename string) bool
	Open(filename string) (*os.File, error)
}

// UploadHandler serves stored student photos.
type UploadHandler struct {
	store uploadStore
}

// NewUploadHandler constructs handler.
func NewUploadHandler(store uploadStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// Photo streams a stored photo by its file name. Names that would leave the
// upload directory are treated as missing.
func (h *UploadHandler) Photo(c *gin.Context) {
	name := c.Param("filename")
	if !h.store.Exists(name) {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "photo not found"))
		return
	}

	file, err := h.store.Open(name)
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open photo"))
		return
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open photo"))
		return
	}
	http.ServeContent(c.Writer, c.Request, name, info.ModTime(), file)
}
