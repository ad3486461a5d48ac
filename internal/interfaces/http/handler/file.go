package handler

import (
	"io"
	"mime"
	"net/http"
	"strconv"

	filesapp "github.com/Deoshabh/it-erp-system-sub003/internal/application/files"
	"github.com/Deoshabh/it-erp-system-sub003/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FileHandler serves stored report artifacts
type FileHandler struct {
	BaseHandler
	fileService *filesapp.FileService
}

// NewFileHandler creates a new FileHandler
func NewFileHandler(fileService *filesapp.FileService) *FileHandler {
	return &FileHandler{fileService: fileService}
}

// List godoc
// @ID           listFiles
//
//	@Summary		List stored files
//	@Tags			files
//	@Produce		json
//	@Param			category	query		string	false	"Category"	Enums(export, upload)
//	@Param			report_type	query		string	false	"Report type"
//	@Param			page		query		int		false	"Page"		default(1)
//	@Param			page_size	query		int		false	"Page size"	default(20)
//	@Success		200			{object}	APIResponse[[]filesapp.FileResponse]
//	@Security		BearerAuth
//	@Router			/files [get]
func (h *FileHandler) List(c *gin.Context) {
	var filter filesapp.FileListFilter
	if !h.BindQuery(c, &filter) {
		return
	}
	list, total, err := h.fileService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, list, total, filter.Page, filter.PageSize)
}

// GetByID godoc
// @ID           getFileById
//
//	@Summary		Get stored file metadata
//	@Tags			files
//	@Produce		json
//	@Param			id	path		string	true	"File ID"	format(uuid)
//	@Success		200	{object}	APIResponse[filesapp.FileResponse]
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/files/{id} [get]
func (h *FileHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c, "file")
	if !ok {
		return
	}
	file, err := h.fileService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, file)
}

// Download godoc
// @ID           downloadFile
//
//	@Summary		Download a stored file
//	@Description	Redirects to a presigned URL when the backend supports it, otherwise streams the object
//	@Tags			files
//	@Produce		octet-stream
//	@Param			id	path	string	true	"File ID"	format(uuid)
//	@Success		200
//	@Success		307
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/files/{id}/download [get]
func (h *FileHandler) Download(c *gin.Context) {
	id, ok := h.parseID(c, "file")
	if !ok {
		return
	}
	dl, err := h.fileService.Open(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if dl.URL != "" {
		c.Redirect(http.StatusTemporaryRedirect, dl.URL)
		return
	}
	defer dl.Body.Close()

	c.Header("Content-Disposition", attachment(dl.File.Name))
	c.Header("Content-Type", dl.File.ContentType)
	if dl.File.Size > 0 {
		c.Header("Content-Length", strconv.FormatInt(dl.File.Size, 10))
	}
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, dl.Body); err != nil {
		logger.GetGinLogger(c).Warn("File stream interrupted", zap.String("file_id", id.String()), zap.Error(err))
	}
}

// Delete godoc
// @ID           deleteFile
//
//	@Summary		Delete a stored file
//	@Tags			files
//	@Param			id	path	string	true	"File ID"	format(uuid)
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/files/{id} [delete]
func (h *FileHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c, "file")
	if !ok {
		return
	}
	if err := h.fileService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// attachment builds a Content-Disposition value that survives non-ASCII names
func attachment(filename string) string {
	return mime.FormatMediaType("attachment", map[string]string{"filename": filename})
}
