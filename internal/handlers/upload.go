package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fieldsales/visits/internal/middleware"
	"github.com/fieldsales/visits/internal/model"
	"github.com/fieldsales/visits/internal/service"
)

type uploadedFile struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	FileURL      string `json:"file_url"`
	FileSize     int64  `json:"file_size"`
	MimeType     string `json:"mime_type"`
}

type uploadedFiles struct {
	Files []*uploadedFile `json:"files"`
}

// UploadHTTPHandler is http handler for file upload endpoints
type UploadHTTPHandler struct {
	uploadSvc service.UploadService
	dir       string
	maxFiles  int
}

// NewUploadHTTPHandler builds new UploadHTTPHandler serving blobs from dir
func NewUploadHTTPHandler(uploadSvc service.UploadService, dir string, maxFiles int) *UploadHTTPHandler {
	return &UploadHTTPHandler{uploadSvc: uploadSvc, dir: dir, maxFiles: maxFiles}
}

// UploadSingle stores one uploaded file
// @Summary     Upload file
// @Tags        uploads
// @Security    ApiKeyAuth
// @Accept      mpfd
// @Produce     json
// @Param       file formData file true "File"
// @Success     200  {object} uploadedFile
// @Failure     400  {object} echo.HTTPError
// @Router      /api/uploads/single [post]
func (h *UploadHTTPHandler) UploadSingle(c echo.Context) error {
	fileHdr, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no file uploaded")
	}

	f, err := h.store(c, fileHdr)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, f)
}

// UploadMultiple stores a batch of uploaded files
// @Summary     Upload files
// @Tags        uploads
// @Security    ApiKeyAuth
// @Accept      mpfd
// @Produce     json
// @Param       files formData file true "Files"
// @Success     200   {object} uploadedFiles
// @Failure     400   {object} echo.HTTPError
// @Router      /api/uploads/multiple [post]
func (h *UploadHTTPHandler) UploadMultiple(c echo.Context) error {
	form, err := c.MultipartForm()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	fileHdrs := form.File["files"]
	if len(fileHdrs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "no files uploaded")
	}
	if len(fileHdrs) > h.maxFiles {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("at most %d files can be uploaded at once", h.maxFiles))
	}

	files := make([]*uploadedFile, 0, len(fileHdrs))
	for _, fileHdr := range fileHdrs {
		f, err := h.store(c, fileHdr)
		if err != nil {
			return err
		}
		files = append(files, f)
	}

	return c.JSON(http.StatusOK, &uploadedFiles{Files: files})
}

// ServeFile streams an uploaded blob by its stored filename
// @Summary     Download file
// @Tags        uploads
// @Param       filename path string true "Stored filename"
// @Success     200 {string} file
// @Failure     404 {object} echo.HTTPError
// @Router      /api/uploads/files/{filename} [get]
func (h *UploadHTTPHandler) ServeFile(c echo.Context) error {
	filename := c.Param("filename")
	if filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return echo.ErrNotFound
	}

	c.Response().Header().Set("Cache-Control", "public, max-age=31536000")
	return c.File(filepath.Join(h.dir, filename))
}

// DeleteByID deletes upload owned by the caller
// @Summary     Delete upload
// @Tags        uploads
// @Security    ApiKeyAuth
// @Param       id path string true "Upload id" Format(uuid)
// @Success     204 "Successful status code"
// @Failure     404 {object} echo.HTTPError
// @Router      /api/uploads/{id} [delete]
func (h *UploadHTTPHandler) DeleteByID(c echo.Context) error {
	if err := h.uploadSvc.Delete(c.Request().Context(), middleware.Identity(c), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *UploadHTTPHandler) store(c echo.Context, fileHdr *multipart.FileHeader) (*uploadedFile, error) {
	src, err := fileHdr.Open()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("failed to load file content - %v", err))
	}
	defer src.Close()

	f, err := h.uploadSvc.Store(c.Request().Context(), middleware.Identity(c), src, fileHdr.Filename, fileHdr.Size)
	if err != nil {
		return nil, err
	}

	return toUploadedFile(f), nil
}

func toUploadedFile(f *model.FileUpload) *uploadedFile {
	return &uploadedFile{
		ID:           f.ID,
		Filename:     f.Filename,
		OriginalName: f.OriginalName,
		FileURL:      fmt.Sprintf("/api/uploads/files/%s", f.Filename),
		FileSize:     f.FileSize,
		MimeType:     f.MimeType,
	}
}
