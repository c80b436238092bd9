package handler

import (
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/JDLowen/Ultimate-Financial-Tracker--v2/internal/models"
	"github.com/JDLowen/Ultimate-Financial-Tracker--v2/internal/service"
	"github.com/JDLowen/Ultimate-Financial-Tracker--v2/internal/storage"
	"github.com/JDLowen/Ultimate-Financial-Tracker--v2/internal/util"
)

// DocumentHandler serves file uploads, listings and the raw binaries. It
// needs the property service to resolve external property ids on the
// per-property listing page.
type DocumentHandler struct {
	Svc        *service.DocumentService
	Properties *service.PropertyService
	Logger     *logrus.Logger
}

func NewDocumentHandler(svc *service.DocumentService, properties *service.PropertyService, logger *logrus.Logger) *DocumentHandler {
	return &DocumentHandler{Svc: svc, Properties: properties, Logger: logger}
}

type fileResp struct {
	ID           uint   `json:"id"`
	Filename     string `json:"filename"`
	Filetype     string `json:"filetype"`
	RelatedPage  string `json:"related_page"`
	RelatedID    *uint  `json:"related_id"`
	Notes        string `json:"notes"`
	DateUploaded string `json:"date_uploaded"`
	URL          string `json:"url"`
}

func toFileResp(f *models.UploadedFile) fileResp {
	return fileResp{
		ID:           f.ID,
		Filename:     f.FileName,
		Filetype:     f.FileType,
		RelatedPage:  f.RelatedPage,
		RelatedID:    f.RelatedID,
		Notes:        f.Notes,
		DateUploaded: f.DateUploaded.Format("2006-01-02 15:04:05"),
		URL:          "/uploads/" + f.StoredName,
	}
}

// Upload accepts a multipart form with a required "file" part and optional
// related_page, related_id and notes fields.
func (h *DocumentHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil || fileHeader == nil {
		util.JSONError(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	relatedPage := c.DefaultPostForm("related_page", "unspecified")
	notes := c.PostForm("notes")

	var relatedID *uint
	if raw := c.PostForm("related_id"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			util.JSONError(c, http.StatusBadRequest, "Invalid related_id")
			return
		}
		id := uint(n)
		relatedID = &id
	}

	src, err := fileHeader.Open()
	if err != nil {
		h.Logger.WithError(err).Error("failed to open uploaded file")
		util.ServerError(c, "Upload failed")
		return
	}
	defer src.Close()

	file, err := h.Svc.Upload(src, fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"), relatedPage, relatedID, notes)
	if err != nil {
		writeServiceError(c, h.Logger, err, "failed to store upload", "Upload failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Upload successful",
		"file":    toFileResp(file),
	})
}

// ListForProperty renders the documents page for one property, addressed
// by its user-facing property id.
func (h *DocumentHandler) ListForProperty(c *gin.Context) {
	propertyID := c.Param("property_id")

	property, err := h.Properties.GetByPropertyID(propertyID)
	if err != nil {
		writeServiceError(c, h.Logger, err, "failed to resolve property", "Failed to load files")
		return
	}

	files, err := h.Svc.ListByProperty(property.ID)
	if err != nil {
		h.Logger.WithError(err).Error("failed to list property files")
		util.ServerError(c, "Failed to load files")
		return
	}

	items := make([]fileResp, 0, len(files))
	for i := range files {
		items = append(items, toFileResp(&files[i]))
	}

	c.HTML(http.StatusOK, "uploads_list.html", gin.H{
		"title":    "Documents - " + property.PropertyName,
		"property": property,
		"files":    items,
	})
}

// FilesByPage returns the files tagged with a related page as JSON.
func (h *DocumentHandler) FilesByPage(c *gin.Context) {
	files, err := h.Svc.ListByPage(c.Param("related_page"))
	if err != nil {
		h.Logger.WithError(err).Error("failed to list files by page")
		util.ServerError(c, "Failed to load files")
		return
	}

	items := make([]fileResp, 0, len(files))
	for i := range files {
		items = append(items, toFileResp(&files[i]))
	}
	c.JSON(http.StatusOK, items)
}

// Delete removes a file's binary and metadata.
func (h *DocumentHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("file_id"))
	if err != nil || id <= 0 {
		util.JSONError(c, http.StatusBadRequest, "Invalid file ID")
		return
	}

	if err := h.Svc.Delete(uint(id)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			util.JSONError(c, http.StatusNotFound, "File not found")
			return
		}
		h.Logger.WithError(err).Error("failed to delete file")
		util.ServerError(c, "Failed to delete file")
		return
	}

	util.JSONMessage(c, http.StatusOK, "File deleted successfully")
}

// Serve streams a stored binary by its on-disk name.
func (h *DocumentHandler) Serve(c *gin.Context) {
	name := storage.SanitizeFilename(c.Param("filename"))

	path := h.Svc.BinaryPath(name)
	if _, err := os.Stat(path); err != nil {
		util.JSONError(c, http.StatusNotFound, "File not found")
		return
	}
	c.File(path)
}
