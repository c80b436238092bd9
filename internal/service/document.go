package service

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/JDLowen/Ultimate-Financial-Tracker--v2/internal/models"
	"github.com/JDLowen/Ultimate-Financial-Tracker--v2/internal/storage"
)

// DocumentService stores uploaded document binaries plus their metadata
// rows. Binaries are keyed on disk by a generated uuid name; the client's
// filename is kept only as metadata.
type DocumentService struct {
	db     *gorm.DB
	store  storage.Store
	logger *logrus.Logger
}

func NewDocumentService(db *gorm.DB, store storage.Store, logger *logrus.Logger) *DocumentService {
	return &DocumentService{db: db, store: store, logger: logger}
}

// Upload writes the binary first and the metadata row second. When the
// metadata write fails the binary stays behind unreferenced; metadata is
// the source of truth for visibility, so an orphaned binary is harmless.
func (s *DocumentService) Upload(src io.Reader, filename, mimeType, relatedPage string, relatedID *uint, notes string) (*models.UploadedFile, error) {
	if filename == "" {
		return nil, invalidf("file", "filename must not be empty")
	}

	safeName := storage.SanitizeFilename(filename)
	storedName := uuid.New().String() + filepath.Ext(safeName)

	size, err := s.store.Save(storedName, src)
	if err != nil {
		return nil, fmt.Errorf("store binary: %w", err)
	}

	file := models.UploadedFile{
		FileName:     safeName,
		StoredName:   storedName,
		FileType:     mimeType,
		RelatedPage:  relatedPage,
		RelatedID:    relatedID,
		Notes:        notes,
		DateUploaded: time.Now(),
	}
	if err := s.db.Create(&file).Error; err != nil {
		return nil, fmt.Errorf("create file record: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"file":         safeName,
		"stored_name":  storedName,
		"related_page": relatedPage,
		"size":         size,
	}).Info("file uploaded")
	return &file, nil
}

// Get loads one file's metadata by id.
func (s *DocumentService) Get(id uint) (*models.UploadedFile, error) {
	var file models.UploadedFile
	if err := s.db.First(&file, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load file %d: %w", id, err)
	}
	return &file, nil
}

// ListByPage returns files tagged with the given related page, newest
// first.
func (s *DocumentService) ListByPage(relatedPage string) ([]models.UploadedFile, error) {
	var files []models.UploadedFile
	if err := s.db.
		Where("related_page = ?", relatedPage).
		Order("date_uploaded DESC").
		Find(&files).Error; err != nil {
		return nil, fmt.Errorf("list files for page %q: %w", relatedPage, err)
	}
	return files, nil
}

// ListByProperty returns files linked to a property's database id, newest
// first.
func (s *DocumentService) ListByProperty(propertyID uint) ([]models.UploadedFile, error) {
	var files []models.UploadedFile
	if err := s.db.
		Where("related_id = ?", propertyID).
		Order("date_uploaded DESC").
		Find(&files).Error; err != nil {
		return nil, fmt.Errorf("list files for property %d: %w", propertyID, err)
	}
	return files, nil
}

// BinaryPath returns the on-disk location of a stored binary, for
// streaming it back to the client.
func (s *DocumentService) BinaryPath(storedName string) string {
	return s.store.Path(storedName)
}

// Delete removes the binary and then the metadata row. A binary that is
// already gone from disk does not block metadata removal; a metadata
// delete that fails after the binary was removed is reported, since it
// leaves a dangling reference.
func (s *DocumentService) Delete(id uint) error {
	file, err := s.Get(id)
	if err != nil {
		return err
	}

	if err := s.store.Remove(file.StoredName); err != nil {
		return fmt.Errorf("remove binary %q: %w", file.StoredName, err)
	}

	if err := s.db.Delete(file).Error; err != nil {
		return fmt.Errorf("delete file record %d (binary already removed): %w", id, err)
	}

	s.logger.WithField("file", file.FileName).Info("file deleted")
	return nil
}
