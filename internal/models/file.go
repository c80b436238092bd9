package models

import "time"

// UploadedFile is the metadata row for one stored document (receipt,
// contract, ...). The binary lives on disk under StoredName; FileName keeps
// the sanitized client name for display only, so two uploads with the same
// name never overwrite each other. RelatedID optionally links the file to a
// rental property's database id.
type UploadedFile struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	FileName     string    `gorm:"size:255;not null" json:"filename"`
	StoredName   string    `gorm:"size:255;uniqueIndex;not null" json:"stored_name"`
	FileType     string    `gorm:"size:50" json:"filetype"`
	RelatedPage  string    `gorm:"size:100;index" json:"related_page"`
	RelatedID    *uint     `gorm:"index" json:"related_id"`
	Notes        string    `gorm:"type:text" json:"notes"`
	DateUploaded time.Time `gorm:"not null" json:"date_uploaded"`
}

func (UploadedFile) TableName() string {
	return "uploaded_files"
}
