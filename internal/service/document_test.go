package service

import (
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/JDLowen/Ultimate-Financial-Tracker--v2/internal/models"
	"github.com/JDLowen/Ultimate-Financial-Tracker--v2/internal/storage"
)

func testDocuments(t *testing.T) *DocumentService {
	t.Helper()
	store, err := storage.NewLocalStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStore() error = %v", err)
	}
	return NewDocumentService(testDB(t), store, testLogger())
}

func TestUploadStoresBinaryAndMetadata(t *testing.T) {
	svc := testDocuments(t)

	file, err := svc.Upload(strings.NewReader("receipt body"),
		"receipt 2024.pdf", "application/pdf", "retirement", nil, "march receipt")
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	if file.FileName != "receipt_2024.pdf" {
		t.Errorf("file name = %q, want sanitized receipt_2024.pdf", file.FileName)
	}
	if file.StoredName == file.FileName {
		t.Error("stored name must not reuse the client filename")
	}
	if !strings.HasSuffix(file.StoredName, ".pdf") {
		t.Errorf("stored name %q lost the extension", file.StoredName)
	}

	body, err := os.ReadFile(svc.BinaryPath(file.StoredName))
	if err != nil {
		t.Fatalf("read stored binary: %v", err)
	}
	if string(body) != "receipt body" {
		t.Errorf("stored binary = %q, want original content", body)
	}

	loaded, err := svc.Get(file.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if loaded.Notes != "march receipt" || loaded.RelatedPage != "retirement" {
		t.Errorf("metadata mismatch: %+v", loaded)
	}
}

func TestUploadSameFilenameDoesNotOverwrite(t *testing.T) {
	svc := testDocuments(t)

	first, err := svc.Upload(strings.NewReader("one"), "contract.pdf", "application/pdf", "rental_properties", nil, "")
	if err != nil {
		t.Fatalf("first Upload() error = %v", err)
	}
	second, err := svc.Upload(strings.NewReader("two"), "contract.pdf", "application/pdf", "rental_properties", nil, "")
	if err != nil {
		t.Fatalf("second Upload() error = %v", err)
	}

	if first.StoredName == second.StoredName {
		t.Fatal("two uploads share a stored name")
	}

	one, _ := os.ReadFile(svc.BinaryPath(first.StoredName))
	two, _ := os.ReadFile(svc.BinaryPath(second.StoredName))
	if string(one) != "one" || string(two) != "two" {
		t.Errorf("binaries overwrote each other: %q / %q", one, two)
	}
}

func TestUploadRejectsEmptyFilename(t *testing.T) {
	svc := testDocuments(t)
	if _, err := svc.Upload(strings.NewReader("x"), "", "text/plain", "retirement", nil, ""); !IsValidation(err) {
		t.Errorf("Upload() error = %v, want validation error", err)
	}
}

func TestDeleteRemovesBinaryAndMetadata(t *testing.T) {
	svc := testDocuments(t)

	file, err := svc.Upload(strings.NewReader("x"), "note.txt", "text/plain", "retirement", nil, "")
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	if err := svc.Delete(file.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, err := os.Stat(svc.BinaryPath(file.StoredName)); !os.IsNotExist(err) {
		t.Error("binary still on disk after delete")
	}
	if _, err := svc.Get(file.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
}

func TestDeleteToleratesMissingBinary(t *testing.T) {
	svc := testDocuments(t)

	file, err := svc.Upload(strings.NewReader("x"), "note.txt", "text/plain", "retirement", nil, "")
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	// binary disappears out-of-band; metadata removal must still succeed
	if err := os.Remove(svc.BinaryPath(file.StoredName)); err != nil {
		t.Fatalf("remove binary: %v", err)
	}

	if err := svc.Delete(file.ID); err != nil {
		t.Fatalf("Delete() with missing binary error = %v", err)
	}
	if _, err := svc.Get(file.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
}

func TestDeleteMissingFile(t *testing.T) {
	svc := testDocuments(t)
	if err := svc.Delete(99); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete(99) error = %v, want ErrNotFound", err)
	}
}

func TestListFiltersAndOrders(t *testing.T) {
	svc := testDocuments(t)

	a, err := svc.Upload(strings.NewReader("a"), "a.txt", "text/plain", "retirement", nil, "")
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	b, err := svc.Upload(strings.NewReader("b"), "b.txt", "text/plain", "retirement", nil, "")
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}
	propertyID := uint(5)
	if _, err := svc.Upload(strings.NewReader("c"), "c.txt", "text/plain", "rental_properties", &propertyID, ""); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	// force distinct timestamps so the DESC ordering is deterministic
	now := time.Now()
	svc.db.Model(&models.UploadedFile{}).Where("id = ?", a.ID).
		Update("date_uploaded", now.Add(-time.Hour))
	svc.db.Model(&models.UploadedFile{}).Where("id = ?", b.ID).
		Update("date_uploaded", now)

	byPage, err := svc.ListByPage("retirement")
	if err != nil {
		t.Fatalf("ListByPage() error = %v", err)
	}
	if len(byPage) != 2 {
		t.Fatalf("ListByPage() returned %d files, want 2", len(byPage))
	}
	if byPage[0].ID != b.ID {
		t.Error("ListByPage() not ordered newest first")
	}

	byProperty, err := svc.ListByProperty(propertyID)
	if err != nil {
		t.Fatalf("ListByProperty() error = %v", err)
	}
	if len(byProperty) != 1 || byProperty[0].FileName != "c.txt" {
		t.Errorf("ListByProperty() = %+v, want the single linked file", byProperty)
	}
}
