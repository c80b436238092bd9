package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/JDLowen/Ultimate-Financial-Tracker--v2/internal/models"
)

// IncomeService is the ledger of monthly pay entries for one income kind.
// Two instances run side by side, one per backing table.
type IncomeService struct {
	db     *gorm.DB
	kind   models.IncomeKind
	logger *logrus.Logger
}

func NewIncomeService(db *gorm.DB, kind models.IncomeKind, logger *logrus.Logger) *IncomeService {
	return &IncomeService{db: db, kind: kind, logger: logger}
}

// Kind returns the income kind this ledger serves.
func (s *IncomeService) Kind() models.IncomeKind {
	return s.kind
}

func (s *IncomeService) table() *gorm.DB {
	return s.db.Table(s.kind.TableName())
}

// EnsureInitialized seeds the ledger with zero-valued entries for the
// three-year window [current year - 1, current year + 1] the first time it
// runs against an empty table. It is idempotent: a populated table is left
// untouched, and the unique index on (year, month_index) makes a racing
// double-initialization fail cleanly instead of duplicating months.
func (s *IncomeService) EnsureInitialized() error {
	var count int64
	if err := s.table().Count(&count).Error; err != nil {
		return fmt.Errorf("count %s: %w", s.kind, err)
	}
	if count > 0 {
		return nil
	}

	s.logger.WithField("kind", s.kind).Info("income table is empty, seeding default entries")

	currentYear := time.Now().Year()
	zero := decimal.Zero

	entries := make([]models.IncomeEntry, 0, 36)
	for year := currentYear - 1; year <= currentYear+1; year++ {
		for month := 1; month <= 12; month++ {
			entries = append(entries, models.IncomeEntry{
				Year:        year,
				MonthIndex:  month,
				MonthName:   models.MonthName(month),
				GrossPay:    zero,
				TaxedAmount: zero,
				NetPay:      zero,
			})
		}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Table(s.kind.TableName()).Create(&entries).Error
	})
	if err != nil {
		return fmt.Errorf("initialize %s: %w", s.kind, err)
	}
	return nil
}

// List returns every entry of the ledger, seeding it first when empty.
func (s *IncomeService) List() ([]models.IncomeEntry, error) {
	if err := s.EnsureInitialized(); err != nil {
		return nil, err
	}

	var entries []models.IncomeEntry
	if err := s.table().Order("id").Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", s.kind, err)
	}
	return entries, nil
}

// Update sets gross pay and taxed amount on one entry and recomputes net
// pay as gross - taxed. Net pay may go negative; gross and taxed may not.
func (s *IncomeService) Update(id int, grossPay, taxedAmount decimal.Decimal) error {
	if id <= 0 {
		return invalidf("id", "must be a positive integer")
	}
	if grossPay.IsNegative() {
		return invalidf("grossPay", "must be non-negative, got %s", grossPay)
	}
	if taxedAmount.IsNegative() {
		return invalidf("taxedAmount", "must be non-negative, got %s", taxedAmount)
	}

	var entry models.IncomeEntry
	if err := s.table().Where("id = ?", id).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("load %s entry %d: %w", s.kind, id, err)
	}

	netPay := grossPay.Sub(taxedAmount)
	err := s.table().Where("id = ?", id).Updates(map[string]any{
		"gross_pay":    grossPay,
		"taxed_amount": taxedAmount,
		"net_pay":      netPay,
	}).Error
	if err != nil {
		return fmt.Errorf("update %s entry %d: %w", s.kind, id, err)
	}

	s.logger.WithFields(logrus.Fields{
		"kind": s.kind,
		"id":   id,
		"net":  netPay,
	}).Info("income entry updated")
	return nil
}
