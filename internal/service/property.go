package service

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/JDLowen/Ultimate-Financial-Tracker--v2/internal/models"
)

// PropertyService manages rental property records.
type PropertyService struct {
	db     *gorm.DB
	logger *logrus.Logger
}

func NewPropertyService(db *gorm.DB, logger *logrus.Logger) *PropertyService {
	return &PropertyService{db: db, logger: logger}
}

// List returns all properties ordered by the user-facing property id.
func (s *PropertyService) List() ([]models.RentalProperty, error) {
	var properties []models.RentalProperty
	if err := s.db.Order("property_id").Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	return properties, nil
}

// Get loads a property by its database id.
func (s *PropertyService) Get(id uint) (*models.RentalProperty, error) {
	var p models.RentalProperty
	if err := s.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load property %d: %w", id, err)
	}
	return &p, nil
}

// GetByPropertyID resolves the user-facing property id to a record.
func (s *PropertyService) GetByPropertyID(propertyID string) (*models.RentalProperty, error) {
	var p models.RentalProperty
	if err := s.db.Where("property_id = ?", propertyID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load property %q: %w", propertyID, err)
	}
	return &p, nil
}

// Add inserts a new property. The property id must not collide with an
// existing record.
func (s *PropertyService) Add(p *models.RentalProperty) error {
	if p.PropertyID == "" {
		return invalidf("property_id", "must not be empty")
	}

	var count int64
	if err := s.db.Model(&models.RentalProperty{}).
		Where("property_id = ?", p.PropertyID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("check property id %q: %w", p.PropertyID, err)
	}
	if count > 0 {
		return ErrDuplicateID
	}

	if err := s.db.Create(p).Error; err != nil {
		return fmt.Errorf("create property %q: %w", p.PropertyID, err)
	}

	s.logger.WithField("property_id", p.PropertyID).Info("rental property added")
	return nil
}

// Update replaces every mutable field of the property wholesale: fields the
// caller leaves blank come through as zero/nil and are stored that way. The
// external property id itself is not changed and its uniqueness is not
// re-checked here.
func (s *PropertyService) Update(id uint, fields *models.RentalProperty) error {
	existing, err := s.Get(id)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(existing).
			Select("property_name", "address", "city", "state", "county",
				"built_year", "purchase_date", "ownership_association",
				"purchase_price", "down_payment", "interest_rate",
				"mortgage_broker_name", "maturity_date", "loan_number").
			Updates(map[string]any{
				"property_name":         fields.PropertyName,
				"address":               fields.Address,
				"city":                  fields.City,
				"state":                 fields.State,
				"county":                fields.County,
				"built_year":            fields.BuiltYear,
				"purchase_date":         fields.PurchaseDate,
				"ownership_association": fields.OwnershipAssociation,
				"purchase_price":        fields.PurchasePrice,
				"down_payment":          fields.DownPayment,
				"interest_rate":         fields.InterestRate,
				"mortgage_broker_name":  fields.MortgageBrokerName,
				"maturity_date":         fields.MaturityDate,
				"loan_number":           fields.LoanNumber,
			}).Error
	})
	if err != nil {
		return fmt.Errorf("update property %d: %w", id, err)
	}

	s.logger.WithField("property_id", existing.PropertyID).Info("rental property updated")
	return nil
}

// Delete removes the property row. Uploaded files that reference it keep
// their related_id and become orphans; they are deleted separately if at
// all.
func (s *PropertyService) Delete(id uint) (*models.RentalProperty, error) {
	existing, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(existing).Error; err != nil {
		return nil, fmt.Errorf("delete property %d: %w", id, err)
	}

	s.logger.WithField("property_id", existing.PropertyID).Info("rental property deleted")
	return existing, nil
}
