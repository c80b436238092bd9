package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RentalProperty is one rental property record. PropertyID is the
// user-chosen external identifier; ID is the database key that
// uploaded files reference.
type RentalProperty struct {
	ID                   uint            `gorm:"primaryKey" json:"id"`
	PropertyID           string          `gorm:"size:50;uniqueIndex;not null" json:"property_id"`
	PropertyName         string          `gorm:"size:100;not null" json:"property_name"`
	Address              string          `gorm:"size:255;not null" json:"address"`
	City                 string          `gorm:"size:100;not null" json:"city"`
	State                string          `gorm:"size:50;not null" json:"state"`
	County               *string         `gorm:"size:100" json:"county"`
	BuiltYear            int             `json:"built_year"`
	PurchaseDate         *time.Time      `gorm:"type:date" json:"-"`
	OwnershipAssociation string          `gorm:"size:100" json:"ownership_association"`
	PurchasePrice        decimal.Decimal `gorm:"type:decimal(12,2)" json:"purchase_price"`
	DownPayment          decimal.Decimal `gorm:"type:decimal(12,2)" json:"down_payment"`
	InterestRate         decimal.Decimal `gorm:"type:decimal(6,3)" json:"interest_rate"`
	MortgageBrokerName   *string         `gorm:"size:100" json:"mortgage_broker_name"`
	MaturityDate         *time.Time      `gorm:"type:date" json:"-"`
	LoanNumber           *string         `gorm:"size:100" json:"loan_number"`
}

func (RentalProperty) TableName() string {
	return "rental_properties"
}
