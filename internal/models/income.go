package models

import "github.com/shopspring/decimal"

// IncomeKind selects which monthly pay table an operation works against.
// The two ledgers share one row shape but live in separate tables.
type IncomeKind string

const (
	KindUSAFRetirement IncomeKind = "usaf_retirement"
	KindVADisability   IncomeKind = "va_disability"
)

// TableName returns the backing table for the kind.
func (k IncomeKind) TableName() string {
	switch k {
	case KindUSAFRetirement:
		return "usaf_retirement_pay"
	case KindVADisability:
		return "va_disability_pay"
	}
	return string(k)
}

// IncomeEntry is one month of pay in an income ledger. NetPay is always
// GrossPay - TaxedAmount; it is recomputed on update and never taken from
// the caller.
type IncomeEntry struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Year        int             `gorm:"not null" json:"year"`
	MonthName   string          `gorm:"size:20;not null" json:"month_name"`
	MonthIndex  int             `gorm:"not null" json:"month_index"`
	GrossPay    decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"gross_pay"`
	TaxedAmount decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"taxed_amount"`
	NetPay      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"net_pay"`
}

// monthNames is indexed by month index 1..12.
var monthNames = [...]string{
	"",
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// MonthName converts a 1-based month index to its English calendar name.
// Out-of-range indexes return an empty string.
func MonthName(index int) string {
	if index < 1 || index > 12 {
		return ""
	}
	return monthNames[index]
}
