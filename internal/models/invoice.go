package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// InvoiceLineItem is one row of the uploaded GST invoice. Stored verbatim;
// totals are never recomputed here.
type InvoiceLineItem struct {
	Name      string `json:"name"`
	HSN       string `json:"hsn"`
	Quantity  int    `json:"quantity"`
	Unit      string `json:"unit"`
	UnitPrice Money  `json:"unit_price"`
	Discount  Money  `json:"discount"`
	Amount    Money  `json:"amount"`
}

// InvoiceLineItemList stores invoice rows as a JSON column.
type InvoiceLineItemList []InvoiceLineItem

// Value implements driver.Valuer.
func (l InvoiceLineItemList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *InvoiceLineItemList) Scan(value interface{}) error {
	if value == nil {
		*l = InvoiceLineItemList{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		if str, ok := value.(string); ok {
			bytes = []byte(str)
		} else {
			return nil
		}
	}
	return json.Unmarshal(bytes, l)
}

// TaxSlab is the per-rate entry of the invoice tax breakdown.
type TaxSlab struct {
	TaxableAmount Money `json:"taxable_amount"`
	TaxAmount     Money `json:"tax_amount"`
}

// TaxBreakdown maps a tax rate label (e.g. "18") to its slab totals.
type TaxBreakdown map[string]TaxSlab

// Value implements driver.Valuer.
func (t TaxBreakdown) Value() (driver.Value, error) {
	if t == nil {
		return nil, nil
	}
	return json.Marshal(t)
}

// Scan implements sql.Scanner.
func (t *TaxBreakdown) Scan(value interface{}) error {
	if value == nil {
		*t = TaxBreakdown{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		if str, ok := value.(string); ok {
			bytes = []byte(str)
		} else {
			return nil
		}
	}
	return json.Unmarshal(bytes, t)
}

// Invoice is the uploaded tax invoice attached to an order awaiting
// verification. Re-upload after rejection replaces the row in place.
type Invoice struct {
	ID                 uint                `gorm:"primarykey" json:"id"`
	OrderID            uint                `gorm:"uniqueIndex;not null" json:"order_id"`
	InvoiceNumber      string              `gorm:"index;not null" json:"invoice_number"`
	Date               time.Time           `json:"date"`
	PartyName          string              `gorm:"not null" json:"party_name"`
	PartyAddress       string              `gorm:"default:''" json:"party_address"`
	Transport          string              `gorm:"default:''" json:"transport"`
	GSTINBuyer         string              `gorm:"default:''" json:"gstin_buyer"`
	IRN                string              `gorm:"default:''" json:"irn"`
	AckNo              string              `gorm:"default:''" json:"ack_no"`
	AckDate            *time.Time          `json:"ack_date,omitempty"`
	Items              InvoiceLineItemList `gorm:"type:json" json:"items"`
	TotalAmount        Money               `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"`
	RoundOff           Money               `gorm:"type:decimal(20,2);not null;default:0" json:"round_off"`
	TotalQuantity      int                 `gorm:"not null;default:0" json:"total_quantity"`
	GrandTotal         Money               `gorm:"type:decimal(20,2);not null;default:0" json:"grand_total"`
	TaxBreakdown       TaxBreakdown        `gorm:"type:json" json:"tax_breakdown"`
	TotalTaxableAmount Money               `gorm:"type:decimal(20,2);not null;default:0" json:"total_taxable_amount"`
	TotalTax           Money               `gorm:"type:decimal(20,2);not null;default:0" json:"total_tax"`
	CreatedAt          time.Time           `gorm:"index" json:"created_at"`
	UpdatedAt          time.Time           `json:"updated_at"`
	DeletedAt          gorm.DeletedAt      `gorm:"index" json:"-"`
}

// TableName sets the table name.
func (Invoice) TableName() string {
	return "invoices"
}
