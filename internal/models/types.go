package models

import (
	"database/sql/driver"
	"encoding/json"
)

// StringArray stores a string list as a JSON column (variants, images).
type StringArray []string

// Value implements driver.Valuer.
func (s StringArray) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner.
func (s *StringArray) Scan(value interface{}) error {
	if value == nil {
		*s = StringArray{}
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
	return json.Unmarshal(bytes, s)
}

// ReviewItem is one row of the working set kept while an order sits in the
// warehouse/admin review loop: requested vs. reported quantities keyed by
// the (product_id, variant) identity pair.
type ReviewItem struct {
	ProductID         uint   `json:"product_id"`
	Variant           string `json:"variant"`
	Name              string `json:"name"`
	Quantity          int    `json:"quantity"`
	AvailableQuantity int    `json:"available_quantity"`
}

// ReviewItemList stores the working set as a JSON column.
type ReviewItemList []ReviewItem

// Value implements driver.Valuer.
func (l ReviewItemList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *ReviewItemList) Scan(value interface{}) error {
	if value == nil {
		*l = ReviewItemList{}
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
