package repository

import "time"

// OrderListFilter filters the admin order listing.
type OrderListFilter struct {
	Page        int
	PageSize    int
	CustomerID  uint
	Status      string
	OrderNo     string
	PartialOnly bool
	CreatedFrom *time.Time
	CreatedTo   *time.Time
}

// ProductListFilter filters the product listing.
type ProductListFilter struct {
	Page         int
	PageSize     int
	CategoryID   uint
	Search       string
	OnlyActive   bool
	WithCategory bool
}

// CustomerListFilter filters the customer listing.
type CustomerListFilter struct {
	Page     int
	PageSize int
	Keyword  string
	Status   string
}

// NotificationListFilter filters the notification feed.
type NotificationListFilter struct {
	Page       int
	PageSize   int
	Kind       string
	OrderID    uint
	UnreadOnly bool
}
