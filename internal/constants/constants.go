package constants

// Order status constants. Values are the human-facing labels shown on the
// dashboard and stored verbatim in the orders table.
const (
	OrderStatusPlaced              = "Order Placed"
	OrderStatusInprocessing        = "Inprocessing"
	OrderStatusWarehouseProcessing = "Warehouse Processing"
	OrderStatusAdminStockReview    = "Admin Stock Review"
	OrderStatusApprovalPending     = "Approval Pending"
	OrderStatusAwaitingInvoice     = "Awaiting Invoice"
	OrderStatusInvoiceVerification = "Invoice Verification"
	OrderStatusInvoiceUploaded     = "Invoice Uploaded"
	OrderStatusConfirmed           = "Confirmed"
	OrderStatusPacking             = "Packing"
	OrderStatusDispatched          = "Dispatched"
	OrderStatusDelivered           = "Delivered"
	OrderStatusRework              = "Rework"
	OrderStatusCancelled           = "Cancelled"
)

// Staff role constants
const (
	RoleSales     = "sales"
	RoleWarehouse = "warehouse"
	RoleAdmin     = "admin"
	RoleManager   = "manager"
)

// Item action type constants
const (
	ItemActionAdd     = "add"
	ItemActionRemove  = "remove"
	ItemActionReplace = "replace"
)

// Stock decision constants
const (
	StockDecisionAccept  = "accept"
	StockDecisionRecheck = "recheck"
)

// Invoice review decision constants
const (
	InvoiceDecisionApprove = "approve"
	InvoiceDecisionReject  = "reject"
)

// Customer account status constants
const (
	CustomerStatusActive   = "active"
	CustomerStatusDisabled = "disabled"
)

// Notification kind constants
const (
	NotificationKindStatusChange     = "status_change"
	NotificationKindBackOrderCreated = "backorder_created"
)
