package repository

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusReceived  OrderStatus = "received"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPicked    OrderStatus = "picked"
	OrderStatusPacked    OrderStatus = "packed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"

	// Present in the vocabulary but no operation produces it; kept so stored
	// rows carrying it stay representable.
	OrderStatusCancelled OrderStatus = "cancelled"
)

type ReturnStatus string

const (
	ReturnStatusRequested ReturnStatus = "requested"
	ReturnStatusApproved  ReturnStatus = "approved"
	ReturnStatusPickedUp  ReturnStatus = "picked_up"
	ReturnStatusReceived  ReturnStatus = "received"
	ReturnStatusInspected ReturnStatus = "inspected"
	ReturnStatusRefunded  ReturnStatus = "refunded"
	ReturnStatusCompleted ReturnStatus = "completed"
	ReturnStatusRejected  ReturnStatus = "rejected"
)

type ReturnType string

const (
	ReturnTypeRefund      ReturnType = "refund"
	ReturnTypeExchange    ReturnType = "exchange"
	ReturnTypeStoreCredit ReturnType = "store_credit"
)

func ValidReturnType(t ReturnType) bool {
	switch t {
	case ReturnTypeRefund, ReturnTypeExchange, ReturnTypeStoreCredit:
		return true
	}
	return false
}

type Order struct {
	ID              int64           `db:"id"`
	OrderNumber     string          `db:"order_number"`
	CustomerName    string          `db:"customer_name"`
	CustomerEmail   string          `db:"customer_email"`
	CustomerPhone   string          `db:"customer_phone"`
	Status          OrderStatus     `db:"status"`
	PaymentStatus   string          `db:"payment_status"`
	TotalAmount     decimal.Decimal `db:"total_amount"`
	CurrencyCode    string          `db:"currency_code"`
	ShippingAddress string          `db:"shipping_address"`
	ShippingCity    string          `db:"shipping_city"`
	ShippingState   string          `db:"shipping_state"`
	TrackingNumber  *string         `db:"tracking_number"`
	Carrier         *string         `db:"carrier"`
	ChannelID       *int64          `db:"channel_id"`
	OrderDate       time.Time       `db:"order_date"`
	ConfirmedAt     *time.Time      `db:"confirmed_at"`
	PickedAt        *time.Time      `db:"picked_at"`
	PackedAt        *time.Time      `db:"packed_at"`
	ShippedAt       *time.Time      `db:"shipped_at"`
	DeliveredAt     *time.Time      `db:"delivered_at"`
	CreatedAt       time.Time       `db:"created_at"`
}

type Return struct {
	ID                int64           `db:"id"`
	ReturnNumber      string          `db:"return_number"`
	OrderID           int64           `db:"order_id"`
	CustomerID        int64           `db:"customer_id"`
	ReturnType        ReturnType      `db:"return_type"`
	Status            ReturnStatus    `db:"status"`
	Reason            string          `db:"reason"`
	RefundAmount      decimal.Decimal `db:"refund_amount"`
	PickupAddress     string          `db:"pickup_address"`
	TrackingNumber    *string         `db:"tracking_number"`
	Carrier           *string         `db:"carrier"`
	PickupScheduledAt *time.Time      `db:"pickup_scheduled_at"`
	PickedUpAt        *time.Time      `db:"picked_up_at"`
	ReceivedAt        *time.Time      `db:"received_at"`
	InspectedAt       *time.Time      `db:"inspected_at"`
	RefundedAt        *time.Time      `db:"refunded_at"`
	CompletedAt       *time.Time      `db:"completed_at"`
	CreatedAt         time.Time       `db:"created_at"`
}

// ReversePickup is written exactly once, when its Return leaves "approved".
type ReversePickup struct {
	ID             int64     `db:"id"`
	ReturnID       int64     `db:"return_id"`
	Carrier        string    `db:"carrier"`
	PickupDate     time.Time `db:"pickup_date"`
	PickupTimeSlot string    `db:"pickup_time_slot"`
	PickupAddress  string    `db:"pickup_address"`
	ContactName    string    `db:"contact_name"`
	ContactPhone   string    `db:"contact_phone"`
	Instructions   *string   `db:"instructions"`
	CreatedAt      time.Time `db:"created_at"`
}

var Carriers = []string{"fedex", "ups", "usps", "dhl", "bluedart", "delhivery"}

var PickupTimeSlots = []string{
	"9:00 AM - 12:00 PM",
	"12:00 PM - 3:00 PM",
	"3:00 PM - 6:00 PM",
	"6:00 PM - 9:00 PM",
}

func ValidCarrier(c string) bool {
	for _, known := range Carriers {
		if c == known {
			return true
		}
	}
	return false
}

func ValidPickupTimeSlot(slot string) bool {
	for _, known := range PickupTimeSlots {
		if slot == known {
			return true
		}
	}
	return false
}
