package repository

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

type InventoryItem struct {
	ID          int64           `db:"id"`
	Name        string          `db:"name"`
	Barcode     *string         `db:"barcode"`
	Category    *string         `db:"category"`
	Quantity    int             `db:"quantity"`
	MinQuantity *int            `db:"min_quantity"`
	Price       decimal.Decimal `db:"price"`
	Description *string         `db:"description"`
	CreatedAt   time.Time       `db:"created_at"`
}

type Customer struct {
	ID                int64     `db:"id"`
	CompanyName       *string   `db:"company_name"`
	ContactName       string    `db:"contact_name"`
	Email             string    `db:"email"`
	Phone             *string   `db:"phone"`
	Address           *string   `db:"address"`
	City              *string   `db:"city"`
	Country           *string   `db:"country"`
	CurrencyCode      string    `db:"currency_code"`
	PaymentTerms      int       `db:"payment_terms"`
	PreferredLanguage string    `db:"preferred_language"`
	PortalAccess      bool      `db:"portal_access"`
	CreatedAt         time.Time `db:"created_at"`
}

type Supplier struct {
	ID            int64     `db:"id"`
	Name          string    `db:"name"`
	ContactPerson *string   `db:"contact_person"`
	Email         *string   `db:"email"`
	Phone         *string   `db:"phone"`
	Address       *string   `db:"address"`
	City          *string   `db:"city"`
	Country       *string   `db:"country"`
	Status        string    `db:"status"`
	Rating        *int      `db:"rating"`
	PaymentTerms  *string   `db:"payment_terms"`
	CreatedAt     time.Time `db:"created_at"`
}

type Invoice struct {
	ID                 int64           `db:"id"`
	InvoiceNumber      string          `db:"invoice_number"`
	CustomerID         int64           `db:"customer_id"`
	InvoiceType        string          `db:"invoice_type"`
	Status             string          `db:"status"`
	IssueDate          time.Time       `db:"issue_date"`
	DueDate            time.Time       `db:"due_date"`
	PaymentDate        *time.Time      `db:"payment_date"`
	CurrencyCode       string          `db:"currency_code"`
	ExchangeRate       decimal.Decimal `db:"exchange_rate"`
	Subtotal           decimal.Decimal `db:"subtotal"`
	TaxAmount          decimal.Decimal `db:"tax_amount"`
	DiscountAmount     decimal.Decimal `db:"discount_amount"`
	ShippingAmount     decimal.Decimal `db:"shipping_amount"`
	TotalAmount        decimal.Decimal `db:"total_amount"`
	PaidAmount         decimal.Decimal `db:"paid_amount"`
	BalanceDue         decimal.Decimal `db:"balance_due"`
	Notes              *string         `db:"notes"`
	TermsAndConditions *string         `db:"terms_and_conditions"`
	CreatedAt          time.Time       `db:"created_at"`
}

type CreditNote struct {
	ID               int64           `db:"id"`
	CreditNoteNumber string          `db:"credit_note_number"`
	CustomerID       int64           `db:"customer_id"`
	InvoiceID        *int64          `db:"invoice_id"`
	IssueDate        time.Time       `db:"issue_date"`
	Reason           string          `db:"reason"`
	CurrencyCode     string          `db:"currency_code"`
	Amount           decimal.Decimal `db:"amount"`
	AppliedAmount    decimal.Decimal `db:"applied_amount"`
	Balance          decimal.Decimal `db:"balance"`
	Status           string          `db:"status"`
	CreatedAt        time.Time       `db:"created_at"`
}

type Channel struct {
	ID            int64           `db:"id"`
	Name          string          `db:"name"`
	Type          string          `db:"type"`
	Status        string          `db:"status"`
	SyncEnabled   bool            `db:"sync_enabled"`
	LastSyncAt    *time.Time      `db:"last_sync_at"`
	SyncFrequency int             `db:"sync_frequency"`
	Credentials   json.RawMessage `db:"credentials"`
	CreatedAt     time.Time       `db:"created_at"`
}

var ChannelTypes = []string{"shopify", "amazon", "flipkart", "myntra", "meesho", "website", "pos"}

func ValidChannelType(t string) bool {
	for _, known := range ChannelTypes {
		if t == known {
			return true
		}
	}
	return false
}

type User struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
	Password string `db:"password"`
}
