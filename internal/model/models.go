package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lana-app/backend/pkg/datetime"
)

type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	FullName     string    `db:"full_name" json:"fullName"`
	Email        string    `db:"email" json:"email"`
	Phone        *string   `db:"phone" json:"phone,omitempty"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Verified     bool      `db:"verified" json:"verified"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// PublicProfile is the projection returned by login. It never carries the
// password hash.
type PublicProfile struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
	Email    string    `json:"email"`
	Phone    *string   `json:"phone,omitempty"`
	Verified bool      `json:"verified"`
}

// PublicProfile returns the login projection for the user.
func (u *User) PublicProfile() PublicProfile {
	return PublicProfile{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
		Phone:    u.Phone,
		Verified: u.Verified,
	}
}

// CategoryKind is fixed at creation and drives all aggregation bucketing.
type CategoryKind string

const (
	CategoryKindIncome  CategoryKind = "income"
	CategoryKindExpense CategoryKind = "expense"
)

type Category struct {
	ID        uuid.UUID    `db:"id" json:"id"`
	Name      string       `db:"name" json:"name"`
	Kind      CategoryKind `db:"kind" json:"kind"`
	UserID    *uuid.UUID   `db:"user_id" json:"userId,omitempty"` // nil = system-wide category
	ParentID  *uuid.UUID   `db:"parent_id" json:"parentId,omitempty"`
	IsSystem  bool         `db:"is_system" json:"isSystem"`
	CreatedAt time.Time    `db:"created_at" json:"createdAt"`
}

type AccountKind string

const (
	AccountKindCash       AccountKind = "cash"
	AccountKindBank       AccountKind = "bank_account"
	AccountKindCreditCard AccountKind = "credit_card"
	AccountKindDebitCard  AccountKind = "debit_card"
	AccountKindInvestment AccountKind = "investment"
	AccountKindSavings    AccountKind = "savings"
	AccountKindOther      AccountKind = "other"
)

// Account balance is stored, not derived from transactions.
type Account struct {
	ID        uuid.UUID       `db:"id" json:"id"`
	UserID    uuid.UUID       `db:"user_id" json:"userId"`
	Name      string          `db:"name" json:"name"`
	Kind      AccountKind     `db:"kind" json:"kind"`
	Balance   decimal.Decimal `db:"balance" json:"balance"`
	Currency  string          `db:"currency" json:"currency"`
	CreatedAt time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time       `db:"updated_at" json:"updatedAt"`
}

type TransactionKind string

const (
	TransactionKindIncome   TransactionKind = "income"
	TransactionKindExpense  TransactionKind = "expense"
	TransactionKindTransfer TransactionKind = "transfer"
)

type Transaction struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	UserID      uuid.UUID       `db:"user_id" json:"userId"`
	AccountID   uuid.UUID       `db:"account_id" json:"accountId"`
	CategoryID  *uuid.UUID      `db:"category_id" json:"categoryId,omitempty"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	Kind        TransactionKind `db:"kind" json:"kind"`
	Description *string         `db:"description" json:"description,omitempty"`
	Date        datetime.Date   `db:"date" json:"date"`
	CreatedAt   time.Time       `db:"created_at" json:"createdAt"`
}

// Transfer links the two transaction legs of one movement. The linkage is
// descriptive only; nothing enforces that the legs share an amount.
type Transfer struct {
	ID                       uuid.UUID       `db:"id" json:"id"`
	UserID                   uuid.UUID       `db:"user_id" json:"userId"`
	SourceTransactionID      uuid.UUID       `db:"source_transaction_id" json:"sourceTransactionId"`
	DestinationTransactionID uuid.UUID       `db:"destination_transaction_id" json:"destinationTransactionId"`
	Amount                   decimal.Decimal `db:"amount" json:"amount"`
	Date                     datetime.Date   `db:"date" json:"date"`
}

// Budget scopes a spending ceiling to (user, category, month, year).
// Spent is a running total maintained by the caller, not derived from the
// transaction table.
type Budget struct {
	ID         uuid.UUID       `db:"id" json:"id"`
	UserID     uuid.UUID       `db:"user_id" json:"userId"`
	CategoryID uuid.UUID       `db:"category_id" json:"categoryId"`
	Month      int             `db:"month" json:"month"`
	Year       int             `db:"year" json:"year"`
	Ceiling    decimal.Decimal `db:"ceiling" json:"ceiling"`
	Spent      decimal.Decimal `db:"spent" json:"spent"`
	CreatedAt  time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt  time.Time       `db:"updated_at" json:"updatedAt"`
}

// BudgetAlert reports a budget whose accumulated spend exceeds its ceiling.
type BudgetAlert struct {
	Category string          `db:"category" json:"category"`
	Ceiling  decimal.Decimal `db:"ceiling" json:"ceiling"`
	Spent    decimal.Decimal `db:"spent" json:"spent"`
	Excess   decimal.Decimal `json:"excess"`
}

type PaymentFrequency string

const (
	FrequencyDaily      PaymentFrequency = "daily"
	FrequencyWeekly     PaymentFrequency = "weekly"
	FrequencyBiweekly   PaymentFrequency = "biweekly"
	FrequencyMonthly    PaymentFrequency = "monthly"
	FrequencyBimonthly  PaymentFrequency = "bimonthly"
	FrequencyQuarterly  PaymentFrequency = "quarterly"
	FrequencySemiannual PaymentFrequency = "semiannual"
	FrequencyAnnual     PaymentFrequency = "annual"
)

// FixedPayment is a recurring obligation checked against budget headroom.
// It is never posted into the transaction ledger automatically.
type FixedPayment struct {
	ID          uuid.UUID        `db:"id" json:"id"`
	UserID      uuid.UUID        `db:"user_id" json:"userId"`
	AccountID   uuid.UUID        `db:"account_id" json:"accountId"`
	CategoryID  uuid.UUID        `db:"category_id" json:"categoryId"`
	Description string           `db:"description" json:"description"`
	Amount      decimal.Decimal  `db:"amount" json:"amount"`
	Frequency   PaymentFrequency `db:"frequency" json:"frequency"`
	StartDate   datetime.Date    `db:"start_date" json:"startDate"`
	NextDueDate datetime.Date    `db:"next_due_date" json:"nextDueDate"`
	IsActive    bool             `db:"is_active" json:"isActive"`
	CreatedAt   time.Time        `db:"created_at" json:"createdAt"`
}

// FixedPaymentCheck classifies one active fixed payment against the budget of
// its category for a given period.
type FixedPaymentCheck struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Status   string          `json:"status"`
}

// Fixed payment coverage statuses. The wire strings predate this service and
// are kept verbatim.
const (
	FixedPaymentCovered  = "cubierto"
	FixedPaymentExceeds  = "excede presupuesto"
	FixedPaymentNoBudget = "sin presupuesto definido"
)

type Goal struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	UserID        uuid.UUID       `db:"user_id" json:"userId"`
	Name          string          `db:"name" json:"name"`
	TargetAmount  decimal.Decimal `db:"target_amount" json:"targetAmount"`
	CurrentAmount decimal.Decimal `db:"current_amount" json:"currentAmount"`
	StartDate     *datetime.Date  `db:"start_date" json:"startDate,omitempty"`
	TargetDate    *datetime.Date  `db:"target_date" json:"targetDate,omitempty"`
	Completed     bool            `db:"completed" json:"completed"`
	CreatedAt     time.Time       `db:"created_at" json:"createdAt"`
}

type RecurringFrequency string

const (
	RecurringDaily   RecurringFrequency = "daily"
	RecurringWeekly  RecurringFrequency = "weekly"
	RecurringMonthly RecurringFrequency = "monthly"
	RecurringAnnual  RecurringFrequency = "annual"
)

// RecurringTransaction is kept as a distinct entity from FixedPayment; the
// stored data never indicated one superseding the other.
type RecurringTransaction struct {
	ID          uuid.UUID           `db:"id" json:"id"`
	UserID      uuid.UUID           `db:"user_id" json:"userId"`
	Description *string             `db:"description" json:"description,omitempty"`
	Amount      decimal.Decimal     `db:"amount" json:"amount"`
	CategoryID  *uuid.UUID          `db:"category_id" json:"categoryId,omitempty"`
	AccountID   *uuid.UUID          `db:"account_id" json:"accountId,omitempty"`
	Kind        TransactionKind     `db:"kind" json:"kind"`
	Frequency   *RecurringFrequency `db:"frequency" json:"frequency,omitempty"`
	StartDate   datetime.Date       `db:"start_date" json:"startDate"`
	EndDate     *datetime.Date      `db:"end_date" json:"endDate,omitempty"`
	IsActive    bool                `db:"is_active" json:"isActive"`
}

type AlertKind string

const (
	AlertKindBudgetExceeded AlertKind = "budget_exceeded"
	AlertKindPaymentDueSoon AlertKind = "payment_due_soon"
	AlertKindLowBalance     AlertKind = "low_balance"
)

type AlertHistory struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"userId"`
	Kind      AlertKind `db:"kind" json:"kind"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	Read      bool      `db:"read" json:"read"`
}

// ChartItem is one category total for the chart endpoint. The total is
// accumulated as DECIMAL in the store and converted to float only here, at
// the output boundary.
type ChartItem struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// ChartData buckets category totals by the owning category's kind.
type ChartData struct {
	Incomes  []ChartItem `json:"incomes"`
	Expenses []ChartItem `json:"expenses"`
}
