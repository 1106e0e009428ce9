package models

import "time"

// Transaction types.
const (
	TransactionIncome  = "income"
	TransactionExpense = "expense"
)

// Debt types and statuses.
const (
	DebtCreditor = "creditor"
	DebtDebtor   = "debtor"

	DebtStatusActive    = "active"
	DebtStatusCompleted = "completed"
)

// Subscription frequencies and effective statuses.
const (
	FrequencyMonthly = "monthly"
	FrequencyYearly  = "yearly"
	FrequencyWeekly  = "weekly"

	SubscriptionActive  = "active"
	SubscriptionDueSoon = "due-soon"
	SubscriptionExpired = "expired"
)

type Transaction struct {
	ID          string    `json:"id" db:"id"`
	WorkspaceID string    `json:"workspaceId" db:"workspace_id"`
	Amount      float64   `json:"amount" db:"amount"`
	Type        string    `json:"type" db:"type"`
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"`
	TransDate   time.Time `json:"transDate" db:"trans_date"`
	Month       int       `json:"month" db:"month"`
	Year        int       `json:"year" db:"year"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

func (t Transaction) GetID() string          { return t.ID }
func (t Transaction) GetWorkspaceID() string { return t.WorkspaceID }

type Goal struct {
	ID            string     `json:"id" db:"id"`
	WorkspaceID   string     `json:"workspaceId" db:"workspace_id"`
	Name          string     `json:"name" db:"name"`
	TargetAmount  float64    `json:"targetAmount" db:"target_amount"`
	CurrentAmount float64    `json:"currentAmount" db:"current_amount"`
	TargetDate    *time.Time `json:"targetDate,omitempty" db:"target_date"`
	Completed     bool       `json:"completed" db:"completed"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`
}

func (g Goal) GetID() string          { return g.ID }
func (g Goal) GetWorkspaceID() string { return g.WorkspaceID }

type Debt struct {
	ID          string     `json:"id" db:"id"`
	WorkspaceID string     `json:"workspaceId" db:"workspace_id"`
	Type        string     `json:"type" db:"type"`
	PersonName  string     `json:"personName" db:"person_name"`
	TotalAmount float64    `json:"totalAmount" db:"total_amount"`
	PaidAmount  float64    `json:"paidAmount" db:"paid_amount"`
	DueDate     *time.Time `json:"dueDate,omitempty" db:"due_date"`
	Status      string     `json:"status" db:"status"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

func (d Debt) GetID() string          { return d.ID }
func (d Debt) GetWorkspaceID() string { return d.WorkspaceID }

type Subscription struct {
	ID          string    `json:"id" db:"id"`
	WorkspaceID string    `json:"workspaceId" db:"workspace_id"`
	Name        string    `json:"name" db:"name"`
	Amount      float64   `json:"amount" db:"amount"`
	Frequency   string    `json:"frequency" db:"frequency"`
	NextPayment time.Time `json:"nextPayment" db:"next_payment"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

func (s Subscription) GetID() string          { return s.ID }
func (s Subscription) GetWorkspaceID() string { return s.WorkspaceID }

// EffectiveStatus is computed at read time, never persisted: expired when
// the next payment date has passed, due-soon when it is within 7 days.
func (s Subscription) EffectiveStatus(now time.Time) string {
	if s.NextPayment.Before(now) {
		return SubscriptionExpired
	}
	if !s.NextPayment.After(now.Add(7 * 24 * time.Hour)) {
		return SubscriptionDueSoon
	}
	return SubscriptionActive
}
