package dto

import (
	"time"

	"github.com/muntadher/nizam-api/internal/models"
)

type CreateTransactionRequest struct {
	ID          string    `json:"id,omitempty"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type,omitempty"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	TransDate   time.Time `json:"transDate,omitempty"`
}

type SetBudgetRequest struct {
	Amount float64 `json:"amount"`
}

type BudgetResponse struct {
	WorkspaceID string  `json:"workspaceId"`
	Amount      float64 `json:"amount"`
}

type CreateGoalRequest struct {
	ID            string     `json:"id,omitempty"`
	Name          string     `json:"name"`
	TargetAmount  float64    `json:"targetAmount"`
	CurrentAmount float64    `json:"currentAmount,omitempty"`
	TargetDate    *time.Time `json:"targetDate,omitempty"`
}

// UpdateGoalRequest refreshes a goal. CurrentAmount presence marks a
// progress update, the only path that recomputes completion.
type UpdateGoalRequest struct {
	Name          *string    `json:"name,omitempty"`
	TargetAmount  *float64   `json:"targetAmount,omitempty"`
	CurrentAmount *float64   `json:"currentAmount,omitempty"`
	TargetDate    *time.Time `json:"targetDate,omitempty"`
}

type CreateDebtRequest struct {
	ID          string     `json:"id,omitempty"`
	Type        string     `json:"type,omitempty"`
	PersonName  string     `json:"personName"`
	TotalAmount float64    `json:"totalAmount"`
	PaidAmount  float64    `json:"paidAmount,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

// UpdateDebtRequest mutates a debt. Payment adds to the paid amount;
// Settle clamps it to the total. Status is always re-derived.
type UpdateDebtRequest struct {
	Type        *string    `json:"type,omitempty"`
	PersonName  *string    `json:"personName,omitempty"`
	TotalAmount *float64   `json:"totalAmount,omitempty"`
	Payment     *float64   `json:"payment,omitempty"`
	Settle      bool       `json:"settle,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
}

type CreateSubscriptionRequest struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Amount      float64   `json:"amount"`
	Frequency   string    `json:"frequency,omitempty"`
	NextPayment time.Time `json:"nextPayment"`
}

type UpdateSubscriptionRequest struct {
	Name        *string    `json:"name,omitempty"`
	Amount      *float64   `json:"amount,omitempty"`
	Frequency   *string    `json:"frequency,omitempty"`
	NextPayment *time.Time `json:"nextPayment,omitempty"`
	Status      *string    `json:"status,omitempty"`
}

// SubscriptionResponse adds the read-only effective status on top of the
// stored row.
type SubscriptionResponse struct {
	models.Subscription
	EffectiveStatus string `json:"effectiveStatus"`
}

func NewSubscriptionResponse(s models.Subscription, now time.Time) SubscriptionResponse {
	return SubscriptionResponse{Subscription: s, EffectiveStatus: s.EffectiveStatus(now)}
}

// FinanceBundle is the one-shot finance payload for a workspace.
type FinanceBundle struct {
	Transactions  []models.Transaction   `json:"transactions"`
	Budget        float64                `json:"budget"`
	Goals         []models.Goal          `json:"goals"`
	Debts         []models.Debt          `json:"debts"`
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
	Currency      string                 `json:"currency"`
}
