package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/muntadher/nizam-api/internal/models"
	"github.com/muntadher/nizam-api/internal/store"
	"github.com/muntadher/nizam-api/pkg/dto"
)

// Currency is the single display currency of all money amounts.
const Currency = "د.ع"

// FinanceService covers the per-workspace money records: transactions, the
// single budget figure, goals, debts and subscriptions. Goal completion and
// debt status are derived server-side, never taken from the request.
type FinanceService struct {
	transactions  store.Collection[models.Transaction]
	goals         store.Collection[models.Goal]
	debts         store.Collection[models.Debt]
	subscriptions store.Collection[models.Subscription]
	budgets       store.BudgetStore
}

func NewFinanceService(st *store.Store) *FinanceService {
	return &FinanceService{
		transactions:  st.Transactions,
		goals:         st.Goals,
		debts:         st.Debts,
		subscriptions: st.Subscriptions,
		budgets:       st.Budgets,
	}
}

// Bundle assembles the whole finance view of a workspace in one payload.
func (s *FinanceService) Bundle(ctx context.Context, workspaceID string) (*dto.FinanceBundle, error) {
	transactions, err := s.ListTransactions(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	budget, err := s.budgets.Get(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}
	goals, err := s.ListGoals(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	debts, err := s.ListDebts(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	subs, err := s.ListSubscriptions(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	subResponses := make([]dto.SubscriptionResponse, 0, len(subs))
	for _, sub := range subs {
		subResponses = append(subResponses, dto.NewSubscriptionResponse(sub, now))
	}
	return &dto.FinanceBundle{
		Transactions:  transactions,
		Budget:        budget,
		Goals:         goals,
		Debts:         debts,
		Subscriptions: subResponses,
		Currency:      Currency,
	}, nil
}

func (s *FinanceService) ListTransactions(ctx context.Context, workspaceID string) ([]models.Transaction, error) {
	list, err := s.transactions.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].TransDate.After(list[j].TransDate) })
	return list, nil
}

// AddTransaction derives month (1-12) and year from the transaction date
// at write time.
func (s *FinanceService) AddTransaction(ctx context.Context, workspaceID string, req dto.CreateTransactionRequest) (*models.Transaction, error) {
	now := time.Now()
	date := req.TransDate
	if date.IsZero() {
		date = now
	}
	t := models.Transaction{
		ID:          req.ID,
		WorkspaceID: workspaceID,
		Amount:      req.Amount,
		Type:        req.Type,
		Description: req.Description,
		Category:    req.Category,
		TransDate:   date,
		Month:       int(date.Month()),
		Year:        date.Year(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if t.ID == "" {
		t.ID = store.NewID()
	}
	if t.Type == "" {
		t.Type = models.TransactionExpense
	}
	if err := s.transactions.Insert(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}
	return &t, nil
}

func (s *FinanceService) DeleteTransaction(ctx context.Context, id string) (bool, error) {
	deleted, err := s.transactions.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete transaction: %w", err)
	}
	return deleted, nil
}

func (s *FinanceService) GetBudget(ctx context.Context, workspaceID string) (float64, error) {
	amount, err := s.budgets.Get(ctx, workspaceID)
	if err != nil {
		return 0, fmt.Errorf("failed to get budget: %w", err)
	}
	return amount, nil
}

func (s *FinanceService) SetBudget(ctx context.Context, workspaceID string, amount float64) (float64, error) {
	set, err := s.budgets.Set(ctx, workspaceID, amount)
	if err != nil {
		return 0, fmt.Errorf("failed to set budget: %w", err)
	}
	return set, nil
}

func (s *FinanceService) ListGoals(ctx context.Context, workspaceID string) ([]models.Goal, error) {
	list, err := s.goals.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return timePtrLess(list[i].TargetDate, list[j].TargetDate)
	})
	return list, nil
}

func (s *FinanceService) AddGoal(ctx context.Context, workspaceID string, req dto.CreateGoalRequest) (*models.Goal, error) {
	now := time.Now()
	g := models.Goal{
		ID:            req.ID,
		WorkspaceID:   workspaceID,
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		TargetDate:    req.TargetDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if g.ID == "" {
		g.ID = store.NewID()
	}
	if err := s.goals.Insert(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to insert goal: %w", err)
	}
	return &g, nil
}

// UpdateGoal refreshes a goal. Completion is recomputed only when the
// current amount is part of the update.
func (s *FinanceService) UpdateGoal(ctx context.Context, workspaceID, id string, req dto.UpdateGoalRequest) (*models.Goal, error) {
	g, found, err := s.goals.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	if !found || g.WorkspaceID != workspaceID {
		return nil, nil
	}

	if req.Name != nil {
		g.Name = *req.Name
	}
	if req.TargetAmount != nil {
		g.TargetAmount = *req.TargetAmount
	}
	if req.TargetDate != nil {
		g.TargetDate = req.TargetDate
	}
	if req.CurrentAmount != nil {
		g.CurrentAmount = *req.CurrentAmount
		g.Completed = g.CurrentAmount >= g.TargetAmount
	}

	g.UpdatedAt = time.Now()
	found, err = s.goals.Replace(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &g, nil
}

func (s *FinanceService) DeleteGoal(ctx context.Context, id string) (bool, error) {
	deleted, err := s.goals.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete goal: %w", err)
	}
	return deleted, nil
}

func (s *FinanceService) ListDebts(ctx context.Context, workspaceID string) ([]models.Debt, error) {
	list, err := s.debts.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debts: %w", err)
	}
	sort.SliceStable(list, func(i, j int) bool {
		return timePtrLess(list[i].DueDate, list[j].DueDate)
	})
	return list, nil
}

func (s *FinanceService) AddDebt(ctx context.Context, workspaceID string, req dto.CreateDebtRequest) (*models.Debt, error) {
	now := time.Now()
	d := models.Debt{
		ID:          req.ID,
		WorkspaceID: workspaceID,
		Type:        req.Type,
		PersonName:  req.PersonName,
		TotalAmount: req.TotalAmount,
		PaidAmount:  req.PaidAmount,
		DueDate:     req.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if d.ID == "" {
		d.ID = store.NewID()
	}
	if d.Type == "" {
		d.Type = models.DebtCreditor
	}
	d.Status = debtStatus(d)
	if err := s.debts.Insert(ctx, d); err != nil {
		return nil, fmt.Errorf("failed to insert debt: %w", err)
	}
	return &d, nil
}

// UpdateDebt applies field changes and payments. A payment adds to the
// paid amount; settle clamps it to the total. Status is re-derived from
// the resulting amounts on every update.
func (s *FinanceService) UpdateDebt(ctx context.Context, workspaceID, id string, req dto.UpdateDebtRequest) (*models.Debt, error) {
	d, found, err := s.debts.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get debt: %w", err)
	}
	if !found || d.WorkspaceID != workspaceID {
		return nil, nil
	}

	if req.Type != nil {
		d.Type = *req.Type
	}
	if req.PersonName != nil {
		d.PersonName = *req.PersonName
	}
	if req.TotalAmount != nil {
		d.TotalAmount = *req.TotalAmount
	}
	if req.DueDate != nil {
		d.DueDate = req.DueDate
	}
	if req.Payment != nil {
		d.PaidAmount += *req.Payment
	}
	if req.Settle {
		d.PaidAmount = d.TotalAmount
	}
	d.Status = debtStatus(d)

	d.UpdatedAt = time.Now()
	found, err = s.debts.Replace(ctx, d)
	if err != nil {
		return nil, fmt.Errorf("failed to update debt: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &d, nil
}

func (s *FinanceService) DeleteDebt(ctx context.Context, id string) (bool, error) {
	deleted, err := s.debts.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete debt: %w", err)
	}
	return deleted, nil
}

func (s *FinanceService) ListSubscriptions(ctx context.Context, workspaceID string) ([]models.Subscription, error) {
	list, err := s.subscriptions.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].NextPayment.Before(list[j].NextPayment) })
	return list, nil
}

func (s *FinanceService) AddSubscription(ctx context.Context, workspaceID string, req dto.CreateSubscriptionRequest) (*models.Subscription, error) {
	now := time.Now()
	sub := models.Subscription{
		ID:          req.ID,
		WorkspaceID: workspaceID,
		Name:        req.Name,
		Amount:      req.Amount,
		Frequency:   req.Frequency,
		NextPayment: req.NextPayment,
		Status:      models.SubscriptionActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if sub.ID == "" {
		sub.ID = store.NewID()
	}
	if sub.Frequency == "" {
		sub.Frequency = models.FrequencyMonthly
	}
	if err := s.subscriptions.Insert(ctx, sub); err != nil {
		return nil, fmt.Errorf("failed to insert subscription: %w", err)
	}
	return &sub, nil
}

func (s *FinanceService) UpdateSubscription(ctx context.Context, workspaceID, id string, req dto.UpdateSubscriptionRequest) (*models.Subscription, error) {
	sub, found, err := s.subscriptions.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if !found || sub.WorkspaceID != workspaceID {
		return nil, nil
	}

	if req.Name != nil {
		sub.Name = *req.Name
	}
	if req.Amount != nil {
		sub.Amount = *req.Amount
	}
	if req.Frequency != nil {
		sub.Frequency = *req.Frequency
	}
	if req.NextPayment != nil {
		sub.NextPayment = *req.NextPayment
	}
	if req.Status != nil {
		sub.Status = *req.Status
	}

	sub.UpdatedAt = time.Now()
	found, err = s.subscriptions.Replace(ctx, sub)
	if err != nil {
		return nil, fmt.Errorf("failed to update subscription: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &sub, nil
}

func (s *FinanceService) DeleteSubscription(ctx context.Context, id string) (bool, error) {
	deleted, err := s.subscriptions.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete subscription: %w", err)
	}
	return deleted, nil
}

func debtStatus(d models.Debt) string {
	if d.TotalAmount > 0 && d.PaidAmount >= d.TotalAmount {
		return models.DebtStatusCompleted
	}
	return models.DebtStatusActive
}

// timePtrLess orders nil timestamps first, matching SQL NULLS FIRST on an
// ascending sort.
func timePtrLess(a, b *time.Time) bool {
	if a == nil {
		return b != nil
	}
	if b == nil {
		return false
	}
	return a.Before(*b)
}
