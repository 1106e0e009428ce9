package store

import (
	"context"
	"sync"

	"github.com/muntadher/nizam-api/internal/models"
)

// memCollection is the ephemeral backend for one entity collection:
// process-lifetime, mutex-guarded, insertion order retained. Each NewMemory
// call builds isolated collections, so tests never share state.
type memCollection[T Entity] struct {
	mu    sync.RWMutex
	rows  map[string]T
	order []string
}

func newMemCollection[T Entity]() *memCollection[T] {
	return &memCollection[T]{rows: make(map[string]T)}
}

func (c *memCollection[T]) Insert(_ context.Context, row T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := row.GetID()
	if _, ok := c.rows[id]; !ok {
		c.order = append(c.order, id)
	}
	c.rows[id] = row
	return nil
}

func (c *memCollection[T]) Get(_ context.Context, id string) (T, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	row, ok := c.rows[id]
	return row, ok, nil
}

func (c *memCollection[T]) ListAll(_ context.Context) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.rows[id])
	}
	return out, nil
}

func (c *memCollection[T]) ListByWorkspace(_ context.Context, workspaceID string) ([]T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []T
	for _, id := range c.order {
		if row := c.rows[id]; row.GetWorkspaceID() == workspaceID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (c *memCollection[T]) Replace(_ context.Context, row T) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := row.GetID()
	if _, ok := c.rows[id]; !ok {
		return false, nil
	}
	c.rows[id] = row
	return true, nil
}

func (c *memCollection[T]) Delete(_ context.Context, id string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.rows[id]; !ok {
		return false, nil
	}
	delete(c.rows, id)
	for i, other := range c.order {
		if other == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true, nil
}

type memWorkspaces struct {
	workspaces []models.Workspace
}

func (w *memWorkspaces) List(_ context.Context) ([]models.Workspace, error) {
	out := make([]models.Workspace, len(w.workspaces))
	copy(out, w.workspaces)
	return out, nil
}

func (w *memWorkspaces) Get(_ context.Context, id string) (models.Workspace, bool, error) {
	for _, ws := range w.workspaces {
		if ws.ID == id {
			return ws, true, nil
		}
	}
	return models.Workspace{}, false, nil
}

type memBudgets struct {
	mu      sync.RWMutex
	amounts map[string]float64
}

func (b *memBudgets) Get(_ context.Context, workspaceID string) (float64, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.amounts[workspaceID], nil
}

func (b *memBudgets) Set(_ context.Context, workspaceID string, amount float64) (float64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.amounts[workspaceID] = amount
	return amount, nil
}

// NewMemory builds a fresh in-process store seeded with the fixed workspace
// set. Data lives for the process lifetime only.
func NewMemory() *Store {
	return &Store{
		Workspaces: &memWorkspaces{workspaces: models.SeedWorkspaces()},
		Budgets:    &memBudgets{amounts: make(map[string]float64)},

		Tasks:         newMemCollection[models.Task](),
		Events:        newMemCollection[models.CalendarEvent](),
		Notifications: newMemCollection[models.Notification](),

		Transactions:  newMemCollection[models.Transaction](),
		Goals:         newMemCollection[models.Goal](),
		Debts:         newMemCollection[models.Debt](),
		Subscriptions: newMemCollection[models.Subscription](),

		Expenses:          newMemCollection[models.Expense](),
		Roadmap:           newMemCollection[models.RoadmapItem](),
		Backlog:           newMemCollection[models.BacklogItem](),
		TechDocs:          newMemCollection[models.TechDoc](),
		OrgRoles:          newMemCollection[models.OrgRole](),
		TeamMembers:       newMemCollection[models.TeamMember](),
		DepartmentBudgets: newMemCollection[models.DepartmentBudget](),
		Suppliers:         newMemCollection[models.Supplier](),
		Inventory:         newMemCollection[models.InventoryItem](),
		Campaigns:         newMemCollection[models.Campaign](),
		ContentPlan:       newMemCollection[models.ContentPlanItem](),
		StudyTerms:        newMemCollection[models.StudyTerm](),
		StudyItems:        newMemCollection[models.StudyItem](),
		Courses:           newMemCollection[models.Course](),
		Fitness:           newMemCollection[models.FitnessEntry](),
	}
}
