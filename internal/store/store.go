// Package store is the record store behind the entity services: one CRUD
// contract per entity collection with two interchangeable backends, an
// ephemeral in-process one and a durable postgres one. Swapping backends
// must not change any service behavior; ordering and secondary filtering
// therefore live in the services, not here.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/muntadher/nizam-api/internal/models"
)

// Entity is the minimal surface a stored row exposes to the backends.
type Entity interface {
	GetID() string
	GetWorkspaceID() string
}

// Collection is the per-entity record store contract. Replace and Delete
// signal a missing id through their bool, never through an error.
type Collection[T Entity] interface {
	Insert(ctx context.Context, row T) error
	Get(ctx context.Context, id string) (T, bool, error)
	ListAll(ctx context.Context) ([]T, error)
	ListByWorkspace(ctx context.Context, workspaceID string) ([]T, error)
	Replace(ctx context.Context, row T) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// WorkspaceStore reads the seeded workspace set. Workspaces are immutable
// at runtime, so there is no write side.
type WorkspaceStore interface {
	List(ctx context.Context) ([]models.Workspace, error)
	Get(ctx context.Context, id string) (models.Workspace, bool, error)
}

// BudgetStore holds the single budget amount per workspace with upsert
// semantics. Get returns 0 for a workspace with no budget set.
type BudgetStore interface {
	Get(ctx context.Context, workspaceID string) (float64, error)
	Set(ctx context.Context, workspaceID string, amount float64) (float64, error)
}

// Store bundles every collection behind one value so services and tests can
// swap whole backends at once.
type Store struct {
	Workspaces WorkspaceStore
	Budgets    BudgetStore

	Tasks         Collection[models.Task]
	Events        Collection[models.CalendarEvent]
	Notifications Collection[models.Notification]

	Transactions  Collection[models.Transaction]
	Goals         Collection[models.Goal]
	Debts         Collection[models.Debt]
	Subscriptions Collection[models.Subscription]

	Expenses          Collection[models.Expense]
	Roadmap           Collection[models.RoadmapItem]
	Backlog           Collection[models.BacklogItem]
	TechDocs          Collection[models.TechDoc]
	OrgRoles          Collection[models.OrgRole]
	TeamMembers       Collection[models.TeamMember]
	DepartmentBudgets Collection[models.DepartmentBudget]
	Suppliers         Collection[models.Supplier]
	Inventory         Collection[models.InventoryItem]
	Campaigns         Collection[models.Campaign]
	ContentPlan       Collection[models.ContentPlanItem]
	StudyTerms        Collection[models.StudyTerm]
	StudyItems        Collection[models.StudyItem]
	Courses           Collection[models.Course]
	Fitness           Collection[models.FitnessEntry]
}

// NewID generates a collection-unique identifier: millisecond timestamp
// plus a random suffix. Caller-supplied ids are honored by the services,
// this is only the fallback.
func NewID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
