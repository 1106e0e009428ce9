package store

import (
	"github.com/muntadher/nizam-api/internal/database"
	"github.com/muntadher/nizam-api/internal/models"
)

// Table descriptors for the postgres backend. The column order of each
// descriptor must match its values function; columns[0] is the primary id.
func newPgStore(pool database.PgxPool) *Store {
	return &Store{
		Workspaces: &pgWorkspaces{pool: pool},
		Budgets:    &pgBudgets{pool: pool},

		Tasks: &pgCollection[models.Task]{
			pool:  pool,
			table: "tasks",
			columns: []string{"id", "workspace_id", "title", "description", "status", "priority",
				"due_at", "completed_at", "time_spent", "repeat_type", "next_due", "meta",
				"created_at", "updated_at"},
			values: func(t models.Task) []any {
				return []any{t.ID, t.WorkspaceID, t.Title, t.Description, t.Status, t.Priority,
					t.DueAt, t.CompletedAt, t.TimeSpent, t.RepeatType, t.NextDue, t.Meta,
					t.CreatedAt, t.UpdatedAt}
			},
		},

		Events: &pgCollection[models.CalendarEvent]{
			pool:  pool,
			table: "calendar_events",
			columns: []string{"id", "workspace_id", "title", "start_at", "end_at", "event_type",
				"recurring_rule", "meta", "created_at", "updated_at"},
			values: func(e models.CalendarEvent) []any {
				return []any{e.ID, e.WorkspaceID, e.Title, e.StartAt, e.EndAt, e.EventType,
					e.RecurringRule, e.Meta, e.CreatedAt, e.UpdatedAt}
			},
		},

		Notifications: &pgCollection[models.Notification]{
			pool:    pool,
			table:   "notifications",
			columns: []string{"id", "workspace_id", "title", "body", "read_at", "created_at", "updated_at"},
			values: func(n models.Notification) []any {
				return []any{n.ID, n.WorkspaceID, n.Title, n.Body, n.ReadAt, n.CreatedAt, n.UpdatedAt}
			},
		},

		Transactions: &pgCollection[models.Transaction]{
			pool:  pool,
			table: "transactions",
			columns: []string{"id", "workspace_id", "amount", "type", "description", "category",
				"trans_date", "month", "year", "created_at", "updated_at"},
			values: func(t models.Transaction) []any {
				return []any{t.ID, t.WorkspaceID, t.Amount, t.Type, t.Description, t.Category,
					t.TransDate, t.Month, t.Year, t.CreatedAt, t.UpdatedAt}
			},
		},

		Goals: &pgCollection[models.Goal]{
			pool:  pool,
			table: "goals",
			columns: []string{"id", "workspace_id", "name", "target_amount", "current_amount",
				"target_date", "completed", "created_at", "updated_at"},
			values: func(g models.Goal) []any {
				return []any{g.ID, g.WorkspaceID, g.Name, g.TargetAmount, g.CurrentAmount,
					g.TargetDate, g.Completed, g.CreatedAt, g.UpdatedAt}
			},
		},

		Debts: &pgCollection[models.Debt]{
			pool:  pool,
			table: "debts",
			columns: []string{"id", "workspace_id", "type", "person_name", "total_amount",
				"paid_amount", "due_date", "status", "created_at", "updated_at"},
			values: func(d models.Debt) []any {
				return []any{d.ID, d.WorkspaceID, d.Type, d.PersonName, d.TotalAmount,
					d.PaidAmount, d.DueDate, d.Status, d.CreatedAt, d.UpdatedAt}
			},
		},

		Subscriptions: &pgCollection[models.Subscription]{
			pool:  pool,
			table: "subscriptions",
			columns: []string{"id", "workspace_id", "name", "amount", "frequency",
				"next_payment", "status", "created_at", "updated_at"},
			values: func(s models.Subscription) []any {
				return []any{s.ID, s.WorkspaceID, s.Name, s.Amount, s.Frequency,
					s.NextPayment, s.Status, s.CreatedAt, s.UpdatedAt}
			},
		},

		Expenses: &pgCollection[models.Expense]{
			pool:  pool,
			table: "expenses",
			columns: []string{"id", "workspace_id", "amount", "category", "description",
				"expense_date", "meta", "created_at", "updated_at"},
			values: func(e models.Expense) []any {
				return []any{e.ID, e.WorkspaceID, e.Amount, e.Category, e.Description,
					e.ExpenseDate, e.Meta, e.CreatedAt, e.UpdatedAt}
			},
		},

		Roadmap: &pgCollection[models.RoadmapItem]{
			pool:  pool,
			table: "roadmap_items",
			columns: []string{"id", "workspace_id", "title", "description", "status",
				"target_date", "item_type", "sort_order", "created_at", "updated_at"},
			values: func(r models.RoadmapItem) []any {
				return []any{r.ID, r.WorkspaceID, r.Title, r.Description, r.Status,
					r.TargetDate, r.ItemType, r.SortOrder, r.CreatedAt, r.UpdatedAt}
			},
		},

		Backlog: &pgCollection[models.BacklogItem]{
			pool:  pool,
			table: "backlog_items",
			columns: []string{"id", "workspace_id", "title", "item_type", "priority",
				"status", "story_points", "meta", "created_at", "updated_at"},
			values: func(b models.BacklogItem) []any {
				return []any{b.ID, b.WorkspaceID, b.Title, b.ItemType, b.Priority,
					b.Status, b.StoryPoints, b.Meta, b.CreatedAt, b.UpdatedAt}
			},
		},

		TechDocs: &pgCollection[models.TechDoc]{
			pool:    pool,
			table:   "tech_docs",
			columns: []string{"id", "workspace_id", "title", "content", "category", "created_at", "updated_at"},
			values: func(d models.TechDoc) []any {
				return []any{d.ID, d.WorkspaceID, d.Title, d.Content, d.Category, d.CreatedAt, d.UpdatedAt}
			},
		},

		OrgRoles: &pgCollection[models.OrgRole]{
			pool:  pool,
			table: "org_roles",
			columns: []string{"id", "workspace_id", "title_ar", "title_en", "parent_id",
				"sort_order", "created_at", "updated_at"},
			values: func(r models.OrgRole) []any {
				return []any{r.ID, r.WorkspaceID, r.TitleAr, r.TitleEn, r.ParentID,
					r.SortOrder, r.CreatedAt, r.UpdatedAt}
			},
		},

		TeamMembers: &pgCollection[models.TeamMember]{
			pool:  pool,
			table: "team_members",
			columns: []string{"id", "workspace_id", "name", "role_id", "contact", "kpis",
				"notes", "created_at", "updated_at"},
			values: func(m models.TeamMember) []any {
				return []any{m.ID, m.WorkspaceID, m.Name, m.RoleID, m.Contact, m.KPIs,
					m.Notes, m.CreatedAt, m.UpdatedAt}
			},
		},

		DepartmentBudgets: &pgCollection[models.DepartmentBudget]{
			pool:  pool,
			table: "department_budgets",
			columns: []string{"id", "workspace_id", "role_id", "amount", "period_start",
				"period_end", "created_at", "updated_at"},
			values: func(b models.DepartmentBudget) []any {
				return []any{b.ID, b.WorkspaceID, b.RoleID, b.Amount, b.PeriodStart,
					b.PeriodEnd, b.CreatedAt, b.UpdatedAt}
			},
		},

		Suppliers: &pgCollection[models.Supplier]{
			pool:  pool,
			table: "suppliers",
			columns: []string{"id", "workspace_id", "name", "contact", "materials", "notes",
				"created_at", "updated_at"},
			values: func(s models.Supplier) []any {
				return []any{s.ID, s.WorkspaceID, s.Name, s.Contact, s.Materials, s.Notes,
					s.CreatedAt, s.UpdatedAt}
			},
		},

		Inventory: &pgCollection[models.InventoryItem]{
			pool:  pool,
			table: "inventory_items",
			columns: []string{"id", "workspace_id", "name", "item_type", "quantity", "unit",
				"min_level", "notes", "created_at", "updated_at"},
			values: func(i models.InventoryItem) []any {
				return []any{i.ID, i.WorkspaceID, i.Name, i.ItemType, i.Quantity, i.Unit,
					i.MinLevel, i.Notes, i.CreatedAt, i.UpdatedAt}
			},
		},

		Campaigns: &pgCollection[models.Campaign]{
			pool:  pool,
			table: "campaigns",
			columns: []string{"id", "workspace_id", "name", "start_date", "end_date",
				"status", "budget", "created_at", "updated_at"},
			values: func(c models.Campaign) []any {
				return []any{c.ID, c.WorkspaceID, c.Name, c.StartDate, c.EndDate,
					c.Status, c.Budget, c.CreatedAt, c.UpdatedAt}
			},
		},

		ContentPlan: &pgCollection[models.ContentPlanItem]{
			pool:  pool,
			table: "content_plan_items",
			columns: []string{"id", "workspace_id", "plan_month", "day_of_month", "title",
				"notes", "sort_order", "created_at", "updated_at"},
			values: func(c models.ContentPlanItem) []any {
				return []any{c.ID, c.WorkspaceID, c.PlanMonth, c.DayOfMonth, c.Title,
					c.Notes, c.SortOrder, c.CreatedAt, c.UpdatedAt}
			},
		},

		StudyTerms: &pgCollection[models.StudyTerm]{
			pool:    pool,
			table:   "study_terms",
			columns: []string{"id", "workspace_id", "name", "start_date", "end_date", "created_at", "updated_at"},
			values: func(t models.StudyTerm) []any {
				return []any{t.ID, t.WorkspaceID, t.Name, t.StartDate, t.EndDate, t.CreatedAt, t.UpdatedAt}
			},
		},

		StudyItems: &pgCollection[models.StudyItem]{
			pool:  pool,
			table: "study_items",
			columns: []string{"id", "workspace_id", "term_id", "title", "item_type",
				"scheduled_at", "notes", "created_at", "updated_at"},
			values: func(i models.StudyItem) []any {
				return []any{i.ID, i.WorkspaceID, i.TermID, i.Title, i.ItemType,
					i.ScheduledAt, i.Notes, i.CreatedAt, i.UpdatedAt}
			},
		},

		Courses: &pgCollection[models.Course]{
			pool:  pool,
			table: "courses",
			columns: []string{"id", "workspace_id", "name", "platform", "progress_pct",
				"target_date", "notes", "created_at", "updated_at"},
			values: func(c models.Course) []any {
				return []any{c.ID, c.WorkspaceID, c.Name, c.Platform, c.ProgressPct,
					c.TargetDate, c.Notes, c.CreatedAt, c.UpdatedAt}
			},
		},

		Fitness: &pgCollection[models.FitnessEntry]{
			pool:  pool,
			table: "fitness_entries",
			columns: []string{"id", "workspace_id", "activity_type", "duration_min",
				"fitness_date", "notes", "created_at", "updated_at"},
			values: func(f models.FitnessEntry) []any {
				return []any{f.ID, f.WorkspaceID, f.ActivityType, f.DurationMin,
					f.FitnessDate, f.Notes, f.CreatedAt, f.UpdatedAt}
			},
		},
	}
}
