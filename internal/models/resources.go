package models

import "time"

// Workspace-scoped business records. All share the same lifecycle: id,
// workspace id, a handful of typed fields, created/updated stamps. Foreign
// references (role id, term id, parent id) are not enforced; orphans are
// tolerated.

type Expense struct {
	ID          string         `json:"id" db:"id"`
	WorkspaceID string         `json:"workspaceId" db:"workspace_id"`
	Amount      float64        `json:"amount" db:"amount"`
	Category    string         `json:"category" db:"category"`
	Description *string        `json:"description,omitempty" db:"description"`
	ExpenseDate time.Time      `json:"expenseDate" db:"expense_date"`
	Meta        map[string]any `json:"meta,omitempty" db:"meta"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" db:"updated_at"`
}

func (e Expense) GetID() string          { return e.ID }
func (e Expense) GetWorkspaceID() string { return e.WorkspaceID }

type RoadmapItem struct {
	ID          string     `json:"id" db:"id"`
	WorkspaceID string     `json:"workspaceId" db:"workspace_id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description,omitempty" db:"description"`
	Status      string     `json:"status" db:"status"`
	TargetDate  *time.Time `json:"targetDate,omitempty" db:"target_date"`
	ItemType    string     `json:"itemType" db:"item_type"`
	SortOrder   int        `json:"sortOrder" db:"sort_order"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

func (r RoadmapItem) GetID() string          { return r.ID }
func (r RoadmapItem) GetWorkspaceID() string { return r.WorkspaceID }

type BacklogItem struct {
	ID          string         `json:"id" db:"id"`
	WorkspaceID string         `json:"workspaceId" db:"workspace_id"`
	Title       string         `json:"title" db:"title"`
	ItemType    string         `json:"itemType" db:"item_type"`
	Priority    string         `json:"priority" db:"priority"`
	Status      string         `json:"status" db:"status"`
	StoryPoints *int           `json:"storyPoints,omitempty" db:"story_points"`
	Meta        map[string]any `json:"meta,omitempty" db:"meta"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" db:"updated_at"`
}

func (b BacklogItem) GetID() string          { return b.ID }
func (b BacklogItem) GetWorkspaceID() string { return b.WorkspaceID }

type TechDoc struct {
	ID          string    `json:"id" db:"id"`
	WorkspaceID string    `json:"workspaceId" db:"workspace_id"`
	Title       string    `json:"title" db:"title"`
	Content     *string   `json:"content,omitempty" db:"content"`
	Category    *string   `json:"category,omitempty" db:"category"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

func (d TechDoc) GetID() string          { return d.ID }
func (d TechDoc) GetWorkspaceID() string { return d.WorkspaceID }

// OrgRole forms a tree through ParentID; the reference is not enforced.
type OrgRole struct {
	ID          string    `json:"id" db:"id"`
	WorkspaceID string    `json:"workspaceId" db:"workspace_id"`
	TitleAr     string    `json:"titleAr" db:"title_ar"`
	TitleEn     *string   `json:"titleEn,omitempty" db:"title_en"`
	ParentID    *string   `json:"parentId,omitempty" db:"parent_id"`
	SortOrder   int       `json:"sortOrder" db:"sort_order"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

func (r OrgRole) GetID() string          { return r.ID }
func (r OrgRole) GetWorkspaceID() string { return r.WorkspaceID }

type TeamMember struct {
	ID          string         `json:"id" db:"id"`
	WorkspaceID string         `json:"workspaceId" db:"workspace_id"`
	Name        string         `json:"name" db:"name"`
	RoleID      *string        `json:"roleId,omitempty" db:"role_id"`
	Contact     *string        `json:"contact,omitempty" db:"contact"`
	KPIs        map[string]any `json:"kpis,omitempty" db:"kpis"`
	Notes       *string        `json:"notes,omitempty" db:"notes"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" db:"updated_at"`
}

func (m TeamMember) GetID() string          { return m.ID }
func (m TeamMember) GetWorkspaceID() string { return m.WorkspaceID }

type DepartmentBudget struct {
	ID          string    `json:"id" db:"id"`
	WorkspaceID string    `json:"workspaceId" db:"workspace_id"`
	RoleID      *string   `json:"roleId,omitempty" db:"role_id"`
	Amount      float64   `json:"amount" db:"amount"`
	PeriodStart time.Time `json:"periodStart" db:"period_start"`
	PeriodEnd   time.Time `json:"periodEnd" db:"period_end"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

func (b DepartmentBudget) GetID() string          { return b.ID }
func (b DepartmentBudget) GetWorkspaceID() string { return b.WorkspaceID }

type Supplier struct {
	ID          string         `json:"id" db:"id"`
	WorkspaceID string         `json:"workspaceId" db:"workspace_id"`
	Name        string         `json:"name" db:"name"`
	Contact     *string        `json:"contact,omitempty" db:"contact"`
	Materials   map[string]any `json:"materials,omitempty" db:"materials"`
	Notes       *string        `json:"notes,omitempty" db:"notes"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt" db:"updated_at"`
}

func (s Supplier) GetID() string          { return s.ID }
func (s Supplier) GetWorkspaceID() string { return s.WorkspaceID }

type InventoryItem struct {
	ID          string    `json:"id" db:"id"`
	WorkspaceID string    `json:"workspaceId" db:"workspace_id"`
	Name        string    `json:"name" db:"name"`
	ItemType    string    `json:"itemType" db:"item_type"`
	Quantity    float64   `json:"quantity" db:"quantity"`
	Unit        string    `json:"unit" db:"unit"`
	MinLevel    *float64  `json:"minLevel,omitempty" db:"min_level"`
	Notes       *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

func (i InventoryItem) GetID() string          { return i.ID }
func (i InventoryItem) GetWorkspaceID() string { return i.WorkspaceID }

type Campaign struct {
	ID          string     `json:"id" db:"id"`
	WorkspaceID string     `json:"workspaceId" db:"workspace_id"`
	Name        string     `json:"name" db:"name"`
	StartDate   *time.Time `json:"startDate,omitempty" db:"start_date"`
	EndDate     *time.Time `json:"endDate,omitempty" db:"end_date"`
	Status      string     `json:"status" db:"status"`
	Budget      *float64   `json:"budget,omitempty" db:"budget"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

func (c Campaign) GetID() string          { return c.ID }
func (c Campaign) GetWorkspaceID() string { return c.WorkspaceID }

// ContentPlanItem is additionally scoped by a YYYY-MM plan month and a
// day of month within it.
type ContentPlanItem struct {
	ID          string    `json:"id" db:"id"`
	WorkspaceID string    `json:"workspaceId" db:"workspace_id"`
	PlanMonth   string    `json:"planMonth" db:"plan_month"`
	DayOfMonth  int       `json:"dayOfMonth" db:"day_of_month"`
	Title       string    `json:"title" db:"title"`
	Notes       *string   `json:"notes,omitempty" db:"notes"`
	SortOrder   int       `json:"sortOrder" db:"sort_order"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

func (c ContentPlanItem) GetID() string          { return c.ID }
func (c ContentPlanItem) GetWorkspaceID() string { return c.WorkspaceID }

type StudyTerm struct {
	ID          string    `json:"id" db:"id"`
	WorkspaceID string    `json:"workspaceId" db:"workspace_id"`
	Name        string    `json:"name" db:"name"`
	StartDate   time.Time `json:"startDate" db:"start_date"`
	EndDate     time.Time `json:"endDate" db:"end_date"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

func (t StudyTerm) GetID() string          { return t.ID }
func (t StudyTerm) GetWorkspaceID() string { return t.WorkspaceID }

type StudyItem struct {
	ID          string     `json:"id" db:"id"`
	WorkspaceID string     `json:"workspaceId" db:"workspace_id"`
	TermID      *string    `json:"termId,omitempty" db:"term_id"`
	Title       string     `json:"title" db:"title"`
	ItemType    string     `json:"itemType" db:"item_type"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty" db:"scheduled_at"`
	Notes       *string    `json:"notes,omitempty" db:"notes"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

func (i StudyItem) GetID() string          { return i.ID }
func (i StudyItem) GetWorkspaceID() string { return i.WorkspaceID }

type Course struct {
	ID          string     `json:"id" db:"id"`
	WorkspaceID string     `json:"workspaceId" db:"workspace_id"`
	Name        string     `json:"name" db:"name"`
	Platform    *string    `json:"platform,omitempty" db:"platform"`
	ProgressPct float64    `json:"progressPct" db:"progress_pct"`
	TargetDate  *time.Time `json:"targetDate,omitempty" db:"target_date"`
	Notes       *string    `json:"notes,omitempty" db:"notes"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time  `json:"updatedAt" db:"updated_at"`
}

func (c Course) GetID() string          { return c.ID }
func (c Course) GetWorkspaceID() string { return c.WorkspaceID }

type FitnessEntry struct {
	ID           string    `json:"id" db:"id"`
	WorkspaceID  string    `json:"workspaceId" db:"workspace_id"`
	ActivityType string    `json:"activityType" db:"activity_type"`
	DurationMin  int       `json:"durationMin" db:"duration_min"`
	FitnessDate  time.Time `json:"fitnessDate" db:"fitness_date"`
	Notes        *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

func (f FitnessEntry) GetID() string          { return f.ID }
func (f FitnessEntry) GetWorkspaceID() string { return f.WorkspaceID }
