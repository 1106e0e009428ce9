package dto

import "time"

// Create/update pairs for the workspace-scoped business records. Update
// requests use pointer fields so absent keys leave the stored value alone.

type CreateExpenseRequest struct {
	ID          string         `json:"id,omitempty"`
	Amount      float64        `json:"amount"`
	Category    string         `json:"category,omitempty"`
	Description *string        `json:"description,omitempty"`
	ExpenseDate time.Time      `json:"expenseDate,omitempty"`
	Meta        map[string]any `json:"meta,omitempty"`
}

type UpdateExpenseRequest struct {
	Amount      *float64       `json:"amount,omitempty"`
	Category    *string        `json:"category,omitempty"`
	Description *string        `json:"description,omitempty"`
	ExpenseDate *time.Time     `json:"expenseDate,omitempty"`
	Meta        map[string]any `json:"meta,omitempty"`
}

type CreateRoadmapItemRequest struct {
	ID          string     `json:"id,omitempty"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Status      string     `json:"status,omitempty"`
	TargetDate  *time.Time `json:"targetDate,omitempty"`
	ItemType    string     `json:"itemType,omitempty"`
	SortOrder   *int       `json:"sortOrder,omitempty"`
}

type UpdateRoadmapItemRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Status      *string    `json:"status,omitempty"`
	TargetDate  *time.Time `json:"targetDate,omitempty"`
	ItemType    *string    `json:"itemType,omitempty"`
	SortOrder   *int       `json:"sortOrder,omitempty"`
}

type CreateBacklogItemRequest struct {
	ID          string         `json:"id,omitempty"`
	Title       string         `json:"title"`
	ItemType    string         `json:"itemType,omitempty"`
	Priority    string         `json:"priority,omitempty"`
	Status      string         `json:"status,omitempty"`
	StoryPoints *int           `json:"storyPoints,omitempty"`
	Meta        map[string]any `json:"meta,omitempty"`
}

type UpdateBacklogItemRequest struct {
	Title       *string        `json:"title,omitempty"`
	ItemType    *string        `json:"itemType,omitempty"`
	Priority    *string        `json:"priority,omitempty"`
	Status      *string        `json:"status,omitempty"`
	StoryPoints *int           `json:"storyPoints,omitempty"`
	Meta        map[string]any `json:"meta,omitempty"`
}

type CreateTechDocRequest struct {
	ID       string  `json:"id,omitempty"`
	Title    string  `json:"title"`
	Content  *string `json:"content,omitempty"`
	Category *string `json:"category,omitempty"`
}

type UpdateTechDocRequest struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	Category *string `json:"category,omitempty"`
}

type CreateOrgRoleRequest struct {
	ID        string  `json:"id,omitempty"`
	TitleAr   string  `json:"titleAr"`
	TitleEn   *string `json:"titleEn,omitempty"`
	ParentID  *string `json:"parentId,omitempty"`
	SortOrder *int    `json:"sortOrder,omitempty"`
}

type UpdateOrgRoleRequest struct {
	TitleAr   *string `json:"titleAr,omitempty"`
	TitleEn   *string `json:"titleEn,omitempty"`
	ParentID  *string `json:"parentId,omitempty"`
	SortOrder *int    `json:"sortOrder,omitempty"`
}

type CreateTeamMemberRequest struct {
	ID      string         `json:"id,omitempty"`
	Name    string         `json:"name"`
	RoleID  *string        `json:"roleId,omitempty"`
	Contact *string        `json:"contact,omitempty"`
	KPIs    map[string]any `json:"kpis,omitempty"`
	Notes   *string        `json:"notes,omitempty"`
}

type UpdateTeamMemberRequest struct {
	Name    *string        `json:"name,omitempty"`
	RoleID  *string        `json:"roleId,omitempty"`
	Contact *string        `json:"contact,omitempty"`
	KPIs    map[string]any `json:"kpis,omitempty"`
	Notes   *string        `json:"notes,omitempty"`
}

type CreateDepartmentBudgetRequest struct {
	ID          string    `json:"id,omitempty"`
	RoleID      *string   `json:"roleId,omitempty"`
	Amount      float64   `json:"amount"`
	PeriodStart time.Time `json:"periodStart"`
	PeriodEnd   time.Time `json:"periodEnd"`
}

type UpdateDepartmentBudgetRequest struct {
	RoleID      *string    `json:"roleId,omitempty"`
	Amount      *float64   `json:"amount,omitempty"`
	PeriodStart *time.Time `json:"periodStart,omitempty"`
	PeriodEnd   *time.Time `json:"periodEnd,omitempty"`
}

type CreateSupplierRequest struct {
	ID        string         `json:"id,omitempty"`
	Name      string         `json:"name"`
	Contact   *string        `json:"contact,omitempty"`
	Materials map[string]any `json:"materials,omitempty"`
	Notes     *string        `json:"notes,omitempty"`
}

type UpdateSupplierRequest struct {
	Name      *string        `json:"name,omitempty"`
	Contact   *string        `json:"contact,omitempty"`
	Materials map[string]any `json:"materials,omitempty"`
	Notes     *string        `json:"notes,omitempty"`
}

type CreateInventoryItemRequest struct {
	ID       string   `json:"id,omitempty"`
	Name     string   `json:"name"`
	ItemType string   `json:"itemType,omitempty"`
	Quantity *float64 `json:"quantity,omitempty"`
	Unit     string   `json:"unit,omitempty"`
	MinLevel *float64 `json:"minLevel,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
}

type UpdateInventoryItemRequest struct {
	Name     *string  `json:"name,omitempty"`
	ItemType *string  `json:"itemType,omitempty"`
	Quantity *float64 `json:"quantity,omitempty"`
	Unit     *string  `json:"unit,omitempty"`
	MinLevel *float64 `json:"minLevel,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
}

type CreateCampaignRequest struct {
	ID        string     `json:"id,omitempty"`
	Name      string     `json:"name"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Status    string     `json:"status,omitempty"`
	Budget    *float64   `json:"budget,omitempty"`
}

type UpdateCampaignRequest struct {
	Name      *string    `json:"name,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	Status    *string    `json:"status,omitempty"`
	Budget    *float64   `json:"budget,omitempty"`
}

type CreateContentPlanItemRequest struct {
	ID         string  `json:"id,omitempty"`
	PlanMonth  string  `json:"planMonth"`
	DayOfMonth int     `json:"dayOfMonth"`
	Title      string  `json:"title"`
	Notes      *string `json:"notes,omitempty"`
	SortOrder  *int    `json:"sortOrder,omitempty"`
}

type UpdateContentPlanItemRequest struct {
	PlanMonth  *string `json:"planMonth,omitempty"`
	DayOfMonth *int    `json:"dayOfMonth,omitempty"`
	Title      *string `json:"title,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	SortOrder  *int    `json:"sortOrder,omitempty"`
}

type ResetContentPlanRequest struct {
	Month string `json:"month"`
}

type ResetContentPlanResponse struct {
	Deleted int `json:"deleted"`
}

type CreateStudyTermRequest struct {
	ID        string    `json:"id,omitempty"`
	Name      string    `json:"name"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type CreateStudyItemRequest struct {
	ID          string     `json:"id,omitempty"`
	TermID      *string    `json:"termId,omitempty"`
	Title       string     `json:"title"`
	ItemType    string     `json:"itemType,omitempty"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

type UpdateStudyItemRequest struct {
	TermID      *string    `json:"termId,omitempty"`
	Title       *string    `json:"title,omitempty"`
	ItemType    *string    `json:"itemType,omitempty"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

type CreateCourseRequest struct {
	ID          string     `json:"id,omitempty"`
	Name        string     `json:"name"`
	Platform    *string    `json:"platform,omitempty"`
	ProgressPct *float64   `json:"progressPct,omitempty"`
	TargetDate  *time.Time `json:"targetDate,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

type UpdateCourseRequest struct {
	Name        *string    `json:"name,omitempty"`
	Platform    *string    `json:"platform,omitempty"`
	ProgressPct *float64   `json:"progressPct,omitempty"`
	TargetDate  *time.Time `json:"targetDate,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}

type CreateFitnessEntryRequest struct {
	ID           string    `json:"id,omitempty"`
	ActivityType string    `json:"activityType"`
	DurationMin  int       `json:"durationMin"`
	FitnessDate  time.Time `json:"fitnessDate,omitempty"`
	Notes        *string   `json:"notes,omitempty"`
}
