package models

import "time"

// Workspace is one of the fixed top-level partitions. The set is seeded at
// boot and never created or deleted at runtime.
type Workspace struct {
	ID        string    `json:"id" db:"id"`
	Code      string    `json:"code" db:"code"`
	NameAr    string    `json:"nameAr" db:"name_ar"`
	NameEn    string    `json:"nameEn" db:"name_en"`
	Type      string    `json:"type" db:"type"`
	SortOrder int       `json:"sortOrder" db:"sort_order"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// Workspace ids with behavior attached to them.
const (
	WorkspaceKhotawat = "khotawat"
	WorkspaceJahzeen  = "jahzeen"
	WorkspaceRahal    = "rahal"
	WorkspaceStudy    = "study"
	WorkspacePersonal = "personal"
)

// SeedWorkspaces returns the fixed workspace set in sort order.
func SeedWorkspaces() []Workspace {
	now := time.Now()
	ws := []Workspace{
		{ID: WorkspaceKhotawat, Code: WorkspaceKhotawat, NameAr: "خطوات", NameEn: "Khotawat", Type: "saas", SortOrder: 1},
		{ID: WorkspaceJahzeen, Code: WorkspaceJahzeen, NameAr: "جاهزين", NameEn: "Jahzeen", Type: "company", SortOrder: 2},
		{ID: WorkspaceRahal, Code: WorkspaceRahal, NameAr: "رحال", NameEn: "Rahal", Type: "brand", SortOrder: 3},
		{ID: WorkspaceStudy, Code: WorkspaceStudy, NameAr: "الدراسة", NameEn: "Study", Type: "academic", SortOrder: 4},
		{ID: WorkspacePersonal, Code: WorkspacePersonal, NameAr: "الشخصي", NameEn: "Personal", Type: "personal", SortOrder: 5},
	}
	for i := range ws {
		ws[i].CreatedAt = now
		ws[i].UpdatedAt = now
	}
	return ws
}
