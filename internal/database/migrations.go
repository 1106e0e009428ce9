package database

import (
	"context"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS workspaces (
		id VARCHAR(64) PRIMARY KEY,
		code VARCHAR(64) NOT NULL,
		name_ar VARCHAR(255) NOT NULL,
		name_en VARCHAR(255) NOT NULL,
		type VARCHAR(50) NOT NULL,
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	// Fixed workspace set; seeded once, immutable afterwards.
	`INSERT INTO workspaces (id, code, name_ar, name_en, type, sort_order) VALUES
		('khotawat', 'khotawat', 'خطوات', 'Khotawat', 'saas', 1),
		('jahzeen', 'jahzeen', 'جاهزين', 'Jahzeen', 'company', 2),
		('rahal', 'rahal', 'رحال', 'Rahal', 'brand', 3),
		('study', 'study', 'الدراسة', 'Study', 'academic', 4),
		('personal', 'personal', 'الشخصي', 'Personal', 'personal', 5)
	ON CONFLICT (id) DO NOTHING`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id VARCHAR(64) PRIMARY KEY,
		workspace_id VARCHAR(64) NOT NULL REFERENCES workspaces(id),
		title VARCHAR(500) NOT NULL,
		description TEXT,
		status VARCHAR(20) NOT NULL DEFAULT 'todo',
		priority VARCHAR(20) NOT NULL DEFAULT 'normal',
		due_at TIMESTAMP WITH TIME ZONE,
		completed_at TIMESTAMP WITH TIME ZONE,
		time_spent INTEGER NOT NULL DEFAULT 0,
		repeat_type VARCHAR(20) NOT NULL DEFAULT 'none',
		next_due TIMESTAMP WITH TIME ZONE,
		meta JSONB,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS calendar_events (
		id VARCHAR(64) PRIMARY KEY,
		workspace_id VARCHAR(64) REFERENCES workspaces(id),
		title VARCHAR(500) NOT NULL,
		start_at TIMESTAMP WITH TIME ZONE NOT NULL,
		end_at TIMESTAMP WITH TIME ZONE NOT NULL,
		event_type VARCHAR(50) NOT NULL DEFAULT 'event',
		recurring_rule VARCHAR(255),
		meta JSONB,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS notifications (
		id VARCHAR(64) PRIMARY KEY,
		workspace_id VARCHAR(64) REFERENCES workspaces(id),
		title VARCHAR(500) NOT NULL,
		body TEXT,
		read_at TIMESTAMP WITH TIME ZONE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS transactions (
		id VARCHAR(64) PRIMARY KEY,
		workspace_id VARCHAR(64) NOT NULL REFERENCES workspaces(id),
		amount DOUBLE PRECISION NOT NULL,
		type VARCHAR(20) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		category VARCHAR(100) NOT NULL DEFAULT '',
		trans_date TIMESTAMP WITH TIME ZONE NOT NULL,
		month INTEGER NOT NULL,
		year INTEGER NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS workspace_budgets (
		workspace_id VARCHAR(64) PRIMARY KEY REFERENCES workspaces(id),
		amount DOUBLE PRECISION NOT NULL DEFAULT 0
	)`,

	`CREATE TABLE IF NOT EXISTS goals (
		id VARCHAR(64) PRIMARY KEY,
		workspace_id VARCHAR(64) NOT NULL REFERENCES workspaces(id),
		name VARCHAR(255) NOT NULL,
		target_amount DOUBLE PRECISION NOT NULL,
		current_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
		target_date TIMESTAMP WITH TIME ZONE,
		completed BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS debts (
		id VARCHAR(64) PRIMARY KEY,
		workspace_id VARCHAR(64) NOT NULL REFERENCES workspaces(id),
		type VARCHAR(20) NOT NULL,
		person_name VARCHAR(255) NOT NULL,
		total_amount DOUBLE PRECISION NOT NULL,
		paid_amount DOUBLE PRECISION NOT NULL DEFAULT 0,
		due_date TIMESTAMP WITH TIME ZONE,
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS subscriptions (
		id VARCHAR(64) PRIMARY KEY,
		workspace_id VARCHAR(64) NOT NULL REFERENCES workspaces(id),
		name VARCHAR(255) NOT NULL,
		amount DOUBLE PRECISION NOT NULL,
		frequency VARCHAR(20) NOT NULL,
		next_payment TIMESTAMP WITH TIME ZONE NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS expenses (
		id VARCHAR(64) PRIMARY KEY,
		workspace_id VARCHAR(64) NOT NULL REFERENCES workspaces(id),
		amount DOUBLE PRECISION NOT NULL,
		category VARCHAR(100) NOT NULL DEFAULT '',
		description TEXT,
		expense_date TIMESTAMP WITH TIME ZONE NOT NULL,
		meta JSONB,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS roadmap_items (
		id VARCHAR(64) PRIMARY KEY,
		workspace_id VARCHAR(64) NOT NULL REFERENCES workspaces(id),
		title VARCHAR(500) NOT NULL,
		description TEXT,
		status VARCHAR(20) NOT NULL DEFAULT 'planned',
		target_date TIMESTAMP WITH TIME ZONE,
		item_type VARCHAR(50) NOT NULL DEFAULT 'feature',
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS backlog_items (
		id VARCHAR(64) PRIMARY KEY,
		workspace_id VARCHAR(64) NOT NULL REFERENCES workspaces(id),
		title VARCHAR(500) NOT NULL,
		item_type VARCHAR(50) NOT NULL DEFAULT 'feature',
		priority VARCHAR(20) NOT NULL DEFAULT 'medium',
		status VARCHAR(20) NOT NULL DEFAULT 'backlog',
		story_points INTEGER,
		meta JSONB,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS tech_docs (
		id VARCHAR(64) PRIMARY KEY,
		workspace_id VARCHAR(64) NOT NULL REFERENCES workspaces(id),
		title VARCHAR(500) NOT NULL,
		content TEXT,
		category VARCHAR(100),
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS org_roles (
		id VARCHAR(64) PRIMARY KEY,
		workspace_id VARCHAR(64) NOT NULL REFERENCES workspaces(id),
		title_ar VARCHAR(255) NOT NULL,
		title_en VARCHAR(255),
		parent_id VARCHAR(64),
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS team_members (
		id VARCHAR(64) PRIMARY KEY,
		workspace_id VARCHAR(64) NOT NULL REFERENCES workspaces(id),
		name VARCHAR(255) NOT NULL,
		role_id VARCHAR(64),
		contact VARCHAR(255),
		kpis JSONB,
		notes TEXT,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS department_budgets (
		id VARCHAR(64) PRIMARY KEY,
		workspace_id VARCHAR(64) NOT NULL REFERENCES workspaces(id),
		role_id VARCHAR(64),
		amount DOUBLE PRECISION NOT NULL,
		period_start TIMESTAMP WITH TIME ZONE NOT NULL,
		period_end TIMESTAMP WITH TIME ZONE NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS suppliers (
		id VARCHAR(64) PRIMARY KEY,
		workspace_id VARCHAR(64) NOT NULL REFERENCES workspaces(id),
		name VARCHAR(255) NOT NULL,
		contact VARCHAR(255),
		materials JSONB,
		notes TEXT,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS inventory_items (
		id VARCHAR(64) PRIMARY KEY,
		workspace_id VARCHAR(64) NOT NULL REFERENCES workspaces(id),
		name VARCHAR(255) NOT NULL,
		item_type VARCHAR(50) NOT NULL DEFAULT 'product',
		quantity DOUBLE PRECISION NOT NULL DEFAULT 0,
		unit VARCHAR(50) NOT NULL DEFAULT 'pcs',
		min_level DOUBLE PRECISION,
		notes TEXT,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS campaigns (
		id VARCHAR(64) PRIMARY KEY,
		workspace_id VARCHAR(64) NOT NULL REFERENCES workspaces(id),
		name VARCHAR(255) NOT NULL,
		start_date TIMESTAMP WITH TIME ZONE,
		end_date TIMESTAMP WITH TIME ZONE,
		status VARCHAR(20) NOT NULL DEFAULT 'draft',
		budget DOUBLE PRECISION,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS content_plan_items (
		id VARCHAR(64) PRIMARY KEY,
		workspace_id VARCHAR(64) NOT NULL REFERENCES workspaces(id),
		plan_month CHAR(7) NOT NULL,
		day_of_month INTEGER NOT NULL DEFAULT 1,
		title VARCHAR(500) NOT NULL,
		notes TEXT,
		sort_order INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS study_terms (
		id VARCHAR(64) PRIMARY KEY,
		workspace_id VARCHAR(64) NOT NULL REFERENCES workspaces(id),
		name VARCHAR(255) NOT NULL,
		start_date TIMESTAMP WITH TIME ZONE NOT NULL,
		end_date TIMESTAMP WITH TIME ZONE NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS study_items (
		id VARCHAR(64) PRIMARY KEY,
		workspace_id VARCHAR(64) NOT NULL REFERENCES workspaces(id),
		term_id VARCHAR(64),
		title VARCHAR(500) NOT NULL,
		item_type VARCHAR(50) NOT NULL DEFAULT 'lecture',
		scheduled_at TIMESTAMP WITH TIME ZONE,
		notes TEXT,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS courses (
		id VARCHAR(64) PRIMARY KEY,
		workspace_id VARCHAR(64) NOT NULL REFERENCES workspaces(id),
		name VARCHAR(255) NOT NULL,
		platform VARCHAR(100),
		progress_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
		target_date TIMESTAMP WITH TIME ZONE,
		notes TEXT,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS fitness_entries (
		id VARCHAR(64) PRIMARY KEY,
		workspace_id VARCHAR(64) NOT NULL REFERENCES workspaces(id),
		activity_type VARCHAR(100) NOT NULL,
		duration_min INTEGER NOT NULL DEFAULT 0,
		fitness_date TIMESTAMP WITH TIME ZONE NOT NULL,
		notes TEXT,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_workspace_id ON tasks(workspace_id)`,
	`CREATE INDEX IF NOT EXISTS idx_calendar_events_workspace_id ON calendar_events(workspace_id)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_workspace_id ON notifications(workspace_id)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_read_at ON notifications(read_at)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_workspace_id ON transactions(workspace_id)`,
	`CREATE INDEX IF NOT EXISTS idx_goals_workspace_id ON goals(workspace_id)`,
	`CREATE INDEX IF NOT EXISTS idx_debts_workspace_id ON debts(workspace_id)`,
	`CREATE INDEX IF NOT EXISTS idx_subscriptions_workspace_id ON subscriptions(workspace_id)`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_workspace_id ON expenses(workspace_id)`,
	`CREATE INDEX IF NOT EXISTS idx_roadmap_items_workspace_id ON roadmap_items(workspace_id)`,
	`CREATE INDEX IF NOT EXISTS idx_backlog_items_workspace_id ON backlog_items(workspace_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tech_docs_workspace_id ON tech_docs(workspace_id)`,
	`CREATE INDEX IF NOT EXISTS idx_org_roles_workspace_id ON org_roles(workspace_id)`,
	`CREATE INDEX IF NOT EXISTS idx_team_members_workspace_id ON team_members(workspace_id)`,
	`CREATE INDEX IF NOT EXISTS idx_department_budgets_workspace_id ON department_budgets(workspace_id)`,
	`CREATE INDEX IF NOT EXISTS idx_suppliers_workspace_id ON suppliers(workspace_id)`,
	`CREATE INDEX IF NOT EXISTS idx_inventory_items_workspace_id ON inventory_items(workspace_id)`,
	`CREATE INDEX IF NOT EXISTS idx_campaigns_workspace_id ON campaigns(workspace_id)`,
	`CREATE INDEX IF NOT EXISTS idx_content_plan_items_workspace_month ON content_plan_items(workspace_id, plan_month)`,
	`CREATE INDEX IF NOT EXISTS idx_study_terms_workspace_id ON study_terms(workspace_id)`,
	`CREATE INDEX IF NOT EXISTS idx_study_items_workspace_id ON study_items(workspace_id)`,
	`CREATE INDEX IF NOT EXISTS idx_courses_workspace_id ON courses(workspace_id)`,
	`CREATE INDEX IF NOT EXISTS idx_fitness_entries_workspace_id ON fitness_entries(workspace_id)`,
}

func (db *DB) Migrate(ctx context.Context) error {
	for i, migration := range migrations {
		if _, err := db.Pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
