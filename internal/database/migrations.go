package database

import (
	"context"
	"fmt"
)

var migrations = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`,

	`CREATE TABLE IF NOT EXISTS type (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		type_name TEXT UNIQUE NOT NULL,
		description TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS object (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		version INTEGER NOT NULL DEFAULT 1,
		type_id UUID NOT NULL REFERENCES type(id) ON DELETE RESTRICT,
		created_on TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		created_by TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS link (
		id SERIAL PRIMARY KEY,
		parent_id INTEGER NOT NULL REFERENCES object(id) ON DELETE CASCADE,
		parent_type TEXT NOT NULL,
		child_type TEXT NOT NULL,
		r_name TEXT NOT NULL,
		child_id INTEGER NOT NULL REFERENCES object(id) ON DELETE CASCADE
	)`,

	`CREATE TABLE IF NOT EXISTS permissions (
		id SERIAL PRIMARY KEY,
		object_id INTEGER NOT NULL REFERENCES object(id) ON DELETE CASCADE,
		"user" TEXT NOT NULL,
		permission_level TEXT NOT NULL,
		UNIQUE(object_id, "user")
	)`,

	`CREATE TABLE IF NOT EXISTS versioning (
		id SERIAL PRIMARY KEY,
		object_id INTEGER NOT NULL REFERENCES object(id) ON DELETE CASCADE,
		version INTEGER NOT NULL,
		snapshot JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		UNIQUE(object_id, version)
	)`,

	`CREATE TABLE IF NOT EXISTS attributes (
		id SERIAL PRIMARY KEY,
		object_id INTEGER NOT NULL REFERENCES object(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		value TEXT NOT NULL,
		created_on TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		updated_on TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
		UNIQUE(object_id, name)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_object_type_id ON object(type_id)`,
	`CREATE INDEX IF NOT EXISTS idx_object_name ON object(name)`,
	`CREATE INDEX IF NOT EXISTS idx_link_parent_id ON link(parent_id)`,
	`CREATE INDEX IF NOT EXISTS idx_link_child_id ON link(child_id)`,
	`CREATE INDEX IF NOT EXISTS idx_link_r_name ON link(r_name)`,
	`CREATE INDEX IF NOT EXISTS idx_permissions_object_id ON permissions(object_id)`,
	`CREATE INDEX IF NOT EXISTS idx_permissions_user ON permissions("user")`,
	`CREATE INDEX IF NOT EXISTS idx_versioning_object_id ON versioning(object_id)`,
	`CREATE INDEX IF NOT EXISTS idx_attributes_object_id ON attributes(object_id)`,
}

func (db *DB) Migrate(ctx context.Context) error {
	for i, migration := range migrations {
		if _, err := db.Pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
