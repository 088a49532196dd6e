package main

import (
	"context"
	"fmt"
	"log"

	"peticiona-backend/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

type statement struct {
	name string
	sql  string
}

var tables = []statement{
	{
		name: "users",
		sql: `
CREATE TABLE IF NOT EXISTS users (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    email VARCHAR(255) UNIQUE NOT NULL,
    password_hash VARCHAR(255) NOT NULL,
    name VARCHAR(255) NOT NULL,
    oab_number VARCHAR(50),
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);`,
	},
	{
		name: "templates",
		sql: `
CREATE TABLE IF NOT EXISTS templates (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    name VARCHAR(255) NOT NULL,
    settings JSONB NOT NULL DEFAULT '{}'::jsonb,
    is_default BOOLEAN NOT NULL DEFAULT false,
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);`,
	},
	{
		// documents.file_id and files.document_id reference each other; the
		// foreign keys are added once both tables exist
		name: "documents",
		sql: `
CREATE TABLE IF NOT EXISTS documents (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    title VARCHAR(500) NOT NULL,
    content TEXT NOT NULL,
    template_id UUID REFERENCES templates(id) ON DELETE SET NULL,
    file_id UUID,
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW()
);`,
	},
	{
		name: "files",
		sql: `
CREATE TABLE IF NOT EXISTS files (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    document_id UUID,
    filename VARCHAR(255) NOT NULL,
    mime_type VARCHAR(100) NOT NULL,
    size BIGINT NOT NULL,
    storage_path TEXT NOT NULL,
    created_at TIMESTAMP DEFAULT NOW()
);`,
	},
	{
		name: "generation_jobs",
		sql: `
CREATE TABLE IF NOT EXISTS generation_jobs (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    document_id UUID REFERENCES documents(id) ON DELETE SET NULL,
    status VARCHAR(50) NOT NULL DEFAULT 'pending',
    current_step VARCHAR(255),
    steps JSONB,
    input JSONB NOT NULL,
    report JSONB,
    error_message TEXT,
    created_at TIMESTAMP DEFAULT NOW(),
    updated_at TIMESTAMP DEFAULT NOW(),
    completed_at TIMESTAMP
);`,
	},
}

var foreignKeys = []struct {
	constraint string
	sql        string
}{
	{
		constraint: "fk_documents_file_id",
		sql:        `ALTER TABLE documents ADD CONSTRAINT fk_documents_file_id FOREIGN KEY (file_id) REFERENCES files(id) ON DELETE SET NULL`,
	},
	{
		constraint: "fk_files_document_id",
		sql:        `ALTER TABLE files ADD CONSTRAINT fk_files_document_id FOREIGN KEY (document_id) REFERENCES documents(id) ON DELETE SET NULL`,
	},
}

var indexes = []statement{
	{name: "idx_templates_user_id", sql: "CREATE INDEX IF NOT EXISTS idx_templates_user_id ON templates(user_id);"},
	{name: "idx_templates_default", sql: "CREATE INDEX IF NOT EXISTS idx_templates_default ON templates(user_id) WHERE is_default = true;"},
	{name: "idx_documents_user_id", sql: "CREATE INDEX IF NOT EXISTS idx_documents_user_id ON documents(user_id);"},
	{name: "idx_documents_updated_at", sql: "CREATE INDEX IF NOT EXISTS idx_documents_updated_at ON documents(updated_at DESC);"},
	{name: "idx_files_user_id", sql: "CREATE INDEX IF NOT EXISTS idx_files_user_id ON files(user_id);"},
	{name: "idx_files_document_id", sql: "CREATE INDEX IF NOT EXISTS idx_files_document_id ON files(document_id);"},
	{name: "idx_generation_jobs_user_id", sql: "CREATE INDEX IF NOT EXISTS idx_generation_jobs_user_id ON generation_jobs(user_id);"},
	{name: "idx_generation_jobs_status", sql: "CREATE INDEX IF NOT EXISTS idx_generation_jobs_status ON generation_jobs(status);"},
}

func main() {
	if !config.LoadDotEnv() {
		log.Println("Warning: No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	for _, t := range tables {
		if _, err := pool.Exec(ctx, t.sql); err != nil {
			log.Fatalf("Failed to create %s table: %v", t.name, err)
		}
		log.Printf("✓ Created %s table", t.name)
	}

	for _, fk := range foreignKeys {
		var exists bool
		err := pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = $1)`, fk.constraint).Scan(&exists)
		if err != nil {
			log.Printf("Warning: Failed to check constraint %s: %v", fk.constraint, err)
			continue
		}
		if exists {
			log.Printf("✓ Constraint %s already exists", fk.constraint)
			continue
		}
		if _, err := pool.Exec(ctx, fk.sql); err != nil {
			log.Printf("Warning: Failed to add constraint %s: %v", fk.constraint, err)
			continue
		}
		log.Printf("✓ Added constraint %s", fk.constraint)
	}

	created := 0
	for _, idx := range indexes {
		if _, err := pool.Exec(ctx, idx.sql); err != nil {
			log.Printf("Warning: Failed to create index %s: %v", idx.name, err)
			continue
		}
		created++
		log.Printf("✓ Created index: %s", idx.name)
	}

	fmt.Println("\n✅ Database schema created successfully!")
	fmt.Printf("   Tables: %d\n", len(tables))
	fmt.Printf("   Indexes: %d of %d created\n", created, len(indexes))
}
