// Package db keeps a small record of every workflow directory this tool
// has initialized, so earlier runs can be listed and found again.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/google/uuid"
)

// Defining possible error
var RegistryNotOpen = errors.New("workflow registry is not open")

// Workflow is one registered workflow directory.
type Workflow struct {
	ID        string
	Kind      string
	Directory string
	Outprefix string
	Species   string
	Platform  string
	CreatedAt time.Time
}

type Registry struct {
	registrySQL *sql.DB
	path        string
}

const schema = `
	CREATE TABLE IF NOT EXISTS workflows (
		workflow_id TEXT PRIMARY KEY,
		kind        TEXT NOT NULL,
		directory   TEXT NOT NULL UNIQUE,
		outprefix   TEXT NOT NULL,
		species     TEXT NOT NULL DEFAULT '',
		platform    TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	);
`

// OpenRegistry opens the registry database. Nothing touches the disk until
// the first read or write, so commands that never record anything do not
// leave files behind.
func OpenRegistry(dbpath string) (*Registry, error) {

	registry_sqlite, err := sql.Open("sqlite", dbpath)
	if err != nil {
		return nil, fmt.Errorf("open registry: %w", err)
	}

	return &Registry{registrySQL: registry_sqlite, path: dbpath}, nil
}

func NewWorkflowID() string {
	return "wf-" + uuid.New().String()
}

// ensure creates the parent directory and schema on first use.
func (r *Registry) ensure(ctx context.Context) error {

	if r == nil || r.registrySQL == nil {
		return RegistryNotOpen
	}

	if err := os.MkdirAll(path.Dir(r.path), 0755); err != nil {
		return fmt.Errorf("create registry directory: %w", err)
	}

	if _, err := r.registrySQL.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("prepare registry schema: %w", err)
	}

	return nil
}

// Register records a workflow directory. Initializing the same directory
// again updates the record in place and keeps its original ID, one
// directory is one workflow.
func (r *Registry) Register(ctx context.Context, wf Workflow) (Workflow, error) {

	if err := r.ensure(ctx); err != nil {
		return Workflow{}, err
	}

	if wf.ID == "" {
		wf.ID = NewWorkflowID()
	}
	if wf.CreatedAt.IsZero() {
		wf.CreatedAt = time.Now().UTC()
	}

	const upsert = `
		INSERT INTO workflows (workflow_id, kind, directory, outprefix, species, platform, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(directory) DO UPDATE SET
			kind = excluded.kind,
			outprefix = excluded.outprefix,
			species = excluded.species,
			platform = excluded.platform
	`

	_, err := r.registrySQL.ExecContext(ctx, upsert,
		wf.ID, wf.Kind, wf.Directory, wf.Outprefix, wf.Species, wf.Platform,
		wf.CreatedAt.Format(time.RFC3339))

	if err != nil {
		return Workflow{}, fmt.Errorf("register workflow: %w", err)
	}

	return r.ByDirectory(ctx, wf.Directory)
}

// ByDirectory looks a workflow up by its directory. A miss surfaces as
// sql.ErrNoRows.
func (r *Registry) ByDirectory(ctx context.Context, dir string) (Workflow, error) {

	if err := r.ensure(ctx); err != nil {
		return Workflow{}, err
	}

	row := r.registrySQL.QueryRowContext(ctx,
		`SELECT workflow_id, kind, directory, outprefix, species, platform, created_at
		 FROM workflows WHERE directory = ?`, dir)

	return scanWorkflow(row)
}

// List returns every registered workflow, oldest first.
func (r *Registry) List(ctx context.Context) ([]Workflow, error) {

	if err := r.ensure(ctx); err != nil {
		return nil, err
	}

	rows, err := r.registrySQL.QueryContext(ctx,
		`SELECT workflow_id, kind, directory, outprefix, species, platform, created_at
		 FROM workflows ORDER BY created_at, directory`)

	if err != nil {
		return nil, fmt.Errorf("list workflows: %w", err)
	}
	defer rows.Close()

	var workflows []Workflow
	for rows.Next() {
		wf, err := scanWorkflow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan workflow row: %w", err)
		}
		workflows = append(workflows, wf)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workflow rows error: %w", err)
	}

	return workflows, nil
}

func (r *Registry) Close() error {
	if r == nil || r.registrySQL == nil {
		return nil
	}
	return r.registrySQL.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorkflow(row rowScanner) (Workflow, error) {

	var wf Workflow
	var created string

	if err := row.Scan(&wf.ID, &wf.Kind, &wf.Directory, &wf.Outprefix, &wf.Species, &wf.Platform, &created); err != nil {
		return Workflow{}, err
	}

	ts, err := time.Parse(time.RFC3339, created)
	if err != nil {
		return Workflow{}, fmt.Errorf("bad created_at %q: %w", created, err)
	}
	wf.CreatedAt = ts

	return wf, nil
}
