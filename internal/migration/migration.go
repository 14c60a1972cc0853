package migration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/fieldsales/visits/pkg/db/transactor"
)

// Runner applies pending *.sql files from a directory in lexical order.
// Every file runs in its own transaction together with the bookkeeping
// record, so a failing statement leaves the schema at the previous file.
type Runner struct {
	trx transactor.PgxTransactor
	dir string
}

// NewRunner builds migration Runner reading scripts from dir
func NewRunner(trx transactor.PgxTransactor, dir string) *Runner {
	return &Runner{trx: trx, dir: dir}
}

// Run applies all migrations not yet recorded in the migrations table
func (r *Runner) Run(ctx context.Context) error {
	q := `CREATE TABLE IF NOT EXISTS migrations (
			filename text PRIMARY KEY,
			applied_at timestamptz NOT NULL DEFAULT now()
		  )`
	if _, err := r.trx.Executor(ctx).Exec(ctx, q); err != nil {
		return fmt.Errorf("failed to ensure migrations table - %w", err)
	}

	applied, err := r.appliedFilenames(ctx)
	if err != nil {
		return err
	}

	filenames, err := r.scriptFilenames()
	if err != nil {
		return err
	}

	for _, filename := range filenames {
		if applied[filename] {
			continue
		}

		if err := r.apply(ctx, filename); err != nil {
			return fmt.Errorf("migration %s failed - %w", filename, err)
		}
		logrus.Infof("applied migration %s", filename)
	}

	return nil
}

func (r *Runner) apply(ctx context.Context, filename string) error {
	script, err := os.ReadFile(filepath.Join(r.dir, filename))
	if err != nil {
		return err
	}

	return r.trx.WithinTransaction(ctx, func(ctx context.Context) error {
		ex := r.trx.Executor(ctx)
		if _, err := ex.Exec(ctx, string(script)); err != nil {
			return err
		}

		_, err := ex.Exec(ctx, "INSERT INTO migrations(filename) VALUES($1)", filename)
		return err
	})
}

func (r *Runner) appliedFilenames(ctx context.Context) (map[string]bool, error) {
	rows, err := r.trx.Executor(ctx).Query(ctx, "SELECT filename FROM migrations")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	applied := make(map[string]bool)
	for rows.Next() {
		var filename string
		if err := rows.Scan(&filename); err != nil {
			return nil, err
		}
		applied[filename] = true
	}
	return applied, rows.Err()
}

func (r *Runner) scriptFilenames() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, err
	}

	filenames := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		filenames = append(filenames, e.Name())
	}

	sort.Strings(filenames)
	return filenames, nil
}
