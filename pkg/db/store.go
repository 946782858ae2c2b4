package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mwendt/sprechpass/pkg/sprechpass"
)

// ErrModelNotFound is returned by LoadModel for an unknown model name.
var ErrModelNotFound = errors.New("model not found")

// DBExecutor is an interface that allows methods to accept either *sql.DB
// or *sql.Tx.
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

// ModelInfo describes one stored model.
type ModelInfo struct {
	Name      string
	Cutoff    int
	Strength  int
	CreatedAt time.Time
}

// chainStages is every stage in generation order; stage names double as the
// stage column values.
var chainStages = []sprechpass.Stage{
	sprechpass.StageStartVowel,
	sprechpass.StageVowelConsonant,
	sprechpass.StageConsonantVowel,
	sprechpass.StageVowelEnd,
}

// SaveModel stores m under name, replacing any previous model of that name.
// Entries are stored with their position so a reload reproduces the tables
// exactly, including value order.
func SaveModel(conn *sql.DB, name string, m *sprechpass.Model, cutoff, strength int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("model name must be non-empty")
	}

	tx, err := conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM model_entries WHERE model_id IN (SELECT id FROM models WHERE name = ?)`, name); err != nil {
		return fmt.Errorf("clear old entries: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM models WHERE name = ?`, name); err != nil {
		return fmt.Errorf("clear old model: %w", err)
	}

	res, err := tx.Exec(
		`INSERT INTO models (name, vowels, digits, cutoff, strength) VALUES (?, ?, ?, ?, ?)`,
		name, m.Vowels, m.Digits, cutoff, strength,
	)
	if err != nil {
		return fmt.Errorf("insert model: %w", err)
	}
	modelID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO model_entries (model_id, stage, prefix, suffix, position) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, stage := range chainStages {
		table := m.Table(stage)
		position := 0
		for _, prefix := range table.Keys() {
			for _, suffix := range table[prefix] {
				if _, err := stmt.Exec(modelID, stage.String(), prefix, suffix, position); err != nil {
					return fmt.Errorf("insert %s entry: %w", stage, err)
				}
				position++
			}
		}
	}

	return tx.Commit()
}

// LoadModel reconstructs the named model from storage.
func LoadModel(conn DBExecutor, name string) (*sprechpass.Model, error) {
	m := &sprechpass.Model{
		StartVowel:     make(sprechpass.ChainTable),
		VowelConsonant: make(sprechpass.ChainTable),
		ConsonantVowel: make(sprechpass.ChainTable),
		VowelEnd:       make(sprechpass.ChainTable),
	}

	var modelID int64
	err := conn.QueryRow(`SELECT id, vowels, digits FROM models WHERE name = ?`, name).
		Scan(&modelID, &m.Vowels, &m.Digits)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrModelNotFound, name)
	}
	if err != nil {
		return nil, err
	}

	tables := map[string]sprechpass.ChainTable{}
	for _, stage := range chainStages {
		tables[stage.String()] = m.Table(stage)
	}

	rows, err := conn.Query(
		`SELECT stage, prefix, suffix FROM model_entries WHERE model_id = ? ORDER BY stage, position`,
		modelID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var stage, prefix, suffix string
		if err := rows.Scan(&stage, &prefix, &suffix); err != nil {
			return nil, err
		}
		table, ok := tables[stage]
		if !ok {
			return nil, fmt.Errorf("model %q: unknown stage %q", name, stage)
		}
		table[prefix] = append(table[prefix], suffix)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, stage := range chainStages {
		if len(m.Table(stage)) == 0 {
			return nil, fmt.Errorf("model %q: %s table is empty", name, stage)
		}
	}
	return m, nil
}

// ListModels returns all stored models, newest first.
func ListModels(conn DBExecutor) ([]ModelInfo, error) {
	rows, err := conn.Query(`SELECT name, cutoff, strength, created_at FROM models ORDER BY created_at DESC, name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ModelInfo
	for rows.Next() {
		var info ModelInfo
		if err := rows.Scan(&info.Name, &info.Cutoff, &info.Strength, &info.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, info)
	}
	return out, rows.Err()
}

// DeleteModel removes the named model and its entries.
func DeleteModel(conn *sql.DB, name string) error {
	tx, err := conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM model_entries WHERE model_id IN (SELECT id FROM models WHERE name = ?)`, name); err != nil {
		return err
	}
	res, err := tx.Exec(`DELETE FROM models WHERE name = ?`, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrModelNotFound, name)
	}
	return tx.Commit()
}
