package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// progressTables lists every table holding user progress, in an order
// safe to reinsert with foreign keys on.
var progressTables = []string{
	"users",
	"workout_sessions",
	"session_entries",
	"gate_progress",
	"week_progress",
	"gate_criteria",
	"gate_criteria_exercises",
}

// ExportDataToTOML dumps all progress tables into a single TOML file so
// the database can be rebuilt elsewhere.
func (s *Storage) ExportDataToTOML(outputPath string) error {
	dump := make(map[string][]map[string]interface{})

	for _, table := range progressTables {
		rows, err := s.DB.Query(fmt.Sprintf("SELECT * FROM %s;", table))
		if err != nil {
			return fmt.Errorf("querying table %s: %w", table, err)
		}

		cols, err := rows.Columns()
		if err != nil {
			rows.Close()
			return fmt.Errorf("getting columns for table %s: %w", table, err)
		}

		var tableData []map[string]interface{}
		for rows.Next() {
			values := make([]interface{}, len(cols))
			valuePtrs := make([]interface{}, len(cols))
			for i := range values {
				valuePtrs[i] = &values[i]
			}
			if err := rows.Scan(valuePtrs...); err != nil {
				rows.Close()
				return fmt.Errorf("scanning row in table %s: %w", table, err)
			}

			rowMap := make(map[string]interface{}, len(cols))
			for i, col := range cols {
				if b, ok := values[i].([]byte); ok {
					rowMap[col] = string(b)
				} else {
					rowMap[col] = values[i]
				}
			}
			tableData = append(tableData, rowMap)
		}
		rows.Close()

		dump[table] = tableData
	}

	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(dump); err != nil {
		return fmt.Errorf("encoding TOML: %w", err)
	}

	outputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outputPath, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("writing export file: %w", err)
	}
	return nil
}

// RestoreDataFromTOML rebuilds the database from a dump produced by
// ExportDataToTOML: current rows are deleted and the dump's rows
// inserted, all in one transaction.
func (s *Storage) RestoreDataFromTOML(filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("reading file %s: %w", filePath, err)
	}

	var dump map[string][]map[string]interface{}
	if _, err := toml.Decode(string(data), &dump); err != nil {
		return fmt.Errorf("decoding TOML: %w", err)
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("PRAGMA foreign_keys = OFF;"); err != nil {
		return fmt.Errorf("disabling foreign keys: %w", err)
	}

	for _, table := range progressTables {
		rows, ok := dump[table]
		if !ok {
			continue
		}

		if _, err := tx.Exec(fmt.Sprintf("DELETE FROM %s;", table)); err != nil {
			return fmt.Errorf("clearing table %s: %w", table, err)
		}

		for _, row := range rows {
			cols := make([]string, 0, len(row))
			placeholders := make([]string, 0, len(row))
			values := make([]interface{}, 0, len(row))
			for col, val := range row {
				cols = append(cols, col)
				placeholders = append(placeholders, "?")
				values = append(values, val)
			}

			query := fmt.Sprintf(
				"INSERT INTO %s (%s) VALUES (%s);",
				table,
				strings.Join(cols, ", "),
				strings.Join(placeholders, ", "),
			)
			if _, err := tx.Exec(query, values...); err != nil {
				return fmt.Errorf("inserting into table %s: %w", table, err)
			}
		}
	}

	if _, err := tx.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		return fmt.Errorf("re-enabling foreign keys: %w", err)
	}

	return tx.Commit()
}
