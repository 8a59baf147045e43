package checks

import (
	"fmt"
	"reflect"
	"strings"

	"spool-sync/core/database"

	"gorm.io/gorm"
)

// SchemaReport strictly types the result of a schema check.
type SchemaReport struct {
	Matched bool                   `json:"matched"`
	Tables  map[string]TableReport `json:"tables"`
	Errors  []string               `json:"errors"`
}

// TableReport is the result for one table.
type TableReport struct {
	MissingColumns []string `json:"missing_columns"`
	TypeMismatches []string `json:"type_mismatches"`
	Status         string   `json:"status"`
}

type tabler interface {
	TableName() string
}

// CheckSchema verifies the database schema using the GORM models as the
// source of truth. Only fields with an explicit column tag are checked, and
// types only when the tag carries one.
func CheckSchema(db *gorm.DB, models ...any) (*SchemaReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &SchemaReport{
		Matched: true,
		Tables:  make(map[string]TableReport),
		Errors:  []string{},
	}

	for _, model := range models {
		t := reflect.TypeOf(model)
		if t.Kind() == reflect.Ptr {
			t = t.Elem()
		}
		tbl, ok := reflect.New(t).Interface().(tabler)
		if !ok {
			return nil, fmt.Errorf("model %s does not implement TableName", t.Name())
		}
		tableName := tbl.TableName()

		actualCols, err := database.GetTableColumns(db, tableName)
		if err != nil {
			report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", tableName, err))
			report.Matched = false
			continue
		}

		actual := make(map[string]database.ColumnInfo, len(actualCols))
		for _, col := range actualCols {
			actual[col.Field] = col
		}

		tblReport := TableReport{
			MissingColumns: []string{},
			TypeMismatches: []string{},
			Status:         StatusOK,
		}
		for i := 0; i < t.NumField(); i++ {
			tag := t.Field(i).Tag.Get("gorm")
			colName := parseGormTag(tag, "column")
			if colName == "" {
				continue
			}

			col, exists := actual[colName]
			if !exists {
				tblReport.MissingColumns = append(tblReport.MissingColumns, colName)
				tblReport.Status = StatusError
				continue
			}

			// Soft check
			if expType := strings.ToLower(parseGormTag(tag, "type")); expType != "" && !strings.Contains(col.Type, expType) {
				tblReport.TypeMismatches = append(tblReport.TypeMismatches,
					fmt.Sprintf("%s: expected %s, got %s", colName, expType, col.Type))
				tblReport.Status = StatusError
			}
		}

		if tblReport.Status != StatusOK {
			report.Matched = false
		}
		report.Tables[tableName] = tblReport
	}

	return report, nil
}

// parseGormTag returns the value of key in a GORM struct tag.
func parseGormTag(tag, key string) string {
	for _, part := range strings.Split(tag, ";") {
		if v, ok := strings.CutPrefix(part, key+":"); ok {
			return v
		}
	}
	return ""
}
