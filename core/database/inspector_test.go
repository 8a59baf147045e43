package database

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func TestGetTableColumns(t *testing.T) {
	cfg := Config{
		Driver: DriverSQLite,
		Name:   ":memory:",
	}
	db, err := Connect(cfg)
	require.NoError(t, err)

	err = db.Exec("CREATE TABLE test_items (id INTEGER PRIMARY KEY, name TEXT NOT NULL, description TEXT)").Error
	require.NoError(t, err)

	columns, err := GetTableColumns(db, "test_items")
	require.NoError(t, err)
	assert.Len(t, columns, 3)

	colMap := make(map[string]ColumnInfo)
	for _, col := range columns {
		colMap[col.Field] = col
	}

	assert.Equal(t, "integer", colMap["id"].Type)
	assert.Equal(t, "text", colMap["name"].Type)
	assert.Equal(t, "NO", colMap["name"].Null)
	assert.Equal(t, "YES", colMap["description"].Null)

	// PRAGMA table_info returns no rows for unknown tables.
	cols, err := GetTableColumns(db, "non_existent")
	assert.NoError(t, err)
	assert.Empty(t, cols)
}

func TestGetTableColumns_MySQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	db, err := gorm.Open(mysql.New(mysql.Config{Conn: sqlDB, SkipInitializeWithVersion: true}), &gorm.Config{})
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("ID", "INT(11)", "NO", "PRI", nil, "auto_increment").
		AddRow("printer", "varchar(191)", "NO", "MUL", nil, "")
	mock.ExpectQuery(regexp.QuoteMeta("SHOW COLUMNS FROM `sync_runs`")).WillReturnRows(rows)

	columns, err := GetTableColumns(db, "sync_runs")
	require.NoError(t, err)
	require.Len(t, columns, 2)
	assert.Equal(t, "id", columns[0].Field)
	assert.Equal(t, "int(11)", columns[0].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}
