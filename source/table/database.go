package table

import (
	"database/sql"
	"fmt"
	"sort"
	"strconv"
	"strings"

	// SQL drivers

	_ "github.com/go-sql-driver/mysql"  // MariaDB & MySQL
	_ "github.com/lib/pq"               // Postgres
	_ "github.com/microsoft/go-mssqldb" // SQL Server
	_ "github.com/nakagami/firebirdsql" // Firebird
	_ "github.com/sijms/go-ora"         // Oracle
	_ "modernc.org/sqlite"              // SQLite
)

// List of SQL drivers for when we want to import more: https://zchee.github.io/golang-wiki/SQLDrivers/

var (
	drivers = map[string]string{"Firebird SQL": "firebirdsql", "MariaDB": "mysql", "MySQL": "mysql",
		"Oracle": "oracle", "Postgres": "postgres", "SQL Server": "sqlserver", "SQLite": "sqlite"}
)

// A dialect is what we need to know about a database to write the handful of statements a table
// uses: how it spells a query parameter, and what type it stores text in.
type dialect struct {
	placeholder func(n int) string
	textType    string
}

var dialects = map[string]dialect{
	"firebirdsql": {question, "BLOB SUB_TYPE TEXT"},
	"mysql":       {question, "TEXT"},
	"oracle":      {func(n int) string { return ":" + strconv.Itoa(n) }, "CLOB"},
	"postgres":    {func(n int) string { return "$" + strconv.Itoa(n) }, "TEXT"},
	"sqlite":      {question, "TEXT"},
	"sqlserver":   {func(n int) string { return "@p" + strconv.Itoa(n) }, "NVARCHAR(MAX)"},
}

func question(n int) string {
	return "?"
}

// DriverName turns a name from the list of drivers, or a Go driver name, into the Go driver name.
func DriverName(driver string) (string, error) {
	if name, ok := drivers[driver]; ok {
		return name, nil
	}
	if _, ok := dialects[driver]; ok {
		return driver, nil
	}
	return "", fmt.Errorf("no SQL driver called %q", driver)
}

// Open connects to a database and checks that the connection works.
func Open(driver, dataSource string) (*sql.DB, error) {
	name, err := DriverName(driver)
	if err != nil {
		return nil, err
	}
	sqlObj, connectionError := sql.Open(name, dataSource)
	if connectionError != nil {
		return nil, fmt.Errorf("opening %s database: %w", driver, connectionError)
	}
	// Every connection to an in-memory SQLite database is a different database.
	if name == "sqlite" && strings.Contains(dataSource, ":memory:") {
		sqlObj.SetMaxOpenConns(1)
	}
	err = sqlObj.Ping()
	if err != nil {
		sqlObj.Close()
		return nil, fmt.Errorf("connecting to %s database: %w", driver, err)
	}
	return sqlObj, nil
}

// OpenMemory opens a private in-memory SQLite database.
func OpenMemory() (*sql.DB, error) {
	return Open("SQLite", ":memory:")
}

func GetDriverOptions() string {
	result := "The following SQL drivers are available: \n\n"
	for k, v := range GetSortedDrivers() {
		result = result + fmt.Sprintf("  [%v] %v\n", k, v)
	}
	return result
}

func GetSortedDrivers() []string {
	dr := []string{}
	for k := range drivers {
		dr = append(dr, k)
	}
	sort.Strings(dr)
	return dr
}
