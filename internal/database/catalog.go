package database

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Catalog is the gateway to the laptop store: it describes the table for the
// SQL generation prompt and executes model-written queries.
type Catalog struct {
	db *gorm.DB
}

func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

// TableInfo renders the laptops table as a CREATE TABLE statement followed
// by a few sample rows, the raw-text schema description embedded in the SQL
// generation prompt.
func (c *Catalog) TableInfo(ctx context.Context) (string, error) {
	columns, err := c.db.WithContext(ctx).Migrator().ColumnTypes(&Laptop{})
	if err != nil {
		return "", fmt.Errorf("unable to describe laptops table: %w", err)
	}

	var b strings.Builder
	b.WriteString("CREATE TABLE laptops (\n")
	for i, column := range columns {
		if i > 0 {
			b.WriteString(",\n")
		}
		fmt.Fprintf(&b, "\t%q %s", column.Name(), column.DatabaseTypeName())
	}
	b.WriteString("\n)\n")

	sample, err := c.sampleRows(ctx, 3)
	if err != nil {
		return "", err
	}
	b.WriteString(sample)

	return b.String(), nil
}

func (c *Catalog) sampleRows(ctx context.Context, limit int) (string, error) {
	rendered, err := c.Run(ctx, fmt.Sprintf("SELECT * FROM laptops LIMIT %d", limit))
	if err != nil {
		return "", fmt.Errorf("unable to sample laptops table: %w", err)
	}
	return fmt.Sprintf("\n/*\n%d rows from laptops table:\n%s\n*/", limit, rendered), nil
}

// Run executes a SQL string and renders the returned rows as a list of
// tuples. No rows (or no result columns) renders as the empty string, which
// is the pipeline's "no data" sentinel; execution errors are returned to the
// caller to turn into an apology.
func (c *Catalog) Run(ctx context.Context, query string) (string, error) {
	rows, err := c.db.WithContext(ctx).Raw(query).Rows()
	if err != nil {
		return "", fmt.Errorf("query execution failed: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return "", fmt.Errorf("unable to read result columns: %w", err)
	}

	var rendered []string
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return "", fmt.Errorf("unable to scan result row: %w", err)
		}

		fields := make([]string, len(values))
		for i, value := range values {
			fields[i] = renderValue(value)
		}
		rendered = append(rendered, "("+strings.Join(fields, ", ")+")")
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("query execution failed: %w", err)
	}

	if len(rendered) == 0 {
		return "", nil
	}
	return "[" + strings.Join(rendered, ", ") + "]", nil
}

func renderValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "NULL"
	case []byte:
		return "'" + string(v) + "'"
	case string:
		return "'" + v + "'"
	default:
		return fmt.Sprintf("%v", v)
	}
}
