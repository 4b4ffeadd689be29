package sqlite

import (
	"context"
	"fmt"

	"github.com/mediasort/mediasort/pkg/storage/sqlite/schema/gen/model"
	"github.com/mediasort/mediasort/pkg/storage/sqlite/schema/gen/table"
)

// CreateOrganizationLog appends an audit row
func (s *SQLite) CreateOrganizationLog(ctx context.Context, entry model.OrganizationLog) (int64, error) {
	stmt := table.OrganizationLog.
		INSERT(table.OrganizationLog.MutableColumns.Except(table.OrganizationLog.CreatedAt)).
		MODEL(entry)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to create organization log: %w", err)
	}

	return result.LastInsertId()
}

// ListOrganizationLogs lists audit rows, newest first
func (s *SQLite) ListOrganizationLogs(ctx context.Context, limit int) ([]*model.OrganizationLog, error) {
	stmt := table.OrganizationLog.
		SELECT(table.OrganizationLog.AllColumns).
		FROM(table.OrganizationLog).
		ORDER_BY(table.OrganizationLog.ID.DESC())

	if limit > 0 {
		stmt = stmt.LIMIT(int64(limit))
	}

	logs := make([]*model.OrganizationLog, 0)
	err := stmt.QueryContext(ctx, s.db, &logs)
	if err != nil {
		return nil, fmt.Errorf("failed to list organization logs: %w", err)
	}

	return logs, nil
}
