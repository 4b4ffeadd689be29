package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/mediasort/mediasort/pkg/storage"
	"github.com/mediasort/mediasort/pkg/storage/sqlite/schema/gen/model"
	"github.com/mediasort/mediasort/pkg/storage/sqlite/schema/gen/table"
)

const settingsRowID = 1

// GetSettings retrieves the singleton settings row
func (s *SQLite) GetSettings(ctx context.Context) (*model.Settings, error) {
	stmt := table.Settings.
		SELECT(table.Settings.AllColumns).
		FROM(table.Settings).
		WHERE(table.Settings.ID.EQ(sqlite.Int(settingsRowID)))

	settings := new(model.Settings)
	err := stmt.QueryContext(ctx, s.db, settings)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return settings, nil
}

// UpdateSettings writes the singleton settings row, creating it when absent
func (s *SQLite) UpdateSettings(ctx context.Context, settings model.Settings) error {
	settings.ID = settingsRowID

	stmt := table.Settings.
		UPDATE(table.Settings.MutableColumns).
		MODEL(settings).
		WHERE(table.Settings.ID.EQ(sqlite.Int(settingsRowID)))

	result, err := s.handleUpdate(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	insert := table.Settings.
		INSERT(table.Settings.AllColumns).
		MODEL(settings)

	_, err = s.handleInsert(ctx, insert)
	if err != nil {
		return fmt.Errorf("failed to create settings: %w", err)
	}

	return nil
}
