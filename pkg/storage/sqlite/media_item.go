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

// CreateMediaItem stores a new media item
func (s *SQLite) CreateMediaItem(ctx context.Context, item model.MediaItem) (int64, error) {
	stmt := table.MediaItem.
		INSERT(table.MediaItem.MutableColumns.Except(table.MediaItem.CreatedAt)).
		MODEL(item)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to create media item: %w", err)
	}

	return result.LastInsertId()
}

// GetMediaItem retrieves a media item by ID
func (s *SQLite) GetMediaItem(ctx context.Context, id int64) (*storage.MediaItem, error) {
	stmt := table.MediaItem.
		SELECT(table.MediaItem.AllColumns).
		FROM(table.MediaItem).
		WHERE(table.MediaItem.ID.EQ(sqlite.Int64(id)))

	item := new(storage.MediaItem)
	err := stmt.QueryContext(ctx, s.db, item)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get media item: %w", err)
	}

	return item, nil
}

// GetMediaItemByPath retrieves a media item by its source directory and filename
func (s *SQLite) GetMediaItemByPath(ctx context.Context, dir, filename string) (*storage.MediaItem, error) {
	stmt := table.MediaItem.
		SELECT(table.MediaItem.AllColumns).
		FROM(table.MediaItem).
		WHERE(
			table.MediaItem.OriginalPath.EQ(sqlite.String(dir)).
				AND(table.MediaItem.OriginalFilename.EQ(sqlite.String(filename))),
		)

	item := new(storage.MediaItem)
	err := stmt.QueryContext(ctx, s.db, item)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get media item by path: %w", err)
	}

	return item, nil
}

// ListMediaItems lists media items matching the filter, newest first
func (s *SQLite) ListMediaItems(ctx context.Context, filter storage.MediaItemFilter) ([]*storage.MediaItem, error) {
	conditions := []sqlite.BoolExpression{}

	if filter.DetectedType != nil {
		conditions = append(conditions, table.MediaItem.DetectedType.EQ(sqlite.String(*filter.DetectedType)))
	}
	if filter.Status != nil {
		conditions = append(conditions, table.MediaItem.Status.EQ(sqlite.String(string(*filter.Status))))
	}
	if filter.Search != nil && *filter.Search != "" {
		pattern := sqlite.String("%" + *filter.Search + "%")
		conditions = append(conditions,
			table.MediaItem.CleanedName.LIKE(pattern).
				OR(table.MediaItem.DetectedName.LIKE(pattern)).
				OR(table.MediaItem.OriginalFilename.LIKE(pattern)),
		)
	}
	if filter.ConfidenceBelow != nil {
		conditions = append(conditions, table.MediaItem.Confidence.LT(sqlite.Int32(*filter.ConfidenceBelow)))
	}
	if filter.DuplicatesOnly {
		conditions = append(conditions, table.MediaItem.DuplicateOf.IS_NOT_NULL())
	}

	where := sqlite.Bool(true)
	for _, c := range conditions {
		where = where.AND(c)
	}

	stmt := table.MediaItem.
		SELECT(table.MediaItem.AllColumns).
		FROM(table.MediaItem).
		WHERE(where).
		ORDER_BY(table.MediaItem.CreatedAt.DESC(), table.MediaItem.ID.DESC())

	if filter.Limit > 0 {
		stmt = stmt.LIMIT(int64(filter.Limit)).OFFSET(int64(filter.Offset))
	}

	items := make([]*storage.MediaItem, 0)
	err := stmt.QueryContext(ctx, s.db, &items)
	if err != nil {
		return nil, fmt.Errorf("failed to list media items: %w", err)
	}

	return items, nil
}

// ListPrimaryItems lists duplicate-group primaries of a detected type in insertion order
func (s *SQLite) ListPrimaryItems(ctx context.Context, detectedType string) ([]*storage.MediaItem, error) {
	stmt := table.MediaItem.
		SELECT(table.MediaItem.AllColumns).
		FROM(table.MediaItem).
		WHERE(
			table.MediaItem.DuplicateOf.IS_NULL().
				AND(table.MediaItem.DetectedType.EQ(sqlite.String(detectedType))),
		).
		ORDER_BY(table.MediaItem.ID.ASC())

	items := make([]*storage.MediaItem, 0)
	err := stmt.QueryContext(ctx, s.db, &items)
	if err != nil {
		return nil, fmt.Errorf("failed to list primary items: %w", err)
	}

	return items, nil
}

// UpdateMediaItem updates every mutable column of an item
func (s *SQLite) UpdateMediaItem(ctx context.Context, item model.MediaItem) error {
	stmt := table.MediaItem.
		UPDATE(table.MediaItem.MutableColumns.Except(table.MediaItem.CreatedAt)).
		MODEL(item).
		WHERE(table.MediaItem.ID.EQ(sqlite.Int32(item.ID)))

	_, err := s.handleUpdate(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update media item: %w", err)
	}

	return nil
}

// UpdateMediaItemStatus transitions an item's status, guarding the move
func (s *SQLite) UpdateMediaItemStatus(ctx context.Context, id int64, status storage.ItemStatus, destinationPath *string) error {
	item, err := s.GetMediaItem(ctx, id)
	if err != nil {
		return err
	}

	if err := item.Machine().ToState(status); err != nil {
		return fmt.Errorf("media item %d: %s -> %s: %w", id, item.Status, status, err)
	}

	setClauses := []any{
		table.MediaItem.Status.SET(sqlite.String(string(status))),
	}
	if destinationPath != nil {
		setClauses = append(setClauses, table.MediaItem.DestinationPath.SET(sqlite.String(*destinationPath)))
	} else {
		setClauses = append(setClauses, table.MediaItem.DestinationPath.SET(sqlite.StringExp(sqlite.NULL)))
	}

	stmt := table.MediaItem.
		UPDATE().
		SET(setClauses[0], setClauses[1:]...).
		WHERE(table.MediaItem.ID.EQ(sqlite.Int64(id)))

	_, err = s.handleUpdate(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update media item status: %w", err)
	}

	return nil
}

// UpdateMediaItemFileSize refreshes only the observed size of an item
func (s *SQLite) UpdateMediaItemFileSize(ctx context.Context, id int64, size int64) error {
	stmt := table.MediaItem.
		UPDATE().
		SET(table.MediaItem.FileSize.SET(sqlite.Int64(size))).
		WHERE(table.MediaItem.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleUpdate(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update media item file size: %w", err)
	}

	return nil
}

// DeleteMediaItem removes an item by ID
func (s *SQLite) DeleteMediaItem(ctx context.Context, id int64) error {
	stmt := table.MediaItem.
		DELETE().
		WHERE(table.MediaItem.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to delete media item: %w", err)
	}

	return nil
}
