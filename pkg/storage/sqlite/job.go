package sqlite

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/mediasort/mediasort/pkg/storage"
	"github.com/mediasort/mediasort/pkg/storage/sqlite/schema/gen/model"
	"github.com/mediasort/mediasort/pkg/storage/sqlite/schema/gen/table"
)

// CreateScanJob stores a new scan job
func (s *SQLite) CreateScanJob(ctx context.Context, job model.ScanJob) (int64, error) {
	if job.Status == "" {
		job.Status = string(storage.JobStatusPending)
	}

	stmt := table.ScanJob.
		INSERT(table.ScanJob.MutableColumns.Except(table.ScanJob.StartedAt, table.ScanJob.CompletedAt)).
		MODEL(job)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to create scan job: %w", err)
	}

	return result.LastInsertId()
}

// GetScanJob retrieves a scan job by ID
func (s *SQLite) GetScanJob(ctx context.Context, id int64) (*storage.ScanJob, error) {
	stmt := table.ScanJob.
		SELECT(table.ScanJob.AllColumns).
		FROM(table.ScanJob).
		WHERE(table.ScanJob.ID.EQ(sqlite.Int64(id)))

	job := new(storage.ScanJob)
	err := stmt.QueryContext(ctx, s.db, job)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get scan job: %w", err)
	}

	return job, nil
}

// GetLatestScanJob retrieves the most recently created scan job
func (s *SQLite) GetLatestScanJob(ctx context.Context) (*storage.ScanJob, error) {
	stmt := table.ScanJob.
		SELECT(table.ScanJob.AllColumns).
		FROM(table.ScanJob).
		ORDER_BY(table.ScanJob.ID.DESC()).
		LIMIT(1)

	job := new(storage.ScanJob)
	err := stmt.QueryContext(ctx, s.db, job)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest scan job: %w", err)
	}

	return job, nil
}

// UpdateScanJobProgress writes the counter fields of a running scan job
func (s *SQLite) UpdateScanJobProgress(ctx context.Context, job model.ScanJob) error {
	stmt := table.ScanJob.
		UPDATE(
			table.ScanJob.TotalFiles,
			table.ScanJob.ProcessedFiles,
			table.ScanJob.NewItems,
			table.ScanJob.ErrorsCount,
			table.ScanJob.CurrentFolder,
		).
		MODEL(job).
		WHERE(table.ScanJob.ID.EQ(sqlite.Int32(job.ID)))

	_, err := s.handleUpdate(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update scan job progress: %w", err)
	}

	return nil
}

// UpdateScanJobStatus transitions a scan job, guarding the move
func (s *SQLite) UpdateScanJobStatus(ctx context.Context, id int64, status storage.JobStatus, errorMsg *string) error {
	job, err := s.GetScanJob(ctx, id)
	if err != nil {
		return err
	}

	if err := job.Machine().ToState(status); err != nil {
		return fmt.Errorf("scan job %d: %s -> %s: %w", id, job.Status, status, err)
	}

	stmt := table.ScanJob.
		UPDATE().
		SET(
			table.ScanJob.Status.SET(sqlite.String(string(status))),
			table.ScanJob.Error.SET(nullableString(errorMsg)),
			table.ScanJob.CompletedAt.SET(completionTimestamp(status)),
		).
		WHERE(table.ScanJob.ID.EQ(sqlite.Int64(id)))

	_, err = s.handleUpdate(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update scan job status: %w", err)
	}

	return nil
}

// CreateOrganizeJob stores a new organize job
func (s *SQLite) CreateOrganizeJob(ctx context.Context, job model.OrganizeJob) (int64, error) {
	if job.Status == "" {
		job.Status = string(storage.JobStatusPending)
	}

	stmt := table.OrganizeJob.
		INSERT(table.OrganizeJob.MutableColumns.Except(table.OrganizeJob.StartedAt, table.OrganizeJob.CompletedAt)).
		MODEL(job)

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to create organize job: %w", err)
	}

	return result.LastInsertId()
}

// GetOrganizeJob retrieves an organize job by ID
func (s *SQLite) GetOrganizeJob(ctx context.Context, id int64) (*storage.OrganizeJob, error) {
	stmt := table.OrganizeJob.
		SELECT(table.OrganizeJob.AllColumns).
		FROM(table.OrganizeJob).
		WHERE(table.OrganizeJob.ID.EQ(sqlite.Int64(id)))

	job := new(storage.OrganizeJob)
	err := stmt.QueryContext(ctx, s.db, job)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organize job: %w", err)
	}

	return job, nil
}

// GetLatestOrganizeJob retrieves the most recently created organize job
func (s *SQLite) GetLatestOrganizeJob(ctx context.Context) (*storage.OrganizeJob, error) {
	stmt := table.OrganizeJob.
		SELECT(table.OrganizeJob.AllColumns).
		FROM(table.OrganizeJob).
		ORDER_BY(table.OrganizeJob.ID.DESC()).
		LIMIT(1)

	job := new(storage.OrganizeJob)
	err := stmt.QueryContext(ctx, s.db, job)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest organize job: %w", err)
	}

	return job, nil
}

// UpdateOrganizeJobProgress writes the counter fields of a running organize job
func (s *SQLite) UpdateOrganizeJobProgress(ctx context.Context, job model.OrganizeJob) error {
	stmt := table.OrganizeJob.
		UPDATE(
			table.OrganizeJob.TotalFiles,
			table.OrganizeJob.ProcessedFiles,
			table.OrganizeJob.SuccessCount,
			table.OrganizeJob.FailedCount,
			table.OrganizeJob.CurrentFile,
		).
		MODEL(job).
		WHERE(table.OrganizeJob.ID.EQ(sqlite.Int32(job.ID)))

	_, err := s.handleUpdate(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update organize job progress: %w", err)
	}

	return nil
}

// UpdateOrganizeJobStatus transitions an organize job, guarding the move
func (s *SQLite) UpdateOrganizeJobStatus(ctx context.Context, id int64, status storage.JobStatus, errorMsg *string) error {
	job, err := s.GetOrganizeJob(ctx, id)
	if err != nil {
		return err
	}

	if err := job.Machine().ToState(status); err != nil {
		return fmt.Errorf("organize job %d: %s -> %s: %w", id, job.Status, status, err)
	}

	stmt := table.OrganizeJob.
		UPDATE().
		SET(
			table.OrganizeJob.Status.SET(sqlite.String(string(status))),
			table.OrganizeJob.Error.SET(nullableString(errorMsg)),
			table.OrganizeJob.CompletedAt.SET(completionTimestamp(status)),
		).
		WHERE(table.OrganizeJob.ID.EQ(sqlite.Int64(id)))

	_, err = s.handleUpdate(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update organize job status: %w", err)
	}

	return nil
}

func nullableString(s *string) sqlite.StringExpression {
	if s == nil {
		return sqlite.StringExp(sqlite.NULL)
	}
	return sqlite.String(*s)
}

// completionTimestamp stamps terminal transitions and leaves running jobs open
func completionTimestamp(status storage.JobStatus) sqlite.TimestampExpression {
	if status == storage.JobStatusCompleted || status == storage.JobStatusFailed {
		return sqlite.TimestampExp(sqlite.String(time.Now().UTC().Format(timestampFormat)))
	}
	return sqlite.TimestampExp(sqlite.NULL)
}
