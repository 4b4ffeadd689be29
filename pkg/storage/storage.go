package storage

import (
	"context"
	"errors"

	"github.com/mediasort/mediasort/pkg/machine"
	"github.com/mediasort/mediasort/pkg/storage/sqlite/schema/gen/model"
)

var ErrNotFound = errors.New("not found in storage")

// ItemStatus is the lifecycle state of a media item.
type ItemStatus string

const (
	ItemStatusPending   ItemStatus = "pending"
	ItemStatusOrganized ItemStatus = "organized"
	ItemStatusSkipped   ItemStatus = "skipped"
	ItemStatusError     ItemStatus = "error"
)

// JobStatus is the lifecycle state of a scan or organize job.
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// MediaItem is a stored item with its transition guard.
type MediaItem struct {
	model.MediaItem
}

func (m MediaItem) Machine() *machine.StateMachine[ItemStatus] {
	return machine.New(ItemStatus(m.Status),
		machine.From(ItemStatusPending).To(ItemStatusOrganized, ItemStatusSkipped, ItemStatusError),
		machine.From(ItemStatusOrganized).To(ItemStatusPending),
		machine.From(ItemStatusError).To(ItemStatusPending),
		machine.From(ItemStatusSkipped).To(ItemStatusPending),
	)
}

// ScanJob is a stored scan job with its transition guard.
type ScanJob struct {
	model.ScanJob
}

func (j ScanJob) Machine() *machine.StateMachine[JobStatus] {
	return jobMachine(JobStatus(j.Status))
}

// OrganizeJob is a stored organize job with its transition guard.
type OrganizeJob struct {
	model.OrganizeJob
}

func (j OrganizeJob) Machine() *machine.StateMachine[JobStatus] {
	return jobMachine(JobStatus(j.Status))
}

func jobMachine(current JobStatus) *machine.StateMachine[JobStatus] {
	return machine.New(current,
		machine.From(JobStatusPending).To(JobStatusRunning),
		machine.From(JobStatusRunning).To(JobStatusCompleted, JobStatusFailed),
	)
}

// MediaItemFilter narrows item listings. Zero values mean no constraint.
type MediaItemFilter struct {
	DetectedType    *string
	Status          *ItemStatus
	Search          *string
	ConfidenceBelow *int32
	DuplicatesOnly  bool
	Limit           int
	Offset          int
}

// Stats is the aggregate view of the item set.
type Stats struct {
	Total      int `json:"total"`
	Organized  int `json:"organized"`
	Pending    int `json:"pending"`
	Duplicates int `json:"duplicates"`
	Errors     int `json:"errors"`
	TVShows    int `json:"tvShows"`
	Movies     int `json:"movies"`
	TotalBytes int `json:"totalBytes"`
}

type Storage interface {
	Init(ctx context.Context) error
	MediaItemStorage
	SettingsStorage
	ScanJobStorage
	OrganizeJobStorage
	RecordStorage
	OrganizationLogStorage
	StatsStorage
}

type MediaItemStorage interface {
	CreateMediaItem(ctx context.Context, item model.MediaItem) (int64, error)
	GetMediaItem(ctx context.Context, id int64) (*MediaItem, error)
	GetMediaItemByPath(ctx context.Context, dir, filename string) (*MediaItem, error)
	ListMediaItems(ctx context.Context, filter MediaItemFilter) ([]*MediaItem, error)
	// ListPrimaryItems returns items with no duplicate pointer for a detected
	// type, in insertion order.
	ListPrimaryItems(ctx context.Context, detectedType string) ([]*MediaItem, error)
	UpdateMediaItem(ctx context.Context, item model.MediaItem) error
	UpdateMediaItemStatus(ctx context.Context, id int64, status ItemStatus, destinationPath *string) error
	UpdateMediaItemFileSize(ctx context.Context, id int64, size int64) error
	DeleteMediaItem(ctx context.Context, id int64) error
}

type SettingsStorage interface {
	GetSettings(ctx context.Context) (*model.Settings, error)
	UpdateSettings(ctx context.Context, settings model.Settings) error
}

type ScanJobStorage interface {
	CreateScanJob(ctx context.Context, job model.ScanJob) (int64, error)
	GetScanJob(ctx context.Context, id int64) (*ScanJob, error)
	GetLatestScanJob(ctx context.Context) (*ScanJob, error)
	UpdateScanJobProgress(ctx context.Context, job model.ScanJob) error
	UpdateScanJobStatus(ctx context.Context, id int64, status JobStatus, errorMsg *string) error
}

type OrganizeJobStorage interface {
	CreateOrganizeJob(ctx context.Context, job model.OrganizeJob) (int64, error)
	GetOrganizeJob(ctx context.Context, id int64) (*OrganizeJob, error)
	GetLatestOrganizeJob(ctx context.Context) (*OrganizeJob, error)
	UpdateOrganizeJobProgress(ctx context.Context, job model.OrganizeJob) error
	UpdateOrganizeJobStatus(ctx context.Context, id int64, status JobStatus, errorMsg *string) error
}

type RecordStorage interface {
	UpsertMovieRecord(ctx context.Context, movie model.Movie) error
	// IncrementTvSeriesEpisodes bumps the episode count of a series record,
	// creating the record when it does not exist yet.
	IncrementTvSeriesEpisodes(ctx context.Context, series model.TvSeries) error
	ListMovieRecords(ctx context.Context) ([]*model.Movie, error)
	ListTvSeriesRecords(ctx context.Context) ([]*model.TvSeries, error)
}

type OrganizationLogStorage interface {
	CreateOrganizationLog(ctx context.Context, entry model.OrganizationLog) (int64, error)
	ListOrganizationLogs(ctx context.Context, limit int) ([]*model.OrganizationLog, error)
}

type StatsStorage interface {
	GetStats(ctx context.Context) (Stats, error)
}
