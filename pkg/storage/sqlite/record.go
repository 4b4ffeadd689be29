package sqlite

import (
	"context"
	"fmt"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/mediasort/mediasort/pkg/storage/sqlite/schema/gen/model"
	"github.com/mediasort/mediasort/pkg/storage/sqlite/schema/gen/table"
)

// UpsertMovieRecord stores a movie projection, keyed by catalog id
func (s *SQLite) UpsertMovieRecord(ctx context.Context, movie model.Movie) error {
	if movie.TmdbID != nil {
		stmt := table.Movie.
			UPDATE(table.Movie.Title, table.Movie.Year, table.Movie.PosterPath).
			MODEL(movie).
			WHERE(table.Movie.TmdbID.EQ(sqlite.Int32(*movie.TmdbID)))

		result, err := s.handleUpdate(ctx, stmt)
		if err != nil {
			return fmt.Errorf("failed to update movie record: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected > 0 {
			return nil
		}
	}

	insert := table.Movie.
		INSERT(table.Movie.MutableColumns.Except(table.Movie.CreatedAt)).
		MODEL(movie)

	if _, err := s.handleInsert(ctx, insert); err != nil {
		return fmt.Errorf("failed to create movie record: %w", err)
	}

	return nil
}

// IncrementTvSeriesEpisodes bumps a series' organized episode count,
// creating the record when it does not exist yet
func (s *SQLite) IncrementTvSeriesEpisodes(ctx context.Context, series model.TvSeries) error {
	if series.TmdbID != nil {
		stmt := table.TvSeries.
			UPDATE().
			SET(table.TvSeries.EpisodeCount.SET(table.TvSeries.EpisodeCount.ADD(sqlite.Int32(1)))).
			WHERE(table.TvSeries.TmdbID.EQ(sqlite.Int32(*series.TmdbID)))

		result, err := s.handleUpdate(ctx, stmt)
		if err != nil {
			return fmt.Errorf("failed to update tv series record: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected > 0 {
			return nil
		}
	}

	series.EpisodeCount = 1
	insert := table.TvSeries.
		INSERT(table.TvSeries.MutableColumns.Except(table.TvSeries.CreatedAt)).
		MODEL(series)

	if _, err := s.handleInsert(ctx, insert); err != nil {
		return fmt.Errorf("failed to create tv series record: %w", err)
	}

	return nil
}

// ListMovieRecords lists stored movie projections
func (s *SQLite) ListMovieRecords(ctx context.Context) ([]*model.Movie, error) {
	stmt := table.Movie.
		SELECT(table.Movie.AllColumns).
		FROM(table.Movie).
		ORDER_BY(table.Movie.Title.ASC())

	movies := make([]*model.Movie, 0)
	err := stmt.QueryContext(ctx, s.db, &movies)
	if err != nil {
		return nil, fmt.Errorf("failed to list movie records: %w", err)
	}

	return movies, nil
}

// ListTvSeriesRecords lists stored series projections
func (s *SQLite) ListTvSeriesRecords(ctx context.Context) ([]*model.TvSeries, error) {
	stmt := table.TvSeries.
		SELECT(table.TvSeries.AllColumns).
		FROM(table.TvSeries).
		ORDER_BY(table.TvSeries.Name.ASC())

	series := make([]*model.TvSeries, 0)
	err := stmt.QueryContext(ctx, s.db, &series)
	if err != nil {
		return nil, fmt.Errorf("failed to list tv series records: %w", err)
	}

	return series, nil
}
