package tmdb

//go:generate mockgen -source=tmdb.go -destination=mocks/mock_tmdb.go -package=mocks
