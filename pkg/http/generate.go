package http

//go:generate mockgen -source=http.go -destination=mocks/mock_http.go -package=mocks
