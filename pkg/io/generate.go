package io

//go:generate mockgen -source=api.go -destination=mocks/mock_io.go -package=mocks
