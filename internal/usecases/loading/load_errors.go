package loading

import "errors"

var (
	ErrDataDirNotFound = errors.New("data directory not found")
	ErrInvalidFile     = errors.New("invalid data file")
	ErrSchemaMigration = errors.New("error creating database schema")
	ErrInsertRecords   = errors.New("error inserting records")
)
