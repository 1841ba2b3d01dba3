package repository

import "marks_api/internal/storage"

type Repositories struct {
	Record RecordRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	return &Repositories{
		Record: NewRecordRepository(db),
	}
}

func NewFileRepositories(path string) *Repositories {
	return &Repositories{
		Record: NewFileRecordRepository(path),
	}
}
