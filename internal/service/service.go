package service

import (
	"github.com/ledgerview/dashboard-server/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Category    *CategoryService
	Tag         *TagService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Transaction: NewTransactionService(store),
		Category:    NewCategoryService(store),
		Tag:         NewTagService(store),
	}
}
