package service

import (
	"github.com/fulldump/recorddb/database"
	"github.com/fulldump/recorddb/store"
	"github.com/fulldump/recorddb/utils"
)

type Service struct {
	db *database.Database
}

// StoreInfo is the API-facing view of a store.
type StoreInfo struct {
	Name     string         `json:"name"`
	Kind     string         `json:"kind"`
	IDField  string         `json:"id_field"`
	Total    int            `json:"total"`
	Defaults map[string]any `json:"defaults,omitempty"`
}

func NewService(db *database.Database) *Service {
	return &Service{
		db: db,
	}
}

func (s *Service) CreateStore(name string, options *store.Options) (*store.Store, error) {

	result, err := s.db.CreateStore(name, options)
	if err != nil {
		return nil, ErrorStoreAlreadyExists
	}

	return result, nil
}

func (s *Service) GetStore(name string) (*store.Store, error) {

	result, exist := s.db.Stores[name]
	if !exist {
		return nil, ErrorStoreNotFound
	}

	return result, nil
}

func (s *Service) ListStores() []*StoreInfo {

	result := []*StoreInfo{}

	for _, name := range utils.GetKeys(s.db.Stores) {
		result = append(result, NewStoreInfo(name, s.db.Stores[name]))
	}

	return result
}

func (s *Service) DropStore(name string) error {

	err := s.db.DropStore(name)
	if err != nil {
		return ErrorStoreNotFound
	}

	return nil
}

func NewStoreInfo(name string, s *store.Store) *StoreInfo {
	return &StoreInfo{
		Name:     name,
		Kind:     s.Kind,
		IDField:  s.IDField,
		Total:    s.Len(),
		Defaults: s.Defaults,
	}
}
