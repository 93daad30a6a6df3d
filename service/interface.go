package service

import (
	"errors"

	"github.com/fulldump/recorddb/store"
)

var ErrorStoreNotFound = errors.New("store not found")
var ErrorStoreAlreadyExists = errors.New("store already exists")

type Servicer interface {
	CreateStore(name string, options *store.Options) (*store.Store, error)
	GetStore(name string) (*store.Store, error)
	ListStores() []*StoreInfo
	DropStore(name string) error
}
