package database

import (
	"fmt"

	"github.com/fulldump/recorddb/store"
)

const (
	StatusOpening   = "opening"
	StatusOperating = "operating"
	StatusClosing   = "closing"
)

type Config struct {
	Kinds []KindConfig
}

// KindConfig declares one entity kind: its store name, identifier field and
// default-field table.
type KindConfig struct {
	Name     string         `json:"name"`
	IDField  string         `json:"id_field"`
	Defaults map[string]any `json:"defaults"`
}

type Database struct {
	config *Config
	status string
	Stores map[string]*store.Store
	exit   chan struct{}
}

func NewDatabase(config *Config) *Database {
	if config == nil {
		config = &Config{}
	}
	return &Database{
		config: config,
		status: StatusOpening,
		Stores: map[string]*store.Store{},
		exit:   make(chan struct{}),
	}
}

func (db *Database) GetStatus() string {
	return db.status
}

func (db *Database) CreateStore(name string, options *store.Options) (*store.Store, error) {

	_, exists := db.Stores[name]
	if exists {
		return nil, fmt.Errorf("store '%s' already exists", name)
	}

	if options == nil {
		options = &store.Options{}
	}
	if options.Kind == "" {
		options.Kind = name
	}

	s := store.NewStore(options)
	db.Stores[name] = s

	return s, nil
}

func (db *Database) DropStore(name string) error {

	_, exists := db.Stores[name]
	if !exists {
		return fmt.Errorf("store '%s' not found", name)
	}

	delete(db.Stores, name)

	return nil
}

// Load seeds the registry with the kinds declared in the config.
func (db *Database) Load() error {

	for _, kind := range db.config.Kinds {
		_, err := db.CreateStore(kind.Name, &store.Options{
			Kind:     kind.Name,
			IDField:  kind.IDField,
			Defaults: kind.Defaults,
		})
		if err != nil {
			db.status = StatusClosing
			return fmt.Errorf("load kind '%s': %w", kind.Name, err)
		}
	}

	db.status = StatusOperating

	return nil
}

func (db *Database) Start() error {

	err := db.Load()
	if err != nil {
		return err
	}

	<-db.exit

	return nil
}

func (db *Database) Stop() error {

	defer close(db.exit)

	db.status = StatusClosing

	return nil
}
