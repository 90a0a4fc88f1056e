package mock

import (
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var once sync.Once
var db *Db

// Db is a shared in-memory SQLite database migrated with the given models.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
	order  []string
}

// NewDb opens the shared database once. Models are keyed by table name and
// cleared in reverse registration order.
func NewDb(tables []string, models map[string]any) *Db {
	once.Do(func() {
		db = open(tables, models)
	})
	return db
}

func open(tables []string, models map[string]any) *Db {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	dbConn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	sqlDB, err := dbConn.DB()
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	newDbMock := &Db{DbConn: dbConn, models: models, order: tables}
	if err := newDbMock.migrate(); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}
	return newDbMock
}

func (d *Db) migrate() error {
	modelList := make([]any, 0, len(d.order))
	for _, table := range d.order {
		model, ok := d.models[table]
		if !ok {
			return fmt.Errorf("no model registered for table %s", table)
		}
		modelList = append(modelList, model)
	}

	if err := d.DbConn.AutoMigrate(modelList...); err != nil {
		return err
	}

	for _, model := range modelList {
		if !d.DbConn.Migrator().HasTable(model) {
			return fmt.Errorf("table for model %T was not created", model)
		}
	}
	return nil
}

// ClearDB deletes every row so each scenario starts empty.
func (d *Db) ClearDB() error {
	for i := len(d.order) - 1; i >= 0; i-- {
		table := d.order[i]
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().
			Delete(d.models[table]).Error
		if err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}
	return nil
}

// GetModel returns the model registered for a table.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
