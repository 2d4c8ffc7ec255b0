package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when no record matches the requested id
var ErrNotFound = errors.New("record not found")

// CrudRepository is the generic contract shared by every repository
type CrudRepository[T any, ID comparable] interface {
	// FindAll retrieves every record
	FindAll(ctx context.Context) ([]T, error)
	// FindByID retrieves a record by its primary key
	FindByID(ctx context.Context, id ID) (T, error)
	// Save inserts the record, or updates it when its primary key is set
	Save(ctx context.Context, entity T) (T, error)
	// Delete removes the record with the given primary key
	Delete(ctx context.Context, id ID) error
	// Count returns the number of stored records
	Count(ctx context.Context) (int64, error)
}

// gormRepository implements CrudRepository on top of a gorm connection
type gormRepository[T any, ID comparable] struct {
	db       *gorm.DB
	preloads []string
	order    string
}

func newGormRepository[T any, ID comparable](db *gorm.DB, order string, preloads ...string) *gormRepository[T, ID] {
	return &gormRepository[T, ID]{db: db, order: order, preloads: preloads}
}

// query returns a session bound to ctx with the configured associations preloaded
func (r *gormRepository[T, ID]) query(ctx context.Context) *gorm.DB {
	tx := r.db.WithContext(ctx)
	for _, association := range r.preloads {
		tx = tx.Preload(association)
	}
	return tx
}

func (r *gormRepository[T, ID]) FindAll(ctx context.Context) ([]T, error) {
	var entities []T
	tx := r.query(ctx)
	if r.order != "" {
		tx = tx.Order(r.order)
	}
	if err := tx.Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *gormRepository[T, ID]) FindByID(ctx context.Context, id ID) (T, error) {
	var entity T
	if err := r.query(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity, fmt.Errorf("%w: id %v", ErrNotFound, id)
		}
		return entity, err
	}
	return entity, nil
}

func (r *gormRepository[T, ID]) Save(ctx context.Context, entity T) (T, error) {
	if err := r.db.WithContext(ctx).Save(&entity).Error; err != nil {
		var zero T
		return zero, err
	}
	return entity, nil
}

func (r *gormRepository[T, ID]) Delete(ctx context.Context, id ID) error {
	entity, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}
	// Join rows of many2many associations go with the record
	return r.db.WithContext(ctx).Select(clause.Associations).Delete(&entity).Error
}

func (r *gormRepository[T, ID]) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(new(T)).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
