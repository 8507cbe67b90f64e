package postgres

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/frahmantamala/hrms-backend/internal/resource"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Repository is a gorm-backed resource.Repository for one row model.
type Repository[M resource.Model] struct {
	db *gorm.DB
}

func NewRepository[M resource.Model](db *gorm.DB) *Repository[M] {
	return &Repository[M]{db: db}
}

func (r *Repository[M]) Create(ctx context.Context, m *M) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(m).Error; err != nil {
		return classify(err)
	}
	return nil
}

func (r *Repository[M]) GetByID(ctx context.Context, id int64) (*M, error) {
	return r.find(r.db.WithContext(ctx), id)
}

func (r *Repository[M]) List(ctx context.Context, page resource.Page) ([]*M, error) {
	var items []*M
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&items).Error
	if err != nil {
		return nil, classify(err)
	}
	return items, nil
}

// Update locks the row, lets apply mutate it and writes back only the
// columns apply changed.
func (r *Repository[M]) Update(ctx context.Context, id int64, apply func(*M) error) (*M, error) {
	var out *M
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := r.find(tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
		if err != nil {
			return err
		}
		before := *m
		if err := apply(m); err != nil {
			return err
		}

		columns, err := changedColumns(tx, &before, m)
		if err != nil {
			return err
		}
		if len(columns) > 0 {
			if err := tx.Model(m).Omit(clause.Associations).Select(columns).Updates(m).Error; err != nil {
				return classify(err)
			}
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes the row and returns its last stored state.
func (r *Repository[M]) Delete(ctx context.Context, id int64) (*M, error) {
	var out *M
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, err := r.find(tx.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
		if err != nil {
			return err
		}
		if err := tx.Delete(m).Error; err != nil {
			return classify(err)
		}
		out = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repository[M]) find(db *gorm.DB, id int64) (*M, error) {
	m := new(M)
	if err := db.Where("id = ?", id).First(m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, resource.ErrNotFound
		}
		return nil, classify(err)
	}
	return m, nil
}

// changedColumns lists the updatable columns whose values differ between
// before and after.
func changedColumns[M any](tx *gorm.DB, before, after *M) ([]string, error) {
	stmt := &gorm.Statement{DB: tx}
	if err := stmt.Parse(after); err != nil {
		return nil, fmt.Errorf("parse model: %w", err)
	}

	ctx := tx.Statement.Context
	b, a := reflect.ValueOf(before).Elem(), reflect.ValueOf(after).Elem()
	var columns []string
	for _, field := range stmt.Schema.Fields {
		if field.DBName == "" || field.PrimaryKey || !field.Updatable || field.AutoUpdateTime > 0 {
			continue
		}
		old, _ := field.ValueOf(ctx, b)
		cur, _ := field.ValueOf(ctx, a)
		if !reflect.DeepEqual(old, cur) {
			columns = append(columns, field.DBName)
		}
	}
	return columns, nil
}

// classify turns constraint failures into resource sentinels. gorm's
// TranslateError covers both drivers; the pgconn check catches connections
// opened without it.
func classify(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", resource.ErrDuplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", resource.ErrReferenceViolation, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", resource.ErrDuplicate, pgErr.ConstraintName)
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", resource.ErrReferenceViolation, pgErr.ConstraintName)
		}
	}
	return err
}
