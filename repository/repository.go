package repository

import (
	"context"
	"errors"

	apperrors "hotel-booking/errors"

	"gorm.io/gorm"
)

// Repository is the gorm backed store. A Repository obtained from Transaction
// is bound to that transaction.
type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Transaction runs fn inside one database transaction. Returning an error from
// fn rolls back every write made through tx.
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}

func (r *Repository) conn(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Page is a 1-based page request.
type Page struct {
	Page    int
	PerPage int
}

func (p Page) offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}

func (p Page) apply(q *gorm.DB) *gorm.DB {
	if p.PerPage <= 0 {
		return q
	}
	return q.Offset(p.offset()).Limit(p.PerPage)
}

func notFound(err error, code apperrors.ErrorCode, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(code, message)
	}
	return err
}
