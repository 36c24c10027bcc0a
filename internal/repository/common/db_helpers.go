package common

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

// Psql построитель запросов с плейсхолдерами $1, $2 для PostgreSQL.
var Psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Select выполняет SELECT из построителя и сканирует строки в dest.
func Select[T any](ctx context.Context, db sqlx.QueryerContext, builder sq.SelectBuilder) ([]T, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows := make([]T, 0)
	if err := sqlx.SelectContext(ctx, db, &rows, query, args...); err != nil {
		return nil, err
	}
	return rows, nil
}

// GetOne выполняет запрос, возвращающий одну строку, и подменяет sql.ErrNoRows на notFoundErr.
func GetOne[T any](ctx context.Context, db sqlx.QueryerContext, builder sq.Sqlizer, notFoundErr error) (*T, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var entity T
	if err := sqlx.GetContext(ctx, db, &entity, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFoundErr
		}
		return nil, err
	}
	return &entity, nil
}
