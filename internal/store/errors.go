package store

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound 表示查無紀錄
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate 表示違反唯一約束（如 username 重複註冊）
	ErrDuplicate = errors.New("duplicate record")
)

// uniqueViolation PostgreSQL 唯一約束錯誤碼
const uniqueViolation = "23505"

// mapError 將 pgx 層錯誤轉換為 store 的 error taxonomy
func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicate
	}
	return err
}
