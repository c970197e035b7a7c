package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/gestao-api/internal/domain"
)

func TestWhereBuilder(t *testing.T) {
	var w whereBuilder
	w.addIf("status = ?", "Ativo")
	w.addIf("type = ?", "")
	w.add("city ILIKE ?", "%recife%")

	assert.Equal(t, " WHERE status = $1 AND city ILIKE $2", w.sql())
	assert.Equal(t, " LIMIT $3 OFFSET $4", w.page(10, 20))
	assert.Equal(t, []any{"Ativo", "%recife%", 10, 20}, w.args)
}

func TestWhereBuilder_EmptyAndDefaultPage(t *testing.T) {
	var w whereBuilder
	assert.Equal(t, "", w.sql())
	assert.Equal(t, " LIMIT $1 OFFSET $2", w.page(0, -5))
	assert.Equal(t, []any{50, 0}, w.args)
}

func TestWriteErr(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505"}
	fk := &pgconn.PgError{Code: "23503"}

	assert.ErrorIs(t, writeErr("x.Create", unique), domain.ErrDuplicate)
	assert.ErrorIs(t, writeErr("x.Create", fmt.Errorf("wrapped: %w", fk)), domain.ErrConflict)

	other := errors.New("connection reset")
	err := writeErr("x.Create", other)
	assert.ErrorIs(t, err, other)
	assert.Contains(t, err.Error(), "x.Create")
}

func TestAffectedOne(t *testing.T) {
	assert.ErrorIs(t, affectedOne("x.Update", pgconn.NewCommandTag("UPDATE 0"), nil), domain.ErrNotFound)
	assert.NoError(t, affectedOne("x.Update", pgconn.NewCommandTag("UPDATE 1"), nil))
	assert.ErrorIs(t, affectedOne("x.Delete", pgconn.CommandTag{}, &pgconn.PgError{Code: "23503"}), domain.ErrConflict)
}

func TestIsNoRow(t *testing.T) {
	badUUID := &pgconn.PgError{Code: "22P02", Message: `invalid input syntax for type uuid: "abc"`}

	assert.True(t, isNoRow(pgx.ErrNoRows))
	assert.True(t, isNoRow(fmt.Errorf("scan: %w", badUUID)))
	assert.False(t, isNoRow(errors.New("connection reset")))
}

func TestWriteErr_InvalidText(t *testing.T) {
	badUUID := &pgconn.PgError{Code: "22P02"}

	assert.ErrorIs(t, writeErr("order.Create", badUUID), domain.ErrInvalidInput)
	assert.ErrorIs(t, affectedOne("order.Delete", pgconn.CommandTag{}, badUUID), domain.ErrInvalidInput)
}
