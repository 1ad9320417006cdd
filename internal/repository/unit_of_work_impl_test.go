package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestUnitOfWork_TransactionCommits(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUnitOfWork(db)

	mock.ExpectBegin()
	mock.ExpectCommit()

	called := false
	err := uow.Transaction(context.Background(), func(tx *gorm.DB) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_TransactionRollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUnitOfWork(db)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := uow.Transaction(context.Background(), func(tx *gorm.DB) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnitOfWork_BeginFailure(t *testing.T) {
	db, mock := newMockDB(t)
	uow := NewUnitOfWork(db)

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	err := uow.Transaction(context.Background(), func(tx *gorm.DB) error {
		t.Fatal("fn must not run without a transaction")
		return nil
	})
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
