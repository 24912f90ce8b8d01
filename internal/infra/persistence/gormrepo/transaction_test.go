package gormrepo

import (
	"context"
	"errors"
	"testing"

	"blog/internal/domain/entity"
	"blog/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitAndRollback(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	err := txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.NewUserRepository().Create(ctx, &entity.User{Username: "kept", Email: "kept@example.com", PasswordHash: "x"})
	})
	require.NoError(t, err)

	_, err = users.FindByUsername(ctx, "kept")
	assert.NoError(t, err)

	errBoom := errors.New("boom")
	err = txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewUserRepository().Create(ctx, &entity.User{Username: "gone", Email: "gone@example.com", PasswordHash: "x"}); err != nil {
			return err
		}

		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	_, err = users.FindByUsername(ctx, "gone")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestTransactionManager_RollbackOnPanic(t *testing.T) {
	db := newTestDB(t)
	txManager := NewTransactionManager(db)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
			_ = f.NewUserRepository().Create(ctx, &entity.User{Username: "panic", Email: "panic@example.com", PasswordHash: "x"})
			panic("boom")
		})
	})

	_, err := NewUserRepository(db).FindByUsername(ctx, "panic")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
