package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Conte777/NewsFlow/services/announcement-service/internal/infrastructure/database"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/infrastructure/database/dbtest"
)

type counterRow struct {
	ID    uint `gorm:"primaryKey"`
	Value int
}

func TestTransactor_CommitAndRollback(t *testing.T) {
	db := dbtest.Open(t, &counterRow{})
	tx := database.NewTransactor(db)
	ctx := context.Background()

	err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
		return database.Conn(ctx, db).Create(&counterRow{Value: 1}).Error
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := database.Conn(ctx, db).Create(&counterRow{Value: 2}).Error; err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var count int64
	require.NoError(t, db.Model(&counterRow{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestTransactor_NestedJoinsOuter(t *testing.T) {
	db := dbtest.Open(t, &counterRow{})
	tx := database.NewTransactor(db)

	err := tx.WithinTransaction(context.Background(), func(ctx context.Context) error {
		if err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
			return database.Conn(ctx, db).Create(&counterRow{Value: 7}).Error
		}); err != nil {
			return err
		}
		return errors.New("rollback everything")
	})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&counterRow{}).Count(&count).Error)
	require.Zero(t, count)
}
