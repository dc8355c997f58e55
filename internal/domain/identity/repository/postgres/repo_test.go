package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/entities"
	domainerrors "github.com/Conte777/NewsFlow/services/announcement-service/internal/domain/identity/errors"
	"github.com/Conte777/NewsFlow/services/announcement-service/internal/infrastructure/database/dbtest"
)

func TestRepositories(t *testing.T) {
	db := dbtest.Open(t, &entities.User{}, &entities.Organization{}, &entities.Permission{})
	ctx := context.Background()

	user := entities.User{PID: 730000001, Onyen: "rameses", Email: "rameses@unc.edu", FirstName: "Rameses"}
	require.NoError(t, db.Create(&user).Error)
	org := entities.Organization{Name: "CS+SG", Slug: "cssg", Logo: "https://cdn/logo.png"}
	require.NoError(t, db.Create(&org).Error)
	require.NoError(t, db.Create(&[]entities.Permission{
		{UserID: user.ID, Action: "announcement.*", Resource: "announcement"},
		{UserID: user.ID + 1, Action: "*", Resource: "*"},
	}).Error)

	users := NewUserRepository(db)
	got, err := users.GetByID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, "rameses", got.Onyen)

	_, err = users.GetByID(ctx, 999)
	require.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	orgs := NewOrganizationRepository(db)
	gotOrg, err := orgs.GetByID(ctx, org.ID)
	require.NoError(t, err)
	require.Equal(t, "cssg", gotOrg.Slug)

	_, err = orgs.GetByID(ctx, 999)
	require.ErrorIs(t, err, domainerrors.ErrOrganizationNotFound)

	grants, err := NewPermissionRepository(db).ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, grants, 1)
	require.Equal(t, "announcement.*", grants[0].Action)
}
