package service

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/univista/ums-api/internal/models"
	appErrors "github.com/univista/ums-api/pkg/errors"
)

type mockAdminRepo struct {
	admins  map[string]*models.AdminDetail
	updated *models.Admin
}

func (m *mockAdminRepo) List(ctx context.Context, filter models.AdminFilter) ([]models.AdminDetail, int, error) {
	out := make([]models.AdminDetail, 0, len(m.admins))
	for _, a := range m.admins {
		out = append(out, *a)
	}
	return out, len(out), nil
}

func (m *mockAdminRepo) FindByBusinessID(ctx context.Context, adminID string) (*models.AdminDetail, error) {
	a, ok := m.admins[adminID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *a
	return &copied, nil
}

func (m *mockAdminRepo) Update(ctx context.Context, admin *models.Admin) error {
	m.updated = admin
	if existing, ok := m.admins[admin.AdminID]; ok {
		existing.Admin = *admin
	}
	return nil
}

func (m *mockAdminRepo) Delete(ctx context.Context, adminID string) (*models.Admin, error) {
	a, ok := m.admins[adminID]
	if !ok {
		return nil, sql.ErrNoRows
	}
	delete(m.admins, adminID)
	return &a.Admin, nil
}

func seededAdmin() *models.AdminDetail {
	return &models.AdminDetail{
		Admin: models.Admin{
			ID:          "admin-uuid",
			AdminID:     "A-00001",
			Name:        models.PersonName{FirstName: "Radia", MiddleName: "J", LastName: "Perlman"},
			Gender:      "female",
			Email:       "radia@example.com",
			ContactNo:   "01700000004",
			Designation: "Registrar",
		},
	}
}

func newAdminFixture() (*AdminService, *mockAdminRepo) {
	repo := &mockAdminRepo{admins: map[string]*models.AdminDetail{
		"A-00001": seededAdmin(),
	}}
	return NewAdminService(repo, nil, nil), repo
}

func TestAdminServiceUpdateMergesName(t *testing.T) {
	svc, repo := newAdminFixture()

	first := "Ray"
	updated, err := svc.Update(context.Background(), "A-00001", models.AdminUpdate{
		Name: &models.PersonNameUpdate{FirstName: &first},
	})
	require.NoError(t, err)
	require.NotNil(t, repo.updated)

	// Siblings of the changed field keep their stored values.
	assert.Equal(t, "Ray", updated.Name.FirstName)
	assert.Equal(t, "J", updated.Name.MiddleName)
	assert.Equal(t, "Perlman", updated.Name.LastName)
	assert.Equal(t, "Registrar", updated.Designation)
}

func TestAdminServiceUpdateMissing(t *testing.T) {
	svc, repo := newAdminFixture()

	email := "new@example.com"
	_, err := svc.Update(context.Background(), "A-99999", models.AdminUpdate{Email: &email})
	require.Error(t, err)
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Nil(t, repo.updated)
}

func TestAdminServiceDelete(t *testing.T) {
	svc, _ := newAdminFixture()

	admin, err := svc.Delete(context.Background(), "A-00001")
	require.NoError(t, err)
	assert.Equal(t, "A-00001", admin.AdminID)
}
