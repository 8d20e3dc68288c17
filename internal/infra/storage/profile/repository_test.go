package profile

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/ptr"
)

func TestRepository_Find(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT contact_number, name, email FROM user_profiles WHERE contact_number = \$1`).
		WithArgs("15551234567").
		WillReturnRows(sqlmock.NewRows([]string{"contact_number", "name", "email"}).
			AddRow("15551234567", "Alice", nil))

	p, err := NewRepository(db).Find(context.Background(), "15551234567")

	require.NoError(t, err)
	require.NotNil(t, p.Name)
	assert.Equal(t, "Alice", *p.Name)
	assert.Nil(t, p.Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Find_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM user_profiles`).
		WillReturnRows(sqlmock.NewRows([]string{"contact_number", "name", "email"}))

	_, err = NewRepository(db).Find(context.Background(), "15550000000")

	assert.ErrorIs(t, err, ErrProfileNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Insert_DoesNotOverwrite(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectExec(`INSERT INTO user_profiles .* ON CONFLICT \(contact_number\) DO NOTHING`).
		WithArgs("15551234567", "Alice", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO user_profiles`).
		WithArgs("15551234567", "Bob", nil).
		WillReturnResult(sqlmock.NewResult(0, 0))

	created, err := repo.Insert(context.Background(), &domain.UserProfile{ContactNumber: "15551234567", Name: ptr.Ptr("Alice")})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Insert(context.Background(), &domain.UserProfile{ContactNumber: "15551234567", Name: ptr.Ptr("Bob")})
	require.NoError(t, err)
	assert.False(t, created)

	assert.NoError(t, mock.ExpectationsWereMet())
}
