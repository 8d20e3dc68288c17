package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/psqlbuilder"
)

// Repository репозиторий профилей абонентов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория профилей
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Find получает профиль по номеру телефона
func (r *Repository) Find(ctx context.Context, contact string) (*domain.UserProfile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("contact_number", "name", "email").
		From("user_profiles").
		Where(squirrel.Eq{"contact_number": contact}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Find - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.UserProfile
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ContactNumber, &p.Name, &p.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Find - scan profile: %v", ErrScanRow, err)
	}

	return &p, nil
}

// Insert создает профиль, если его еще нет
// Существующий профиль не перезаписывается; возвращает true, если профиль создан
func (r *Repository) Insert(ctx context.Context, p *domain.UserProfile) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("user_profiles").
		Columns("contact_number", "name", "email").
		Values(p.ContactNumber, p.Name, p.Email).
		Suffix("ON CONFLICT (contact_number) DO NOTHING").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Insert - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}
