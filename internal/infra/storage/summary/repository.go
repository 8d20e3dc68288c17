package summary

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/dbmetrics"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/psqlbuilder"
)

// Repository репозиторий итогов разговоров (записываются один раз на сессию)
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория итогов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Insert сохраняет итог разговора
func (r *Repository) Insert(ctx context.Context, s *domain.ConversationSummary) (*domain.ConversationSummary, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	mentioned, err := json.Marshal(s.AppointmentsMentioned)
	if err != nil {
		return nil, fmt.Errorf("%w: Insert - appointments: %v", ErrMarshal, err)
	}
	costs, err := json.Marshal(s.CostBreakdown)
	if err != nil {
		return nil, fmt.Errorf("%w: Insert - cost breakdown: %v", ErrMarshal, err)
	}

	if s.ID == "" {
		s.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("conversation_summaries").
		Columns(
			"id",
			"session_id",
			"summary",
			"contact_number",
			"appointments_mentioned",
			"cost_breakdown",
		).
		Values(
			s.ID,
			s.SessionID,
			s.SummaryText,
			s.ContactNumber,
			string(mentioned),
			string(costs),
		).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Insert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&createdAt)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return nil, ErrSummaryExists
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Insert - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	return s, nil
}
