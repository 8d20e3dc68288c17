package identify_user

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
	profileRepo "github.com/m04kA/SMC-AppointmentAssistant/internal/infra/storage/profile"
	"github.com/m04kA/SMC-AppointmentAssistant/pkg/phone"
)

// UseCase use case для идентификации абонента по номеру телефона
type UseCase struct {
	profileRepo ProfileRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(profileRepo ProfileRepository, logger Logger) *UseCase {
	return &UseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Execute нормализует номер и ищет профиль абонента
// Отсутствие профиля не ошибка: абонент помечается как новый
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("IdentifyUser: session=%s", req.SessionID)

	if err := phone.Validate(req.PhoneNumber); err != nil {
		uc.logger.Warn("IdentifyUser: session=%s invalid phone: %v", req.SessionID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidPhone, err)
	}
	contact := phone.Normalize(req.PhoneNumber)

	profile, err := uc.profileRepo.Find(ctx, contact)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			uc.logger.Info("IdentifyUser: session=%s new caller %s", req.SessionID, contact)
			return &Response{
				Caller: domain.Caller{ContactNumber: contact, IsNew: true},
			}, nil
		}
		uc.logger.Error("IdentifyUser: failed to find profile %s: %v", contact, err)
		return nil, fmt.Errorf("%w: failed to find profile: %v", ErrInternal, err)
	}

	uc.logger.Info("IdentifyUser: session=%s returning caller %s", req.SessionID, contact)
	return &Response{
		Caller:  domain.CallerFromProfile(profile),
		Profile: profile,
	}, nil
}
