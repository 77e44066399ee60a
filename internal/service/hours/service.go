package hours

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	hoursRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/hours"
	directoryClient "github.com/m04kA/SMC-CalendarService/internal/integrations/directoryservice"
	"github.com/m04kA/SMC-CalendarService/internal/service/hours/models"
)

// Service сервис расписания работы точек
// Расписание питает построение сетки календаря и проверку открытости слотов.
type Service struct {
	hoursRepo       HoursRepository
	directoryClient DirectoryServiceClient
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	hoursRepo HoursRepository,
	directoryClient DirectoryServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		hoursRepo:       hoursRepo,
		directoryClient: directoryClient,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetForLocation получает недельное расписание работы точки
// Публичный метод - доступен всем
func (s *Service) GetForLocation(ctx context.Context, businessID, locationID int64) (*models.HoursResponse, error) {
	s.logger.Info("GetForLocation: fetching hours for business=%d, location=%d", businessID, locationID)

	business, err := s.directoryClient.GetBusiness(ctx, businessID)
	if err != nil {
		if errors.Is(err, directoryClient.ErrBusinessNotFound) {
			s.logger.Warn("GetForLocation: business id=%d not found", businessID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("GetForLocation: failed to get business id=%d: %v", businessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	if !business.HasLocation(locationID) {
		s.logger.Warn("GetForLocation: location id=%d not found in business id=%d", locationID, businessID)
		return nil, ErrLocationNotFound
	}

	weekHours, err := s.hoursRepo.GetByLocation(ctx, businessID, locationID)
	if err != nil {
		if errors.Is(err, hoursRepo.ErrHoursNotFound) {
			s.logger.Info("GetForLocation: no hours configured for business=%d, location=%d", businessID, locationID)
			return nil, ErrHoursNotFound
		}
		s.logger.Error("GetForLocation: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetForLocation - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetForLocation: successfully fetched hours for business=%d, location=%d", businessID, locationID)
	return models.FromDomainHours(businessID, locationID, weekHours), nil
}

// Update полностью заменяет недельное расписание точки
// Доступно только менеджерам бизнеса
func (s *Service) Update(ctx context.Context, req *models.UpdateHoursRequest) (*models.HoursResponse, error) {
	s.logger.Info("Update: updating hours for business=%d, location=%d by user=%d",
		req.BusinessID, req.LocationID, req.UserID)

	// 1. Получаем бизнес для проверки прав доступа и точки
	business, err := s.directoryClient.GetBusiness(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, directoryClient.ErrBusinessNotFound) {
			s.logger.Warn("Update: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		s.logger.Error("Update: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	// 2. Проверяем права доступа (только менеджер бизнеса)
	if !business.HasManager(req.UserID) {
		s.logger.Warn("Update: user=%d is not a manager of business=%d", req.UserID, req.BusinessID)
		return nil, ErrAccessDenied
	}

	// 3. Проверяем существование точки
	if !business.HasLocation(req.LocationID) {
		s.logger.Warn("Update: location id=%d not found in business id=%d", req.LocationID, req.BusinessID)
		return nil, ErrLocationNotFound
	}

	// 4. Конвертируем и валидируем расписание
	weekHours, err := req.ToDomainHours()
	if err != nil {
		s.logger.Warn("Update: invalid time format: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := validateWindows(weekHours); err != nil {
		s.logger.Warn("Update: invalid windows: %v", err)
		return nil, err
	}

	// 5. Заменяем расписание в транзакции (delete+insert)
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.hoursRepo.ReplaceForLocation(txCtx, req.BusinessID, req.LocationID, weekHours)
	})
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated hours for business=%d, location=%d", req.BusinessID, req.LocationID)
	return models.FromDomainHours(req.BusinessID, req.LocationID, weekHours), nil
}

// validateWindows проверяет, что в каждом открытом дне open строго раньше close
func validateWindows(h *domain.BusinessHours) error {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		window := h.ForWeekday(wd)
		if window == nil {
			continue
		}
		if !window.Open.IsBefore(window.Close) {
			return fmt.Errorf("%w: %s (%s - %s)", ErrInvalidWindow, wd, window.Open, window.Close)
		}
	}
	return nil
}
