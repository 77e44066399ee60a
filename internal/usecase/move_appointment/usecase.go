package move_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	apptRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/appointment"
	hoursRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/hours"
	"github.com/m04kA/SMC-CalendarService/internal/integrations/notifyservice"
)

// UseCase use case для переноса записи на новый слот
type UseCase struct {
	appointmentRepo AppointmentRepository
	hoursRepo       HoursRepository
	notifyClient    NotifyServiceClient
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	hoursRepo HoursRepository,
	notifyClient NotifyServiceClient,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		hoursRepo:       hoursRepo,
		notifyClient:    notifyClient,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute выполняет перенос записи.
// Использует сериализуемую транзакцию: проверка конфликтов и запись нового
// слота должны быть атомарны, иначе два параллельных переноса могут пройти
// проверку по одному и тому же снимку расписания.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("MoveAppointment: user=%d, appointment=%d, newDate=%s, newTime=%s",
		req.UserID, req.AppointmentID, req.NewDate.Format(domain.DateFormat), req.NewStartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("MoveAppointment: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем запись с блокировкой строки (FOR UPDATE)
		appointment, err := uc.appointmentRepo.GetByID(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("MoveAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("MoveAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 2.2. Отменённые записи не переносятся
		if !appointment.CanBeMoved() {
			uc.logger.Warn("MoveAppointment: appointment id=%d is cancelled", req.AppointmentID)
			return ErrAppointmentCancelled
		}

		// 2.3. Определяем точку для проверки расписания работы: приоритет
		// у открытой в календаре пользователя, иначе точка самой записи.
		// Только для расписания - область проверки конфликтов задаётся ниже.
		hoursLocationID := req.ActiveLocationID
		if hoursLocationID == nil {
			hoursLocationID = appointment.LocationID
		}

		// 2.4. Получаем расписание работы точки и проверяем целевой слот.
		// Бизнес без точек не ограничен расписанием - проверка пропускается.
		hours := &domain.BusinessHours{}
		enforceHours := false
		if hoursLocationID != nil {
			loaded, err := uc.hoursRepo.GetByLocation(txCtx, appointment.BusinessID, *hoursLocationID)
			if err != nil && !errors.Is(err, hoursRepo.ErrHoursNotFound) {
				uc.logger.Error("MoveAppointment: failed to get business hours: %v", err)
				return fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
			}
			if loaded != nil {
				hours = loaded
			}
			// Точка без заданного расписания считается закрытой
			enforceHours = true
		}

		if enforceHours && !hours.IsOpenAt(req.NewStartTime, req.NewDate) {
			uc.logger.Warn("MoveAppointment: slot %s on %s is outside business hours",
				req.NewStartTime, req.NewDate.Format(domain.DateFormat))
			uc.metrics.IncConflictRejection("outside_hours")
			return ErrOutsideBusinessHours
		}

		// 2.5. Строим сетку слотов по расписанию недели
		grid := domain.BuildTimeGrid(hours)

		// 2.6. Получаем все активные записи бизнеса на целевую дату с
		// блокировкой (FOR UPDATE). Выборка намеренно без фильтра по
		// мастерам: конфликты проверяются по полному расписанию.
		filter := domain.AppointmentsFilter{
			BusinessID:       appointment.BusinessID,
			StartDate:        &req.NewDate,
			EndDate:          &req.NewDate,
			IncludeCancelled: false,
		}

		sameDay, err := uc.appointmentRepo.GetByBusinessWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("MoveAppointment: failed to get appointments for conflict check: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 2.7. Проверяем конфликт с записями того же мастера. Область
		// сужается до точки только при явном фильтре в запросе: мастер
		// не может обслуживать две точки одновременно, поэтому без фильтра
		// конфликты ищутся по всему бизнесу, включая записи без точки.
		if conflicting := domain.FindConflicting(grid, appointment, req.NewDate, req.NewStartTime, sameDay, req.ActiveLocationID); conflicting != nil {
			uc.logger.Warn("MoveAppointment: conflict with appointment id=%d (staff=%d, start=%s)",
				conflicting.ID, conflicting.StaffID, conflicting.StartTime)
			uc.metrics.IncConflictRejection("overlap")
			return &ConflictError{Conflicting: conflicting}
		}

		// 2.8. Переносим запись (CAS по версии). Нулевая глубина обновления
		// означает, что запись успели изменить из другой сессии после чтения -
		// трактуем как поздний конфликт, а не как транзиентный сбой.
		if err := uc.appointmentRepo.UpdateSchedule(txCtx, appointment.ID, req.NewDate, req.NewStartTime, appointment.Version); err != nil {
			if errors.Is(err, apptRepo.ErrVersionConflict) {
				uc.logger.Warn("MoveAppointment: version conflict for appointment id=%d (expected version=%d)",
					appointment.ID, appointment.Version)
				uc.metrics.IncConflictRejection("version")
				return &ConflictError{}
			}
			uc.logger.Error("MoveAppointment: failed to update schedule: %v", err)
			return fmt.Errorf("%w: failed to update schedule: %v", ErrInternal, err)
		}

		appointment.Date = req.NewDate
		appointment.StartTime = req.NewStartTime
		appointment.Version++
		result = appointment
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("MoveAppointment: appointment id=%d moved to %s %s",
		result.ID, result.Date.Format(domain.DateFormat), result.StartTime)
	uc.metrics.IncMove("success")

	// 3. Уведомляем NotifyService после коммита. Недоступность уведомлений
	// не откатывает перенос - событие логируется и теряется.
	event := &notifyservice.ScheduleMovedEvent{
		AppointmentID: result.ID,
		BusinessID:    result.BusinessID,
		Date:          result.Date.Format(domain.DateFormat),
		StartTime12h:  result.StartTime.Clock12(),
	}
	if err := uc.notifyClient.EmitScheduleMoved(ctx, event); err != nil {
		uc.logger.Warn("MoveAppointment: failed to emit schedule_moved event for appointment id=%d: %v", result.ID, err)
	}

	return &Response{
		AppointmentID: result.ID,
		Date:          result.Date.Format(domain.DateFormat),
		StartTime:     result.StartTime.String(),
		StartTime12h:  result.StartTime.Clock12(),
		Version:       result.Version,
	}, nil
}
