package get_week_schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	hoursRepo "github.com/m04kA/SMC-CalendarService/internal/infra/storage/hours"
	directoryClient "github.com/m04kA/SMC-CalendarService/internal/integrations/directoryservice"
)

const daysPerWeek = 7

// UseCase use case для построения недельной сетки расписания
type UseCase struct {
	appointmentRepo AppointmentRepository
	hoursRepo       HoursRepository
	directoryClient DirectoryServiceClient
	txManager       TransactionManager
	metrics         Metrics
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	hoursRepo HoursRepository,
	directoryClient DirectoryServiceClient,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		hoursRepo:       hoursRepo,
		directoryClient: directoryClient,
		txManager:       txManager,
		metrics:         metrics,
		logger:          logger,
	}
}

// Execute строит недельную сетку: подписи слотов, флаги открытости и
// карточки записей в их стартовых ячейках.
//
// Фильтр по мастерам влияет только на отображение. Полный набор записей
// проверка конфликтов получает сама при переносе - здесь он не нужен.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetWeekSchedule: business=%d, weekStart=%s, staffFilter=%v",
		req.BusinessID, req.WeekStart.Format(domain.DateFormat), req.StaffIDs)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetWeekSchedule: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем бизнес и точку в DirectoryService
	business, err := uc.directoryClient.GetBusiness(ctx, req.BusinessID)
	if err != nil {
		if errors.Is(err, directoryClient.ErrBusinessNotFound) {
			uc.logger.Warn("GetWeekSchedule: business id=%d not found", req.BusinessID)
			return nil, ErrBusinessNotFound
		}
		uc.logger.Error("GetWeekSchedule: failed to get business id=%d: %v", req.BusinessID, err)
		return nil, fmt.Errorf("%w: failed to get business: %v", ErrInternal, err)
	}

	if req.LocationID != nil && !business.HasLocation(*req.LocationID) {
		uc.logger.Warn("GetWeekSchedule: location id=%d not found in business id=%d",
			*req.LocationID, req.BusinessID)
		return nil, ErrLocationNotFound
	}

	// 3. Читаем расписание работы и записи в read-only транзакции:
	// обе выборки должны видеть один снимок данных, иначе сетка может
	// разойтись с карточками на ней.
	hours := &domain.BusinessHours{}
	var appointments []*domain.Appointment

	err = uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		// 3.1. Расписание работы точки. Отсутствие записей означает,
		// что точка закрыта всю неделю; сетка строится по дефолтному окну.
		if req.LocationID != nil {
			loaded, err := uc.hoursRepo.GetByLocation(txCtx, req.BusinessID, *req.LocationID)
			if err != nil && !errors.Is(err, hoursRepo.ErrHoursNotFound) {
				uc.logger.Error("GetWeekSchedule: failed to get business hours: %v", err)
				return fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
			}
			if loaded != nil {
				hours = loaded
			}
		}

		// 3.2. Записи бизнеса за неделю [weekStart, weekStart+6]
		weekEnd := req.WeekStart.AddDate(0, 0, daysPerWeek-1)
		filter := domain.AppointmentsFilter{
			BusinessID:       req.BusinessID,
			LocationID:       req.LocationID,
			StartDate:        &req.WeekStart,
			EndDate:          &weekEnd,
			IncludeCancelled: false,
		}

		appointments, err = uc.appointmentRepo.GetByBusinessWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("GetWeekSchedule: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 4. Строим сетку слотов
	grid := domain.BuildTimeGrid(hours)

	// 5. Применяем фильтр отображения по мастерам
	visible := domain.VisibleForStaff(appointments, req.StaffIDs)

	// 6. Учитываем записи, время которых не попало в сетку: они рисуются
	// в ближайшем слоте, а рост метрики указывает на расхождение данных
	// с расписанием точки
	for _, a := range visible {
		if _, exact, ok := domain.ResolveStartSlot(grid, a); ok && !exact {
			uc.logger.Warn("GetWeekSchedule: appointment id=%d start=%s is off-grid, rendered at nearest slot",
				a.ID, a.StartTime)
			uc.metrics.IncSlotFallback("get_week_schedule")
		}
	}

	// 7. Собираем ответ
	resp := &Response{
		BusinessID: req.BusinessID,
		LocationID: req.LocationID,
		WeekStart:  req.WeekStart.Format(domain.DateFormat),
		Slots:      make([]SlotLabel, 0, grid.Len()),
		Days:       make([]Day, 0, daysPerWeek),
	}

	for _, slot := range grid.Slots() {
		resp.Slots = append(resp.Slots, SlotLabel{
			Time:    slot.String(),
			Time12h: slot.Clock12(),
		})
	}

	for d := 0; d < daysPerWeek; d++ {
		date := req.WeekStart.AddDate(0, 0, d)
		window := hours.ForWeekday(date.Weekday())

		day := Day{
			Date:    date.Format(domain.DateFormat),
			Weekday: date.Weekday().String(),
			IsOpen:  window != nil && window.Open != "" && window.Close != "",
			Cells:   make([]Cell, 0, grid.Len()),
		}

		for _, slot := range grid.Slots() {
			cell := Cell{
				Time:   slot.String(),
				IsOpen: hours.IsOpenAt(slot, date),
			}
			for _, a := range domain.OccupantsAt(grid, date, slot, visible) {
				cell.Appointments = append(cell.Appointments, toCard(a, business))
			}
			day.Cells = append(day.Cells, cell)
		}

		resp.Days = append(resp.Days, day)
	}

	uc.logger.Info("GetWeekSchedule: business=%d, %d slots, %d appointments rendered",
		req.BusinessID, grid.Len(), len(visible))

	return resp, nil
}
