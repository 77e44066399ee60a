package hours

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	"github.com/m04kA/SMC-CalendarService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CalendarService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-CalendarService/pkg/types"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий расписания работы точек
// Хранение построчное: одна строка = один открытый день недели точки.
// День без строки считается выходным.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByLocation получает недельное расписание работы точки.
// Если ни одной строки нет, возвращает ErrHoursNotFound - вызывающая
// сторона решает, использовать ли дефолтную сетку.
func (r *Repository) GetByLocation(ctx context.Context, businessID, locationID int64) (*domain.BusinessHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("weekday", "open_time", "close_time").
		From("business_hours").
		Where(squirrel.Eq{"business_id": businessID, "location_id": locationID}).
		OrderBy("weekday ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocation - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByLocation - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := &domain.BusinessHours{}
	found := false

	for rows.Next() {
		var weekday int
		var open, close types.TimeString

		if err := rows.Scan(&weekday, &open, &close); err != nil {
			return nil, fmt.Errorf("%w: GetByLocation - scan row: %v", ErrScanRow, err)
		}
		if weekday < 0 || weekday > 6 {
			return nil, fmt.Errorf("%w: GetByLocation - weekday %d", ErrInvalidWeekday, weekday)
		}

		result.SetForWeekday(time.Weekday(weekday), &domain.DayWindow{Open: open, Close: close})
		found = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByLocation - rows error: %v", ErrScanRow, err)
	}

	if !found {
		return nil, ErrHoursNotFound
	}

	return result, nil
}

// ReplaceForLocation полностью заменяет недельное расписание точки.
// Выполняется как delete+insert; вызывать внутри транзакции.
func (r *Repository) ReplaceForLocation(ctx context.Context, businessID, locationID int64, hours *domain.BusinessHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("business_hours").
		Where(squirrel.Eq{"business_id": businessID, "location_id": locationID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForLocation - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForLocation - execute delete: %v", ErrExecQuery, err)
	}

	insertBuilder := psqlbuilder.Insert("business_hours").
		Columns("business_id", "location_id", "weekday", "open_time", "close_time")

	hasRows := false
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		window := hours.ForWeekday(wd)
		if window == nil {
			continue
		}
		insertBuilder = insertBuilder.Values(businessID, locationID, int(wd), window.Open, window.Close)
		hasRows = true
	}

	// Все дни выходные - храним пустое расписание
	if !hasRows {
		return nil
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForLocation - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForLocation - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
