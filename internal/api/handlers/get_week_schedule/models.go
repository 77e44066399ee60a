package get_week_schedule

import (
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
	getWeekSchedule "github.com/m04kA/SMC-CalendarService/internal/usecase/get_week_schedule"
)

// ToUseCaseRequest собирает модель use case из path и query параметров.
// weekStart обязателен; staffIds - список ID через запятую.
func ToUseCaseRequest(businessID int64, locationIDStr, weekStartStr, staffIDsStr string) (*getWeekSchedule.Request, error) {
	weekStart, err := time.Parse(domain.DateFormat, weekStartStr)
	if err != nil {
		return nil, err
	}

	req := &getWeekSchedule.Request{
		BusinessID: businessID,
		WeekStart:  weekStart,
	}

	if locationIDStr != "" {
		locationID, err := strconv.ParseInt(locationIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.LocationID = &locationID
	}

	if staffIDsStr != "" {
		for _, part := range strings.Split(staffIDsStr, ",") {
			staffID, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
			if err != nil {
				return nil, err
			}
			req.StaffIDs = append(req.StaffIDs, staffID)
		}
	}

	return req, nil
}
