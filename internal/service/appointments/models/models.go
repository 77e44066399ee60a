package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-CalendarService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе записи
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// GetBusinessAppointmentsRequest запрос на получение записей бизнеса
type GetBusinessAppointmentsRequest struct {
	UserID           int64      `json:"userId"`
	BusinessID       int64      `json:"businessId"`
	LocationID       *int64     `json:"locationId,omitempty"`       // Фильтр по точке (опционально)
	StaffIDs         []int64    `json:"staffIds,omitempty"`         // Фильтр по мастерам (опционально)
	StartDate        *time.Time `json:"startDate,omitempty"`        // Начало периода (опционально)
	EndDate          *time.Time `json:"endDate,omitempty"`          // Конец периода (опционально)
	Status           *string    `json:"status,omitempty"`           // Фильтр по статусу (опционально)
	IncludeCancelled bool       `json:"includeCancelled,omitempty"` // Включить отменённые записи
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetBusinessAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		BusinessID:       r.BusinessID,
		LocationID:       r.LocationID,
		StaffIDs:         r.StaffIDs,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Status != nil {
		status, err := ToDomainAppointmentStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID         int64  `json:"id"`
	BusinessID int64  `json:"businessId"`
	LocationID *int64 `json:"locationId,omitempty"`

	Date              string `json:"date"`         // "2025-10-15"
	StartTime         string `json:"startTime"`    // "10:00"
	StartTime12h      string `json:"startTime12h"` // "10:00 AM", каноничное отображение в UI
	DurationMinutes   int    `json:"durationMinutes"`
	BufferTimeMinutes int    `json:"bufferTimeMinutes"`

	StaffID         int64  `json:"staffId"`
	StaffName       string `json:"staffName"`
	ServiceName     string `json:"serviceName"`
	ServiceCategory string `json:"serviceCategory"`
	ClientName      string `json:"clientName"`

	Status string `json:"status"`

	PaymentStatus *string  `json:"paymentStatus,omitempty"`
	PaymentAmount *float64 `json:"paymentAmount,omitempty"`
	Notes         *string  `json:"notes,omitempty"`

	Version int64 `json:"version"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:                a.ID,
		BusinessID:        a.BusinessID,
		LocationID:        a.LocationID,
		Date:              a.Date.Format(domain.DateFormat),
		StartTime:         a.StartTime.String(),
		StartTime12h:      a.StartTime.Clock12(),
		DurationMinutes:   a.DurationMinutes,
		BufferTimeMinutes: a.BufferTimeMinutes,
		StaffID:           a.StaffID,
		StaffName:         a.StaffName,
		ServiceName:       a.ServiceName,
		ServiceCategory:   a.ServiceCategory,
		ClientName:        a.ClientName,
		Status:            string(a.Status),
		PaymentStatus:     a.PaymentStatus,
		PaymentAmount:     a.PaymentAmount,
		Notes:             a.Notes,
		Version:           a.Version,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	items := make([]AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		if resp := FromDomainAppointment(a); resp != nil {
			items = append(items, *resp)
		}
	}
	return &AppointmentListResponse{Appointments: items}
}

// ToDomainAppointmentStatus конвертирует строку в domain статус
func ToDomainAppointmentStatus(s string) (domain.AppointmentStatus, error) {
	status := domain.AppointmentStatus(s)
	switch status {
	case domain.StatusConfirmed,
		domain.StatusArrived,
		domain.StatusStarted,
		domain.StatusCompleted,
		domain.StatusCancelled,
		domain.StatusDidNotShow:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}
