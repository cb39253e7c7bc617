package models

import (
	"github.com/soltours/booking-service/internal/domain"
	"github.com/soltours/booking-service/pkg/ptr"
	"github.com/soltours/booking-service/pkg/types"
)

// Request модели

// ListActivitiesRequest запрос на получение списка активностей
type ListActivitiesRequest struct {
	Category *string `json:"category,omitempty"`
}

// Response модели

// ActivityResponse ответ с данными активности
type ActivityResponse struct {
	ID              int64    `json:"id"`
	Slug            string   `json:"slug"`
	Title           string   `json:"title"`
	Category        string   `json:"category"`
	Location        string   `json:"location"`
	DurationMinutes int      `json:"durationMinutes"`
	AdultPrice      string   `json:"adultPrice"`
	ChildPrice      *string  `json:"childPrice,omitempty"`
	SeniorPrice     *string  `json:"seniorPrice,omitempty"`
	MaxParticipants int      `json:"maxParticipants"`
	TimeSlots       []string `json:"timeSlots"`
	Status          string   `json:"status"`

	// Агрегированные данные отзывов
	ReviewCount   int    `json:"reviewCount"`
	AverageRating string `json:"averageRating"`
}

// ActivityListResponse ответ со списком активностей
type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
}

// Методы конвертации

// FromDomainActivity конвертирует domain модель в DTO
func FromDomainActivity(a *domain.Activity) *ActivityResponse {
	if a == nil {
		return nil
	}

	resp := &ActivityResponse{
		ID:              a.ID,
		Slug:            a.Slug,
		Title:           a.Title,
		Category:        a.Category,
		Location:        a.Location,
		DurationMinutes: a.DurationMinutes,
		AdultPrice:      a.AdultPrice.StringFixed(2),
		MaxParticipants: a.MaxParticipants,
		TimeSlots:       fromTimeSlots(a.TimeSlots),
		Status:          string(a.Status),
		AverageRating:   "0.0",
	}

	if a.ChildPrice != nil {
		resp.ChildPrice = ptr.Ptr(a.ChildPrice.StringFixed(2))
	}

	if a.SeniorPrice != nil {
		resp.SeniorPrice = ptr.Ptr(a.SeniorPrice.StringFixed(2))
	}

	return resp
}

// WithRatingSummary добавляет агрегированные данные отзывов
func (r *ActivityResponse) WithRatingSummary(summary domain.RatingSummary) *ActivityResponse {
	r.ReviewCount = summary.Count
	r.AverageRating = summary.Average.StringFixed(1)
	return r
}

// FromDomainActivityList конвертирует список domain моделей в DTO
func FromDomainActivityList(activities []*domain.Activity) *ActivityListResponse {
	if activities == nil {
		return &ActivityListResponse{
			Activities: []ActivityResponse{},
		}
	}

	resp := &ActivityListResponse{
		Activities: make([]ActivityResponse, len(activities)),
	}

	for i, activity := range activities {
		if activityResp := FromDomainActivity(activity); activityResp != nil {
			resp.Activities[i] = *activityResp
		}
	}

	return resp
}

func fromTimeSlots(slots []types.TimeString) []string {
	result := make([]string, 0, len(slots))
	for _, slot := range slots {
		result = append(result, slot.String())
	}
	return result
}
