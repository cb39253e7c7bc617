package models

import "github.com/soltours/booking-service/internal/domain"

// Response модели

// RefundTierResponse одна строка таблицы возвратов
type RefundTierResponse struct {
	MinHoursBefore  int    `json:"minHoursBefore"`
	RefundPercent   int    `json:"refundPercent"`
	CancellationFee string `json:"cancellationFee"`
}

// PolicyResponse ответ с политикой отмены/изменения
type PolicyResponse struct {
	ActivityID      *int64               `json:"activityId,omitempty"`
	Tiers           []RefundTierResponse `json:"tiers"`
	ModificationFee string               `json:"modificationFee"`
}

// Методы конвертации

// FromDomainPolicy конвертирует domain модель в DTO
func FromDomainPolicy(p *domain.CancellationPolicy) *PolicyResponse {
	if p == nil {
		return nil
	}

	resp := &PolicyResponse{
		ActivityID:      p.ActivityID,
		Tiers:           make([]RefundTierResponse, 0, len(p.Tiers)),
		ModificationFee: p.ModificationFee.StringFixed(2),
	}

	for _, tier := range p.Tiers {
		resp.Tiers = append(resp.Tiers, RefundTierResponse{
			MinHoursBefore:  tier.MinHoursBefore,
			RefundPercent:   tier.RefundPercent,
			CancellationFee: tier.CancellationFee.StringFixed(2),
		})
	}

	return resp
}
