package reviews

import (
	"context"
	"errors"
	"fmt"

	"github.com/soltours/booking-service/internal/domain"
	bookingRepo "github.com/soltours/booking-service/internal/infra/storage/booking"
	reviewRepo "github.com/soltours/booking-service/internal/infra/storage/review"
	"github.com/soltours/booking-service/internal/service/reviews/models"
)

// Service сервис отзывов
type Service struct {
	reviewRepo  ReviewRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(
	reviewRepo ReviewRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *Service {
	return &Service{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Create создает отзыв по завершённому бронированию
// Пользователь может оценить только своё бронирование и только один раз
func (s *Service) Create(ctx context.Context, req *models.CreateReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("Create: creating review for booking=%d by user=%d", req.BookingID, req.UserID)

	// Валидируем входные данные
	if !domain.IsValidRating(req.Rating) {
		s.logger.Warn("Create: invalid rating=%d for booking=%d", req.Rating, req.BookingID)
		return nil, fmt.Errorf("%w: rating must be between %d and %d", ErrInvalidInput, domain.MinRating, domain.MaxRating)
	}

	if req.Comment != nil && len(*req.Comment) > domain.MaxCommentLength {
		s.logger.Warn("Create: comment too long for booking=%d", req.BookingID)
		return nil, fmt.Errorf("%w: comment exceeds %d characters", ErrInvalidInput, domain.MaxCommentLength)
	}

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Create: booking=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Create: repository error for booking=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if booking.UserID != req.UserID {
		s.logger.Warn("Create: access denied for user=%d to booking=%d", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	// Отзыв доступен только по завершённому бронированию
	if !booking.CanBeReviewed() {
		s.logger.Warn("Create: booking=%d is not reviewable, status=%s", req.BookingID, booking.Status)
		return nil, ErrNotReviewable
	}

	// Проверяем, что отзыв ещё не оставлен
	exists, err := s.reviewRepo.ExistsForBooking(ctx, req.BookingID)
	if err != nil {
		s.logger.Error("Create: failed to check existing review for booking=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}
	if exists {
		s.logger.Warn("Create: booking=%d already reviewed", req.BookingID)
		return nil, ErrAlreadyReviewed
	}

	review, err := s.reviewRepo.Create(ctx, &domain.Review{
		BookingID:  req.BookingID,
		ActivityID: booking.ActivityID,
		UserID:     req.UserID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	})
	if err != nil {
		// Гонка двух параллельных запросов ловится unique constraint
		if errors.Is(err, reviewRepo.ErrDuplicateReview) {
			s.logger.Warn("Create: concurrent duplicate review for booking=%d", req.BookingID)
			return nil, ErrAlreadyReviewed
		}
		s.logger.Error("Create: repository error for booking=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created review id=%d for booking=%d", review.ID, req.BookingID)
	return models.FromDomainReview(review), nil
}

// ListByActivity получает отзывы активности вместе с агрегатом рейтинга
func (s *Service) ListByActivity(ctx context.Context, activityID int64) (*models.ReviewListResponse, error) {
	s.logger.Info("ListByActivity: fetching reviews for activity=%d", activityID)

	reviews, err := s.reviewRepo.GetByActivityID(ctx, activityID)
	if err != nil {
		s.logger.Error("ListByActivity: repository error for activity=%d: %v", activityID, err)
		return nil, fmt.Errorf("%w: ListByActivity - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByActivity: successfully fetched %d reviews for activity=%d", len(reviews), activityID)
	return models.FromDomainReviewList(reviews, domain.SummarizeRatings(reviews)), nil
}
