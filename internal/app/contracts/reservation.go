package contracts

import (
	"carelink-service/internal/app/models"
	"context"
	"time"
)

type ReservationRepository interface {
	Create(ctx context.Context, reservation *models.Reservation) (reservationID string, err error)
	// FindBetween returns reservations with from <= date < to.
	FindBetween(ctx context.Context, from, to time.Time) ([]models.Reservation, error)
}
