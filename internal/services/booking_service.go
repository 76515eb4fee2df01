package services

import (
	"database/sql"
	"fmt"

	intconfig "tourbooking/internal/config"
	"tourbooking/internal/domain"
	"tourbooking/internal/domain/models"
	"tourbooking/internal/repositories"
	"tourbooking/internal/utils"
)

// BookingService handles the Book Now path: one validated selection becomes
// one persisted booking line, handed onward to the external checkout flow.
type BookingService struct {
	PackageRepo repositories.PackageRepository
	BookingRepo repositories.BookingLineRepository
	DB          *sql.DB
	RequestID   string
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) packages() repositories.PackageRepository {
	if s.PackageRepo.DB != nil {
		return s.PackageRepo
	}
	return repositories.PackageRepository{DB: s.db()}
}

func (s BookingService) bookings() repositories.BookingLineRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingLineRepository{DB: s.db()}
}

// BookNow composes and persists a booking line in one step.
func (s BookingService) BookNow(optionID int64, sel models.Selection) (models.BookingLine, error) {
	opt, err := s.packages().GetOptionByID(optionID)
	if err != nil {
		return models.BookingLine{}, err
	}

	line, err := domain.ComposeBookingLine(opt, sel)
	if err != nil {
		return models.BookingLine{}, err
	}

	id, err := s.bookings().Insert(line)
	if err != nil {
		return models.BookingLine{}, err
	}
	line.ID = id

	utils.LogEvent(s.RequestID, "booking", "book_now",
		fmt.Sprintf("booking_id=%d option_id=%d total=%s", id, optionID, utils.FormatMoney(line.TotalPrice)))
	return line, nil
}

func (s BookingService) GetBooking(id int64) (models.BookingLine, error) {
	return s.bookings().GetByID(id)
}
