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

// CartService owns the cart store lifecycle: lines are loaded from the
// durable cart rows, mutated only through these operations, and flushed on
// every mutation. There is no ambient cart state anywhere else.
type CartService struct {
	PackageRepo repositories.PackageRepository
	CartRepo    repositories.CartRepository
	DB          *sql.DB
	RequestID   string
}

func (s CartService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s CartService) packages() repositories.PackageRepository {
	if s.PackageRepo.DB != nil {
		return s.PackageRepo
	}
	return repositories.PackageRepository{DB: s.db()}
}

func (s CartService) carts() repositories.CartRepository {
	if s.CartRepo.DB != nil {
		return s.CartRepo
	}
	return repositories.CartRepository{DB: s.db()}
}

// Cart is the storefront view of one session's cart.
type Cart struct {
	Items      []models.BookingLine `json:"items"`
	GrandTotal float64              `json:"grand_total"`
}

// Quote prices a candidate selection without touching the cart. Mirrors the
// live total the storefront shows while the buyer adjusts inputs.
func (s CartService) Quote(optionID int64, sel models.Selection) (float64, error) {
	opt, err := s.packages().GetOptionByID(optionID)
	if err != nil {
		return 0, err
	}
	return domain.ComputeTotal(opt, sel), nil
}

// AddLine validates and composes a booking line for the option, then flushes
// it to the durable cart.
func (s CartService) AddLine(token string, optionID int64, sel models.Selection) (models.BookingLine, error) {
	opt, err := s.packages().GetOptionByID(optionID)
	if err != nil {
		return models.BookingLine{}, err
	}

	line, err := domain.ComposeBookingLine(opt, sel)
	if err != nil {
		return models.BookingLine{}, err
	}

	id, err := s.carts().InsertLine(token, line)
	if err != nil {
		return models.BookingLine{}, err
	}
	line.ID = id

	utils.LogEvent(s.RequestID, "cart", "add_line",
		fmt.Sprintf("option_id=%d total=%s transfer=%s", optionID, utils.FormatMoney(line.TotalPrice), line.TransferType))
	return line, nil
}

// GetCart rebuilds the cart view from durable rows.
func (s CartService) GetCart(token string) (Cart, error) {
	items, err := s.carts().ListByToken(token)
	if err != nil {
		return Cart{}, err
	}

	var total float64
	for _, it := range items {
		total += it.TotalPrice
	}
	return Cart{Items: items, GrandTotal: utils.RoundMoney(total)}, nil
}

func (s CartService) RemoveLine(token string, id int64) error {
	if err := s.carts().DeleteLine(token, id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "cart", "remove_line", fmt.Sprintf("cart_item_id=%d", id))
	return nil
}

func (s CartService) Clear(token string) error {
	if err := s.carts().Clear(token); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "cart", "clear", "cart emptied")
	return nil
}
