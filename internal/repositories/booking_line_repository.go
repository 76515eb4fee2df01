package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	intconfig "tourbooking/internal/config"
	intdb "tourbooking/internal/db"
	"tourbooking/internal/domain"
	"tourbooking/internal/domain/models"
	"tourbooking/internal/utils"
)

// BookingLineRepository persists finalized Book Now lines. Checkout and
// payment live in external collaborators; this table is their input.
type BookingLineRepository struct {
	DB *sql.DB
}

func (r BookingLineRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r BookingLineRepository) ensureBookingTable() error {
	db := r.db()
	if db == nil {
		return fmt.Errorf("db not available")
	}
	if intdb.HasTable(db, "booking_lines") {
		return nil
	}
	ddl := `
CREATE TABLE IF NOT EXISTS booking_lines (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	package_id BIGINT NOT NULL,
	option_id BIGINT NOT NULL,
	option_title VARCHAR(255) NOT NULL,
	pricing_type VARCHAR(20) NOT NULL,
	travel_date VARCHAR(20) NOT NULL,
	time_slot VARCHAR(50) NOT NULL DEFAULT '',
	adults INT NOT NULL DEFAULT 0,
	children INT NOT NULL DEFAULT 0,
	infants INT NOT NULL DEFAULT 0,
	guests INT NOT NULL DEFAULT 0,
	units INT NOT NULL DEFAULT 0,
	transfer_type VARCHAR(50) NOT NULL DEFAULT '-',
	pickup_location VARCHAR(255) NOT NULL DEFAULT '',
	extras_json TEXT,
	total_price DECIMAL(12,2) NOT NULL DEFAULT 0,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	_, err := db.Exec(ddl)
	return err
}

func (r BookingLineRepository) Insert(line models.BookingLine) (int64, error) {
	if err := r.ensureBookingTable(); err != nil {
		return 0, domain.InternalError{Err: err}
	}

	extrasJSON, err := json.Marshal(line.ExtraServicesBreakdown)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}

	res, err := r.db().Exec(`
		INSERT INTO booking_lines
			(package_id, option_id, option_title, pricing_type,
			 travel_date, time_slot,
			 adults, children, infants, guests, units,
			 transfer_type, pickup_location, extras_json, total_price)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
	`,
		line.PackageID, line.OptionID, line.OptionTitle, string(line.PricingType),
		line.TravelDate, line.TimeSlot,
		line.Adults, line.Children, line.Infants, line.Guests, line.Units,
		line.TransferType, line.PickupLocation, string(extrasJSON), line.TotalPrice,
	)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}

func (r BookingLineRepository) GetByID(id int64) (models.BookingLine, error) {
	if id <= 0 {
		return models.BookingLine{}, domain.ValidationError{Field: "id", Msg: "id is invalid"}
	}

	var (
		line      models.BookingLine
		pricing   string
		extrasRaw string
	)
	err := r.db().QueryRow(`
		SELECT id, package_id, option_id, option_title, pricing_type,
		       travel_date, time_slot,
		       adults, children, infants, guests, units,
		       transfer_type, pickup_location, COALESCE(extras_json,'[]'), total_price
		FROM booking_lines
		WHERE id = ?
		LIMIT 1
	`, id).Scan(
		&line.ID, &line.PackageID, &line.OptionID, &line.OptionTitle, &pricing,
		&line.TravelDate, &line.TimeSlot,
		&line.Adults, &line.Children, &line.Infants, &line.Guests, &line.Units,
		&line.TransferType, &line.PickupLocation, &extrasRaw, &line.TotalPrice,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.BookingLine{}, domain.NotFoundError{Resource: "booking"}
		}
		return models.BookingLine{}, domain.InternalError{Err: err}
	}

	line.PricingType = models.PricingType(pricing)
	if err := json.Unmarshal([]byte(extrasRaw), &line.ExtraServicesBreakdown); err != nil {
		utils.LogEvent("", "booking", "bad_extras_json", fmt.Sprintf("booking_id=%d err=%v", line.ID, err))
		line.ExtraServicesBreakdown = []models.ExtraLine{}
	}
	return line, nil
}
