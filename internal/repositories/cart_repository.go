package repositories

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	intconfig "tourbooking/internal/config"
	intdb "tourbooking/internal/db"
	"tourbooking/internal/domain"
	"tourbooking/internal/domain/models"
	"tourbooking/internal/utils"
)

// CartRepository is the durable side of the cart store. Every mutation writes
// through immediately; the in-memory view is rebuilt from these rows on read.
type CartRepository struct {
	DB *sql.DB
}

func (r CartRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r CartRepository) ensureCartTable() error {
	db := r.db()
	if db == nil {
		return fmt.Errorf("db not available")
	}
	if intdb.HasTable(db, "cart_items") {
		return nil
	}
	ddl := `
CREATE TABLE IF NOT EXISTS cart_items (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	cart_token VARCHAR(100) NOT NULL,
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
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	KEY idx_cart_token (cart_token)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	_, err := db.Exec(ddl)
	return err
}

// ListByToken returns the cart lines for a session token in insertion order.
func (r CartRepository) ListByToken(token string) ([]models.BookingLine, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, domain.ValidationError{Field: "cart_token", Msg: "token is required"}
	}
	if err := r.ensureCartTable(); err != nil {
		return nil, domain.InternalError{Err: err}
	}

	rows, err := r.db().Query(`
		SELECT id, package_id, option_id, option_title, pricing_type,
		       travel_date, time_slot,
		       adults, children, infants, guests, units,
		       transfer_type, pickup_location, COALESCE(extras_json,'[]'), total_price
		FROM cart_items
		WHERE cart_token = ?
		ORDER BY id
	`, token)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.BookingLine{}
	for rows.Next() {
		var (
			line      models.BookingLine
			pricing   string
			extrasRaw string
		)
		if err := rows.Scan(
			&line.ID, &line.PackageID, &line.OptionID, &line.OptionTitle, &pricing,
			&line.TravelDate, &line.TimeSlot,
			&line.Adults, &line.Children, &line.Infants, &line.Guests, &line.Units,
			&line.TransferType, &line.PickupLocation, &extrasRaw, &line.TotalPrice,
		); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		line.PricingType = models.PricingType(pricing)
		if err := json.Unmarshal([]byte(extrasRaw), &line.ExtraServicesBreakdown); err != nil {
			utils.LogEvent("", "cart", "bad_extras_json", fmt.Sprintf("cart_item_id=%d err=%v", line.ID, err))
			line.ExtraServicesBreakdown = []models.ExtraLine{}
		}
		out = append(out, line)
	}
	return out, rows.Err()
}

// InsertLine flushes one composed booking line into the durable cart.
func (r CartRepository) InsertLine(token string, line models.BookingLine) (int64, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, domain.ValidationError{Field: "cart_token", Msg: "token is required"}
	}
	if err := r.ensureCartTable(); err != nil {
		return 0, domain.InternalError{Err: err}
	}

	extrasJSON, err := json.Marshal(line.ExtraServicesBreakdown)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}

	res, err := r.db().Exec(`
		INSERT INTO cart_items
			(cart_token, package_id, option_id, option_title, pricing_type,
			 travel_date, time_slot,
			 adults, children, infants, guests, units,
			 transfer_type, pickup_location, extras_json, total_price)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)
	`,
		token, line.PackageID, line.OptionID, line.OptionTitle, string(line.PricingType),
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

// DeleteLine removes one line from a cart; the token guard keeps sessions
// from deleting each other's items.
func (r CartRepository) DeleteLine(token string, id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "id is invalid"}
	}
	if err := r.ensureCartTable(); err != nil {
		return domain.InternalError{Err: err}
	}
	res, err := r.db().Exec(`DELETE FROM cart_items WHERE cart_token = ? AND id = ?`, strings.TrimSpace(token), id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "cart item"}
	}
	return nil
}

func (r CartRepository) Clear(token string) error {
	if err := r.ensureCartTable(); err != nil {
		return domain.InternalError{Err: err}
	}
	_, err := r.db().Exec(`DELETE FROM cart_items WHERE cart_token = ?`, strings.TrimSpace(token))
	if err != nil {
		return domain.InternalError{Err: err}
	}
	return nil
}
