package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	intconfig "tourbooking/internal/config"
	"tourbooking/internal/domain"
	"tourbooking/internal/domain/models"
	"tourbooking/internal/utils"
)

// PackageRepository reads and writes the tour catalog. Legacy catalog rows
// store prices as free-text varchar, so every price column goes through
// utils.ParsePrice; unparsable values are logged and priced at 0 instead of
// failing the storefront.
type PackageRepository struct {
	DB *sql.DB
}

func (r PackageRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r PackageRepository) ListPackages() ([]models.TravelPackage, error) {
	rows, err := r.db().Query(`
		SELECT id, category_id, title, slug, COALESCE(description,''), COALESCE(image_url,''), active
		FROM tour_packages
		WHERE active = 1
		ORDER BY title
	`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.TravelPackage{}
	for rows.Next() {
		var p models.TravelPackage
		if err := rows.Scan(&p.ID, &p.CategoryID, &p.Title, &p.Slug, &p.Description, &p.ImageURL, &p.Active); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// GetPackageBySlug loads a package with all of its tour options.
func (r PackageRepository) GetPackageBySlug(slug string) (models.TravelPackage, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return models.TravelPackage{}, domain.ValidationError{Field: "slug", Msg: "slug is required"}
	}

	var p models.TravelPackage
	err := r.db().QueryRow(`
		SELECT id, category_id, title, slug, COALESCE(description,''), COALESCE(image_url,''), active
		FROM tour_packages
		WHERE slug = ?
		LIMIT 1
	`, slug).Scan(&p.ID, &p.CategoryID, &p.Title, &p.Slug, &p.Description, &p.ImageURL, &p.Active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TravelPackage{}, domain.NotFoundError{Resource: "package"}
		}
		return models.TravelPackage{}, domain.InternalError{Err: err}
	}

	opts, err := r.ListOptions(p.ID)
	if err != nil {
		return models.TravelPackage{}, err
	}
	p.Options = opts
	return p, nil
}

func (r PackageRepository) ListOptions(packageID int64) ([]models.TourOption, error) {
	rows, err := r.db().Query(optionSelect+` WHERE package_id = ? ORDER BY id`, packageID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.TourOption{}
	for rows.Next() {
		opt, err := scanOption(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, opt)
	}
	return out, rows.Err()
}

func (r PackageRepository) GetOptionByID(id int64) (models.TourOption, error) {
	if id <= 0 {
		return models.TourOption{}, domain.ValidationError{Field: "option_id", Msg: "id is invalid"}
	}
	row := r.db().QueryRow(optionSelect+` WHERE id = ? LIMIT 1`, id)
	opt, err := scanOption(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TourOption{}, domain.NotFoundError{Resource: "tour option"}
		}
		return models.TourOption{}, err
	}
	return opt, nil
}

const optionSelect = `
	SELECT id, package_id, title,
	       COALESCE(duration_label,''), COALESCE(duration_type,'days'),
	       COALESCE(pricing_type,'person'),
	       COALESCE(adult_price,''), COALESCE(child_price,''), COALESCE(infant_price,''),
	       COALESCE(adult_age_label,''), COALESCE(child_age_label,''), COALESCE(infant_age_label,''),
	       COALESCE(group_price,''), COALESCE(capacity_per_unit,0),
	       COALESCE(time_slots,'[]'), COALESCE(extra_services,'[]'),
	       COALESCE(cancellation_policy,''), COALESCE(pickup_included_free,0)
	FROM tour_options`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOption(row rowScanner) (models.TourOption, error) {
	var (
		opt                              models.TourOption
		durationType, pricingType        string
		adultRaw, childRaw, infantRaw    string
		groupRaw, slotsRaw, extrasRaw    string
	)
	if err := row.Scan(
		&opt.ID, &opt.PackageID, &opt.Title,
		&opt.DurationLabel, &durationType,
		&pricingType,
		&adultRaw, &childRaw, &infantRaw,
		&opt.AdultAgeLabel, &opt.ChildAgeLabel, &opt.InfantAgeLabel,
		&groupRaw, &opt.CapacityPerUnit,
		&slotsRaw, &extrasRaw,
		&opt.CancellationPolicy, &opt.PickupIncludedFree,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return opt, err
		}
		return opt, domain.InternalError{Err: err}
	}

	opt.DurationType = models.DurationType(durationType)
	opt.PricingType = models.PricingType(pricingType)

	opt.AdultPrice = priceOrZero(opt.ID, "adult_price", adultRaw)
	opt.ChildPrice = priceOrZero(opt.ID, "child_price", childRaw)
	opt.InfantPrice = priceOrZero(opt.ID, "infant_price", infantRaw)
	opt.GroupPrice = priceOrZero(opt.ID, "group_price", groupRaw)

	if err := json.Unmarshal([]byte(slotsRaw), &opt.TimeSlots); err != nil {
		utils.LogEvent("", "catalog", "bad_time_slots", fmt.Sprintf("option_id=%d err=%v", opt.ID, err))
		opt.TimeSlots = nil
	}
	if err := json.Unmarshal([]byte(extrasRaw), &opt.ExtraServices); err != nil {
		utils.LogEvent("", "catalog", "bad_extra_services", fmt.Sprintf("option_id=%d err=%v", opt.ID, err))
		opt.ExtraServices = nil
	}

	return opt, nil
}

// priceOrZero surfaces malformed catalog prices to the operator log and only
// then falls back to 0, so bad data cannot silently make a tour free.
func priceOrZero(optionID int64, column, raw string) float64 {
	v, err := utils.ParsePrice(raw)
	if err != nil {
		utils.LogEvent("", "catalog", "bad_price", fmt.Sprintf("option_id=%d column=%s err=%v", optionID, column, err))
		return 0
	}
	return v
}

// CreatePackage inserts a package; slug collisions map to ConflictError.
func (r PackageRepository) CreatePackage(p models.TravelPackage) (int64, error) {
	var exists int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM tour_packages WHERE slug = ?`, p.Slug).Scan(&exists); err != nil {
		return 0, domain.InternalError{Err: err}
	}
	if exists > 0 {
		return 0, domain.ConflictError{Resource: "package", Msg: "slug already exists"}
	}

	res, err := r.db().Exec(`
		INSERT INTO tour_packages (category_id, title, slug, description, image_url, active)
		VALUES (?,?,?,?,?,?)
	`, p.CategoryID, p.Title, p.Slug, p.Description, p.ImageURL, p.Active)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}

// PackageUpdate supports PATCH-style updates via key presence.
type PackageUpdate struct {
	CategoryID  *int64
	Title       *string
	Description *string
	ImageURL    *string
	Active      *bool
}

func (r PackageRepository) UpdatePackage(id int64, upd PackageUpdate) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "id is invalid"}
	}
	sets := []string{}
	args := []any{}

	if upd.CategoryID != nil {
		sets = append(sets, "category_id=?")
		args = append(args, *upd.CategoryID)
	}
	if upd.Title != nil {
		sets = append(sets, "title=?")
		args = append(args, strings.TrimSpace(*upd.Title))
	}
	if upd.Description != nil {
		sets = append(sets, "description=?")
		args = append(args, *upd.Description)
	}
	if upd.ImageURL != nil {
		sets = append(sets, "image_url=?")
		args = append(args, *upd.ImageURL)
	}
	if upd.Active != nil {
		sets = append(sets, "active=?")
		args = append(args, *upd.Active)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)

	res, err := r.db().Exec(`UPDATE tour_packages SET `+strings.Join(sets, ",")+` WHERE id=?`, args...)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "package"}
	}
	return nil
}

func (r PackageRepository) DeletePackage(id int64) error {
	res, err := r.db().Exec(`DELETE FROM tour_packages WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "package"}
	}
	return nil
}

func (r PackageRepository) ListCategories() ([]models.Category, error) {
	rows, err := r.db().Query(`SELECT id, name, slug FROM categories ORDER BY name`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	defer rows.Close()

	out := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug); err != nil {
			return nil, domain.InternalError{Err: err}
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r PackageRepository) CreateCategory(c models.Category) (int64, error) {
	res, err := r.db().Exec(`INSERT INTO categories (name, slug) VALUES (?,?)`, c.Name, c.Slug)
	if err != nil {
		return 0, domain.InternalError{Err: err}
	}
	id, _ := res.LastInsertId()
	return id, nil
}

func (r PackageRepository) DeleteCategory(id int64) error {
	res, err := r.db().Exec(`DELETE FROM categories WHERE id=?`, id)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "category"}
	}
	return nil
}
