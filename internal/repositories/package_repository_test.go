package repositories

import (
	"testing"

	"tourbooking/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func optionColumns() []string {
	return []string{
		"id", "package_id", "title",
		"duration_label", "duration_type", "pricing_type",
		"adult_price", "child_price", "infant_price",
		"adult_age_label", "child_age_label", "infant_age_label",
		"group_price", "capacity_per_unit",
		"time_slots", "extra_services",
		"cancellation_policy", "pickup_included_free",
	}
}

func TestGetOptionByIDParsesCatalogRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows(optionColumns()).AddRow(
		int64(5), int64(1), "Desert Safari",
		"4 Hours", "hours", "person",
		"253.50", "177.45", "0",
		"12+", "3-11", "0-2",
		"", 0,
		`["09:00","14:00"]`, `[{"name":"Photography","unit_price":150}]`,
		"Free cancellation up to 24h", false,
	)
	mock.ExpectQuery("FROM tour_options").WithArgs(int64(5)).WillReturnRows(rows)

	opt, err := PackageRepository{DB: db}.GetOptionByID(5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opt.AdultPrice != 253.50 || opt.ChildPrice != 177.45 || opt.InfantPrice != 0 {
		t.Fatalf("prices parsed wrong: %+v", opt)
	}
	if len(opt.TimeSlots) != 2 || opt.TimeSlots[0] != "09:00" {
		t.Fatalf("time slots parsed wrong: %v", opt.TimeSlots)
	}
	if len(opt.ExtraServices) != 1 || opt.ExtraServices[0].UnitPrice != 150 {
		t.Fatalf("extras parsed wrong: %+v", opt.ExtraServices)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetOptionByIDBadPriceFallsBackToZero(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows(optionColumns()).AddRow(
		int64(6), int64(1), "Broken Option",
		"", "days", "person",
		"not-a-price", "50", "",
		"", "", "",
		"", 0,
		"[]", "[]",
		"", false,
	)
	mock.ExpectQuery("FROM tour_options").WithArgs(int64(6)).WillReturnRows(rows)

	opt, err := PackageRepository{DB: db}.GetOptionByID(6)
	if err != nil {
		t.Fatalf("a malformed price must not fail the read: %v", err)
	}
	if opt.AdultPrice != 0 {
		t.Fatalf("unparsable price should fall back to 0, got %v", opt.AdultPrice)
	}
	if opt.ChildPrice != 50 {
		t.Fatalf("valid sibling price lost: %v", opt.ChildPrice)
	}
}

func TestGetPackageBySlugNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM tour_packages").WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = PackageRepository{DB: db}.GetPackageBySlug("missing")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
