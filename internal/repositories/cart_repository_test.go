package repositories

import (
	"testing"

	"tourbooking/internal/domain"
	"tourbooking/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func expectCartTableExists(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("information_schema\\.tables").WithArgs("cart_items").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("cart_items"))
}

func TestInsertLineFlushesToDurableCart(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectCartTableExists(mock)
	mock.ExpectExec("INSERT INTO cart_items").
		WillReturnResult(sqlmock.NewResult(7, 1))

	line := models.BookingLine{
		PackageID:    1,
		OptionID:     5,
		OptionTitle:  "Desert Safari",
		PricingType:  models.PricingPerPerson,
		TravelDate:   "2030-05-01",
		Adults:       2,
		TransferType: models.TransferNone,
		ExtraServicesBreakdown: []models.ExtraLine{
			{Name: "Photography", UnitPrice: 150, Quantity: 2, LineTotal: 300},
		},
		TotalPrice: 800,
	}

	id, err := CartRepository{DB: db}.InsertLine("tok-1", line)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected inserted id 7, got %d", id)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListByTokenRebuildsLines(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectCartTableExists(mock)
	rows := sqlmock.NewRows([]string{
		"id", "package_id", "option_id", "option_title", "pricing_type",
		"travel_date", "time_slot",
		"adults", "children", "infants", "guests", "units",
		"transfer_type", "pickup_location", "extras_json", "total_price",
	}).AddRow(
		int64(7), int64(1), int64(5), "Desert Safari", "person",
		"2030-05-01", "09:00",
		2, 1, 0, 0, 0,
		"Private Transfer", "Hotel X",
		`[{"name":"Private Transfer","unit_price":80,"quantity":1,"line_total":80}]`,
		764.45,
	)
	mock.ExpectQuery("FROM cart_items").WithArgs("tok-1").WillReturnRows(rows)

	items, err := CartRepository{DB: db}.ListByToken("tok-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	it := items[0]
	if it.TransferType != models.TransferPrivate || it.PickupLocation != "Hotel X" {
		t.Fatalf("transfer fields lost: %+v", it)
	}
	if len(it.ExtraServicesBreakdown) != 1 || it.ExtraServicesBreakdown[0].LineTotal != 80 {
		t.Fatalf("extras json decoded wrong: %+v", it.ExtraServicesBreakdown)
	}
	if it.TotalPrice != 764.45 {
		t.Fatalf("expected total 764.45, got %v", it.TotalPrice)
	}
}

func TestDeleteLineWrongTokenIsNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	expectCartTableExists(mock)
	mock.ExpectExec("DELETE FROM cart_items").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = CartRepository{DB: db}.DeleteLine("other-token", 7)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestListByTokenRequiresToken(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	_, err = CartRepository{DB: db}.ListByToken("  ")
	if !domain.IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
}
