package services

import (
	"bytes"
	"strings"
	"testing"

	"tourbooking/internal/domain/models"
)

func TestGenerateVoucherUsesLoader(t *testing.T) {
	svc := DocsService{
		Loader: func(id int64) (models.BookingLine, error) {
			return models.BookingLine{
				ID:           id,
				OptionTitle:  "Desert Safari",
				PricingType:  models.PricingPerPerson,
				TravelDate:   "2030-05-01",
				TimeSlot:     "09:00",
				Adults:       2,
				Children:     1,
				TransferType: models.TransferPrivate,
				PickupLocation: "Hotel X",
				ExtraServicesBreakdown: []models.ExtraLine{
					{Name: "Private Transfer", UnitPrice: 80, Quantity: 1, LineTotal: 80},
				},
				TotalPrice: 764.45,
			}, nil
		},
	}

	pdf, filename, err := svc.GenerateVoucher(42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if !strings.HasPrefix(filename, "VOUCHER_42_") || !strings.HasSuffix(filename, ".pdf") {
		t.Fatalf("unexpected filename %q", filename)
	}
}
