package services

import (
	"bytes"
	"database/sql"
	"fmt"
	"strings"
	"time"

	intconfig "tourbooking/internal/config"
	"tourbooking/internal/domain/models"
	"tourbooking/internal/repositories"
	"tourbooking/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders booking vouchers as PDF.
type DocsService struct {
	BookingRepo repositories.BookingLineRepository
	DB          *sql.DB
	RequestID   string
	Loader      func(int64) (models.BookingLine, error)
}

func (s DocsService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s DocsService) bookings() repositories.BookingLineRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingLineRepository{DB: s.db()}
}

func (s DocsService) GenerateVoucher(bookingID int64) ([]byte, string, error) {
	load := s.Loader
	if load == nil {
		load = s.bookings().GetByID
	}
	line, err := load(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_voucher", fmt.Sprintf("booking_id=%d", bookingID))
	return buildVoucherPDF(line)
}

func buildVoucherPDF(line models.BookingLine) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Voucher", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING VOUCHER")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	rows := []string{
		fmt.Sprintf("Booking Code : TRV-%d", line.ID),
		fmt.Sprintf("Tour Option  : %s", safe(line.OptionTitle, "-")),
		fmt.Sprintf("Travel Date  : %s %s", safe(line.TravelDate, "-"), line.TimeSlot),
		fmt.Sprintf("Guests       : %s", guestSummary(line)),
		fmt.Sprintf("Transfer     : %s", safe(line.TransferType, "-")),
	}
	if line.TransferType != models.TransferNone {
		rows = append(rows, fmt.Sprintf("Pickup       : %s", safe(line.PickupLocation, "-")))
	}
	for _, r := range rows {
		pdf.Cell(0, 7, r)
		pdf.Ln(7)
	}

	if len(line.ExtraServicesBreakdown) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Extra Services")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 12)
		for _, ex := range line.ExtraServicesBreakdown {
			pdf.Cell(0, 7, fmt.Sprintf("%s  x%d  @ %s  =  %s",
				ex.Name, ex.Quantity, utils.FormatMoney(ex.UnitPrice), utils.FormatMoney(ex.LineTotal)))
			pdf.Ln(7)
		}
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "Total: "+utils.FormatMoney(line.TotalPrice))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this voucher at the meeting point. Issued "+time.Now().Format("2006-01-02 15:04")+".", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("VOUCHER_%d_%s.pdf", line.ID, safeFilenamePart(line.OptionTitle))
	return buf.Bytes(), filename, nil
}

func guestSummary(line models.BookingLine) string {
	if line.PricingType == models.PricingPerGroup {
		return fmt.Sprintf("%d guests in %d unit(s)", line.Guests, line.Units)
	}
	return fmt.Sprintf("%d adult(s), %d child(ren), %d infant(s)", line.Adults, line.Children, line.Infants)
}

func safe(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func safeFilenamePart(s string) string {
	s = strings.TrimSpace(s)
	var out strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			out.WriteByte('_')
		}
	}
	if out.Len() == 0 {
		return "booking"
	}
	return out.String()
}
