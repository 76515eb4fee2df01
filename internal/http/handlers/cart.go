package handlers

import (
	"net/http"

	"tourbooking/internal/domain/models"
	"tourbooking/internal/http/middleware"
	"tourbooking/internal/services"
	"tourbooking/internal/utils"

	"github.com/gin-gonic/gin"
)

func cartService(c *gin.Context) services.CartService {
	return services.CartService{RequestID: middleware.GetRequestID(c)}
}

func bookingService(c *gin.Context) services.BookingService {
	return services.BookingService{RequestID: middleware.GetRequestID(c)}
}

type selectionRequest struct {
	OptionID  int64            `json:"option_id"`
	Selection models.Selection `json:"selection"`
}

// POST /api/quote
// Prices a candidate selection without validation or cart writes; the
// storefront calls this on every input change.
func GetQuote(c *gin.Context) {
	var req selectionRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	total, err := cartService(c).Quote(req.OptionID, req.Selection)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total":           total,
		"total_formatted": utils.FormatMoney(total),
	})
}

// POST /api/cart/items  (Add to Cart)
func AddCartItem(c *gin.Context) {
	token := CartToken(c)
	if token == "" {
		respondError(c, http.StatusBadRequest, "cart_token_required", "X-Cart-Token header is required", nil)
		return
	}
	var req selectionRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	line, err := cartService(c).AddLine(token, req.OptionID, req.Selection)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, line)
}

// GET /api/cart
func GetCart(c *gin.Context) {
	token := CartToken(c)
	if token == "" {
		respondError(c, http.StatusBadRequest, "cart_token_required", "X-Cart-Token header is required", nil)
		return
	}
	cart, err := cartService(c).GetCart(token)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// DELETE /api/cart/items/:id
func RemoveCartItem(c *gin.Context) {
	token := CartToken(c)
	if token == "" {
		respondError(c, http.StatusBadRequest, "cart_token_required", "X-Cart-Token header is required", nil)
		return
	}
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if err := cartService(c).RemoveLine(token, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// DELETE /api/cart
func ClearCart(c *gin.Context) {
	token := CartToken(c)
	if token == "" {
		respondError(c, http.StatusBadRequest, "cart_token_required", "X-Cart-Token header is required", nil)
		return
	}
	if err := cartService(c).Clear(token); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cleared": true})
}

// POST /api/bookings  (Book Now)
func CreateBooking(c *gin.Context) {
	var req selectionRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	line, err := bookingService(c).BookNow(req.OptionID, req.Selection)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, line)
}

// GET /api/bookings/:id
func GetBooking(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	line, err := bookingService(c).GetBooking(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, line)
}

// GET /api/bookings/:id/voucher
func GetBookingVoucherPDF(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}
	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateVoucher(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
