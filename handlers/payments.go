package handlers

import (
	"context"
	"math"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tohahpro/trendNest-server/database"
	"github.com/tohahpro/trendNest-server/middleware"
	"github.com/tohahpro/trendNest-server/models"
	"github.com/tohahpro/trendNest-server/utils"
)

type paymentIntentRequest struct {
	Price float64 `json:"price"`
}

// CreatePaymentIntent asks the gateway for a card payment intent over
// the posted membership price and hands the client secret back for the
// browser-side confirmation step.
func CreatePaymentIntent(c echo.Context) error {
	var req paymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	if req.Price <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Price must be positive"})
	}

	intent, err := utils.CreatePaymentIntent(toCents(req.Price))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create payment intent"})
	}

	return c.JSON(http.StatusOK, map[string]string{"clientSecret": intent.ClientSecret})
}

// toCents converts a major-unit price to the gateway's integer minor
// units, rounding to the nearest cent.
func toCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

// SavePayment records a confirmed charge under the caller's email.
func SavePayment(c echo.Context) error {
	var payment models.Payment
	if err := c.Bind(&payment); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	if payment.TransactionID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Transaction ID is required"})
	}

	payment.ID = primitive.NewObjectID()
	payment.Email = middleware.CallerEmail(c)
	payment.Date = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.Payments().InsertOne(ctx, payment)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to record payment"})
	}

	return c.JSON(http.StatusCreated, result)
}

// GetPayments lists the payment history for an email. Callers can only
// read their own history.
func GetPayments(c echo.Context) error {
	email := c.Param("email")
	if email != middleware.CallerEmail(c) {
		return c.JSON(http.StatusForbidden, map[string]interface{}{"message": "forbidden access"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.Payments().Find(ctx, bson.M{"email": email})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch payments"})
	}
	defer cursor.Close(ctx)

	payments := []models.Payment{}
	if err := cursor.All(ctx, &payments); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to decode payments"})
	}

	return c.JSON(http.StatusOK, payments)
}
