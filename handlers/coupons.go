package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tohahpro/trendNest-server/database"
	"github.com/tohahpro/trendNest-server/models"
)

func CreateCoupon(c echo.Context) error {
	var coupon models.Coupon
	if err := c.Bind(&coupon); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	if coupon.Code == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Coupon code is required"})
	}
	if coupon.Discount <= 0 || coupon.Discount > 100 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Discount must be between 1 and 100"})
	}

	coupon.ID = primitive.NewObjectID()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.Coupons().InsertOne(ctx, coupon)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create coupon"})
	}

	return c.JSON(http.StatusCreated, result)
}

func GetCoupons(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.Coupons().Find(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch coupons"})
	}
	defer cursor.Close(ctx)

	coupons := []models.Coupon{}
	if err := cursor.All(ctx, &coupons); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to decode coupons"})
	}

	return c.JSON(http.StatusOK, coupons)
}

// GetCoupon looks a coupon up by its code, for checkout validation.
func GetCoupon(c echo.Context) error {
	var coupon models.Coupon
	err := database.Coupons().FindOne(
		c.Request().Context(),
		bson.M{"code": c.Param("code")},
	).Decode(&coupon)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Coupon not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch coupon"})
	}

	return c.JSON(http.StatusOK, coupon)
}

// UpdateCoupon replaces the allow-listed coupon fields by id.
func UpdateCoupon(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid coupon ID"})
	}

	var req struct {
		Code        string    `json:"code"`
		Discount    float64   `json:"discount"`
		Description string    `json:"description"`
		EndDate     time.Time `json:"endDate"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	update := bson.M{
		"$set": bson.M{
			"code":        req.Code,
			"discount":    req.Discount,
			"description": req.Description,
			"endDate":     req.EndDate,
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.Coupons().UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update coupon"})
	}

	return c.JSON(http.StatusOK, result)
}

func DeleteCoupon(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid coupon ID"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.Coupons().DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete coupon"})
	}

	return c.JSON(http.StatusOK, result)
}
