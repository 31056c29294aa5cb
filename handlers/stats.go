package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/tohahpro/trendNest-server/database"
)

// AdminStats serves the dashboard numbers: collection sizes plus total
// revenue summed over the payments collection.
func AdminStats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	users, err := database.Users().EstimatedDocumentCount(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to count users"})
	}

	products, err := database.Products().EstimatedDocumentCount(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to count products"})
	}

	payments, err := database.Payments().EstimatedDocumentCount(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to count payments"})
	}

	revenue, err := totalRevenue(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to compute revenue"})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"users":    users,
		"products": products,
		"payments": payments,
		"revenue":  revenue,
	})
}

func totalRevenue(ctx context.Context) (float64, error) {
	pipeline := []bson.M{
		{"$group": bson.M{
			"_id":     nil,
			"revenue": bson.M{"$sum": "$price"},
		}},
	}

	cursor, err := database.Payments().Aggregate(ctx, pipeline)
	if err != nil {
		return 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Revenue float64 `bson:"revenue"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, err
	}

	if len(results) == 0 {
		return 0, nil
	}
	return results[0].Revenue, nil
}
