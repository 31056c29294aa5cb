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
	"github.com/tohahpro/trendNest-server/middleware"
	"github.com/tohahpro/trendNest-server/models"
)

// Reviews, votes and reports share one shape: stamp the caller's email
// and a timestamp, insert, and echo the acknowledgment. None of them
// can be edited or removed afterwards.

func CreateReview(c echo.Context) error {
	var review models.Review
	if err := c.Bind(&review); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	if review.ProductID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Product ID is required"})
	}
	if review.Rating < 1 || review.Rating > 5 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Rating must be between 1 and 5"})
	}

	review.ID = primitive.NewObjectID()
	review.Email = middleware.CallerEmail(c)
	review.CreatedAt = time.Now()

	result, err := insertOne(database.Reviews(), review)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create review"})
	}

	return c.JSON(http.StatusCreated, result)
}

func GetReviews(c echo.Context) error {
	reviews := []models.Review{}
	if err := findByProduct(database.Reviews(), c.Param("productId"), &reviews); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch reviews"})
	}
	return c.JSON(http.StatusOK, reviews)
}

func CreateVote(c echo.Context) error {
	var vote models.Vote
	if err := c.Bind(&vote); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	if vote.ProductID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Product ID is required"})
	}

	vote.ID = primitive.NewObjectID()
	vote.Email = middleware.CallerEmail(c)
	vote.CreatedAt = time.Now()

	result, err := insertOne(database.Votes(), vote)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to record vote"})
	}

	return c.JSON(http.StatusCreated, result)
}

func GetVotes(c echo.Context) error {
	votes := []models.Vote{}
	if err := findByProduct(database.Votes(), c.Param("productId"), &votes); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch votes"})
	}
	return c.JSON(http.StatusOK, votes)
}

func CreateReport(c echo.Context) error {
	var report models.Report
	if err := c.Bind(&report); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	if report.ProductID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Product ID is required"})
	}

	report.ID = primitive.NewObjectID()
	report.Email = middleware.CallerEmail(c)
	report.CreatedAt = time.Now()

	result, err := insertOne(database.Reports(), report)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create report"})
	}

	return c.JSON(http.StatusCreated, result)
}

// GetReports lists every abuse report for the moderator queue.
func GetReports(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.Reports().Find(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch reports"})
	}
	defer cursor.Close(ctx)

	reports := []models.Report{}
	if err := cursor.All(ctx, &reports); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to decode reports"})
	}

	return c.JSON(http.StatusOK, reports)
}

func insertOne(collection *mongo.Collection, document interface{}) (*mongo.InsertOneResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return collection.InsertOne(ctx, document)
}

func findByProduct(collection *mongo.Collection, productID string, out interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := collection.Find(ctx, bson.M{"productId": productID})
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, out)
}
