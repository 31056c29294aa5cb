package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tohahpro/trendNest-server/database"
	"github.com/tohahpro/trendNest-server/middleware"
	"github.com/tohahpro/trendNest-server/models"
)

const maxPageSize = 50

// CreateProduct lists a new product under the caller's email. New
// listings start pending until a moderator approves them.
func CreateProduct(c echo.Context) error {
	var product models.Product
	if err := c.Bind(&product); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	if product.Name == "" || product.Category == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Name and category are required"})
	}

	product.ID = primitive.NewObjectID()
	product.Email = middleware.CallerEmail(c)
	product.Status = models.ProductStatusPending
	product.Featured = false
	product.CreatedAt = time.Now()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.Products().InsertOne(ctx, product)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create product"})
	}

	return c.JSON(http.StatusCreated, result)
}

// GetProducts returns every product.
func GetProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.Products().Find(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch products"})
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to decode products"})
	}

	return c.JSON(http.StatusOK, products)
}

func GetProduct(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	var product models.Product
	err = database.Products().FindOne(c.Request().Context(), bson.M{"_id": objID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Product not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch product"})
	}

	return c.JSON(http.StatusOK, product)
}

// UpdateProduct replaces the allow-listed listing fields. Status and
// featured have their own moderator routes; owner email is immutable.
func UpdateProduct(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	var req struct {
		Name     string  `json:"name"`
		Category string  `json:"category"`
		Price    float64 `json:"price"`
		Recipe   string  `json:"recipe"`
		Image    string  `json:"image"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	update := bson.M{
		"$set": bson.M{
			"name":     req.Name,
			"category": req.Category,
			"price":    req.Price,
			"recipe":   req.Recipe,
			"image":    req.Image,
		},
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.Products().UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update product"})
	}

	return c.JSON(http.StatusOK, result)
}

// UpdateProductStatus moves a listing between pending/approved/rejected.
func UpdateProductStatus(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	var req struct {
		Status models.ProductStatus `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	switch req.Status {
	case models.ProductStatusPending, models.ProductStatusApproved, models.ProductStatusRejected:
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid status"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.Products().UpdateOne(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"status": req.Status}},
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update status"})
	}

	return c.JSON(http.StatusOK, result)
}

// FeatureProduct flips the featured flag on a listing.
func FeatureProduct(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	var req struct {
		Featured bool `json:"featured"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.Products().UpdateOne(
		ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"featured": req.Featured}},
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update product"})
	}

	return c.JSON(http.StatusOK, result)
}

func DeleteProduct(c echo.Context) error {
	objID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid product ID"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.Products().DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete product"})
	}

	return c.JSON(http.StatusOK, result)
}

// GetProductsPaginated serves ?page=&size= windows over the products
// collection, newest first.
func GetProductsPaginated(c echo.Context) error {
	page, size := parsePagination(c.QueryParam("page"), c.QueryParam("size"))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().
		SetSkip(int64(page * size)).
		SetLimit(int64(size)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := database.Products().Find(ctx, bson.M{}, opts)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch products"})
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to decode products"})
	}

	return c.JSON(http.StatusOK, products)
}

// parsePagination clamps page/size to sane values. Page is zero-based
// to match the client's skip arithmetic.
func parsePagination(pageParam, sizeParam string) (int, int) {
	page, err := strconv.Atoi(pageParam)
	if err != nil || page < 0 {
		page = 0
	}

	size, err := strconv.Atoi(sizeParam)
	if err != nil || size <= 0 {
		size = 10
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	return page, size
}

// GetProductCount reports the estimated number of products, used by the
// client to size its pager.
func GetProductCount(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	count, err := database.Products().EstimatedDocumentCount(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to count products"})
	}

	return c.JSON(http.StatusOK, map[string]int64{"count": count})
}
