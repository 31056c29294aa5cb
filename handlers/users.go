package handlers

import (
	"context"
	"net/http"
	"net/mail"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tohahpro/trendNest-server/database"
	"github.com/tohahpro/trendNest-server/middleware"
	"github.com/tohahpro/trendNest-server/models"
)

// SaveUser records a user on first sign-in. The unique index on email
// carries the duplicate guard; a second sign-in hits the duplicate-key
// error and gets the historical soft response instead of a conflict
// status, because clients treat it as "already registered, carry on".
func SaveUser(c echo.Context) error {
	var user models.User
	if err := c.Bind(&user); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	if !isValidEmail(user.Email) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid email format"})
	}

	user.ID = primitive.NewObjectID()
	user.Role = "" // roles are only ever granted by an admin

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.Users().InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return c.JSON(http.StatusOK, map[string]interface{}{
				"message":    "user already exists",
				"insertedId": nil,
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create user"})
	}

	return c.JSON(http.StatusOK, result)
}

func isValidEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

// GetUsers lists every user. Admin only.
func GetUsers(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := database.Users().Find(ctx, bson.M{})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch users"})
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to decode users"})
	}

	return c.JSON(http.StatusOK, users)
}

// CheckAdmin answers whether the caller is an admin. The email in the
// path must match the verified claims so nobody can probe other
// accounts' roles.
func CheckAdmin(c echo.Context) error {
	return checkRole(c, models.RoleAdmin, "admin")
}

// CheckModerator is the moderator counterpart of CheckAdmin.
func CheckModerator(c echo.Context) error {
	return checkRole(c, models.RoleModerator, "moderator")
}

func checkRole(c echo.Context, role, field string) error {
	email := c.Param("email")
	if email != middleware.CallerEmail(c) {
		return c.JSON(http.StatusForbidden, map[string]interface{}{"message": "forbidden access"})
	}

	stored, err := database.UserRole(c.Request().Context(), email)
	if err != nil && err != database.ErrUserNotFound {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch user"})
	}

	return c.JSON(http.StatusOK, map[string]bool{field: stored == role})
}

// PromoteToAdmin grants the admin role by user id.
func PromoteToAdmin(c echo.Context) error {
	return setRole(c, models.RoleAdmin)
}

// PromoteToModerator grants the moderator role by user id.
func PromoteToModerator(c echo.Context) error {
	return setRole(c, models.RoleModerator)
}

func setRole(c echo.Context, role string) error {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid user ID"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.Users().UpdateOne(
		ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"role": role}},
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update role"})
	}

	return c.JSON(http.StatusOK, result)
}

// UpdateUser replaces the allow-listed profile fields. Callers can only
// touch name and photo; email and role never go through here.
func UpdateUser(c echo.Context) error {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid user ID"})
	}

	var req struct {
		Name  string `json:"name"`
		Photo string `json:"photo"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request format"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.Users().UpdateOne(
		ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"name": req.Name, "photo": req.Photo}},
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update user"})
	}

	return c.JSON(http.StatusOK, result)
}

// DeleteUser removes a user by id. Admin only.
func DeleteUser(c echo.Context) error {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid user ID"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := database.Users().DeleteOne(ctx, bson.M{"_id": userID})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to delete user"})
	}

	return c.JSON(http.StatusOK, result)
}
