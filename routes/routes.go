package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tohahpro/trendNest-server/database"
	"github.com/tohahpro/trendNest-server/handlers"
	"github.com/tohahpro/trendNest-server/middleware"
	"github.com/tohahpro/trendNest-server/models"
)

// AccessLevel is the capability a route demands. Every route declares
// one in the table below; nothing attaches gates anywhere else, so the
// whole authorization surface is readable (and testable) in one place.
type AccessLevel int

const (
	Public AccessLevel = iota
	TokenRequired
	ModeratorOnly
	AdminOnly
)

type Route struct {
	Method  string
	Path    string
	Handler echo.HandlerFunc
	Access  AccessLevel
}

// Table is the full route surface with its required access levels.
func Table() []Route {
	return []Route{
		// auth
		{http.MethodPost, "/jwt", handlers.IssueToken, Public},
		{http.MethodPost, "/logout", handlers.Logout, Public},

		// users
		{http.MethodPost, "/user-email", handlers.SaveUser, TokenRequired},
		{http.MethodGet, "/users", handlers.GetUsers, AdminOnly},
		{http.MethodGet, "/users/admin/:email", handlers.CheckAdmin, TokenRequired},
		{http.MethodGet, "/users/moderator/:email", handlers.CheckModerator, TokenRequired},
		{http.MethodPatch, "/users/admin/:id", handlers.PromoteToAdmin, AdminOnly},
		{http.MethodPatch, "/users/moderator/:id", handlers.PromoteToModerator, AdminOnly},
		{http.MethodPut, "/user-update/:id", handlers.UpdateUser, TokenRequired},
		{http.MethodDelete, "/users/:id", handlers.DeleteUser, AdminOnly},

		// products
		{http.MethodPost, "/menu", handlers.CreateProduct, TokenRequired},
		{http.MethodGet, "/menu", handlers.GetProducts, Public},
		{http.MethodGet, "/menu/:id", handlers.GetProduct, Public},
		{http.MethodPatch, "/product-update/:id", handlers.UpdateProduct, AdminOnly},
		{http.MethodPatch, "/product-status/:id", handlers.UpdateProductStatus, ModeratorOnly},
		{http.MethodPatch, "/product-featured/:id", handlers.FeatureProduct, ModeratorOnly},
		{http.MethodDelete, "/menu/:id", handlers.DeleteProduct, AdminOnly},
		{http.MethodGet, "/products-pagination", handlers.GetProductsPaginated, Public},
		{http.MethodGet, "/product-count", handlers.GetProductCount, Public},

		// reviews, votes, reports
		{http.MethodPost, "/reviews", handlers.CreateReview, TokenRequired},
		{http.MethodGet, "/reviews/:productId", handlers.GetReviews, Public},
		{http.MethodPost, "/votes", handlers.CreateVote, TokenRequired},
		{http.MethodGet, "/votes/:productId", handlers.GetVotes, Public},
		{http.MethodPost, "/reports", handlers.CreateReport, TokenRequired},
		{http.MethodGet, "/reports", handlers.GetReports, ModeratorOnly},

		// coupons
		{http.MethodPost, "/coupons", handlers.CreateCoupon, AdminOnly},
		{http.MethodGet, "/coupons", handlers.GetCoupons, Public},
		{http.MethodGet, "/coupons/:code", handlers.GetCoupon, Public},
		{http.MethodPatch, "/coupons/:id", handlers.UpdateCoupon, AdminOnly},
		{http.MethodDelete, "/coupons/:id", handlers.DeleteCoupon, AdminOnly},

		// payments
		{http.MethodPost, "/create-payment-intent", handlers.CreatePaymentIntent, TokenRequired},
		{http.MethodPost, "/payments", handlers.SavePayment, TokenRequired},
		{http.MethodGet, "/payments/:email", handlers.GetPayments, TokenRequired},

		// admin dashboard
		{http.MethodGet, "/admin-stats", handlers.AdminStats, AdminOnly},
	}
}

// Gates resolves an access level into its middleware chain. The role
// gates always sit behind the token gate; a role lookup never runs for
// an unauthenticated caller.
func Gates(access AccessLevel, lookup middleware.RoleLookup) []echo.MiddlewareFunc {
	switch access {
	case TokenRequired:
		return []echo.MiddlewareFunc{middleware.VerifyToken}
	case ModeratorOnly:
		return []echo.MiddlewareFunc{middleware.VerifyToken, middleware.RequireRole(models.RoleModerator, lookup)}
	case AdminOnly:
		return []echo.MiddlewareFunc{middleware.VerifyToken, middleware.RequireRole(models.RoleAdmin, lookup)}
	default:
		return nil
	}
}

func SetupRoutes(e *echo.Echo) {
	for _, r := range Table() {
		e.Add(r.Method, r.Path, r.Handler, Gates(r.Access, database.UserRole)...)
	}

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "TrendNest server is running")
	})

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
