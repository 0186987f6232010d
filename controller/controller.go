package controller

import (
	"context"
	"errors"
	"net/http"

	"dalshop-gateway/clients"
	"dalshop-gateway/dal"
	"dalshop-gateway/middleware"
	"dalshop-gateway/models"
	"dalshop-gateway/repository"
	"dalshop-gateway/services"
	"dalshop-gateway/utils/logger"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	Auth  *AuthController
	Shop  *ShopController
	Cart  *CartController
	Order *OrderController
	Admin *AdminController

	gate *middleware.SessionGate
}

func NewController(ctx context.Context, cfg *models.Config, log logger.Logger) *Controller {
	dbclient, err := dal.NewDynamoDBClient(cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize DynamoDB client: %v", err)
	}

	sessionRepo := repository.NewSessionRepository(dbclient, cfg, log)
	gate := middleware.NewSessionGate(cfg, sessionRepo, log)

	identity := clients.NewIdentityClient(cfg, log)
	backend := clients.NewBackend(cfg, sessionRepo, log)
	container := services.NewService(identity, backend, sessionRepo, log, cfg)

	registerFormValidators()

	return &Controller{
		Auth:  NewAuthController(ctx, cfg, container.GetSessionService(), log),
		Shop:  NewShopController(ctx, clients.NewProductClient(backend), log),
		Cart:  NewCartController(ctx, container.GetCartService(), log),
		Order: NewOrderController(ctx, container.GetCheckoutService(), clients.NewOrderClient(backend), log),
		Admin: NewAdminController(ctx, clients.NewAdminClient(backend), log),
		gate:  gate,
	}
}

// registerFormValidators adds the custom binding rules the form structs use
func registerFormValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("rolename", func(fl validator.FieldLevel) bool {
			switch models.Role(fl.Field().String()) {
			case models.RoleUser, models.RoleAdmin:
				return true
			}
			return false
		})
	}
}

func (c *Controller) RegisterRoutes(ctx context.Context, config *models.Config, r *gin.Engine, basePath string) error {
	log := logger.NewLogger(config.LogLevel, config.LogFormat)

	cors := middleware.NewCORSMiddleware(config)
	logging := middleware.NewLoggingMiddleware(log)

	r.Use(cors.CORS())
	r.Use(logging.StructuredLogger())
	r.Use(logging.Recovery())
	// Session is resolved on every request; the gate re-decides per
	// navigation, nothing is cached between renders.
	r.Use(c.gate.ResolveSession())

	v1 := r.Group(basePath)

	// Health check endpoint (no auth required)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"version": config.AppVersion,
			"service": config.AppName,
		})
	})

	// Public navigation pages. The gateway returns JSON view payloads; the
	// login and register pages are parameterized by audience (user/admin).
	v1.GET("/", func(gc *gin.Context) {
		gc.Redirect(http.StatusFound, middleware.HomePath(middleware.CurrentSession(gc)))
	})
	v1.GET("/login/:type", func(gc *gin.Context) {
		gc.JSON(200, models.APIResponse{
			Status: "success",
			Code:   200,
			Data:   gin.H{"page": "login", "audience": gc.Param("type")},
		})
	})
	v1.GET("/register/:type", func(gc *gin.Context) {
		gc.JSON(200, models.APIResponse{
			Status: "success",
			Code:   200,
			Data:   gin.H{"page": "register", "audience": gc.Param("type")},
		})
	})
	v1.GET("/verify", func(gc *gin.Context) {
		gc.JSON(200, models.APIResponse{
			Status: "success",
			Code:   200,
			Data:   gin.H{"page": "verify"},
		})
	})
	v1.GET("/unauthorized", func(gc *gin.Context) {
		gc.JSON(200, models.APIResponse{
			Status:  "success",
			Code:    200,
			Message: "This page is not available for your account",
			Data:    gin.H{"page": "unauthorized", "home": middleware.HomePath(middleware.CurrentSession(gc))},
		})
	})

	// Public authentication surface
	auth := v1.Group("/auth")
	auth.POST("/login", c.Auth.Login)
	auth.POST("/commit", c.Auth.Commit)
	auth.POST("/logout", c.Auth.Logout)
	auth.POST("/register", c.Auth.Register)
	auth.POST("/verify", c.Auth.Verify)
	auth.POST("/resend", c.Auth.Resend)

	// Customer pages, gated on the User role
	user := v1.Group("/", c.gate.RequireRole(models.RoleUser))
	user.GET("/user/shop", c.Shop.List)
	user.GET("/product/:id", c.Shop.Details)
	user.GET("/products/search", c.Shop.Search)
	user.GET("/cart", c.Cart.Get)
	user.POST("/cart/add", c.Cart.Add)
	user.POST("/cart/update", c.Cart.Update)
	user.POST("/cart/remove", c.Cart.Remove)
	user.POST("/checkout", c.Order.Checkout)
	user.GET("/order-success/:id", c.Order.Success)
	user.GET("/orders", c.Order.ListMine)

	// Admin pages, gated on the Admin role
	admin := v1.Group("/admin", c.gate.RequireRole(models.RoleAdmin))
	admin.GET("/shop", c.Shop.List)
	admin.GET("/orders", c.Order.ListAll)
	admin.POST("/add", c.Admin.Add)
	admin.POST("/update", c.Admin.Update)
	admin.POST("/delete", c.Admin.Delete)

	// Unknown paths go to the role-appropriate default page
	r.NoRoute(func(gc *gin.Context) {
		session := middleware.CurrentSession(gc)
		gc.Redirect(http.StatusFound, middleware.HomePath(session))
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:    config.AppHost + ":" + config.AppPort,
		Handler: r,
	}
	// Start server
	log.Infof("🚀 Starting server on %s:%s", config.AppHost, config.AppPort)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// respondServiceError translates the failure taxonomy into one response
// shape. 401 and 403 carry the navigation target; everything else is
// surfaced for display and left unretried.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrSessionExpired):
		c.JSON(http.StatusUnauthorized, models.APIResponse{
			Status:  "error",
			Code:    http.StatusUnauthorized,
			Message: "Session expired, sign in again",
			Error: &models.APIError{
				Type:     "AuthenticationError",
				Details:  err.Error(),
				Redirect: middleware.LoginPath,
			},
		})
	case errors.Is(err, models.ErrAuthorizationDenied):
		c.JSON(http.StatusForbidden, models.APIResponse{
			Status:  "error",
			Code:    http.StatusForbidden,
			Message: "Not authorized",
			Error: &models.APIError{
				Type:     "AuthorizationError",
				Details:  err.Error(),
				Redirect: middleware.UnauthorizedPath,
			},
		})
	case errors.Is(err, models.ErrAuthenticationRejected):
		c.JSON(http.StatusUnauthorized, models.APIResponse{
			Status:  "error",
			Code:    http.StatusUnauthorized,
			Message: "Invalid email or password",
			Error: &models.APIError{
				Type:    "AuthenticationError",
				Details: "Invalid email or password",
			},
		})
	case errors.Is(err, models.ErrSecondFactorRejected):
		c.JSON(http.StatusUnauthorized, models.APIResponse{
			Status:  "error",
			Code:    http.StatusUnauthorized,
			Message: "Verification challenge failed",
			Error: &models.APIError{
				Type:    "AuthenticationError",
				Details: err.Error(),
			},
		})
	default:
		c.JSON(http.StatusBadGateway, models.APIResponse{
			Status:  "error",
			Code:    http.StatusBadGateway,
			Message: "Upstream request failed",
			Error: &models.APIError{
				Type:    "UpstreamError",
				Details: err.Error(),
			},
		})
	}
}

// respondBindError reports a form that failed validation.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.APIResponse{
		Status:  "error",
		Code:    http.StatusBadRequest,
		Message: "Invalid request",
		Error: &models.APIError{
			Type:    "ValidationError",
			Details: err.Error(),
		},
	})
}

// requireSubject extracts the user ID from the verified session. The route
// gate has already admitted the request, but cart and order calls also need
// the subject from the committed identity payload.
func requireSubject(c *gin.Context) (string, bool) {
	session := middleware.CurrentSession(c)
	if sub := session.Subject(); sub != "" {
		return sub, true
	}

	c.JSON(http.StatusUnauthorized, models.APIResponse{
		Status:  "error",
		Code:    http.StatusUnauthorized,
		Message: "Session not verified",
		Error: &models.APIError{
			Type:     "AuthenticationError",
			Details:  "Complete the verification challenge to continue",
			Redirect: middleware.LoginPath,
		},
	})
	return "", false
}
