// Package fakeapi serves an in-memory storefront API with the same routes and
// response shapes as the real backend. It backs integration tests and the
// `storefront fake-api` command.
package fakeapi

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/util"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const shutdownTimeout = 10 * time.Second

// Options tunes a Server. The zero value starts empty with the wall clock.
type Options struct {
	Seed Seed
	Now  func() time.Time
}

type ServerParams struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Tokens  service.TokenService
	Hasher  service.PasswordHasher
	Options Options `optional:"true"`
}

// Server is the fake storefront API.
type Server struct {
	cfg      *config.Config
	logger   *slog.Logger
	tokens   service.TokenService
	hasher   service.PasswordHasher
	validate *validator.Validate
	db       *tables
	echo     *echo.Echo
}

// New builds a Server and registers every route under /api.
func New(cfg *config.Config, logger *slog.Logger, tokens service.TokenService, hasher service.PasswordHasher, opts Options) *Server {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		tokens:   tokens,
		hasher:   hasher,
		validate: util.NewValidator(),
		db:       newTables(now),
		echo:     echo.New(),
	}
	s.db.apply(opts.Seed)

	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.HTTPErrorHandler = s.handleHTTPError
	s.echo.Use(middleware.Recover())
	s.echo.Use(s.requestID)
	s.echo.Use(s.logRequests)
	s.registerRoutes(s.echo.Group("/api"))

	return s
}

// NewServer is the Fx constructor; the HTTP listener is shut down on stop.
func NewServer(params ServerParams) *Server {
	s := New(params.Config, params.Logger, params.Tokens, params.Hasher, params.Options)
	params.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s
}

// ServeHTTP lets the Server run under httptest.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Serve blocks until the listener is closed.
func (s *Server) Serve(_ context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.FakeAPI.Port))
	s.logger.Info("Starting fake storefront API", slog.String("hostPort", hostPort))
	if err := s.echo.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Wrap(err, "failed to serve fake api")
	}

	return nil
}

func (s *Server) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	s.logger.Info("Shutting down fake storefront API")

	return errors.WithStack(s.echo.Shutdown(shutdownCtx))
}

func (s *Server) registerRoutes(api *echo.Group) {
	users := api.Group("/users")
	users.POST("/token/", s.obtainToken)
	users.POST("/token/blacklist/", s.blacklistToken)
	users.POST("/register/", s.register)
	users.GET("/profile/", s.getProfile, s.authenticate)
	users.PATCH("/profile/", s.updateProfile, s.authenticate)

	products := api.Group("/products")
	products.GET("/", s.listProducts)
	products.POST("/", s.createProduct, s.authenticate)
	products.GET("/categories/", s.listCategories)
	products.GET("/featured/", s.listFeaturedProducts)
	products.GET("/daily-essentials/", s.listDailyEssentials)
	products.GET("/brands/", s.listBrands)
	products.GET("/brands/featured/", s.listFeaturedBrands)
	products.GET("/:id/", s.getProduct)
	products.PATCH("/:id/", s.updateProduct, s.authenticate)
	products.DELETE("/:id/", s.deleteProduct, s.authenticate)
	products.GET("/:id/reviews/", s.listProductReviews)
	products.POST("/:id/reviews/create/", s.createProductReview, s.authenticate)

	shops := api.Group("/shops")
	shops.GET("/", s.listShops)
	shops.POST("/", s.createShop, s.authenticate)
	shops.GET("/:id/", s.getShop)
	shops.PATCH("/:id/", s.updateShop, s.authenticate)
	shops.DELETE("/:id/", s.deleteShop, s.authenticate)
	shops.GET("/:id/reviews/", s.listShopReviews)
	shops.POST("/:id/reviews/create/", s.createShopReview, s.authenticate)

	chat := api.Group("/chat", s.authenticate)
	chat.GET("/rooms/", s.listRooms)
	chat.POST("/rooms/", s.createRoom)
	chat.GET("/rooms/:id/", s.getRoom)
	chat.GET("/rooms/:id/messages/", s.listMessages)
	chat.POST("/rooms/:id/messages/create/", s.createMessage)
}
