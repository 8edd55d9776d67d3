package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"solemate/internal/domain/models"
	"solemate/internal/lib/logger/sl"
	"solemate/internal/services/advice"
	usersvc "solemate/internal/services/user_service"
	wishsvc "solemate/internal/services/wishlist_service"
	"solemate/internal/transport/http/dto"
	"solemate/internal/transport/http/dto/request"
	"solemate/internal/transport/http/dto/response"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

type UserService interface {
	RegisterNewUser(ctx context.Context, input dto.SignupInput) (int64, error)
	Login(ctx context.Context, email, password string) (models.User, string, error)
	Logout(ctx context.Context, sessionID string) error
	Profile(ctx context.Context, sessionID string) (models.User, error)
}

type CatalogService interface {
	Products(ctx context.Context) ([]models.Product, error)
}

type OrderService interface {
	PlaceOrder(ctx context.Context, input dto.PlaceOrderInput) (int64, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
}

type WishlistService interface {
	Add(ctx context.Context, input dto.AddWishlistInput) error
	List(ctx context.Context) ([]models.WishlistItem, error)
	Remove(ctx context.Context, productID int64) error
}

type Routers struct {
	log             *slog.Logger
	UserService     UserService
	CatalogService  CatalogService
	OrderService    OrderService
	WishlistService WishlistService
}

func NewRouter(log *slog.Logger, userService UserService, catalogService CatalogService, orderService OrderService, wishlistService WishlistService) *Routers {
	return &Routers{
		log:             log,
		UserService:     userService,
		CatalogService:  catalogService,
		OrderService:    orderService,
		WishlistService: wishlistService,
	}
}

const sessionIDKey = "session_id"

func (r *Routers) Signup(c echo.Context) error {
	const op = "http.routers.Signup"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.SignupInput

	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrMissingFields)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("signup validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrMissingFields)
	}

	if _, err := r.UserService.RegisterNewUser(c.Request().Context(), req); err != nil {
		if errors.Is(err, usersvc.ErrUserExist) {
			return c.JSON(http.StatusConflict, response.ErrEmailExists)
		}

		log.Error("registration failed", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusCreated, response.Message{Message: "Signup successful"})
}

func (r *Routers) Login(c echo.Context) error {
	const op = "http.routers.Login"

	log := r.log.With(
		slog.String("op", op),
	)

	var req request.LoginRequest

	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrEmailPasswordRequired)
	}

	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, response.ErrEmailPasswordRequired)
	}

	user, sessionID, err := r.UserService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usersvc.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, response.ErrInvalidCredentials)
		}

		log.Error("login failed", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	sess, _ := session.Get("session", c)
	sess.Values[sessionIDKey] = sessionID
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		log.Error("failed to save session cookie", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.LoginResponse{
		User: response.LoginUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Phone: user.Phone,
			Photo: user.ProfilePic,
		},
	})
}

// Logout always replies 200, with or without an active session.
func (r *Routers) Logout(c echo.Context) error {
	const op = "http.routers.Logout"

	sess, _ := session.Get("session", c)

	if sessionID, ok := sess.Values[sessionIDKey].(string); ok && sessionID != "" {
		if err := r.UserService.Logout(c.Request().Context(), sessionID); err != nil {
			r.log.Error("failed to tear down session", slog.String("op", op), sl.Err(err))
		}
	}

	delete(sess.Values, sessionIDKey)
	sess.Options.MaxAge = -1
	_ = sess.Save(c.Request(), c.Response())

	return c.JSON(http.StatusOK, response.Message{Message: "Logged out successfully"})
}

func (r *Routers) Profile(c echo.Context) error {
	const op = "http.routers.Profile"

	log := r.log.With(
		slog.String("op", op),
	)

	sess, _ := session.Get("session", c)
	sessionID, _ := sess.Values[sessionIDKey].(string)

	user, err := r.UserService.Profile(c.Request().Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, usersvc.ErrNoSession):
			return c.JSON(http.StatusUnauthorized, response.ErrUnauthorized)
		case errors.Is(err, usersvc.ErrUserNotFound):
			return c.JSON(http.StatusNotFound, response.ErrUserNotFound)
		default:
			log.Error("failed to load profile", sl.Err(err))
			return c.JSON(http.StatusInternalServerError, response.ErrInternal)
		}
	}

	return c.JSON(http.StatusOK, response.ProfileResponse{
		Name:    user.Name,
		Email:   user.Email,
		Phone:   user.Phone,
		Address: user.Address,
		Photo:   user.ProfilePic,
		Wallet:  user.Wallet,
	})
}

func (r *Routers) Products(c echo.Context) error {
	const op = "http.routers.Products"

	products, err := r.CatalogService.Products(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list products", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, products)
}

func (r *Routers) PlaceOrder(c echo.Context) error {
	const op = "http.routers.PlaceOrder"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.PlaceOrderInput

	if err := c.Bind(&req); err != nil {
		log.Warn("malformed order body", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequest)
	}

	if _, err := r.OrderService.PlaceOrder(c.Request().Context(), req); err != nil {
		log.Error("failed to place order", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusCreated, response.Message{Message: "Order placed"})
}

func (r *Routers) ListOrders(c echo.Context) error {
	const op = "http.routers.ListOrders"

	orders, err := r.OrderService.ListOrders(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list orders", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, dto.OrderResponseFromDomain(o))
	}

	return c.JSON(http.StatusOK, resp)
}

func (r *Routers) AddWishlist(c echo.Context) error {
	const op = "http.routers.AddWishlist"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.AddWishlistInput

	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind request", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequest)
	}

	if err := c.Validate(req); err != nil {
		log.Warn("wishlist validation failed", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequest)
	}

	if err := r.WishlistService.Add(c.Request().Context(), req); err != nil {
		if errors.Is(err, wishsvc.ErrAlreadyInWishlist) {
			// the duplicate reply keeps the message key, clients key off it
			return c.JSON(http.StatusConflict, response.Message{Message: "Already in wishlist"})
		}

		log.Error("failed to add wishlist item", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.Message{Message: "Added to wishlist"})
}

func (r *Routers) ListWishlist(c echo.Context) error {
	const op = "http.routers.ListWishlist"

	items, err := r.WishlistService.List(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list wishlist", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, items)
}

func (r *Routers) RemoveWishlist(c echo.Context) error {
	const op = "http.routers.RemoveWishlist"

	log := r.log.With(
		slog.String("op", op),
	)

	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		log.Warn("invalid product id", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequest)
	}

	if err := r.WishlistService.Remove(c.Request().Context(), productID); err != nil {
		log.Error("failed to remove wishlist item", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrInternal)
	}

	return c.JSON(http.StatusOK, response.Message{Message: "Removed from wishlist"})
}

// Advice takes its inputs as form fields, unlike the rest of the API.
func (r *Routers) Advice(c echo.Context) error {
	occasion := c.FormValue("occasion")
	language := c.FormValue("language")
	color := c.FormValue("color")
	size := c.FormValue("size")

	message := advice.ForOccasion(occasion, language, size, color)

	return c.JSON(http.StatusOK, response.AdviceResponse{Message: message})
}

func (r *Routers) PersonalityQuiz(c echo.Context) error {
	const op = "http.routers.PersonalityQuiz"

	var req request.QuizRequest

	if err := c.Bind(&req); err != nil {
		r.log.Warn("malformed quiz body", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequest)
	}

	return c.JSON(http.StatusOK, response.QuizResponse{Result: advice.PersonalityResult(req.Answers)})
}

func (r *Routers) StyleMatch(c echo.Context) error {
	const op = "http.routers.StyleMatch"

	var req request.StyleMatchRequest

	if err := c.Bind(&req); err != nil {
		r.log.Warn("malformed style body", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequest)
	}

	return c.JSON(http.StatusOK, response.StyleMatchResponse{Suggestion: advice.StyleMatch(req.OutfitType)})
}
