package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nyashahama/bkw-backend/internal/model"
	"github.com/nyashahama/bkw-backend/internal/server"
	"github.com/nyashahama/bkw-backend/internal/service"
)

type UserHandler struct {
	Handler
	userService *service.UserService
}

func NewUserHandler(s *server.Server, userService *service.UserService) *UserHandler {
	return &UserHandler{
		Handler:     NewHandler(s),
		userService: userService,
	}
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.CreateUserPayload) (*model.User, error) {
			return h.userService.Register(c.Request().Context(), payload)
		},
		http.StatusCreated,
	)(c)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.GetUserPayload) (*model.User, error) {
			return h.userService.Get(c.Request().Context(), payload.ID)
		},
		http.StatusOK,
	)(c)
}

func (h *UserHandler) Login(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.LoginPayload) (*model.LoginResponse, error) {
			return h.userService.Login(c.Request().Context(), payload)
		},
		http.StatusOK,
	)(c)
}
