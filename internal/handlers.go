package internal

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

type Handlers struct {
	Service IService
	secret  string
	logger  *zap.SugaredLogger
}

type LoginInput struct {
	TerminalID string `json:"terminal_id"`
	Key        string `json:"key"`
}

func NewHandlers(Service IService, secret string, logger *zap.SugaredLogger) *Handlers {
	return &Handlers{Service: Service, secret: secret, logger: logger}
}

func (h *Handlers) Register(app *fiber.App) {
	api := app.Group("/api")

	api.Post("/terminal/login", h.Login)

	ord := api.Group("/orders")
	ord.Post("/validate", h.ValidateOrder)
	ord.Get("/:uid/instrument", h.GetInstrument)
	ord.Delete("/:uid/instrument", h.CancelInstrument)
}

func (h *Handlers) Login(c *fiber.Ctx) error {
	var i LoginInput

	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on login request: %s", err.Error())
		return c.SendStatus(fiber.StatusBadRequest)
	}

	t, err := h.Service.Login(c.Context(), i.TerminalID, i.Key)
	if err != nil {
		h.logger.Errorf("Error on login request: %s", err.Error())
		if errors.Is(err, ErrInvalidCredentials) {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	setAuthCookie(c, t)
	return c.SendStatus(fiber.StatusOK)
}

func (h *Handlers) ValidateOrder(c *fiber.Ctx) error {
	terminal, err := h.getTerminalFromToken(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	var req ValidationRequest
	if err = c.BodyParser(&req); err != nil || req.Order.UID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Error on validate order request", "data": "incorrect request format"})
	}
	req.Session.TerminalID = terminal

	res, err := h.Service.ValidateOrder(c.Context(), req)
	if err != nil {
		h.logger.Errorf("Error on validate order request: %s", err.Error())
		if errors.Is(err, ErrOrderLocked) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"status": "error", "message": "Error on validate order request", "data": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Error on validate order request", "data": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(res)
}

func (h *Handlers) GetInstrument(c *fiber.Ctx) error {
	if _, err := h.getTerminalFromToken(c); err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	inst, ok := h.Service.ActiveInstrument(c.Params("uid"))
	if !ok {
		return c.SendStatus(fiber.StatusNotFound)
	}

	return c.Status(fiber.StatusOK).JSON(inst)
}

func (h *Handlers) CancelInstrument(c *fiber.Ctx) error {
	if _, err := h.getTerminalFromToken(c); err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	if !h.Service.CancelDisplay(c.Params("uid")) {
		return c.SendStatus(fiber.StatusNotFound)
	}

	return c.SendStatus(fiber.StatusOK)
}

func setAuthCookie(c *fiber.Ctx, token string) {
	cookie := &fiber.Cookie{
		Name:    "token",
		Value:   token,
		Path:    "/",
		Expires: time.Now().Add(12 * time.Hour),
	}

	c.Cookie(cookie)
}

func (h *Handlers) getTerminalFromToken(c *fiber.Ctx) (string, error) {
	tokenString := c.Cookies("token")
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidCredentials
		}
		return []byte(h.secret), nil
	})
	if err != nil {
		return "", err
	}

	terminal, ok := claims["terminal"].(string)
	if !ok || terminal == "" {
		return "", ErrInvalidCredentials
	}
	return terminal, nil
}
