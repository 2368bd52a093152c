package httpapi

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/tempcheck/internal/session"
	"github.com/i474232898/tempcheck/internal/store"
	"github.com/i474232898/tempcheck/internal/temperature"
)

var validate = validator.New()

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *session.Service) {
	v1 := app.Group("/api/v1")

	v1.Get("/units", func(c *fiber.Ctx) error {
		units := temperature.Units()
		out := make([]unitResponse, 0, len(units))
		for _, u := range units {
			out = append(out, unitResponse{Unit: u, Name: u.String(), Symbol: u.Symbol()})
		}
		return c.JSON(out)
	})

	// Stateless conversion: every call carries the full input.
	v1.Get("/convert", func(c *fiber.Ctx) error {
		q := convertQuery{
			Value: c.Query("value"),
			Unit:  c.Query("unit", temperature.Celsius.Key()),
		}
		if err := validate.Struct(q); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		in, err := q.toInput()
		if err != nil {
			return toFiberError(err)
		}
		result, err := in.Convert()
		if err != nil {
			return toFiberError(err)
		}

		return c.JSON(newConversionResponse(in, result))
	})

	screens := v1.Group("/screens")

	screens.Post("/", func(c *fiber.Ctx) error {
		var req changeRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&req); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
			}
		}

		change, err := req.toChange()
		if err != nil {
			return toFiberError(err)
		}

		view, err := service.Create(change.Apply(session.State{}))
		if err != nil {
			return toFiberError(err)
		}

		return c.Status(fiber.StatusCreated).JSON(newScreenResponse(view))
	})

	screens.Get("/:id", func(c *fiber.Ctx) error {
		id, err := screenID(c)
		if err != nil {
			return err
		}

		view, err := service.Get(id)
		if err != nil {
			return toFiberError(err)
		}

		return c.JSON(newScreenResponse(view))
	})

	screens.Patch("/:id", func(c *fiber.Ctx) error {
		id, err := screenID(c)
		if err != nil {
			return err
		}

		var req changeRequest
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		change, err := req.toChange()
		if err != nil {
			return toFiberError(err)
		}

		view, err := service.Update(id, change)
		if err != nil {
			return toFiberError(err)
		}

		return c.JSON(newScreenResponse(view))
	})

	screens.Delete("/:id", func(c *fiber.Ctx) error {
		id, err := screenID(c)
		if err != nil {
			return err
		}

		if err := service.Delete(id); err != nil {
			return toFiberError(err)
		}

		return c.SendStatus(fiber.StatusNoContent)
	})
}

// ErrorHandler renders every error as {"error": true, "message": "..."}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": err.Error(),
	})
}

func toFiberError(err error) error {
	switch {
	case errors.Is(err, temperature.ErrInvalidInput):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		return fiber.NewError(fiber.StatusNotFound, "no converter screen for requested id")
	default:
		log.Printf("ERROR: %v", err)
		return fiber.NewError(fiber.StatusInternalServerError, "failed to convert temperature")
	}
}

func screenID(c *fiber.Ctx) (string, error) {
	id := c.Params("id")
	if err := validate.Var(id, "required,uuid4"); err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "screen id must be a UUID")
	}
	return id, nil
}
