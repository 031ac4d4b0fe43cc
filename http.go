package users

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// MediaType is the JSON:API media type this API speaks.
const MediaType = "application/vnd.api+json"

// Controller adapts the pipelines to fiber. Handlers own no validation
// logic; they forward the raw body and mirror the pipeline Result onto the
// response, so exactly one response is written per request.
type Controller struct {
	registrar *Registrar
	auther    *Auther
}

// NewController creates the HTTP controller.
func NewController(registrar *Registrar, auther *Auther) *Controller {
	return &Controller{registrar: registrar, auther: auther}
}

// RegisterRoutes mounts the JSON:API surface under /api/v1.
func RegisterRoutes(app *fiber.App, c *Controller) {
	api := app.Group("/api/v1", RequireJSONAPIMediaType)

	api.Post("/users", c.CreateUser)
	api.Get("/users/:username", c.ShowUser)
	api.Patch("/users/:username", c.UpdateUser)
	api.Delete("/users/:username", c.DeleteUser)
	api.Post("/authentication", c.Authenticate)
}

// RequireJSONAPIMediaType verifies the client's Accept header and, on
// requests that carry a body, the Content-Type header, before any pipeline
// runs.
func RequireJSONAPIMediaType(c *fiber.Ctx) error {
	if !strings.Contains(c.Get(fiber.HeaderAccept), MediaType) {
		return respond(c, errorsResult(NotAcceptable()))
	}

	if len(c.Body()) > 0 && !strings.HasPrefix(c.Get(fiber.HeaderContentType), MediaType) {
		return respond(c, errorsResult(UnsupportedMediaType()))
	}

	return c.Next()
}

// CreateUser handles POST /api/v1/users.
func (h *Controller) CreateUser(c *fiber.Ctx) error {
	return respond(c, h.registrar.Register(c.UserContext(), c.Body()))
}

// ShowUser handles GET /api/v1/users/:username.
func (h *Controller) ShowUser(c *fiber.Ctx) error {
	return respond(c, h.registrar.Show(c.UserContext(), c.Params("username")))
}

// UpdateUser handles PATCH /api/v1/users/:username.
func (h *Controller) UpdateUser(c *fiber.Ctx) error {
	return respond(c, h.registrar.Update(c.UserContext(), c.Params("username"), c.Body()))
}

// DeleteUser handles DELETE /api/v1/users/:username.
func (h *Controller) DeleteUser(c *fiber.Ctx) error {
	return respond(c, h.registrar.Delete(c.UserContext(), c.Params("username")))
}

// Authenticate handles POST /api/v1/authentication.
func (h *Controller) Authenticate(c *fiber.Ctx) error {
	return respond(c, h.auther.Authenticate(c.UserContext(), c.Body()))
}

func respond(c *fiber.Ctx, res *Result) error {
	return c.Status(res.Status).JSON(res.Body, MediaType)
}
