package handlers_fiber

import (
	"fmt"

	"smt-backend/internal/entities"
	"smt-backend/internal/response"

	"github.com/gofiber/fiber/v2"
)

func respond(c *fiber.Ctx, res response.Result) error {
	return c.Status(res.Kind.StatusCode()).JSON(res.Envelope())
}

func (h *Handler) writeError(c *fiber.Ctx, err error) error {
	res := response.FromError(err)
	if res.Kind == response.InternalFailure {
		h.log.Errorw("request failed", "method", c.Method(), "path", c.Path(), "error", err)
	}
	return respond(c, res)
}

// parseBody decodes the JSON body. Malformed JSON and out-of-range numbers
// are reported as invalid input.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fmt.Errorf("%w: invalid body: %s", entities.ErrInvalidArgument, err.Error())
	}
	return nil
}

func pathID(c *fiber.Ctx) (entities.ID, error) {
	return entities.ParseID(c.Params("id"))
}
