package handlers

import (
	"fmt"
	"log"

	"katalog/internal/seed"
	"katalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SeedHandler exposes the reset-and-reseed operation.
type SeedHandler struct {
	service *services.SeedService
}

// NewSeedHandler creates a new SeedHandler.
func NewSeedHandler(service *services.SeedService) *SeedHandler {
	return &SeedHandler{
		service: service,
	}
}

// RegisterRoutes registers the seed route with the Fiber app.
func (h *SeedHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/seed", h.HandleRunSeed)
}

// HandleRunSeed wipes the catalog and repopulates it from the bundled
// dataset. A mid-sequence failure leaves the catalog partially reseeded;
// that state is reported, not hidden.
func (h *SeedHandler) HandleRunSeed(c *fiber.Ctx) error {
	created, err := h.service.Run(seed.Products)
	if err != nil {
		log.Printf("Error running seed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": fmt.Sprintf("Seed failed after %d products", created),
		})
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Seed executed successfully, %d products created", created),
	})
}
