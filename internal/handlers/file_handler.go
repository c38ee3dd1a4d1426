package handlers

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// validExtensions is the allow-list for product image uploads.
var validExtensions = []string{"png", "jpg", "jpeg", "gif", "webp"}

// FileHandler handles product image upload and static serving. The catalog
// core treats the resulting url as an opaque, pre-validated string.
type FileHandler struct {
	staticDir string
	hostAPI   string
}

// NewFileHandler creates a new FileHandler. staticDir is where uploads are
// stored; hostAPI prefixes the returned secure urls.
func NewFileHandler(staticDir, hostAPI string) *FileHandler {
	return &FileHandler{
		staticDir: staticDir,
		hostAPI:   hostAPI,
	}
}

// RegisterRoutes registers the file routes with the Fiber app.
func (h *FileHandler) RegisterRoutes(router fiber.Router) {
	fileRoutes := router.Group("/files")
	fileRoutes.Post("/product", h.HandleUploadProductImage)
	fileRoutes.Get("/product/:imageName", h.HandleGetProductImage)
}

// allowedExtension reports whether the filename carries an allow-listed
// extension and returns it without the leading dot.
func allowedExtension(filename string) (string, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	for _, valid := range validExtensions {
		if ext == valid {
			return ext, true
		}
	}
	return ext, false
}

// HandleUploadProductImage stores an uploaded image under a collision-resistant
// filename and returns its secure url.
func (h *FileHandler) HandleUploadProductImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Make sure that the file is sent correctly",
		})
	}

	ext, ok := allowedExtension(file.Filename)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": fmt.Sprintf("Extension %q is not allowed, valid extensions: %s", ext, strings.Join(validExtensions, ", ")),
		})
	}

	fileName := fmt.Sprintf("%s.%s", uuid.New().String(), ext)
	if err := c.SaveFile(file, filepath.Join(h.staticDir, fileName)); err != nil {
		log.Printf("Error saving uploaded file: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not store the uploaded file",
		})
	}

	return c.JSON(fiber.Map{
		"secureUrl": fmt.Sprintf("%s/files/product/%s", h.hostAPI, fileName),
	})
}

// HandleGetProductImage serves a previously uploaded product image.
func (h *FileHandler) HandleGetProductImage(c *fiber.Ctx) error {
	imageName := c.Params("imageName")
	// Params never contain path separators, so the join stays inside staticDir.
	return c.SendFile(filepath.Join(h.staticDir, imageName))
}
