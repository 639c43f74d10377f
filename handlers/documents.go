package handlers

import (
	"fmt"
	"lifehub/app"
	"lifehub/middleware"

	"github.com/gofiber/fiber/v2"
)

func ListDocuments(a *app.App) fiber.Handler {
	return listOwned(a.DocumentService.List)
}

// UploadDocument stores a base64 encoded file
func UploadDocument(a *app.App) fiber.Handler {
	return createOwned(a, a.DocumentService.Upload)
}

func DeleteDocument(a *app.App) fiber.Handler {
	return deleteOwned(a.DocumentService.Delete)
}

// DocumentContent streams the stored file back with its recorded content type
func DocumentContent(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := parseID(c, "id")
		if err != nil {
			return respondError(c, err)
		}

		doc, content, err := a.DocumentService.Content(c.UserContext(), middleware.GetUserID(c), id)
		if err != nil {
			return respondError(c, err)
		}

		contentType := doc.Type
		if contentType == "" {
			contentType = fiber.MIMEOctetStream
		}
		c.Set(fiber.HeaderContentType, contentType)
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", doc.Name))

		// fasthttp closes content once the body is written
		return c.SendStream(content, int(doc.Size))
	}
}
