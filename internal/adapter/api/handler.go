package api

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"strings"
	"time"

	"whatameating/internal/domain/entity"
	"whatameating/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const PredictionErrorMessage = "Unable to analyse this photo right now. Please try again."

type UploadHandler struct {
	recognizer *usecase.Recognizer
	audit      *usecase.AuditLogger
	maxSize    int64
}

func NewUploadHandler(r *usecase.Recognizer, audit *usecase.AuditLogger, maxSize int) *UploadHandler {
	return &UploadHandler{recognizer: r, audit: audit, maxSize: int64(maxSize)}
}

func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	image, err := h.readPhoto(c)
	if err != nil {
		if errors.Is(err, entity.ErrPhotoTooLarge) {
			return c.Status(fiber.StatusRequestEntityTooLarge).SendString(err.Error())
		}
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	log.Println("===============================================")
	log.Printf("[UPLOAD] Incoming file upload %d bytes", len(image))
	log.Println("===============================================")

	entry := entity.AuditLogEntry{
		ID:       uuid.NewString(),
		IP:       usecase.ClientIP(strings.Clone(c.IP())),
		InitTime: time.Now(),
		Size:     len(image),
	}
	// Exactly one audit entry per upload, on every path below.
	defer func() {
		entry.CompTime = time.Now()
		h.audit.Record(entry)
	}()

	rec, err := h.recognizer.Recognize(c.UserContext(), image)
	if err != nil {
		log.Printf("[UPLOAD] Prediction failed: %v", err)
		entry.Desc = err.Error()
		uploadsTotal.WithLabelValues("error").Inc()
		return c.Status(fiber.StatusBadGateway).Type("html").SendString(PredictionErrorMessage)
	}

	log.Printf("[UPLOAD] Resolved %d item(s): %s", len(rec.Details), detailNames(rec.Details))
	log.Println(rec.Text)
	entry.Desc = rec.Text
	if len(rec.Results) == 0 {
		uploadsTotal.WithLabelValues("undetected").Inc()
	} else {
		uploadsTotal.WithLabelValues("detected").Inc()
	}

	return c.Status(fiber.StatusOK).Type("html").SendString(rec.Text)
}

func (h *UploadHandler) readPhoto(c *fiber.Ctx) ([]byte, error) {
	fh, err := c.FormFile("photo")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrMissingPhoto, err)
	}
	if fh.Size > h.maxSize {
		return nil, fmt.Errorf("%w: %d > %d bytes", entity.ErrPhotoTooLarge, fh.Size, h.maxSize)
	}
	return readAll(fh)
}

func readAll(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrMissingPhoto, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrMissingPhoto, err)
	}
	return data, nil
}

func detailNames(details []entity.FoodDetail) string {
	names := make([]string, len(details))
	for i, d := range details {
		names[i] = d.DisplayName
	}
	return strings.Join(names, ", ")
}
