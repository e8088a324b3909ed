package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/images"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/storage"
)

// Limite do arquivo original enviado (antes da conversão p/ webp).
const maxUploadBytes = 8 << 20

type ProfileImageHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
}

func NewProfileImageHandler(db *gorm.DB, uploader *storage.Uploader) *ProfileImageHandler {
	return &ProfileImageHandler{db: db, uploader: uploader}
}

// Upload recebe multipart (campo "image"), converte para webp
// reduzido e publica no bucket. A URL final fica no cadastro do
// profissional.
func (h *ProfileImageHandler) Upload(c *gin.Context) {
	clinicID := c.MustGet(middleware.ContextClinicID).(uint)
	id := c.Param("id")

	if h.uploader == nil {
		httperr.BadRequest(c, "storage_disabled", "Upload de imagens não está configurado.")
		return
	}

	var professional models.Professional
	if err := h.db.
		Where("id = ? AND clinic_id = ?", id, clinicID).
		First(&professional).Error; err != nil {

		httperr.NotFound(c, "professional_not_found", "Profissional não encontrado.")
		return
	}

	file, _, err := c.Request.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Envie o arquivo no campo image.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Erro ao ler a imagem.")
		return
	}
	if len(data) > maxUploadBytes {
		httperr.BadRequest(c, "image_too_large", "Imagem acima de 8MB.")
		return
	}

	converted, err := images.ToProfileWebP(data)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Arquivo não é uma imagem jpeg/png válida.")
		return
	}

	key := fmt.Sprintf("profiles/clinic-%d/professional-%d.webp", clinicID, professional.ID)

	url, err := h.uploader.Upload(c.Request.Context(), key, converted, "image/webp")
	if err != nil {
		httperr.Internal(c, "upload_failed", "Erro ao publicar a imagem.")
		return
	}

	professional.ProfileImageURL = url
	if err := h.db.Save(&professional).Error; err != nil {
		httperr.Internal(c, "failed_to_update_professional", "Erro ao salvar a URL da imagem.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile_image_url": url})
}
