package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"video-guestbook/internal/domain/dto"
	"video-guestbook/internal/usecases"
	consts "video-guestbook/pkg/constants"
	"video-guestbook/pkg/errors"
)

type AdminHandler struct {
	curation usecases.CurationService
	validate *validator.Validate
}

func NewAdminHandler(curation usecases.CurationService) *AdminHandler {
	return &AdminHandler{
		curation: curation,
		validate: validator.New(),
	}
}

// ListVideos
//
// @Summary      List all submissions with signed playback links
// @Tags         Admin
// @Produce      json
// @Param        token  path      string true "Admin token"
// @Success      200    {object}  dto.AdminListResponseDTO
// @Failure      404    {object}  dto.ErrorResponse
// @Router       /admin/{token}/videos [get]
func (h *AdminHandler) ListVideos(c *fiber.Ctx) error {
	resp, err := h.curation.List(c.Context())
	if err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(resp)
}

// ToggleTag
//
// @Summary      Toggle a tag on a video
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        token    path      string                  true "Admin token"
// @Param        videoID  path      string                  true "Video ID"
// @Param        request  body      dto.ToggleTagRequestDTO true "Tag to toggle"
// @Success      200      {object}  map[string]string
// @Router       /admin/{token}/videos/{videoID}/tag [post]
func (h *AdminHandler) ToggleTag(c *fiber.Ctx) error {
	videoID, err := uuid.Parse(c.Params("videoID"))
	if err != nil {
		return errors.HandleError(c, errors.ErrNotFound(err))
	}

	var req dto.ToggleTagRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleError(c, errors.ErrInternal(err))
	}
	if err := h.validate.Struct(&req); err != nil {
		return errors.HandleError(c, errors.ErrInternal(err))
	}

	if err := h.curation.ToggleTag(c.Context(), videoID, req.Tag); err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(fiber.Map{"status": consts.StatusOK})
}

// ToggleFlag
//
// @Summary      Toggle the favorite or selected flag on a video
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        token    path      string                   true "Admin token"
// @Param        videoID  path      string                   true "Video ID"
// @Param        request  body      dto.ToggleFlagRequestDTO true "Flag field"
// @Success      200      {object}  map[string]string
// @Router       /admin/{token}/videos/{videoID}/flag [post]
func (h *AdminHandler) ToggleFlag(c *fiber.Ctx) error {
	videoID, err := uuid.Parse(c.Params("videoID"))
	if err != nil {
		return errors.HandleError(c, errors.ErrNotFound(err))
	}

	var req dto.ToggleFlagRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleError(c, errors.ErrInternal(err))
	}
	if err := h.validate.Struct(&req); err != nil {
		return errors.HandleError(c, errors.ErrInternal(err))
	}

	if err := h.curation.ToggleFlag(c.Context(), videoID, req.Field); err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(fiber.Map{"status": consts.StatusOK})
}

// Reorder
//
// @Summary      Drop one video in front of another and rewrite the ordering
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        token    path      string                true "Admin token"
// @Param        request  body      dto.ReorderRequestDTO true "Dragging and target ids"
// @Success      200      {array}   dto.ReorderResultDTO
// @Router       /admin/{token}/videos/reorder [post]
func (h *AdminHandler) Reorder(c *fiber.Ctx) error {
	var req dto.ReorderRequestDTO
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleError(c, errors.ErrInternal(err))
	}
	if err := h.validate.Struct(&req); err != nil {
		return errors.HandleError(c, errors.ErrInternal(err))
	}

	draggingID, _ := uuid.Parse(req.DraggingID)
	targetID, _ := uuid.Parse(req.TargetID)

	results, err := h.curation.Reorder(c.Context(), draggingID, targetID)
	if err != nil {
		return errors.HandleError(c, err)
	}
	if results == nil {
		results = []dto.ReorderResultDTO{}
	}
	return c.JSON(results)
}

// DeleteVideo
//
// @Summary      Delete a submission and its stored object
// @Tags         Admin
// @Produce      json
// @Param        token    path      string true "Admin token"
// @Param        videoID  path      string true "Video ID"
// @Success      200      {object}  map[string]string
// @Router       /admin/{token}/videos/{videoID} [delete]
func (h *AdminHandler) DeleteVideo(c *fiber.Ctx) error {
	videoID, err := uuid.Parse(c.Params("videoID"))
	if err != nil {
		return errors.HandleError(c, errors.ErrNotFound(err))
	}

	if err := h.curation.Delete(c.Context(), videoID); err != nil {
		return errors.HandleError(c, err)
	}
	return c.JSON(fiber.Map{"status": consts.StatusOK})
}
