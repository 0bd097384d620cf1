package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/tourops/tour-logistics/internal/model"
	"github.com/tourops/tour-logistics/internal/repository"
)

// ChecklistHandler serves checklist templates and per-show instances.
type ChecklistHandler struct {
	Shows      *repository.ShowRepo
	Checklists *repository.ChecklistRepo
}

// NewChecklistHandler constructs a ChecklistHandler and panics if a dependency is nil.
func NewChecklistHandler(shows *repository.ShowRepo, checklists *repository.ChecklistRepo) *ChecklistHandler {
	if shows == nil || checklists == nil {
		panic("nil repository passed to NewChecklistHandler")
	}
	return &ChecklistHandler{Shows: shows, Checklists: checklists}
}

// ListTemplates handles GET /v1/checklist-templates.
func (h *ChecklistHandler) ListTemplates(c echo.Context) error {
	templates, err := h.Checklists.ListTemplates(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load templates"})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": templates})
}

// CreateTemplate handles POST /v1/checklist-templates. Item IDs default
// to their position when the client does not supply them.
func (h *ChecklistHandler) CreateTemplate(c echo.Context) error {
	var body struct {
		Name     string `json:"name"`
		Category string `json:"category"`
		Items    []struct {
			ID   string `json:"id"`
			Text string `json:"text"`
		} `json:"items"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if strings.TrimSpace(body.Name) == "" || strings.TrimSpace(body.Category) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name and category are required"})
	}
	if len(body.Items) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "items must not be empty"})
	}
	items := make([]model.ChecklistItem, 0, len(body.Items))
	for i, it := range body.Items {
		text := strings.TrimSpace(it.Text)
		if text == "" {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "item text must not be empty"})
		}
		id := it.ID
		if id == "" {
			id = strconv.Itoa(i + 1)
		}
		items = append(items, model.ChecklistItem{ID: id, Text: text})
	}
	tpl := model.ChecklistTemplate{
		Name:     strings.TrimSpace(body.Name),
		Category: strings.TrimSpace(body.Category),
		Items:    items,
	}
	if err := h.Checklists.CreateTemplate(c.Request().Context(), &tpl); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create template"})
	}
	return c.JSON(http.StatusCreated, tpl)
}

// ListForShow handles GET /v1/shows/:showId/checklists.
func (h *ChecklistHandler) ListForShow(c echo.Context) error {
	showID, err := pathID(c, "showId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid show id"})
	}
	ctx := c.Request().Context()
	if _, err := h.Shows.GetByID(ctx, showID); err != nil {
		return repoError(c, err, "failed to load show")
	}
	instances, err := h.Checklists.ListInstancesByShow(ctx, showID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load checklists"})
	}
	return c.JSON(http.StatusOK, map[string]any{"items": instances})
}

// Instantiate handles POST /v1/shows/:showId/checklists: stamps a
// template onto the show. Items always start uncompleted, whatever the
// template says.
func (h *ChecklistHandler) Instantiate(c echo.Context) error {
	showID, err := pathID(c, "showId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid show id"})
	}
	var body struct {
		TemplateID uint64 `json:"template_id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}
	if body.TemplateID == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "template_id is required"})
	}
	ctx := c.Request().Context()
	if _, err := h.Shows.GetByID(ctx, showID); err != nil {
		return repoError(c, err, "failed to load show")
	}
	tpl, err := h.Checklists.GetTemplate(ctx, body.TemplateID)
	if err != nil {
		return repoError(c, err, "failed to load template")
	}
	items := make([]model.ChecklistItem, len(tpl.Items))
	for i, it := range tpl.Items {
		items[i] = model.ChecklistItem{ID: it.ID, Text: it.Text, Completed: false}
	}
	instance := model.ChecklistInstance{
		ShowID:     showID,
		TemplateID: tpl.ID,
		Items:      items,
	}
	if err := h.Checklists.CreateInstance(ctx, &instance); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create checklist"})
	}
	instance.Template = tpl
	return c.JSON(http.StatusCreated, instance)
}

// ToggleItem handles PATCH /v1/checklists/:id/items/:itemId, flipping one
// item's completed flag.
func (h *ChecklistHandler) ToggleItem(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid checklist id"})
	}
	itemID := c.Param("itemId")
	if itemID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid item id"})
	}
	ctx := c.Request().Context()
	instance, err := h.Checklists.GetInstanceByID(ctx, id)
	if err != nil {
		return repoError(c, err, "failed to load checklist")
	}
	found := false
	for i := range instance.Items {
		if instance.Items[i].ID == itemID {
			instance.Items[i].Completed = !instance.Items[i].Completed
			found = true
			break
		}
	}
	if !found {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "checklist item not found"})
	}
	if err := h.Checklists.UpdateInstanceItems(ctx, instance); err != nil && err != repository.ErrNoChange {
		return repoError(c, err, "could not update checklist")
	}
	return c.JSON(http.StatusOK, instance)
}

// DeleteInstance handles DELETE /v1/shows/:showId/checklists/:id.
func (h *ChecklistHandler) DeleteInstance(c echo.Context) error {
	showID, err := pathID(c, "showId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid show id"})
	}
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid checklist id"})
	}
	if err := h.Checklists.DeleteInstance(c.Request().Context(), showID, id); err != nil {
		return repoError(c, err, "could not delete checklist")
	}
	return c.NoContent(http.StatusNoContent)
}
