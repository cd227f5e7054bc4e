package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/notehub/notehub/internal/app/models"
	"github.com/notehub/notehub/internal/app/models/dto"
	"github.com/notehub/notehub/internal/app/services"
	"github.com/notehub/notehub/internal/middleware"
)

// TaxonomyController handles subject and professor lookups
type TaxonomyController struct {
	taxonomyService services.TaxonomyService
}

// NewTaxonomyController creates a new TaxonomyController
func NewTaxonomyController(taxonomyService services.TaxonomyService) *TaxonomyController {
	return &TaxonomyController{
		taxonomyService: taxonomyService,
	}
}

// GetTaxonomy handles loading both lookup lists for the submission form
// @Summary Get subjects and professors
// @Description Loads both lists, each ordered by name. Fails if either list cannot be loaded.
// @Tags taxonomy
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.TaxonomyResponse} "Subjects and professors"
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail} "Unauthorized"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail} "Could not load subjects and professors"
// @Router /taxonomy [get]
func (c *TaxonomyController) GetTaxonomy(ctx *gin.Context) {
	catalog, err := c.taxonomyService.Load(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.TaxonomyResponse{
		Subjects:   dto.NewTaxonomyEntryResponses(catalog.Subjects),
		Professors: dto.NewTaxonomyEntryResponses(catalog.Professors),
	}))
}

// ListSubjects handles listing subjects
// @Summary List subjects
// @Tags taxonomy
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.TaxonomyEntryResponse} "Subjects ordered by name"
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail} "Unauthorized"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail} "Internal server error"
// @Router /subjects [get]
func (c *TaxonomyController) ListSubjects(ctx *gin.Context) {
	c.list(ctx, models.KindSubject)
}

// ListProfessors handles listing professors
// @Summary List professors
// @Tags taxonomy
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]dto.TaxonomyEntryResponse} "Professors ordered by name"
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail} "Unauthorized"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail} "Internal server error"
// @Router /professors [get]
func (c *TaxonomyController) ListProfessors(ctx *gin.Context) {
	c.list(ctx, models.KindProfessor)
}

// CreateSubject handles quick-adding a subject
// @Summary Add a subject
// @Description Creates a subject from a trimmed, non-blank name
// @Tags taxonomy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTaxonomyEntryRequest true "Subject name"
// @Success 201 {object} dto.APIResponse{data=dto.TaxonomyEntryResponse} "Subject created"
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail} "Name required"
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail} "Unauthorized"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail} "Could not add subject"
// @Router /subjects [post]
func (c *TaxonomyController) CreateSubject(ctx *gin.Context) {
	c.create(ctx, models.KindSubject)
}

// CreateProfessor handles quick-adding a professor
// @Summary Add a professor
// @Description Creates a professor from a trimmed, non-blank name
// @Tags taxonomy
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTaxonomyEntryRequest true "Professor name"
// @Success 201 {object} dto.APIResponse{data=dto.TaxonomyEntryResponse} "Professor created"
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail} "Name required"
// @Failure 401 {object} dto.APIResponse{error=dto.ErrorDetail} "Unauthorized"
// @Failure 500 {object} dto.APIResponse{error=dto.ErrorDetail} "Could not add professor"
// @Router /professors [post]
func (c *TaxonomyController) CreateProfessor(ctx *gin.Context) {
	c.create(ctx, models.KindProfessor)
}

func (c *TaxonomyController) list(ctx *gin.Context, kind models.TaxonomyKind) {
	entries, err := c.taxonomyService.List(ctx.Request.Context(), kind)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.NewTaxonomyEntryResponses(entries)))
}

func (c *TaxonomyController) create(ctx *gin.Context, kind models.TaxonomyKind) {
	var req dto.CreateTaxonomyEntryRequest
	if !middleware.BindAndValidate(ctx, &req, ctx.ShouldBindJSON) {
		return
	}

	// No form state lives on the server, so there is no catalog to update
	entry, err := c.taxonomyService.QuickAdd(ctx.Request.Context(), nil, kind, req.Name)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(dto.TaxonomyEntryResponse{ID: entry.ID, Name: entry.Name}))
}
