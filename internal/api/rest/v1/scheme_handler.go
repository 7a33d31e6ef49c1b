package v1

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/schemes"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/config"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/utils"
)

// SchemeHandler defines the interface for handling government scheme
// lookups and applications
type SchemeHandler interface {
	List(ctx *gin.Context)
	GetByCode(ctx *gin.Context)
	Upsert(ctx *gin.Context)
	Apply(ctx *gin.Context)
	ListApplications(ctx *gin.Context)
	UpdateApplicationStatus(ctx *gin.Context)
}

// schemeHandler struct holds the services
type schemeHandler struct {
	schemeService      schemes.SchemeService
	applicationService schemes.ApplicationService
}

// NewSchemeHandler creates a new SchemeHandler
func NewSchemeHandler(schemeService schemes.SchemeService, applicationService schemes.ApplicationService) SchemeHandler {
	return &schemeHandler{
		schemeService:      schemeService,
		applicationService: applicationService,
	}
}

// List returns schemes matching the query filters, localized for the
// requested language
func (handler *schemeHandler) List(ctx *gin.Context) {
	query := &schemes.SchemeQuery{
		Category:   ctx.Query("category"),
		State:      ctx.Query("state"),
		OnlyActive: ctx.Query("active") == "true",
		Limit:      config.DefaultPageSize,
	}
	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = utils.ConvertToInt(limit)
	}
	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = utils.ConvertToInt(offset)
	}

	results, err := handler.schemeService.List(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error listing schemes: %v", err)})
		return
	}

	language := ctx.DefaultQuery("language", config.LanguageEnglish)
	responses := make([]SchemeResponse, len(results))
	for i, scheme := range results {
		responses[i] = NewSchemeResponse(scheme, language)
	}
	ctx.JSON(http.StatusOK, responses)
}

// GetByCode returns a single scheme by its scheme code
func (handler *schemeHandler) GetByCode(ctx *gin.Context) {
	scheme, err := handler.schemeService.GetByCode(ctx, ctx.Param("code"))
	if err != nil {
		if errors.Is(err, schemes.ErrSchemeNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error fetching scheme: %v", err)})
		return
	}

	language := ctx.DefaultQuery("language", config.LanguageEnglish)
	ctx.JSON(http.StatusOK, NewSchemeResponse(scheme, language))
}

// Upsert creates a scheme or updates the one with the same code
func (handler *schemeHandler) Upsert(ctx *gin.Context) {
	var request UpsertSchemeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	scheme, err := schemeFromRequest(&request)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	stored, err := handler.schemeService.Upsert(ctx, scheme)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error storing scheme: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, NewSchemeResponse(stored, config.LanguageEnglish))
}

// Apply records an application of a user to a scheme
func (handler *schemeHandler) Apply(ctx *gin.Context) {
	var request ApplyRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	application, err := handler.applicationService.Apply(ctx, request.UserID, ctx.Param("code"), request.Notes)
	if err != nil {
		if errors.Is(err, schemes.ErrSchemeNotFound) {
			ctx.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
			return
		}
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error applying to scheme: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, NewApplicationResponse(application))
}

// ListApplications returns all applications submitted by a user
func (handler *schemeHandler) ListApplications(ctx *gin.Context) {
	userID := ctx.Query("user_id")
	if userID == "" {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "user_id query parameter is required"})
		return
	}

	applications, err := handler.applicationService.ListByUser(ctx, userID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error listing applications: %v", err)})
		return
	}

	responses := make([]ApplicationResponse, len(applications))
	for i, application := range applications {
		responses[i] = NewApplicationResponse(application)
	}
	ctx.JSON(http.StatusOK, responses)
}

// UpdateApplicationStatus moves an application to a new status
func (handler *schemeHandler) UpdateApplicationStatus(ctx *gin.Context) {
	var request UpdateApplicationStatusRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	application, err := handler.applicationService.UpdateStatus(ctx, ctx.Param("id"), request.Status)
	if err != nil {
		ctx.JSON(http.StatusNotFound, ErrorResponse{Message: fmt.Sprintf("error updating application: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, NewApplicationResponse(application))
}

// schemeFromRequest maps an upsert payload to the scheme entity, parsing
// the amount and deadline fields
func schemeFromRequest(request *UpsertSchemeRequest) (*schemes.Scheme, error) {
	scheme := &schemes.Scheme{
		SchemeCode:            request.SchemeCode,
		Name:                  request.Name,
		NameHi:                request.NameHi,
		Description:           request.Description,
		DescriptionHi:         request.DescriptionHi,
		Category:              request.Category,
		ImplementingAgency:    request.ImplementingAgency,
		BenefitFrequency:      request.BenefitFrequency,
		EligibilityCriteria:   request.EligibilityCriteria,
		EligibilityCriteriaHi: request.EligibilityCriteriaHi,
		ApplicationProcess:    request.ApplicationProcess,
		ApplicationProcessHi:  request.ApplicationProcessHi,
		RequiredDocuments:     request.RequiredDocuments,
		ApplicationLink:       request.ApplicationLink,
		IsActive:              true,
		State:                 request.State,
	}
	if request.State == "" {
		scheme.State = config.DefaultState
	}
	if request.IsActive != nil {
		scheme.IsActive = *request.IsActive
	}
	if request.BenefitAmount != nil {
		amount, err := decimal.NewFromString(*request.BenefitAmount)
		if err != nil {
			return nil, fmt.Errorf("invalid benefit_amount: %v", err)
		}
		scheme.BenefitAmount = &amount
	}
	if request.DeadlineDate != nil {
		deadline, err := time.Parse("2006-01-02", *request.DeadlineDate)
		if err != nil {
			return nil, fmt.Errorf("invalid deadline_date: %v", err)
		}
		scheme.DeadlineDate = &deadline
	}
	return scheme, nil
}
