package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/manavaditya8-pixel/cropGPT/internal/domain/weather"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/config"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/utils"
)

// WeatherHandler defines the interface for handling weather lookups
type WeatherHandler interface {
	Current(ctx *gin.Context)
	History(ctx *gin.Context)
	Record(ctx *gin.Context)
	Advisory(ctx *gin.Context)
}

// weatherHandler struct holds the services
type weatherHandler struct {
	weatherService weather.WeatherService
}

// NewWeatherHandler creates a new WeatherHandler
func NewWeatherHandler(weatherService weather.WeatherService) WeatherHandler {
	return &weatherHandler{
		weatherService: weatherService,
	}
}

// Current returns a fresh observation for a location
func (handler *weatherHandler) Current(ctx *gin.Context) {
	observation, err := handler.weatherService.Current(ctx, ctx.Query("location"))
	if err != nil {
		ctx.JSON(http.StatusBadGateway, ErrorResponse{Message: fmt.Sprintf("error fetching weather: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, NewWeatherResponse(observation))
}

// History lists stored observations for a location and time range
func (handler *weatherHandler) History(ctx *gin.Context) {
	query := &weather.HistoryQuery{
		LocationName: ctx.Query("location"),
		Limit:        config.DefaultPageSize,
	}

	if from := ctx.Query("from"); len(from) > 0 {
		parsed, err := time.Parse(time.RFC3339, from)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "from must be RFC3339"})
			return
		}
		query.From = parsed
	}
	if to := ctx.Query("to"); len(to) > 0 {
		parsed, err := time.Parse(time.RFC3339, to)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "to must be RFC3339"})
			return
		}
		query.To = parsed
	}
	if limit := ctx.Query("limit"); len(limit) > 0 {
		query.Limit = utils.ConvertToInt(limit)
	}
	if offset := ctx.Query("offset"); len(offset) > 0 {
		query.Offset = utils.ConvertToInt(offset)
	}

	observations, err := handler.weatherService.History(ctx, query)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error fetching weather history: %v", err)})
		return
	}

	responses := make([]WeatherResponse, len(observations))
	for i, observation := range observations {
		responses[i] = NewWeatherResponse(observation)
	}
	ctx.JSON(http.StatusOK, responses)
}

// Record validates and stores a manually ingested observation
func (handler *weatherHandler) Record(ctx *gin.Context) {
	var request RecordWeatherRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	source := request.Source
	if source == "" {
		source = "manual"
	}

	observation := &weather.Observation{
		LocationName:       request.LocationName,
		Latitude:           request.Latitude,
		Longitude:          request.Longitude,
		TemperatureCelsius: request.TemperatureCelsius,
		FeelsLikeCelsius:   request.FeelsLikeCelsius,
		HumidityPercent:    request.HumidityPercent,
		RainfallMm:         request.RainfallMm,
		WindSpeedKph:       request.WindSpeedKph,
		UVIndex:            request.UVIndex,
		Condition:          request.Condition,
		ConditionHi:        request.ConditionHi,
		Source:             source,
	}

	if err := handler.weatherService.Record(ctx, observation); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("error storing observation: %v", err)})
		return
	}

	ctx.JSON(http.StatusCreated, NewWeatherResponse(observation))
}

// Advisory derives farming recommendations from the current weather
func (handler *weatherHandler) Advisory(ctx *gin.Context) {
	language := ctx.DefaultQuery("language", config.LanguageEnglish)

	advisory, err := handler.weatherService.Advise(ctx, ctx.Query("location"), language)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, ErrorResponse{Message: fmt.Sprintf("error building advisory: %v", err)})
		return
	}

	ctx.JSON(http.StatusOK, AdvisoryResponse{
		Observation: NewWeatherResponse(advisory.Observation),
		Messages:    advisory.Messages,
	})
}
