//go:build integration
// +build integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/manavaditya8-pixel/cropGPT/internal/infrastructure/persistence"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeatherService_Current_ServesFreshObservation(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	observation := persistence.CreateTestObservation(t, "Ranchi", time.Now().Add(-5*time.Minute))
	require.NoError(t, services.WeatherService.Record(ctx, observation))

	current, err := services.WeatherService.Current(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, observation.ID, current.ID)
}

func TestWeatherService_Current_ServesStaleWithoutConnector(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	stale := persistence.CreateTestObservation(t, "Ranchi", time.Now().Add(-2*time.Hour))
	require.NoError(t, services.WeatherService.Record(ctx, stale))

	current, err := services.WeatherService.Current(ctx, "Ranchi")
	require.NoError(t, err)
	assert.Equal(t, stale.ID, current.ID)
}

func TestWeatherService_Current_NoDataNoConnector(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := services.WeatherService.Current(context.Background(), "Nowhere")
	assert.Error(t, err)
}

func TestWeatherService_Advise_RainyAndHot(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	observation := persistence.CreateTestObservation(t, "Ranchi", time.Now())
	observation.Condition = "Rain"
	observation.TemperatureCelsius = 37.0
	require.NoError(t, services.WeatherService.Record(ctx, observation))

	advisory, err := services.WeatherService.Advise(ctx, "Ranchi", config.LanguageEnglish)
	require.NoError(t, err)
	require.Len(t, advisory.Messages, 2)
	assert.Contains(t, advisory.Messages[0], "Rain is expected")
	assert.Contains(t, advisory.Messages[1], "Temperatures are high")
}

func TestWeatherService_Advise_NormalConditionsHindi(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	observation := persistence.CreateTestObservation(t, "Ranchi", time.Now())
	require.NoError(t, services.WeatherService.Record(ctx, observation))

	advisory, err := services.WeatherService.Advise(ctx, "Ranchi", config.LanguageHindi)
	require.NoError(t, err)
	require.Len(t, advisory.Messages, 1)
	assert.Contains(t, advisory.Messages[0], "मौसम सामान्य है")
}

func TestWeatherService_History_DefaultsLocation(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		observation := persistence.CreateTestObservation(t, "Ranchi", time.Now().Add(-time.Duration(i)*time.Hour))
		require.NoError(t, services.WeatherService.Record(ctx, observation))
	}

	history, err := services.WeatherService.History(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, history, 2)
}
