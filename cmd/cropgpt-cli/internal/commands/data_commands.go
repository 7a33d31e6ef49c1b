package commands

import (
	"fmt"
	"strings"

	"github.com/manavaditya8-pixel/cropGPT/internal/app"
	"github.com/manavaditya8-pixel/cropGPT/internal/infrastructure/connector"
	"github.com/manavaditya8-pixel/cropGPT/internal/infrastructure/persistence"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/config"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// DataCommandHandler encapsulates logic for pulling external data via CLI.
type DataCommandHandler struct {
	logger logger.Logger
}

// NewDataCommandHandler initializes and returns a DataCommandHandler instance
// with a configured logger.
func NewDataCommandHandler() (*DataCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &DataCommandHandler{
		logger: loggerInstance,
	}, nil
}

// RefreshPricesCmd pulls mandi quotes from the Agmarknet feed and stores them
func (commandHandler *DataCommandHandler) RefreshPricesCmd(cmd *cobra.Command, _ []string) {
	apiKey, err := cmd.Flags().GetString("api-key")
	if err != nil || apiKey == "" {
		commandHandler.logger.Error("invalid api-key flag ", err)
		return
	}
	baseURL, err := cmd.Flags().GetString("base-url")
	if err != nil {
		commandHandler.logger.Error("invalid base-url flag ", err)
		return
	}
	commodities, err := cmd.Flags().GetString("commodities")
	if err != nil || commodities == "" {
		commandHandler.logger.Error("invalid commodities flag ", err)
		return
	}
	dbPath, err := cmd.Flags().GetString("db")
	if err != nil {
		commandHandler.logger.Error("invalid db flag ", err)
		return
	}

	db, err := setupDatabase(dbPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	priceRepo, err := persistence.NewGormPriceRepository(db, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	marketConnector, err := connector.NewAgmarknetConnector(&config.MarketSettings{
		APIKey:  apiKey,
		BaseURL: baseURL,
	}, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	priceService, err := app.NewPriceService(priceRepo, marketConnector, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	stored, err := priceService.RefreshFromSource(cmd.Context(), strings.Split(commodities, ","))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Stored ", stored, " price records")
}

// CurrentWeatherCmd fetches the current weather for a location and stores it
func (commandHandler *DataCommandHandler) CurrentWeatherCmd(cmd *cobra.Command, _ []string) {
	apiKey, err := cmd.Flags().GetString("api-key")
	if err != nil || apiKey == "" {
		commandHandler.logger.Error("invalid api-key flag ", err)
		return
	}
	location, err := cmd.Flags().GetString("location")
	if err != nil {
		commandHandler.logger.Error("invalid location flag ", err)
		return
	}
	dbPath, err := cmd.Flags().GetString("db")
	if err != nil {
		commandHandler.logger.Error("invalid db flag ", err)
		return
	}

	db, err := setupDatabase(dbPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	observationRepo, err := persistence.NewGormObservationRepository(db, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	settings := config.WeatherSettings{
		APIKey:          apiKey,
		BaseURL:         "https://api.openweathermap.org",
		DefaultLocation: "Ranchi",
		DefaultLat:      23.3441,
		DefaultLon:      85.3096,
		FreshnessTTL:    1, // always refetch
	}

	weatherConnector, err := connector.NewOpenWeatherConnector(&settings, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	weatherService, err := app.NewWeatherService(observationRepo, weatherConnector, settings, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	observation, err := weatherService.Current(cmd.Context(), location)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Printf("%s: %.1f°C, %d%% humidity, %s\n",
		observation.LocationName, observation.TemperatureCelsius, observation.HumidityPercent, observation.Condition)
}

// InitDataCommands registers external data commands
func InitDataCommands(rootCmd *cobra.Command) error {
	handler, err := NewDataCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create data command handler %w", err)
	}

	var refreshPricesCmd = &cobra.Command{
		Use:   "refresh-prices",
		Short: "Pull mandi quotes from the Agmarknet feed",
		Run:   handler.RefreshPricesCmd,
	}
	refreshPricesCmd.Flags().StringP("api-key", "", "", "data.gov.in API key")
	refreshPricesCmd.Flags().StringP("base-url", "", "https://api.data.gov.in", "Agmarknet API base URL")
	refreshPricesCmd.Flags().StringP("commodities", "", "", "Comma separated commodity names")
	refreshPricesCmd.Flags().StringP("db", "", "cropgpt.db", "Path to the sqlite database")
	rootCmd.AddCommand(refreshPricesCmd)

	var currentWeatherCmd = &cobra.Command{
		Use:   "current-weather",
		Short: "Fetch and store the current weather for a location",
		Run:   handler.CurrentWeatherCmd,
	}
	currentWeatherCmd.Flags().StringP("api-key", "", "", "OpenWeather API key")
	currentWeatherCmd.Flags().StringP("location", "", "Ranchi", "Location name")
	currentWeatherCmd.Flags().StringP("db", "", "cropgpt.db", "Path to the sqlite database")
	rootCmd.AddCommand(currentWeatherCmd)

	return nil
}
