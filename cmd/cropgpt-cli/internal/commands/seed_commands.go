package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/manavaditya8-pixel/cropGPT/internal/app"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/markets"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/schemes"
	"github.com/manavaditya8-pixel/cropGPT/internal/infrastructure/persistence"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/config"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// seedScheme is one scheme record in a seed file.
type seedScheme struct {
	SchemeCode            string   `json:"scheme_code"`
	Name                  string   `json:"name"`
	NameHi                *string  `json:"name_hi"`
	Description           string   `json:"description"`
	DescriptionHi         *string  `json:"description_hi"`
	Category              string   `json:"category"`
	ImplementingAgency    *string  `json:"implementing_agency"`
	BenefitAmount         *string  `json:"benefit_amount"`
	BenefitFrequency      *string  `json:"benefit_frequency"`
	EligibilityCriteria   string   `json:"eligibility_criteria"`
	EligibilityCriteriaHi *string  `json:"eligibility_criteria_hi"`
	ApplicationProcess    string   `json:"application_process"`
	ApplicationProcessHi  *string  `json:"application_process_hi"`
	RequiredDocuments     []string `json:"required_documents"`
	ApplicationLink       *string  `json:"application_link"`
	DeadlineDate          *string  `json:"deadline_date"`
	State                 string   `json:"state"`
}

// seedPrice is one mandi quote record in a seed file.
type seedPrice struct {
	CommodityName   string  `json:"commodity_name"`
	CommodityNameHi *string `json:"commodity_name_hi"`
	Variety         *string `json:"variety"`
	Grade           *string `json:"grade"`
	MarketName      string  `json:"market_name"`
	MarketNameHi    *string `json:"market_name_hi"`
	State           string  `json:"state"`
	MinPrice        string  `json:"min_price"`
	MaxPrice        string  `json:"max_price"`
	ModalPrice      string  `json:"modal_price"`
	PriceUnit       string  `json:"price_unit"`
	ArrivalDate     string  `json:"arrival_date"`
	Source          string  `json:"source"`
}

// SeedCommandHandler encapsulates logic for seeding reference data via CLI.
type SeedCommandHandler struct {
	logger logger.Logger
}

// NewSeedCommandHandler initializes and returns a SeedCommandHandler instance
// with a configured logger.
func NewSeedCommandHandler() (*SeedCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &SeedCommandHandler{
		logger: loggerInstance,
	}, nil
}

// SeedSchemesCmd loads government schemes from a JSON file into the database
func (commandHandler *SeedCommandHandler) SeedSchemesCmd(cmd *cobra.Command, _ []string) {
	filePath, err := cmd.Flags().GetString("file")
	if err != nil || filePath == "" {
		commandHandler.logger.Error("invalid file flag ", err)
		return
	}
	dbPath, err := cmd.Flags().GetString("db")
	if err != nil {
		commandHandler.logger.Error("invalid db flag ", err)
		return
	}

	data, err := os.ReadFile(filepath.Clean(filePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	var records []seedScheme
	if err := json.Unmarshal(data, &records); err != nil {
		commandHandler.logger.Error("failed to parse seed file ", err)
		return
	}

	db, err := setupDatabase(dbPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	schemeRepo, err := persistence.NewGormSchemeRepository(db, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	schemeService, err := app.NewSchemeService(schemeRepo, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	stored := 0
	for _, record := range records {
		scheme, err := record.toScheme()
		if err != nil {
			commandHandler.logger.Warn("Skipping scheme ", record.SchemeCode, ": ", err)
			continue
		}
		if _, err := schemeService.Upsert(cmd.Context(), scheme); err != nil {
			commandHandler.logger.Warn("Failed to store scheme ", record.SchemeCode, ": ", err)
			continue
		}
		stored++
	}

	commandHandler.logger.Info("Stored ", stored, " of ", len(records), " schemes from ", filePath)
}

// SeedPricesCmd loads mandi price quotes from a JSON file into the database
func (commandHandler *SeedCommandHandler) SeedPricesCmd(cmd *cobra.Command, _ []string) {
	filePath, err := cmd.Flags().GetString("file")
	if err != nil || filePath == "" {
		commandHandler.logger.Error("invalid file flag ", err)
		return
	}
	dbPath, err := cmd.Flags().GetString("db")
	if err != nil {
		commandHandler.logger.Error("invalid db flag ", err)
		return
	}

	data, err := os.ReadFile(filepath.Clean(filePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	var records []seedPrice
	if err := json.Unmarshal(data, &records); err != nil {
		commandHandler.logger.Error("failed to parse seed file ", err)
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
	priceService, err := app.NewPriceService(priceRepo, nil, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	stored := 0
	for _, record := range records {
		price, err := record.toPrice()
		if err != nil {
			commandHandler.logger.Warn("Skipping price for ", record.CommodityName, ": ", err)
			continue
		}
		if err := priceService.Ingest(cmd.Context(), price); err != nil {
			commandHandler.logger.Warn("Failed to store price for ", record.CommodityName, ": ", err)
			continue
		}
		stored++
	}

	commandHandler.logger.Info("Stored ", stored, " of ", len(records), " prices from ", filePath)
}

// toScheme converts a seed record into the scheme entity.
func (record *seedScheme) toScheme() (*schemes.Scheme, error) {
	scheme := &schemes.Scheme{
		SchemeCode:            record.SchemeCode,
		Name:                  record.Name,
		NameHi:                record.NameHi,
		Description:           record.Description,
		DescriptionHi:         record.DescriptionHi,
		Category:              record.Category,
		ImplementingAgency:    record.ImplementingAgency,
		BenefitFrequency:      record.BenefitFrequency,
		EligibilityCriteria:   record.EligibilityCriteria,
		EligibilityCriteriaHi: record.EligibilityCriteriaHi,
		ApplicationProcess:    record.ApplicationProcess,
		ApplicationProcessHi:  record.ApplicationProcessHi,
		RequiredDocuments:     record.RequiredDocuments,
		ApplicationLink:       record.ApplicationLink,
		IsActive:              true,
		State:                 record.State,
	}
	if scheme.State == "" {
		scheme.State = config.DefaultState
	}
	if record.BenefitAmount != nil {
		amount, err := decimal.NewFromString(*record.BenefitAmount)
		if err != nil {
			return nil, fmt.Errorf("invalid benefit_amount: %w", err)
		}
		scheme.BenefitAmount = &amount
	}
	if record.DeadlineDate != nil {
		deadline, err := time.Parse("2006-01-02", *record.DeadlineDate)
		if err != nil {
			return nil, fmt.Errorf("invalid deadline_date: %w", err)
		}
		scheme.DeadlineDate = &deadline
	}
	return scheme, nil
}

// toPrice converts a seed record into the crop price entity.
func (record *seedPrice) toPrice() (*markets.CropPrice, error) {
	minPrice, err := decimal.NewFromString(record.MinPrice)
	if err != nil {
		return nil, fmt.Errorf("invalid min_price: %w", err)
	}
	maxPrice, err := decimal.NewFromString(record.MaxPrice)
	if err != nil {
		return nil, fmt.Errorf("invalid max_price: %w", err)
	}
	modalPrice, err := decimal.NewFromString(record.ModalPrice)
	if err != nil {
		return nil, fmt.Errorf("invalid modal_price: %w", err)
	}
	arrivalDate, err := time.Parse("2006-01-02", record.ArrivalDate)
	if err != nil {
		return nil, fmt.Errorf("invalid arrival_date: %w", err)
	}

	price := &markets.CropPrice{
		CommodityName:   record.CommodityName,
		CommodityNameHi: record.CommodityNameHi,
		Variety:         record.Variety,
		Grade:           record.Grade,
		MarketName:      record.MarketName,
		MarketNameHi:    record.MarketNameHi,
		State:           record.State,
		MinPrice:        minPrice,
		MaxPrice:        maxPrice,
		ModalPrice:      modalPrice,
		PriceUnit:       record.PriceUnit,
		ArrivalDate:     arrivalDate,
		Source:          record.Source,
	}
	if price.State == "" {
		price.State = config.DefaultState
	}
	return price, nil
}

// InitSeedCommands registers seed-related commands
func InitSeedCommands(rootCmd *cobra.Command) error {
	handler, err := NewSeedCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create seed command handler %w", err)
	}

	var seedSchemesCmd = &cobra.Command{
		Use:   "seed-schemes",
		Short: "Load government schemes from a JSON file",
		Run:   handler.SeedSchemesCmd,
	}
	seedSchemesCmd.Flags().StringP("file", "", "", "Path to the JSON seed file")
	seedSchemesCmd.Flags().StringP("db", "", "cropgpt.db", "Path to the sqlite database")
	rootCmd.AddCommand(seedSchemesCmd)

	var seedPricesCmd = &cobra.Command{
		Use:   "seed-prices",
		Short: "Load mandi price quotes from a JSON file",
		Run:   handler.SeedPricesCmd,
	}
	seedPricesCmd.Flags().StringP("file", "", "", "Path to the JSON seed file")
	seedPricesCmd.Flags().StringP("db", "", "cropgpt.db", "Path to the sqlite database")
	rootCmd.AddCommand(seedPricesCmd)

	return nil
}
