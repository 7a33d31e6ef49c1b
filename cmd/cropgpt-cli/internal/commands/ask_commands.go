package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/manavaditya8-pixel/cropGPT/internal/app"
	"github.com/manavaditya8-pixel/cropGPT/internal/domain/assistant"
	"github.com/manavaditya8-pixel/cropGPT/internal/infrastructure/persistence"
	"github.com/manavaditya8-pixel/cropGPT/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// AskCommandHandler encapsulates logic for asking the assistant via CLI.
type AskCommandHandler struct {
	logger logger.Logger
}

// NewAskCommandHandler initializes and returns an AskCommandHandler instance
// with a configured logger.
func NewAskCommandHandler() (*AskCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	return &AskCommandHandler{
		logger: loggerInstance,
	}, nil
}

// AskCmd sends a question to the assistant and prints the reply. Replies come
// from the response catalog; the transcript is stored in the local database.
func (commandHandler *AskCommandHandler) AskCmd(cmd *cobra.Command, _ []string) {
	message, err := cmd.Flags().GetString("message")
	if err != nil || message == "" {
		commandHandler.logger.Error("invalid message flag ", err)
		return
	}
	sessionID, err := cmd.Flags().GetString("session")
	if err != nil {
		commandHandler.logger.Error("invalid session flag ", err)
		return
	}
	language, err := cmd.Flags().GetString("language")
	if err != nil {
		commandHandler.logger.Error("invalid language flag ", err)
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

	conversationRepo, err := persistence.NewGormConversationRepository(db, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	chatService, err := app.NewChatService(nil, assistant.NewCatalog(time.Now().UnixNano()), conversationRepo, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	result, err := chatService.SendMessage(cmd.Context(), nil, sessionID, message, language)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Println(result.Conversation.Response)
	if len(result.Conversation.ContextTags) > 0 {
		commandHandler.logger.Info("Context tags: ", strings.Join(result.Conversation.ContextTags, ", "))
	}
	commandHandler.logger.Info("Session id: ", result.Conversation.SessionID)
}

// QuestionsCmd prints the curated quick questions for a language.
func (commandHandler *AskCommandHandler) QuestionsCmd(cmd *cobra.Command, _ []string) {
	language, err := cmd.Flags().GetString("language")
	if err != nil {
		commandHandler.logger.Error("invalid language flag ", err)
		return
	}

	for _, question := range assistant.QuickQuestions(language) {
		fmt.Printf("[%s] %s\n", question.Category, question.Text)
	}
}

// InitAskCommands registers assistant-related commands
func InitAskCommands(rootCmd *cobra.Command) error {
	handler, err := NewAskCommandHandler()

	if err != nil {
		return fmt.Errorf("failed to create ask command handler %w", err)
	}

	var askCmd = &cobra.Command{
		Use:   "ask",
		Short: "Ask the assistant a farming question",
		Run:   handler.AskCmd,
	}
	askCmd.Flags().StringP("message", "", "", "Question to ask the assistant")
	askCmd.Flags().StringP("session", "", "", "Session id to continue (empty starts a new session)")
	askCmd.Flags().StringP("language", "", "", "Language code en or hi (empty auto-detects)")
	askCmd.Flags().StringP("db", "", "cropgpt.db", "Path to the sqlite database")
	rootCmd.AddCommand(askCmd)

	var questionsCmd = &cobra.Command{
		Use:   "questions",
		Short: "List curated quick questions",
		Run:   handler.QuestionsCmd,
	}
	questionsCmd.Flags().StringP("language", "", "en", "Language code en or hi")
	rootCmd.AddCommand(questionsCmd)

	return nil
}
