package bootstrap

import (
	"log"

	"doc-qa-be/internal/config"
	"doc-qa-be/internal/controller"
	"doc-qa-be/internal/pkg/logger"
	"doc-qa-be/internal/repository/memory"
	"doc-qa-be/internal/repository/unitofwork"
	"doc-qa-be/internal/service"
	"doc-qa-be/pkg/embedding"
	"doc-qa-be/pkg/llm/factory"

	pktNats "doc-qa-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	DocumentController controller.IDocumentController
	QueryController    controller.IQueryController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.Provider
	if cfg.Ai.EmbeddingProvider == "openai" {
		embeddingProvider = embedding.NewOpenAIProvider(
			cfg.Ai.OpenAIAPIKey,
			cfg.Ai.OpenAIBaseURL,
			cfg.Ai.EmbeddingModel,
		)
		sysLogger.Info("bootstrap", "Using Embedding Provider: OPENAI", map[string]interface{}{"model": cfg.Ai.EmbeddingModel})
	} else {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.EmbeddingModel,
		)
		sysLogger.Info("bootstrap", "Using Embedding Provider: OLLAMA", map[string]interface{}{"model": cfg.Ai.EmbeddingModel})
	}

	llmBaseURL := cfg.Ai.OllamaBaseURL
	if cfg.Ai.LLMProvider == "openai" {
		llmBaseURL = cfg.Ai.OpenAIBaseURL
	}
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		llmBaseURL,
		cfg.Ai.OpenAIAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	sysLogger.Info("bootstrap", "Using LLM Provider", map[string]interface{}{
		"provider": cfg.Ai.LLMProvider,
		"model":    cfg.Ai.LLMModel,
	})

	// 4. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	conversationRepo := memory.NewConversationRepository()

	// 5. Services
	publisherService := service.NewPublisherService(cfg.Ingestion.TopicName, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Ingestion,
		uowFactory,
		embeddingProvider,
		natsPub,
	)

	documentService := service.NewDocumentService(uowFactory, publisherService)
	queryService := service.NewQueryService(uowFactory, conversationRepo, embeddingProvider, llmProvider)

	// 6. Controllers
	documentController := controller.NewDocumentController(documentService, cfg.Ingestion)
	queryController := controller.NewQueryController(queryService)

	return &Container{
		DocumentController: documentController,
		QueryController:    queryController,
		ConsumerService:    consumerService,
		Logger:             sysLogger,
	}
}
