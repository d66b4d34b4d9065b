package app

import (
	"context"
	"time"

	"github.com/go-redis/redis"
	"github.com/google/uuid"
	"github.com/xpanvictor/jassist/internal/adapters/gcal"
	"github.com/xpanvictor/jassist/internal/adapters/stt"
	"github.com/xpanvictor/jassist/internal/config"
	"github.com/xpanvictor/jassist/internal/domains/accounts"
	"github.com/xpanvictor/jassist/internal/domains/calendar"
	"github.com/xpanvictor/jassist/internal/domains/classify"
	"github.com/xpanvictor/jassist/internal/domains/contacts"
	"github.com/xpanvictor/jassist/internal/domains/diary"
	"github.com/xpanvictor/jassist/internal/domains/entities"
	"github.com/xpanvictor/jassist/internal/domains/routing"
	"github.com/xpanvictor/jassist/internal/domains/todo"
	"github.com/xpanvictor/jassist/internal/domains/transcription"
	"github.com/xpanvictor/jassist/internal/pipeline"
	accountsRepo "github.com/xpanvictor/jassist/internal/repository/accounts"
	calendarRepo "github.com/xpanvictor/jassist/internal/repository/calendarevent"
	contactsRepo "github.com/xpanvictor/jassist/internal/repository/contacts"
	diaryRepo "github.com/xpanvictor/jassist/internal/repository/diary"
	entitiesRepo "github.com/xpanvictor/jassist/internal/repository/entities"
	todoRepo "github.com/xpanvictor/jassist/internal/repository/todo"
	transcriptionRepo "github.com/xpanvictor/jassist/internal/repository/transcription"
	"github.com/xpanvictor/jassist/pkg/Logger"
	"github.com/xpanvictor/jassist/pkg/assistant"
	"gorm.io/gorm"
)

// App holds the wired application graph.
type App struct {
	Config *config.Settings
	Logger *Logger.Logger
	DB     *gorm.DB
	RC     *redis.Client

	Assistant      assistant.Assistant
	Transcriptions transcription.Service
	Classifier     classify.Service
	Router         *routing.Router
	Pipeline       *pipeline.Pipeline

	Diary    diary.Service
	Todo     todo.Service
	Calendar calendar.Service
	Accounts accounts.Service
	Contacts contacts.Service
	Entities entities.Service
}

// NewApp wires repositories, services, the dispatcher and the pipeline.
func NewApp(ctx context.Context, cfg *config.Settings, logger *Logger.Logger, db *gorm.DB, rc *redis.Client) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logger,
		DB:     db,
		RC:     rc,
	}
	if err := app.setupDependencies(ctx); err != nil {
		return nil, err
	}
	return app, nil
}

func (a *App) setupDependencies(ctx context.Context) error {
	llm, err := NewAssistant(ctx, a.Config.Assistant)
	if err != nil {
		return err
	}
	a.Assistant = llm

	a.Transcriptions = transcription.NewService(
		transcriptionRepo.NewGormTranscriptionRepo(a.DB), a.Logger)

	// Google Calendar sync is optional; without credentials events stay
	// local only.
	var calSync calendar.Sync
	if a.Config.Google.CredentialsFile != "" {
		client, err := gcal.NewClient(ctx, a.Config.Google, a.Logger)
		if err != nil {
			a.Logger.Warnf("google calendar disabled: %v", err)
		} else {
			calSync = client
		}
	}

	a.Diary = diary.NewService(diaryRepo.NewGormDiaryRepo(a.DB), a.Transcriptions, llm, a.Logger)
	a.Todo = todo.NewService(todoRepo.NewGormTodoRepo(a.DB), a.Transcriptions, a.Logger)
	a.Calendar = calendar.NewService(calendarRepo.NewGormCalendarRepo(a.DB), a.Transcriptions, llm, calSync, a.Logger)
	a.Accounts = accounts.NewService(accountsRepo.NewGormAccountsRepo(a.DB), a.Transcriptions, a.Logger)
	a.Contacts = contacts.NewService(contactsRepo.NewGormContactsRepo(a.DB), a.Transcriptions, llm, a.Logger)
	a.Entities = entities.NewService(entitiesRepo.NewGormEntitiesRepo(a.DB), a.Transcriptions, llm, a.Logger)

	dispatcher := routing.NewDispatcher(a.Logger)
	dispatcher.Register(serviceHandler(a.Diary.Handle), "diary")
	dispatcher.Register(serviceHandler(a.Todo.Handle), "to_do", "todo")
	dispatcher.Register(serviceHandler(a.Calendar.Handle), "calendar")
	dispatcher.Register(serviceHandler(a.Accounts.Handle), "accounts", "account")
	dispatcher.Register(serviceHandler(a.Contacts.Handle), "contacts", "contact")
	dispatcher.Register(serviceHandler(a.Entities.Handle), "entities", "entity")

	a.Router = routing.NewRouter(&transcriptionStore{a.Transcriptions}, dispatcher, a.Logger)

	var cache classify.ResponseCache
	if a.RC != nil {
		ttl := time.Duration(a.Config.Assistant.CacheTTLMins) * time.Minute
		if ttl <= 0 {
			ttl = 24 * time.Hour
		}
		cache = classify.NewRedisCache(a.RC, ttl, a.Logger)
	}
	a.Classifier = classify.NewService(llm, cache, a.Logger)

	transcriber := stt.NewWhisperTranscriber(a.Config.Assistant.OpenAIAPIKey, a.Logger)
	a.Pipeline = pipeline.New(transcriber, a.Classifier, a.Router, a.Config.Audio, a.Logger)

	return nil
}

func serviceHandler(f routing.HandlerFunc) routing.Handler {
	return f
}

// transcriptionStore adapts the transcription service to the router's
// narrower Store interface.
type transcriptionStore struct {
	svc transcription.Service
}

func (s *transcriptionStore) SaveEntry(ctx context.Context, req routing.SaveEntryRequest) (uuid.UUID, error) {
	return s.svc.Save(ctx, transcription.SaveRequest{
		Content:         req.Content,
		Filename:        req.Filename,
		AudioPath:       req.AudioPath,
		DurationSeconds: req.DurationSeconds,
		ModelUsed:       req.ModelUsed,
		Tag:             req.Tag,
	})
}
