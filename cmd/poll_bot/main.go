package main

import (
	"context"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
	"os"
	"os/signal"
	"schedule_poll_bot/configs"
	"schedule_poll_bot/internal/di"
	discordbot "schedule_poll_bot/internal/discord_bot"
	"schedule_poll_bot/internal/discord_bot/commands"
	"schedule_poll_bot/internal/discord_bot/handlers"
	"schedule_poll_bot/internal/gateway/discord"
	"schedule_poll_bot/internal/lifecycle"
	"schedule_poll_bot/internal/metrics"
	"schedule_poll_bot/internal/notify"
	"schedule_poll_bot/internal/poll"
	"schedule_poll_bot/internal/scheduler"
	"schedule_poll_bot/internal/storage"
	"syscall"
	"time"
)

const (
	restoreWait  = 30 * time.Second
	shutdownWait = 10 * time.Second
)

func main() {
	config, err := configs.LoadPollBotConfig()
	logger := di.NewLogger(config.Logger, config.App)
	defer func() { _ = logger.Sync() }()

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	location, err := config.Poll.Location()
	if err != nil {
		logger.Fatalw("failed to load poll timezone", "error", err)
	}
	weekday, err := config.Poll.Weekday()
	if err != nil {
		logger.Fatalw("failed to parse rotation weekday", "error", err)
	}

	store := openStore(config, logger)

	notifier, err := notify.New(config.Notifier)
	if err != nil {
		logger.Errorw("failed to create notifier, alerts disabled", "error", err)
		notifier = notify.Nop{}
	}

	session, err := discordgo.New("Bot " + config.Bot.Token)
	if err != nil {
		logger.Fatalw("failed to create discord session", "error", err)
	}

	self, err := session.User("@me")
	if err != nil {
		logger.Fatalw("failed to authenticate with discord, check DISCORD_POLL_BOT_TOKEN", "error", err)
	}

	controller := lifecycle.New(discord.NewGateway(session), store, notifier, logger, lifecycle.Options{
		Policy: poll.Policy{
			ReminderInterval:       config.Poll.ReminderInterval,
			BumpInterval:           config.Poll.BumpInterval,
			RepostInterval:         config.Poll.RepostInterval,
			HealthInterval:         config.Poll.HealthInterval,
			RotationWeekday:        weekday,
			RotationStartHour:      config.Poll.RotationStartHour,
			RotationEndHour:        config.Poll.RotationEndHour,
			LowEngagementThreshold: config.Poll.LowEngagementThreshold,
			Location:               location,
		},
		ReminderEnabled: config.Poll.ReminderEnabled,
		AutoBumpEnabled: config.Poll.AutoBumpEnabled,
		ReactionDelay:   config.Poll.ReactionDelay,
		RestoreTimeout:  config.Poll.RestoreTimeout,
		SelfID:          self.ID,
	})

	restoreCtx, cancelRestore := context.WithTimeout(context.Background(), restoreWait)
	if err := controller.Restore(restoreCtx); err != nil {
		logger.Errorw("failed to restore poll, starting without one", "error", err)
	}
	cancelRestore()

	runCtx, stopRun := context.WithCancel(context.Background())
	go controller.Run(runCtx)

	process := newProcess()
	handler := handlers.NewCommandHandler(config.Bot, config.App, logger, []commands.Command{
		commands.NewStartCommand(config.Discord, controller, logger),
		commands.NewResultsCommand(controller, logger),
		commands.NewStatusCommand(controller, location, logger),
		commands.NewRemindCommand(controller, logger),
		commands.NewBumpCommand(controller, logger),
		commands.NewRepostCommand(controller, logger),
		commands.NewRotateCommand(controller, logger),
		commands.NewShutdownCommand(process, logger),
		commands.NewRestartCommand(process, logger),
	})
	discordbot.NewBot(handler, controller, logger).Register(session)

	logger.Info("connecting to discord")
	if err := session.Open(); err != nil {
		logger.Fatalw("error opening connection", "error", err)
	}
	logger.Infow("connected to discord", "user", self.ID)

	cadences, err := scheduler.New(controller, intervals(config.Poll), location, logger)
	if err != nil {
		logger.Fatalw("failed to create scheduler", "error", err)
	}
	cadences.Start()

	health := startHealthCheckServer(logger)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	restart := false
	select {
	case sig := <-stop:
		logger.Infow("received signal", "signal", sig.String())
	case action := <-process.actions:
		logger.Infow("received process command", "action", action)
		restart = action == actionRestart
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownWait)
	defer cancelShutdown()

	cadences.Stop()
	if err := controller.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("failed to shut down poll controller", "error", err)
	}
	stopRun()

	if err := store.Close(); err != nil {
		logger.Errorw("failed to close storage", "error", err)
	}
	if err := session.Close(); err != nil {
		logger.Errorw("failed to close discord session", "error", err)
	}
	if err := health.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("failed to shutdown http server", "error", err)
	}

	if restart {
		logger.Info("restarting")
		_ = logger.Sync()
		if err := reexec(); err != nil {
			logger.Fatalw("failed to restart", "error", err)
		}
	}

	logger.Info("shutting down")
}

// openStore opens the configured store. A store that cannot be opened falls back to the
// file store so the bot keeps running from memory and local disk.
func openStore(config configs.PollBotConfig, logger *zap.SugaredLogger) storage.Store {
	logger.Infow("opening storage", "driver", config.Storage.Driver)
	store, err := storage.Open(config.Storage, config.DB, logger)
	if err == nil {
		logger.Info("storage opened")
		return store
	}
	metrics.Failure(metrics.PersistenceFailure)
	logger.Errorw("failed to open storage, falling back to file store", "driver", config.Storage.Driver, "error", err)

	store, err = storage.NewFileStore(config.Storage.Dir, config.Storage.Retention(), logger)
	if err != nil {
		logger.Errorw("failed to open file store, polls will not survive restarts", "dir", config.Storage.Dir, "error", err)
		return storage.NewMemoryStore()
	}
	return store
}

// intervals maps every cadence to how often the scheduler checks it.
// Repost and rotation share the rotation check interval so the rotation window is not missed.
func intervals(config configs.Poll) scheduler.Intervals {
	return scheduler.Intervals{
		poll.CadenceReminder: config.ReminderInterval,
		poll.CadenceBump:     config.BumpInterval,
		poll.CadenceRepost:   config.RotationCheckInterval,
		poll.CadenceRotation: config.RotationCheckInterval,
		poll.CadenceHealth:   config.HealthInterval,
	}
}
