package cmd

import (
	"context"
	"fmt"

	"github.com/coder/quartz"

	"playtrack/internal/adapters/directory"
	"playtrack/internal/adapters/presence"
	adapterstorage "playtrack/internal/adapters/storage"
	"playtrack/internal/config"
	"playtrack/internal/domain"
	"playtrack/internal/logging"
	"playtrack/internal/ports"
	"playtrack/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	Board        *presence.Board
	Directory    ports.PlayerDirectory
	Reconciler   *services.Reconciler
	StatsService *services.StatsService
	Tracker      *services.Tracker

	// Internal - for cleanup only
	sessionStore ports.SessionStore
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	if settings == nil {
		settings = &config.Settings{}
	}

	store, err := adapterstorage.NewSQLiteStore(settings.DatabasePath())
	if err != nil {
		return nil, err
	}

	// The board is always a source; the API feeds it. The process scanner
	// joins in when a host player and rules are configured.
	board := presence.NewBoard()
	sources := []ports.PresenceSource{board}

	if settings.HostPlayer != "" && len(settings.ProcessRules) > 0 {
		rules := make([]presence.Rule, 0, len(settings.ProcessRules))
		for _, rule := range settings.ProcessRules {
			rules = append(rules, presence.Rule{Pattern: rule.Pattern, Activity: rule.Activity})
		}
		scanner, err := presence.NewProcessScanner(settings.HostPlayer, rules)
		if err != nil {
			return nil, fmt.Errorf("invalid process rules: %w", err)
		}
		sources = append(sources, scanner)
		logging.Logger.Info("Process scanner enabled",
			"host_player", settings.HostPlayer,
			"rules", len(rules))
	}

	// The loader re-reads settings.json so roster edits show up on the next
	// scheduled refresh without a restart.
	dir := directory.NewStaticDirectory(loadPlayersFromSettings)
	if err := dir.Refresh(context.Background()); err != nil {
		logging.Logger.Warn("Failed to load player roster", "error", err)
	}

	clock := quartz.NewReal()
	reconciler := services.NewReconciler(store)
	statsService := services.NewStatsService(store, clock)
	tracker := services.NewTracker(
		reconciler,
		dir,
		presence.NewMulti(sources...),
		clock,
		settings.PollInterval(),
		settings.RefreshInterval(),
	)

	return &Container{
		Board:        board,
		Directory:    dir,
		Reconciler:   reconciler,
		StatsService: statsService,
		Tracker:      tracker,
		sessionStore: store,
	}, nil
}

// loadPlayersFromSettings reads the current roster from settings.json
func loadPlayersFromSettings() ([]domain.Player, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}
	return playersFromConfig(settings.Players), nil
}

func playersFromConfig(configs []config.PlayerConfig) []domain.Player {
	players := make([]domain.Player, 0, len(configs))
	for _, p := range configs {
		players = append(players, domain.Player{ID: p.ID, DisplayName: p.DisplayName})
	}
	return players
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.sessionStore != nil {
		return c.sessionStore.Close()
	}
	return nil
}
