package handlers

import (
	"log/slog"

	"github.com/natachabertin/urlshortener/internal/config"
	"github.com/natachabertin/urlshortener/internal/services"
)

type Handler struct {
	cfg              config.Config
	logger           *slog.Logger
	resolverService  *services.ResolverService
	shortenerService *services.ShortenerService
	authService      *services.AuthService
	statsService     *services.StatsService
	qrService        *services.QRService
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	resolverService *services.ResolverService,
	shortenerService *services.ShortenerService,
	authService *services.AuthService,
	statsService *services.StatsService,
	qrService *services.QRService,
) *Handler {
	return &Handler{
		cfg:              cfg,
		logger:           logger,
		resolverService:  resolverService,
		shortenerService: shortenerService,
		authService:      authService,
		statsService:     statsService,
		qrService:        qrService,
	}
}
