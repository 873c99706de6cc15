package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/fantasy-draft/internal/domain/user"
	"github.com/riskibarqy/fantasy-draft/internal/infrastructure/broadcast"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
	"github.com/riskibarqy/fantasy-draft/internal/usecase"
)

const (
	maxRequestBodyBytes      = 1 << 20
	defaultKeepaliveInterval = 30 * time.Second
)

var strictJSON = sonic.Config{DisallowUnknownFields: true}.Froze()

// DraftEventSource hands out per-league live draft subscriptions.
type DraftEventSource interface {
	Subscribe(leagueID string) (*broadcast.Subscription, error)
	Unsubscribe(sub *broadcast.Subscription)
}

type Handler struct {
	leagueService *usecase.LeagueService
	lineupService *usecase.LineupService
	waiverService *usecase.WaiverService
	draftService  *usecase.DraftService
	statService   *usecase.StatService
	playerService *usecase.PlayerService
	tradeService  *usecase.TradeService
	draftEvents   DraftEventSource
	keepalive     time.Duration
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	lineupService *usecase.LineupService,
	waiverService *usecase.WaiverService,
	draftService *usecase.DraftService,
	statService *usecase.StatService,
	playerService *usecase.PlayerService,
	tradeService *usecase.TradeService,
	draftEvents DraftEventSource,
	keepalive time.Duration,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if keepalive <= 0 {
		keepalive = defaultKeepaliveInterval
	}

	return &Handler{
		leagueService: leagueService,
		lineupService: lineupService,
		waiverService: waiverService,
		draftService:  draftService,
		statService:   statService,
		playerService: playerService,
		tradeService:  tradeService,
		draftEvents:   draftEvents,
		keepalive:     keepalive,
		logger:        logger.Named("httpapi"),
		validator:     validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeRequest reads a JSON body, rejecting unknown fields, then runs the
// struct validation tags.
func (h *Handler) decodeRequest(ctx context.Context, w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	if err := strictJSON.NewDecoder(body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

func requirePrincipal(ctx context.Context) (user.Principal, error) {
	principal, ok := principalFromContext(ctx)
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized)
	}
	return principal, nil
}

const defaultWeek = 1

// weekFromQuery reads the optional week parameter; it defaults to week 1.
func weekFromQuery(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("week"))
	if raw == "" {
		return defaultWeek, nil
	}
	week, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: week must be an integer", usecase.ErrInvalidInput)
	}
	return week, nil
}
