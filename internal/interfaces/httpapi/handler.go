package httpapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"github.com/riskibarqy/cricket-tournament/internal/platform/logging"
	"github.com/riskibarqy/cricket-tournament/internal/platform/validation"
	"github.com/riskibarqy/cricket-tournament/internal/usecase"
)

type Handler struct {
	userService       *usecase.UserService
	tournamentService *usecase.TournamentService
	matchService      *usecase.MatchService
	dashboardService  *usecase.DashboardService
	logger            *logging.Logger
	validator         *validator.Validate
	storageDriver     string
	now               func() time.Time
}

func NewHandler(
	userService *usecase.UserService,
	tournamentService *usecase.TournamentService,
	matchService *usecase.MatchService,
	dashboardService *usecase.DashboardService,
	storageDriver string,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		userService:       userService,
		tournamentService: tournamentService,
		matchService:      matchService,
		dashboardService:  dashboardService,
		logger:            logger,
		validator:         validation.New(),
		storageDriver:     storageDriver,
		now:               time.Now,
	}
}

// decodeJSON reads a single JSON object, rejecting unknown fields.
func decodeJSON(r *http.Request, dst any) error {
	decoder := jsoniter.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: request body is required", usecase.ErrInvalidInput)
		}
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handler) validateRequest(ctx context.Context, payload any, messages map[string]string) error {
	_, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if verr := validation.Check(h.validator, payload, messages); len(verr) > 0 {
		return fmt.Errorf("%w: %w", usecase.ErrInvalidInput, verr)
	}
	return nil
}

// fail logs err at a level matching its HTTP class and writes the error envelope.
func (h *Handler) fail(ctx context.Context, w http.ResponseWriter, msg string, err error, args ...any) {
	args = append(args, "error", err)
	if mapError(ctx, err).HTTPStatus >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, msg, args...)
	} else {
		h.logger.WarnContext(ctx, msg, args...)
	}
	writeError(ctx, w, err)
}
