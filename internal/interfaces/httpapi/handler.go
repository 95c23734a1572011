package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/tt-league/internal/domain/user"
	"github.com/riskibarqy/tt-league/internal/domain/validation"
	"github.com/riskibarqy/tt-league/internal/platform/logging"
	"github.com/riskibarqy/tt-league/internal/usecase"
)

type Handler struct {
	leagueService     *usecase.LeagueService
	fixtureService    *usecase.FixtureService
	resultService     *usecase.ResultService
	rosterService     *usecase.RosterService
	directoryService  *usecase.DirectoryService
	clubAdminService  *usecase.ClubAdminService
	moderationService *usecase.ModerationService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	fixtureService *usecase.FixtureService,
	resultService *usecase.ResultService,
	rosterService *usecase.RosterService,
	directoryService *usecase.DirectoryService,
	clubAdminService *usecase.ClubAdminService,
	moderationService *usecase.ModerationService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)

	return &Handler{
		leagueService:     leagueService,
		fixtureService:    fixtureService,
		resultService:     resultService,
		rosterService:     rosterService,
		directoryService:  directoryService,
		clubAdminService:  clubAdminService,
		moderationService: moderationService,
		logger:            logger,
		validator:         v,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeJSON reads a strict JSON body into dst and runs the struct tags.
func (h *Handler) decodeJSON(ctx context.Context, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	err := h.validator.StructCtx(ctx, payload)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}
	verrs := validation.New()
	for _, fe := range fieldErrs {
		verrs.Add(fieldLocation(fe), fieldMessage(fe))
	}
	return fmt.Errorf("%w: %w", usecase.ErrInvalidInput, verrs)
}

func invalidRequest(verrs validation.Errors) error {
	if verrs.Empty() {
		return nil
	}
	return fmt.Errorf("%w: %w", usecase.ErrInvalidInput, verrs)
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// fieldLocation drops the request type from the namespace, so nested
// failures read games[1].set_num.
func fieldLocation(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "oneof":
		return fmt.Sprintf("Select a valid choice. Options are: %s.", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "gt", "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", gteParam(fe))
	case "latitude", "longitude":
		return "Enter a valid coordinate."
	default:
		return fmt.Sprintf("Failed the %q check.", fe.Tag())
	}
}

func gteParam(fe validator.FieldError) string {
	if fe.Tag() == "gt" {
		n, err := strconv.Atoi(fe.Param())
		if err == nil {
			return strconv.Itoa(n + 1)
		}
	}
	return fe.Param()
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

// queryID reads an optional numeric filter. Blank means no filter.
func queryID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return id, nil
}

func fixtureQueryFromRequest(r *http.Request) (usecase.FixtureQuery, error) {
	divisionID, err := queryID(r, "division")
	if err != nil {
		return usecase.FixtureQuery{}, err
	}
	clubID, err := queryID(r, "club")
	if err != nil {
		return usecase.FixtureQuery{}, err
	}
	return usecase.FixtureQuery{
		SeasonSlug: strings.TrimSpace(r.URL.Query().Get("season")),
		DivisionID: divisionID,
		ClubID:     clubID,
	}, nil
}

func requirePrincipal(ctx context.Context) (user.Principal, error) {
	principal, ok := principalFromContext(ctx)
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized)
	}
	return principal, nil
}
