package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/kizunaworks/backoffice/ent"
	"github.com/kizunaworks/backoffice/ent/syncrun"
	apierrors "github.com/kizunaworks/backoffice/pkg/api/errors"
	"github.com/kizunaworks/backoffice/pkg/cache"
	"github.com/kizunaworks/backoffice/pkg/callsync"
	"github.com/kizunaworks/backoffice/pkg/metrics"
	"github.com/kizunaworks/backoffice/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// Trailing window used when a sync request names no bounds.
const defaultSyncWindow = 2 * time.Hour

// CallSyncHandler exposes the call log sync trigger and inspection endpoints
type CallSyncHandler struct {
	sync    *callsync.Service
	cache   *cache.Client
	metrics *metrics.Metrics
}

// NewCallSyncHandler creates a new call sync handler. cache and metrics may
// be nil.
func NewCallSyncHandler(syncService *callsync.Service, cacheClient *cache.Client, m *metrics.Metrics) *CallSyncHandler {
	return &CallSyncHandler{
		sync:    syncService,
		cache:   cacheClient,
		metrics: m,
	}
}

// parseWindow resolves the requested sync window. Bounds accept RFC 3339
// timestamps or plain dates; both default to the trailing window. Query
// params are read directly because Echo does not bind them on POST.
func parseWindow(c echo.Context) (time.Time, time.Time, error) {
	req := models.SyncWindowRequest{
		Since: c.QueryParam("since"),
		Until: c.QueryParam("until"),
	}

	until := time.Now()
	since := until.Add(-defaultSyncWindow)

	if req.Since != "" {
		t, err := parseTimeParam(req.Since)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		since = t
	}
	if req.Until != "" {
		t, err := parseTimeParam(req.Until)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		until = t
	}
	if until.Before(since) {
		return time.Time{}, time.Time{}, errors.New("until must not precede since")
	}
	return since, until, nil
}

func parseTimeParam(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func runResponse(run *ent.SyncRun) models.SyncRunResponse {
	resp := models.SyncRunResponse{
		Trigger:    string(run.Trigger),
		StartDate:  run.StartDate,
		EndDate:    run.EndDate,
		Inserted:   run.Inserted,
		Updated:    run.Updated,
		Skipped:    run.Skipped,
		Status:     string(run.Status),
		Error:      run.Error,
		StartedAt:  run.StartedAt,
		FinishedAt: run.FinishedAt,
	}
	if run.SkipReasons != nil {
		resp.SkipReasons = run.SkipReasons
	}
	return resp
}

// TriggerSync godoc
// @Summary Trigger a call log sync run
// @Description Pull outbound call records from the call log platform and merge them into the contact ledger. Defaults to the last two hours when no window is given.
// @Tags CallSync
// @Produce json
// @Param since query string false "Window start (RFC 3339 or YYYY-MM-DD)"
// @Param until query string false "Window end (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {object} models.SyncRunResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse "A sync run is already in progress"
// @Failure 502 {object} models.ErrorResponse "The call log platform failed mid-run"
// @Security BearerAuth
// @Router /api/v1/integrations/calllog/sync [post]
func (h *CallSyncHandler) TriggerSync(c echo.Context) error {
	since, until, err := parseWindow(c)
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Minute)
	defer cancel()

	startedAt := time.Now()
	result, runErr := h.sync.Sync(ctx, since, until)
	if errors.Is(runErr, callsync.ErrSyncInProgress) {
		if h.metrics != nil {
			h.metrics.RecordSyncRun("manual", "busy")
		}
		return apierrors.ConflictError(c, "A sync run is already in progress. Try again once it finishes.")
	}

	run, recErr := h.sync.RecordRun(ctx, syncrun.TriggerManual, since, until, startedAt, result, runErr)
	if recErr != nil {
		return apierrors.DatabaseError(c, recErr)
	}

	if h.metrics != nil {
		h.metrics.RecordSyncRun("manual", string(run.Status))
		if result != nil {
			h.metrics.RecordSyncOutcome(result.Inserted, result.Updated, result.Skipped)
		}
	}

	resp := runResponse(run)
	if h.cache != nil {
		if err := h.cache.SetLastSyncRun(ctx, resp, 24*time.Hour); err != nil {
			c.Logger().Warnf("failed to cache sync run summary: %v", err)
		}
	}

	if runErr != nil {
		// Records merged before the failure are kept; the counts reflect
		// what actually landed.
		return c.JSON(http.StatusBadGateway, resp)
	}
	return c.JSON(http.StatusOK, resp)
}

// PeekRecords godoc
// @Summary Preview call log records without merging
// @Description Fetch the records the platform would return for a window, without touching the ledger.
// @Tags CallSync
// @Produce json
// @Param since query string false "Window start (RFC 3339 or YYYY-MM-DD)"
// @Param until query string false "Window end (RFC 3339 or YYYY-MM-DD)"
// @Success 200 {object} callsync.PeekResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/integrations/calllog/peek [get]
func (h *CallSyncHandler) PeekRecords(c echo.Context) error {
	since, until, err := parseWindow(c)
	if err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Minute)
	defer cancel()

	peek, err := h.sync.Peek(ctx, since, until)
	if err != nil {
		return apierrors.UpstreamError(c, err)
	}

	return c.JSON(http.StatusOK, peek)
}

// CheckOwnerDate godoc
// @Summary Count ledger rows for an owner and date
// @Description Report how many contact rows an agent holds on a given day. Accepts platform display names as well as canonical rep names.
// @Tags CallSync
// @Produce json
// @Param owner query string true "Agent name (canonical or platform alias)"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} models.CheckResponse
// @Failure 400 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/integrations/calllog/check [get]
func (h *CallSyncHandler) CheckOwnerDate(c echo.Context) error {
	owner := c.QueryParam("owner")
	date := c.QueryParam("date")

	if owner == "" {
		return apierrors.ValidationError(c, errors.New("owner is required"))
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return apierrors.ValidationError(c, errors.New("date must be YYYY-MM-DD"))
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	count, err := h.sync.CountByOwnerAndDate(ctx, owner, date)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, models.CheckResponse{
		Owner: owner,
		Date:  date,
		Count: count,
	})
}

// SyncStatus godoc
// @Summary Report the most recent sync run
// @Description Return the latest sync run summary, served from cache when available.
// @Tags CallSync
// @Produce json
// @Success 200 {object} models.SyncRunResponse
// @Failure 404 {object} models.ErrorResponse "No sync run has happened yet"
// @Security BearerAuth
// @Router /api/v1/integrations/calllog/status [get]
func (h *CallSyncHandler) SyncStatus(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if h.cache != nil {
		var cached models.SyncRunResponse
		err := h.cache.GetLastSyncRun(ctx, &cached)
		if err == nil {
			if h.metrics != nil {
				h.metrics.RecordCacheHit("redis")
			}
			return c.JSON(http.StatusOK, cached)
		}
		if !errors.Is(err, redis.Nil) {
			c.Logger().Warnf("failed to read cached sync run: %v", err)
		}
		if h.metrics != nil {
			h.metrics.RecordCacheMiss("redis")
		}
	}

	run, err := h.sync.LastRun(ctx)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}
	if run == nil {
		return apierrors.NotFoundError(c, "sync run")
	}

	return c.JSON(http.StatusOK, runResponse(run))
}
