// Package callsync merges outbound-call records from the external call-log
// platform into the locally owned sales-contact ledger.
//
// The engine is stateless across invocations: idempotence derives entirely
// from the (external source, external id) lookup backed by a unique index.
// Within a run, fetches and ledger writes are strictly sequential, and only
// one invocation may run at a time.
package callsync

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/kizunaworks/backoffice/ent"
	"github.com/kizunaworks/backoffice/ent/salescontact"
	"github.com/kizunaworks/backoffice/ent/syncrun"
	"github.com/kizunaworks/backoffice/ent/user"
	"github.com/kizunaworks/backoffice/pkg/calllog"
	"github.com/kizunaworks/backoffice/pkg/logger"
	"github.com/kizunaworks/backoffice/pkg/namemap"
	"github.com/kizunaworks/backoffice/pkg/phone"
)

// ExternalSource tags ledger rows originating from the call-log platform.
const ExternalSource = "cpi"

// Call-channel defaults forced onto merged rows.
const (
	contactMethodCall = "電話"
	statusNoReply     = "未返信"
)

const (
	defaultPageSize  = 100
	maxFetchAttempts = 3
	dateLayout       = "2006-01-02"
)

// ErrSyncInProgress is returned when a sync pass is started while another is
// still running. The engine is single-flight: the existence check and the
// later insert are separate statements, so overlapping runs could both
// observe "no existing record" for the same external id.
var ErrSyncInProgress = errors.New("call-log sync already in progress")

// SkipReason tags why a record was skipped instead of merged.
type SkipReason string

const (
	// SkipNoPhone marks non-first-call records with no digits in their phone
	// number; such records are ineligible for admission.
	SkipNoPhone SkipReason = "no_phone"
	// SkipDuplicateOwnership marks records whose phone is already owned by a
	// currently active user.
	SkipDuplicateOwnership SkipReason = "duplicate_ownership"
	// SkipUnmappedAgent marks records whose agent has no matching internal user.
	SkipUnmappedAgent SkipReason = "unmapped_agent"
	// SkipPersistenceError marks records whose merge failed at the database.
	SkipPersistenceError SkipReason = "persistence_error"
)

// Result aggregates the outcome of one sync pass.
type Result struct {
	Inserted    int                `json:"inserted"`
	Updated     int                `json:"updated"`
	Skipped     int                `json:"skipped"`
	SkipReasons map[SkipReason]int `json:"skip_reasons,omitempty"`
}

func (r *Result) skip(reason SkipReason) {
	r.Skipped++
	if r.SkipReasons == nil {
		r.SkipReasons = map[SkipReason]int{}
	}
	r.SkipReasons[reason]++
}

// PeekResult holds the outcome of a fetch-only diagnostic pass.
type PeekResult struct {
	Records    []calllog.Record `json:"records"`
	TotalCount int              `json:"total_count"`
	Pages      int              `json:"pages"`
}

// Fetcher abstracts one page fetch against the call-log platform.
// *calllog.Client satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, params calllog.FetchParams) (*calllog.FetchResult, error)
}

// Service drives the pull/admit/merge loop against the sales-contact ledger.
type Service struct {
	db       *ent.Client
	fetcher  Fetcher
	names    *namemap.Mapper
	log      logger.Logger
	pageSize int

	mu sync.Mutex
}

// NewService creates a new call-log sync service.
func NewService(db *ent.Client, fetcher Fetcher, names *namemap.Mapper, log logger.Logger) *Service {
	if names == nil {
		names = namemap.New(nil)
	}
	if log == nil {
		log = logger.Default()
	}

	return &Service{
		db:       db,
		fetcher:  fetcher,
		names:    names,
		log:      log,
		pageSize: defaultPageSize,
	}
}

// Sync pulls outbound-call records for the given window and merges them into
// the ledger. The window is truncated to whole days: that is the upstream
// query contract, not a defect.
//
// A mid-run upstream failure aborts the remaining pages and returns the
// counts accumulated so far alongside the error; completed merges are not
// rolled back. A second concurrent invocation fails fast with
// ErrSyncInProgress.
func (s *Service) Sync(ctx context.Context, since, until time.Time) (*Result, error) {
	if !s.mu.TryLock() {
		return nil, ErrSyncInProgress
	}
	defer s.mu.Unlock()

	startDate := since.Format(dateLayout)
	endDate := until.Format(dateLayout)

	result := &Result{SkipReasons: map[SkipReason]int{}}

	for page := 1; ; page++ {
		fetched, err := s.fetchPage(ctx, calllog.FetchParams{
			StartDate:    startDate,
			EndDate:      endDate,
			Page:         page,
			Row:          s.pageSize,
			OutboundOnly: true,
		})
		if err != nil {
			return result, fmt.Errorf("call-log page %d: %w", page, err)
		}

		if len(fetched.Records) == 0 {
			break
		}

		for _, rec := range fetched.Records {
			s.mergeRecord(ctx, rec, result)
		}

		// Always trust the most recently observed total: the upstream log may
		// still be written to while we page through it.
		if page*s.pageSize >= fetched.TotalCount {
			break
		}
	}

	return result, nil
}

// Peek fetches the window without merging, for diagnostics.
func (s *Service) Peek(ctx context.Context, since, until time.Time) (*PeekResult, error) {
	startDate := since.Format(dateLayout)
	endDate := until.Format(dateLayout)

	result := &PeekResult{}

	for page := 1; ; page++ {
		fetched, err := s.fetchPage(ctx, calllog.FetchParams{
			StartDate:    startDate,
			EndDate:      endDate,
			Page:         page,
			Row:          s.pageSize,
			OutboundOnly: true,
		})
		if err != nil {
			return result, fmt.Errorf("call-log page %d: %w", page, err)
		}

		if len(fetched.Records) == 0 {
			break
		}

		result.Records = append(result.Records, fetched.Records...)
		result.TotalCount = fetched.TotalCount
		result.Pages = page

		if page*s.pageSize >= fetched.TotalCount {
			break
		}
	}

	return result, nil
}

// CountByOwnerAndDate reports how many ledger rows exist for an owner name
// (external or canonical form) on a contact date.
func (s *Service) CountByOwnerAndDate(ctx context.Context, ownerName, date string) (int, error) {
	canonical := s.names.Resolve(ownerName)
	if canonical == "" {
		return 0, fmt.Errorf("owner name is required")
	}

	count, err := s.db.SalesContact.Query().
		Where(
			salescontact.ManagerNameEQ(canonical),
			salescontact.DateEQ(date),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count sales contacts: %w", err)
	}
	return count, nil
}

// RecordRun persists a SyncRun audit row for a finished pass. Failed runs
// keep the counts accumulated before the failure.
func (s *Service) RecordRun(ctx context.Context, trigger syncrun.Trigger, since, until, startedAt time.Time, result *Result, runErr error) (*ent.SyncRun, error) {
	builder := s.db.SyncRun.Create().
		SetTrigger(trigger).
		SetStartDate(since.Format(dateLayout)).
		SetEndDate(until.Format(dateLayout)).
		SetStartedAt(startedAt).
		SetFinishedAt(time.Now())

	if result != nil {
		reasons := make(map[string]int, len(result.SkipReasons))
		for reason, n := range result.SkipReasons {
			reasons[string(reason)] = n
		}
		builder = builder.
			SetInserted(result.Inserted).
			SetUpdated(result.Updated).
			SetSkipped(result.Skipped).
			SetSkipReasons(reasons)
	}

	if runErr != nil {
		builder = builder.SetStatus(syncrun.StatusFailed).SetError(runErr.Error())
	} else {
		builder = builder.SetStatus(syncrun.StatusCompleted)
	}

	run, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record sync run: %w", err)
	}
	return run, nil
}

// LastRun returns the most recently started sync run, or nil when none exists.
func (s *Service) LastRun(ctx context.Context) (*ent.SyncRun, error) {
	run, err := s.db.SyncRun.Query().
		Order(ent.Desc(syncrun.FieldStartedAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load last sync run: %w", err)
	}
	return run, nil
}

// fetchPage wraps one page fetch in a small retry budget. The client itself
// never retries; backoff here keeps admission semantics untouched while
// riding out transient upstream hiccups.
func (s *Service) fetchPage(ctx context.Context, params calllog.FetchParams) (*calllog.FetchResult, error) {
	var lastErr error
	for attempt := 0; attempt < maxFetchAttempts; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(1<<uint(attempt-1)) * time.Second
			s.log.Warn("retrying call-log fetch",
				"page", params.Page,
				"attempt", attempt+1,
				"backoff", backoff.String())

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		fetched, err := s.fetcher.Fetch(ctx, params)
		if err == nil {
			return fetched, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// mergeRecord applies the admit/resolve/merge steps to a single record.
// Every failure here is absorbed into the skip counters: one bad record must
// not abort the rest of the batch.
func (s *Service) mergeRecord(ctx context.Context, rec calllog.Record, result *Result) {
	externalID := rec.ExternalID()

	existing, err := s.db.SalesContact.Query().
		Where(
			salescontact.ExternalSourceEQ(ExternalSource),
			salescontact.ExternalCallIDEQ(externalID),
		).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		s.log.Error("sales contact lookup failed", "external_id", externalID, "error", err)
		result.skip(SkipPersistenceError)
		return
	}

	digits := phone.NormalizeDigits(rec.PhoneNumber)

	// Ownership-admission guard: a new non-first-call record may only claim a
	// phone number that no active (non-terminated) owner currently holds.
	// First calls bypass the guard; a former-owner-only history does not block.
	if existing == nil && !rec.IsFirstCall() {
		if digits == "" {
			result.skip(SkipNoPhone)
			return
		}

		blocked, err := s.db.SalesContact.Query().
			Where(
				salescontact.ExternalSourceEQ(ExternalSource),
				salescontact.PhoneEQ(digits),
				salescontact.HasOwnerWith(user.EmploymentStatusNEQ(user.EmploymentStatusTerminated)),
			).
			Exist(ctx)
		if err != nil {
			s.log.Error("phone ownership check failed", "external_id", externalID, "error", err)
			result.skip(SkipPersistenceError)
			return
		}
		if blocked {
			result.skip(SkipDuplicateOwnership)
			return
		}
	}

	managerName := s.names.Resolve(rec.Username)
	if managerName == "" {
		result.skip(SkipUnmappedAgent)
		return
	}

	owner, err := s.db.User.Query().Where(user.NameEQ(managerName)).First(ctx)
	if ent.IsNotFound(err) {
		s.log.Debug("untracked agent", "agent", rec.Username, "resolved", managerName)
		result.skip(SkipUnmappedAgent)
		return
	}
	if err != nil {
		s.log.Error("owner lookup failed", "external_id", externalID, "error", err)
		result.skip(SkipPersistenceError)
		return
	}

	dateStr := toDateString(rec.CreatedAt)
	occurredAt := toOccurredAt(rec.CreatedAt)
	companyName := strings.TrimSpace(rec.Company)

	if existing != nil {
		_, err = existing.Update().
			SetDate(dateStr).
			SetOccurredAt(occurredAt).
			SetManagerName(managerName).
			SetCompanyName(companyName).
			SetPhone(digits).
			SetOwnerID(owner.ID).
			SetContactMethod(contactMethodCall).
			SetStatus(statusNoReply).
			Save(ctx)
		if err != nil {
			s.log.Error("sales contact update failed", "external_id", externalID, "error", err)
			result.skip(SkipPersistenceError)
			return
		}
		result.Updated++
		return
	}

	_, err = s.db.SalesContact.Create().
		SetDate(dateStr).
		SetOccurredAt(occurredAt).
		SetManagerName(managerName).
		SetCompanyName(companyName).
		SetPhone(digits).
		SetOwnerID(owner.ID).
		SetContactMethod(contactMethodCall).
		SetStatus(statusNoReply).
		SetExternalCallID(externalID).
		SetExternalSource(ExternalSource).
		Save(ctx)
	if err != nil {
		s.log.Error("sales contact insert failed", "external_id", externalID, "error", err)
		result.skip(SkipPersistenceError)
		return
	}
	result.Inserted++
}

// toDateString extracts YYYY-MM-DD from the platform's timestamp strings.
// The platform returns naive local-time strings; no timezone math is applied.
func toDateString(isoLike string) string {
	if isoLike == "" {
		return time.Now().Format(dateLayout)
	}
	if i := strings.Index(isoLike, "T"); i > 0 {
		return isoLike[:i]
	}
	if len(isoLike) >= len(dateLayout) {
		return isoLike[:len(dateLayout)]
	}
	return isoLike
}

// toOccurredAt parses the platform timestamp, defaulting to now when the
// source value is missing or unparseable.
func toOccurredAt(isoLike string) time.Time {
	if isoLike == "" {
		return time.Now()
	}

	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05.999",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		dateLayout,
	}
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, isoLike); err == nil {
			return ts
		}
	}
	return time.Now()
}
