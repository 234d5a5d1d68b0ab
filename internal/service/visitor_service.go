package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"

	"hugely/internal/cache"
	"hugely/internal/model"
	"hugely/internal/repository"
)

const (
	activityDays     = 31
	visitorReportKey = "visitor:report"
)

// VisitorReport feeds the statistics page.
type VisitorReport struct {
	TotalCount  int64    `json:"total_count"`
	MonthCount  int64    `json:"month_count"`
	DayCount    int64    `json:"day_count"`
	ActiveTime  []string `json:"active_time"`
	ActiveCount []int64  `json:"active_count"`
}

// VisitorService records visits and reports on them.
type VisitorService interface {
	Record(ctx context.Context, host, userAgent string)
	Report(ctx context.Context) *VisitorReport
}

type visitorService struct {
	repo  repository.VisitorRepository
	cache cache.KV
	ttl   time.Duration
	log   zerolog.Logger
	now   func() time.Time
}

// NewVisitorService creates a visitor service. Reports are cached for ttl
// when kv is set and ttl is positive.
func NewVisitorService(repo repository.VisitorRepository, kv cache.KV, ttl time.Duration, log zerolog.Logger) VisitorService {
	return &visitorService{repo: repo, cache: kv, ttl: ttl, log: log, now: time.Now}
}

// Record appends one visit. Failures are logged and never reach the caller.
func (s *visitorService) Record(ctx context.Context, host, userAgent string) {
	visitor := &model.Visitor{
		IP:       ParseHostIP(host),
		Terminal: ParseTerminal(userAgent),
	}
	if err := s.repo.Create(ctx, visitor); err != nil {
		s.log.Warn().Err(err).Str("ip", visitor.IP).Msg("record visitor")
	}
}

// Report computes the totals and the daily activity series. A failed query
// counts as zero.
func (s *visitorService) Report(ctx context.Context) *VisitorReport {
	if report := s.cached(ctx); report != nil {
		return report
	}

	now := s.now()
	dayBegin := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	monthBegin := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	report := &VisitorReport{
		ActiveTime:  make([]string, 0, activityDays),
		ActiveCount: make([]int64, 0, activityDays),
	}
	report.TotalCount = s.count("total", func() (int64, error) { return s.repo.Count(ctx) })
	report.MonthCount = s.count("month", func() (int64, error) { return s.repo.CountCreatedSince(ctx, monthBegin) })
	report.DayCount = s.count("day", func() (int64, error) { return s.repo.CountCreatedSince(ctx, dayBegin) })

	for i := activityDays - 1; i >= 0; i-- {
		begin := dayBegin.AddDate(0, 0, -i)
		end := begin.AddDate(0, 0, 1)
		n := s.count("active", func() (int64, error) { return s.repo.CountUpdatedBetween(ctx, begin, end) })
		report.ActiveTime = append(report.ActiveTime, begin.Format(model.DateLayout))
		report.ActiveCount = append(report.ActiveCount, n)
	}

	s.store(ctx, report)
	return report
}

func (s *visitorService) count(metric string, query func() (int64, error)) int64 {
	n, err := query()
	if err != nil {
		s.log.Error().Err(err).Str("metric", metric).Msg("count visitors")
		return 0
	}
	return n
}

func (s *visitorService) cached(ctx context.Context) *VisitorReport {
	if s.cache == nil || s.ttl <= 0 {
		return nil
	}
	data, _ := s.cache.Get(ctx, visitorReportKey)
	if data == nil {
		return nil
	}
	var report VisitorReport
	if err := json.Unmarshal(data, &report); err != nil {
		return nil
	}
	return &report
}

func (s *visitorService) store(ctx context.Context, report *VisitorReport) {
	if s.cache == nil || s.ttl <= 0 {
		return
	}
	if payload, err := json.Marshal(report); err == nil {
		_ = s.cache.Set(ctx, visitorReportKey, payload, s.ttl)
	}
}
