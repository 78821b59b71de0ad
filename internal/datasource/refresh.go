package datasource

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ami93120/mosque-calendar/internal/cache"
	"github.com/ami93120/mosque-calendar/internal/calendar"
)

// Source keeps the shared holiday calendar in sync with the official
// data, cache first, network second.
type Source struct {
	client     *Client
	store      *cache.Store
	cal        *calendar.Calendar
	classifier *calendar.Classifier
	loc        *time.Location
	zone       string
	academy    string
	now        func() time.Time
}

// New wires a Source around the shared calendar. store may be nil when
// caching is disabled; classifier is invalidated whenever school-holiday
// data changes so later classifications see the new intervals.
func New(client *Client, store *cache.Store, cal *calendar.Calendar,
	cls *calendar.Classifier, loc *time.Location, zone, academy string) *Source {

	if loc == nil {
		loc = time.Local
	}
	return &Source{
		client:     client,
		store:      store,
		cal:        cal,
		classifier: cls,
		loc:        loc,
		zone:       zone,
		academy:    academy,
		now:        time.Now,
	}
}

// Refresh brings the shared calendar up to date and reports whether
// anything was applied (the caller re-renders if so). The local cache is
// consulted first; within its freshness window no network call is made.
// The two remote fetches are independent: one failing does not stop the
// other, and only a total failure returns false. No error escapes.
func (s *Source) Refresh() bool {
	if s.store != nil {
		if rec := s.store.LoadHolidays(); rec != nil {
			log.Info().Msg("holiday data loaded from local cache")
			s.apply(rec.PublicHolidays, rec.SchoolHolidays, len(rec.SchoolHolidays) > 0)
			return true
		}
	}

	updated := false

	public, err := s.client.FetchPublicHolidays()
	if err != nil {
		log.Warn().Err(err).Msg("public holidays fetch failed, keeping local data")
	} else {
		s.apply(s.normalizeKeys(public), nil, false)
		updated = true
		log.Info().Int("count", len(public)).Msg("public holidays updated")
	}

	periods, err := s.client.FetchSchoolPeriods(s.zone, s.academy, s.now())
	if err != nil {
		log.Warn().Err(err).Msg("school calendar fetch failed, keeping local data")
	} else {
		intervals := s.intervalsFromPeriods(periods)
		s.apply(nil, intervals, true)
		updated = true
		log.Info().Int("count", len(intervals)).Msg("school holidays updated")
	}

	if updated && s.store != nil {
		if err := s.store.SaveHolidays(s.cal.PublicHolidays, s.cal.SchoolHolidays); err != nil {
			log.Warn().Err(err).Msg("failed to persist holiday cache")
		}
	}
	return updated
}

// apply mutates the shared calendar: public holidays merge additively,
// school holidays replace wholesale. The classifier's compiled intervals
// are invalidated before anyone can classify against stale data.
func (s *Source) apply(public map[string]string, school []calendar.Interval, replaceSchool bool) {
	if public != nil {
		s.cal.MergePublic(public)
	}
	if replaceSchool {
		s.cal.SetSchoolHolidays(school)
		if s.classifier != nil {
			s.classifier.Invalidate()
		}
	}
}

// normalizeKeys re-anchors the provider's date keys to the configured
// local calendar date, guarding against off-by-one shifts from
// UTC-anchored timestamps.
func (s *Source) normalizeKeys(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[s.localISO(k)] = v
	}
	return out
}

// intervalsFromPeriods converts provider records into whole-day
// intervals. The provider's end_date is the day classes resume, so the
// last vacation day is one day earlier.
func (s *Source) intervalsFromPeriods(periods []SchoolPeriod) []calendar.Interval {
	intervals := make([]calendar.Interval, 0, len(periods))
	for _, p := range periods {
		name := p.Description
		if name == "" {
			name = "Vacances"
		}

		end, err := time.ParseInLocation("2006-01-02", s.localISO(p.EndDate), s.loc)
		if err != nil {
			continue
		}

		intervals = append(intervals, calendar.Interval{
			Name:  name,
			Start: s.localISO(p.StartDate),
			End:   end.AddDate(0, 0, -1).Format("2006-01-02"),
		})
	}
	return intervals
}

// localISO normalizes a provider date string (plain date or RFC 3339
// timestamp, possibly UTC-anchored) to the local calendar date.
func (s *Source) localISO(raw string) string {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.In(s.loc).Format("2006-01-02")
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", raw, s.loc); err == nil {
		return t.Format("2006-01-02")
	}
	if t, err := time.ParseInLocation("2006-01-02", raw, s.loc); err == nil {
		return t.Format("2006-01-02")
	}
	// Unparseable input passes through; a bad key simply never matches.
	return raw
}
