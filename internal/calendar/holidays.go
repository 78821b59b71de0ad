// Package calendar derives the semantic attributes of each day (school
// holidays, public holidays, DST transitions, new moons, Eid) that the
// rendered views hang icons and labels on.
package calendar

// Interval is one school-holiday period, whole days inclusive on both
// ends, dates as local "YYYY-MM-DD".
type Interval struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// Calendar is the shared holiday configuration a render pass reads.
// It starts from the deployment's static data and is overwritten by the
// external data source when fresh official data is available.
type Calendar struct {
	// SchoolHolidays is an ordered list of non-overlapping intervals.
	SchoolHolidays []Interval
	// PublicHolidays maps local ISO dates to holiday names.
	PublicHolidays map[string]string
}

// MergePublic adds entries additively, keeping any dates the incoming
// set no longer lists.
func (c *Calendar) MergePublic(m map[string]string) {
	if c.PublicHolidays == nil {
		c.PublicHolidays = make(map[string]string, len(m))
	}
	for k, v := range m {
		c.PublicHolidays[k] = v
	}
}

// SetSchoolHolidays replaces the school-holiday list wholesale. Callers
// must invalidate any classifier that compiled the previous list.
func (c *Calendar) SetSchoolHolidays(list []Interval) {
	c.SchoolHolidays = list
}
