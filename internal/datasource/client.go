// Package datasource fetches official French holiday data (public
// holidays and school vacations) and merges it into the shared holiday
// calendar, with a local 30-day cache in front of the network.
package datasource

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultPublicHolidaysURL = "https://calendrier.api.gouv.fr/jours-feries/metropole.json"
	defaultSchoolCalendarURL = "https://data.education.gouv.fr/api/explore/v2.0/catalog/datasets/fr-en-calendrier-scolaire/records"
)

// Client talks to the two government open-data endpoints.
type Client struct {
	httpClient *http.Client
	// PublicHolidaysURL and SchoolCalendarURL are the endpoint URLs.
	// Exported for testing with httptest.
	PublicHolidaysURL string
	SchoolCalendarURL string
}

// NewClient creates a client with sensible defaults.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		PublicHolidaysURL: defaultPublicHolidaysURL,
		SchoolCalendarURL: defaultSchoolCalendarURL,
	}
}

// FetchPublicHolidays retrieves the flat date-to-name mapping of French
// public holidays for the whole range the provider covers.
func (c *Client) FetchPublicHolidays() (map[string]string, error) {
	resp, err := c.httpClient.Get(c.PublicHolidaysURL)
	if err != nil {
		return nil, fmt.Errorf("public holidays request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("public holidays API returned status %d: %s", resp.StatusCode, string(body))
	}

	var holidays map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&holidays); err != nil {
		return nil, fmt.Errorf("failed to decode public holidays: %w", err)
	}
	return holidays, nil
}

// SchoolPeriod is one vacation period as returned by the school
// calendar dataset. Dates may be UTC-anchored ISO timestamps, and
// EndDate denotes the day classes resume, not the last vacation day.
type SchoolPeriod struct {
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// schoolCalendarResponse mirrors the opendatasoft explore v2.0 record
// envelope.
type schoolCalendarResponse struct {
	TotalCount int `json:"total_count"`
	Records    []struct {
		Record struct {
			Fields SchoolPeriod `json:"fields"`
		} `json:"record"`
	} `json:"records"`
}

// FetchSchoolPeriods retrieves the vacation periods for one scheduling
// zone and académie, keeping only periods ending on or after since.
func (c *Client) FetchSchoolPeriods(zone, academy string, since time.Time) ([]SchoolPeriod, error) {
	params := url.Values{}
	params.Set("select", "description,start_date,end_date")
	params.Set("where", fmt.Sprintf("zones=%q and location=%q and end_date>=%q",
		zone, academy, since.Format("2006-01-02")))
	params.Set("order_by", "start_date")
	params.Set("limit", "100")

	reqURL := fmt.Sprintf("%s?%s", c.SchoolCalendarURL, params.Encode())
	resp, err := c.httpClient.Get(reqURL)
	if err != nil {
		return nil, fmt.Errorf("school calendar request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("school calendar API returned status %d: %s", resp.StatusCode, string(body))
	}

	var decoded schoolCalendarResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode school calendar: %w", err)
	}

	periods := make([]SchoolPeriod, 0, len(decoded.Records))
	for _, r := range decoded.Records {
		periods = append(periods, r.Record.Fields)
	}
	return periods, nil
}
