package googlecalendar

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/config"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/app/contracts"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/constvars"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/exceptions"
	"github.com/s-erzv/rimuru-nupers-s-assistant/internal/pkg/utils"
)

const sourceName = "calendar"

type calendarClient struct {
	BaseUrl     string
	CalendarID  string
	AccessToken string
	httpClient  *http.Client
	limiter     *rate.Limiter
}

func NewCalendarClient(cfg *config.InternalConfig) contracts.CalendarClient {
	rps := cfg.Google.CalendarRPS
	if rps <= 0 {
		rps = 1
	}
	return &calendarClient{
		BaseUrl:     cfg.Google.CalendarBaseUrl,
		CalendarID:  cfg.Google.CalendarID,
		AccessToken: cfg.Google.AccessToken,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Google.RequestTimeoutInSeconds) * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), rps),
	}
}

type eventListResponse struct {
	Items []contracts.CalendarEvent `json:"items"`
}

func (c *calendarClient) ListEvents(ctx context.Context, timeMin, timeMax time.Time) ([]contracts.CalendarEvent, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	query := url.Values{}
	query.Set("timeMin", utils.FormatRFC3339Local(timeMin))
	query.Set("timeMax", utils.FormatRFC3339Local(timeMax))
	query.Set("singleEvents", "true")
	query.Set("orderBy", "startTime")

	endpoint := fmt.Sprintf("%s/calendars/%s/events?%s", c.BaseUrl, url.PathEscape(c.CalendarID), query.Encode())
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, exceptions.ErrUnexpectedStatusCode(resp.StatusCode, sourceName)
	}

	listResponse := new(eventListResponse)
	err = json.NewDecoder(resp.Body).Decode(listResponse)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, sourceName)
	}

	return listResponse.Items, nil
}

func (c *calendarClient) InsertEvent(ctx context.Context, event *contracts.CalendarEvent) (*contracts.CalendarEvent, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	requestJSON, err := json.Marshal(event)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	endpoint := fmt.Sprintf("%s/calendars/%s/events", c.BaseUrl, url.PathEscape(c.CalendarID))
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, endpoint, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, exceptions.ErrUnexpectedStatusCode(resp.StatusCode, sourceName)
	}

	created := new(contracts.CalendarEvent)
	err = json.NewDecoder(resp.Body).Decode(created)
	if err != nil {
		return nil, exceptions.ErrDecodeResponse(err, sourceName)
	}

	return created, nil
}

func (c *calendarClient) setHeaders(req *http.Request) {
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if c.AccessToken != "" {
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+c.AccessToken)
	}
}
