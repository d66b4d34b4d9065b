package gcal

import (
	"context"
	"fmt"
	"strings"

	"github.com/xpanvictor/jassist/internal/config"
	"github.com/xpanvictor/jassist/internal/domains/calendar"
	"github.com/xpanvictor/jassist/pkg/Logger"
	gcalendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// Client pushes events to a Google Calendar. It implements
// calendar.Sync.
type Client struct {
	service    *gcalendar.Service
	calendarID string
	logger     *Logger.Logger
}

func NewClient(ctx context.Context, cfg config.GoogleConfig, logger *Logger.Logger) (*Client, error) {
	service, err := gcalendar.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to init google calendar client: %w", err)
	}
	calendarID := cfg.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}
	return &Client{service: service, calendarID: calendarID, logger: logger}, nil
}

// InsertEvent implements calendar.Sync
func (c *Client) InsertEvent(ctx context.Context, e *calendar.Event) (string, error) {
	ev := &gcalendar.Event{
		Summary:     e.Summary,
		Location:    e.Location,
		Description: e.Description,
		Start: &gcalendar.EventDateTime{
			DateTime: e.StartDateTime,
			TimeZone: e.StartTimeZone,
		},
		Visibility:   e.Visibility,
		Transparency: e.Transparency,
		Status:       e.Status,
	}
	if e.EndDateTime != "" {
		ev.End = &gcalendar.EventDateTime{
			DateTime: e.EndDateTime,
			TimeZone: e.EndTimeZone,
		}
	}
	if e.Recurrence != "" {
		ev.Recurrence = strings.Split(e.Recurrence, "\n")
	}
	for _, attendee := range splitAttendees(e.Attendees) {
		if strings.Contains(attendee, "@") {
			ev.Attendees = append(ev.Attendees, &gcalendar.EventAttendee{Email: attendee})
		}
	}

	created, err := c.service.Events.Insert(c.calendarID, ev).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("google calendar insert failed: %w", err)
	}
	c.logger.Debugf("google calendar event %s created", created.Id)
	return created.HtmlLink, nil
}

func splitAttendees(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
