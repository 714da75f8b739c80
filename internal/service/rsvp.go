package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/domain"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/events"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/internal/repository"
	"github.com/simbongile-mkhotheli/AlumniConnect-sub002/pkg/logger"
)

var (
	ErrEventFull  = errors.New("event is at capacity")
	ErrRSVPClosed = errors.New("event is not open for rsvps")
)

// RSVP manages event attendance. RSVPs are idempotent in both directions:
// re-registering an attendee or cancelling a non-attendee is a no-op success.
// Register and Cancel run as one atomic read-modify-write through the
// repository, so concurrent RSVPs on the same event never lose updates and
// the capacity check cannot over-admit.
type RSVP struct {
	events    repository.Repository[*domain.Event]
	publisher events.Publisher
	log       *logger.Logger
}

// NewRSVP creates the RSVP service over the event repository.
func NewRSVP(repo repository.Repository[*domain.Event], publisher events.Publisher, log *logger.Logger) *RSVP {
	return &RSVP{events: repo, publisher: publisher, log: log}
}

// Register adds the user to the event's attendee list.
func (s *RSVP) Register(ctx context.Context, eventID, userID string) (*domain.Event, error) {
	joined := false
	event, err := s.events.Apply(ctx, eventID, func(event *domain.Event) error {
		if event.Status != domain.StatusPublished {
			return ErrRSVPClosed
		}
		if event.HasAttendee(userID) {
			return nil
		}
		if event.IsFull() {
			return ErrEventFull
		}
		event.Attendees = append(event.Attendees, userID)
		event.Touch(time.Now().UTC())
		joined = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}
	if !joined {
		return event, nil
	}

	s.log.InfoContext(ctx, "rsvp registered",
		zap.String("event_id", eventID),
		zap.String("user_id", userID),
		zap.Int("attendees", len(event.Attendees)))
	s.publisher.Publish(ctx, events.Notification{
		Resource: "event",
		EntityID: eventID,
		Action:   events.ActionRSVP,
		UserID:   userID,
	})

	return event, nil
}

// Cancel removes the user from the event's attendee list.
func (s *RSVP) Cancel(ctx context.Context, eventID, userID string) (*domain.Event, error) {
	left := false
	event, err := s.events.Apply(ctx, eventID, func(event *domain.Event) error {
		if event.Status != domain.StatusPublished {
			return ErrRSVPClosed
		}
		if !event.HasAttendee(userID) {
			return nil
		}
		attendees := event.Attendees[:0]
		for _, id := range event.Attendees {
			if id != userID {
				attendees = append(attendees, id)
			}
		}
		event.Attendees = attendees
		event.Touch(time.Now().UTC())
		left = true
		return nil
	})
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrNotFound
	}
	if !left {
		return event, nil
	}

	s.log.InfoContext(ctx, "rsvp cancelled",
		zap.String("event_id", eventID),
		zap.String("user_id", userID))
	s.publisher.Publish(ctx, events.Notification{
		Resource: "event",
		EntityID: eventID,
		Action:   events.ActionRSVPCancelled,
		UserID:   userID,
	})

	return event, nil
}
