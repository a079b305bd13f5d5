package domain

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultFeedLimit caps the recent-activity feed.
const DefaultFeedLimit = 10

// Service is the activity ledger and aggregator. It owns the in-memory
// user registry and activity log, and writes both back through the Store
// after each mutation. There is exactly one logical writer; the service is
// not safe for concurrent use.
type Service struct {
	store     Store
	logger    *zap.Logger
	now       func() time.Time
	feedLimit int

	users      []User
	activities []Activity
}

// Option configures a Service.
type Option func(*Service)

// WithLogger attaches a logger for operational events. Validation failures
// are surfaced to the caller, never logged.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithFeedLimit overrides the recent-feed cap.
func WithFeedLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.feedLimit = limit
		}
	}
}

// NewService loads both collections from the store and returns a ready
// aggregator. Absent keys load as empty collections.
func NewService(ctx context.Context, store Store, opts ...Option) (*Service, error) {
	s := &Service{
		store:     store,
		logger:    zap.NewNop(),
		now:       time.Now,
		feedLimit: DefaultFeedLimit,
	}
	for _, opt := range opts {
		opt(s)
	}

	users, err := store.LoadUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	activities, err := store.LoadActivities(ctx)
	if err != nil {
		return nil, fmt.Errorf("load activities: %w", err)
	}
	s.users = users
	s.activities = activities

	s.logger.Debug("ledger loaded",
		zap.Int("users", len(users)),
		zap.Int("activities", len(activities)))
	return s, nil
}

// AddUser registers a user with zero aggregates and persists the registry.
// The name must be non-empty after trimming and unique case-insensitively.
func (s *Service) AddUser(ctx context.Context, name string) (User, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return User{}, validationErrorf("please enter a name")
	}
	for _, u := range s.users {
		if strings.EqualFold(u.Name, trimmed) {
			return User{}, validationErrorf("user %q already exists", u.Name)
		}
	}

	user := User{ID: newID(), Name: trimmed}
	s.users = append(s.users, user)
	if err := s.store.SaveUsers(ctx, s.users); err != nil {
		s.users = s.users[:len(s.users)-1]
		return User{}, fmt.Errorf("save users: %w", err)
	}

	s.logger.Info("user registered",
		zap.String("user_id", user.ID),
		zap.String("name", user.Name))
	return user, nil
}

// Users returns the registry in insertion order.
func (s *Service) Users() []User {
	out := make([]User, len(s.users))
	copy(out, s.users)
	return out
}

// Activities returns the full log, most recent first.
func (s *Service) Activities() []Activity {
	out := make([]Activity, len(s.activities))
	copy(out, s.activities)
	return out
}

// LogActivityInput carries raw form values for a log operation. Noahs and
// CustomPoints arrive unparsed so that unparsable input surfaces as a
// ValidationError of the ledger, matching the other validation failures.
type LogActivityInput struct {
	UserID       string
	Type         string
	Noahs        string
	Notes        string
	CustomName   string
	CustomPoints string
}

// LogActivity validates the input, prepends the resulting activity to the
// log, adds to the owner's aggregates, and persists both collections. On
// success it returns the activity and a human-readable confirmation line.
//
// The two saves have no rollback path: if activities persist but users do
// not, stored aggregates lag the stored log until the next successful write
// or a Reconcile.
func (s *Service) LogActivity(ctx context.Context, input LogActivityInput) (Activity, string, error) {
	owner := s.findUser(input.UserID)
	if strings.TrimSpace(input.UserID) == "" || owner == nil {
		return Activity{}, "", validationErrorf("please select a user")
	}
	if strings.TrimSpace(input.Type) == "" {
		return Activity{}, "", validationErrorf("please select an activity type")
	}
	kind, ok := ParseKind(input.Type)
	if !ok {
		return Activity{}, "", validationErrorf("unknown activity type %q", input.Type)
	}
	noahs, err := strconv.ParseFloat(strings.TrimSpace(input.Noahs), 64)
	if err != nil || math.IsNaN(noahs) || math.IsInf(noahs, 0) || noahs <= 0 {
		return Activity{}, "", validationErrorf("please enter a Noah value greater than 0")
	}

	var name string
	var points int
	if kind == KindCustom {
		name = strings.TrimSpace(input.CustomName)
		rawPoints := strings.TrimSpace(input.CustomPoints)
		if name == "" || rawPoints == "" {
			return Activity{}, "", validationErrorf("please enter a custom activity name and points")
		}
		points, err = strconv.Atoi(rawPoints)
		if err != nil {
			return Activity{}, "", validationErrorf("custom points must be a whole number")
		}
	} else {
		entry, _ := kind.Catalog()
		name = entry.Label
		points = entry.Points
	}

	noahSum := float64(points) * noahs
	activity := Activity{
		ID:        newID(),
		UserID:    owner.ID,
		UserName:  owner.Name,
		Type:      kind,
		Name:      name,
		Points:    points,
		Noahs:     noahs,
		NoahSum:   noahSum,
		Notes:     strings.TrimSpace(input.Notes),
		Timestamp: s.now().UTC(),
	}

	s.activities = append([]Activity{activity}, s.activities...)
	owner.TotalPoints += points
	owner.TotalNoahs += noahs
	owner.TotalNoahSum += noahSum

	if err := s.store.SaveActivities(ctx, s.activities); err != nil {
		s.activities = s.activities[1:]
		owner.TotalPoints -= points
		owner.TotalNoahs -= noahs
		owner.TotalNoahSum -= noahSum
		return Activity{}, "", fmt.Errorf("save activities: %w", err)
	}
	if err := s.store.SaveUsers(ctx, s.users); err != nil {
		// Accepted consistency gap: the log is persisted, the aggregates
		// are not. Reconcile repairs the stored registry.
		return Activity{}, "", fmt.Errorf("save users: %w", err)
	}

	confirmation := fmt.Sprintf("%s logged! %d pts × %s Noahs = %.1f NoahSum",
		name, points, formatNoahs(noahs), noahSum)

	s.logger.Info("activity logged",
		zap.String("activity_id", activity.ID),
		zap.String("user_id", owner.ID),
		zap.String("type", string(kind)),
		zap.Int("points", points),
		zap.Float64("noahs", noahs))
	return activity, confirmation, nil
}

// Reconcile rebuilds every user's aggregates from the activity log and
// persists the registry, repairing any divergence left by a partial write.
func (s *Service) Reconcile(ctx context.Context) error {
	rebuilt := make([]User, len(s.users))
	copy(rebuilt, s.users)

	index := make(map[string]*User, len(rebuilt))
	for i := range rebuilt {
		rebuilt[i].TotalPoints = 0
		rebuilt[i].TotalNoahs = 0
		rebuilt[i].TotalNoahSum = 0
		index[rebuilt[i].ID] = &rebuilt[i]
	}
	for _, a := range s.activities {
		owner, ok := index[a.UserID]
		if !ok {
			continue
		}
		owner.TotalPoints += a.Points
		owner.TotalNoahs += a.Noahs
		owner.TotalNoahSum += a.ResolvedNoahSum()
	}

	if err := s.store.SaveUsers(ctx, rebuilt); err != nil {
		return fmt.Errorf("save users: %w", err)
	}
	s.users = rebuilt

	s.logger.Info("aggregates reconciled",
		zap.Int("users", len(rebuilt)),
		zap.Int("activities", len(s.activities)))
	return nil
}

func (s *Service) findUser(id string) *User {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i]
		}
	}
	return nil
}

// formatNoahs renders the multiplier with no trailing zeros, so 1.0 prints
// as "1" and 1.5 as "1.5".
func formatNoahs(noahs float64) string {
	return strconv.FormatFloat(noahs, 'f', -1, 64)
}
