package usecase

import (
	"context"
	"sync"
	"time"

	"decor-booking/internal/data/entity"
	"decor-booking/internal/data/repository"
	"decor-booking/pkg/database"
	"decor-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// In-memory repository fakes. They ignore the Querier argument: what the
// tests exercise is engine ordering and the concurrency guard, not SQL.

type fakeDecoratorRepo struct {
	mu         sync.Mutex
	decorators map[uuid.UUID]*entity.Decorator
}

func newFakeDecoratorRepo() *fakeDecoratorRepo {
	return &fakeDecoratorRepo{decorators: make(map[uuid.UUID]*entity.Decorator)}
}

func (f *fakeDecoratorRepo) Create(ctx context.Context, decorator *entity.Decorator) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.decorators[decorator.ID] = decorator
	return nil
}

func (f *fakeDecoratorRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Decorator, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.decorators[id], nil
}

func (f *fakeDecoratorRepo) FindByEmail(ctx context.Context, email string) (*entity.Decorator, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range f.decorators {
		if d.Email == email {
			return d, nil
		}
	}
	return nil, nil
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sessions[session.Token.String()] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sessions[token]
	if !ok || s.RevokedAt != nil || s.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	return s, nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.sessions[token]; ok && s.RevokedAt == nil {
		now := time.Now()
		s.RevokedAt = &now
	}
	return nil
}

type fakeRuleRepo struct {
	mu    sync.Mutex
	rules map[uuid.UUID]*entity.AvailabilityRule
}

func newFakeRuleRepo() *fakeRuleRepo {
	return &fakeRuleRepo{rules: make(map[uuid.UUID]*entity.AvailabilityRule)}
}

func (f *fakeRuleRepo) GetByDecorator(ctx context.Context, q database.Querier, decoratorID uuid.UUID) (*entity.AvailabilityRule, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rules[decoratorID], nil
}

func (f *fakeRuleRepo) Replace(ctx context.Context, rule *entity.AvailabilityRule) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rules[rule.DecoratorID] = rule
	return nil
}

func (f *fakeRuleRepo) Delete(ctx context.Context, decoratorID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.rules, decoratorID)
	return nil
}

type fakeBlockedRepo struct {
	mu      sync.Mutex
	entries []*entity.BlockedDate
}

func (f *fakeBlockedRepo) Create(ctx context.Context, blocked *entity.BlockedDate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, blocked)
	return nil
}

func (f *fakeBlockedRepo) Delete(ctx context.Context, id, decoratorID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, b := range f.entries {
		if b.ID == id && b.DecoratorID == decoratorID {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeBlockedRepo) ListByDecorator(ctx context.Context, decoratorID uuid.UUID) ([]*entity.BlockedDate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.BlockedDate
	for _, b := range f.entries {
		if b.DecoratorID == decoratorID {
			out = append(out, b)
		}
	}
	return out, nil
}

// FindMatching prefers a non-recurring entry, mirroring the query's ordering.
func (f *fakeBlockedRepo) FindMatching(ctx context.Context, q database.Querier, decoratorID uuid.UUID, date time.Time) (*entity.BlockedDate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var recurring *entity.BlockedDate
	for _, b := range f.entries {
		if b.DecoratorID != decoratorID || !b.Matches(date) {
			continue
		}
		if !b.IsRecurring {
			return b, nil
		}
		if recurring == nil {
			recurring = b
		}
	}
	return recurring, nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []*entity.Booking
}

func (f *fakeBookingRepo) Insert(ctx context.Context, q database.Querier, booking *entity.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *booking
	f.bookings = append(f.bookings, &cp)
	return nil
}

func (f *fakeBookingRepo) CountActive(ctx context.Context, q database.Querier, decoratorID uuid.UUID, date time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, b := range f.bookings {
		if b.DecoratorID == decoratorID && b.EventDate.Equal(date) && b.Active() {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) ListActiveTimes(ctx context.Context, q database.Querier, decoratorID uuid.UUID, date time.Time) ([]entity.MinuteOfDay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var times []entity.MinuteOfDay
	for _, b := range f.bookings {
		if b.DecoratorID == decoratorID && b.EventDate.Equal(date) && b.Active() {
			times = append(times, b.EventTime)
		}
	}
	return times, nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID == id {
			cp := *b
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindByDecorator(ctx context.Context, decoratorID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Booking
	for _, b := range f.bookings {
		if b.DecoratorID == decoratorID {
			out = append(out, b)
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeBookingRepo) CountByDecorator(ctx context.Context, decoratorID uuid.UUID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, b := range f.bookings {
		if b.DecoratorID == decoratorID {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID == id {
			b.Status = status
			b.UpdatedAt = time.Now()
		}
	}
	return nil
}

// fakeDB satisfies database.PgxIface. The transaction it hands out is inert:
// the repository fakes keep their own state, so commit and rollback are
// no-ops here.
type fakeDB struct{}

type fakeTx struct {
	pgx.Tx
}

func (fakeTx) Commit(ctx context.Context) error   { return nil }
func (fakeTx) Rollback(ctx context.Context) error { return nil }

func (fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (fakeDB) Begin(ctx context.Context) (pgx.Tx, error) {
	return fakeTx{}, nil
}

func (fakeDB) BeginTx(ctx context.Context, opts pgx.TxOptions) (pgx.Tx, error) {
	return fakeTx{}, nil
}

func (fakeDB) Ping(ctx context.Context) error { return nil }
func (fakeDB) Close()                         {}

type testEnv struct {
	repo       *repository.Repository
	decorators *fakeDecoratorRepo
	rules      *fakeRuleRepo
	blocked    *fakeBlockedRepo
	bookings   *fakeBookingRepo
}

func newTestEnv() *testEnv {
	decorators := newFakeDecoratorRepo()
	rules := newFakeRuleRepo()
	blocked := &fakeBlockedRepo{}
	bookings := &fakeBookingRepo{}

	return &testEnv{
		repo: &repository.Repository{
			Decorator:        decorators,
			Session:          newFakeSessionRepo(),
			AvailabilityRule: rules,
			BlockedDate:      blocked,
			Booking:          bookings,
		},
		decorators: decorators,
		rules:      rules,
		blocked:    blocked,
		bookings:   bookings,
	}
}

func (e *testEnv) addDecorator() uuid.UUID {
	id := uuid.New()
	now := time.Now()
	e.decorators.decorators[id] = &entity.Decorator{
		BaseNoDelete: entity.BaseNoDelete{ID: id, CreatedAt: now, UpdatedAt: now},
		Name:         "Test Decorator",
		Email:        id.String() + "@example.com",
		IsActive:     true,
	}
	return id
}

func testConfig() *utils.Config {
	return &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 24},
		Booking: utils.BookingConfig{LockWaitSeconds: 2},
	}
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
