package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schedulocity/internal/app/analytics"
	"github.com/yigit/schedulocity/internal/app/repositories"
	"github.com/yigit/schedulocity/internal/db"
	"github.com/yigit/schedulocity/internal/pkg/email"
	"github.com/yigit/schedulocity/internal/pkg/websocket"
	"github.com/yigit/schedulocity/internal/seed"
	"golang.org/x/crypto/bcrypt"
)

type fixture struct {
	store *db.MemoryDB
	repos *repositories.Repositories
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	tables, err := seed.Build(context.Background(), seed.Options{RandomSeed: 42, BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)
	store := db.NewMemoryDB()
	store.Load(tables)
	return &fixture{
		store: store,
		repos: repositories.NewRepositories(store, repositories.NewMemorySessionRepository(time.Hour)),
	}
}

// actor signs username in without a password check
func (f *fixture) actor(t *testing.T, username string) *Actor {
	t.Helper()
	user, err := f.repos.UserRepository.GetByUsername(context.Background(), username)
	require.NoError(t, err)
	actor, err := NewActor("session-"+username, *user)
	require.NoError(t, err)
	return actor
}

func (f *fixture) provider() analytics.Provider {
	return analytics.NewComputedProvider(f.repos.TimetableRepository, f.repos.ResourceRepository, f.repos.LeaveRequestRepository)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []websocket.Event
}

func (p *recordingPublisher) Publish(e websocket.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []email.LeaveDecision
	to   []string
	err  error
}

func (n *fakeNotifier) SendLeaveDecision(toEmail, _ string, d email.LeaveDecision) (bool, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return false, n.err
	}
	n.sent = append(n.sent, d)
	n.to = append(n.to, toEmail)
	return true, nil
}

var nopLogger = zerolog.Nop()
