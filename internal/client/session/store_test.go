package session

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/gownshop/internal/client/repositories/keyvalue"
	"github.com/dmitrijs2005/gownshop/internal/common"
	"github.com/dmitrijs2005/gownshop/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T, repo keyvalue.Repository) *Store {
	t.Helper()
	return NewStore(repo, logging.Nop(), WithClock(func() time.Time { return testNow }))
}

func validToken() string {
	return makeToken(`{"sub":"7","exp":4102444800}`)
}

func expiredToken() string {
	return makeToken(`{"sub":"7","exp":1600000000}`)
}

// failingRepo fails every call with err.
type failingRepo struct {
	err error
}

func (f failingRepo) Get(context.Context, string) (string, bool, error) { return "", false, f.err }
func (f failingRepo) Set(context.Context, string, string) error         { return f.err }
func (f failingRepo) Delete(context.Context, ...string) error           { return f.err }
func (f failingRepo) List(context.Context) (map[string]string, error)   { return nil, f.err }

func TestToken_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, keyvalue.NewMemoryRepository())

	tok := validToken()
	s.SetToken(ctx, tok)
	assert.Equal(t, tok, s.Token(ctx))

	s.SetToken(ctx, "")
	assert.Empty(t, s.Token(ctx))
}

func TestToken_NoExpRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, keyvalue.NewMemoryRepository())

	tok := makeToken(`{"sub":"legacy"}`)
	s.SetToken(ctx, tok)
	assert.Equal(t, tok, s.Token(ctx))
}

func TestToken_Absent(t *testing.T) {
	s := newTestStore(t, keyvalue.NewMemoryRepository())
	assert.Empty(t, s.Token(context.Background()))
}

func TestToken_ExpiredClearsWholeSession(t *testing.T) {
	ctx := context.Background()
	repo := keyvalue.NewMemoryRepository()
	s := newTestStore(t, repo)

	s.SetToken(ctx, expiredToken())
	s.SetIsAdmin(ctx, true)
	s.SetMobileNumber(ctx, "0599123456")
	require.NoError(t, repo.Set(ctx, "unrelated", "stays"))

	assert.Empty(t, s.Token(ctx))
	assert.False(t, s.IsAdmin(ctx))
	assert.Empty(t, s.MobileNumber(ctx))

	left, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"unrelated": "stays"}, left)
}

func TestToken_MalformedClearsWholeSession(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, keyvalue.NewMemoryRepository())

	s.SetToken(ctx, "garbage")
	s.SetIsAdmin(ctx, true)

	assert.Empty(t, s.Token(ctx))
	assert.False(t, s.IsAdmin(ctx))
}

func TestToken_ExpiresAsClockMoves(t *testing.T) {
	ctx := context.Background()
	now := testNow
	s := NewStore(keyvalue.NewMemoryRepository(), logging.Nop(), WithClock(func() time.Time { return now }))

	exp := testNow.Add(time.Hour).Unix()
	tok := makeToken(`{"exp":` + formatInt(exp) + `}`)
	s.SetToken(ctx, tok)

	assert.Equal(t, tok, s.Token(ctx))
	now = testNow.Add(2 * time.Hour)
	assert.Empty(t, s.Token(ctx))
	now = testNow
	assert.Empty(t, s.Token(ctx), "a purged token does not come back")
}

func TestClear_Idempotent(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, keyvalue.NewMemoryRepository())

	s.Clear(ctx)
	s.SetToken(ctx, validToken())
	s.SetIsAdmin(ctx, true)
	s.SetMobileNumber(ctx, "0599")
	s.Clear(ctx)
	s.Clear(ctx)

	assert.Empty(t, s.Token(ctx))
	assert.False(t, s.IsAdmin(ctx))
	assert.Empty(t, s.MobileNumber(ctx))
}

func TestSetIsAdmin_FalseRemovesKey(t *testing.T) {
	ctx := context.Background()
	repo := keyvalue.NewMemoryRepository()
	s := newTestStore(t, repo)

	s.SetIsAdmin(ctx, true)
	v, ok, err := repo.Get(ctx, common.IsAdminKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "true", v)
	assert.True(t, s.IsAdmin(ctx))

	s.SetIsAdmin(ctx, false)
	_, ok, err = repo.Get(ctx, common.IsAdminKey)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.False(t, s.IsAdmin(ctx))
}

func TestIsAdmin_OnlyLiteralTrue(t *testing.T) {
	ctx := context.Background()
	repo := keyvalue.NewMemoryRepository()
	s := newTestStore(t, repo)

	require.NoError(t, repo.Set(ctx, common.IsAdminKey, "yes"))
	assert.False(t, s.IsAdmin(ctx))
}

func TestMobileNumber(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, keyvalue.NewMemoryRepository())

	assert.Empty(t, s.MobileNumber(ctx))
	s.SetMobileNumber(ctx, "0599123456")
	assert.Equal(t, "0599123456", s.MobileNumber(ctx))
	s.ClearMobileNumber(ctx)
	assert.Empty(t, s.MobileNumber(ctx))
}

func TestStorageFailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	s := NewStore(failingRepo{err: errors.New("quota exceeded")}, logger)

	assert.NotPanics(t, func() {
		s.SetToken(ctx, validToken())
		s.SetIsAdmin(ctx, true)
		s.SetMobileNumber(ctx, "0599")
		s.Clear(ctx)
	})
	assert.Empty(t, s.Token(ctx))
	assert.False(t, s.IsAdmin(ctx))
	assert.Empty(t, s.MobileNumber(ctx))

	assert.Contains(t, buf.String(), "quota exceeded")
	assert.Contains(t, buf.String(), "level=WARN")
}

func TestStore_SQLiteBacked(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, keyvalue.NewSQLiteRepository(setupSQLite(t)))

	tok := validToken()
	s.SetToken(ctx, tok)
	s.SetIsAdmin(ctx, true)
	s.SetMobileNumber(ctx, "0599")
	assert.Equal(t, tok, s.Token(ctx))

	s.Clear(ctx)
	assert.Empty(t, s.Token(ctx))
	assert.False(t, s.IsAdmin(ctx))
	assert.Empty(t, s.MobileNumber(ctx))
}

func TestStore_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t, keyvalue.NewMemoryRepository())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			switch i % 4 {
			case 0:
				s.SetToken(ctx, validToken())
			case 1:
				_ = s.Token(ctx)
			case 2:
				s.SetIsAdmin(ctx, i%8 == 2)
			default:
				s.Clear(ctx)
			}
		}(i)
	}
	wg.Wait()
}

func TestEntries_MasksToken(t *testing.T) {
	ctx := context.Background()
	repo := keyvalue.NewMemoryRepository()
	s := newTestStore(t, repo)

	assert.Empty(t, s.Entries(ctx))

	s.SetToken(ctx, validToken())
	s.SetIsAdmin(ctx, true)
	s.SetMobileNumber(ctx, "0599123456")

	assert.Equal(t, map[string]string{
		common.TokenKey:        logging.Redacted,
		common.IsAdminKey:      "true",
		common.MobileNumberKey: "0599123456",
	}, s.Entries(ctx))

	v, _, err := repo.Get(ctx, common.TokenKey)
	require.NoError(t, err)
	assert.Equal(t, validToken(), v, "stored token untouched")
}

func TestEntries_StorageFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	s := NewStore(failingRepo{err: errors.New("disk gone")}, logger)

	assert.Nil(t, s.Entries(context.Background()))
	assert.Contains(t, buf.String(), "session list failed")
}
