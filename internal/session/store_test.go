package session

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"swiftride/internal/models"
	"swiftride/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePersistence struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newFakePersistence() *fakePersistence {
	return &fakePersistence{data: map[string][]byte{}}
}

func (f *fakePersistence) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = []byte("set")
	f.sets++
	return nil
}

func (f *fakePersistence) Get(ctx context.Context, key string, dest interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.data[key]; !ok {
		return assert.AnError
	}
	return assert.AnError // revive path is exercised separately; decode not simulated
}

func (f *fakePersistence) Delete(ctx context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Format: "text"})
	require.NoError(t, err)
	return log
}

func testUser() models.User {
	return models.User{ID: "u1", Name: "Ayesha", Email: "ayesha@example.com", City: "Lahore"}
}

func TestLoginCreatesSession(t *testing.T) {
	store := NewStore(newFakePersistence(), testLogger(t), time.Hour)

	sess, err := store.Login(context.Background(), "token-1", testUser())
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)

	got, ok := store.Get(context.Background(), sess.ID)
	require.True(t, ok)
	assert.Equal(t, "token-1", got.Token)
	assert.Equal(t, "Ayesha", got.User.Name)
}

func TestLoginReplacesSessionForSameToken(t *testing.T) {
	store := NewStore(nil, testLogger(t), time.Hour)

	first, err := store.Login(context.Background(), "token-1", testUser())
	require.NoError(t, err)
	second, err := store.Login(context.Background(), "token-1", testUser())
	require.NoError(t, err)

	_, ok := store.Get(context.Background(), first.ID)
	assert.False(t, ok, "older session for the same token must be replaced")
	_, ok = store.Get(context.Background(), second.ID)
	assert.True(t, ok)
}

func TestUpdateUserMergesAndPersists(t *testing.T) {
	persist := newFakePersistence()
	store := NewStore(persist, testLogger(t), time.Hour)

	sess, err := store.Login(context.Background(), "token-1", testUser())
	require.NoError(t, err)
	setsAfterLogin := persist.sets

	city := "Karachi"
	updated, err := store.UpdateUser(context.Background(), sess.ID, models.UserUpdate{City: &city})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "Karachi", updated.City)
	assert.Equal(t, "Ayesha", updated.Name, "untouched fields survive the merge")
	assert.Greater(t, persist.sets, setsAfterLogin, "merge must re-persist")

	got, _ := store.Get(context.Background(), sess.ID)
	assert.Equal(t, "Karachi", got.User.City)
}

func TestUpdateUserWithoutSessionIsNoop(t *testing.T) {
	persist := newFakePersistence()
	store := NewStore(persist, testLogger(t), time.Hour)

	name := "Ghost"
	updated, err := store.UpdateUser(context.Background(), "nope", models.UserUpdate{Name: &name})

	require.NoError(t, err)
	assert.Nil(t, updated)
	assert.Zero(t, persist.sets, "a partial update must never create a session")
}

func TestLogoutClearsEverything(t *testing.T) {
	persist := newFakePersistence()
	store := NewStore(persist, testLogger(t), time.Hour)

	sess, err := store.Login(context.Background(), "token-1", testUser())
	require.NoError(t, err)

	store.Logout(context.Background(), sess.ID)

	_, ok := store.Get(context.Background(), sess.ID)
	assert.False(t, ok)
	persist.mu.Lock()
	assert.Empty(t, persist.data, "persisted copy must be deleted")
	persist.mu.Unlock()

	// Logout is idempotent.
	store.Logout(context.Background(), sess.ID)
}

func TestPurgeTokenDropsSession(t *testing.T) {
	store := NewStore(nil, testLogger(t), time.Hour)

	sess, err := store.Login(context.Background(), "rejected-token", testUser())
	require.NoError(t, err)

	store.PurgeToken("rejected-token")

	_, ok := store.Get(context.Background(), sess.ID)
	assert.False(t, ok)

	// Unknown tokens are ignored.
	store.PurgeToken("never-seen")
}

func TestTokenTTLFallsBackForOpaqueTokens(t *testing.T) {
	assert.Equal(t, time.Hour, tokenTTL("not-a-jwt", time.Hour))
	assert.Equal(t, time.Hour, tokenTTL(strings.Repeat("x", 40), time.Hour))
}

func TestConcurrentMutationIsSafe(t *testing.T) {
	store := NewStore(nil, testLogger(t), time.Hour)
	sess, err := store.Login(context.Background(), "token-1", testUser())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			city := "City"
			if n%3 == 0 {
				store.Get(context.Background(), sess.ID)
			} else {
				store.UpdateUser(context.Background(), sess.ID, models.UserUpdate{City: &city})
			}
		}(i)
	}
	wg.Wait()

	got, ok := store.Get(context.Background(), sess.ID)
	require.True(t, ok)
	assert.Equal(t, "City", got.User.City)
}
