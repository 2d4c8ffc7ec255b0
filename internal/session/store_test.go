package session

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/franciscosanchezn/gin-pizza-designer/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// StoreTestSuite runs the same behaviour checks against every Store backend
type StoreTestSuite struct {
	suite.Suite
	newStore func() Store
	store    Store
}

func (suite *StoreTestSuite) SetupTest() {
	suite.store = suite.newStore()
}

func TestMemoryStoreTestSuite(t *testing.T) {
	suite.Run(t, &StoreTestSuite{
		newStore: func() Store { return NewMemoryStore(time.Hour) },
	})
}

func TestRedisStoreTestSuite(t *testing.T) {
	mr := miniredis.RunT(t)
	suite.Run(t, &StoreTestSuite{
		newStore: func() Store {
			mr.FlushAll()
			return NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Hour)
		},
	})
}

func (suite *StoreTestSuite) TestUnknownSessionHasEmptyOrder() {
	order, err := suite.store.Order(context.Background(), "unknown")
	suite.Require().NoError(err)
	suite.NotNil(order.Designs)
	suite.Empty(order.Designs)
}

func (suite *StoreTestSuite) TestAddDesignAccumulatesInOrder() {
	ctx := context.Background()

	first := models.Pizza{ID: 1, Name: "Margherita", Ingredients: []models.Ingredient{{ID: "MOZZ", Name: "Mozzarella", Type: models.Cheese}}}
	second := models.Pizza{ID: 2, Name: "Marinara"}
	suite.Require().NoError(suite.store.AddDesign(ctx, "s1", first))
	suite.Require().NoError(suite.store.AddDesign(ctx, "s1", second))

	order, err := suite.store.Order(ctx, "s1")
	suite.Require().NoError(err)
	suite.Require().Len(order.Designs, 2)
	suite.Equal(uint(1), order.Designs[0].ID)
	suite.Equal("Margherita", order.Designs[0].Name)
	suite.Equal([]string{"MOZZ"}, order.Designs[0].IngredientIDs())
	suite.Equal(models.Cheese, order.Designs[0].Ingredients[0].Type)
	suite.Equal("Marinara", order.Designs[1].Name)
}

func (suite *StoreTestSuite) TestSessionsAreIsolated() {
	ctx := context.Background()
	suite.Require().NoError(suite.store.AddDesign(ctx, "s1", models.Pizza{ID: 1, Name: "Margherita"}))

	other, err := suite.store.Order(ctx, "s2")
	suite.Require().NoError(err)
	suite.Empty(other.Designs)
}

func (suite *StoreTestSuite) TestClear() {
	ctx := context.Background()
	suite.Require().NoError(suite.store.AddDesign(ctx, "s1", models.Pizza{ID: 1, Name: "Margherita"}))
	suite.Require().NoError(suite.store.Clear(ctx, "s1"))

	order, err := suite.store.Order(ctx, "s1")
	suite.Require().NoError(err)
	suite.Empty(order.Designs)

	// Clearing an empty session is not an error
	suite.NoError(suite.store.Clear(ctx, "never-used"))
}

func (suite *StoreTestSuite) TestEmptySessionIDIsRejected() {
	ctx := context.Background()

	_, err := suite.store.Order(ctx, "")
	suite.ErrorIs(err, ErrInvalidSessionID)
	suite.ErrorIs(suite.store.AddDesign(ctx, "", models.Pizza{}), ErrInvalidSessionID)
	suite.ErrorIs(suite.store.Clear(ctx, ""), ErrInvalidSessionID)
}

func (suite *StoreTestSuite) TestConcurrentAddDesignLosesNothing() {
	ctx := context.Background()
	const writers = 20

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			suite.NoError(suite.store.AddDesign(ctx, "busy", models.Pizza{ID: id, Name: "Concurrent"}))
		}(uint(i + 1))
	}
	wg.Wait()

	order, err := suite.store.Order(ctx, "busy")
	suite.Require().NoError(err)
	suite.Len(order.Designs, writers)
}

func (suite *StoreTestSuite) TestClose() {
	suite.NoError(suite.store.Close())
}

func TestMemoryStoreExpiresEntries(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	require.NoError(t, store.AddDesign(ctx, "s1", models.Pizza{ID: 1, Name: "Margherita"}))
	assert.Equal(t, 1, store.Len())

	now = now.Add(2 * time.Minute)
	order, err := store.Order(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, order.Designs)
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStoreSweepsAbandonedSessions(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	for i := 0; i < 1000; i++ {
		require.NoError(t, store.AddDesign(ctx, fmt.Sprintf("abandoned-%d", i), models.Pizza{ID: uint(i + 1)}))
	}
	assert.Len(t, store.entries, 1000)

	// None of the abandoned sessions is read again; a write elsewhere clears them
	now = now.Add(time.Hour)
	require.NoError(t, store.AddDesign(ctx, "fresh", models.Pizza{ID: 2000}))
	assert.Len(t, store.entries, 1)

	_, kept := store.entries["fresh"]
	assert.True(t, kept)
}

func TestMemoryStoreSweepKeepsLiveSessions(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	ctx := context.Background()
	require.NoError(t, store.AddDesign(ctx, "old", models.Pizza{ID: 1}))
	now = now.Add(90 * time.Second)
	require.NoError(t, store.AddDesign(ctx, "recent", models.Pizza{ID: 2}))
	now = now.Add(30 * time.Second)
	require.NoError(t, store.AddDesign(ctx, "newest", models.Pizza{ID: 3}))

	order, err := store.Order(ctx, "recent")
	require.NoError(t, err)
	assert.Len(t, order.Designs, 1)
	assert.NotContains(t, store.entries, "old")
}

func TestRedisStoreSetsTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	store := NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}), 30*time.Minute)
	defer store.Close()

	require.NoError(t, store.AddDesign(context.Background(), "s1", models.Pizza{ID: 1, Name: "Margherita"}))
	assert.Equal(t, 30*time.Minute, mr.TTL(designsKey("s1")))

	mr.FastForward(31 * time.Minute)
	order, err := store.Order(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, order.Designs)
}

func TestNewStore(t *testing.T) {
	ctx := context.Background()

	store, err := NewStore(ctx, Options{Driver: "memory", TTL: time.Minute})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	mr := miniredis.RunT(t)
	store, err = NewStore(ctx, Options{Driver: "redis", RedisAddr: mr.Addr(), TTL: time.Minute})
	require.NoError(t, err)
	assert.IsType(t, &RedisStore{}, store)

	_, err = NewStore(ctx, Options{Driver: "memcached"})
	assert.Error(t, err)
}

func TestSetLogLevel(t *testing.T) {
	previous := log.GetLevel()
	t.Cleanup(func() { log.SetLevel(previous) })

	SetLogLevel(logrus.WarnLevel)
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
}
