package inmemorycache_test

import (
	"sync"
	"testing"
	"time"
	"ulascansenturk/home-weather-service/internal/inmemorycache"

	"github.com/stretchr/testify/suite"
)

type screen struct {
	name string
}

type InMemoryCacheTestSuite struct {
	suite.Suite
	cacheProvider *inmemorycache.InMemoryCache[*screen]
	evictedMu     sync.Mutex
	evicted       []string
}

func (s *InMemoryCacheTestSuite) SetupTest() {
	s.evicted = nil
	s.cacheProvider = inmemorycache.NewInMemoryCacheProvider(100*time.Millisecond, func(key string, _ *screen) {
		s.evictedMu.Lock()
		defer s.evictedMu.Unlock()
		s.evicted = append(s.evicted, key)
	})
}

func (s *InMemoryCacheTestSuite) TearDownTest() {
	s.cacheProvider.Stop()
}

func (s *InMemoryCacheTestSuite) evictedKeys() []string {
	s.evictedMu.Lock()
	defer s.evictedMu.Unlock()
	return append([]string(nil), s.evicted...)
}

func (s *InMemoryCacheTestSuite) TestGetNonExistentKey() {
	value, exists := s.cacheProvider.Get("nonexistent")

	s.False(exists)
	s.Nil(value)
}

func (s *InMemoryCacheTestSuite) TestSetAndGet() {
	s.cacheProvider.Set("a", &screen{name: "home"}, 5*time.Minute)

	value, exists := s.cacheProvider.Get("a")
	s.True(exists)
	s.Require().NotNil(value)
	s.Equal("home", value.name)
	s.Equal(1, s.cacheProvider.Len())
}

func (s *InMemoryCacheTestSuite) TestExpirationOnGet() {
	s.cacheProvider.Set("b", &screen{name: "home"}, 20*time.Millisecond)

	_, exists := s.cacheProvider.Get("b")
	s.True(exists)

	time.Sleep(40 * time.Millisecond)

	value, exists := s.cacheProvider.Get("b")
	s.False(exists)
	s.Nil(value)
	s.Contains(s.evictedKeys(), "b")
}

func (s *InMemoryCacheTestSuite) TestAutomaticCleanup() {
	s.cacheProvider.Set("c", &screen{name: "home"}, 50*time.Millisecond)

	s.Eventually(func() bool {
		return len(s.evictedKeys()) == 1
	}, time.Second, 20*time.Millisecond)

	s.Equal([]string{"c"}, s.evictedKeys())
	s.Equal(0, s.cacheProvider.Len())
}

func (s *InMemoryCacheTestSuite) TestDelete() {
	s.cacheProvider.Set("d", &screen{name: "home"}, 5*time.Minute)

	s.True(s.cacheProvider.Delete("d"))
	s.False(s.cacheProvider.Delete("d"))

	_, exists := s.cacheProvider.Get("d")
	s.False(exists)
	s.Equal([]string{"d"}, s.evictedKeys())
}

func (s *InMemoryCacheTestSuite) TestOverwriteEvictsPrevious() {
	s.cacheProvider.Set("e", &screen{name: "first"}, 5*time.Minute)
	s.cacheProvider.Set("e", &screen{name: "second"}, 5*time.Minute)

	value, exists := s.cacheProvider.Get("e")
	s.True(exists)
	s.Equal("second", value.name)
	s.Equal([]string{"e"}, s.evictedKeys())
}

func (s *InMemoryCacheTestSuite) TestStopEvictsRemaining() {
	s.cacheProvider.Set("f", &screen{name: "home"}, 5*time.Minute)
	s.cacheProvider.Set("g", &screen{name: "scan"}, 5*time.Minute)

	s.cacheProvider.Stop()
	s.cacheProvider.Stop()

	s.ElementsMatch([]string{"f", "g"}, s.evictedKeys())
	s.Equal(0, s.cacheProvider.Len())
}

func (s *InMemoryCacheTestSuite) TestConcurrentAccess() {
	iterations := 100

	var wg sync.WaitGroup
	for i := 0; i < iterations; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.cacheProvider.Set("shared", &screen{name: "home"}, 5*time.Minute)
		}()
		go func() {
			defer wg.Done()
			s.cacheProvider.Get("shared")
		}()
	}
	wg.Wait()

	value, exists := s.cacheProvider.Get("shared")
	s.True(exists)
	s.Equal("home", value.name)
}

func TestInMemoryCacheTestSuite(t *testing.T) {
	suite.Run(t, new(InMemoryCacheTestSuite))
}
