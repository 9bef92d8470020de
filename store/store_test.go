package store

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreDispatchReturnsAndInstallsState(t *testing.T) {
	s := New()

	next := s.Dispatch(AddToCart{Product: product("1", 10)})
	require.Len(t, next.Cart, 1)
	assert.Equal(t, next.Cart, s.State().Cart)
}

func TestStoreConcurrentDispatches(t *testing.T) {
	s := New()
	p := product("1", 10)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Dispatch(AddToCart{Product: p})
		}()
	}
	wg.Wait()

	state := s.State()
	require.Len(t, state.Cart, 1)
	assert.Equal(t, 50, state.Cart[0].Quantity)
}

func TestStoreSubscribeTicksOnDispatch(t *testing.T) {
	s := New()
	ch, cancel := s.Subscribe()
	defer cancel()

	s.Dispatch(SetLoading{Loading: true})

	select {
	case <-ch:
	default:
		t.Fatal("expected a tick after dispatch")
	}
}

func TestStoreSubscribeCancelStopsTicks(t *testing.T) {
	s := New()
	ch, cancel := s.Subscribe()
	cancel()

	s.Dispatch(SetLoading{Loading: true})

	select {
	case <-ch:
		t.Fatal("cancelled subscriber should not receive ticks")
	default:
	}
}
