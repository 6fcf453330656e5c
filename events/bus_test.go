package events

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublishInvokesInSubscriptionOrder(t *testing.T) {
	bus := New()
	var got []int
	bus.Subscribe("test", func() { got = append(got, 1) })
	bus.Subscribe("test", func() { got = append(got, 2) })
	bus.Subscribe("test", func() { got = append(got, 3) })

	bus.Publish("test")

	require.Equal(t, []int{1, 2, 3}, got)
}

func TestPublishIsSynchronous(t *testing.T) {
	bus := New()
	fired := false
	bus.Subscribe("test", func() { fired = true })

	bus.Publish("test")

	require.True(t, fired, "listener must run before Publish returns")
}

func TestPanickingListenerDoesNotStopOthers(t *testing.T) {
	bus := New()
	var got []int
	bus.Subscribe("test", func() { got = append(got, 1) })
	bus.Subscribe("test", func() { panic("boom") })
	bus.Subscribe("test", func() { got = append(got, 3) })

	require.NotPanics(t, func() { bus.Publish("test") })
	require.Equal(t, []int{1, 3}, got)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := New()
	count := 0
	unsubscribe := bus.Subscribe("test", func() { count++ })

	bus.Publish("test")
	unsubscribe()
	bus.Publish("test")

	require.Equal(t, 1, count)
}

func TestEventsAreIndependent(t *testing.T) {
	bus := New()
	count := 0
	bus.Subscribe(CartChanged, func() { count++ })

	bus.Publish(SessionChanged)

	require.Zero(t, count)
}
