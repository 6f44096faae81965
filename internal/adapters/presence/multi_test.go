package presence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portsmocks "playtrack/internal/ports/mocks"
)

func TestMulti_ObservedUnionsSources(t *testing.T) {
	first := portsmocks.NewMockPresenceSource(t)
	second := portsmocks.NewMockPresenceSource(t)
	first.EXPECT().Observed(mock.Anything, "p1").
		Return(map[string]struct{}{"Minecraft": {}}, nil)
	second.EXPECT().Observed(mock.Anything, "p1").
		Return(map[string]struct{}{"Minecraft": {}, "Zelda": {}}, nil)

	multi := NewMulti(first, second)
	observed, err := multi.Observed(context.Background(), "p1")

	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"Minecraft": {}, "Zelda": {}}, observed)
}

func TestMulti_ObservedReturnsSourceError(t *testing.T) {
	first := portsmocks.NewMockPresenceSource(t)
	second := portsmocks.NewMockPresenceSource(t)
	first.EXPECT().Observed(mock.Anything, "p1").Return(nil, assert.AnError)

	multi := NewMulti(first, second)
	_, err := multi.Observed(context.Background(), "p1")

	assert.ErrorIs(t, err, assert.AnError)
	second.AssertNotCalled(t, "Observed")
}

func TestMulti_ObservedNoSources(t *testing.T) {
	multi := NewMulti()

	observed, err := multi.Observed(context.Background(), "p1")

	require.NoError(t, err)
	assert.Empty(t, observed)
}
