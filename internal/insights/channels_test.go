package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelMix(t *testing.T) {
	sales := []Sale{
		{Channel: "web", Qty: 2, Revenue: 40},
		{Channel: "app", Qty: 1, Revenue: 100},
		{Channel: "web", Qty: 3, Revenue: 20},
	}

	rows := channelMix(sales)

	require.Len(t, rows, 2)
	// revenue descending
	assert.Equal(t, ChannelRow{Channel: "app", Units: 1, Revenue: 100, Orders: 1, AOV: 100}, rows[0])
	assert.Equal(t, ChannelRow{Channel: "web", Units: 5, Revenue: 60, Orders: 2, AOV: 30}, rows[1])
}

func TestChannelMixTiesKeepFirstSeenOrder(t *testing.T) {
	sales := []Sale{
		{Channel: "b", Revenue: 10},
		{Channel: "a", Revenue: 10},
	}

	rows := channelMix(sales)

	require.Len(t, rows, 2)
	assert.Equal(t, "b", rows[0].Channel)
	assert.Equal(t, "a", rows[1].Channel)
}
