package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	c, err := LoadCatalog()
	require.NoError(t, err)

	assert.Len(t, c.PopularStocks, 10)
	assert.Len(t, c.MajorIndices, 5)

	for _, inst := range c.PopularStocks {
		assert.NotEmpty(t, inst.Symbol)
		assert.NotEmpty(t, inst.Exchange)
		assert.NotEmpty(t, inst.Name)
		assert.NotEmpty(t, inst.Sector)
	}
}

func TestInstrument_Key(t *testing.T) {
	inst := Instrument{Symbol: "TCS", Exchange: "NSE"}
	assert.Equal(t, "NSE_TCS", inst.Key())
}

func TestKeys(t *testing.T) {
	c, err := LoadCatalog()
	require.NoError(t, err)

	keys := Keys(c.MajorIndices)
	assert.Equal(t, []string{"NSE_NIFTY", "NSE_BANKNIFTY", "NSE_FINNIFTY", "BSE_SENSEX", "BSE_BANKEX"}, keys)
}

func TestCatalog_Search(t *testing.T) {
	c, err := LoadCatalog()
	require.NoError(t, err)

	t.Run("matches symbol", func(t *testing.T) {
		results := c.Search("TCS", "")
		require.Len(t, results, 1)
		assert.Equal(t, "TCS", results[0].Symbol)
	})

	t.Run("matches name case-insensitively", func(t *testing.T) {
		results := c.Search("reliance", "")
		require.Len(t, results, 1)
		assert.Equal(t, "RELIANCE", results[0].Symbol)
	})

	t.Run("short query matches nothing", func(t *testing.T) {
		assert.Empty(t, c.Search("T", ""))
		assert.Empty(t, c.Search("", ""))
	})

	t.Run("sector filter restricts results", func(t *testing.T) {
		results := c.Search("BANK", "Banking")
		require.NotEmpty(t, results)
		for _, inst := range results {
			assert.Equal(t, "Banking", inst.Sector)
		}
		// BANKNIFTY-style names outside the sector stay excluded.
		assert.Empty(t, c.Search("AIRTEL", "Banking"))
	})
}

func TestCatalog_Sectors(t *testing.T) {
	c, err := LoadCatalog()
	require.NoError(t, err)

	sectors := c.Sectors()
	assert.Equal(t, []string{"Banking", "Energy", "FMCG", "IT", "Telecom"}, sectors)
}

func TestCatalog_FilterBySector(t *testing.T) {
	c, err := LoadCatalog()
	require.NoError(t, err)

	banks := c.FilterBySector("Banking")
	require.Len(t, banks, 4)
	for _, inst := range banks {
		assert.Equal(t, "Banking", inst.Sector)
	}

	assert.Empty(t, c.FilterBySector("Aerospace"))
}
