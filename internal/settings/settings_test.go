package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletplus-dev/walletplus/internal/store/filestore"
)

func TestLoad_DefaultsWhenNeverSaved(t *testing.T) {
	st, err := filestore.Open(t.TempDir())
	require.NoError(t, err)
	defer st.Close()

	p, err := Load(st)
	require.NoError(t, err)
	assert.Equal(t, "darkElegance", p.Theme)
	assert.Empty(t, p.Currency)
}

func TestSaveAndLoad(t *testing.T) {
	st, err := filestore.Open(t.TempDir())
	require.NoError(t, err)
	defer st.Close()

	require.NoError(t, Save(st, Preferences{Theme: "light", Currency: "EUR"}))
	p, err := Load(st)
	require.NoError(t, err)
	assert.Equal(t, "light", p.Theme)
	assert.Equal(t, "EUR", p.Currency)
}
