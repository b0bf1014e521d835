package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionKind_Valid(t *testing.T) {
	for _, k := range []ActionKind{ActionGet, ActionCreate, ActionUpdate, ActionDelete, ActionReview, ActionUpload} {
		assert.True(t, k.Valid(), string(k))
	}

	assert.False(t, ActionKind("PATCH").Valid())
	assert.False(t, ActionKind("").Valid())
	assert.False(t, ActionKind("get").Valid(), "vocabulary is case sensitive")
}

func TestResourceKind_Valid(t *testing.T) {
	for _, k := range []ResourceKind{KindProject, KindPage, KindEquation, KindSnippet, KindCanvas, KindRecipe, KindTranslation} {
		assert.True(t, k.Valid(), string(k))
	}

	assert.False(t, ResourceKind("file").Valid(), "files are not a loggable kind")
	assert.False(t, ResourceKind("todo").Valid())
	assert.False(t, ResourceKind("").Valid())
}

func TestNewAccessRequest(t *testing.T) {
	t.Run("stamps the entry", func(t *testing.T) {
		sessionID := uint(7)
		entry, err := NewAccessRequest(&sessionID, 42, KindPage, true, ActionUpdate)
		require.NoError(t, err)

		assert.Equal(t, &sessionID, entry.SessionID)
		assert.Equal(t, uint(42), entry.ResourceID)
		assert.True(t, entry.AccessGranted)
		assert.False(t, entry.AccessTime.IsZero())
	})

	t.Run("allows null actor for invalid-session denials", func(t *testing.T) {
		entry, err := NewAccessRequest(nil, 42, KindProject, false, ActionDelete)
		require.NoError(t, err)

		assert.Nil(t, entry.SessionID)
		assert.False(t, entry.AccessGranted)
	})

	t.Run("rejects unknown resource kind", func(t *testing.T) {
		entry, err := NewAccessRequest(nil, 42, ResourceKind("widget"), true, ActionGet)
		assert.Error(t, err)
		assert.Nil(t, entry)
	})

	t.Run("rejects unknown action", func(t *testing.T) {
		entry, err := NewAccessRequest(nil, 42, KindPage, true, ActionKind("TOUCH"))
		assert.Error(t, err)
		assert.Nil(t, entry)
	})
}
