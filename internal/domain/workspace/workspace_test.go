package workspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProject(t *testing.T) {
	p, err := NewProject(1, "  Research  ", "notes and papers")
	require.NoError(t, err)
	assert.Equal(t, "Research", p.Name)
	assert.Equal(t, p.CreatedAt, p.LastEditTime)

	_, err = NewProject(0, "Research", "")
	assert.Error(t, err)

	_, err = NewProject(1, "   ", "")
	assert.Error(t, err)
}

func TestProject_Rename(t *testing.T) {
	p, err := NewProject(1, "Research", "")
	require.NoError(t, err)

	before := p.LastEditTime
	require.NoError(t, p.Rename("Archive", "closed out"))
	assert.Equal(t, "Archive", p.Name)
	assert.False(t, p.LastEditTime.Before(before))

	assert.Error(t, p.Rename("  ", ""))
}

func TestNewPage(t *testing.T) {
	pg, err := NewPage(4, "Reading list", "# Papers")
	require.NoError(t, err)
	assert.Equal(t, uint(4), pg.ProjectID)

	_, err = NewPage(0, "Reading list", "")
	assert.Error(t, err)

	_, err = NewPage(4, "", "")
	assert.Error(t, err)
}

func TestPage_Edit(t *testing.T) {
	pg, err := NewPage(4, "Reading list", "# Papers")
	require.NoError(t, err)

	require.NoError(t, pg.Edit("Reading list", "# Papers\n\n- one more"))
	assert.Contains(t, pg.Content, "one more")

	assert.Error(t, pg.Edit("   ", "body"))
}
