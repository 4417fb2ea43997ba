package admin

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calloway/showroom/internal/store"
)

func newPipeline(t *testing.T) (*Pipeline, *store.Store, *time.Time) {
	t.Helper()
	s := store.New(t.TempDir())
	s.Load()
	now := time.UnixMilli(1_700_000_000_000)
	p := New(s, func() time.Time { return now })
	return p, s, &now
}

func validDraft() Draft {
	return Draft{Title: "Chair", Price: "100", Category: "Sofa", Image: "data:image/png;base64,xx"}
}

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
		field Field
	}{
		{"missing title", Draft{Price: "1", Category: "Bed", Image: "x"}, FieldTitle},
		{"whitespace title", Draft{Title: "  ", Price: "1", Category: "Bed", Image: "x"}, FieldTitle},
		{"missing price", Draft{Title: "a", Category: "Bed", Image: "x"}, FieldPrice},
		{"whitespace price", Draft{Title: "a", Price: " ", Category: "Bed", Image: "x"}, FieldPrice},
		{"missing image", Draft{Title: "a", Price: "1", Category: "Bed"}, FieldImage},
		{"unknown category", Draft{Title: "a", Price: "1", Category: "Chairs", Image: "x"}, FieldCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDraft(tt.draft)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}

	assert.NoError(t, ValidateDraft(validDraft()))
}

func TestCreatePrependsAndAssignsIDFromClock(t *testing.T) {
	p, s, now := newPipeline(t)

	first, err := p.Create(validDraft())
	require.NoError(t, err)
	assert.Equal(t, now.UnixMilli(), first.ID)
	assert.Equal(t, now.UnixMilli(), first.Date)

	*now = now.Add(time.Minute)
	second, err := p.Create(Draft{Title: "Desk", Price: "250", Category: "Table", Image: "x"})
	require.NoError(t, err)

	list := s.Load()
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "newest-created comes first")
	assert.Equal(t, first.ID, list[1].ID)
}

func TestCreateSameMillisecondKeepsIDsUnique(t *testing.T) {
	p, s, _ := newPipeline(t)

	a, err := p.Create(validDraft())
	require.NoError(t, err)
	b, err := p.Create(validDraft())
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Len(t, s.Load(), 2)
}

func TestCreateInvalidDraftLeavesStoreUntouched(t *testing.T) {
	p, s, _ := newPipeline(t)

	_, err := p.Create(Draft{Price: "1", Category: "Bed", Image: "x"})
	require.Error(t, err)
	assert.Empty(t, s.Load())
}

func TestUpdatePreservesIDAndDate(t *testing.T) {
	p, s, now := newPipeline(t)

	created, err := p.Create(validDraft())
	require.NoError(t, err)

	*now = now.Add(time.Hour)
	p.StartEdit(created.ID)
	updated, err := p.Update(created.ID, Draft{Title: "Armchair", Price: "150", Category: "Bed", Image: "y"})
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.Date, updated.Date, "date is not updated on edit")
	assert.Equal(t, "Armchair", updated.Title)
	assert.Equal(t, "150", updated.Price)
	assert.Equal(t, "Bed", updated.Category)
	assert.Equal(t, "y", updated.Image)

	assert.Equal(t, ModeCreate, p.Mode(), "successful save-edit returns to Create mode")

	list := s.Load()
	require.Len(t, list, 1)
	assert.Equal(t, updated, list[0])
}

func TestUpdateMissingProductFailsAndResetsMode(t *testing.T) {
	p, s, _ := newPipeline(t)

	created, err := p.Create(validDraft())
	require.NoError(t, err)

	p.StartEdit(12345)
	_, err = p.Update(12345, validDraft())
	require.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, ModeCreate, p.Mode())

	list := s.Load()
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID, "failed update leaves the list unchanged")
}

func TestDeleteRemovesAtMostOne(t *testing.T) {
	p, s, now := newPipeline(t)

	a, err := p.Create(validDraft())
	require.NoError(t, err)
	*now = now.Add(time.Second)
	b, err := p.Create(validDraft())
	require.NoError(t, err)

	removed, err := p.Delete(a.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	list := s.Load()
	require.Len(t, list, 1)
	assert.Equal(t, b.ID, list[0].ID)
}

func TestDeleteUnknownIDIsNoOp(t *testing.T) {
	p, s, _ := newPipeline(t)

	created, err := p.Create(validDraft())
	require.NoError(t, err)

	removed, err := p.Delete(999)
	require.NoError(t, err)
	assert.False(t, removed)

	list := s.Load()
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)
}

func TestDeleteProductUnderEditResetsMode(t *testing.T) {
	p, _, _ := newPipeline(t)

	created, err := p.Create(validDraft())
	require.NoError(t, err)

	p.StartEdit(created.ID)
	assert.Equal(t, ModeEdit, p.Mode())
	assert.Equal(t, created.ID, p.EditingID())

	removed, err := p.Delete(created.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, ModeCreate, p.Mode())
	assert.Zero(t, p.EditingID())
}

func TestDeleteOtherProductKeepsEditMode(t *testing.T) {
	p, _, now := newPipeline(t)

	a, err := p.Create(validDraft())
	require.NoError(t, err)
	*now = now.Add(time.Second)
	b, err := p.Create(validDraft())
	require.NoError(t, err)

	p.StartEdit(a.ID)
	_, err = p.Delete(b.ID)
	require.NoError(t, err)
	assert.Equal(t, ModeEdit, p.Mode())
	assert.Equal(t, a.ID, p.EditingID())
}

func TestCancelReturnsToCreateMode(t *testing.T) {
	p, _, _ := newPipeline(t)
	p.StartEdit(42)
	p.Cancel()
	assert.Equal(t, ModeCreate, p.Mode())
	assert.Zero(t, p.EditingID())
}
