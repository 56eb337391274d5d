package services

import (
	"testing"

	"supplier-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAnnouncement(t *testing.T) {
	svc := NewAnnouncementService(newTestDB(t))

	t.Run("RequiresMessage", func(t *testing.T) {
		var invalid *ValidationError
		_, err := svc.Create("   ")
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("TrimsAndDefaultsActive", func(t *testing.T) {
		announcement, err := svc.Create("  Maintenance window on Friday  ")
		require.NoError(t, err)
		assert.Equal(t, "Maintenance window on Friday", announcement.Message)
		assert.True(t, announcement.Active)
		assert.NotZero(t, announcement.ID)
	})
}

func TestListActiveAnnouncements(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnnouncementService(db)

	visible, err := svc.Create("visible")
	require.NoError(t, err)
	hidden, err := svc.Create("hidden")
	require.NoError(t, err)
	require.NoError(t, svc.Update(hidden.ID, map[string]interface{}{"active": false}))

	active, err := svc.ListActive()
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, visible.ID, active[0].ID)
	assert.Equal(t, "visible", active[0].Message)

	all, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, all, 2, "admin list keeps inactive rows")
}

func TestUpdateAnnouncement(t *testing.T) {
	db := newTestDB(t)
	svc := NewAnnouncementService(db)

	announcement, err := svc.Create("original")
	require.NoError(t, err)

	reload := func() models.Announcement {
		var a models.Announcement
		require.NoError(t, db.First(&a, announcement.ID).Error)
		return a
	}

	t.Run("NotFound", func(t *testing.T) {
		require.ErrorIs(t, svc.Update(announcement.ID+999, map[string]interface{}{"active": false}), ErrNotFound)
	})

	t.Run("ActiveOnly", func(t *testing.T) {
		require.NoError(t, svc.Update(announcement.ID, map[string]interface{}{"active": false}))
		got := reload()
		assert.False(t, got.Active)
		assert.Equal(t, "original", got.Message)
	})

	t.Run("MessageOnly", func(t *testing.T) {
		require.NoError(t, svc.Update(announcement.ID, map[string]interface{}{"message": "  rewritten  "}))
		got := reload()
		assert.Equal(t, "rewritten", got.Message)
		assert.False(t, got.Active, "active untouched")
	})

	t.Run("RejectsEmptyMessage", func(t *testing.T) {
		var invalid *ValidationError
		require.ErrorAs(t, svc.Update(announcement.ID, map[string]interface{}{"message": " "}), &invalid)
	})
}

func TestDeleteAnnouncement(t *testing.T) {
	svc := NewAnnouncementService(newTestDB(t))

	announcement, err := svc.Create("short lived")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(announcement.ID))
	require.ErrorIs(t, svc.Delete(announcement.ID), ErrNotFound)
}
