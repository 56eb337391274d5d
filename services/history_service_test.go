package services

import (
	"fmt"
	"testing"
	"time"

	"supplier-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryList(t *testing.T) {
	db := newTestDB(t)
	svc := NewHistoryService(db)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		entry := models.DeliveryHistory{
			Name:        fmt.Sprintf("Supplier %d", i),
			Product:     "Widgets",
			AddedAt:     base,
			DeliveredAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(&entry).Error)
	}

	entries, err := svc.List()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Supplier 2", entries[0].Name, "newest delivery first")
	assert.Equal(t, "Supplier 0", entries[2].Name)
}

func TestHistoryListCap(t *testing.T) {
	db := newTestDB(t)
	svc := NewHistoryService(db)

	now := time.Now()
	for i := 0; i < historyListLimit+20; i++ {
		entry := models.DeliveryHistory{
			Name:        fmt.Sprintf("Supplier %d", i),
			Product:     "Widgets",
			AddedAt:     now,
			DeliveredAt: now,
		}
		require.NoError(t, db.Create(&entry).Error)
	}

	entries, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, entries, historyListLimit)
}

func TestHistoryDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewHistoryService(db)

	entry := models.DeliveryHistory{Name: "Acme", Product: "Widgets", AddedAt: time.Now(), DeliveredAt: time.Now()}
	require.NoError(t, db.Create(&entry).Error)

	require.NoError(t, svc.Delete(entry.ID))
	require.ErrorIs(t, svc.Delete(entry.ID), ErrNotFound)
}
