package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultScheduleEntries_StampsAuditFields(t *testing.T) {
	now := time.Now()
	week := defaultScheduleEntries("D0001", now)

	assert.Len(t, week, 7)
	for _, entry := range week {
		assert.Equal(t, "D0001", entry.DoctorId)
		assert.Equal(t, now, entry.CreatedAt)
		assert.Equal(t, now, entry.UpdatedAt)
		assert.False(t, entry.CreatedAt.IsZero())
	}
}
