package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/47farhad/WT-PROJ-HMS-sub000/models"
)

func TestNormalizeWeekSchedule_BackfillsAllSeven(t *testing.T) {
	week := NormalizeWeekSchedule("D0001", nil)
	assert.Len(t, week, 7)

	for i, day := range weekDays {
		assert.Equal(t, day, week[i].Day)
		assert.Equal(t, "D0001", week[i].DoctorId)
		assert.Equal(t, defaultStartTime, week[i].StartTime)
		assert.Equal(t, defaultEndTime, week[i].EndTime)
		assert.Equal(t, defaultSlotDuration, week[i].SlotDuration)
	}

	// weekends default to not working
	assert.False(t, week[0].IsWorking)
	assert.False(t, week[6].IsWorking)
	for i := 1; i <= 5; i++ {
		assert.True(t, week[i].IsWorking)
	}
}

func TestNormalizeWeekSchedule_KeepsStoredEntries(t *testing.T) {
	stored := []models.WorkScheduleEntry{
		{DoctorId: "D0001", Day: "Saturday", IsWorking: true, StartTime: "10:00", EndTime: "14:00", SlotDuration: 15},
		{DoctorId: "D0001", Day: "Monday", IsWorking: false, StartTime: "09:00", EndTime: "17:00", SlotDuration: 30},
	}
	week := NormalizeWeekSchedule("D0001", stored)
	assert.Len(t, week, 7)

	assert.False(t, week[1].IsWorking) // Monday kept as stored
	assert.True(t, week[6].IsWorking)  // Saturday kept as stored
	assert.Equal(t, "10:00", week[6].StartTime)
	assert.Equal(t, 15, week[6].SlotDuration)

	// untouched days get the defaults
	assert.True(t, week[2].IsWorking)
	assert.Equal(t, defaultStartTime, week[2].StartTime)
}

func TestDecodeCachedWeek_RoundTrip(t *testing.T) {
	week := NormalizeWeekSchedule("D0001", nil)

	// the cache serializes the wrapping map to json and hands back a
	// generic document on read
	raw, err := json.Marshal(map[string]interface{}{"entries": week})
	assert.NoError(t, err)
	cached := make(map[string]interface{})
	assert.NoError(t, json.Unmarshal(raw, &cached))

	got, ok := decodeCachedWeek(cached)
	assert.True(t, ok)
	assert.Equal(t, week, got)
}

func TestDecodeCachedWeek_RejectsBadPayloads(t *testing.T) {
	_, ok := decodeCachedWeek(map[string]interface{}{})
	assert.False(t, ok)

	_, ok = decodeCachedWeek(map[string]interface{}{"entries": "not a week"})
	assert.False(t, ok)

	// a stale partial week is not trusted
	short := []interface{}{map[string]interface{}{"day": "Monday"}}
	_, ok = decodeCachedWeek(map[string]interface{}{"entries": short})
	assert.False(t, ok)
}

func TestValidateScheduleEntry(t *testing.T) {
	valid := models.WorkScheduleEntry{Day: "Monday", StartTime: "09:00", EndTime: "17:00", SlotDuration: 30}
	assert.NoError(t, validateScheduleEntry(valid))

	badDay := valid
	badDay.Day = "Moonday"
	assert.EqualError(t, validateScheduleEntry(badDay), INVALID_DAY_NAME)

	badClock := valid
	badClock.StartTime = "9am"
	assert.EqualError(t, validateScheduleEntry(badClock), INVALID_TIME_FORMAT)

	badDuration := valid
	badDuration.SlotDuration = 0
	assert.Error(t, validateScheduleEntry(badDuration))
}
