package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sekolahku/sekolahku/internal/pkg/apperrors"
)

func TestParseRecordDateDefaultsToToday(t *testing.T) {
	date, err := parseRecordDate("")
	require.NoError(t, err)

	assert.Equal(t, todayDate(), date)
}

func TestParseRecordDateAcceptsPastDates(t *testing.T) {
	date, err := parseRecordDate("2024-09-01")
	require.NoError(t, err)

	assert.Equal(t, 2024, date.Year())
	assert.Equal(t, time.September, date.Month())
	assert.Equal(t, 1, date.Day())
}

func TestParseRecordDateAcceptsToday(t *testing.T) {
	today := todayDate().Format("2006-01-02")

	date, err := parseRecordDate(today)
	require.NoError(t, err)
	assert.False(t, date.After(todayDate()))
}

func TestParseRecordDateRejectsFutureDates(t *testing.T) {
	tomorrow := todayDate().AddDate(0, 0, 1).Format("2006-01-02")

	_, err := parseRecordDate(tomorrow)
	assert.ErrorIs(t, err, apperrors.ErrDateInFuture)
}

func TestParseRecordDateRejectsGarbage(t *testing.T) {
	_, err := parseRecordDate("not-a-date")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestValidateDateOrder(t *testing.T) {
	start := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	after := start.AddDate(0, 3, 0)
	sameDay := start
	before := start.AddDate(0, 0, -1)

	tests := []struct {
		name    string
		end     *time.Time
		wantErr error
	}{
		{name: "open ended participation", end: nil, wantErr: nil},
		{name: "end after start", end: &after, wantErr: nil},
		{name: "end equal to start", end: &sameDay, wantErr: apperrors.ErrEndBeforeStart},
		{name: "end before start", end: &before, wantErr: apperrors.ErrEndBeforeStart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDateOrder(start, tt.end)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoundToTenth(t *testing.T) {
	assert.InDelta(t, 66.7, roundToTenth(66.666), 0.001)
	assert.InDelta(t, 0.0, roundToTenth(0), 0.001)
	assert.InDelta(t, 100.0, roundToTenth(99.99), 0.001)
}
