package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPolicy = Policy{MinDaysAhead: 1, MaxConsecutiveDays: 3, MaxDaysAhead: 30}

func d(base time.Time, days int) time.Time {
	return base.AddDate(0, 0, days)
}

func TestPolicyValidate(t *testing.T) {
	today := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		r       Range
		wantErr string
	}{
		{
			name:    "start today fails advance notice",
			r:       Range{Start: today, End: d(today, 1)},
			wantErr: "Start date has to be at least 1 day(s) ahead of arrival",
		},
		{
			name:    "start in the past fails advance notice",
			r:       Range{Start: d(today, -1), End: d(today, 1)},
			wantErr: "Start date has to be at least 1 day(s) ahead of arrival",
		},
		{
			name: "tomorrow for one night passes",
			r:    Range{Start: d(today, 1), End: d(today, 2)},
		},
		{
			name:    "four counted days exceed max stay",
			r:       Range{Start: d(today, 1), End: d(today, 4)},
			wantErr: "You can't book more than 3 day(s) at a time",
		},
		{
			name: "three counted days at max stay pass",
			r:    Range{Start: d(today, 1), End: d(today, 3)},
		},
		{
			name:    "too far ahead fails booking horizon",
			r:       Range{Start: d(today, 40), End: d(today, 42)},
			wantErr: "Start date has to be no more than 30 day(s) ahead of arrival",
		},
		{
			name: "just inside the horizon passes",
			r:    Range{Start: d(today, 29), End: d(today, 30)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := testPolicy.Validate(tt.r, today)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantErr, ve.Reason)
		})
	}
}

func TestPolicyValidate_FirstFailureWins(t *testing.T) {
	today := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)

	// Violates both the advance-notice and the max-stay rules; the
	// advance-notice message must win.
	err := testPolicy.Validate(Range{Start: today, End: d(today, 10)}, today)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Start date has to be at least 1 day(s) ahead of arrival", ve.Reason)
}

func TestPolicyValidate_EqualStartAndEnd(t *testing.T) {
	// Equal start/end counts as 0 days, which the length rule does not
	// reject on its own. Range validity is enforced downstream: a stay
	// always derives at least its start day as occupied.
	today := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)
	start := d(today, 1)
	assert.NoError(t, testPolicy.Validate(Range{Start: start, End: start}, today))
}
