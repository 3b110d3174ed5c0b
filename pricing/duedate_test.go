package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDueDatePolicies(t *testing.T) {
	invoiceDate := date(2025, time.May, 1)
	eventDate := date(2025, time.June, 14)
	customDate := date(2025, time.May, 20)

	tests := []struct {
		name      string
		policy    string
		eventDate *time.Time
		custom    *time.Time
		want      time.Time
	}{
		{"upon receipt", PolicyUponReceipt, &eventDate, nil, invoiceDate},
		{"day of event", PolicyDayOfEvent, &eventDate, nil, eventDate},
		{"seven days before", PolicySevenDaysPrior, &eventDate, nil, date(2025, time.June, 7)},
		{"custom", PolicyCustom, &eventDate, &customDate, customDate},
		{"day of event without event date", PolicyDayOfEvent, nil, nil, date(2025, time.May, 8)},
		{"seven days before without event date", PolicySevenDaysPrior, nil, nil, date(2025, time.May, 8)},
		{"custom without stored date", PolicyCustom, &eventDate, nil, date(2025, time.May, 8)},
		{"unknown policy", "whenever", &eventDate, nil, date(2025, time.May, 8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DueDate(tt.policy, invoiceDate, tt.eventDate, tt.custom)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidPolicy(t *testing.T) {
	assert.True(t, ValidPolicy(PolicyUponReceipt))
	assert.True(t, ValidPolicy(PolicyDayOfEvent))
	assert.True(t, ValidPolicy(PolicySevenDaysPrior))
	assert.True(t, ValidPolicy(PolicyCustom))
	assert.False(t, ValidPolicy(""))
	assert.False(t, ValidPolicy("net_30"))
}
