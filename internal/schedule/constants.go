package schedule

// Cron field value ranges
const (
	// MinMinute is the minimum minute value (0)
	MinMinute = 0
	// MaxMinute is the maximum minute value (59)
	MaxMinute = 59
	// MinHour is the minimum hour value (0)
	MinHour = 0
	// MaxHour is the maximum hour value (23)
	MaxHour = 23
	// MinDayOfMonth is the minimum day of month value (1)
	MinDayOfMonth = 1
	// MaxDayOfMonth is the maximum day of month value (31)
	MaxDayOfMonth = 31
	// MinMonth is the minimum month value (1)
	MinMonth = 1
	// MaxMonth is the maximum month value (12)
	MaxMonth = 12
	// MinDayOfWeek is the minimum day of week value (0, Sunday)
	MinDayOfWeek = 0
	// MaxDayOfWeek is the maximum day of week value (6, Saturday)
	MaxDayOfWeek = 6
)
