package models

// WeeklyAvailability is a coach-level recurring availability window.
// DayOfWeek is stored as delivered by upstream planners, which have used both
// the 0-6 (Sunday=0) and 1-7 (Sunday=7) conventions; it is normalized with
// mod 7 at resolution time.
type WeeklyAvailability struct {
	CoachUsername string  `bson:"coachUsername" json:"coachUsername"`
	DayOfWeek     int     `bson:"dayOfWeek" json:"dayOfWeek"`
	StartTime     string  `bson:"startTime" json:"startTime"` // "HH:MM"
	EndTime       string  `bson:"endTime" json:"endTime"`     // "HH:MM"
	Price         float64 `bson:"price" json:"price"`
	IsActive      bool    `bson:"isActive" json:"isActive"`
}
