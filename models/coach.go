package models

import "time"

// Coach represents a coach's public marketplace profile.
type Coach struct {
	ID          string    `bson:"id" json:"id"`
	Username    string    `bson:"username" json:"username"`
	DisplayName string    `bson:"displayName" json:"displayName"`
	Email       string    `bson:"email" json:"email"`
	Bio         string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Games       []string  `bson:"games,omitempty" json:"games,omitempty"`
	Rating      float64   `bson:"rating,omitempty" json:"rating,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// CoachService is a bookable coaching offer published by a coach.
type CoachService struct {
	ID                 string                `bson:"id" json:"id"`
	CoachUsername      string                `bson:"coachUsername" json:"coachUsername"`
	Title              string                `bson:"title" json:"title"`
	Game               string                `bson:"game,omitempty" json:"game,omitempty"`
	Description        string                `bson:"description,omitempty" json:"description,omitempty"`
	ServiceSlots       []ExplicitServiceSlot `bson:"serviceSlots,omitempty" json:"serviceSlots,omitempty"`
	WeeklyServiceSlots []WeeklyServiceSlot   `bson:"weeklyServiceSlots,omitempty" json:"weeklyServiceSlots,omitempty"`
}

// CoachProfile is the aggregate a viewer loads before booking: the coach,
// their services (with planned slots) and their weekly availability windows.
type CoachProfile struct {
	Coach        Coach                `json:"coach"`
	Services     []CoachService       `json:"services"`
	Availability []WeeklyAvailability `json:"availability"`
}
