package dto

import "time"

type AppointmentListDTO struct {
	ID               uint      `json:"id"`
	StartTime        time.Time `json:"start_time"`
	EndTime          time.Time `json:"end_time"`
	Status           string    `json:"status"`
	ClientName       string    `json:"client_name"`
	ProfessionalName string    `json:"professional_name"`
	RoomName         string    `json:"room_name,omitempty"`
	IsOnline         bool      `json:"is_online"`
	MeetingRoom      string    `json:"meeting_room,omitempty"`
}
