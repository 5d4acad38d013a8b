package models

import "time"

// ProcessLog is one reactor control reading recorded during a shift.
type ProcessLog struct {
	ID           int64
	LoggedAt     time.Time
	Operator     string
	TolueneValue float64 // mg/kg
	FeedRate     float64 // kg/h
	Reactor1Temp float64 // °C
	Reactor2Temp float64 // °C
	Reactor1Hz   float64
	Reactor2Hz   float64
}
