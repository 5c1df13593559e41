package model

import "time"

// Agendamento is the singleton cron-like configuration of the monthly billing
// run. Dia stays within [1,28] so the trigger is valid in every month.
type Agendamento struct {
	ID        uint `gorm:"primaryKey"`
	Dia       int  `gorm:"not null;default:1"`
	Hora      int  `gorm:"not null;default:2"`
	Minuto    int  `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

// AgendamentoPadrao is the schedule used until one is configured: day 1 at
// 02:00.
func AgendamentoPadrao() Agendamento {
	return Agendamento{Dia: 1, Hora: 2, Minuto: 0}
}
