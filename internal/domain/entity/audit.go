package entity

import "time"

type AuditLogEntry struct {
	ID       string
	IP       string
	InitTime time.Time
	Size     int
	CompTime time.Time
	Desc     string
}
