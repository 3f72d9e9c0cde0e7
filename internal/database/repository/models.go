package repository

import "time"

// Activity is one journal row: something that happened to a dialog.
type Activity struct {
	ID        string
	At        time.Time
	Namespace string
	Key       string
	Action    string
	Detail    string
}
