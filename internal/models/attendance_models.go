package models

import "strconv"

// SessionStatusActive is shown instead of a duration while a session is open.
const SessionStatusActive = "Active"

// AttendanceSession is one visit by a member. CheckoutTime is nil while the session is open.
type AttendanceSession struct {
	ID           int64   `json:"id" db:"id"`
	MemberID     int64   `json:"member_id" db:"member_id"`
	CheckinTime  string  `json:"checkin_time" db:"checkin_time"`
	CheckoutTime *string `json:"checkout_time" db:"checkout_time"`
}

// IsOpen reports whether the member has not checked out yet.
func (s AttendanceSession) IsOpen() bool {
	return s.CheckoutTime == nil
}

// ElapsedMinutes returns the closed session length in whole minutes.
// ok is false while the session is open or when the stored times cannot be parsed.
func (s AttendanceSession) ElapsedMinutes() (minutes int, ok bool) {
	if s.IsOpen() {
		return 0, false
	}
	m, err := SessionMinutes(s.CheckinTime, *s.CheckoutTime)
	if err != nil {
		return 0, false
	}
	return m, true
}

// AttendanceRecord is a session joined with its member's name, as listed at the desk.
type AttendanceRecord struct {
	AttendanceSession
	MemberName      string `json:"member_name" db:"member_name"`
	DurationMinutes *int   `json:"duration_minutes" db:"-"`
	Duration        string `json:"duration" db:"-"` // "Active" or "<n> min"
}

// Resolve fills the derived duration fields from the stored times.
func (r *AttendanceRecord) Resolve() {
	minutes, ok := r.ElapsedMinutes()
	if !ok {
		r.DurationMinutes = nil
		if r.IsOpen() {
			r.Duration = SessionStatusActive
		} else {
			r.Duration = ""
		}
		return
	}
	r.DurationMinutes = &minutes
	r.Duration = strconv.Itoa(minutes) + " min"
}
