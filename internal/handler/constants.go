package handler

import "time"

// TimeFormat is the standard time format for API timestamps (RFC3339)
const TimeFormat = time.RFC3339

// DateFormat is the format for calendar dates (event ranges, publish dates)
const DateFormat = "2006-01-02"
