package domain

import "time"

// PostbackConfig is the singleton upstream postback setting: the URL template
// of the revenue tracker every conversion is forwarded to, sampled or not.
// It is stored, not process-global, and read at call time.
type PostbackConfig struct {
	ID        int64
	URL       string
	UpdatedAt time.Time
}
