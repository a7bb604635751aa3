package tui

import "time"

// SchemeTickMsg drives the periodic OS color-scheme re-detection
type SchemeTickMsg time.Time
