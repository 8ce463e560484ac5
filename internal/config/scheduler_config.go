package config

// SchedulerConfig defines configuration for the automated mode cycle loop.
// SQLiteDBPath is only used in automated mode; its presence is checked there
// during validation.
type SchedulerConfig struct {
	CycleHours    int    `json:"cycle_hours,omitempty" yaml:"cycle_hours,omitempty" validate:"omitempty,min=1"`
	RetryAttempts int    `json:"retry_attempts,omitempty" yaml:"retry_attempts,omitempty" validate:"omitempty,min=0"`
	SQLiteDBPath  string `json:"sqlite_db_path,omitempty" yaml:"sqlite_db_path,omitempty"`
}

// NewDefaultSchedulerConfig creates default scheduler configuration
func NewDefaultSchedulerConfig() SchedulerConfig {
	return SchedulerConfig{
		CycleHours:    DefaultCycleHours,
		RetryAttempts: DefaultRetryAttempts,
		SQLiteDBPath:  DefaultSQLiteDBPath,
	}
}
