package config

// StorageConfig defines where the master snapshot and daily report live
type StorageConfig struct {
	MasterFile string `json:"master_file,omitempty" yaml:"master_file,omitempty" validate:"required"`
	DailyFile  string `json:"daily_file,omitempty" yaml:"daily_file,omitempty" validate:"required"`
}

// NewDefaultStorageConfig creates default storage configuration
func NewDefaultStorageConfig() StorageConfig {
	return StorageConfig{
		MasterFile: DefaultMasterFile,
		DailyFile:  DefaultDailyFile,
	}
}
