package config

const (
	// Sitemap defaults
	DefaultSitemapURL         = "https://www.breachsense.com/sitemap.xml"
	DefaultPathPrefix         = "https://www.breachsense.com/breaches/"
	DefaultSitemapUserAgent   = "Mozilla/5.0 (compatible; BreachSenseDailyScraper/1.0)"
	DefaultSitemapTimeoutSecs = 30

	// Storage defaults
	DefaultMasterFile = "breachsense_master.json"
	DefaultDailyFile  = "breachsense_daily.json"

	// Notification defaults
	DefaultSMTPPort         = 587
	DefaultSMTPTimeoutSecs  = 30
	DefaultMaxLinksPerEmail = 40

	// Scheduler defaults
	DefaultCycleHours    = 24
	DefaultRetryAttempts = 2
	DefaultSQLiteDBPath  = "database/run_history.db"

	// Log defaults
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "console"
	DefaultLogFile       = ""
	DefaultMaxLogSizeMB  = 100
	DefaultMaxLogBackups = 3

	// Mode defaults
	ModeOnetime   = "onetime"
	ModeAutomated = "automated"
)
