package reporter

// Email formatting constants
const (
	EmailSubjectFormat = "\U0001F4CA BreachSense Daily Scrape Report | %s"

	noNewLinksBodyFormat = "Date: %s\n\n" +
		"✅ No new BreachSense URLs were found today.\n\n" +
		"This is an automated daily status email.\n"
)
