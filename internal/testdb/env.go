package testdb

import "os"

const (
	// EnvTestDatabaseURL is checked first for the test database.
	EnvTestDatabaseURL = "TAAS_TEST_DATABASE_URL"
	// EnvDatabaseURL is the fallback, as set by most CI database services.
	EnvDatabaseURL = "DATABASE_URL"
)

// DatabaseURL returns the configured test database URL, or "".
func DatabaseURL() string {
	for _, name := range []string{EnvTestDatabaseURL, EnvDatabaseURL} {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// ShouldSkipDatabaseTest reports whether no test database is configured.
func ShouldSkipDatabaseTest() bool {
	return DatabaseURL() == ""
}

// isCIEnvironment returns true if running in any type of CI environment.
func isCIEnvironment() bool {
	ciVars := []string{
		"CI",
		"GITHUB_ACTIONS",
		"GITLAB_CI",
		"JENKINS_URL",
		"CIRCLECI",
	}

	for _, envVar := range ciVars {
		if os.Getenv(envVar) != "" {
			return true
		}
	}

	return false
}
