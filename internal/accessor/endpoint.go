package accessor

// Endpoint identifies one remote read operation.
type Endpoint struct {
	Name    string // command name, also used in logs
	Path    string // path appended to the server URL
	RuleKey string // auth rule consulted before prompting

	// CheckCredentialsFirst skips the rule lookup entirely when credentials
	// are already held. Only the stats endpoint does this; the metadata
	// endpoint always consults its rule. The rule helper returns no fields
	// once credentials exist, so both end up without a second prompt.
	CheckCredentialsFirst bool
}

var (
	// MetaEndpoint returns server metadata.
	MetaEndpoint = Endpoint{
		Name:    "get",
		Path:    "/api",
		RuleKey: "server",
	}

	// StatsEndpoint returns geometry statistics for the server's data.
	StatsEndpoint = Endpoint{
		Name:                  "stats",
		Path:                  "/api/data/stats",
		RuleKey:               "stats.get",
		CheckCredentialsFirst: true,
	}
)
