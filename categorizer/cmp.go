package categorizer

// CodeEntry is a single entry of the CMP coding scheme.
type CodeEntry struct {
	Code string
	Name string
}

// DefaultCodeEntries returns the top-level categories of the Comparative
// Manifesto Project coding scheme.
func DefaultCodeEntries() []CodeEntry {
	return []CodeEntry{
		{Code: "000", Name: "No meaningful category applies"},
		{Code: "101", Name: "Foreign Special Relationships: Positive"},
		{Code: "102", Name: "Foreign Special Relationships: Negative"},
		{Code: "103", Name: "Anti-Imperialism"},
		{Code: "104", Name: "Military: Positive"},
		{Code: "105", Name: "Military: Negative"},
		{Code: "106", Name: "Peace"},
		{Code: "107", Name: "Internationalism: Positive"},
		{Code: "108", Name: "European Community/Union: Positive"},
		{Code: "109", Name: "Internationalism: Negative"},
		{Code: "110", Name: "European Community/Union: Negative"},
		{Code: "201", Name: "Freedom and Human Rights"},
		{Code: "202", Name: "Democracy"},
		{Code: "203", Name: "Constitutionalism: Positive"},
		{Code: "204", Name: "Constitutionalism: Negative"},
		{Code: "301", Name: "Decentralization"},
		{Code: "302", Name: "Centralisation"},
		{Code: "303", Name: "Governmental and Administrative Efficiency"},
		{Code: "304", Name: "Political Corruption"},
		{Code: "305", Name: "Political Authority"},
		{Code: "401", Name: "Free Market Economy"},
		{Code: "402", Name: "Incentives: Positive"},
		{Code: "403", Name: "Market Regulation"},
		{Code: "404", Name: "Economic Planning"},
		{Code: "405", Name: "Corporatism/Mixed Economy"},
		{Code: "406", Name: "Protectionism: Positive"},
		{Code: "407", Name: "Protectionism: Negative"},
		{Code: "408", Name: "Economic Goals"},
		{Code: "409", Name: "Keynesian Demand Management"},
		{Code: "410", Name: "Economic Growth: Positive"},
		{Code: "411", Name: "Technology and Infrastructure: Positive"},
		{Code: "412", Name: "Controlled Economy"},
		{Code: "413", Name: "Nationalisation"},
		{Code: "414", Name: "Economic Orthodoxy"},
		{Code: "415", Name: "Marxist Analysis"},
		{Code: "416", Name: "Anti-Growth Economy: Positive"},
		{Code: "501", Name: "Environmental Protection"},
		{Code: "502", Name: "Culture: Positive"},
		{Code: "503", Name: "Equality: Positive"},
		{Code: "504", Name: "Welfare State Expansion"},
		{Code: "505", Name: "Welfare State Limitation"},
		{Code: "506", Name: "Education Expansion"},
		{Code: "507", Name: "Education Limitation"},
		{Code: "601", Name: "National Way of Life: Positive"},
		{Code: "602", Name: "National Way of Life: Negative"},
		{Code: "603", Name: "Traditional Morality: Positive"},
		{Code: "604", Name: "Traditional Morality: Negative"},
		{Code: "605", Name: "Law and Order: Positive"},
		{Code: "606", Name: "Civic Mindedness: Positive"},
		{Code: "607", Name: "Multiculturalism: Positive"},
		{Code: "608", Name: "Multiculturalism: Negative"},
		{Code: "701", Name: "Labour Groups: Positive"},
		{Code: "702", Name: "Labour Groups: Negative"},
		{Code: "703", Name: "Agriculture and Farmers: Positive"},
		{Code: "704", Name: "Middle Class and Professional Groups"},
		{Code: "705", Name: "Underprivileged Minority Groups"},
		{Code: "706", Name: "Non-economic Demographic Groups"},
	}
}

// DefaultCodeNames returns DefaultCodeEntries keyed by code.
func DefaultCodeNames() map[string]string {
	entries := DefaultCodeEntries()
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		out[e.Code] = e.Name
	}
	return out
}
