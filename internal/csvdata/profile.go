package csvdata

// Semantic field names shared by all source profiles.
const (
	FieldKeyword     = "keyword"
	FieldURL         = "url"
	FieldClicks      = "clicks"
	FieldImpressions = "impressions"
	FieldCTR         = "ctr"
	FieldPosition    = "position"
	FieldVolume      = "volume"
	FieldDifficulty  = "difficulty"
	FieldCPC         = "cpc"
	FieldTraffic     = "traffic"
)

// FieldSpec maps a semantic field to the column headers that may carry it.
// Aliases are tried in declaration order; the first one present in the
// header row wins, so localized labels go before the English fallback.
type FieldSpec struct {
	Name    string
	Aliases []string
}

// Profile describes one tabular export format: which field holds the
// natural key and how column headers map to semantic fields.
type Profile struct {
	Name   string
	Source string // metric fact source tag, e.g. "gsc"
	Key    string // semantic field holding the natural key
	Fields []FieldSpec
}

// GSCQueries matches Google Search Console query exports (FR and EN headers).
var GSCQueries = Profile{
	Name:   "gsc-queries",
	Source: "gsc",
	Key:    FieldKeyword,
	Fields: []FieldSpec{
		{Name: FieldKeyword, Aliases: []string{"Requêtes les plus fréquentes", "Top queries", "Requête", "Query"}},
		{Name: FieldClicks, Aliases: []string{"Clics", "Clicks"}},
		{Name: FieldImpressions, Aliases: []string{"Impressions"}},
		{Name: FieldCTR, Aliases: []string{"CTR"}},
		{Name: FieldPosition, Aliases: []string{"Position"}},
	},
}

// GSCPages matches Google Search Console page exports.
var GSCPages = Profile{
	Name:   "gsc-pages",
	Source: "gsc",
	Key:    FieldURL,
	Fields: []FieldSpec{
		{Name: FieldURL, Aliases: []string{"Pages les plus populaires", "Top pages", "Page"}},
		{Name: FieldClicks, Aliases: []string{"Clics", "Clicks"}},
		{Name: FieldImpressions, Aliases: []string{"Impressions"}},
		{Name: FieldCTR, Aliases: []string{"CTR"}},
		{Name: FieldPosition, Aliases: []string{"Position"}},
	},
}

// SEMrush matches SEMrush Organic Research exports.
var SEMrush = Profile{
	Name:   "semrush",
	Source: "semrush",
	Key:    FieldKeyword,
	Fields: []FieldSpec{
		{Name: FieldKeyword, Aliases: []string{"Keyword"}},
		{Name: FieldPosition, Aliases: []string{"Position"}},
		{Name: FieldVolume, Aliases: []string{"Search Volume"}},
		{Name: FieldDifficulty, Aliases: []string{"Keyword Difficulty"}},
		{Name: FieldCPC, Aliases: []string{"CPC", "CPC (USD)"}},
		{Name: FieldTraffic, Aliases: []string{"Traffic", "Traffic (%)"}},
	},
}
