package constvars

// Internal area tags. The set is closed.
const (
	AreaForehead = "forehead"
	AreaEyes     = "eyes"
	AreaCheeks   = "cheeks"
	AreaNose     = "nose"
	AreaLips     = "lips"
	AreaJawline  = "jawline"
	AreaEars     = "ears"
	AreaSkin     = "skin"
	AreaOther    = "other"
)

// Finding severities, mildest first.
const (
	SeveritySubtle   = "subtle"
	SeverityMild     = "mild"
	SeverityModerate = "moderate"
	SeveritySevere   = "severe"
)
