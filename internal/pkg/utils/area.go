package utils

import (
	"aesthetics-service/internal/pkg/constvars"
	"strings"
)

// areaMapping maps survey and directory concern labels (lower case) to the
// internal area tags.
var areaMapping = map[string]string{
	"forehead":          constvars.AreaForehead,
	"forehead lines":    constvars.AreaForehead,
	"frown lines":       constvars.AreaForehead,
	"glabella":          constvars.AreaForehead,
	"glabellar lines":   constvars.AreaForehead,
	"eyebrows":          constvars.AreaForehead,
	"brow":              constvars.AreaForehead,
	"brows":             constvars.AreaForehead,
	"temples":           constvars.AreaForehead,
	"eyes":              constvars.AreaEyes,
	"under eyes":        constvars.AreaEyes,
	"under-eye":         constvars.AreaEyes,
	"crow's feet":       constvars.AreaEyes,
	"crows feet":        constvars.AreaEyes,
	"eyelids":           constvars.AreaEyes,
	"dark circles":      constvars.AreaEyes,
	"tear troughs":      constvars.AreaEyes,
	"cheeks":            constvars.AreaCheeks,
	"cheekbones":        constvars.AreaCheeks,
	"mid-face":          constvars.AreaCheeks,
	"midface":           constvars.AreaCheeks,
	"nasolabial folds":  constvars.AreaCheeks,
	"smile lines":       constvars.AreaCheeks,
	"nose":              constvars.AreaNose,
	"nasal bridge":      constvars.AreaNose,
	"lips":              constvars.AreaLips,
	"lip lines":         constvars.AreaLips,
	"mouth":             constvars.AreaLips,
	"marionette lines":  constvars.AreaLips,
	"perioral":          constvars.AreaLips,
	"jawline":           constvars.AreaJawline,
	"jaw":               constvars.AreaJawline,
	"chin":              constvars.AreaJawline,
	"jowls":             constvars.AreaJawline,
	"neck":              constvars.AreaJawline,
	"double chin":       constvars.AreaJawline,
	"ears":              constvars.AreaEars,
	"earlobes":          constvars.AreaEars,
	"skin":              constvars.AreaSkin,
	"skin texture":      constvars.AreaSkin,
	"skin quality":      constvars.AreaSkin,
	"pigmentation":      constvars.AreaSkin,
	"acne scars":        constvars.AreaSkin,
	"pores":             constvars.AreaSkin,
	"redness":           constvars.AreaSkin,
	"sun damage":        constvars.AreaSkin,
	"fine lines":        constvars.AreaSkin,
	"overall skin tone": constvars.AreaSkin,
}

var areaTags = []string{
	constvars.AreaForehead,
	constvars.AreaEyes,
	constvars.AreaCheeks,
	constvars.AreaNose,
	constvars.AreaLips,
	constvars.AreaJawline,
	constvars.AreaEars,
	constvars.AreaSkin,
	constvars.AreaOther,
}

// GetInternalAreaName maps a free text concern label to an area tag. Labels
// that are not in the table resolve to "other".
func GetInternalAreaName(label string) string {
	key := strings.ToLower(strings.Join(strings.Fields(label), " "))
	if area, ok := areaMapping[key]; ok {
		return area
	}
	return constvars.AreaOther
}

// MapAreaNames maps labels to area tags, keeping first-seen order and
// dropping duplicates.
func MapAreaNames(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	areas := make([]string, 0, len(labels))
	for _, label := range labels {
		if strings.TrimSpace(label) == "" {
			continue
		}
		area := GetInternalAreaName(label)
		if seen[area] {
			continue
		}
		seen[area] = true
		areas = append(areas, area)
	}
	return areas
}

func IsAreaTag(tag string) bool {
	for _, area := range areaTags {
		if area == tag {
			return true
		}
	}
	return false
}

func AreaTags() []string {
	tags := make([]string, len(areaTags))
	copy(tags, areaTags)
	return tags
}
