package predicates

import (
	"sort"
	"strconv"
	"strings"
)

// mediaType is a parsed media type or media range, with the quality and
// parameter count needed for specificity sorting.
type mediaType struct {
	mainType   string
	subType    string
	quality    float64
	paramCount int
}

func (m mediaType) wildcards() int {
	n := 0
	if m.mainType == "*" {
		n++
	}

	if m.subType == "*" {
		n++
	}

	return n
}

// compatible tells if two media types denote an overlapping set of
// concrete types, with wildcards allowed on both sides.
func (m mediaType) compatible(o mediaType) bool {
	mainOk := m.mainType == "*" || o.mainType == "*" || m.mainType == o.mainType
	subOk := m.subType == "*" || o.subType == "*" || m.subType == o.subType
	return mainOk && subOk
}

// includes tells if the media range m includes the concrete media type o.
func (m mediaType) includes(o mediaType) bool {
	if m.mainType == "*" {
		return true
	}

	if m.mainType != o.mainType {
		return false
	}

	return m.subType == "*" || m.subType == o.subType
}

func (m mediaType) String() string {
	return m.mainType + "/" + m.subType
}

var anyMediaType = mediaType{mainType: "*", subType: "*", quality: 1}

// parseMediaType parses a single media type or media range, like
// "text/html;q=0.8;level=1". A bare "*" is normalized to "*/*".
func parseMediaType(s string) (mediaType, bool) {
	fields := strings.Split(s, ";")
	full := strings.TrimSpace(fields[0])
	if full == "*" {
		full = "*/*"
	}

	mainType, subType, ok := strings.Cut(full, "/")
	if !ok || mainType == "" || subType == "" {
		return mediaType{}, false
	}

	if mainType == "*" && subType != "*" {
		return mediaType{}, false
	}

	m := mediaType{
		mainType: strings.ToLower(mainType),
		subType:  strings.ToLower(subType),
		quality:  1,
	}

	for _, f := range fields[1:] {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}

		name, value, _ := strings.Cut(f, "=")
		if strings.EqualFold(strings.TrimSpace(name), "q") {
			q, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil || q < 0 || q > 1 {
				return mediaType{}, false
			}

			m.quality = q
			continue
		}

		m.paramCount++
	}

	return m, true
}

// parseAccept parses the values of an Accept header into media ranges
// sorted by specificity and quality. An absent or empty header means
// accept anything. Malformed entries are skipped.
func parseAccept(values []string) []mediaType {
	var types []mediaType
	for _, v := range values {
		for _, field := range strings.Split(v, ",") {
			field = strings.TrimSpace(field)
			if field == "" {
				continue
			}

			if m, ok := parseMediaType(field); ok {
				types = append(types, m)
			}
		}
	}

	if len(types) == 0 {
		return []mediaType{anyMediaType}
	}

	sortBySpecificityAndQuality(types)
	return types
}

// sortBySpecificityAndQuality orders media ranges so that more specific
// ones come first: fewer wildcards, then higher quality, then more
// parameters. The order of equal entries is preserved.
func sortBySpecificityAndQuality(types []mediaType) {
	sort.SliceStable(types, func(i, j int) bool {
		a, b := types[i], types[j]
		if a.wildcards() != b.wildcards() {
			return a.wildcards() < b.wildcards()
		}

		if a.quality != b.quality {
			return a.quality > b.quality
		}

		return a.paramCount > b.paramCount
	})
}
