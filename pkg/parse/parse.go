// Package parse classifies media filenames into structured metadata.
// Classification is heuristic: ordered pattern tables first, then noise-token
// cleanup of whatever substring was selected as the title candidate.
package parse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// MediaType is the detected classification of a file.
type MediaType string

const (
	TypeMovie   MediaType = "movie"
	TypeTVShow  MediaType = "tv_show"
	TypeUnknown MediaType = "unknown"
)

// ParsedMedia is the result of parsing a single filename. Absent numeric
// fields are nil. Confidence is clamped to [0, 100].
type ParsedMedia struct {
	DetectedType MediaType
	DetectedName string
	CleanedName  string
	Year         *int
	Season       *int
	Episode      *int
	EpisodeEnd   *int
	IsSeasonPack bool
	Confidence   int
}

type episodePattern struct {
	re         *regexp.Regexp
	confidence int
	multi      bool
}

var (
	extensionRegex = regexp.MustCompile(`\.[A-Za-z0-9]{2,5}$`)
	separatorRegex = regexp.MustCompile(`[._]`)
	spaceRegex     = regexp.MustCompile(`\s+`)

	specialEpisodeRegex = regexp.MustCompile(`(?i)\bs00\s?e(\d{1,3})\b`)
	specialMarkerRegex  = regexp.MustCompile(`(?i)\b(?:special|ova|episode 0)\b`)
	trailingNumberRegex = regexp.MustCompile(`(\d{1,3})\s*$`)

	// ordered most-specific first; the selected pattern's match start also
	// bounds the title candidate
	episodePatterns = []episodePattern{
		{regexp.MustCompile(`(?i)\bs(\d{1,2})\s?e(\d{1,3})\s?e(\d{1,3})\b`), 50, true},
		{regexp.MustCompile(`(?i)\bs(\d{1,2})\s?e(\d{1,3})-e?(\d{1,3})\b`), 50, true},
		{regexp.MustCompile(`(?i)\bs(\d{1,2})\s?(?:ep|e)\s?(\d{1,3})\b`), 50, false},
		{regexp.MustCompile(`(?i)\b(\d{1,2})x(\d{2,3})(?:-(\d{2,3}))?\b`), 45, true},
		{regexp.MustCompile(`(?i)\bseason\s?(\d{1,2})\s?episode\s?(\d{1,3})\b`), 40, false},
	}

	completeSeasonRegex = regexp.MustCompile(`(?i)\bcomplete\s?season\s?(\d{1,2})?\b`)
	seasonNumberRegex   = regexp.MustCompile(`(?i)\bseason\s?(\d{1,2})\b`)
	seasonWordRegex     = regexp.MustCompile(`(?i)\bseason\s(one|two|three|four|five|six|seven|eight|nine|ten)\b`)
	bareSeasonRegex     = regexp.MustCompile(`(?i)\bs(\d{1,2})\b`)

	parenYearRegex   = regexp.MustCompile(`\((19\d{2}|20\d{2})\)`)
	bracketYearRegex = regexp.MustCompile(`\[(19\d{2}|20\d{2})\]`)
	bareYearRegex    = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)

	groupRegex = regexp.MustCompile(`[(\[][^)\]]*[)\]]`)

	noiseRegex = regexp.MustCompile(`(?i)\b(?:` + strings.Join(noiseTokens, `|`) + `)\b`)
	// audio channel layouts survive separator normalization as split digits
	channelRegex = regexp.MustCompile(`\b[257]\s1\b`)

	titleCaser = cases.Title(language.English, cases.NoLower)
)

var noiseTokens = []string{
	// resolution
	`480p`, `576p`, `720p`, `1080p`, `1440p`, `2160p`, `4k`, `8k`, `uhd`, `hdr`, `hdr10`, `dv`, `sdr`,
	// source
	`web[\s-]?dl`, `webrip`, `web`, `blu[\s-]?ray`, `bdrip`, `brrip`, `dvdrip`, `dvd`, `hdtv`, `hdrip`,
	`hdcam`, `telesync`, `screener`, `remux`, `proper`, `repack`, `extended`, `unrated`,
	`remastered`, `internal`, `limited`,
	// codec
	`x264`, `x265`, `h264`, `h265`, `h\s264`, `h\s265`, `avc`, `hevc`, `xvid`, `divx`, `av1`, `10bit`, `8bit`, `hi10p`,
	// audio
	`aac`, `aac2`, `ac3`, `eac3`, `dd5`, `ddp`, `ddp5`, `dts`, `dts[\s-]?hd`, `truehd`, `atmos`, `flac`, `mp3`, `opus`, `2ch`, `6ch`,
	// language
	`english`, `hindi`, `french`, `german`, `spanish`, `italian`, `japanese`, `korean`, `chinese`,
	`russian`, `portuguese`, `dutch`, `polish`, `swedish`, `tamil`, `telugu`, `malayalam`, `kannada`,
	`dual\saudio`, `multi`, `dubbed`, `subbed`, `esub`, `esubs`, `msub`, `msubs`,
	// release groups and distribution labels
	`yify`, `yts`, `rarbg`, `ettv`, `eztv`, `evo`, `galaxyrg`, `sparks`, `demand`, `hdhub4u`, `tamilrockers`,
	`amzn`, `nf`, `hulu`, `dsnp`, `atvp`, `hmax`, `max`, `pcok`, `stan`, `ms`,
}

// genericFolders are parent directory names that carry no title information.
var genericFolders = map[string]struct{}{
	"downloads": {}, "download": {}, "media": {}, "movies": {}, "movie": {},
	"tv": {}, "tv shows": {}, "tvshows": {}, "shows": {}, "series": {},
	"videos": {}, "video": {}, "films": {}, "incoming": {}, "complete": {},
	"completed": {}, "unsorted": {}, "new": {}, "torrents": {}, "seeding": {},
}

// Parse classifies a single filename. The parent folder name is used as a
// title fallback when the filename itself yields nothing usable. Parse is
// total: it never fails and always returns a well-formed result.
func Parse(filename, parentFolder string) ParsedMedia {
	result := ParsedMedia{DetectedType: TypeUnknown}

	name := normalize(filename)

	candidate, matched := detectSpecial(name, &result)
	if !matched {
		candidate, matched = detectEpisode(name, &result)
	}
	if !matched {
		candidate, matched = detectSeasonPack(name, &result)
	}
	if !matched {
		candidate, _ = detectYear(name, &result)
	}

	result.DetectedName = strings.TrimSpace(collapseSeparators(candidate))
	result.CleanedName = cleanupName(candidate)

	if result.CleanedName == "" {
		folder := strings.ToLower(strings.TrimSpace(parentFolder))
		if _, generic := genericFolders[folder]; parentFolder != "" && !generic {
			result.CleanedName = cleanupName(normalize(parentFolder))
			result.DetectedName = strings.TrimSpace(collapseSeparators(normalize(parentFolder)))
		} else {
			result.CleanedName = cleanupName(name)
			result.DetectedName = strings.TrimSpace(collapseSeparators(name))
			result.Confidence -= 10
		}
	}

	result.Confidence = clamp(result.Confidence, 0, 100)
	return result
}

// normalize strips the extension, maps '.' and '_' separators to spaces, and
// compatibility-decomposes the result. Hyphens survive so that episode range
// markers like S01E01-03 stay intact; cleanupName drops them later.
func normalize(filename string) string {
	name := extensionRegex.ReplaceAllString(filename, "")
	name = separatorRegex.ReplaceAllString(name, " ")
	name = norm.NFKD.String(name)
	name = spaceRegex.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}

func detectSpecial(name string, result *ParsedMedia) (string, bool) {
	if m := specialEpisodeRegex.FindStringSubmatchIndex(name); m != nil {
		result.DetectedType = TypeTVShow
		result.Season = intPtr(0)
		result.Episode = atoiPtr(name[m[2]:m[3]])
		result.Confidence += 30
		return name[:m[0]], true
	}

	if m := specialMarkerRegex.FindStringIndex(name); m != nil {
		result.DetectedType = TypeTVShow
		result.Season = intPtr(0)
		if t := trailingNumberRegex.FindStringSubmatch(name); t != nil {
			result.Episode = atoiPtr(t[1])
		}
		result.Confidence += 30
		return name[:m[0]], true
	}

	return "", false
}

func detectEpisode(name string, result *ParsedMedia) (string, bool) {
	for _, p := range episodePatterns {
		m := p.re.FindStringSubmatchIndex(name)
		if m == nil {
			continue
		}

		result.DetectedType = TypeTVShow
		result.Season = atoiPtr(name[m[2]:m[3]])
		result.Episode = atoiPtr(name[m[4]:m[5]])
		if p.multi && m[6] >= 0 {
			result.EpisodeEnd = atoiPtr(name[m[6]:m[7]])
		}
		result.Confidence += p.confidence
		return name[:m[0]], true
	}

	return "", false
}

func detectSeasonPack(name string, result *ParsedMedia) (string, bool) {
	if m := completeSeasonRegex.FindStringSubmatchIndex(name); m != nil {
		result.DetectedType = TypeTVShow
		result.IsSeasonPack = true
		if m[2] >= 0 {
			result.Season = atoiPtr(name[m[2]:m[3]])
		}
		result.Confidence += 20
		return name[:m[0]] + " " + name[m[1]:], true
	}

	if m := seasonNumberRegex.FindStringSubmatchIndex(name); m != nil {
		result.DetectedType = TypeTVShow
		result.IsSeasonPack = true
		result.Season = atoiPtr(name[m[2]:m[3]])
		result.Confidence += 20
		return name[:m[0]] + " " + name[m[1]:], true
	}

	if m := seasonWordRegex.FindStringSubmatchIndex(name); m != nil {
		result.DetectedType = TypeTVShow
		result.IsSeasonPack = true
		result.Season = intPtr(seasonWords[strings.ToLower(name[m[2]:m[3]])])
		result.Confidence += 20
		return name[:m[0]] + " " + name[m[1]:], true
	}

	// bare S## only counts when no episode marker follows; RE2 has no
	// lookahead so inspect the suffix by hand
	if m := bareSeasonRegex.FindStringSubmatchIndex(name); m != nil {
		rest := strings.TrimLeft(name[m[1]:], " ")
		if !strings.HasPrefix(strings.ToLower(rest), "e") || len(rest) < 2 || !isDigit(rest[1]) {
			result.DetectedType = TypeTVShow
			result.IsSeasonPack = true
			result.Season = atoiPtr(name[m[2]:m[3]])
			result.Confidence += 20
			return name[:m[0]] + " " + name[m[1]:], true
		}
	}

	return "", false
}

func detectYear(name string, result *ParsedMedia) (string, bool) {
	maxYear := time.Now().Year() + 1

	for _, re := range []*regexp.Regexp{parenYearRegex, bracketYearRegex, bareYearRegex} {
		for _, m := range re.FindAllStringSubmatchIndex(name, -1) {
			year, err := strconv.Atoi(name[m[2]:m[3]])
			if err != nil || year < 1900 || year > maxYear {
				continue
			}

			result.DetectedType = TypeMovie
			result.Year = &year
			result.Confidence += 40
			return name[:m[0]], true
		}
	}

	return "", false
}

var seasonWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

// cleanupName strips noise tokens, non-year bracketed groups, and leftover
// separators from a title candidate, then title-cases the remainder.
func cleanupName(candidate string) string {
	name := groupRegex.ReplaceAllString(candidate, " ")
	name = noiseRegex.ReplaceAllString(name, " ")
	name = channelRegex.ReplaceAllString(name, " ")
	name = collapseSeparators(name)
	name = spaceRegex.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}

	return titleCase(name)
}

func collapseSeparators(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	return strings.Trim(spaceRegex.ReplaceAllString(s, " "), " -")
}

// minorWords stay lowercase in titles unless sentence-initial.
var minorWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "and": {}, "but": {}, "or": {}, "nor": {},
	"of": {}, "on": {}, "in": {}, "to": {}, "at": {}, "by": {}, "for": {}, "with": {},
}

func titleCase(name string) string {
	words := strings.Fields(titleCaser.String(name))
	for i, w := range words {
		lower := strings.ToLower(w)
		if _, minor := minorWords[lower]; minor && i > 0 {
			words[i] = lower
		}
	}
	return strings.Join(words, " ")
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func intPtr(v int) *int {
	return &v
}

func atoiPtr(s string) *int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
