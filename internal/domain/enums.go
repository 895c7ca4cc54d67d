package domain

import "strings"

// Platform identifies a gaming platform a submission was played on.
type Platform string

const (
	PlatformPlayStation5 Platform = "PLAYSTATION_5"
	PlatformPlayStation4 Platform = "PLAYSTATION_4"
	PlatformSwitch       Platform = "SWITCH"
	PlatformSwitch2      Platform = "SWITCH_2"
	PlatformXboxOne      Platform = "XBOX_ONE"
	PlatformPC           Platform = "PC"
)

// platforms lists every Platform in presentation order.
var platforms = []Platform{
	PlatformPlayStation5, PlatformPlayStation4, PlatformSwitch,
	PlatformSwitch2, PlatformXboxOne, PlatformPC,
}

var platformDisplayNames = map[Platform]string{
	PlatformPlayStation5: "Playstation 5",
	PlatformPlayStation4: "Playstation 4",
	PlatformSwitch:       "Switch",
	PlatformSwitch2:      "Switch 2",
	PlatformXboxOne:      "Xbox One",
	PlatformPC:           "PC",
}

// platformLegacyCodes are short codes found in records written before the
// vocabulary settled on display names. They are only honoured when
// bucketing stored records, never when validating input.
var platformLegacyCodes = map[string]Platform{
	"ps5": PlatformPlayStation5,
	"ps4": PlatformPlayStation4,
}

func (p Platform) String() string { return string(p) }

func (p Platform) IsValid() bool {
	_, ok := platformDisplayNames[p]
	return ok
}

// DisplayName returns the human-readable name, e.g. "Playstation 5".
func (p Platform) DisplayName() string { return platformDisplayNames[p] }

// StoredValue returns the form persisted on a submission: the display name
// passed through NormalizeText ("PC" is stored as "Pc").
func (p Platform) StoredValue() string { return NormalizeText(p.DisplayName()) }

// Platforms returns all platforms in presentation order.
func Platforms() []Platform {
	out := make([]Platform, len(platforms))
	copy(out, platforms)
	return out
}

// ParsePlatform matches candidate case-insensitively against the display
// names. Surrounding and repeated whitespace is ignored.
func ParsePlatform(candidate string) (Platform, bool) {
	key := NormalizeText(candidate)
	if key == "" {
		return "", false
	}
	for _, p := range platforms {
		if strings.EqualFold(p.StoredValue(), key) {
			return p, true
		}
	}
	return "", false
}

// IsValidPlatform reports whether candidate names a known platform.
func IsValidPlatform(candidate string) bool {
	_, ok := ParsePlatform(candidate)
	return ok
}

// PlatformDisplayNames returns the display names in presentation order.
func PlatformDisplayNames() []string {
	names := make([]string, len(platforms))
	for i, p := range platforms {
		names[i] = p.DisplayName()
	}
	return names
}

// resolveStoredPlatform maps a value read back from storage onto the current
// vocabulary. It accepts the display name, the identifier, or a legacy code.
func resolveStoredPlatform(stored string) (Platform, bool) {
	if p, ok := ParsePlatform(stored); ok {
		return p, true
	}
	key := strings.ToLower(strings.TrimSpace(stored))
	if p, ok := platformLegacyCodes[key]; ok {
		return p, true
	}
	for _, p := range platforms {
		if strings.EqualFold(string(p), key) {
			return p, true
		}
	}
	return "", false
}

// CompletionType describes how thoroughly a game was completed.
type CompletionType string

const (
	CompletionTypeMainStory      CompletionType = "MAIN_STORY"
	CompletionTypeMainPlusExtras CompletionType = "MAIN_PLUS_EXTRAS"
	CompletionTypeCompletionist  CompletionType = "COMPLETIONIST"
)

var completionTypes = []CompletionType{
	CompletionTypeMainStory, CompletionTypeMainPlusExtras, CompletionTypeCompletionist,
}

var completionTypeDisplayNames = map[CompletionType]string{
	CompletionTypeMainStory:      "Main Story",
	CompletionTypeMainPlusExtras: "Main + Extras",
	CompletionTypeCompletionist:  "Completionist",
}

func (c CompletionType) String() string { return string(c) }

func (c CompletionType) IsValid() bool {
	_, ok := completionTypeDisplayNames[c]
	return ok
}

// DisplayName returns the human-readable name, e.g. "Main + Extras".
func (c CompletionType) DisplayName() string { return completionTypeDisplayNames[c] }

// Key returns the lowercase form persisted on a submission, e.g. "main + extras".
func (c CompletionType) Key() string { return strings.ToLower(c.DisplayName()) }

// CompletionTypes returns all completion types in presentation order.
func CompletionTypes() []CompletionType {
	out := make([]CompletionType, len(completionTypes))
	copy(out, completionTypes)
	return out
}

// ParseCompletionType matches candidate case-insensitively against the
// display names. Surrounding and repeated whitespace is ignored.
func ParseCompletionType(candidate string) (CompletionType, bool) {
	key := strings.ToLower(NormalizeText(candidate))
	if key == "" {
		return "", false
	}
	for _, c := range completionTypes {
		if c.Key() == key {
			return c, true
		}
	}
	return "", false
}

// IsValidCompletionType reports whether candidate names a known completion type.
func IsValidCompletionType(candidate string) bool {
	_, ok := ParseCompletionType(candidate)
	return ok
}

// CompletionTypeDisplayNames returns the display names in presentation order.
func CompletionTypeDisplayNames() []string {
	names := make([]string, len(completionTypes))
	for i, c := range completionTypes {
		names[i] = c.DisplayName()
	}
	return names
}

func resolveStoredCompletionType(stored string) (CompletionType, bool) {
	if c, ok := ParseCompletionType(stored); ok {
		return c, true
	}
	key := strings.TrimSpace(stored)
	for _, c := range completionTypes {
		if strings.EqualFold(string(c), key) {
			return c, true
		}
	}
	return "", false
}
