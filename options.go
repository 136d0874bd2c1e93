package cardgen

import (
	"github.com/pictora/cardgen/utils"
)

// Status is the presence state drawn as a colored dot on profile cards.
type Status string

const (
	StatusOnline  Status = "online"
	StatusIdle    Status = "idle"
	StatusDnd     Status = "dnd"
	StatusOffline Status = "offline"
)

// statusColors is a total mapping from presence state to swatch color.
// Anything not present in the table falls back to the offline swatch.
var statusColors = map[Status]string{
	StatusOnline:  "#43B581",
	StatusIdle:    "#FAA61A",
	StatusDnd:     "#F04747",
	StatusOffline: "#747F8D",
}

// StatusColor returns the swatch color of a presence state.
func StatusColor(s Status) string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return statusColors[StatusOffline]
}

// Default values applied to every optional field left unset by the caller.
const (
	DefaultDiscriminator   = "0000"
	DefaultBackgroundColor = "#2C2F33"
	DefaultTextColor       = "#FFFFFF"
	DefaultAccentColor     = "#7289DA"
	DefaultSubtextColor    = "#B9BBBE"
)

// Fixed canvas dimensions per card type.
const (
	ProfileWidth  = 800
	ProfileHeight = 400

	WelcomeWidth  = 1024
	WelcomeHeight = 500

	RankWidth  = 900
	RankHeight = 300
)

// ProfileOptions parameterizes a profile card. Username and Avatar are
// required; every other field has a documented default.
type ProfileOptions struct {
	// Username is the display name drawn as the card title. Required.
	Username string
	// Avatar is a local path or remote URL of the avatar image. Required.
	Avatar string
	// Discriminator is the short tag drawn after the username. Default "0000".
	Discriminator string
	// Status selects the presence dot color. Unrecognized values fall back
	// to the offline swatch.
	Status Status
	// Bio is an optional free-form text, word-wrapped into the body column.
	Bio string
	// Badges are short labels joined with a bullet separator and wrapped by
	// measured width.
	Badges []string
	// Background is an optional local path or remote URL of a background
	// image, drawn at BackgroundOpacity over the background color.
	Background string
	// BackgroundOpacity is the alpha the background image is drawn with.
	// Default 0.2.
	BackgroundOpacity float64

	BackgroundColor string // default "#2C2F33"
	TextColor       string // default "#FFFFFF"
	AccentColor     string // default "#7289DA"
	SubtextColor    string // default "#B9BBBE"

	// Padding is the uniform inset of the layout. Default 30.
	Padding int
	// CornerRadius rounds the final image corners. Default 15.
	CornerRadius int
	// TitleFontSize is the username size in points. Default 36.
	TitleFontSize float64
	// BodyFontSize is the bio/badge size in points. Default 20.
	BodyFontSize float64

	// Classifier is an optional path to a pigo cascade file. When set,
	// non-square avatars are cropped around the strongest detected face
	// instead of the geometric center.
	Classifier string
}

// WelcomeOptions parameterizes a welcome banner. Username, Avatar and
// ServerName are required. The banner has no background image option: the
// avatar itself is drawn full-bleed and blurred behind the content.
type WelcomeOptions struct {
	Username      string
	Avatar        string
	ServerName    string
	MemberCount   int
	Discriminator string // default "0000"

	// BlurRadius is the blur applied to the full-bleed avatar background.
	// Default 8.
	BlurRadius float64

	// InviteURL, when set, is rendered as a QR code in the lower right corner.
	InviteURL string

	BackgroundColor string // default "#2C2F33"
	TextColor       string // default "#FFFFFF"
	AccentColor     string // default "#7289DA"
	SubtextColor    string // default "#B9BBBE"

	Padding       int     // default 60
	CornerRadius  int     // default 10
	TitleFontSize float64 // default 48
	BodyFontSize  float64 // default 28

	Classifier string
}

// RankOptions parameterizes a rank card. Username, Avatar, Rank and Level are
// required. The progress bar is driven either by the explicit Progress value
// or derived from CurrentXP and NextLevelXP.
type RankOptions struct {
	Username      string
	Avatar        string
	Discriminator string // default "0000"

	Rank        int
	Level       int
	CurrentXP   int
	NextLevelXP int

	// Progress overrides the XP-derived percentage when non-nil. The value
	// is clamped to [0, 100].
	Progress *float64

	// Background is an optional background image drawn at BackgroundOpacity.
	Background string
	// BackgroundOpacity defaults to 0.15.
	BackgroundOpacity float64

	BackgroundColor string // default "#2C2F33"
	TextColor       string // default "#FFFFFF"
	AccentColor     string // default "#7289DA"
	SubtextColor    string // default "#B9BBBE"

	Padding       int     // default 30
	CornerRadius  int     // default 15
	TitleFontSize float64 // default 36
	BodyFontSize  float64 // default 20

	Classifier string
}

// cardConfig is the fully resolved configuration shared by all card types.
// After normalization every field holds a concrete value, so the drawing
// stages never fall back or null-check.
type cardConfig struct {
	width, height int
	padding       float64
	cornerRadius  float64

	bgColor      string
	textColor    string
	accentColor  string
	subtextColor string

	titleSize float64
	bodySize  float64

	classifier string
}

type profileConfig struct {
	cardConfig

	username      string
	discriminator string
	avatar        string
	background    string
	bgOpacity     float64
	bio           string
	badges        []string
	statusColor   string
}

type welcomeConfig struct {
	cardConfig

	username      string
	discriminator string
	avatar        string
	serverName    string
	memberCount   int
	blurRadius    float64
	inviteURL     string
}

type rankConfig struct {
	cardConfig

	username      string
	discriminator string
	avatar        string
	background    string
	bgOpacity     float64
	rank          int
	level         int
	currentXP     int
	nextLevelXP   int
	progress      float64
}

func normalizeProfile(o *ProfileOptions) profileConfig {
	return profileConfig{
		cardConfig: cardConfig{
			width:        ProfileWidth,
			height:       ProfileHeight,
			padding:      float64(fallbackInt(o.Padding, 30)),
			cornerRadius: float64(fallbackInt(o.CornerRadius, 15)),
			bgColor:      fallback(o.BackgroundColor, DefaultBackgroundColor),
			textColor:    fallback(o.TextColor, DefaultTextColor),
			accentColor:  fallback(o.AccentColor, DefaultAccentColor),
			subtextColor: fallback(o.SubtextColor, DefaultSubtextColor),
			titleSize:    fallbackFloat(o.TitleFontSize, 36),
			bodySize:     fallbackFloat(o.BodyFontSize, 20),
			classifier:   o.Classifier,
		},
		username:      o.Username,
		discriminator: fallback(o.Discriminator, DefaultDiscriminator),
		avatar:        o.Avatar,
		background:    o.Background,
		bgOpacity:     fallbackFloat(o.BackgroundOpacity, 0.2),
		bio:           o.Bio,
		badges:        o.Badges,
		statusColor:   StatusColor(o.Status),
	}
}

func normalizeWelcome(o *WelcomeOptions) welcomeConfig {
	return welcomeConfig{
		cardConfig: cardConfig{
			width:        WelcomeWidth,
			height:       WelcomeHeight,
			padding:      float64(fallbackInt(o.Padding, 60)),
			cornerRadius: float64(fallbackInt(o.CornerRadius, 10)),
			bgColor:      fallback(o.BackgroundColor, DefaultBackgroundColor),
			textColor:    fallback(o.TextColor, DefaultTextColor),
			accentColor:  fallback(o.AccentColor, DefaultAccentColor),
			subtextColor: fallback(o.SubtextColor, DefaultSubtextColor),
			titleSize:    fallbackFloat(o.TitleFontSize, 48),
			bodySize:     fallbackFloat(o.BodyFontSize, 28),
			classifier:   o.Classifier,
		},
		username:      o.Username,
		discriminator: fallback(o.Discriminator, DefaultDiscriminator),
		avatar:        o.Avatar,
		serverName:    o.ServerName,
		memberCount:   o.MemberCount,
		blurRadius:    fallbackFloat(o.BlurRadius, 8),
		inviteURL:     o.InviteURL,
	}
}

func normalizeRank(o *RankOptions) rankConfig {
	return rankConfig{
		cardConfig: cardConfig{
			width:        RankWidth,
			height:       RankHeight,
			padding:      float64(fallbackInt(o.Padding, 30)),
			cornerRadius: float64(fallbackInt(o.CornerRadius, 15)),
			bgColor:      fallback(o.BackgroundColor, DefaultBackgroundColor),
			textColor:    fallback(o.TextColor, DefaultTextColor),
			accentColor:  fallback(o.AccentColor, DefaultAccentColor),
			subtextColor: fallback(o.SubtextColor, DefaultSubtextColor),
			titleSize:    fallbackFloat(o.TitleFontSize, 36),
			bodySize:     fallbackFloat(o.BodyFontSize, 20),
			classifier:   o.Classifier,
		},
		username:      o.Username,
		discriminator: fallback(o.Discriminator, DefaultDiscriminator),
		avatar:        o.Avatar,
		background:    o.Background,
		bgOpacity:     fallbackFloat(o.BackgroundOpacity, 0.15),
		rank:          o.Rank,
		level:         o.Level,
		currentXP:     o.CurrentXP,
		nextLevelXP:   o.NextLevelXP,
		progress:      progressValue(o),
	}
}

// progressValue resolves the progress bar percentage. An explicit value wins
// over the XP-derived one; a zero NextLevelXP yields 0 instead of dividing.
func progressValue(o *RankOptions) float64 {
	if o.Progress != nil {
		return clampProgress(*o.Progress)
	}
	if o.NextLevelXP == 0 {
		return 0
	}
	return clampProgress(float64(o.CurrentXP) / float64(o.NextLevelXP) * 100)
}

func clampProgress(v float64) float64 {
	return utils.Max(0, utils.Min(100, v))
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func fallbackInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}

func fallbackFloat(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
