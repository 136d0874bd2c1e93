package cardgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions_ProfileDefaultsShouldApply(t *testing.T) {
	assert := assert.New(t)

	cfg := normalizeProfile(&ProfileOptions{
		Username: "esther",
		Avatar:   "./avatar.png",
	})

	tests := []struct {
		field string
		got   interface{}
		want  interface{}
	}{
		{"discriminator", cfg.discriminator, "0000"},
		{"background color", cfg.bgColor, "#2C2F33"},
		{"text color", cfg.textColor, "#FFFFFF"},
		{"accent color", cfg.accentColor, "#7289DA"},
		{"subtext color", cfg.subtextColor, "#B9BBBE"},
		{"padding", cfg.padding, 30.0},
		{"corner radius", cfg.cornerRadius, 15.0},
		{"title font size", cfg.titleSize, 36.0},
		{"body font size", cfg.bodySize, 20.0},
		{"background opacity", cfg.bgOpacity, 0.2},
		{"status color", cfg.statusColor, "#747F8D"},
		{"width", cfg.width, ProfileWidth},
		{"height", cfg.height, ProfileHeight},
	}
	for _, tt := range tests {
		assert.Equal(tt.want, tt.got, "default for %s", tt.field)
	}
}

func TestOptions_WelcomeDefaultsShouldApply(t *testing.T) {
	assert := assert.New(t)

	cfg := normalizeWelcome(&WelcomeOptions{
		Username:   "esther",
		Avatar:     "./avatar.png",
		ServerName: "gophers",
	})

	tests := []struct {
		field string
		got   interface{}
		want  interface{}
	}{
		{"discriminator", cfg.discriminator, "0000"},
		{"padding", cfg.padding, 60.0},
		{"corner radius", cfg.cornerRadius, 10.0},
		{"title font size", cfg.titleSize, 48.0},
		{"body font size", cfg.bodySize, 28.0},
		{"blur radius", cfg.blurRadius, 8.0},
		{"width", cfg.width, WelcomeWidth},
		{"height", cfg.height, WelcomeHeight},
	}
	for _, tt := range tests {
		assert.Equal(tt.want, tt.got, "default for %s", tt.field)
	}
}

func TestOptions_RankDefaultsShouldApply(t *testing.T) {
	assert := assert.New(t)

	cfg := normalizeRank(&RankOptions{
		Username: "esther",
		Avatar:   "./avatar.png",
		Rank:     3,
		Level:    12,
	})

	tests := []struct {
		field string
		got   interface{}
		want  interface{}
	}{
		{"discriminator", cfg.discriminator, "0000"},
		{"padding", cfg.padding, 30.0},
		{"corner radius", cfg.cornerRadius, 15.0},
		{"background opacity", cfg.bgOpacity, 0.15},
		{"width", cfg.width, RankWidth},
		{"height", cfg.height, RankHeight},
	}
	for _, tt := range tests {
		assert.Equal(tt.want, tt.got, "default for %s", tt.field)
	}
}

func TestOptions_CallerValuesShouldWinOverDefaults(t *testing.T) {
	assert := assert.New(t)

	cfg := normalizeProfile(&ProfileOptions{
		Username:        "esther",
		Avatar:          "./avatar.png",
		Discriminator:   "4217",
		BackgroundColor: "#101214",
		Padding:         45,
		TitleFontSize:   40,
	})

	assert.Equal("4217", cfg.discriminator)
	assert.Equal("#101214", cfg.bgColor)
	assert.Equal(45.0, cfg.padding)
	assert.Equal(40.0, cfg.titleSize)
}

func TestOptions_StatusColorShouldBeTotal(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		status Status
		want   string
	}{
		{StatusOnline, "#43B581"},
		{StatusIdle, "#FAA61A"},
		{StatusDnd, "#F04747"},
		{StatusOffline, "#747F8D"},
		{Status("streaming"), "#747F8D"},
		{Status(""), "#747F8D"},
	}
	for _, tt := range tests {
		assert.Equal(tt.want, StatusColor(tt.status), "status %q", tt.status)
	}
}

func TestOptions_ProgressShouldDeriveFromXP(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		currentXP   int
		nextLevelXP int
		want        float64
	}{
		{50, 100, 50},
		{150, 100, 100},
		{0, 100, 0},
		{1, 3, 100.0 / 3},
		{0, 0, 0},
		{80, 0, 0},
	}
	for _, tt := range tests {
		got := progressValue(&RankOptions{CurrentXP: tt.currentXP, NextLevelXP: tt.nextLevelXP})
		assert.InDelta(tt.want, got, 1e-9, "xp %d/%d", tt.currentXP, tt.nextLevelXP)
	}
}

func TestOptions_ExplicitProgressShouldWinAndClamp(t *testing.T) {
	assert := assert.New(t)

	explicit := func(v float64) *float64 { return &v }

	assert.Equal(75.0, progressValue(&RankOptions{CurrentXP: 50, NextLevelXP: 100, Progress: explicit(75)}))
	assert.Equal(100.0, progressValue(&RankOptions{Progress: explicit(140)}))
	assert.Equal(0.0, progressValue(&RankOptions{Progress: explicit(-5)}))

	// The division path must stay untouched when progress is explicit.
	assert.Equal(75.0, progressValue(&RankOptions{CurrentXP: 0, NextLevelXP: 0, Progress: explicit(75)}))
}
