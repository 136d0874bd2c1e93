package cardgen

import (
	"bytes"
	"image/png"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

func TestRender_ProfileCardShouldProducePNG(t *testing.T) {
	assert := assert.New(t)

	avatar := writeTestImage(t, "avatar.png", 128, 128)
	card := NewProfileCard(&ProfileOptions{
		Username: "esther",
		Avatar:   avatar,
		Status:   StatusDnd,
		Bio:      "Resident gopher. Draws cards for a living and bars for fun.",
		Badges:   []string{"early supporter", "bug hunter", "night owl"},
	})

	data, err := card.Render()
	assert.NoError(err)
	assert.True(bytes.HasPrefix(data, pngSignature), "output should start with the PNG signature")

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	assert.NoError(err)
	assert.Equal(ProfileWidth, cfg.Width)
	assert.Equal(ProfileHeight, cfg.Height)
}

func TestRender_WelcomeCardShouldProducePNG(t *testing.T) {
	assert := assert.New(t)

	avatar := writeTestImage(t, "avatar.png", 128, 128)
	card := NewWelcomeCard(&WelcomeOptions{
		Username:    "esther",
		Avatar:      avatar,
		ServerName:  "gophers",
		MemberCount: 1337,
		InviteURL:   "https://example.com/join/gophers",
	})

	data, err := card.Render()
	assert.NoError(err)
	assert.True(bytes.HasPrefix(data, pngSignature))

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	assert.NoError(err)
	assert.Equal(WelcomeWidth, cfg.Width)
	assert.Equal(WelcomeHeight, cfg.Height)
}

func TestRender_RankCardShouldProducePNG(t *testing.T) {
	assert := assert.New(t)

	avatar := writeTestImage(t, "avatar.png", 128, 128)
	card := NewRankCard(&RankOptions{
		Username:    "esther",
		Avatar:      avatar,
		Rank:        3,
		Level:       12,
		CurrentXP:   50,
		NextLevelXP: 100,
	})
	assert.Equal(50.0, card.Progress())

	data, err := card.Render()
	assert.NoError(err)

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	assert.NoError(err)
	assert.Equal(RankWidth, cfg.Width)
	assert.Equal(RankHeight, cfg.Height)
}

func TestRender_RankCardWithZeroXPShouldNotDivide(t *testing.T) {
	assert := assert.New(t)

	avatar := writeTestImage(t, "avatar.png", 128, 128)
	explicit := 40.0
	card := NewRankCard(&RankOptions{
		Username:    "esther",
		Avatar:      avatar,
		Rank:        1,
		Level:       1,
		CurrentXP:   0,
		NextLevelXP: 0,
		Progress:    &explicit,
	})
	assert.Equal(40.0, card.Progress())

	_, err := card.Render()
	assert.NoError(err)
}

func TestRender_RemoteAvatarNotFoundShouldRejectEveryCardType(t *testing.T) {
	assert := assert.New(t)

	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()
	avatar := srv.URL + "/missing.png"

	cards := map[string]interface {
		Render() ([]byte, error)
	}{
		"profile": NewProfileCard(&ProfileOptions{Username: "esther", Avatar: avatar}),
		"welcome": NewWelcomeCard(&WelcomeOptions{Username: "esther", Avatar: avatar, ServerName: "gophers"}),
		"rank":    NewRankCard(&RankOptions{Username: "esther", Avatar: avatar, Rank: 1, Level: 1}),
	}

	for name, card := range cards {
		_, err := card.Render()

		var fetchErr *FetchError
		assert.ErrorAs(err, &fetchErr, "%s card", name)
		assert.Contains(err.Error(), "404", "%s card", name)
	}
}

func TestRender_BrokenBackgroundShouldAbortTheRender(t *testing.T) {
	assert := assert.New(t)

	avatar := writeTestImage(t, "avatar.png", 128, 128)
	card := NewProfileCard(&ProfileOptions{
		Username:   "esther",
		Avatar:     avatar,
		Background: filepath.Join(t.TempDir(), "missing-background.png"),
	})

	_, err := card.Render()

	var loadErr *LoadError
	assert.ErrorAs(err, &loadErr)
}

func TestRender_RemoteBackgroundShouldFadeIntoTheCard(t *testing.T) {
	assert := assert.New(t)

	data := encodeTestPNG(t, 256, 128)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(data)
	}))
	defer srv.Close()

	avatar := writeTestImage(t, "avatar.png", 128, 128)
	card := NewRankCard(&RankOptions{
		Username:   "esther",
		Avatar:     avatar,
		Rank:       7,
		Level:      2,
		Background: srv.URL + "/background.png",
	})

	_, err := card.Render()
	assert.NoError(err)
}
