package cardgen

import (
	"io"
	"strings"
)

// ProfileCard renders a 800x400 user profile: a circular avatar with a
// presence indicator, the username, an optional word-wrapped bio and a row of
// badges, over an optional semi-transparent background image.
type ProfileCard struct {
	cfg profileConfig
}

// NewProfileCard normalizes the options into a fully resolved configuration
// and returns a single-use card instance.
func NewProfileCard(opts *ProfileOptions) *ProfileCard {
	return &ProfileCard{cfg: normalizeProfile(opts)}
}

// Render produces the finished card as PNG bytes.
func (p *ProfileCard) Render() ([]byte, error) {
	return renderBytes(p.Encode)
}

// Encode renders the card and writes the PNG stream to w.
func (p *ProfileCard) Encode(w io.Writer) error {
	cfg := p.cfg

	avatar, err := loadBitmap(cfg.avatar)
	if err != nil {
		return err
	}
	background, err := loadOptionalBitmap(cfg.background)
	if err != nil {
		return err
	}

	cv := newCanvas(cfg.width, cfg.height)

	cv.fillBackground(cfg.bgColor)
	if background != nil {
		cv.drawCover(background, cfg.bgOpacity)
	}
	cv.gradientOverlay(true, 0.3, 0.7)

	const avatarR = 100
	ax := cfg.padding + avatarR + 10
	ay := cv.h / 2
	if err := cv.drawAvatar(avatar, ax, ay, avatarR, cfg.accentColor, cfg.classifier); err != nil {
		return err
	}
	cv.statusDot(ax+avatarR*0.7071, ay+avatarR*0.7071, 18, cfg.statusColor, cfg.bgColor)

	tx := ax + avatarR + 50
	maxWidth := cv.w - tx - cfg.padding

	nameY := 150.0
	nameW := cv.text(cfg.username, tx, nameY, boldFace(cfg.titleSize), cfg.textColor)
	cv.text("#"+cfg.discriminator, tx+nameW+12, nameY, regularFace(cfg.titleSize*0.6), cfg.subtextColor)

	if cfg.bio != "" {
		y := nameY + 50
		face := regularFace(cfg.bodySize)
		for _, line := range cv.wrap(cfg.bio, face, maxWidth) {
			cv.text(line, tx, y, face, cfg.textColor)
			y += cfg.bodySize * 1.4
		}
	}

	if len(cfg.badges) > 0 {
		face := regularFace(cfg.bodySize * 0.9)
		lines := cv.wrap(strings.Join(cfg.badges, " • "), face, maxWidth)

		y := cv.h - cfg.padding - float64(len(lines)-1)*cfg.bodySize*1.3
		for _, line := range lines {
			cv.text(line, tx, y, face, cfg.subtextColor)
			y += cfg.bodySize * 1.3
		}
	}

	cv.roundCorners(cfg.cornerRadius)
	return cv.encode(w)
}
