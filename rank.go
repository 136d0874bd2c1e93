package cardgen

import (
	"fmt"
	"io"
)

// Progress bar track colors.
const (
	rankTrackColor  = "#484B4E"
	rankTrackBorder = "#1E2124"
)

// RankCard renders a 900x300 rank card: avatar, username, server rank and
// level, and an XP progress bar, over an optional semi-transparent background
// image.
type RankCard struct {
	cfg rankConfig
}

// NewRankCard normalizes the options into a fully resolved configuration and
// returns a single-use card instance. The progress value is clamped to
// [0, 100] here, either from the explicit option or derived from the XP pair.
func NewRankCard(opts *RankOptions) *RankCard {
	return &RankCard{cfg: normalizeRank(opts)}
}

// Progress returns the resolved progress bar percentage.
func (r *RankCard) Progress() float64 {
	return r.cfg.progress
}

// Render produces the finished card as PNG bytes.
func (r *RankCard) Render() ([]byte, error) {
	return renderBytes(r.Encode)
}

// Encode renders the card and writes the PNG stream to w.
func (r *RankCard) Encode(w io.Writer) error {
	cfg := r.cfg

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

	const avatarR = 80
	ax := cfg.padding + avatarR + 10
	ay := cv.h / 2
	if err := cv.drawAvatar(avatar, ax, ay, avatarR, cfg.accentColor, cfg.classifier); err != nil {
		return err
	}

	tx := ax + avatarR + 40
	nameY := 110.0
	nameW := cv.text(cfg.username, tx, nameY, boldFace(cfg.titleSize), cfg.textColor)
	cv.text("#"+cfg.discriminator, tx+nameW+12, nameY, regularFace(cfg.titleSize*0.6), cfg.subtextColor)

	cv.textAnchored(fmt.Sprintf("RANK #%d", cfg.rank), cv.w-cfg.padding, 70, 1, 0, boldFace(cfg.titleSize), cfg.textColor)
	cv.textAnchored(fmt.Sprintf("LEVEL %d", cfg.level), cv.w-cfg.padding, 110, 1, 0, boldFace(cfg.titleSize*0.7), cfg.accentColor)

	barX := tx
	barY := 190.0
	barW := cv.w - cfg.padding - barX
	barH := 36.0

	xp := fmt.Sprintf("%d / %d XP", cfg.currentXP, cfg.nextLevelXP)
	cv.textAnchored(xp, cv.w-cfg.padding, barY-14, 1, 0, regularFace(cfg.bodySize), cfg.subtextColor)
	cv.progressBar(barX, barY, barW, barH, cfg.progress, rankTrackColor, cfg.accentColor, rankTrackBorder)

	cv.roundCorners(cfg.cornerRadius)
	return cv.encode(w)
}
