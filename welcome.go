package cardgen

import (
	"fmt"
	"io"

	qrcode "github.com/skip2/go-qrcode"
)

// qrSize is the edge length of the optional invite QR code.
const qrSize = 96

// WelcomeCard renders a 1024x500 welcome banner. The avatar is not drawn as a
// circle; it covers the whole card, blurred, underneath a darkening gradient
// and the centered greeting text. An optional invite URL is rendered as a QR
// code in the lower right corner.
type WelcomeCard struct {
	cfg welcomeConfig
}

// NewWelcomeCard normalizes the options into a fully resolved configuration
// and returns a single-use card instance.
func NewWelcomeCard(opts *WelcomeOptions) *WelcomeCard {
	return &WelcomeCard{cfg: normalizeWelcome(opts)}
}

// Render produces the finished card as PNG bytes.
func (c *WelcomeCard) Render() ([]byte, error) {
	return renderBytes(c.Encode)
}

// Encode renders the card and writes the PNG stream to w.
func (c *WelcomeCard) Encode(w io.Writer) error {
	cfg := c.cfg

	avatar, err := loadBitmap(cfg.avatar)
	if err != nil {
		return err
	}

	cv := newCanvas(cfg.width, cfg.height)

	cv.fillBackground(cfg.bgColor)
	cv.drawBlurredCover(avatar, cfg.blurRadius)
	cv.gradientOverlay(false, 0.4, 0.7)

	title := fmt.Sprintf("Welcome, %s#%s!", cfg.username, cfg.discriminator)
	subtitle := fmt.Sprintf("%s • Member #%d", cfg.serverName, cfg.memberCount)

	cv.textAnchored(title, cv.w/2, cv.h/2-10, 0.5, 0, boldFace(cfg.titleSize), cfg.textColor)
	cv.textAnchored(subtitle, cv.w/2, cv.h/2+cfg.bodySize+30, 0.5, 0, regularFace(cfg.bodySize), cfg.subtextColor)

	cv.bar(cfg.padding, cv.h-36, cv.w-2*cfg.padding, 6, cfg.accentColor)

	if cfg.inviteURL != "" {
		qr, err := qrcode.New(cfg.inviteURL, qrcode.Medium)
		if err != nil {
			return fmt.Errorf("unable to generate the invite QR code: %w", err)
		}
		cv.dc.DrawImage(qr.Image(qrSize), int(cv.w-cfg.padding)-qrSize, int(cv.h-cfg.padding)-qrSize)
	}

	cv.roundCorners(cfg.cornerRadius)
	return cv.encode(w)
}
