package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/pictora/cardgen"
	"github.com/pictora/cardgen/utils"
	"golang.org/x/term"
)

const helpBanner = `
┌─┐┌─┐┬─┐┌┬┐┌─┐┌─┐┌┐┌
│  ├─┤├┬┘ │││ ┬├┤ │││
└─┘┴ ┴┴└──┴┘└─┘└─┘┘└┘

Profile, welcome and rank card generator.
    Version: %s

`

// pipeName is the file name that indicates stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	// Flags
	cardType      = flag.String("type", "profile", "Card type (profile, welcome, rank)")
	output        = flag.String("out", pipeName, "Destination file, - writes the PNG to stdout")
	username      = flag.String("username", "", "Username")
	avatar        = flag.String("avatar", "", "Avatar path or URL")
	discriminator = flag.String("tag", "", "Discriminator tag")
	classifier    = flag.String("cc", "", "Cascade classifier used to center the avatar crop on a face")
	status        = flag.String("status", "", "Presence status (profile): online, idle, dnd, offline")
	bio           = flag.String("bio", "", "Bio text (profile)")
	badges        = flag.String("badges", "", "Comma separated badge labels (profile)")
	background    = flag.String("bg", "", "Background image path or URL (profile, rank)")
	server        = flag.String("server", "", "Server name (welcome)")
	member        = flag.Int("member", 0, "Member count (welcome)")
	invite        = flag.String("invite", "", "Invite URL rendered as a QR code (welcome)")
	rank          = flag.Int("rank", 0, "Server rank (rank)")
	level         = flag.Int("level", 0, "Level (rank)")
	currentXP     = flag.Int("xp", 0, "Current XP (rank)")
	nextLevelXP   = flag.Int("maxxp", 0, "XP needed for the next level (rank)")
	progress      = flag.Float64("progress", -1, "Explicit progress percentage (rank), overrides the XP derived value")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if len(*username) == 0 || len(*avatar) == 0 {
		log.Fatalf(utils.DecorateText("Please provide the -username and -avatar flags!", utils.ErrorMessage))
	}
	if *output == pipeName && term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatalf(utils.DecorateText("Refusing to write the PNG to a terminal, redirect stdout or use the -out flag.", utils.ErrorMessage))
	}

	var card interface {
		Encode(w io.Writer) error
	}

	switch *cardType {
	case "profile":
		card = cardgen.NewProfileCard(&cardgen.ProfileOptions{
			Username:      *username,
			Avatar:        *avatar,
			Discriminator: *discriminator,
			Status:        cardgen.Status(*status),
			Bio:           *bio,
			Badges:        splitBadges(*badges),
			Background:    *background,
			Classifier:    *classifier,
		})
	case "welcome":
		card = cardgen.NewWelcomeCard(&cardgen.WelcomeOptions{
			Username:      *username,
			Avatar:        *avatar,
			Discriminator: *discriminator,
			ServerName:    *server,
			MemberCount:   *member,
			InviteURL:     *invite,
			Classifier:    *classifier,
		})
	case "rank":
		opts := &cardgen.RankOptions{
			Username:      *username,
			Avatar:        *avatar,
			Discriminator: *discriminator,
			Rank:          *rank,
			Level:         *level,
			CurrentXP:     *currentXP,
			NextLevelXP:   *nextLevelXP,
			Background:    *background,
			Classifier:    *classifier,
		}
		if *progress >= 0 {
			opts.Progress = progress
		}
		card = cardgen.NewRankCard(opts)
	default:
		log.Fatalf(utils.DecorateText("Unsupported card type: %v", utils.ErrorMessage), *cardType)
	}

	spinnerText := fmt.Sprintf("%s %s",
		utils.DecorateText("⚡ CARDGEN", utils.StatusMessage),
		utils.DecorateText("is rendering the card...", utils.DefaultMessage))
	spinner := utils.NewSpinner(spinnerText, time.Millisecond*200, true)
	spinner.Start()

	now := time.Now()
	err := writeCard(card, *output)
	spinner.Stop()

	if err != nil {
		log.Fatalf(
			utils.DecorateText("Failed to render the card: %v", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}

	fmt.Fprintf(os.Stderr, "\nRendered in: %s\n",
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage),
	)
}

// writeCard encodes the card into the destination file or stdout.
func writeCard(card interface{ Encode(w io.Writer) error }, dst string) error {
	if dst == pipeName {
		return card.Encode(os.Stdout)
	}

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("unable to create the output file: %w", err)
	}
	defer out.Close()

	return card.Encode(out)
}

func splitBadges(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
