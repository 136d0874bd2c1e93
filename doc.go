/*
Package cardgen composes static raster cards - profile cards, welcome banners
and rank cards - by drawing a background, an avatar, decorative shapes and text
onto a fixed-size canvas, then encoding the result as PNG.

The package provides a command line interface and a small HTTP front end, but
the primary surface is the library API. Each card type has a single entry point
taking an options value; every optional field falls back to a documented
default during construction:

	package main

	import (
		"log"
		"os"

		"github.com/pictora/cardgen"
	)

	func main() {
		card := cardgen.NewProfileCard(&cardgen.ProfileOptions{
			Username: "esther",
			Avatar:   "./avatar.png",
			Status:   cardgen.StatusOnline,
		})

		data, err := card.Render()
		if err != nil {
			log.Fatalf("error rendering the card: %s", err)
		}
		os.WriteFile("profile.png", data, 0644)
	}

A card instance owns its drawing surface for exactly one render and is then
discarded. Cards share no state, so any number of them may render concurrently.
*/
package cardgen
