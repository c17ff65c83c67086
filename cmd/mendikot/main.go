// Command mendikot runs a pass-the-device match for four players on one
// terminal. Each player takes the device on their turn and only ever
// sees their own hand.
package main

import (
	"github.com/pterm/pterm"

	"mendikot/internal/game"
)

func main() {
	renderBanner()

	var names [4]string
	defaults := [4]string{"North", "East", "South", "West"}
	for seat := 0; seat < 4; seat++ {
		name, _ := pterm.DefaultInteractiveTextInput.
			WithDefaultText(pterm.Sprintf("Name for seat %d", seat)).
			WithDefaultValue(defaults[seat]).Show()
		if name == "" {
			name = defaults[seat]
		}
		names[seat] = name
	}
	pterm.Println()

	engine := game.NewEngine(names, nil)

	draw, err := engine.DrawForTeams()
	if err != nil {
		pterm.Fatal.Println(err)
	}
	rosters, dealer, err := engine.FormTeams(draw)
	if err != nil {
		pterm.Fatal.Println(err)
	}
	printDrawPanel(names, draw, rosters, dealer)

	if err := engine.DealCards(); err != nil {
		pterm.Fatal.Println(err)
	}

	for {
		selectTrump(engine, names)
		playDeal(engine, names)

		again, _ := pterm.DefaultInteractiveConfirm.
			WithDefaultText("Play another deal?").WithDefaultValue(true).Show()
		if !again {
			break
		}
		if err := engine.StartNewDeal(); err != nil {
			pterm.Fatal.Println(err)
		}
		pterm.Println()
	}

	pterm.Println("Thanks for playing!")
}

func selectTrump(engine *game.Engine, names [4]string) {
	snap := engine.Snapshot()
	picker := (snap.CurrentDealer + 1) % 4
	handoff(names[picker])

	hand := snap.Players[picker].Hand
	options := make([]string, 0, len(hand))
	for _, c := range hand {
		options = append(options, c.String())
	}
	pterm.Info.Printfln("Your hand: %s", colorCards(options))
	for {
		choice, _ := pterm.DefaultInteractiveSelect.
			WithDefaultText("Choose the trump card to set aside").
			WithOptions(options).Show()
		card, err := game.ParseCard(choice)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if err := engine.SelectTrump(picker, card); err != nil {
			pterm.Error.Println(err)
			continue
		}
		pterm.Success.Printfln("Trump set aside, %s leads the first trick", names[picker])
		return
	}
}

func playDeal(engine *game.Engine, names [4]string) {
	for {
		snap := engine.Snapshot()
		if snap.Phase != game.PhaseTrickPlay {
			return
		}
		seat := snap.CurrentTurn
		handoff(names[seat])
		printTrickPanel(snap, names)

		me := game.Player{Seat: seat, Hand: snap.Players[seat].Hand}
		playable := me.PlayableCards(snap.LeadSuit)
		options := make([]string, 0, len(playable))
		for _, c := range playable {
			options = append(options, c.String())
		}
		pterm.Info.Printfln("Your hand: %s", colorCards(handCodes(snap.Players[seat].Hand)))

		res := promptPlay(engine, seat, options)
		if res.TrumpRevealed {
			after := engine.Snapshot()
			pterm.Warning.Printfln("Trump revealed: %s", after.TrumpSuit.String())
		}
		if res.TrickResolved {
			pterm.Success.Printfln("%s takes the trick", names[res.TrickWinner])
		}
		if res.DealComplete {
			printOutcomePanel(*res.Outcome, names, engine.Snapshot())
			return
		}
	}
}

func promptPlay(engine *game.Engine, seat int, options []string) game.PlayResult {
	for {
		choice, _ := pterm.DefaultInteractiveSelect.
			WithDefaultText("Choose a card to play").
			WithOptions(options).Show()
		card, err := game.ParseCard(choice)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		res, err := engine.PlayCard(seat, card)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		return res
	}
}

func handCodes(hand []game.Card) []string {
	out := make([]string, 0, len(hand))
	for _, c := range hand {
		out = append(out, c.String())
	}
	return out
}
