package main

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"mendikot/internal/game"
)

func renderBanner() {
	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Men", pterm.FgLightRed.ToStyle()),
		putils.LettersFromStringWithStyle("di", pterm.FgLightYellow.ToStyle()),
		putils.LettersFromStringWithStyle("kot", pterm.FgLightRed.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(title)
	}
	pterm.Println()
}

// colorCard renders a two-letter card code with red suits in red.
func colorCard(code string) string {
	if strings.HasSuffix(code, "h") || strings.HasSuffix(code, "d") {
		return pterm.LightRed(code)
	}
	return pterm.LightBlue(code)
}

func colorCards(codes []string) string {
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		out = append(out, colorCard(c))
	}
	return strings.Join(out, " ")
}

// handoff blocks until the named player confirms they hold the device.
func handoff(name string) {
	pterm.Println()
	pterm.DefaultInteractiveConfirm.
		WithDefaultText(pterm.Sprintf("Pass the device to %s. Ready?", pterm.LightCyan(name))).
		WithDefaultValue(true).Show()
}

func printDrawPanel(names [4]string, draw map[int]game.Card, rosters [2][2]int, dealer int) {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	var b strings.Builder
	for seat := 0; seat < 4; seat++ {
		b.WriteString(pterm.Sprintfln("%s drew %s", names[seat], colorCard(draw[seat].String())))
	}
	b.WriteString(pterm.Sprintfln("\nTeam A: %s and %s", names[rosters[0][0]], names[rosters[0][1]]))
	b.WriteString(pterm.Sprintfln("Team B: %s and %s", names[rosters[1][0]], names[rosters[1][1]]))
	b.WriteString(pterm.Sprintfln("%s deals first", pterm.LightCyan(names[dealer])))
	pterm.Println(pbox.WithTitle(pterm.LightYellow("|DRAW|")).WithTitleTopCenter().Sprint(b.String()))
}

func printTrickPanel(snap game.Snapshot, names [4]string) {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	var b strings.Builder
	if len(snap.CurrentTrick) == 0 {
		b.WriteString("No cards on the table yet\n")
	}
	for _, play := range snap.CurrentTrick {
		b.WriteString(pterm.Sprintfln("%s played %s", names[play.Seat], colorCard(play.Card.String())))
	}
	if snap.TrumpRevealed && snap.TrumpSuit != nil {
		b.WriteString(pterm.Sprintfln("Trump: %s", pterm.LightGreen(snap.TrumpSuit.String())))
	} else {
		b.WriteString(pterm.Sprintfln("Trump: %s", pterm.Gray("face down")))
	}
	pterm.Println(pbox.WithTitle(pterm.LightYellow("|TABLE|")).WithTitleTopCenter().Sprint(b.String()))
}

func printOutcomePanel(out game.DealOutcome, names [4]string, snap game.Snapshot) {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	teamNames := [2]string{"Team A", "Team B"}
	var b strings.Builder
	switch {
	case out.Whitewash:
		b.WriteString(pterm.Sprintfln("%s win with a %s!", teamNames[out.WinningTeam], pterm.LightMagenta("whitewash")))
	case out.Mendikot:
		b.WriteString(pterm.Sprintfln("%s win with a %s!", teamNames[out.WinningTeam], pterm.LightMagenta("mendikot")))
	default:
		b.WriteString(pterm.Sprintfln("%s win the deal", teamNames[out.WinningTeam]))
	}
	b.WriteString(pterm.Sprintfln("Tens: %d vs %d, tricks: %d vs %d",
		out.Tens[0], out.Tens[1], out.Tricks[0], out.Tricks[1]))
	b.WriteString(pterm.Sprintfln("%s deals next", names[out.NextDealer]))
	pterm.Println(pbox.WithTitle(pterm.LightGreen("|DEAL OVER|")).WithTitleTopCenter().Sprint(b.String()))

	printScoreTable(snap, names)
}

func printScoreTable(snap game.Snapshot, names [4]string) {
	rows := pterm.TableData{{"Team", "Players", "Deals won"}}
	teamNames := [2]string{"Team A", "Team B"}
	for _, t := range snap.Teams {
		players := names[t.Seats[0]] + " & " + names[t.Seats[1]]
		rows = append(rows, []string{teamNames[t.ID], players, pterm.Sprintf("%d", snap.TeamScores[t.ID])})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}
