package tui

import (
	"errors"
	"fmt"
	"log/slog"

	"example.com/defuse/internal/game"
	"github.com/gdamore/tcell/v2"
)

// Theme is the light/dark palette toggled with 't'.
type Theme struct {
	Base    tcell.Style
	Focus   tcell.Style
	Title   tcell.Style
	Notice  tcell.Style
	Success tcell.Style
	Failure tcell.Style
}

var (
	Light = Theme{
		Base:    tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack),
		Focus:   tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
		Title:   tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorDarkRed).Bold(true),
		Notice:  tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorOlive),
		Success: tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorGreen).Bold(true),
		Failure: tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorRed).Bold(true),
	}
	Dark = Theme{
		Base:    tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
		Focus:   tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack),
		Title:   tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorOrange).Bold(true),
		Notice:  tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorYellow),
		Success: tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorLime).Bold(true),
		Failure: tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorRed).Bold(true),
	}
)

const helpLine = "0-9 digit  Enter submit  Bksp delete  <-/-> move  t theme  Esc quit"

// UI draws the engine on a tcell screen: four digit cells with auto-advancing
// focus, the last message and the list of previous plays. The goroutine that
// calls Run owns the engine.
type UI struct {
	s   tcell.Screen
	eng *game.Engine
	log *slog.Logger

	digits [game.CodeLen]rune
	cursor int
	notice string
	dark   bool
}

func New(s tcell.Screen, eng *game.Engine, log *slog.Logger) *UI {
	if log == nil {
		log = slog.Default()
	}
	return &UI{s: s, eng: eng, log: log}
}

// Run polls events until the player quits or Interrupt is called.
// The screen must already be initialized.
func (u *UI) Run() error {
	u.Draw()
	for {
		ev := u.s.PollEvent()
		if ev == nil {
			return nil
		}
		if u.HandleEvent(ev) {
			return nil
		}
		u.Draw()
	}
}

// Interrupt makes Run return. Safe from any goroutine; it only posts an event.
func (u *UI) Interrupt() {
	_ = u.s.PostEvent(tcell.NewEventInterrupt(nil))
}

// HandleEvent applies one event and reports whether the UI should stop.
func (u *UI) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		return true
	case *tcell.EventResize:
		u.s.Sync()
	case *tcell.EventKey:
		return u.handleKey(ev)
	}
	return false
}

func (u *UI) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		if u.eng.Finished() {
			u.reset()
			return false
		}
		u.submit()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		u.backspace()
	case tcell.KeyLeft:
		if u.cursor > 0 {
			u.cursor--
		}
	case tcell.KeyRight:
		if u.cursor < game.CodeLen-1 {
			u.cursor++
		}
	case tcell.KeyRune:
		u.handleRune(ev.Rune())
	}
	return false
}

func (u *UI) handleRune(r rune) {
	switch {
	case r == 't' || r == 'T':
		u.dark = !u.dark
	case (r == 'n' || r == 'N') && u.eng.Finished():
		u.reset()
	case r >= '0' && r <= '9':
		if u.eng.Finished() {
			return
		}
		u.notice = ""
		u.digits[u.cursor] = r
		if u.cursor < game.CodeLen-1 {
			u.cursor++
		}
	default:
		// the digit cells accept 0-9 only
		u.notice = "Only digits 0-9."
	}
}

func (u *UI) backspace() {
	if u.digits[u.cursor] == 0 && u.cursor > 0 {
		u.cursor--
	}
	u.digits[u.cursor] = 0
}

func (u *UI) submit() {
	guess, err := game.ParseCode(string(u.digits[:]))
	if err != nil {
		u.notice = "Fill in all 4 digits."
		return
	}

	_, err = u.eng.SubmitGuess(guess)
	if errors.Is(err, game.ErrGameFinished) {
		u.notice = "The game is over. Press Enter to play again."
		return
	}
	if err != nil {
		u.log.Error("submit guess", "game_id", u.eng.ID(), "err", err)
		return
	}
	u.clearDigits()
	u.notice = ""
}

func (u *UI) reset() {
	u.eng.Reset()
	u.clearDigits()
	u.notice = ""
}

func (u *UI) clearDigits() {
	u.digits = [game.CodeLen]rune{}
	u.cursor = 0
}

func (u *UI) theme() Theme {
	if u.dark {
		return Dark
	}
	return Light
}

// Draw renders the whole frame and shows it.
func (u *UI) Draw() {
	th := u.theme()
	u.s.SetStyle(th.Base)
	u.s.Clear()

	u.text(2, 1, th.Title, "DEFUSE THE BOMB")
	u.text(2, 2, th.Base, fmt.Sprintf("Attempts: %d/%d", u.eng.AttemptsUsed(), u.eng.MaxAttempts()))

	for i, d := range u.digits {
		st := th.Base
		if i == u.cursor && !u.eng.Finished() {
			st = th.Focus
		}
		ch := '_'
		if d != 0 {
			ch = d
		}
		x := 2 + i*4
		u.text(x, 4, st, "[")
		u.s.SetContent(x+1, 4, ch, nil, st)
		u.text(x+2, 4, st, "]")
	}

	y := 6
	if msg := u.eng.Message(); msg != "" {
		st := th.Base
		switch u.eng.Outcome() {
		case game.OutcomeWon:
			st = th.Success
		case game.OutcomeLost:
			st = th.Failure
		}
		u.text(2, y, st, msg)
		y++
	}
	if u.notice != "" {
		u.text(2, y, th.Notice, u.notice)
		y++
	}
	if u.eng.Finished() {
		u.text(2, y, th.Base, "Press Enter or n to play again.")
		y++
	}

	y++
	for i, rec := range u.eng.History() {
		u.text(2, y, th.Base, fmt.Sprintf("%d. Guess: %s  Feedback: %s", i+1, rec.Guess, rec.Feedback))
		y++
	}

	_, h := u.s.Size()
	u.text(2, h-1, th.Base, helpLine)
	u.s.Show()
}

func (u *UI) text(x, y int, st tcell.Style, s string) {
	for _, r := range s {
		u.s.SetContent(x, y, r, nil, st)
		x++
	}
}
