package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/bluewaveradio/bluewave-cli/internal/player"
)

type StatusRenderer struct {
	engine        *player.Engine
	isMuted       bool
	animFrame     int
	maxAnimFrame  int
	tickCount     int
	ticksPerFrame int

	primaryColor string
}

func NewStatusRenderer(engine *player.Engine) *StatusRenderer {
	return &StatusRenderer{
		engine:        engine,
		maxAnimFrame:  4,
		ticksPerFrame: 8, // Slow down animation (8 ticks per frame)
	}
}

func (s *StatusRenderer) SetMuted(muted bool) {
	s.isMuted = muted
}

func (s *StatusRenderer) SetPrimaryColor(color string) {
	s.primaryColor = color
}

func (s *StatusRenderer) AdvanceAnimation() {
	s.tickCount++
	if s.tickCount >= s.ticksPerFrame {
		s.tickCount = 0
		s.animFrame = (s.animFrame + 1) % s.maxAnimFrame
	}
}

func (s *StatusRenderer) Render() string {
	if s.engine == nil {
		return s.renderIdle()
	}
	return s.renderSnapshot(s.engine.Snapshot())
}

func (s *StatusRenderer) renderSnapshot(snap player.Snapshot) string {
	switch snap.State {
	case player.StateIdle:
		return s.renderIdle()
	case player.StateLoading:
		return s.renderLoading()
	case player.StateBuffering:
		return s.renderBuffering()
	case player.StateReady:
		if snap.IsPlaying {
			return s.renderLive(snap)
		}
		return s.renderPaused(snap)
	case player.StateFailed:
		return "✗ STREAM ERROR"
	default:
		return s.renderIdle()
	}
}

func (s *StatusRenderer) renderIdle() string {
	if s.isMuted {
		return "○ IDLE │ [red]MUTED[-] │ Press Space to listen"
	}
	return "○ IDLE │ Press Space to listen"
}

func (s *StatusRenderer) renderLoading() string {
	circles := []string{"◐", "◓", "◑", "◒"}
	return fmt.Sprintf("%s TUNING IN", circles[s.animFrame])
}

func (s *StatusRenderer) renderBuffering() string {
	circles := []string{"◐", "◓", "◑", "◒"}
	return fmt.Sprintf("%s BUFFERING", circles[s.animFrame])
}

func (s *StatusRenderer) renderLive(snap player.Snapshot) string {
	dots := []string{"●", "◉", "○", "◉"}
	dot := dots[s.animFrame]

	if s.primaryColor != "" {
		dot = fmt.Sprintf("[%s]%s[-]", s.primaryColor, dot)
	}

	parts := []string{dot + " LIVE"}

	if s.isMuted {
		parts = append(parts, "[red]MUTED[-]")
	}
	if snap.SleepMinutes > 0 {
		parts = append(parts, fmt.Sprintf("☾ sleep %dm", snap.SleepMinutes))
	}

	return joinParts(parts)
}

func (s *StatusRenderer) renderPaused(snap player.Snapshot) string {
	parts := []string{PauseIcon + " PAUSED"}

	if s.isMuted {
		parts = append(parts, "[red]MUTED[-]")
	}
	if snap.SleepMinutes > 0 {
		parts = append(parts, fmt.Sprintf("☾ sleep %dm", snap.SleepMinutes))
	}

	return joinParts(parts)
}

func joinParts(parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	result := parts[0]
	for i := 1; i < len(parts); i++ {
		result += " │ " + parts[i]
	}
	return result
}

func (ui *UI) getPlaybackHint(keyColor string) string {
	snap := ui.engine.Snapshot()

	switch {
	case snap.IsPlaying:
		return fmt.Sprintf("[%s]Space[-] pause", keyColor)
	case snap.State == player.StateReady:
		return fmt.Sprintf("[%s]Space[-] resume", keyColor)
	default:
		return fmt.Sprintf("[%s]Space[-] play", keyColor)
	}
}

func (ui *UI) getHelpText() string {
	keyColor := ui.colors.helpHotkey.String()
	playbackHint := ui.getPlaybackHint(keyColor)

	muteText := "mute"
	if ui.isMuted {
		muteText = "unmute"
	}

	return fmt.Sprintf(" %s  [%s]+/-[-] vol  [%s]m[-] %s  [%s]s[-] sleep  [%s]Tab[-] pages  [%s]?[-] help  [%s]q[-] quit ",
		playbackHint, keyColor, keyColor, muteText, keyColor, keyColor, keyColor, keyColor)
}

func (ui *UI) handleFooterResize(width int) {
	isWide := width >= FooterBreakpoint
	wasWide := ui.lastFooterWidth >= FooterBreakpoint

	if ui.lastFooterWidth > 0 && isWide != wasWide && ui.contentLayout != nil {
		newHeight := FooterHeightWide
		if !isWide {
			newHeight = FooterHeightNarrow
		}
		ui.contentLayout.ResizeItem(ui.helpPanel, newHeight, 0)
	}
	ui.lastFooterWidth = width
}

func (ui *UI) drawWideFooter(screen tcell.Screen, x, y, width, height int, helpText, statusText string) {
	helpWidth := width / 2
	statusWidth := width - helpWidth

	for row := y; row < y+height; row++ {
		for col := x; col < x+helpWidth; col++ {
			screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(ui.colors.helpBackground))
		}
	}

	for row := y; row < y+height; row++ {
		for col := x + helpWidth; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(ui.colors.background))
		}
	}

	centerY := y + height/2
	tview.Print(screen, helpText, x, centerY, helpWidth, tview.AlignCenter, ui.colors.helpForeground)
	tview.Print(screen, statusText, x+helpWidth, centerY, statusWidth-2, tview.AlignRight, ui.colors.foreground)
}

func (ui *UI) drawNarrowFooter(screen tcell.Screen, x, y, width, height int, helpText, statusText string) {
	helpHeight := height / 2
	if helpHeight < 1 {
		helpHeight = 1
	}
	statusHeight := height - helpHeight
	helpBoxEnd := y + helpHeight

	for row := y; row < helpBoxEnd; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(ui.colors.helpBackground))
		}
	}

	for row := helpBoxEnd; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(ui.colors.background))
		}
	}

	helpTextY := y + helpHeight/2
	tview.Print(screen, helpText, x, helpTextY, width, tview.AlignCenter, ui.colors.helpForeground)

	if statusHeight > 0 {
		statusTextY := helpBoxEnd + statusHeight/2
		tview.Print(screen, statusText, x, statusTextY, width-2, tview.AlignRight, ui.colors.foreground)
	}
}

func (ui *UI) createFooter() *tview.Box {
	box := tview.NewBox().SetBackgroundColor(ui.colors.background)

	box.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		ui.handleFooterResize(width)

		helpText := ui.getHelpText()
		statusText := " " + ui.statusRenderer.Render() + " "

		isWide := width >= FooterBreakpoint
		usedHeight := height
		if isWide && height > FooterHeightWide {
			usedHeight = FooterHeightWide
		}

		if isWide {
			ui.drawWideFooter(screen, x, y, width, usedHeight, helpText, statusText)
		} else {
			ui.drawNarrowFooter(screen, x, y, width, height, helpText, statusText)
		}

		return x, y, width, height
	})

	return box
}
