package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/bluewaveradio/bluewave-cli/internal/config"
)

func friendlyErrorMessage(errStr string) string {
	if strings.Contains(errStr, "no such host") {
		return "Unable to reach the station.\nPlease check your internet connection."
	}
	if strings.Contains(errStr, "connection refused") {
		return "Connection refused by server.\nThe stream may be temporarily offline."
	}
	if strings.Contains(errStr, "timeout") || strings.Contains(errStr, "deadline exceeded") {
		return "Connection timed out.\nPlease check your internet connection."
	}
	if strings.Contains(errStr, "network is unreachable") || strings.Contains(errStr, "network read error") {
		return "Network is unreachable.\nPlease check your internet connection."
	}
	if strings.Contains(errStr, "stream ended unexpectedly") {
		return "The stream dropped.\nPress Space to tune back in."
	}
	if strings.Contains(errStr, "status 401") {
		return "Stream access denied (401)."
	}
	if strings.Contains(errStr, "status 403") {
		return "Stream access forbidden (403)."
	}
	if strings.Contains(errStr, "status 404") {
		return "Stream not found (404)."
	}

	if idx := strings.Index(errStr, ": dial"); idx > 0 {
		return errStr[:idx]
	}
	if len(errStr) > 100 {
		return errStr[:100] + "..."
	}
	return errStr
}

func (ui *UI) showPlaybackErrorModal(message string) {
	if message == "" {
		message = "Playback stopped unexpectedly."
	}

	doDismiss := func() {
		ui.pages.RemovePage("error-modal")
		ui.focusContent()
	}

	doRetry := func() {
		ui.pages.RemovePage("error-modal")
		ui.focusContent()
		ui.engine.Play()
	}

	messageView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(fmt.Sprintf("\n[::b]Playback Error[::-]\n\n%s", message))
	messageView.SetTextColor(ui.colors.foreground)
	messageView.SetBackgroundColor(ui.colors.modalBackground)

	hintView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText("[::d]Press [::b]R[::d] to retry  •  Press [::b]Esc[::d] to dismiss[::-]")
	hintView.SetTextColor(tcell.ColorDarkGray)
	hintView.SetBackgroundColor(ui.colors.modalBackground)

	content := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(messageView, 0, 1, false).
		AddItem(hintView, 1, 0, false).
		AddItem(nil, 1, 0, false)
	content.SetBackgroundColor(ui.colors.modalBackground)

	frame := tview.NewFrame(content).
		SetBorders(0, 0, 1, 1, 1, 1)
	frame.SetBorder(true).
		SetBorderColor(ui.colors.highlight).
		SetBackgroundColor(ui.colors.modalBackground).
		SetTitle(" Error ").
		SetTitleColor(ui.colors.highlight).
		SetTitleAlign(tview.AlignCenter)

	modalWidth := 50
	modalHeight := 10

	lines := strings.Count(message, "\n") + 1
	if lines > 2 {
		modalHeight += lines - 2
	}
	if modalHeight > 15 {
		modalHeight = 15
	}

	modal := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(frame, modalHeight, 0, true).
			AddItem(nil, 0, 1, false),
			modalWidth, 0, true).
		AddItem(nil, 0, 1, false)
	modal.SetBackgroundColor(ui.colors.background)

	modal.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEscape, tcell.KeyEnter:
			doDismiss()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'r' || event.Rune() == 'R' {
				doRetry()
				return nil
			}
		}
		return event
	})

	ui.pages.AddPage("error-modal", modal, true, true)
	ui.app.SetFocus(modal)
}

// focusContent returns keyboard focus to the active tab's table after
// a modal closes.
func (ui *UI) focusContent() {
	switch ui.activeTab {
	case TabMusicScene:
		ui.app.SetFocus(ui.eventsTable)
	case TabDineOut:
		ui.app.SetFocus(ui.diningTable)
	default:
		ui.app.SetFocus(ui.scheduleTable)
	}
}

func (ui *UI) showSleepTimerModal() {
	doDismiss := func() {
		ui.pages.RemovePage("sleep-modal")
		ui.focusContent()
	}

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetBackgroundColor(ui.colors.modalBackground)
	list.SetMainTextColor(ui.colors.foreground)
	list.SetSelectedBackgroundColor(ui.colors.highlight)
	list.SetSelectedTextColor(ui.colors.background)

	armed := ui.engine.SleepTimerRemaining()
	for _, minutes := range config.SleepTimerOptions {
		label := "Off"
		if minutes > 0 {
			label = fmt.Sprintf("%d minutes", minutes)
		}
		if minutes == armed {
			label += "  ✓"
		}

		m := minutes
		list.AddItem(" "+label, "", 0, func() {
			ui.engine.SetSleepTimer(m)
			doDismiss()
		})
	}

	frame := tview.NewFrame(list).
		SetBorders(1, 0, 0, 0, 2, 2)
	frame.SetBorder(true).
		SetBorderColor(ui.colors.borders).
		SetBackgroundColor(ui.colors.modalBackground).
		SetTitle(" Sleep Timer ").
		SetTitleColor(ui.colors.highlight).
		SetTitleAlign(tview.AlignCenter)

	modalWidth := 30
	modalHeight := len(config.SleepTimerOptions) + 4

	modal := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(frame, modalHeight, 0, true).
			AddItem(nil, 0, 1, false),
			modalWidth, 0, true).
		AddItem(nil, 0, 1, false)
	modal.SetBackgroundColor(ui.colors.background)

	modal.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			doDismiss()
			return nil
		}
		return event
	})

	ui.pages.AddPage("sleep-modal", modal, true, true)
	ui.app.SetFocus(list)
}

func (ui *UI) showHelpModal() {
	keyColor := ui.colors.helpHotkey.String()

	configPath, _ := config.GetConfigPath()

	helpText := fmt.Sprintf(`[::b]KEYBOARD SHORTCUTS[::-]

[%s]PLAYBACK[-]
  [%s]Space[-]      Play / Pause the live stream
  [%s]s[-]          Sleep timer

[%s]VOLUME[-]
  [%s]+[-] / [%s]-[-]      Volume up / down
  [%s]←[-] / [%s]→[-]      Volume up / down
  [%s]m[-]          Mute / Unmute

[%s]PAGES[-]
  [%s]1[-] / [%s]2[-] / [%s]3[-]  Schedule / Music Scene / Dine Out
  [%s]Tab[-]        Next page
  [%s]↑[-] / [%s]↓[-]      Navigate listings
  [%s]f[-]          Toggle favorite

[%s]APPLICATION[-]
  [%s]u[-]          Switch °C / °F
  [%s]?[-]          Show this help
  [%s]a[-]          About %s
  [%s]q[-] / [%s]Esc[-]    Quit

[%s]CONFIG[-]: %s`,
		keyColor,
		keyColor, keyColor,
		keyColor,
		keyColor, keyColor, keyColor, keyColor, keyColor,
		keyColor,
		keyColor, keyColor, keyColor, keyColor, keyColor, keyColor, keyColor,
		keyColor,
		keyColor, keyColor, keyColor, config.AppName, keyColor, keyColor,
		keyColor, configPath)

	ui.showInfoModal("Help", helpText)
}

func (ui *UI) showAboutModal() {
	linkColor := "skyblue"
	dimColor := "gray"

	aboutText := fmt.Sprintf(`[::b]%s[::-]
[%s]%s[-]

Version: %s
Project: [%s:::%s]%s[-:::-]
License: MIT

───────────────────────────────────────────

[%s]Broadcasting from[-] [::b]%s[::-]
%s • [%s:::%s]%s[-:::-]`,
		config.AppName,
		dimColor, config.AppTagline,
		config.AppVersion,
		linkColor, config.AppProjectURL, config.AppProjectShort,
		dimColor, config.StationName,
		config.StationLocation, linkColor, config.AppStationURL, config.AppStationShort)

	ui.showInfoModal("About", aboutText)
}

func (ui *UI) showInfoModal(title, message string) {
	doDismiss := func() {
		ui.pages.RemovePage("modal")
		ui.focusContent()
	}

	messageView := tview.NewTextView().
		SetTextAlign(tview.AlignLeft).
		SetDynamicColors(true).
		SetWordWrap(true).
		SetText("\n" + message)
	messageView.SetTextColor(ui.colors.foreground)
	messageView.SetBackgroundColor(ui.colors.modalBackground)

	hintView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText("[::d]Press any key to close[::-]")
	hintView.SetTextColor(tcell.ColorDarkGray)
	hintView.SetBackgroundColor(ui.colors.modalBackground)

	content := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(messageView, 0, 1, false).
		AddItem(nil, 2, 0, false).
		AddItem(hintView, 1, 0, false).
		AddItem(nil, 1, 0, false)
	content.SetBackgroundColor(ui.colors.modalBackground)

	frame := tview.NewFrame(content).
		SetBorders(1, 0, 1, 1, 2, 2)
	frame.SetBorder(true).
		SetBorderColor(ui.colors.borders).
		SetBackgroundColor(ui.colors.modalBackground).
		SetTitle(" " + title + " ").
		SetTitleColor(ui.colors.highlight).
		SetTitleAlign(tview.AlignCenter)

	lines := strings.Count(message, "\n") + 1
	modalWidth := 48
	modalHeight := lines + 10
	if modalHeight > 38 {
		modalHeight = 38
	}

	modal := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(frame, modalHeight, 0, true).
			AddItem(nil, 0, 1, false),
			modalWidth, 0, true).
		AddItem(nil, 0, 1, false)
	modal.SetBackgroundColor(ui.colors.background)

	modal.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		doDismiss()
		return nil
	})

	ui.pages.AddPage("modal", modal, true, true)
	ui.app.SetFocus(modal)
}
