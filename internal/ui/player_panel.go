package ui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/bluewaveradio/bluewave-cli/internal/config"
	"github.com/bluewaveradio/bluewave-cli/internal/player"
	"github.com/bluewaveradio/bluewave-cli/internal/schedule"
)

func (ui *UI) createPlayerPanel() *tview.Flex {
	stationLabel := tview.NewTextView()
	stationLabel.SetText(" Station:")
	stationLabel.SetTextColor(ui.colors.foreground)
	stationLabel.SetBackgroundColor(ui.colors.background)
	stationLabel.SetWrap(false)

	stationNameView := tview.NewTextView()
	stationNameView.SetDynamicColors(true)
	stationNameView.SetText(fmt.Sprintf(" [%s]%s[-]",
		ui.colors.highlight.String(),
		config.StationName))
	stationNameView.SetTextColor(ui.colors.highlight)
	stationNameView.SetBackgroundColor(ui.colors.background)
	stationNameView.SetWrap(false)
	stationNameView.SetTextStyle(tcell.StyleDefault.Background(ui.colors.background).Attributes(tcell.AttrBold))

	playingLabel := tview.NewTextView()
	playingLabel.SetText(" Playing:")
	playingLabel.SetTextColor(ui.colors.foreground)
	playingLabel.SetBackgroundColor(ui.colors.background)
	playingLabel.SetWrap(false)

	ui.trackView = tview.NewTextView()
	ui.trackView.SetDynamicColors(true)
	ui.trackView.SetTextColor(ui.colors.highlight)
	ui.trackView.SetBackgroundColor(ui.colors.background)
	ui.trackView.SetWrap(true)
	ui.trackView.SetTextStyle(tcell.StyleDefault.Background(ui.colors.background).Attributes(tcell.AttrBold))
	ui.updateNowPlaying(ui.engine.Snapshot())

	showLabel := tview.NewTextView()
	showLabel.SetText(" On Air:")
	showLabel.SetTextColor(ui.colors.foreground)
	showLabel.SetBackgroundColor(ui.colors.background)
	showLabel.SetWrap(false)

	ui.showView = tview.NewTextView()
	ui.showView.SetDynamicColors(true)
	ui.showView.SetTextColor(ui.colors.foreground)
	ui.showView.SetBackgroundColor(ui.colors.background)
	ui.showView.SetWrap(true)
	ui.updateShowView()

	infoContent := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(stationLabel, 1, 0, false).
		AddItem(stationNameView, 1, 0, false).
		AddItem(nil, 1, 0, false).
		AddItem(playingLabel, 1, 0, false).
		AddItem(ui.trackView, 1, 0, false).
		AddItem(nil, 1, 0, false).
		AddItem(showLabel, 1, 0, false).
		AddItem(ui.showView, 0, 1, false)
	infoContent.SetBackgroundColor(ui.colors.background)

	ui.volumeView = ui.createGraphicalVolumeBar()

	contentFlex := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(infoContent, 0, 1, false).
		AddItem(ui.volumeView, 7, 0, false)
	contentFlex.SetBackgroundColor(ui.colors.background)

	contentWithPadding := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(nil, 2, 0, false).
		AddItem(contentFlex, 0, 1, false).
		AddItem(nil, 2, 0, false)
	contentWithPadding.SetBackgroundColor(ui.colors.background)

	panel := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(contentWithPadding, 0, 1, false)
	panel.SetBackgroundColor(ui.colors.background)
	return panel
}

// updateNowPlaying renders the track line from an engine snapshot.
func (ui *UI) updateNowPlaying(snap player.Snapshot) {
	if ui.trackView == nil {
		return
	}

	line := snap.Track
	if snap.Artist != "" {
		line = snap.Artist + " - " + snap.Track
	}
	if snap.SleepMinutes > 0 {
		line = fmt.Sprintf("%s  [%s]☾ %dm[-]", line, ui.colors.helpHotkey.String(), snap.SleepMinutes)
	}
	ui.trackView.SetText(fmt.Sprintf(" [%s]%s[-]", ui.colors.highlight.String(), line))
}

// updateShowView renders the currently airing show, or the next one
// scheduled for today.
func (ui *UI) updateShowView() {
	if ui.showView == nil {
		return
	}

	now := time.Now()
	if show, ok := schedule.Current(now); ok {
		text := fmt.Sprintf(" [%s]%s[-]  %s", ui.colors.highlight.String(), show.Name, show.TimeRange())
		if show.Sponsor != "" {
			text += fmt.Sprintf("  [%s::d]brought to you by %s[-::-]", ui.colors.foreground.String(), show.Sponsor)
		}
		ui.showView.SetText(text)
		return
	}

	if next, ok := nextShowToday(now); ok {
		ui.showView.SetText(fmt.Sprintf(" Up next: %s at %s", next.Name, next.StartTime))
		return
	}
	ui.showView.SetText(" Island music around the clock")
}

// nextShowToday finds the first show later today, if any.
func nextShowToday(now time.Time) (schedule.Show, bool) {
	var best schedule.Show
	var bestStart time.Time
	found := false

	for _, show := range schedule.ShowsOn(now.Weekday()) {
		start, ok := show.StartsAt(now)
		if !ok || !start.After(now) {
			continue
		}
		if !found || start.Before(bestStart) {
			best = show
			bestStart = start
			found = true
		}
	}
	return best, found
}
