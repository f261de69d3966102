package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/bluewaveradio/bluewave-cli/internal/schedule"
)

func (ui *UI) createTabBar() *tview.TextView {
	tabBar := tview.NewTextView()
	tabBar.SetDynamicColors(true)
	tabBar.SetBackgroundColor(ui.colors.tabBackground)
	ui.renderTabBar(tabBar)
	return tabBar
}

func (ui *UI) renderTabBar(tabBar *tview.TextView) {
	var sb strings.Builder
	for i, name := range tabNames {
		if i == ui.activeTab {
			sb.WriteString(fmt.Sprintf(" [%s::b] %d %s [-::-]", ui.colors.highlight.String(), i+1, name))
		} else {
			sb.WriteString(fmt.Sprintf(" [%s] %d %s [-]", ui.colors.tabForeground.String(), i+1, name))
		}
	}
	tabBar.SetText(sb.String())
}

func (ui *UI) createContentPages() *tview.Pages {
	ui.scheduleTable = ui.createScheduleTable()
	ui.eventsTable = ui.createDirectoryTable()
	ui.diningTable = ui.createDirectoryTable()
	ui.refreshEventsTable()
	ui.refreshDiningTable()

	pages := tview.NewPages().
		AddPage(tabPageIDs[TabSchedule], ui.scheduleTable, true, true).
		AddPage(tabPageIDs[TabMusicScene], ui.eventsTable, true, false).
		AddPage(tabPageIDs[TabDineOut], ui.diningTable, true, false)
	pages.SetBackgroundColor(ui.colors.background)
	return pages
}

func (ui *UI) selectTab(tab int) {
	if tab < 0 || tab >= tabCount {
		return
	}
	ui.activeTab = tab
	ui.renderTabBar(ui.tabBar)
	ui.contentPages.SwitchToPage(tabPageIDs[tab])

	switch tab {
	case TabSchedule:
		ui.app.SetFocus(ui.scheduleTable)
	case TabMusicScene:
		ui.app.SetFocus(ui.eventsTable)
	case TabDineOut:
		ui.app.SetFocus(ui.diningTable)
	}
}

func (ui *UI) createDirectoryTable() *tview.Table {
	table := tview.NewTable()
	table.SetSelectable(true, false)
	table.SetBackgroundColor(ui.colors.background)
	table.SetSelectedStyle(tcell.StyleDefault.
		Background(ui.colors.highlight).
		Foreground(ui.colors.background))
	table.SetFixed(1, 0)
	return table
}

func (ui *UI) headerCell(text string) *tview.TableCell {
	return tview.NewTableCell(" " + text + " ").
		SetTextColor(ui.colors.highlight).
		SetAttributes(tcell.AttrBold).
		SetSelectable(false)
}

func (ui *UI) textCell(text string) *tview.TableCell {
	return tview.NewTableCell(" " + text + " ").
		SetTextColor(ui.colors.foreground)
}

// createScheduleTable lists the full weekly lineup grouped by weekday,
// with the show currently on air highlighted.
func (ui *UI) createScheduleTable() *tview.Table {
	table := tview.NewTable()
	table.SetSelectable(true, false)
	table.SetBackgroundColor(ui.colors.background)
	table.SetSelectedStyle(tcell.StyleDefault.
		Background(ui.colors.highlight).
		Foreground(ui.colors.background))

	now := time.Now()
	row := 0
	for i := 0; i < 7; i++ {
		day := time.Weekday((int(now.Weekday()) + i) % 7)
		shows := schedule.ShowsOn(day)
		if len(shows) == 0 {
			continue
		}

		dayLabel := day.String()
		if i == 0 {
			dayLabel = "Today · " + dayLabel
		}
		dayCell := tview.NewTableCell(" " + dayLabel + " ").
			SetTextColor(ui.colors.highlight).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false)
		table.SetCell(row, 0, dayCell)
		row++

		for _, show := range shows {
			timeCell := ui.textCell(show.TimeRange())
			nameCell := ui.textCell(show.Name)
			if i == 0 && show.AiringAt(now) {
				timeCell.SetTextColor(ui.colors.highlight).SetAttributes(tcell.AttrBold)
				nameCell.SetTextColor(ui.colors.highlight).SetAttributes(tcell.AttrBold)
			}

			sponsor := ""
			if show.Sponsor != "" {
				sponsor = "brought to you by " + show.Sponsor
			}
			sponsorCell := ui.textCell(sponsor)
			sponsorCell.SetTextColor(ui.colors.sponsorTag)

			table.SetCell(row, 0, timeCell)
			table.SetCell(row, 1, nameCell)
			table.SetCell(row, 2, sponsorCell)
			row++
		}

		// Blank separator between days
		table.SetCell(row, 0, tview.NewTableCell("").SetSelectable(false))
		row++
	}

	return table
}

func (ui *UI) refreshEventsTable() {
	if ui.eventsTable == nil {
		return
	}
	ui.eventsTable.Clear()

	ui.eventsTable.SetCell(0, 0, ui.headerCell(""))
	ui.eventsTable.SetCell(0, 1, ui.headerCell("When"))
	ui.eventsTable.SetCell(0, 2, ui.headerCell("Event"))
	ui.eventsTable.SetCell(0, 3, ui.headerCell("Venue"))
	ui.eventsTable.SetCell(0, 4, ui.headerCell("Area"))
	ui.eventsTable.SetCell(0, 5, ui.headerCell("Genre"))

	for i, ev := range ui.events.Upcoming(time.Now()) {
		row := i + 1

		fav := " "
		favCell := tview.NewTableCell(" " + fav + " ").SetTextColor(ui.colors.highlight)
		if ui.events.IsFavorite(ev.ID) {
			favCell.SetText(" ★ ")
		}
		favCell.SetReference(ev.ID)

		ui.eventsTable.SetCell(row, 0, favCell)
		ui.eventsTable.SetCell(row, 1, ui.textCell(ev.FormattedDate()))
		ui.eventsTable.SetCell(row, 2, ui.textCell(ev.Title))
		ui.eventsTable.SetCell(row, 3, ui.textCell(ev.Venue))
		ui.eventsTable.SetCell(row, 4, ui.textCell(ev.Area))
		ui.eventsTable.SetCell(row, 5, ui.textCell(ev.Genre))
	}
}

func (ui *UI) refreshDiningTable() {
	if ui.diningTable == nil {
		return
	}
	ui.diningTable.Clear()

	ui.diningTable.SetCell(0, 0, ui.headerCell(""))
	ui.diningTable.SetCell(0, 1, ui.headerCell("Restaurant"))
	ui.diningTable.SetCell(0, 2, ui.headerCell("Cuisine"))
	ui.diningTable.SetCell(0, 3, ui.headerCell("Area"))
	ui.diningTable.SetCell(0, 4, ui.headerCell("Contact"))

	for i, r := range ui.dining.Restaurants() {
		row := i + 1

		favCell := tview.NewTableCell("   ").SetTextColor(ui.colors.highlight)
		if ui.dining.IsFavorite(r.ID) {
			favCell.SetText(" ★ ")
		}
		favCell.SetReference(r.ID)

		name := r.Name
		nameCell := ui.textCell(name)
		if r.Sponsored {
			nameCell.SetText(" " + name + " ◆ ")
			nameCell.SetTextColor(ui.colors.sponsorTag)
		}

		contact := r.Phone
		if contact == "" {
			contact = r.Email
		}

		ui.diningTable.SetCell(row, 0, favCell)
		ui.diningTable.SetCell(row, 1, nameCell)
		ui.diningTable.SetCell(row, 2, ui.textCell(r.CuisineString()))
		ui.diningTable.SetCell(row, 3, ui.textCell(string(r.Area)))
		ui.diningTable.SetCell(row, 4, ui.textCell(contact))
	}
}

// toggleFavorite flips the favorite flag for the selected row on the
// active directory tab. The schedule tab has no favorites.
func (ui *UI) toggleFavorite() {
	switch ui.activeTab {
	case TabMusicScene:
		id, ok := selectedReference(ui.eventsTable)
		if !ok {
			return
		}
		ui.events.ToggleFavorite(id)
		ui.refreshEventsTable()
	case TabDineOut:
		id, ok := selectedReference(ui.diningTable)
		if !ok {
			return
		}
		ui.dining.ToggleFavorite(id)
		ui.refreshDiningTable()
	default:
		return
	}
	ui.SaveConfig()
}

func selectedReference(table *tview.Table) (string, bool) {
	row, _ := table.GetSelection()
	cell := table.GetCell(row, 0)
	if cell == nil {
		return "", false
	}
	id, ok := cell.GetReference().(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
