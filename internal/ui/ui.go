package ui

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"

	"github.com/bluewaveradio/bluewave-cli/internal/config"
	"github.com/bluewaveradio/bluewave-cli/internal/dining"
	"github.com/bluewaveradio/bluewave-cli/internal/events"
	"github.com/bluewaveradio/bluewave-cli/internal/player"
	"github.com/bluewaveradio/bluewave-cli/internal/weather"
)

const (
	VolumeStep         = 0.05
	HeaderHeight       = 3
	PlayerPanelHeight  = 10
	TabBarHeight       = 1
	FooterHeightWide   = 3 // Wide: 1 row with padding (top + text + bottom)
	FooterHeightNarrow = 6 // Narrow: 2 rows × 3 lines each
	FooterBreakpoint   = 120
	AnimationInterval  = 60 * time.Millisecond
)

// PauseIcon uses platform-specific character (Windows renders ⏸ as emoji)
var PauseIcon = func() string {
	if runtime.GOOS == "windows" {
		return "❚❚"
	}
	return "⏸"
}()

// Tab indices for the content pages.
const (
	TabSchedule = iota
	TabMusicScene
	TabDineOut
	tabCount
)

var tabNames = [tabCount]string{"Schedule", "Music Scene", "Dine Out"}
var tabPageIDs = [tabCount]string{"schedule", "music-scene", "dine-out"}

type UI struct {
	app     *tview.Application
	engine  *player.Engine
	weather *weather.Manager
	events  *events.Manager
	dining  *dining.Manager
	config  *config.Config

	pages         *tview.Pages
	mainLayout    *tview.Flex
	contentLayout *tview.Flex
	playerPanel   *tview.Flex
	trackView     *tview.TextView
	showView      *tview.TextView
	weatherView   *tview.TextView
	volumeView    *tview.Flex
	tabBar        *tview.TextView
	contentPages  *tview.Pages
	scheduleTable *tview.Table
	eventsTable   *tview.Table
	diningTable   *tview.Table
	helpPanel     *tview.Box

	sub         *player.Subscription
	stopUpdates chan struct{}

	mu              sync.Mutex
	currentVolume   float64
	isMuted         bool
	activeTab       int
	lastFooterWidth int
	lastState       player.State

	statusRenderer *StatusRenderer
	colors         struct {
		background       tcell.Color
		foreground       tcell.Color
		borders          tcell.Color
		highlight        tcell.Color
		headerBackground tcell.Color
		tabBackground    tcell.Color
		tabForeground    tcell.Color
		helpBackground   tcell.Color
		helpForeground   tcell.Color
		helpHotkey       tcell.Color
		sponsorTag       tcell.Color
		modalBackground  tcell.Color
	}
}

// NewUI builds the terminal interface around an already constructed
// engine and directory managers.
func NewUI(engine *player.Engine, weatherMgr *weather.Manager, eventsMgr *events.Manager, diningMgr *dining.Manager, cfg *config.Config) *UI {
	ui := &UI{
		app:           tview.NewApplication(),
		engine:        engine,
		weather:       weatherMgr,
		events:        eventsMgr,
		dining:        diningMgr,
		config:        cfg,
		stopUpdates:   make(chan struct{}),
		currentVolume: cfg.Volume,
	}

	ui.colors.background = config.GetColor(cfg.Theme.Background)
	ui.colors.foreground = config.GetColor(cfg.Theme.Foreground)
	ui.colors.borders = config.GetColor(cfg.Theme.Borders)
	ui.colors.highlight = config.GetColor(cfg.Theme.Highlight)
	ui.colors.headerBackground = config.GetColor(cfg.Theme.HeaderBackground)
	ui.colors.tabBackground = config.GetColor(cfg.Theme.TabBackground)
	ui.colors.tabForeground = config.GetColor(cfg.Theme.TabForeground)
	ui.colors.helpBackground = config.GetColor(cfg.Theme.HelpBackground)
	ui.colors.helpForeground = config.GetColor(cfg.Theme.HelpForeground)
	ui.colors.helpHotkey = config.GetColor(cfg.Theme.HelpHotkey)
	ui.colors.sponsorTag = config.GetColor(cfg.Theme.SponsorTag)
	ui.colors.modalBackground = config.GetColor(cfg.Theme.ModalBackground)

	engine.SetVolume(cfg.Volume)
	log.Debug().Float64("volume", cfg.Volume).Msg("Loaded volume from config")

	ui.statusRenderer = NewStatusRenderer(engine)
	ui.statusRenderer.SetPrimaryColor(ui.colors.highlight.String())

	return ui
}

// SaveConfig persists volume, units, and favorites.
func (ui *UI) SaveConfig() {
	ui.mu.Lock()
	if !ui.isMuted {
		ui.config.Volume = ui.currentVolume
	}
	ui.mu.Unlock()

	ui.config.UseMetric = ui.weather.UseMetric()
	ui.config.FavoriteEvents = ui.events.FavoriteIDs()
	ui.config.FavoriteRestaurants = ui.dining.FavoriteIDs()

	if err := ui.config.Save(); err != nil {
		log.Error().Err(err).Msg("Failed to save config")
	}
}

func (ui *UI) safeCloseChannel() {
	ui.mu.Lock()
	defer ui.mu.Unlock()

	if ui.stopUpdates != nil {
		select {
		case <-ui.stopUpdates:
			// Already closed
		default:
			close(ui.stopUpdates)
		}
		ui.stopUpdates = nil
	}
}

func (ui *UI) stop() {
	ui.weather.StopPeriodicRefresh()
	ui.SaveConfig()
	ui.safeCloseChannel()
	ui.app.Stop()
}

// Shutdown stops the UI gracefully from external callers (e.g., signal handlers).
func (ui *UI) Shutdown() {
	ui.app.QueueUpdateDraw(func() {
		ui.stop()
	})
}

func (ui *UI) Run() error {
	ui.setupUI()
	ui.configureScreen()

	ui.sub = ui.engine.Subscribe()
	ui.startUpdates()

	go ui.refreshDirectories()
	ui.weather.StartPeriodicRefresh(weather.RefreshInterval, ui.onWeatherRefreshed)

	if ui.config.Autostart {
		log.Debug().Msg("Autostart enabled, starting playback")
		ui.engine.Play()
	}

	ui.app.SetRoot(ui.pages, true).EnableMouse(true)
	ui.app.SetFocus(ui.scheduleTable)
	return ui.app.Run()
}

func (ui *UI) configureScreen() {
	bgStyle := tcell.StyleDefault.Background(ui.colors.background)
	ui.app.SetBeforeDrawFunc(func(screen tcell.Screen) bool {
		screen.SetStyle(bgStyle)
		screen.Clear()
		return false
	})

	var titleSet sync.Once
	ui.app.SetAfterDrawFunc(func(screen tcell.Screen) {
		titleSet.Do(func() { screen.SetTitle(config.AppName) })
	})
}

// refreshDirectories pulls fresh weather, events, and restaurant data
// in the background. Failures keep the cached or built-in listings.
func (ui *UI) refreshDirectories() {
	if err := ui.weather.Fetch(); err != nil {
		log.Warn().Err(err).Msg("Initial weather fetch failed")
	}
	ui.app.QueueUpdateDraw(func() {
		ui.updateWeatherView()
	})

	if err := ui.events.Fetch(); err != nil {
		log.Warn().Err(err).Msg("Music scene fetch failed, keeping cached listings")
	}
	if err := ui.dining.Fetch(); err != nil {
		log.Warn().Err(err).Msg("Restaurant fetch failed, keeping cached listings")
	}
	ui.app.QueueUpdateDraw(func() {
		ui.refreshEventsTable()
		ui.refreshDiningTable()
	})
}

func (ui *UI) setupUI() {
	header := ui.createHeader()
	ui.playerPanel = ui.createPlayerPanel()
	ui.tabBar = ui.createTabBar()
	ui.contentPages = ui.createContentPages()
	ui.helpPanel = ui.createFooter()

	ui.contentLayout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(header, HeaderHeight, 0, false).
		AddItem(nil, 1, 0, false).
		AddItem(ui.playerPanel, PlayerPanelHeight, 0, false).
		AddItem(nil, 1, 0, false).
		AddItem(ui.tabBar, TabBarHeight, 0, false).
		AddItem(ui.contentPages, 0, 1, true).
		AddItem(ui.helpPanel, FooterHeightWide, 0, false)
	ui.contentLayout.SetBackgroundColor(ui.colors.background)

	wrapper := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(nil, 3, 0, false).
		AddItem(ui.contentLayout, 0, 1, true).
		AddItem(nil, 3, 0, false)
	wrapper.SetBackgroundColor(ui.colors.background)

	ui.mainLayout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 1, 0, false).
		AddItem(wrapper, 0, 1, true).
		AddItem(nil, 1, 0, false)
	ui.mainLayout.SetBackgroundColor(ui.colors.background)

	ui.pages = tview.NewPages().
		AddPage("main", ui.mainLayout, true, true)
	ui.pages.SetBackgroundColor(ui.colors.background)

	ui.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if ui.pages.HasPage("modal") || ui.pages.HasPage("sleep-modal") || ui.pages.HasPage("error-modal") {
			return event
		}
		return ui.globalInputHandler(event)
	})
}

func (ui *UI) createHeader() tview.Primitive {
	titleView := tview.NewTextView()
	titleView.SetText(" " + config.AppName + " · " + config.StationLocation)
	titleView.SetTextAlign(tview.AlignLeft)
	titleView.SetTextColor(ui.colors.foreground)
	titleView.SetBackgroundColor(ui.colors.headerBackground)

	ui.weatherView = tview.NewTextView()
	ui.weatherView.SetDynamicColors(true)
	ui.weatherView.SetTextAlign(tview.AlignRight)
	ui.weatherView.SetTextColor(ui.colors.foreground)
	ui.weatherView.SetBackgroundColor(ui.colors.headerBackground)
	ui.updateWeatherView()

	textFlex := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(titleView, 0, 1, false).
		AddItem(ui.weatherView, 24, 0, false)
	textFlex.SetBackgroundColor(ui.colors.headerBackground)

	topSpacer := tview.NewBox().SetBackgroundColor(ui.colors.headerBackground)
	bottomSpacer := tview.NewBox().SetBackgroundColor(ui.colors.headerBackground)
	leftSpacer := tview.NewBox().SetBackgroundColor(ui.colors.headerBackground)
	rightSpacer := tview.NewBox().SetBackgroundColor(ui.colors.headerBackground)

	textWithPadding := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(leftSpacer, 1, 0, false).
		AddItem(textFlex, 0, 1, false).
		AddItem(rightSpacer, 1, 0, false)
	textWithPadding.SetBackgroundColor(ui.colors.headerBackground)

	headerFlex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(topSpacer, 1, 0, false).
		AddItem(textWithPadding, 1, 0, false).
		AddItem(bottomSpacer, 1, 0, false)
	headerFlex.SetBackgroundColor(ui.colors.headerBackground)

	return headerFlex
}

func (ui *UI) updateWeatherView() {
	if ui.weatherView == nil {
		return
	}

	w, ok := ui.weather.Current()
	if !ok {
		ui.weatherView.SetText("-- ")
		return
	}
	ui.weatherView.SetText(fmt.Sprintf("%s %s %s ", w.Glyph(), ui.weather.FormattedTemperature(), w.Condition))
}

func (ui *UI) onWeatherRefreshed(weather.Weather) {
	ui.app.QueueUpdateDraw(func() {
		ui.updateWeatherView()
	})
}

// startUpdates drives the spinner animation and applies engine state
// changes to the player panel.
func (ui *UI) startUpdates() {
	ui.mu.Lock()
	stopCh := ui.stopUpdates
	ui.mu.Unlock()

	go func() {
		ticker := time.NewTicker(AnimationInterval)
		defer ticker.Stop()

		for {
			select {
			case <-stopCh:
				return
			case snap, ok := <-ui.sub.C:
				if !ok {
					return
				}
				ui.mu.Lock()
				justFailed := snap.State == player.StateFailed && ui.lastState != player.StateFailed
				ui.lastState = snap.State
				ui.mu.Unlock()
				ui.app.QueueUpdateDraw(func() {
					ui.updateNowPlaying(snap)
					if justFailed {
						ui.showPlaybackErrorModal(friendlyErrorMessage(snap.LastError))
					}
				})
			case <-ticker.C:
				ui.statusRenderer.AdvanceAnimation()
				ui.app.QueueUpdateDraw(func() {
					ui.updateShowView()
				})
			}
		}
	}()
}

func (ui *UI) globalInputHandler(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyRune:
		switch event.Rune() {
		case 'q', 'Q':
			ui.stop()
			return nil
		case ' ':
			ui.engine.TogglePlayPause()
			return nil
		case '+', '=':
			ui.adjustVolume(VolumeStep)
			return nil
		case '-', '_':
			ui.adjustVolume(-VolumeStep)
			return nil
		case 'm', 'M':
			ui.toggleMute()
			return nil
		case 's', 'S':
			ui.showSleepTimerModal()
			return nil
		case 'u', 'U':
			ui.toggleUnits()
			return nil
		case 'f', 'F':
			ui.toggleFavorite()
			return nil
		case '1':
			ui.selectTab(TabSchedule)
			return nil
		case '2':
			ui.selectTab(TabMusicScene)
			return nil
		case '3':
			ui.selectTab(TabDineOut)
			return nil
		case '?':
			ui.showHelpModal()
			return nil
		case 'a', 'A':
			ui.showAboutModal()
			return nil
		}
	case tcell.KeyTab:
		ui.selectTab((ui.activeTab + 1) % tabCount)
		return nil
	case tcell.KeyBacktab:
		ui.selectTab((ui.activeTab + tabCount - 1) % tabCount)
		return nil
	case tcell.KeyEscape:
		ui.stop()
		return nil
	case tcell.KeyRight:
		// Right arrow - volume up (hidden shortcut)
		ui.adjustVolume(VolumeStep)
		return nil
	case tcell.KeyLeft:
		// Left arrow - volume down (hidden shortcut)
		ui.adjustVolume(-VolumeStep)
		return nil
	}
	return event
}

func (ui *UI) toggleUnits() {
	ui.weather.ToggleUnits()
	ui.updateWeatherView()
	ui.SaveConfig()
}
