package app

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/ncruces/go-strftime"

	"github.com/pstuifzand/tui-sidebar/internal/config"
	"github.com/pstuifzand/tui-sidebar/internal/dnd"
	"github.com/pstuifzand/tui-sidebar/internal/history"
	"github.com/pstuifzand/tui-sidebar/internal/model"
	"github.com/pstuifzand/tui-sidebar/internal/sidebar"
	"github.com/pstuifzand/tui-sidebar/internal/storage"
	"github.com/pstuifzand/tui-sidebar/internal/theme"
	"github.com/pstuifzand/tui-sidebar/internal/tree"
	"github.com/pstuifzand/tui-sidebar/internal/ui"
	"github.com/pstuifzand/tui-sidebar/internal/watch"
)

const (
	autoSaveDelay   = 5 * time.Second
	statusLifetime  = 3 * time.Second
	keepBackups     = 20
	historyEntries  = 100
	messagesEntries = 100
)

// fileChanged is posted by the watcher goroutine
type fileChanged struct {
	err error
}

// Options are the optional collaborators of an App
type Options struct {
	// Scheduler replaces the timer scheduler, for tests
	Scheduler dnd.Scheduler
	// BackupDir overrides the backup location; "-" disables backups
	BackupDir string
	// HistoryDir overrides the history location; "-" keeps history in memory
	HistoryDir string
	// NoWatch disables reloading the file when it changes on disk
	NoWatch bool
	// Now replaces the clock
	Now func() time.Time
}

// App is the main application controller
type App struct {
	screen   *ui.Screen
	cfg      *config.Config
	store    *storage.JSONStore
	backups  *storage.BackupManager
	doc      *model.Document
	lastSave []byte

	sb        *sidebar.Sidebar
	view      *ui.SidebarView
	search    *ui.SearchField
	mouse     *ui.MouseController
	timers    *ui.TimerScheduler
	command   *ui.CommandMode
	help      *ui.HelpScreen
	overlay   *ui.Overlay
	panelMenu *ui.Menu
	settings  *ui.Menu
	messages  *ui.MessageLogger
	watcher   *watch.Watcher

	keybindings        []KeyBinding
	pendingKeybindings []PendingKeyBinding
	pendingKey         rune

	panel       string
	statusMsg   string
	statusTime  time.Time
	dirty       bool
	dirtyTime   time.Time
	configDirty bool
	quit        bool
	closed      bool
	debugMode   bool
	watchFile   bool
	now         func() time.Time
}

// NewApp creates the terminal screen and the App for filePath
func NewApp(filePath string) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load config, using defaults: %v", err)
		cfg, _ = config.LoadFromFile("")
	}

	screen, err := ui.NewScreenWithTheme(theme.LoadThemeOrDefault(cfg.Theme))
	if err != nil {
		return nil, err
	}
	screen.EnableMouse()

	a, err := New(screen, filePath, cfg, Options{})
	if err != nil {
		screen.Close()
		return nil, err
	}
	return a, nil
}

// New creates an App drawing on screen
func New(screen *ui.Screen, filePath string, cfg *config.Config, opts Options) (*App, error) {
	store := storage.NewJSONStore(filePath)
	doc, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load sidebar: %w", err)
	}
	normalize := false
	for _, p := range tree.Validate(doc.Items) {
		log.Printf("Loaded %s: %s", filePath, p)
		if p.Kind == tree.ProblemDuplicateOrder || p.Kind == tree.ProblemNegativeOrder {
			normalize = true
		}
	}
	if normalize {
		doc.Items = tree.Normalize(doc.Items)
	}

	a := &App{
		screen:    screen,
		cfg:       cfg,
		store:     store,
		doc:       doc,
		help:      ui.NewHelpScreen(),
		overlay:   ui.NewOverlay(),
		messages:  ui.NewMessageLogger(messagesEntries),
		statusMsg: "Ready",
		watchFile: !opts.NoWatch,
		now:       opts.Now,
	}
	if a.now == nil {
		a.now = time.Now
	}
	a.statusTime = a.now()

	if opts.BackupDir != "-" {
		if a.backups, err = storage.NewBackupManager(opts.BackupDir, keepBackups); err != nil {
			log.Printf("Backups disabled: %v", err)
		}
	}

	searchHistory, cmd := a.loadHistories(opts.HistoryDir)
	a.command = cmd
	a.search = ui.NewSearchField(searchHistory, func(q string) {
		a.sb.SetSearch(q)
		a.view.ScrollBy(-a.view.Scroll())
	})
	a.view = ui.NewSidebarView(a.search, cfg.Sidebar.RowHeight)

	scheduler := opts.Scheduler
	if scheduler == nil {
		a.timers = ui.NewTimerScheduler(screen)
		scheduler = a.timers
	}
	a.sb = sidebar.New(a.props(), a.callbacks(), sidebar.Options{Scheduler: scheduler, Viewport: a.view})
	a.view.Attach(a.sb)
	a.view.Layout(screen.Size())

	a.mouse = ui.NewMouseController(a.view, a.sb, ui.MouseActions{
		OpenPanelMenu: a.openPanelMenu,
		OpenSettings:  a.openSettings,
		FocusSearch:   a.search.Start,
	})
	a.panelMenu = ui.NewMenu("Panel", a.sb.SelectPanel)
	a.settings = ui.NewMenu("Settings", func(v string) {
		a.sb.SetPosition(model.ParseSidebarPosition(v))
	})

	a.keybindings = a.InitializeKeybindings()
	a.pendingKeybindings = a.InitializePendingKeybindings()
	a.help.SetKeybindings(a.helpBindings())

	if a.watchFile && store.FileExists() {
		a.startWatcher(filePath)
	}
	return a, nil
}

func (a *App) loadHistories(dir string) (*ui.History, *ui.CommandMode) {
	if dir == "-" {
		return ui.NewHistory(historyEntries), ui.NewCommandMode()
	}
	if dir == "" {
		var err error
		if dir, err = history.DefaultDir(); err != nil {
			log.Printf("History kept in memory: %v", err)
			return ui.NewHistory(historyEntries), ui.NewCommandMode()
		}
	}
	m, err := history.NewManager(dir)
	if err != nil {
		log.Printf("History kept in memory: %v", err)
		return ui.NewHistory(historyEntries), ui.NewCommandMode()
	}
	h, err := ui.NewHistoryWithManager(historyEntries, m, history.SearchFile)
	if err != nil {
		log.Printf("Failed to load search history: %v", err)
	}
	return h, ui.NewCommandModeWithHistory(m)
}

// props builds the sidebar inputs from the document and the config
func (a *App) props() sidebar.Props {
	s := a.cfg.Sidebar
	return sidebar.Props{
		Items:             a.doc.Items,
		Panels:            a.doc.Panels,
		SelectedPanel:     a.panel,
		Position:          model.ParseSidebarPosition(s.Position),
		Width:             s.Width,
		MinWidth:          s.MinWidth,
		MaxWidth:          s.MaxWidth,
		CollapsedWidth:    s.CollapsedWidth,
		Collapsed:         s.Collapsed,
		SearchPlaceholder: s.SearchPlaceholder,
		AutoExpandDelay:   a.cfg.AutoExpandDelay(),
		ResizeStep:        s.ResizeStep,
		ResizeStepLarge:   s.ResizeStepLarge,
	}
}

func (a *App) callbacks() sidebar.Callbacks {
	return sidebar.Callbacks{
		OnItemsChange: func(items []model.Item) {
			a.doc.Items = items
			a.markDirty()
		},
		OnItemSelect: func(item model.Item) {
			a.view.EnsureVisible(item.ID)
		},
		OnPanelChange: func(value string) {
			a.panel = value
			a.SetStatus("Panel: " + a.sb.SelectedPanelLabel())
		},
		OnWidthChange: func(width int) {
			a.cfg.Sidebar.Width = width
			a.configDirty = true
		},
		OnCollapsedChange: func(collapsed bool) {
			a.cfg.Sidebar.Collapsed = collapsed
			a.configDirty = true
		},
		OnPositionChange: func(pos model.SidebarPosition) {
			a.cfg.Sidebar.Position = string(pos)
			a.configDirty = true
			a.SetStatus("Sidebar moved to the " + string(pos))
		},
	}
}

// Run starts the main event loop
func (a *App) Run() error {
	defer a.Close()

	eventChan := make(chan tcell.Event)
	go func() {
		for {
			event := a.screen.PollEvent()
			eventChan <- event
			if event == nil {
				break
			}
		}
	}()

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for !a.quit {
		select {
		case ev := <-eventChan:
			if ev == nil {
				return nil
			}
			a.HandleEvent(ev)
		case <-ticker.C:
			a.Tick()
			a.render()
		}
	}

	return nil
}

// Tick runs the periodic work of the loop: auto-save
func (a *App) Tick() {
	if a.dirty && a.now().Sub(a.dirtyTime) > autoSaveDelay {
		if err := a.Save(); err != nil {
			a.SetStatus("Failed to save: " + err.Error())
		} else {
			a.SetStatus("Saved")
		}
	}
}

// Close stops background work, persists sidebar layout changes and
// releases the screen
func (a *App) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	if a.watcher != nil {
		a.watcher.Stop()
	}
	a.sb.Close()
	if a.timers != nil {
		a.timers.Close()
	}
	if a.configDirty {
		if err := a.cfg.Save(); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
		a.configDirty = false
	}
	if a.screen != nil {
		return a.screen.Close()
	}
	return nil
}

// HandleEvent processes one event from the screen
func (a *App) HandleEvent(ev tcell.Event) {
	if a.timers != nil && a.timers.Dispatch(ev) {
		return
	}

	switch ev := ev.(type) {
	case *tcell.EventInterrupt:
		if fc, ok := ev.Data().(fileChanged); ok {
			a.reload(fc.err)
		}
		return
	case *tcell.EventResize:
		a.screen.Sync()
		a.view.Layout(a.screen.Size())
		return
	case *tcell.EventMouse:
		a.handleMouse(ev)
		return
	case *tcell.EventKey:
		a.handleKey(ev)
	}
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	switch {
	case a.overlay.IsVisible():
		if ev.Buttons()&tcell.Button1 != 0 {
			a.overlay.Hide()
		}
	case a.panelMenu.IsActive():
		a.panelMenu.HandleMouse(ev)
	case a.settings.IsActive():
		a.settings.HandleMouse(ev)
	default:
		if a.search.IsActive() && ev.Buttons()&tcell.Button1 != 0 && !a.mouse.Busy() {
			a.search.Stop()
		}
		a.mouse.Handle(ev)
	}
}

func (a *App) handleKey(ev *tcell.EventKey) {
	if a.debugMode {
		a.SetStatus(fmt.Sprintf("Key: %v | Rune: %q | Modifiers: %v", ev.Key(), ev.Rune(), ev.Modifiers()))
	}

	switch {
	case a.overlay.IsVisible():
		a.overlay.HandleKey(ev)
	case a.panelMenu.IsActive():
		a.panelMenu.HandleKey(ev)
	case a.settings.IsActive():
		a.settings.HandleKey(ev)
	case a.command.IsActive():
		if cmd, done := a.command.HandleKey(ev); done {
			a.handleCommand(cmd)
		}
	case a.search.IsActive():
		a.search.HandleKey(ev)
	default:
		a.handleKeypress(ev)
	}
}

func (a *App) openPanelMenu() {
	if len(a.sb.Panels()) == 0 {
		a.SetStatus("No panels")
		return
	}
	a.panelMenu.Open(ui.PanelOptions(a.sb), a.sb.SelectedPanel())
}

func (a *App) openSettings() {
	a.settings.Open(ui.PositionOptions(), string(a.sb.Position()))
}

func (a *App) markDirty() {
	a.dirty = true
	a.dirtyTime = a.now()
}

// Save writes the document, keeping a backup of the previous file
func (a *App) Save() error {
	if a.backups != nil && a.store.FileExists() {
		if err := a.backups.CreateBackup(a.store.FilePath, a.now()); err != nil {
			log.Printf("Failed to back up %s: %v", a.store.FilePath, err)
		}
	}
	if err := a.store.Save(a.doc); err != nil {
		return err
	}
	data, err := storage.EncodeDocument(a.doc)
	if err == nil {
		a.lastSave = data
	}
	a.dirty = false
	if a.watcher == nil && a.watchFile {
		// The file did not exist when the app started
		a.startWatcher(a.store.FilePath)
	}
	return nil
}

// reload replaces the document with the file on disk after an outside
// change. Our own saves and unchanged content are ignored.
func (a *App) reload(watchErr error) {
	if errors.Is(watchErr, watch.ErrFileRemoved) {
		a.SetStatus("File removed on disk; :w writes it again")
		return
	}
	if watchErr != nil {
		a.SetStatus("Watch error: " + watchErr.Error())
		return
	}

	doc, err := a.store.Load()
	if err != nil {
		a.SetStatus("Reload failed: " + err.Error())
		return
	}
	data, err := storage.EncodeDocument(doc)
	if err != nil || bytes.Equal(data, a.lastSave) {
		return
	}
	current, _ := storage.EncodeDocument(a.doc)
	if bytes.Equal(data, current) {
		return
	}
	if a.dirty {
		a.SetStatus("File changed on disk; :e! discards local changes")
		return
	}
	a.applyDocument(doc)
	a.SetStatus("Reloaded from disk")
}

func (a *App) applyDocument(doc *model.Document) {
	a.doc = doc
	p := a.sb.Props()
	p.Items = doc.Items
	p.Panels = doc.Panels
	a.sb.SetProps(p)
	a.lastSave, _ = storage.EncodeDocument(doc)
	a.dirty = false
}

func (a *App) startWatcher(path string) {
	w, err := watch.New(path,
		watch.WithOnChange(func() {
			_ = a.screen.PostEvent(tcell.NewEventInterrupt(fileChanged{}))
		}),
		watch.WithOnError(func(err error) {
			_ = a.screen.PostEvent(tcell.NewEventInterrupt(fileChanged{err: err}))
		}),
	)
	if err == nil {
		err = w.Start()
	}
	if err != nil {
		log.Printf("Not watching %s: %v", path, err)
		return
	}
	a.watcher = w
}

// SetStatus sets the status message
func (a *App) SetStatus(msg string) {
	a.statusMsg = msg
	a.statusTime = a.now()
	a.messages.Add(msg, a.statusTime)
}

// Quit signals the app to quit
func (a *App) Quit() {
	a.quit = true
}

// SetDebugMode enables or disables debug mode
func (a *App) SetDebugMode(debug bool) {
	a.debugMode = debug
}

// render draws the current state to the screen
func (a *App) render() {
	a.screen.Clear()
	_, height := a.screen.Size()

	a.renderContent()
	a.view.Render(a.screen)

	if a.command.IsActive() {
		a.command.Render(a.screen, height-1)
	} else {
		a.renderStatus()
	}

	menuX, _ := a.view.ContentBounds()
	a.panelMenu.Render(a.screen, a.view.Left()+1, 1)
	a.settings.Render(a.screen, menuX, height-5)
	a.overlay.Render(a.screen)

	a.screen.Show()
}

// renderContent shows the selected item in the main area
func (a *App) renderContent() {
	x, width := a.view.ContentBounds()
	if width <= 2 {
		return
	}
	style := a.screen.ContentStyle()
	x += 2
	width -= 4

	id := a.sb.Selected()
	item, ok := a.sb.Item(id)
	if !ok {
		a.screen.DrawStringLimited(x, 1, "Nothing selected", width, style.Dim(true))
		a.screen.DrawStringLimited(x, 3, "Press ? for keybindings", width, style.Dim(true))
		return
	}

	a.screen.DrawStringLimited(x, 1, item.Name, width, style.Bold(true))
	path := ""
	for _, anc := range tree.NewIndex(a.doc.Items).Ancestors(id) {
		if parent, ok := a.sb.Item(anc); ok {
			path = parent.Name + " / " + path
		}
	}
	if path != "" {
		a.screen.DrawStringLimited(x, 2, path+item.Name, width, style.Dim(true))
	}
	if label := a.sb.SelectedPanelLabel(); label != "" {
		a.screen.DrawStringLimited(x, 4, "Panel: "+label, width, style)
	}
}

func (a *App) renderStatus() {
	_, height := a.screen.Size()
	y := height - 1
	cx, cw := a.view.ContentBounds()
	if cw <= 0 {
		return
	}

	x := cx + 1
	msg := a.statusMsg
	if msg == "Ready" || a.now().Sub(a.statusTime) > statusLifetime {
		msg = ""
	}
	if a.sb.Dragging() {
		if item, ok := a.sb.Item(a.sb.DragState().ActiveID); ok {
			msg = "Moving " + item.Name + " (Esc cancels)"
		}
	}
	x = a.screen.DrawStringLimited(x, y, msg, cw-2, a.screen.StatusMessageStyle())
	if a.dirty {
		a.screen.DrawStringLimited(x+1, y, "(modified)", cx+cw-x-1, a.screen.StatusModifiedStyle())
	}

	clock := strftime.Format(a.cfg.StatusTimeFormat, a.now())
	a.screen.DrawString(cx+cw-ui.StringWidth(clock)-1, y, clock, a.screen.StatusTimeStyle())
}
