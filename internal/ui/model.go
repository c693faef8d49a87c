package ui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"qkart/internal/config"
	"qkart/internal/domain"
	"qkart/internal/eventbus"
	"qkart/internal/search"
	"qkart/internal/ui/commands"
	"qkart/internal/ui/form"
	"qkart/internal/ui/handlers"
	"qkart/internal/ui/input"
	inputtypes "qkart/internal/ui/input/types"
	"qkart/internal/ui/logic"
	"qkart/internal/ui/state"
	"qkart/internal/ui/viewmodels"
	"qkart/internal/ui/views"
)

// Searcher is the search pipeline as driven by the view
type Searcher interface {
	OnInput(text string)
	LoadAll()
	Result() search.Result
}

// Model represents the UI state
type Model struct {
	bus      eventbus.EventBus
	config   *config.Config
	state    *state.AppState // centralized state
	search   Searcher
	sessions commands.Sessions
	logger   *slog.Logger

	// UI-specific state not in AppState
	width       int
	height      int
	help        help.Model
	keys        KeyMap
	spinner     spinner.Model
	form        *form.Form // login or register form, nil on the products page
	inPagerMode bool       // tracks if we're currently in pager mode

	// Handlers
	renderer     *views.Renderer        // view renderer
	eventHandler *handlers.EventHandler // event processing handler
	viewModel    *viewmodels.ViewModel  // view model for rendering
	cmdExecutor  *commands.Executor     // command executor
	inputHandler *input.Handler         // input handling
	pager        *PagerOps              // details pager

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model. bus and logger may be nil.
func NewModel(cfg *config.Config, searcher Searcher, sessions commands.Sessions, bus eventbus.EventBus, logger *slog.Logger) *Model {
	if logger == nil {
		logger = slog.Default()
	}
	appState := state.NewAppState()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		bus:          bus,
		config:       cfg,
		state:        appState,
		search:       searcher,
		sessions:     sessions,
		logger:       logger.With("component", "ui"),
		help:         help.New(),
		keys:         DefaultKeyMap(),
		spinner:      sp,
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		pager:        NewPagerOps(nil),
	}

	m.eventHandler = handlers.NewEventHandler(appState, m.logger)
	m.cmdExecutor = commands.NewExecutor(appState, bus, sessions, cfg.API.Timeout.Std())
	m.viewModel = viewmodels.NewViewModel(appState, cfg, *m.inputHandler.SearchInput())
	m.state.ApplyResult(searcher.Result())

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// State exposes the application state, mainly for tests
func (m *Model) State() *state.AppState {
	return m.state
}

// Mode returns the active input mode
func (m *Model) Mode() inputtypes.Mode {
	return m.inputHandler.CurrentMode()
}

// Init starts the spinner and the initial catalog load
func (m *Model) Init() tea.Cmd {
	searcher := m.search
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			searcher.LoadAll()
			return nil
		},
	)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.relayout()
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}

		// The help popup swallows keys until closed
		if m.state.ShowHelp {
			switch msg.String() {
			case "esc", "?", "q":
				m.state.ShowHelp = false
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}

		actions, cmd := m.inputHandler.HandleKey(msg, m.context())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		m.viewModel.UpdateTextInput(*m.inputHandler.SearchInput())

		return m, tea.Batch(cmds...)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

func (m *Model) context() *input.ModelContext {
	return &input.ModelContext{
		State:   m.state,
		Form:    m.form,
		Session: m.sessions,
	}
}

// handleNonKeyboardMsg handles everything that is not a key press
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SearchUpdatedMsg:
		m.applyResult()
		return m, nil

	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)

	case commands.AuthResultMsg:
		return m, m.handleAuthResult(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case detailsPagerMsg:
		m.inPagerMode = false
		if msg.err != nil {
			m.logger.Warn("details pager failed", "product", msg.productID, "error", msg.err)
			m.state.SetStatus("Could not open product details", true)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}

	// Cursor blink and similar messages for the input fields
	if cmd := m.inputHandler.Update(msg); cmd != nil {
		m.viewModel.UpdateTextInput(*m.inputHandler.SearchInput())
		return m, cmd
	}
	if m.form != nil {
		return m, m.form.Update(msg)
	}
	return m, nil
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.UpdateTextAction:
		m.search.OnInput(a.Text)

	case inputtypes.ChangeModeAction:
		// The handler already switched; nothing else depends on it

	case inputtypes.OpenPageAction:
		m.state.ClearStatus()
		return m.openPage(a.Page)

	case inputtypes.OpenDetailsAction:
		return m.openDetails(a.ProductID)

	case inputtypes.LogoutAction:
		cmd := m.cmdExecutor.ExecuteLogout()
		m.state.SetStatus(handlers.LoggedOutMessage, false)
		return cmd

	case inputtypes.FormFocusAction:
		if m.form != nil {
			return m.form.Move(a.Delta)
		}

	case inputtypes.FormKeyAction:
		if m.form != nil && !m.state.Submitting {
			return m.form.Update(a.Key)
		}

	case inputtypes.FormSubmitAction:
		return m.submitForm()

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp

	case inputtypes.QuitAction:
		return tea.Quit
	}
	return nil
}

// applyResult pulls the latest search result into the state
func (m *Model) applyResult() {
	m.state.ApplyResult(m.search.Result())
	m.ensureSelectedVisible()
}

func (m *Model) grid() logic.Grid {
	return logic.Grid{Columns: m.state.Columns, VisibleRows: m.state.VisibleRows}
}

func (m *Model) navigate(direction string) {
	total := m.state.ProductCount()
	if total == 0 {
		return
	}
	m.state.SelectedIndex = m.grid().Move(m.state.SelectedIndex, total, direction)
	m.ensureSelectedVisible()
}

// ensureSelectedVisible scrolls the grid so the selected card is on screen
func (m *Model) ensureSelectedVisible() {
	m.state.ViewportRow = m.grid().Scroll(m.state.SelectedIndex, m.state.ViewportRow)
}

// relayout recomputes the grid size for the terminal size
func (m *Model) relayout() {
	w, h := views.GridArea(m.width, m.height, m.config.UISettings.ShowHero)
	m.state.Columns = logic.ColumnsFor(w, views.CardWidth, m.config.UISettings.Columns)
	// Two lines are kept for the scroll indicators
	m.state.VisibleRows = logic.RowsFor(h-2, views.CardHeight)
	m.ensureSelectedVisible()
}

// openPage switches between the products page and the auth forms
func (m *Model) openPage(page string) tea.Cmd {
	m.state.Submitting = false
	m.state.ShowHelp = false

	switch page {
	case inputtypes.PageLogin:
		m.state.Page = state.PageLogin
		m.form = form.NewLoginForm()
	case inputtypes.PageRegister:
		m.state.Page = state.PageRegister
		m.form = form.NewRegisterForm()
	default:
		m.state.Page = state.PageProducts
		m.form = nil
		m.inputHandler.SetMode(inputtypes.ModeNormal, m.context())
		return nil
	}

	m.inputHandler.SetMode(inputtypes.ModeForm, m.context())
	return m.form.Focus()
}

func (m *Model) submitForm() tea.Cmd {
	if m.form == nil || m.state.Submitting {
		return nil
	}
	m.state.ClearStatus()
	switch m.state.Page {
	case state.PageLogin:
		return m.cmdExecutor.ExecuteLogin(m.form.Value(0), m.form.Value(1))
	case state.PageRegister:
		return m.cmdExecutor.ExecuteRegister(m.form.Value(0), m.form.Value(1), m.form.Value(2))
	}
	return nil
}

// handleAuthResult moves on after a login or registration finished
func (m *Model) handleAuthResult(msg commands.AuthResultMsg) tea.Cmd {
	m.state.Submitting = false
	if msg.Err != nil {
		m.logger.Info("auth request failed", "username", msg.Username, "error", msg.Err)
		m.state.SetStatus(commands.ErrorMessage(msg.Err), true)
		return nil
	}

	switch msg.Kind {
	case commands.AuthLogin:
		cmd := m.openPage(inputtypes.PageProducts)
		m.state.SetStatus(handlers.LoggedInMessage, false)
		return cmd
	case commands.AuthRegister:
		m.openPage(inputtypes.PageLogin)
		m.form.SetValue(0, msg.Username)
		cmd := m.form.Move(1)
		m.state.SetStatus(handlers.RegisteredMessage(msg.Username), false)
		return cmd
	}
	return nil
}

// openDetails shows the product in the pager
func (m *Model) openDetails(productID string) tea.Cmd {
	var product *domain.Product
	products := m.state.Result.Products()
	for i := range products {
		if products[i].ID == productID {
			product = &products[i]
			break
		}
	}
	if product == nil {
		return nil
	}
	if m.program == nil {
		m.state.SetStatus(product.Name+" • "+views.FormatCost(product.Cost), false)
		return nil
	}

	content := RenderProductDetails(*product)
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.ShowInPager(content)
		m.program.Send(resumeRenderingMsg{})
		return detailsPagerMsg{productID: productID, err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.inPagerMode {
		return ""
	}

	session := m.sessions.Current()
	m.keys.SetLoggedIn(session.LoggedIn())

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetInputMode(m.inputHandler.CurrentMode())
	m.viewModel.UpdateTextInput(*m.inputHandler.SearchInput())
	m.viewModel.SetSession(session)
	m.viewModel.SetForm(m.form)
	m.viewModel.SetSpinner(m.spinner.View())
	m.viewModel.SetHelp(m.help, m.keys)

	return m.renderer.Render(m.viewModel.BuildViewState())
}
