package tui

import (
	"errors"
	"log/slog"

	"github.com/Veraticus/po-classifier/internal/common"
	"github.com/Veraticus/po-classifier/internal/config"
	"github.com/Veraticus/po-classifier/internal/model"
	"github.com/Veraticus/po-classifier/internal/result"
	"github.com/Veraticus/po-classifier/internal/storage"
	"github.com/Veraticus/po-classifier/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Field identifies a form input.
type Field int

const (
	FieldDescription Field = iota
	FieldSupplier
)

// Tab identifies a results tab.
type Tab int

const (
	TabStructured Tab = iota
	TabRaw
)

// ExampleDescription is shown under the description field.
const ExampleDescription = "12x Dell UltraSharp U2723QE monitors, 27-inch, USB-C"

// bodyState is everything the results body is rendered from.
type bodyState struct {
	revision uint64
	display  config.Display
	tab      Tab
}

var errNoClassifier = common.NewUserError("No classification service is configured.", common.ErrMissingConfig)

// Model holds the main TUI state.
type Model struct {
	theme       themes.Theme
	classifier  Classifier
	store       storage.SessionStore
	lastError   error
	storeError  error
	logger      *slog.Logger
	config      Config
	display     config.Display
	validation  string
	keymap      KeyMap
	help        help.Model
	spinner     spinner.Model
	description textarea.Model
	supplier    textinput.Model
	viewport    viewport.Model
	slot        result.Slot
	body        bodyState
	bodyReady   bool
	focus       Field
	tab         Tab
	width       int
	height      int
	inFlight    bool
	quitting    bool
}

// New creates the classifier form model.
func New(opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newModel(cfg)
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	theme := cfg.Theme
	if cfg.Display.Compact {
		theme = theme.Compact()
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	description := textarea.New()
	description.Placeholder = "Describe the line item..."
	description.CharLimit = 2000
	description.ShowLineNumbers = false
	description.SetHeight(4)
	description.Focus()

	supplier := textinput.New()
	supplier.Placeholder = "Supplier (optional)"
	supplier.CharLimit = 200

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	spin.Style = theme.StatusInfo

	m := Model{
		theme:       theme,
		classifier:  cfg.Classifier,
		store:       cfg.Store,
		logger:      logger,
		config:      cfg,
		display:     cfg.Display,
		keymap:      DefaultKeyMap(),
		help:        help.New(),
		spinner:     spin,
		description: description,
		supplier:    supplier,
		viewport:    viewport.New(cfg.Width, cfg.Height),
		focus:       FieldDescription,
		tab:         TabStructured,
		width:       cfg.Width,
		height:      cfg.Height,
	}
	m.handleResize()
	m.syncViewport()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink}
	if m.store != nil {
		cmds = append(cmds, loadSessionCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()

	case spinner.TickMsg:
		if m.inFlight {
			m.spinner, cmd = m.spinner.Update(msg)
		}

	case classifiedMsg:
		m.inFlight = false
		m.lastError = nil
		m.slot.Set(msg.result)
		m.tab = TabStructured
		m.viewport.GotoTop()
		if m.store != nil {
			cmd = saveSessionCmd(m.store, msg.result)
		}

	case classifyFailedMsg:
		m.inFlight = false
		m.lastError = msg.err
		m.logger.Error("Classification failed", "error", msg.err)

	case sessionLoadedMsg:
		switch {
		case msg.err != nil:
			m.storeError = msg.err
			m.logger.Warn("Failed to load last result", "error", msg.err)
		case msg.found && m.slot.Empty() && !m.inFlight:
			m.slot.Set(msg.result)
		}

	case sessionSavedMsg:
		m.storeError = msg.err
		if msg.err != nil {
			m.logger.Warn("Failed to persist last result", "op", msg.op, "error", msg.err)
		}

	default:
		m, cmd = m.updateFocused(msg)
	}

	m.syncViewport()
	return m, cmd
}

// handleKey dispatches key presses.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.handleResize()

	case key.Matches(msg, m.keymap.Submit):
		return m.submit()

	case key.Matches(msg, m.keymap.Clear):
		return m.clearResults()

	case key.Matches(msg, m.keymap.NextField), key.Matches(msg, m.keymap.PrevField):
		return m.toggleFocus()

	case key.Matches(msg, m.keymap.ToggleTab):
		if m.display.ShowRaw && m.display.ResultsLayout == config.LayoutTabs {
			if m.tab == TabStructured {
				m.tab = TabRaw
			} else {
				m.tab = TabStructured
			}
			m.viewport.GotoTop()
		}

	case key.Matches(msg, m.keymap.ToggleMetrics):
		m.display.ShowMetrics = !m.display.ShowMetrics

	case key.Matches(msg, m.keymap.TogglePayload):
		m.display.ShowPayload = !m.display.ShowPayload

	case key.Matches(msg, m.keymap.ToggleRaw):
		m.display.ShowRaw = !m.display.ShowRaw
		if !m.display.ShowRaw {
			m.tab = TabStructured
		}

	case key.Matches(msg, m.keymap.ToggleLayout):
		if m.display.ResultsLayout == config.LayoutTabs {
			m.display.ResultsLayout = config.LayoutStacked
		} else {
			m.display.ResultsLayout = config.LayoutTabs
		}
		m.tab = TabStructured

	case key.Matches(msg, m.keymap.ScrollUp), key.Matches(msg, m.keymap.ScrollDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	default:
		if m.inFlight {
			return m, nil
		}
		return m.updateFocused(msg)
	}

	return m, nil
}

// updateFocused forwards msg to the focused input.
func (m Model) updateFocused(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == FieldDescription {
		m.description, cmd = m.description.Update(msg)
	} else {
		m.supplier, cmd = m.supplier.Update(msg)
	}
	return m, cmd
}

// submit validates the form and starts a classification. Submissions
// while a call is in flight are ignored.
func (m Model) submit() (Model, tea.Cmd) {
	if m.inFlight {
		return m, nil
	}

	req, err := model.NewClassificationRequest(m.description.Value(), m.supplier.Value())
	if err != nil {
		m.validation = common.UserMessage(err)
		return m, nil
	}
	m.validation = ""

	if m.classifier == nil {
		m.lastError = errNoClassifier
		return m, nil
	}

	m.inFlight = true
	m.lastError = nil
	m.logger.Debug("Submitting classification", "request", req.String())
	return m, tea.Batch(m.spinner.Tick, classifyCmd(m.classifier, req, m.config.Timeout))
}

// clearResults empties the slot. An in-flight call is left running and
// fills the slot when it completes.
func (m Model) clearResults() (Model, tea.Cmd) {
	m.slot.Clear()
	m.validation = ""
	m.lastError = nil
	m.tab = TabStructured
	m.viewport.GotoTop()
	if m.store != nil {
		return m, clearSessionCmd(m.store)
	}
	return m, nil
}

func (m Model) toggleFocus() (Model, tea.Cmd) {
	if m.focus == FieldDescription {
		m.focus = FieldSupplier
		m.description.Blur()
		return m, m.supplier.Focus()
	}
	m.focus = FieldDescription
	m.supplier.Blur()
	return m, m.description.Focus()
}

// handleResize adjusts component sizes when the terminal resizes.
func (m *Model) handleResize() {
	formWidth, resultsWidth := m.columnWidths()

	m.description.SetWidth(max(formWidth-4, 10))
	m.supplier.Width = max(formWidth-6, 10)
	m.help.Width = m.width

	reserved := 4 // help line and borders
	if m.display.ShowHero {
		reserved += 3
	}
	if !m.isSplit() {
		reserved += lipgloss.Height(m.renderFormColumn(formWidth))
	}
	m.viewport.Width = max(resultsWidth-m.theme.Card.GetHorizontalFrameSize(), 10)
	m.viewport.Height = max(m.height-reserved-4, 5)
}

// isSplit reports whether the form and results sit side by side.
func (m Model) isSplit() bool {
	return m.display.PageLayout == config.LayoutSplit && m.width >= minSplitWidth
}

func (m Model) columnWidths() (form, results int) {
	if m.isSplit() {
		form = m.width * 2 / 5
		return form, m.width - form - 1
	}
	return m.width, m.width
}

// syncViewport refreshes the results viewport content when the result,
// the display toggles or the active tab changed since the last render.
func (m *Model) syncViewport() {
	state := bodyState{revision: m.slot.Revision(), display: m.display, tab: m.tab}
	if m.bodyReady && state == m.body {
		return
	}
	m.body, m.bodyReady = state, true
	m.viewport.SetContent(m.renderResultsBody())
}

// Current returns the displayed result, if any.
func (m Model) Current() (result.DisplayedResult, bool) {
	return m.slot.Current()
}

// InFlight reports whether a classification call is running.
func (m Model) InFlight() bool {
	return m.inFlight
}

// Err returns the last classification error.
func (m Model) Err() error {
	return m.lastError
}

// IsCollaboratorError reports whether the last error came from the
// classification service.
func (m Model) IsCollaboratorError() bool {
	return errors.Is(m.lastError, common.ErrCollaborator)
}
