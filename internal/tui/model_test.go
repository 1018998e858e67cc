package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/Veraticus/po-classifier/internal/common"
	"github.com/Veraticus/po-classifier/internal/config"
	"github.com/Veraticus/po-classifier/internal/engine"
	"github.com/Veraticus/po-classifier/internal/llm"
	"github.com/Veraticus/po-classifier/internal/model"
	"github.com/Veraticus/po-classifier/internal/result"
	"github.com/Veraticus/po-classifier/internal/testutil"
	"github.com/Veraticus/po-classifier/internal/testutil/responses"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const structuredResponse = `{"L1":"Electronics","L2":"Computing","L3":"Monitors"}`

var (
	keySubmit    = tea.KeyMsg{Type: tea.KeyCtrlS}
	keyClear     = tea.KeyMsg{Type: tea.KeyCtrlK}
	keyToggleTab = tea.KeyMsg{Type: tea.KeyCtrlT}
	keyNext      = tea.KeyMsg{Type: tea.KeyTab}
)

type memoryStore struct {
	err    error
	saved  *result.DisplayedResult
	saves  int
	clears int
	mu     sync.Mutex
}

func (s *memoryStore) SaveLastResult(_ context.Context, r result.DisplayedResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	s.saved = &r
	return s.err
}

func (s *memoryStore) LoadLastResult(_ context.Context) (result.DisplayedResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return result.DisplayedResult{}, s.err
	}
	if s.saved == nil {
		return result.DisplayedResult{}, common.ErrNotFound
	}
	return *s.saved, nil
}

func (s *memoryStore) ClearLastResult(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clears++
	s.saved = nil
	return s.err
}

func newTestModel(t *testing.T, client *engine.MockClient, opts ...Option) Model {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	base := []Option{
		WithSize(160, 60),
		WithLogger(logger),
		WithTimeout(time.Second),
	}
	if client != nil {
		base = append(base, WithClassifier(engine.New(client, logger)))
	}
	return New(append(base, opts...)...)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next, cmd
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

// runCmd executes cmd and any batched commands, returning every message.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, runCmd(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

// deliver runs cmd and feeds its classification messages back into m.
func deliver(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	for _, msg := range runCmd(cmd) {
		switch msg.(type) {
		case classifiedMsg, classifyFailedMsg:
			m, _ = update(t, m, msg)
		}
	}
	return m
}

func classify(t *testing.T, m Model, description string) Model {
	t.Helper()
	m = typeText(t, m, description)
	m, cmd := update(t, m, keySubmit)
	require.NotNil(t, cmd)
	require.True(t, m.InFlight())
	return deliver(t, m, cmd)
}

func TestModel_InitialView(t *testing.T) {
	m := newTestModel(t, engine.NewMockClient(structuredResponse))

	view := m.View()
	assert.Contains(t, view, "PO Category Classifier")
	assert.Contains(t, view, PlaceholderText)
	assert.Contains(t, view, ExampleDescription)
	assert.Contains(t, view, "Tips")

	_, ok := m.Current()
	assert.False(t, ok)
}

func TestModel_EmptyDescription(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := engine.NewMockClient(structuredResponse)
			m := newTestModel(t, client)
			if tt.input != "" {
				m = typeText(t, m, tt.input)
			}

			m, cmd := update(t, m, keySubmit)
			assert.Nil(t, cmd)
			assert.False(t, m.InFlight())
			assert.Contains(t, m.View(), "Please enter a PO description.")
			assert.Empty(t, client.Calls())
		})
	}
}

func TestModel_StructuredResult(t *testing.T) {
	client := engine.NewMockClient(structuredResponse)
	m := newTestModel(t, client)

	m = typeText(t, m, "27-inch monitors")
	m, _ = update(t, m, keyNext)
	m = typeText(t, m, "Dell")
	m, cmd := update(t, m, keySubmit)
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Classifying...")

	m = deliver(t, m, cmd)
	assert.False(t, m.InFlight())

	require.Len(t, client.Calls(), 1)
	assert.Equal(t, model.ClassificationRequest{Description: "27-inch monitors", Supplier: "Dell"}, client.Calls()[0])

	current, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, structuredResponse, current.Raw)

	view := m.View()
	assert.Contains(t, view, "Electronics")
	assert.Contains(t, view, "Computing")
	assert.Contains(t, view, "Monitors")
	assert.Contains(t, view, `"L1": "Electronics"`)
	assert.NotContains(t, view, result.WarningUnstructured)
	assert.NotContains(t, view, PlaceholderText)
}

func TestModel_UnstructuredResult(t *testing.T) {
	m := newTestModel(t, engine.NewMockClient("not json"))
	m = classify(t, m, "mystery item")

	view := m.View()
	assert.Contains(t, view, result.WarningUnstructured)

	m, _ = update(t, m, keyToggleTab)
	view = m.View()
	assert.Contains(t, view, "not json")
	assert.Contains(t, view, result.WarningUnstructured)
}

func TestModel_MissingLevels(t *testing.T) {
	m := newTestModel(t, engine.NewMockClient(`{"l1":"Office","L3":null}`))
	m = classify(t, m, "paper")

	view := m.View()
	assert.Contains(t, view, "Office")
	assert.Contains(t, view, result.NotAvailable)
}

func TestModel_SubmitWhileInFlightIgnored(t *testing.T) {
	client := engine.NewMockClient(structuredResponse)
	m := newTestModel(t, client)

	m = typeText(t, m, "chairs")
	m, cmd := update(t, m, keySubmit)
	require.NotNil(t, cmd)

	m, second := update(t, m, keySubmit)
	assert.Nil(t, second)
	assert.True(t, m.InFlight())

	// Typing is locked while the call runs.
	m = typeText(t, m, "x")
	assert.Equal(t, "chairs", m.description.Value())

	m = deliver(t, m, cmd)
	assert.Len(t, client.Calls(), 1)
}

func TestModel_CollaboratorFailureKeepsSlot(t *testing.T) {
	client := engine.NewMockClient(structuredResponse)
	m := newTestModel(t, client)
	m = classify(t, m, "monitors")

	client.Err = &llm.CollaboratorError{Provider: "mock", Err: errors.New("connection refused")}
	m, cmd := update(t, m, keySubmit)
	require.NotNil(t, cmd)
	m = deliver(t, m, cmd)

	require.Error(t, m.Err())
	assert.True(t, m.IsCollaboratorError())

	current, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, structuredResponse, current.Raw)

	view := m.View()
	assert.Contains(t, view, "Classification failed")
	assert.Contains(t, view, "Electronics")
}

func TestModel_ClearResults(t *testing.T) {
	store := &memoryStore{}
	m := newTestModel(t, engine.NewMockClient(structuredResponse), WithStore(store))

	m, cmd := update(t, m, keySubmit)
	assert.Nil(t, cmd)
	require.Contains(t, m.View(), "Please enter a PO description.")

	m = classify(t, m, "monitors")
	_, ok := m.Current()
	require.True(t, ok)

	m, cmd = update(t, m, keyClear)
	_, ok = m.Current()
	assert.False(t, ok)
	assert.Contains(t, m.View(), PlaceholderText)
	assert.NotContains(t, m.View(), "Please enter a PO description.")

	for _, msg := range runCmd(cmd) {
		m, _ = update(t, m, msg)
	}
	assert.Equal(t, 1, store.clears)
}

func TestModel_ClearDuringInFlight(t *testing.T) {
	m := newTestModel(t, engine.NewMockClient(structuredResponse))
	m = classify(t, m, "first")

	m = typeText(t, m, " second")
	m, cmd := update(t, m, keySubmit)
	require.NotNil(t, cmd)

	m, _ = update(t, m, keyClear)
	_, ok := m.Current()
	assert.False(t, ok)
	assert.True(t, m.InFlight())

	m = deliver(t, m, cmd)
	current, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "first second", current.Request.Description)
}

func TestModel_PersistsResult(t *testing.T) {
	store := &memoryStore{}
	m := newTestModel(t, engine.NewMockClient(structuredResponse), WithStore(store))

	m = typeText(t, m, "monitors")
	m, cmd := update(t, m, keySubmit)

	var saveCmd tea.Cmd
	for _, msg := range runCmd(cmd) {
		if _, ok := msg.(classifiedMsg); ok {
			m, saveCmd = update(t, m, msg)
		}
	}
	require.NotNil(t, saveCmd)

	for _, msg := range runCmd(saveCmd) {
		m, _ = update(t, m, msg)
	}
	assert.Equal(t, 1, store.saves)
	require.NotNil(t, store.saved)
	assert.Equal(t, structuredResponse, store.saved.Raw)
}

func TestModel_RestoresSession(t *testing.T) {
	saved := result.NewDisplayedResult(
		model.ClassificationRequest{Description: "toner"},
		`{"L1":"Office Supplies"}`,
		time.Now(),
	)
	store := &memoryStore{saved: &saved}
	m := newTestModel(t, engine.NewMockClient(structuredResponse), WithStore(store))

	for _, msg := range runCmd(m.Init()) {
		if _, ok := msg.(sessionLoadedMsg); ok {
			m, _ = update(t, m, msg)
		}
	}

	current, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "toner", current.Request.Description)
	assert.Contains(t, m.View(), "Office Supplies")
}

func TestModel_SessionLoadDoesNotReplaceResult(t *testing.T) {
	m := newTestModel(t, engine.NewMockClient(structuredResponse))
	m = classify(t, m, "monitors")

	stale := result.NewDisplayedResult(model.ClassificationRequest{Description: "old"}, "{}", time.Now())
	m, _ = update(t, m, sessionLoadedMsg{result: stale, found: true})

	current, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "monitors", current.Request.Description)
}

func TestModel_SessionLoadError(t *testing.T) {
	store := &memoryStore{err: errors.New("disk gone")}
	m := newTestModel(t, engine.NewMockClient(structuredResponse), WithStore(store))

	m, _ = update(t, m, loadSessionCmd(store)())
	assert.Contains(t, m.View(), "disk gone")
	_, ok := m.Current()
	assert.False(t, ok)
}

func TestModel_DisplayToggles(t *testing.T) {
	display := config.Display{
		ResultsLayout: config.LayoutTabs,
		PageLayout:    config.LayoutSplit,
		ShowMetrics:   true,
		ShowPayload:   false,
		ShowRaw:       true,
	}
	m := newTestModel(t, engine.NewMockClient(structuredResponse), WithDisplay(display))
	m = classify(t, m, "monitors")

	view := m.View()
	assert.Contains(t, view, PayloadHiddenText)
	assert.Contains(t, view, "Electronics")
	assert.NotContains(t, view, "PO Category Classifier")
	assert.NotContains(t, view, "Tips")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF3})
	assert.NotContains(t, m.View(), PayloadHiddenText)
	assert.Contains(t, m.View(), `"L1": "Electronics"`)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF2})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyF3})
	view = m.View()
	assert.NotContains(t, view, "Electronics")
	assert.Contains(t, view, PayloadHiddenText)
}

func TestModel_ResultsBodyRenderedOnChange(t *testing.T) {
	const stale = "stale results body"

	tests := []struct {
		name     string
		msgs     []tea.Msg
		rerender bool
	}{
		{name: "typing", msgs: []tea.Msg{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("more text")}}},
		{name: "spinner tick", msgs: []tea.Msg{spinner.TickMsg{}}},
		{name: "field focus", msgs: []tea.Msg{keyNext, keyNext}},
		{name: "resize", msgs: []tea.Msg{tea.WindowSizeMsg{Width: 120, Height: 50}}},
		{name: "metrics toggle", msgs: []tea.Msg{tea.KeyMsg{Type: tea.KeyF2}}, rerender: true},
		{name: "payload toggle", msgs: []tea.Msg{tea.KeyMsg{Type: tea.KeyF3}}, rerender: true},
		{name: "tab toggle", msgs: []tea.Msg{keyToggleTab}, rerender: true},
		{name: "clear", msgs: []tea.Msg{keyClear}, rerender: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, engine.NewMockClient(structuredResponse))
			m = classify(t, m, "monitors")
			m.viewport.SetContent(stale)

			for _, msg := range tt.msgs {
				m, _ = update(t, m, msg)
			}

			if tt.rerender {
				assert.NotContains(t, m.viewport.View(), stale)
			} else {
				assert.Contains(t, m.viewport.View(), stale)
			}
		})
	}
}

func TestModel_NewResultRerendersBody(t *testing.T) {
	client := engine.NewMockClient(structuredResponse)
	m := newTestModel(t, client)
	m = classify(t, m, "monitors")
	m.viewport.SetContent("stale results body")
	client.Response = `{"L1":"Furniture"}`

	m, cmd := update(t, m, keySubmit)
	require.NotNil(t, cmd)
	m = deliver(t, m, cmd)

	assert.NotContains(t, m.viewport.View(), "stale results body")
	assert.Contains(t, m.viewport.View(), "Furniture")
}

func TestModel_StackedLayout(t *testing.T) {
	display := config.Display{
		ResultsLayout: config.LayoutStacked,
		PageLayout:    config.LayoutStacked,
		ShowMetrics:   true,
		ShowPayload:   true,
		ShowRaw:       true,
	}
	m := newTestModel(t, engine.NewMockClient("plain words"), WithDisplay(display))
	m = classify(t, m, "widget")

	view := m.View()
	assert.Contains(t, view, result.WarningUnstructured)
	assert.Contains(t, view, "Raw response")
	assert.Contains(t, view, "plain words")
}

func TestModel_RawHidden(t *testing.T) {
	display := config.Display{
		ResultsLayout: config.LayoutTabs,
		PageLayout:    config.LayoutSplit,
		ShowMetrics:   true,
		ShowPayload:   true,
		ShowRaw:       false,
	}
	m := newTestModel(t, engine.NewMockClient(`["a","b"]`), WithDisplay(display))
	m = classify(t, m, "widget")

	m, _ = update(t, m, keyToggleTab)
	assert.Equal(t, TabStructured, m.tab)
	assert.NotContains(t, m.View(), "Raw")
}

func TestModel_NoClassifier(t *testing.T) {
	m := newTestModel(t, nil)
	m = typeText(t, m, "monitors")

	m, cmd := update(t, m, keySubmit)
	assert.Nil(t, cmd)
	require.ErrorIs(t, m.Err(), common.ErrMissingConfig)
	assert.False(t, m.InFlight())
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, engine.NewMockClient(structuredResponse))

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModel_Resize(t *testing.T) {
	m := newTestModel(t, engine.NewMockClient(structuredResponse))
	assert.True(t, m.isSplit())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 70, Height: 40})
	assert.False(t, m.isSplit())
	assert.Contains(t, m.View(), PlaceholderText)
}

func TestModel_SQLiteSessionRoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	db.SeedLastResult(responses.NewBuilder(t).WithDescription("chairs").WithRaw(responses.MixedCase).Build())

	m := newTestModel(t, engine.NewMockClient(responses.Lowercase.String()), WithStore(db.Store))
	for _, msg := range runCmd(m.Init()) {
		if _, ok := msg.(sessionLoadedMsg); ok {
			m, _ = update(t, m, msg)
		}
	}
	assert.Contains(t, m.View(), "Task Chairs")

	m = typeText(t, m, "copy paper")
	m, cmd := update(t, m, keySubmit)
	var saveCmd tea.Cmd
	for _, msg := range runCmd(cmd) {
		if _, ok := msg.(classifiedMsg); ok {
			m, saveCmd = update(t, m, msg)
		}
	}
	for _, msg := range runCmd(saveCmd) {
		m, _ = update(t, m, msg)
	}

	stored := db.MustLoadLastResult()
	assert.Equal(t, responses.Lowercase.String(), stored.Raw)
	assert.Contains(t, m.View(), "Copy Paper")
}
